// Package classify partitions a configuration's variables by role and
// records the producer/consumer dependency edges between formulas,
// secondary modules, and the primary module.
//
// Classification is a pure function over the declared specs: the same
// inputs always yield the same partition or the same error, and nothing
// here mutates the specs.
package classify

import (
	"context"
	"errors"
	"sort"

	"github.com/vk/samcase/internal/caseerr"
	"github.com/vk/samcase/internal/catalog"
	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/ctxlog"
	"github.com/vk/samcase/internal/signature"
)

// ProducerEdge records that a producer yields a variable.
type ProducerEdge struct {
	Producer ProducerID
	Variable string
}

// ConsumerEdge records that a consumer reads a variable.
type ConsumerEdge struct {
	Variable string
	Consumer ConsumerID
}

// CaseVariableInfo is the resolved partition of one configuration's
// variables. The three partitions are disjoint and name-sorted. Producers
// holds every producer id in declaration order (formulas first, then
// secondaries); the edge slices keep the deterministic order they were
// observed in.
type CaseVariableInfo struct {
	Config string

	// PrimaryInputs are non-produced variables read only by the primary
	// module or by formulas; they must be supplied before anything runs.
	PrimaryInputs []string
	// SecondaryInputs are non-produced variables read by at least one
	// secondary module; they must be supplied before the secondary stage.
	SecondaryInputs []string
	// EvaluatedInputs are produced variables that some later stage reads.
	EvaluatedInputs []string

	Producers     []ProducerID
	ProducerEdges []ProducerEdge
	ConsumerEdges []ConsumerEdge
}

// Classify builds the variable partition and dependency edges for one
// configuration. Module signatures are read through the given table; the
// catalog supplies the declared UI variables.
func Classify(ctx context.Context, spec *config.CaseSpec, cat *catalog.Catalog, table *signature.Table) (*CaseVariableInfo, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Classify: starting variable classification.", "config", spec.Name)

	info := &CaseVariableInfo{Config: spec.Name}

	primarySig, err := lookupSignature(ctx, table, spec.Name, spec.PrimaryModule)
	if err != nil {
		return nil, err
	}

	// First pass: collect the producer set, enforcing the single-producer
	// invariant across formulas and secondary modules.
	producerOf := make(map[string]ProducerID)
	claim := func(id ProducerID, variable string) error {
		if first, taken := producerOf[variable]; taken {
			return &caseerr.DuplicateProducerError{
				Config:   spec.Name,
				Variable: variable,
				First:    string(first),
				Second:   string(id),
			}
		}
		producerOf[variable] = id
		info.ProducerEdges = append(info.ProducerEdges, ProducerEdge{Producer: id, Variable: variable})
		return nil
	}

	for _, f := range spec.Formulas {
		id := FormulaID(f.Name)
		info.Producers = append(info.Producers, id)
		for _, out := range f.Outputs {
			if err := claim(id, out); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range spec.Secondaries {
		id := SecondaryID(s.Name)
		info.Producers = append(info.Producers, id)

		sig, err := lookupSignature(ctx, table, spec.Name, s.Module)
		if err != nil {
			return nil, err
		}
		for _, in := range s.Inputs {
			if !sig.HasInput(in) {
				return nil, &caseerr.UnknownVariableError{Config: spec.Name, Variable: in, Module: s.Module}
			}
		}
		for _, out := range s.Outputs {
			if !sig.HasOutput(out) {
				return nil, &caseerr.UnknownVariableError{Config: spec.Name, Variable: out, Module: s.Module}
			}
			if err := claim(id, out); err != nil {
				return nil, err
			}
		}
	}
	logger.Debug("Classify: producer set built.", "config", spec.Name, "producers", len(info.Producers), "produced_variables", len(producerOf))

	// Second pass: record every consumer edge, in declaration order, the
	// primary module last.
	bySecondary := make(map[string]bool)
	for _, f := range spec.Formulas {
		id := ConsumerID(FormulaID(f.Name))
		for _, in := range f.Inputs {
			info.ConsumerEdges = append(info.ConsumerEdges, ConsumerEdge{Variable: in, Consumer: id})
		}
	}
	for _, s := range spec.Secondaries {
		id := ConsumerID(SecondaryID(s.Name))
		for _, in := range s.Inputs {
			info.ConsumerEdges = append(info.ConsumerEdges, ConsumerEdge{Variable: in, Consumer: id})
			bySecondary[in] = true
		}
	}
	primaryConsumer := PrimaryID(spec.PrimaryModule)
	for _, in := range primarySig.Inputs {
		info.ConsumerEdges = append(info.ConsumerEdges, ConsumerEdge{Variable: in, Consumer: primaryConsumer})
	}

	// Third pass: partition every required variable. A variable read by
	// both the primary module and a secondary module lands in
	// SecondaryInputs, since it must be resolved before the secondary
	// stage regardless.
	required := make(map[string]bool)
	for _, e := range info.ConsumerEdges {
		if required[e.Variable] {
			continue
		}
		required[e.Variable] = true

		switch {
		case producerOf[e.Variable] != "":
			info.EvaluatedInputs = append(info.EvaluatedInputs, e.Variable)
		case !cat.Has(e.Variable):
			return nil, &caseerr.UnknownVariableError{Config: spec.Name, Variable: e.Variable}
		}
	}
	for v := range required {
		if producerOf[v] != "" || !cat.Has(v) {
			continue
		}
		if bySecondary[v] {
			info.SecondaryInputs = append(info.SecondaryInputs, v)
		} else {
			info.PrimaryInputs = append(info.PrimaryInputs, v)
		}
	}

	for v, id := range producerOf {
		if !required[v] {
			logger.Debug("Produced variable is consumed by no stage.", "config", spec.Name, "variable", v, "producer", id)
		}
	}

	sort.Strings(info.PrimaryInputs)
	sort.Strings(info.SecondaryInputs)
	sort.Strings(info.EvaluatedInputs)

	logger.Debug("Classify: classification complete.",
		"config", spec.Name,
		"primary_inputs", len(info.PrimaryInputs),
		"secondary_inputs", len(info.SecondaryInputs),
		"evaluated_inputs", len(info.EvaluatedInputs),
	)
	return info, nil
}

// lookupSignature queries the signature table and stamps the configuration
// name onto UnknownModule errors.
func lookupSignature(ctx context.Context, table *signature.Table, configName, moduleID string) (signature.Signature, error) {
	sig, err := table.Signature(ctx, moduleID)
	if err != nil {
		var unknown *caseerr.UnknownModuleError
		if errors.As(err, &unknown) && unknown.Config == "" {
			return signature.Signature{}, &caseerr.UnknownModuleError{Config: configName, Module: unknown.Module}
		}
		return signature.Signature{}, err
	}
	return sig, nil
}
