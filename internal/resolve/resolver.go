// Package resolve is the composition root of the resolution core. It turns
// a configuration name into a ResolvedCase: the variable partitions plus
// the ordered evaluation plan an execution driver needs before invoking
// any formula or compute module.
package resolve

import (
	"context"
	"sync"

	"github.com/vk/samcase/internal/caseerr"
	"github.com/vk/samcase/internal/catalog"
	"github.com/vk/samcase/internal/classify"
	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/ctxlog"
	"github.com/vk/samcase/internal/plan"
	"github.com/vk/samcase/internal/signature"
)

// ResolvedCase is the finished resolution artifact for one configuration.
// It is immutable once built; callers must not modify the returned slices.
type ResolvedCase struct {
	Config string
	Info   *classify.CaseVariableInfo
	Plan   []classify.ProducerID
}

// PrimaryInputs are the non-produced variables the driver must fill before
// invoking the primary module.
func (rc *ResolvedCase) PrimaryInputs() []string { return rc.Info.PrimaryInputs }

// SecondaryInputs are the non-produced variables the secondary stage reads.
func (rc *ResolvedCase) SecondaryInputs() []string { return rc.Info.SecondaryInputs }

// EvaluatedInputs are the produced variables consumed downstream.
func (rc *ResolvedCase) EvaluatedInputs() []string { return rc.Info.EvaluatedInputs }

// ProducerEdges maps producers to the variables they yield.
func (rc *ResolvedCase) ProducerEdges() []classify.ProducerEdge { return rc.Info.ProducerEdges }

// ConsumerEdges maps variables to the consumers that read them.
func (rc *ResolvedCase) ConsumerEdges() []classify.ConsumerEdge { return rc.Info.ConsumerEdges }

// EvaluationPlan is the ordered producer invocation sequence.
func (rc *ResolvedCase) EvaluationPlan() []classify.ProducerID { return rc.Plan }

// Resolver resolves configurations against a spec store and a module
// registry. Successful resolutions are cached for the process lifetime;
// failures are not, so a corrected registry or spec store can be retried
// without a restart. Safe for concurrent use.
type Resolver struct {
	store *config.SpecStore
	table *signature.Table
	cache sync.Map // config name -> *ResolvedCase
}

// New creates a resolver over a spec store and module registry.
func New(store *config.SpecStore, registry signature.Registry) (*Resolver, error) {
	table, err := signature.NewTable(registry)
	if err != nil {
		return nil, err
	}
	return &Resolver{store: store, table: table}, nil
}

// Resolve returns the ResolvedCase for a configuration name, computing it
// on first use. Concurrent resolves of the same name may each compute; the
// first writer wins and losing results are discarded.
func (r *Resolver) Resolve(ctx context.Context, configName string) (*ResolvedCase, error) {
	if cached, ok := r.cache.Load(configName); ok {
		return cached.(*ResolvedCase), nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving configuration.", "config", configName)

	spec, ok := r.store.Spec(configName)
	if !ok {
		return nil, &caseerr.UnknownConfigError{Config: configName}
	}

	cat, err := catalog.Build(ctx, spec)
	if err != nil {
		return nil, err
	}
	info, err := classify.Classify(ctx, spec, cat, r.table)
	if err != nil {
		return nil, err
	}
	evalPlan, err := plan.Build(ctx, info)
	if err != nil {
		return nil, err
	}

	rc := &ResolvedCase{Config: configName, Info: info, Plan: evalPlan}
	if winner, raced := r.cache.LoadOrStore(configName, rc); raced {
		logger.Debug("Discarding duplicate resolution.", "config", configName)
		return winner.(*ResolvedCase), nil
	}

	logger.Info("Configuration resolved.",
		"config", configName,
		"primary_inputs", len(info.PrimaryInputs),
		"secondary_inputs", len(info.SecondaryInputs),
		"evaluated_inputs", len(info.EvaluatedInputs),
		"plan_length", len(evalPlan),
	)
	return rc, nil
}
