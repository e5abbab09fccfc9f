package config

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Tag is the value tag of a UI variable.
type Tag string

const (
	TagNumber Tag = "number"
	TagString Tag = "string"
	TagArray  Tag = "array"
	TagMatrix Tag = "matrix"
	TagTable  Tag = "table"
)

// ParseTag validates a raw value-tag string from a declaration file.
func ParseTag(raw string) (Tag, error) {
	switch t := Tag(raw); t {
	case TagNumber, TagString, TagArray, TagMatrix, TagTable:
		return t, nil
	default:
		return "", fmt.Errorf("invalid value tag %q: must be one of 'number', 'string', 'array', 'matrix', 'table'", raw)
	}
}

// Model is the unified representation of everything the declaration files
// provide: compute-module signature manifests plus all configurations.
type Model struct {
	Modules map[string]*ModuleManifest
	Configs map[string]*CaseSpec
}

// ModuleManifest declares a compute module's input and output names. The
// set of manifests backs the default module registry.
type ModuleManifest struct {
	ID      string
	Inputs  []string
	Outputs []string
}

// CaseSpec is one technology/financial configuration: its UI pages, its
// formulas, its secondary compute modules, and the primary module they all
// feed. Formulas and Secondaries keep declaration order; that order is the
// tie-break order of the evaluation plan.
type CaseSpec struct {
	Name          string
	PrimaryModule string
	Pages         []*Page
	Formulas      []*FormulaSpec
	Secondaries   []*SecondarySpec
}

// Forms returns all UI forms of the configuration, common and exclusive,
// in declaration order.
func (s *CaseSpec) Forms() []*Form {
	var forms []*Form
	for _, p := range s.Pages {
		forms = append(forms, p.Common...)
		forms = append(forms, p.Exclusive...)
	}
	return forms
}

// Page is one sidebar entry in the UI: forms shown regardless of the
// active selection, plus forms of which only one is shown at a time,
// switched by ExclusiveVar. All of them contribute variables.
type Page struct {
	Title        string
	Common       []*Form
	ExclusiveVar string
	Exclusive    []*Form
}

// Form is a named group of variables presented together. Variables may
// repeat across forms within a configuration.
type Form struct {
	Name      string
	Variables []*Variable
}

// Variable is a UI variable declaration. Default is nil when the user must
// supply the value; a non-nil Default marks the variable as filled even if
// the user never touches it.
type Variable struct {
	Name    string
	Form    string
	Tag     Tag
	Default *cty.Value
}

// FormulaSpec declares one formula: the UI form it belongs to, the variable
// names it reads, and the variable names it yields. The formula body itself
// lives in the external evaluator and never changes this topology.
type FormulaSpec struct {
	Name    string
	Form    string
	Inputs  []string
	Outputs []string
}

// SecondarySpec declares a secondary compute module run before the primary:
// the module identifier, the declared (non-calculated) inputs, and the
// subset of the module's outputs this configuration actually consumes.
type SecondarySpec struct {
	Name    string
	Module  string
	Inputs  []string
	Outputs []string
}
