// Package schema holds the HCL-facing shapes of the declaration files.
// These structs exist only for gohcl decoding; the hcl package translates
// them into the format-agnostic config model.
package schema

import "github.com/hashicorp/hcl/v2"

// FileRoot decodes all recognized top-level blocks from any declaration
// file. Module manifests and configurations may be mixed freely across
// files; merging happens in the loader.
type FileRoot struct {
	Modules []*Module `hcl:"module,block"`
	Configs []*Config `hcl:"config,block"`
	Remain  hcl.Body  `hcl:",remain"`
}

// Module is a compute-module signature manifest.
type Module struct {
	ID      string   `hcl:"id,label"`
	Inputs  []string `hcl:"inputs"`
	Outputs []string `hcl:"outputs,optional"`
}

// Config is one technology/financial configuration.
type Config struct {
	Name          string       `hcl:"name,label"`
	PrimaryModule string       `hcl:"primary_module"`
	Pages         []*Page      `hcl:"page,block"`
	Formulas      []*Formula   `hcl:"formula,block"`
	Secondaries   []*Secondary `hcl:"secondary,block"`
}

// Page groups the UI forms of one sidebar entry. `form` blocks are always
// shown; `exclusive_form` blocks are switched by the `exclusive` variable,
// one visible at a time. All of them declare variables.
type Page struct {
	Title          string  `hcl:"title,label"`
	Exclusive      string  `hcl:"exclusive,optional"`
	Forms          []*Form `hcl:"form,block"`
	ExclusiveForms []*Form `hcl:"exclusive_form,block"`
}

// Form is a named group of variable declarations.
type Form struct {
	Name      string      `hcl:"name,label"`
	Variables []*Variable `hcl:"variable,block"`
}

// Variable declares one UI variable with its value tag and optional
// default. The default expression is evaluated statically at load time.
type Variable struct {
	Name    string         `hcl:"name,label"`
	Type    string         `hcl:"type"`
	Default hcl.Expression `hcl:"default,optional"`
}

// Formula declares a formula's owning form and its input/output variable
// names. The formula body lives in the external evaluator.
type Formula struct {
	Name    string   `hcl:"name,label"`
	Form    string   `hcl:"form"`
	Inputs  []string `hcl:"inputs"`
	Outputs []string `hcl:"outputs"`
}

// Secondary declares a secondary compute-module run: its module id, its
// declared non-calculated inputs, and the outputs this configuration
// consumes.
type Secondary struct {
	Name    string   `hcl:"name,label"`
	Module  string   `hcl:"module"`
	Inputs  []string `hcl:"inputs,optional"`
	Outputs []string `hcl:"outputs"`
}
