// Package testutil provides declaration-model builders shared by the
// package tests, so individual tests spell out only the parts they are
// about.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/signature"
)

// Model assembles a declaration model from manifests and configurations.
func Model(specs []*config.CaseSpec, manifests ...*config.ModuleManifest) *config.Model {
	model := &config.Model{
		Modules: make(map[string]*config.ModuleManifest),
		Configs: make(map[string]*config.CaseSpec),
	}
	for _, m := range manifests {
		model.Modules[m.ID] = m
	}
	for _, s := range specs {
		model.Configs[s.Name] = s
	}
	return model
}

// Manifest builds a compute-module signature manifest.
func Manifest(id string, inputs []string, outputs []string) *config.ModuleManifest {
	return &config.ModuleManifest{ID: id, Inputs: inputs, Outputs: outputs}
}

// Form builds a form whose variables are all number-tagged, the common case
// in these tests.
func Form(name string, varNames ...string) *config.Form {
	f := &config.Form{Name: name}
	for _, v := range varNames {
		f.Variables = append(f.Variables, &config.Variable{
			Name: v,
			Form: name,
			Tag:  config.TagNumber,
		})
	}
	return f
}

// Page wraps forms into a single common page.
func Page(title string, forms ...*config.Form) *config.Page {
	return &config.Page{Title: title, Common: forms}
}

// Table builds a signature table over a manifest-backed registry.
func Table(t *testing.T, model *config.Model) *signature.Table {
	t.Helper()
	table, err := signature.NewTable(signature.NewManifestRegistry(config.NewSpecStore(model)))
	require.NoError(t, err)
	return table
}
