// Package catalog builds the per-configuration variable catalog: every UI
// variable declared across the configuration's forms, deduplicated, with
// conflicting re-declarations rejected.
package catalog

import (
	"context"
	"sort"

	"github.com/vk/samcase/internal/caseerr"
	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/ctxlog"
)

// Catalog is the read-only variable catalog of one configuration.
type Catalog struct {
	config string
	vars   map[string]*config.Variable
}

// Build collects the variables of every form of the configuration, common
// and exclusive alike. A variable re-declared with the same value tag on
// another form is deduplicated (the first declaration wins, including its
// owning form); a re-declaration with a different tag is a SchemaConflict.
func Build(ctx context.Context, spec *config.CaseSpec) (*Catalog, error) {
	logger := ctxlog.FromContext(ctx)

	c := &Catalog{
		config: spec.Name,
		vars:   make(map[string]*config.Variable),
	}
	for _, form := range spec.Forms() {
		for _, v := range form.Variables {
			existing, ok := c.vars[v.Name]
			if !ok {
				c.vars[v.Name] = v
				continue
			}
			if existing.Tag != v.Tag {
				return nil, &caseerr.SchemaConflictError{
					Config:   spec.Name,
					Variable: v.Name,
					FormA:    existing.Form,
					FormB:    form.Name,
					TagA:     string(existing.Tag),
					TagB:     string(v.Tag),
				}
			}
			logger.Debug("Deduplicated repeated variable declaration.",
				"config", spec.Name, "variable", v.Name, "form", form.Name)
		}
	}

	logger.Debug("Variable catalog built.", "config", spec.Name, "variables", len(c.vars))
	return c, nil
}

// Has reports whether a variable is declared on any form.
func (c *Catalog) Has(name string) bool {
	_, ok := c.vars[name]
	return ok
}

// Lookup returns the declaration of a variable, if present.
func (c *Catalog) Lookup(name string) (*config.Variable, bool) {
	v, ok := c.vars[name]
	return v, ok
}

// FormOf returns the UI form that owns a variable. It fails with
// UnknownVariable if the configuration never declares it.
func (c *Catalog) FormOf(name string) (string, error) {
	v, ok := c.vars[name]
	if !ok {
		return "", &caseerr.UnknownVariableError{Config: c.config, Variable: name}
	}
	return v.Form, nil
}

// Variables returns every declared variable in name order.
func (c *Catalog) Variables() []*config.Variable {
	out := make([]*config.Variable, 0, len(c.vars))
	for _, v := range c.vars {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
