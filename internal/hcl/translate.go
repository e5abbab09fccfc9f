package hcl

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/samcase/internal/config"
	"github.com/vk/samcase/internal/ctxlog"
	"github.com/vk/samcase/internal/schema"
)

// translateModule converts a module manifest block into the agnostic model.
func translateModule(m *schema.Module) *config.ModuleManifest {
	return &config.ModuleManifest{
		ID:      m.ID,
		Inputs:  m.Inputs,
		Outputs: m.Outputs,
	}
}

// translateConfig converts a config block into the agnostic model,
// evaluating variable defaults statically.
func (l *Loader) translateConfig(ctx context.Context, c *schema.Config) (*config.CaseSpec, error) {
	logger := ctxlog.FromContext(ctx)

	spec := &config.CaseSpec{
		Name:          c.Name,
		PrimaryModule: c.PrimaryModule,
	}

	for _, p := range c.Pages {
		page := &config.Page{
			Title:        p.Title,
			ExclusiveVar: p.Exclusive,
		}
		for _, f := range p.Forms {
			form, err := translateForm(c.Name, f)
			if err != nil {
				return nil, err
			}
			page.Common = append(page.Common, form)
		}
		for _, f := range p.ExclusiveForms {
			form, err := translateForm(c.Name, f)
			if err != nil {
				return nil, err
			}
			page.Exclusive = append(page.Exclusive, form)
		}
		spec.Pages = append(spec.Pages, page)
	}

	for _, f := range c.Formulas {
		spec.Formulas = append(spec.Formulas, &config.FormulaSpec{
			Name:    f.Name,
			Form:    f.Form,
			Inputs:  f.Inputs,
			Outputs: f.Outputs,
		})
	}
	for _, s := range c.Secondaries {
		spec.Secondaries = append(spec.Secondaries, &config.SecondarySpec{
			Name:    s.Name,
			Module:  s.Module,
			Inputs:  s.Inputs,
			Outputs: s.Outputs,
		})
	}

	logger.Debug("Translated configuration.",
		"config", spec.Name,
		"pages", len(spec.Pages),
		"formulas", len(spec.Formulas),
		"secondaries", len(spec.Secondaries),
	)
	return spec, nil
}

// translateForm converts a form block, parsing each variable's value tag
// and evaluating its default.
func translateForm(configName string, f *schema.Form) (*config.Form, error) {
	form := &config.Form{Name: f.Name}
	for _, v := range f.Variables {
		tag, err := config.ParseTag(v.Type)
		if err != nil {
			return nil, fmt.Errorf("config %q, form %q, variable %q: %w", configName, f.Name, v.Name, err)
		}

		var defaultVal *cty.Value
		if v.Default != nil {
			val, diags := v.Default.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("config %q, form %q, variable %q: invalid default: %w", configName, f.Name, v.Name, diags)
			}
			// A null default is the same as no default at all.
			if !val.IsNull() {
				if want, checked := tagType(tag); checked {
					converted, err := convert.Convert(val, want)
					if err != nil {
						return nil, fmt.Errorf("config %q, form %q, variable %q: default does not match tag %q: %w",
							configName, f.Name, v.Name, tag, err)
					}
					val = converted
				}
				defaultVal = &val
			}
		}

		form.Variables = append(form.Variables, &config.Variable{
			Name:    v.Name,
			Form:    f.Name,
			Tag:     tag,
			Default: defaultVal,
		})
	}
	return form, nil
}

// tagType maps a value tag to the cty type its default must convert to.
// Table values are free-form and skip the check.
func tagType(tag config.Tag) (cty.Type, bool) {
	switch tag {
	case config.TagNumber:
		return cty.Number, true
	case config.TagString:
		return cty.String, true
	case config.TagArray:
		return cty.List(cty.Number), true
	case config.TagMatrix:
		return cty.List(cty.List(cty.Number)), true
	default:
		return cty.DynamicPseudoType, false
	}
}
