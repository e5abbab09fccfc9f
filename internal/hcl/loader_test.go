package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/samcase/internal/config"
)

// writeSpec writes one .hcl declaration file into dir and returns its path.
func writeSpec(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

const pvwattsSpec = `
module "pvwattsv8" {
  inputs  = ["dc_capacity", "losses", "tilt"]
  outputs = ["annual_energy"]
}

module "wind_obos" {
  inputs  = ["blade_length"]
  outputs = ["rotor_diameter"]
}

config "PVWatts-None" {
  primary_module = "pvwattsv8"

  page "System Design" {
    form "PVWatts Design" {
      variable "dc_capacity" {
        type    = "number"
        default = 4
      }
      variable "losses" {
        type = "number"
      }
      variable "tilt_raw" {
        type = "number"
      }
      variable "power_curve" {
        type    = "matrix"
        default = [[0, 0], [12, 1500]]
      }
    }
  }

  page "Location and Resource" {
    exclusive = "use_weather_file"

    exclusive_form "Solar Resource File" {
      variable "file_name" {
        type = "string"
      }
    }
  }

  formula "F1" {
    form    = "PVWatts Design"
    inputs  = ["tilt_raw"]
    outputs = ["tilt"]
  }

  secondary "M1" {
    module  = "wind_obos"
    inputs  = ["blade_length"]
    outputs = ["rotor_diameter"]
  }
}
`

func TestLoad_FullDeclarationFile(t *testing.T) {
	path := writeSpec(t, t.TempDir(), "pvwatts.hcl", pvwattsSpec)

	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)

	require.Len(t, model.Modules, 2)
	assert.Equal(t, []string{"dc_capacity", "losses", "tilt"}, model.Modules["pvwattsv8"].Inputs)
	assert.Equal(t, []string{"rotor_diameter"}, model.Modules["wind_obos"].Outputs)

	spec, ok := model.Configs["PVWatts-None"]
	require.True(t, ok)
	assert.Equal(t, "pvwattsv8", spec.PrimaryModule)
	require.Len(t, spec.Pages, 2)

	design := spec.Pages[0].Common[0]
	assert.Equal(t, "PVWatts Design", design.Name)
	require.Len(t, design.Variables, 4)

	dc := design.Variables[0]
	assert.Equal(t, config.TagNumber, dc.Tag)
	assert.Equal(t, "PVWatts Design", dc.Form)
	require.NotNil(t, dc.Default)
	assert.True(t, dc.Default.RawEquals(cty.NumberIntVal(4)))
	assert.Nil(t, design.Variables[1].Default, "a variable without a default stays unfilled")

	curve := design.Variables[3]
	assert.Equal(t, config.TagMatrix, curve.Tag)
	require.NotNil(t, curve.Default)
	assert.True(t, curve.Default.Type().Equals(cty.List(cty.List(cty.Number))))

	resource := spec.Pages[1]
	assert.Equal(t, "use_weather_file", resource.ExclusiveVar)
	assert.Empty(t, resource.Common)
	require.Len(t, resource.Exclusive, 1)
	assert.Equal(t, "Solar Resource File", resource.Exclusive[0].Name)

	require.Len(t, spec.Formulas, 1)
	assert.Equal(t, []string{"tilt"}, spec.Formulas[0].Outputs)
	require.Len(t, spec.Secondaries, 1)
	assert.Equal(t, "wind_obos", spec.Secondaries[0].Module)
}

func TestLoad_WalksDirectories(t *testing.T) {
	dir := t.TempDir()
	writeSpec(t, dir, "modules.hcl", `
module "windpower" {
  inputs = ["rotor_diameter"]
}
`)
	sub := filepath.Join(dir, "configs")
	require.NoError(t, os.Mkdir(sub, 0750))
	writeSpec(t, sub, "wind.hcl", `
config "Wind Power-Residential" {
  primary_module = "windpower"
}
`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.Len(t, model.Modules, 1)
	assert.Len(t, model.Configs, 1)
}

func TestLoad_MissingPathRejected(t *testing.T) {
	// A typo'd path must fail loudly, not resolve zero configurations.
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_Rejections(t *testing.T) {
	t.Run("invalid syntax", func(t *testing.T) {
		path := writeSpec(t, t.TempDir(), "broken.hcl", `config "A" {`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse")
	})

	t.Run("invalid value tag", func(t *testing.T) {
		path := writeSpec(t, t.TempDir(), "tag.hcl", `
config "A" {
  primary_module = "m"
  page "P" {
    form "F" {
      variable "x" {
        type = "integer"
      }
    }
  }
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid value tag")
	})

	t.Run("default does not match tag", func(t *testing.T) {
		path := writeSpec(t, t.TempDir(), "default.hcl", `
config "A" {
  primary_module = "m"
  page "P" {
    form "F" {
      variable "x" {
        type    = "array"
        default = "not an array"
      }
    }
  }
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match tag")
	})

	t.Run("duplicate configuration across files", func(t *testing.T) {
		dir := t.TempDir()
		writeSpec(t, dir, "a.hcl", `
config "A" {
  primary_module = "m"
}
`)
		writeSpec(t, dir, "b.hcl", `
config "A" {
  primary_module = "m"
}
`)
		_, err := NewLoader().Load(context.Background(), dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate configuration "A"`)
	})

	t.Run("duplicate module manifest", func(t *testing.T) {
		path := writeSpec(t, t.TempDir(), "m.hcl", `
module "m" {
  inputs = []
}

module "m" {
  inputs = []
}
`)
		_, err := NewLoader().Load(context.Background(), path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `duplicate module manifest "m"`)
	})
}
