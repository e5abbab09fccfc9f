package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	for _, valid := range []string{"number", "string", "array", "matrix", "table"} {
		tag, err := ParseTag(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, string(tag))
	}

	_, err := ParseTag("integer")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value tag "integer"`)
}

func TestCaseSpec_FormsFlattensPages(t *testing.T) {
	spec := &CaseSpec{
		Name: "MSLF-None",
		Pages: []*Page{
			{
				Title:  "Location and Resource",
				Common: []*Form{{Name: "Solar Resource Data"}},
			},
			{
				Title:        "System Design",
				Common:       []*Form{{Name: "MSLF Design"}},
				ExclusiveVar: "field_model",
				Exclusive:    []*Form{{Name: "Empirical Field"}, {Name: "Detailed Field"}},
			},
		},
	}

	var names []string
	for _, f := range spec.Forms() {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"Solar Resource Data", "MSLF Design", "Empirical Field", "Detailed Field"}, names)
}

func TestSpecStore(t *testing.T) {
	model := &Model{
		Modules: map[string]*ModuleManifest{
			"pvwattsv8": {ID: "pvwattsv8", Inputs: []string{"dc_capacity"}},
		},
		Configs: map[string]*CaseSpec{
			"PVWatts-None":        {Name: "PVWatts-None"},
			"Biopower-Commercial": {Name: "Biopower-Commercial"},
		},
	}
	store := NewSpecStore(model)

	assert.Equal(t, []string{"Biopower-Commercial", "PVWatts-None"}, store.ConfigNames())

	spec, ok := store.Spec("PVWatts-None")
	require.True(t, ok)
	assert.Equal(t, "PVWatts-None", spec.Name)

	_, ok = store.Spec("MSLF-None")
	assert.False(t, ok)

	manifest, ok := store.Manifest("pvwattsv8")
	require.True(t, ok)
	assert.Equal(t, []string{"dc_capacity"}, manifest.Inputs)

	_, ok = store.Manifest("windpower")
	assert.False(t, ok)
}
