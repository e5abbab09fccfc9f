package plan

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/samcase/internal/caseerr"
	"github.com/vk/samcase/internal/classify"
)

// info builds a CaseVariableInfo with just the parts the planner reads.
func info(producers []classify.ProducerID, produces []classify.ProducerEdge, consumes []classify.ConsumerEdge) *classify.CaseVariableInfo {
	return &classify.CaseVariableInfo{
		Config:        "Wind Power-Residential",
		Producers:     producers,
		ProducerEdges: produces,
		ConsumerEdges: consumes,
	}
}

func TestBuild_EmptyGraph(t *testing.T) {
	plan, err := Build(context.Background(), info(nil, nil, nil))
	require.NoError(t, err)
	assert.Empty(t, plan)
}

func TestBuild_ChainOrdering(t *testing.T) {
	f1 := classify.FormulaID("F1")
	f2 := classify.FormulaID("F2")
	m1 := classify.SecondaryID("M1")

	// M1 consumes F2's output, F2 consumes F1's output; declared in the
	// opposite order to prove edges, not declaration, drive the ordering.
	plan, err := Build(context.Background(), info(
		[]classify.ProducerID{m1, f2, f1},
		[]classify.ProducerEdge{
			{Producer: f1, Variable: "a"},
			{Producer: f2, Variable: "b"},
			{Producer: m1, Variable: "c"},
		},
		[]classify.ConsumerEdge{
			{Variable: "a", Consumer: classify.ConsumerID(f2)},
			{Variable: "b", Consumer: classify.ConsumerID(m1)},
			{Variable: "c", Consumer: classify.PrimaryID("windpower")},
		},
	))
	require.NoError(t, err)
	assert.Equal(t, []classify.ProducerID{f1, f2, m1}, plan)
}

func TestBuild_TieBreakByDeclarationOrder(t *testing.T) {
	a := classify.FormulaID("alpha")
	b := classify.FormulaID("beta")
	c := classify.FormulaID("gamma")

	t.Run("declared order is kept for independent producers", func(t *testing.T) {
		plan, err := Build(context.Background(), info([]classify.ProducerID{c, a, b}, nil, nil))
		require.NoError(t, err)
		assert.Equal(t, []classify.ProducerID{c, a, b}, plan)
	})

	t.Run("dependencies still outrank declaration order", func(t *testing.T) {
		plan, err := Build(context.Background(), info(
			[]classify.ProducerID{c, a, b},
			[]classify.ProducerEdge{{Producer: b, Variable: "x"}},
			[]classify.ConsumerEdge{{Variable: "x", Consumer: classify.ConsumerID(c)}},
		))
		require.NoError(t, err)
		assert.Equal(t, []classify.ProducerID{a, b, c}, plan)
	})
}

func TestBuild_Deterministic(t *testing.T) {
	producers := []classify.ProducerID{
		classify.FormulaID("F1"),
		classify.SecondaryID("M1"),
		classify.FormulaID("F2"),
	}
	in := info(producers,
		[]classify.ProducerEdge{
			{Producer: producers[0], Variable: "a"},
			{Producer: producers[1], Variable: "b"},
			{Producer: producers[2], Variable: "c"},
		},
		[]classify.ConsumerEdge{
			{Variable: "a", Consumer: classify.ConsumerID(producers[2])},
			{Variable: "b", Consumer: classify.ConsumerID(producers[2])},
		},
	)

	first, err := Build(context.Background(), in)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := Build(context.Background(), in)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestBuild_CycleRejected(t *testing.T) {
	f1 := classify.FormulaID("F1")
	f2 := classify.FormulaID("F2")

	// F1 consumes F2's output and vice versa.
	_, err := Build(context.Background(), info(
		[]classify.ProducerID{f1, f2},
		[]classify.ProducerEdge{
			{Producer: f1, Variable: "a"},
			{Producer: f2, Variable: "b"},
		},
		[]classify.ConsumerEdge{
			{Variable: "b", Consumer: classify.ConsumerID(f1)},
			{Variable: "a", Consumer: classify.ConsumerID(f2)},
		},
	))
	require.Error(t, err)

	var cyclic *caseerr.CyclicDependencyError
	require.ErrorAs(t, err, &cyclic)
	assert.Equal(t, "Wind Power-Residential", cyclic.Config)
	assert.ElementsMatch(t, []string{string(f1), string(f2)}, cyclic.Cycle)
}

func TestBuild_CycleInDisjointComponent(t *testing.T) {
	ok := classify.FormulaID("ok")
	x := classify.FormulaID("x")
	y := classify.FormulaID("y")
	z := classify.FormulaID("z")

	_, err := Build(context.Background(), info(
		[]classify.ProducerID{ok, x, y, z},
		[]classify.ProducerEdge{
			{Producer: x, Variable: "vx"},
			{Producer: y, Variable: "vy"},
			{Producer: z, Variable: "vz"},
		},
		[]classify.ConsumerEdge{
			{Variable: "vx", Consumer: classify.ConsumerID(y)},
			{Variable: "vy", Consumer: classify.ConsumerID(z)},
			{Variable: "vz", Consumer: classify.ConsumerID(x)},
		},
	))
	require.Error(t, err)

	var cyclic *caseerr.CyclicDependencyError
	require.ErrorAs(t, err, &cyclic)
	assert.ElementsMatch(t, []string{string(x), string(y), string(z)}, cyclic.Cycle)
	assert.NotContains(t, cyclic.Cycle, string(ok))
}

func TestBuild_SelfLoopRejected(t *testing.T) {
	// A producer consuming its own output can never run after itself;
	// that is a one-node cycle, not a valid plan.
	f1 := classify.FormulaID("F1")
	plan, err := Build(context.Background(), info(
		[]classify.ProducerID{f1},
		[]classify.ProducerEdge{{Producer: f1, Variable: "x"}},
		[]classify.ConsumerEdge{{Variable: "x", Consumer: classify.ConsumerID(f1)}},
	))
	require.Error(t, err)
	assert.Nil(t, plan)

	var cyclic *caseerr.CyclicDependencyError
	require.ErrorAs(t, err, &cyclic)
	assert.Equal(t, []string{string(f1)}, cyclic.Cycle)
}

func TestBuild_SharedVariableConsumerIsNotAnEdge(t *testing.T) {
	// The primary module consumes producer outputs but is not a producer;
	// it must never show up in the plan.
	f1 := classify.FormulaID("F1")
	plan, err := Build(context.Background(), info(
		[]classify.ProducerID{f1},
		[]classify.ProducerEdge{{Producer: f1, Variable: "tilt"}},
		[]classify.ConsumerEdge{{Variable: "tilt", Consumer: classify.PrimaryID("pvwattsv8")}},
	))
	require.NoError(t, err)
	assert.Equal(t, []classify.ProducerID{f1}, plan)
}
