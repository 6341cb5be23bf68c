package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/builder"
	"github.com/katalvlaran/traverser/dijkstra"
	"github.com/katalvlaran/traverser/trace"
)

func TestGenerate_Connected(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := builder.Generate(38, "A", "l", builder.WithSeed(seed))
		require.NoError(t, err)
		assert.Equal(t, 38, g.VertexCount())
		assert.GreaterOrEqual(t, g.EdgeCount(), 37)

		dist, err := dijkstra.Distances(g, "A")
		require.NoError(t, err)
		for id, d := range dist {
			assert.NotEqual(t, trace.Inf, d, "seed %d: %s unreachable", seed, id)
		}
	}
}

func TestGenerate_HeuristicAdmissible(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g, err := builder.Generate(38, "A", "l", builder.WithSeed(seed))
		require.NoError(t, err)

		dist, err := dijkstra.Distances(g, "l")
		require.NoError(t, err)
		assert.Zero(t, g.Heuristic("l"))
		for _, id := range g.Vertices() {
			h := g.Heuristic(id)
			assert.GreaterOrEqual(t, h, int64(0))
			assert.LessOrEqual(t, h, dist[id], "seed %d vertex %s", seed, id)
			// lower bound from the default slack
			assert.GreaterOrEqual(t, 2*h, dist[id], "seed %d vertex %s", seed, id)
		}
	}
}

func TestGenerate_ExactHeuristicWithFullSlack(t *testing.T) {
	g, err := builder.Generate(20, "A", "T", builder.WithSeed(4), builder.WithHeuristicSlack(1))
	require.NoError(t, err)
	dist, err := dijkstra.Distances(g, "T")
	require.NoError(t, err)
	for _, id := range g.Vertices() {
		assert.Equal(t, dist[id], g.Heuristic(id), id)
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := builder.Generate(38, "A", "l", builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.Generate(38, "A", "l", builder.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for _, id := range a.Vertices() {
		assert.Equal(t, a.Heuristic(id), b.Heuristic(id))
	}
}

func TestGenerate_WeightsInRange(t *testing.T) {
	g, err := builder.Generate(52, "A", "z", builder.WithSeed(8), builder.WithWeightRange(3, 5))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(3))
		assert.LessOrEqual(t, e.Weight, int64(5))
	}
}

func TestGenerate_TreeWithoutExtraEdges(t *testing.T) {
	g, err := builder.Generate(30, "A", "B", builder.WithSeed(1), builder.WithEdgeProbability(0))
	require.NoError(t, err)
	assert.Equal(t, 29, g.EdgeCount())

	g, err = builder.Generate(10, "A", "B", builder.WithSeed(1), builder.WithEdgeProbability(1))
	require.NoError(t, err)
	assert.Equal(t, 45, g.EdgeCount())
}

func TestGenerate_Errors(t *testing.T) {
	cases := []struct {
		name       string
		size       int
		start, end string
		want       error
	}{
		{"too small", 1, "A", "B", builder.ErrTooFewVertices},
		{"too large", 53, "A", "B", builder.ErrTooManyVertices},
		{"start outside", 5, "F", "A", builder.ErrLabelNotInGraph},
		{"end outside", 38, "A", "m", builder.ErrLabelNotInGraph},
		{"same", 5, "C", "C", builder.ErrSameEndpoints},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.Generate(tc.size, tc.start, tc.end, builder.WithSeed(1))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.Generate(3, "A", "B", builder.WithIDScheme(func(int) string { return "x" }))
	assert.ErrorIs(t, err, builder.ErrLabelNotInGraph)
	_, err = builder.Generate(3, "x", "x", builder.WithIDScheme(func(int) string { return "x" }))
	assert.ErrorIs(t, err, builder.ErrSameEndpoints)
}

func TestGenerate_DuplicateIDs(t *testing.T) {
	scheme := func(i int) string {
		if i == 2 {
			return "a"
		}
		return builder.LetterIDFn(i + 26)
	}
	_, err := builder.Generate(3, "a", "b", builder.WithIDScheme(scheme))
	assert.ErrorIs(t, err, builder.ErrDuplicateID)
}

func TestOptions_PanicOnBadInput(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(5, 1) })
	assert.Panics(t, func() { builder.WithWeightRange(-1, 1) })
	assert.Panics(t, func() { builder.WithEdgeProbability(1.5) })
	assert.Panics(t, func() { builder.WithHeuristicSlack(-0.1) })
	assert.Panics(t, func() { builder.WithConstantWeight(-2) })
}
