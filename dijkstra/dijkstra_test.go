package dijkstra_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/dijkstra"
	"github.com/katalvlaran/traverser/internal/testgraph"
	"github.com/katalvlaran/traverser/trace"
)

func steps(res *trace.Result) []string {
	out := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		out[i] = s.String()
	}

	return out
}

func TestTrace_Triangle(t *testing.T) {
	res, err := dijkstra.Trace(testgraph.Triangle(), "A", "C")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"visiting A", "checkAdj B", "checkAdj C", "finalized A",
		"visiting B", "checkAdj C", "finalized B",
		"visiting C", "finalized C",
		"path A", "path B", "path C",
	}, steps(res))

	final := res.Distances[res.Final()]
	assert.Equal(t, int64(5), final["C"])
	assert.Equal(t, "B", res.From[res.Final()]["C"])
	assert.True(t, res.Reached)
	assert.Nil(t, res.Scores)

	p, ok := res.PathTo("C")
	require.True(t, ok)
	assert.Equal(t, trace.Path{"A", "B", "C"}, p)
}

func TestTrace_TraverseAll(t *testing.T) {
	res, err := dijkstra.Trace(testgraph.Triangle(), "A", "")
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.True(t, res.TraverseAll())

	finalized := map[string]int{}
	for _, s := range res.Steps {
		assert.NotEqual(t, trace.MarkPath, s.Action)
		if s.Action == trace.Finalize {
			finalized[s.Node]++
		}
	}
	assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1}, finalized)
}

func TestTrace_SnapshotLengths(t *testing.T) {
	g := testgraph.Random(7, 20, 0.1)
	res, err := dijkstra.Trace(g, "v00", "v19")
	require.NoError(t, err)
	assert.Len(t, res.Distances, len(res.Steps)+1)
	assert.Len(t, res.From, len(res.Steps)+1)

	// snapshot 0 knows only the start
	for id, d := range res.Distances[0] {
		if id == "v00" {
			assert.Zero(t, d)
		} else {
			assert.Equal(t, trace.Inf, d)
		}
	}
	assert.Empty(t, res.From[0])
}

func TestTrace_OptimalOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := testgraph.Random(seed, 24, 0.08)
		want := testgraph.AllPairs(g)

		res, err := dijkstra.Trace(g, "v00", "")
		require.NoError(t, err)
		final := res.Distances[res.Final()]
		for _, id := range g.Vertices() {
			assert.Equal(t, want["v00"][id], final[id], "seed %d vertex %s", seed, id)

			p, ok := res.PathTo(id)
			require.True(t, ok)
			cost, ok := p.Cost(g.Weight)
			require.True(t, ok)
			assert.Equal(t, final[id], cost)
		}
	}
}

func TestTrace_Deterministic(t *testing.T) {
	g := testgraph.Random(3, 30, 0.06)
	a, err := dijkstra.Trace(g, "v00", "v29")
	require.NoError(t, err)
	b, err := dijkstra.Trace(g.Clone(), "v00", "v29")
	require.NoError(t, err)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestTrace_Errors(t *testing.T) {
	g := testgraph.Triangle()

	_, err := dijkstra.Trace(nil, "A", "C")
	assert.ErrorIs(t, err, trace.ErrNilGraph)

	_, err = dijkstra.Trace(g, "X", "C")
	assert.ErrorIs(t, err, trace.ErrStartNotFound)

	_, err = dijkstra.Trace(g, "A", "X")
	assert.ErrorIs(t, err, trace.ErrGoalNotFound)

	_, err = dijkstra.Trace(g, "A", "C", trace.WithMaxSteps(3))
	assert.ErrorIs(t, err, trace.ErrStepLimit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dijkstra.Trace(g, "A", "C", trace.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTrace_StartIsGoal(t *testing.T) {
	res, err := dijkstra.Trace(testgraph.Triangle(), "A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"visiting A", "finalized A", "path A"}, steps(res))
}

func TestTrace_IsolatedStart(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	res, err := dijkstra.Trace(g, "A", "B")
	require.NoError(t, err)
	assert.False(t, res.Reached)
	assert.Equal(t, []string{"visiting A", "finalized A"}, steps(res))
	_, ok := res.PathTo("B")
	assert.False(t, ok)
}

func TestDistances(t *testing.T) {
	dist, err := dijkstra.Distances(testgraph.Triangle(), "C")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 5, "B": 3, "C": 0}, dist)

	_, err = dijkstra.Distances(nil, "A")
	assert.ErrorIs(t, err, trace.ErrNilGraph)
	_, err = dijkstra.Distances(testgraph.Triangle(), "Z")
	assert.ErrorIs(t, err, trace.ErrStartNotFound)
}
