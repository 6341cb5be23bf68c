package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/astar"
	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/dijkstra"
	"github.com/katalvlaran/traverser/internal/testgraph"
	"github.com/katalvlaran/traverser/trace"
)

// reopenGraph: S—A(1), A—B(1), S—B(3), B—G(5) with h(A)=6.
// B is settled at 3 via S before A is expanded and later improves to 2.
func reopenGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    int64
	}{{"S", "A", 1}, {"A", "B", 1}, {"S", "B", 3}, {"B", "G", 5}} {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}
	require.NoError(t, g.SetHeuristic("A", 6))

	return g
}

func TestTrace_ReopensFinalizedVertex(t *testing.T) {
	res, err := astar.Trace(reopenGraph(t), "S", "G")
	require.NoError(t, err)

	got := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		got[i] = s.String()
	}
	assert.Equal(t, []string{
		"visiting S", "checkAdj A", "checkAdj B", "finalized S",
		"visiting B", "checkAdj A", "checkAdj G", "finalized B",
		"visiting A", "checkAdj B", "finalized A",
		"visiting B", "checkAdj G", "finalized B",
		"visiting G", "finalized G",
		"path S", "path A", "path B", "path G",
	}, got)

	final := res.Final()
	assert.Equal(t, int64(7), res.Distances[final]["G"])
	assert.Equal(t, "A", res.From[final]["B"])
	assert.Equal(t, int64(7), res.Scores[final]["A"])

	p, ok := res.PathTo("G")
	require.True(t, ok)
	assert.Equal(t, trace.Path{"S", "A", "B", "G"}, p)
}

func TestTrace_ScoresRecorded(t *testing.T) {
	res, err := astar.Trace(reopenGraph(t), "S", "G")
	require.NoError(t, err)
	require.True(t, res.HasScores())
	assert.Len(t, res.Scores, res.Len()+1)

	for i := range res.Scores {
		for id, s := range res.Scores[i] {
			d := res.Distances[i][id]
			if d == trace.Inf {
				assert.Equal(t, trace.Inf, s)
			} else {
				assert.GreaterOrEqual(t, s, d)
			}
		}
	}
}

// withAdmissibleHeuristics assigns h(v) in [d/2, d] where d is the true
// distance from v to goal.
func withAdmissibleHeuristics(t *testing.T, g *core.Graph, goal string, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	dist, err := dijkstra.Distances(g, goal)
	require.NoError(t, err)
	for id, d := range dist {
		lo := (d + 1) / 2
		require.NoError(t, g.SetHeuristic(id, lo+rng.Int63n(d-lo+1)))
	}
}

func TestTrace_MatchesDijkstraOnRandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := testgraph.Random(seed, 30, 0.06)
		withAdmissibleHeuristics(t, g, "v29", seed)

		want, err := dijkstra.Trace(g, "v00", "v29")
		require.NoError(t, err)
		got, err := astar.Trace(g, "v00", "v29")
		require.NoError(t, err)

		require.True(t, got.Reached)
		assert.Equal(t,
			want.Distances[want.Final()]["v29"],
			got.Distances[got.Final()]["v29"],
			"seed %d", seed)

		p, ok := got.PathTo("v29")
		require.True(t, ok)
		cost, ok := p.Cost(g.Weight)
		require.True(t, ok)
		assert.Equal(t, got.Distances[got.Final()]["v29"], cost)
	}
}

func TestTrace_TraverseAllSettlesEverything(t *testing.T) {
	g := testgraph.Random(11, 20, 0.1)
	withAdmissibleHeuristics(t, g, "v19", 11)

	res, err := astar.Trace(g, "v00", "")
	require.NoError(t, err)
	assert.False(t, res.Reached)

	settled := map[string]bool{}
	for _, s := range res.Steps {
		assert.NotEqual(t, trace.MarkPath, s.Action)
		if s.Action == trace.Finalize {
			settled[s.Node] = true
		}
	}
	assert.Len(t, settled, g.VertexCount())
}

func TestTrace_Errors(t *testing.T) {
	_, err := astar.Trace(nil, "A", "B")
	assert.ErrorIs(t, err, trace.ErrNilGraph)
	_, err = astar.Trace(testgraph.Triangle(), "A", "Q")
	assert.ErrorIs(t, err, trace.ErrGoalNotFound)
}
