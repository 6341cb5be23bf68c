package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/bfs"
	"github.com/katalvlaran/traverser/internal/testgraph"
	"github.com/katalvlaran/traverser/trace"
)

func TestTrace_Triangle(t *testing.T) {
	res, err := bfs.Trace(testgraph.Triangle(), "A", "C")
	require.NoError(t, err)

	var got []string
	for _, s := range res.Steps {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{
		"visiting A", "checkAdj B", "checkAdj C",
		"visiting B",
		"visiting C",
		"path A", "path C",
	}, got)

	// BFS tree path cost, not the optimum
	assert.Equal(t, int64(10), res.Distances[res.Final()]["C"])
	assert.Equal(t, "A", res.From[res.Final()]["C"])
	assert.True(t, res.Reached)
}

func TestTrace_LevelOrder(t *testing.T) {
	g := testgraph.Random(5, 25, 0.08)
	res, err := bfs.Trace(g, "v00", "")
	require.NoError(t, err)

	// hop counts along the visit sequence never decrease
	hops := map[string]int{"v00": 0}
	prev := res.From[res.Final()]
	var hop func(string) int
	hop = func(id string) int {
		if h, ok := hops[id]; ok {
			return h
		}
		hops[id] = hop(prev[id]) + 1

		return hops[id]
	}

	last, visited := 0, 0
	for _, s := range res.Steps {
		if s.Action != trace.Visit {
			continue
		}
		visited++
		h := hop(s.Node)
		assert.GreaterOrEqual(t, h, last)
		last = h
	}
	assert.Equal(t, g.VertexCount(), visited)
}

func TestTrace_EachVertexCheckedOnce(t *testing.T) {
	g := testgraph.Random(9, 30, 0.1)
	res, err := bfs.Trace(g, "v00", "")
	require.NoError(t, err)

	checks := map[string]int{}
	for _, s := range res.Steps {
		assert.NotEqual(t, trace.Finalize, s.Action)
		if s.Action == trace.CheckAdj {
			checks[s.Node]++
		}
	}
	assert.Len(t, checks, g.VertexCount()-1)
	for id, n := range checks {
		assert.Equal(t, 1, n, id)
	}
}

func TestTrace_PathCostMatchesDistance(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := testgraph.Random(seed, 24, 0.08)

		res, err := bfs.Trace(g, "v00", "")
		require.NoError(t, err)
		final := res.Distances[res.Final()]
		for _, id := range g.Vertices() {
			require.NotEqual(t, trace.Inf, final[id], "seed %d vertex %s", seed, id)

			p, ok := res.PathTo(id)
			require.True(t, ok, "seed %d vertex %s", seed, id)
			assert.Equal(t, "v00", p[0])
			assert.Equal(t, id, p[len(p)-1])
			cost, ok := p.Cost(g.Weight)
			require.True(t, ok)
			assert.Equal(t, final[id], cost, "seed %d vertex %s", seed, id)
		}
	}
}

func TestTrace_Deterministic(t *testing.T) {
	g := testgraph.Random(4, 30, 0.06)
	a, err := bfs.Trace(g, "v03", "v27")
	require.NoError(t, err)
	b, err := bfs.Trace(g.Clone(), "v03", "v27")
	require.NoError(t, err)
	assert.Equal(t, a.Steps, b.Steps)
}

func TestTrace_Errors(t *testing.T) {
	_, err := bfs.Trace(nil, "A", "")
	assert.ErrorIs(t, err, trace.ErrNilGraph)
	_, err = bfs.Trace(testgraph.Triangle(), "Z", "")
	assert.ErrorIs(t, err, trace.ErrStartNotFound)
	_, err = bfs.Trace(testgraph.Triangle(), "A", "", trace.WithMaxSteps(2))
	assert.ErrorIs(t, err, trace.ErrStepLimit)
}
