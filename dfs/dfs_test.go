package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/dfs"
	"github.com/katalvlaran/traverser/internal/testgraph"
	"github.com/katalvlaran/traverser/trace"
)

func stepStrings(res *trace.Result) []string {
	out := make([]string, len(res.Steps))
	for i, s := range res.Steps {
		out[i] = s.String()
	}

	return out
}

func TestTrace_Triangle(t *testing.T) {
	res, err := dfs.Trace(testgraph.Triangle(), "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"visiting A", "checkAdj B",
		"visiting B", "checkAdj C",
		"visiting C",
		"path A", "path B", "path C",
	}, stepStrings(res))
	assert.Equal(t, int64(5), res.Distances[res.Final()]["C"])
}

func TestTrace_DescendsBeforeSiblings(t *testing.T) {
	// A has children B and D; B has child C.
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "D"}, {"B", "C"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	res, err := dfs.Trace(g, "A", "")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"visiting A", "checkAdj B",
		"visiting B", "checkAdj C",
		"visiting C",
		"checkAdj D", "visiting D",
	}, stepStrings(res))
	assert.False(t, res.Reached)
}

func TestTrace_VisitsComponentOnce(t *testing.T) {
	g := testgraph.Random(12, 40, 0.05)
	res, err := dfs.Trace(g, "v00", "")
	require.NoError(t, err)

	visits := map[string]int{}
	for _, s := range res.Steps {
		assert.NotEqual(t, trace.Finalize, s.Action)
		if s.Action == trace.Visit {
			visits[s.Node]++
		}
	}
	assert.Len(t, visits, g.VertexCount())
	for id, n := range visits {
		assert.Equal(t, 1, n, id)
	}

	// every recorded distance is the cost of its tree path
	final := res.Distances[res.Final()]
	for _, id := range g.Vertices() {
		p, ok := res.PathTo(id)
		require.True(t, ok)
		cost, ok := p.Cost(g.Weight)
		require.True(t, ok)
		assert.Equal(t, final[id], cost)
	}
}

func TestTrace_Errors(t *testing.T) {
	_, err := dfs.Trace(nil, "A", "")
	assert.ErrorIs(t, err, trace.ErrNilGraph)
	_, err = dfs.Trace(testgraph.Triangle(), "A", "nope")
	assert.ErrorIs(t, err, trace.ErrGoalNotFound)
}
