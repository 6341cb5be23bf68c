package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/traverser/astar"
	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/dijkstra"
	"github.com/katalvlaran/traverser/internal/testgraph"
	"github.com/katalvlaran/traverser/playback"
	"github.com/katalvlaran/traverser/render"
	"github.com/katalvlaran/traverser/trace"
)

func TestFormatters(t *testing.T) {
	assert.Equal(t, "Inf", render.Distance(trace.Inf))
	assert.Equal(t, "7", render.Distance(7))
	assert.Equal(t, "-", render.Predecessor(map[string]string{}, "A"))
	assert.Equal(t, "A", render.Predecessor(map[string]string{"B": "A"}, "B"))
	assert.Equal(t, "A → B → C", render.JoinPath(trace.Path{"A", "B", "C"}))
}

func TestPathTable(t *testing.T) {
	th := render.DefaultTheme()
	dist := map[string]int64{"A": 0, "B": 2, "C": trace.Inf}
	from := map[string]string{"B": "A"}

	out := th.PathTable([]string{"A", "B", "C"}, dist, from, nil)
	assert.Contains(t, out, "Min Path")
	assert.Contains(t, out, "From")
	assert.NotContains(t, out, "A*")
	assert.Contains(t, out, "Inf")
	assert.Contains(t, out, "-")

	out = th.PathTable([]string{"A"}, dist, from, map[string]int64{"A": 9})
	assert.Contains(t, out, "A*")
	assert.Contains(t, out, "9")
}

func TestPathTable_FromResult(t *testing.T) {
	g := testgraph.Triangle()
	res, err := astar.Trace(g, "A", "C")
	require.NoError(t, err)

	i := res.Final()
	out := render.DefaultTheme().PathTable(g.Vertices(), res.Distances[i], res.From[i], res.Scores[i])
	lines := strings.Split(out, "\n")
	var rowC string
	for _, l := range lines {
		if strings.Contains(l, " C ") {
			rowC = l
		}
	}
	require.NotEmpty(t, rowC)
	assert.Contains(t, rowC, "5")
	assert.Contains(t, rowC, "B")
}

func TestStepLog(t *testing.T) {
	out := render.DefaultTheme().StepLog([]playback.LogEntry{
		{Index: 1, Step: trace.Step{Node: "A", Action: trace.Visit}},
		{Index: 2, Step: trace.Step{Node: "B", Action: trace.CheckAdj}},
	})
	assert.Contains(t, out, "State")
	assert.Contains(t, out, "visiting")
	assert.Contains(t, out, "checkAdj")
}

func TestCompare(t *testing.T) {
	g := testgraph.Triangle()
	res, err := dijkstra.Trace(g, "A", "C")
	require.NoError(t, err)
	all, err := dijkstra.Trace(g, "A", "")
	require.NoError(t, err)

	out := render.DefaultTheme().Compare([]*trace.Result{res, all, nil}, g.Weight)
	assert.Contains(t, out, "dijkstra")
	assert.Contains(t, out, "true")
	assert.Contains(t, out, "A → B → C")
	assert.Contains(t, out, "12")
}

func TestGraphAndChips(t *testing.T) {
	g := testgraph.Triangle()
	require.NoError(t, g.SetState("B", core.OnPath))
	th := render.DefaultTheme()

	listing := th.Graph(g)
	assert.Contains(t, listing, "Nodes")
	assert.Contains(t, listing, "Edges")
	assert.Contains(t, listing, "e3")
	assert.Contains(t, listing, "10")

	chips := th.Chips(g)
	for _, id := range []string{"A", "B", "C"} {
		assert.Contains(t, chips, id)
	}
	assert.Empty(t, th.Chips(nil))
	assert.Empty(t, th.Graph(nil))
	assert.Contains(t, th.Legend(), "finalized")
}
