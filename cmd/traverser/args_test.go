package main

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeArgs runs a fresh root command with args and returns its stdout.
func executeArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, kv := range os.Environ() {
		if k, _, _ := strings.Cut(kv, "="); strings.HasPrefix(k, "TRAVERSER_") {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}

	var out strings.Builder
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&strings.Builder{})
	root.SetArgs(args)
	_, err := root.ExecuteC()

	return out.String(), err
}

func commandNames(root *cobra.Command) []string {
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	return names
}

func TestRoot_Commands(t *testing.T) {
	names := commandNames(newRootCmd())
	for _, want := range []string{"run", "steps", "compare", "path", "graph"} {
		assert.Contains(t, names, want)
	}
}

func TestGraphCmd(t *testing.T) {
	out, err := executeArgs(t, "graph", "--size", "10", "--end", "J", "--seed", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "Nodes")
	assert.Contains(t, out, "Edges")
	assert.Contains(t, out, "Heuristic")
}

func TestStepsCmd(t *testing.T) {
	out, err := executeArgs(t, "steps", "--size", "10", "--end", "J", "--seed", "4", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "   1  visiting  A")
	assert.Contains(t, out, "reached=true")
	assert.Contains(t, out, "Min Path")
	assert.NotContains(t, out, "A*")

	out, err = executeArgs(t, "steps", "-a", "astar", "--size", "10", "--end", "J", "--seed", "4", "--table")
	require.NoError(t, err)
	assert.Contains(t, out, "A*")
}

func TestCompareCmd(t *testing.T) {
	out, err := executeArgs(t, "compare", "--size", "12", "--end", "L", "--seed", "9")
	require.NoError(t, err)
	for _, name := range []string{"dijkstra", "astar", "bfs", "dfs"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "A→L on 12 nodes")
}

func TestPathCmd(t *testing.T) {
	out, err := executeArgs(t, "path", "J", "--size", "10", "--end", "J", "--seed", "4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "J: A → "), out)

	_, err = executeArgs(t, "path", "Z", "--size", "10", "--end", "J")
	assert.Error(t, err)

	_, err = executeArgs(t, "path")
	assert.Error(t, err)
}

func TestRunCmd(t *testing.T) {
	out, err := executeArgs(t, "run", "--size", "4", "--end", "D", "--seed", "2", "--speed", "fast")
	require.NoError(t, err)
	assert.Contains(t, out, "Dijkstra A→D")
	assert.Contains(t, out, "   1  visiting A")
	assert.Contains(t, out, "Min Path")
	assert.Contains(t, out, "State")
}

func TestMetricsFlag(t *testing.T) {
	out, err := executeArgs(t, "steps", "--size", "6", "--end", "F", "--seed", "1", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "traverser_traversals_total")
	assert.Contains(t, out, "traverser_graphs_generated_total")
}

func TestFlagValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"size out of range", []string{"graph", "--size", "60"}},
		{"unknown algorithm", []string{"steps", "-a", "greedy"}},
		{"unknown speed", []string{"run", "--speed", "warp"}},
		{"same endpoints", []string{"steps", "--start", "A", "--end", "A"}},
		{"end beyond size", []string{"steps", "--size", "5", "--end", "l"}},
		{"bad log backend", []string{"graph", "--log-backend", "zap"}},
		{"missing config file", []string{"graph", "--config", "/nonexistent/traverser.yaml"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := executeArgs(t, tc.args...)
			assert.Error(t, err)
		})
	}
}
