// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/trace"
)

// Name identifies results produced by this package.
const Name = "dfs"

// walker encapsulates mutable DFS state.
type walker struct {
	rec     *trace.Recorder
	visited map[string]bool
}

// Trace runs depth-first search from start and records every step.
// goal == "" explores the whole component.
//
// Validation matches dijkstra.Trace.
func Trace(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	rec, err := trace.NewRecorder(g, Name, start, goal, false, opts...)
	if err != nil {
		return nil, err
	}

	w := &walker{rec: rec, visited: make(map[string]bool, len(rec.Vertices()))}
	found, err := w.visit(start)
	if err != nil {
		return nil, err
	}
	if found {
		if err = rec.ReachGoal(); err != nil {
			return nil, err
		}
	}

	return rec.Result(), nil
}

// visit enters u and reports whether the goal was reached below it.
func (w *walker) visit(u string) (bool, error) {
	if err := w.rec.Check(); err != nil {
		return false, err
	}
	w.visited[u] = true
	if err := w.rec.Emit(u, trace.Visit); err != nil {
		return false, err
	}
	if w.rec.IsGoal(u) {
		return true, nil
	}

	nbs, err := w.rec.Graph().Neighbors(u)
	if err != nil {
		return false, fmt.Errorf("dfs: neighbors of %q: %w", u, err)
	}

	du := w.rec.Dist(u)
	for _, nb := range nbs {
		// a sibling's subtree may have reached nb already
		if w.visited[nb.ID] {
			continue
		}
		w.rec.Relax(nb.ID, u, du+nb.Weight)
		if err = w.rec.Emit(nb.ID, trace.CheckAdj); err != nil {
			return false, err
		}
		found, err := w.visit(nb.ID)
		if err != nil || found {
			return found, err
		}
	}

	return false, nil
}
