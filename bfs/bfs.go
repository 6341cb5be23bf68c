// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/trace"
)

// Name identifies results produced by this package.
const Name = "bfs"

// walker encapsulates mutable BFS state.
type walker struct {
	rec        *trace.Recorder
	queue      []string
	discovered map[string]bool
}

// Trace runs breadth-first search from start and records every step.
// goal == "" explores the whole component.
//
// Validation matches dijkstra.Trace.
func Trace(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	rec, err := trace.NewRecorder(g, Name, start, goal, false, opts...)
	if err != nil {
		return nil, err
	}

	w := &walker{
		rec:        rec,
		queue:      make([]string, 0, len(rec.Vertices())),
		discovered: make(map[string]bool, len(rec.Vertices())),
	}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return rec.Result(), nil
}

// loop dequeues until the goal is visited or the queue drains.
func (w *walker) loop() error {
	start := w.rec.Start()
	w.discovered[start] = true
	w.queue = append(w.queue, start)

	var err error
	for len(w.queue) > 0 {
		if err = w.rec.Check(); err != nil {
			return err
		}
		u := w.queue[0]
		w.queue = w.queue[1:]

		if err = w.rec.Emit(u, trace.Visit); err != nil {
			return err
		}
		if w.rec.IsGoal(u) {
			return w.rec.ReachGoal()
		}
		if err = w.discover(u); err != nil {
			return err
		}
	}

	return nil
}

// discover enqueues every undiscovered neighbor of u.
func (w *walker) discover(u string) error {
	nbs, err := w.rec.Graph().Neighbors(u)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %q: %w", u, err)
	}

	du := w.rec.Dist(u)
	for _, nb := range nbs {
		if w.discovered[nb.ID] {
			continue
		}
		w.discovered[nb.ID] = true
		w.rec.Relax(nb.ID, u, du+nb.Weight)
		if err = w.rec.Emit(nb.ID, trace.CheckAdj); err != nil {
			return err
		}
		w.queue = append(w.queue, nb.ID)
	}

	return nil
}
