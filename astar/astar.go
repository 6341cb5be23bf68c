// SPDX-License-Identifier: MIT

package astar

import (
	"fmt"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/internal/frontier"
	"github.com/katalvlaran/traverser/trace"
)

// Name identifies results produced by this package.
const Name = "astar"

// Trace runs A* from start towards goal and records every step.
// goal == "" explores the whole component; the heuristic then only
// affects expansion order.
//
// Validation matches dijkstra.Trace.
func Trace(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	rec, err := trace.NewRecorder(g, Name, start, goal, true, opts...)
	if err != nil {
		return nil, err
	}

	r := &runner{
		rec:       rec,
		finalized: make(map[string]bool, len(rec.Vertices())),
	}
	if err = r.process(); err != nil {
		return nil, err
	}

	return rec.Result(), nil
}

// runner holds the mutable state for a single traced execution.
type runner struct {
	rec       *trace.Recorder
	finalized map[string]bool
	pq        frontier.Queue // keyed by dist+h
}

func (r *runner) process() error {
	start := r.rec.Start()
	r.pq.Push(start, r.rec.Score(start), 0)

	var (
		it  frontier.Item
		ok  bool
		err error
	)
	for {
		if err = r.rec.Check(); err != nil {
			return err
		}
		if it, ok = r.pq.Pop(); !ok {
			return nil
		}
		u := it.ID

		// 1) Settled, or superseded by a cheaper push.
		if r.finalized[u] || it.Dist > r.rec.Dist(u) {
			continue
		}

		// 2) Dequeue event.
		if err = r.rec.Emit(u, trace.Visit); err != nil {
			return err
		}

		// 3) Goal reached.
		if r.rec.IsGoal(u) {
			r.finalized[u] = true
			if err = r.rec.Emit(u, trace.Finalize); err != nil {
				return err
			}

			return r.rec.ReachGoal()
		}

		// 4) Examine neighbors, then settle u.
		if err = r.expand(u); err != nil {
			return err
		}
		r.finalized[u] = true
		if err = r.rec.Emit(u, trace.Finalize); err != nil {
			return err
		}
	}
}

// expand checks the neighbors of u, re-opening settled ones that
// improve.
func (r *runner) expand(u string) error {
	nbs, err := r.rec.Graph().Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %q: %w", u, err)
	}

	du := r.rec.Dist(u)
	for _, nb := range nbs {
		v, nd := nb.ID, du+nb.Weight
		if r.finalized[v] {
			if nd >= r.rec.Dist(v) {
				continue
			}
			r.finalized[v] = false
		}
		if nd < r.rec.Dist(v) {
			r.rec.Relax(v, u, nd)
			r.pq.Push(v, nd+r.rec.Heuristic(v), nd)
		}
		if err = r.rec.Emit(v, trace.CheckAdj); err != nil {
			return err
		}
	}

	return nil
}
