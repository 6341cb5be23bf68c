// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/internal/frontier"
	"github.com/katalvlaran/traverser/trace"
)

// Name identifies results produced by this package.
const Name = "dijkstra"

// Trace runs Dijkstra from start and records every step.
// goal == "" selects traverse-all mode: the run continues until the
// frontier is empty and no MarkPath steps are appended.
//
// Preconditions and validation (in order):
//  1. options are valid (trace.ErrOptionViolation).
//  2. g is non-nil (trace.ErrNilGraph).
//  3. g contains start (trace.ErrStartNotFound).
//  4. goal is "" or present in g (trace.ErrGoalNotFound).
//
// Complexity: O((V + E) log V) time.
func Trace(g *core.Graph, start, goal string, opts ...trace.Option) (*trace.Result, error) {
	// 1) Validate inputs and record snapshot 0.
	rec, err := trace.NewRecorder(g, Name, start, goal, false, opts...)
	if err != nil {
		return nil, err
	}

	// 2) Run the main loop.
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
	rec       *trace.Recorder // step sink and owner of dist/prev
	finalized map[string]bool // settled vertices
	pq        frontier.Queue  // lazy min-heap keyed by distance
}

// process pops vertices in distance order until the goal is settled or
// the frontier is exhausted.
func (r *runner) process() error {
	r.pq.Push(r.rec.Start(), 0, 0)

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

		// 1) Stale entry for an already-settled vertex.
		if r.finalized[u] {
			continue
		}

		// 2) Dequeue event.
		if err = r.rec.Emit(u, trace.Visit); err != nil {
			return err
		}

		// 3) Goal reached: settle it and mark the path.
		if r.rec.IsGoal(u) {
			r.finalized[u] = true
			if err = r.rec.Emit(u, trace.Finalize); err != nil {
				return err
			}

			return r.rec.ReachGoal()
		}

		// 4) Examine neighbors, then settle u.
		if err = r.relax(u); err != nil {
			return err
		}
		r.finalized[u] = true
		if err = r.rec.Emit(u, trace.Finalize); err != nil {
			return err
		}
	}
}

// relax examines each unsettled neighbor of u, pushing those whose
// distance strictly improves, and emits CheckAdj after the update so the
// step's snapshot already shows it.
func (r *runner) relax(u string) error {
	nbs, err := r.rec.Graph().Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	du := r.rec.Dist(u)
	for _, nb := range nbs {
		if r.finalized[nb.ID] {
			continue
		}
		// strictly better only; equal distances keep the first predecessor
		if nd := du + nb.Weight; nd < r.rec.Dist(nb.ID) {
			r.rec.Relax(nb.ID, u, nd)
			r.pq.Push(nb.ID, nd, nd)
		}
		if err = r.rec.Emit(nb.ID, trace.CheckAdj); err != nil {
			return err
		}
	}

	return nil
}
