// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/traverser/core"
)

// Recorder accumulates Steps and per-step snapshots for one traversal.
//
// Algorithms mutate the running distance and predecessor maps through
// Relax/SetDist and call Emit once per event; Emit appends the Step and
// snapshots the maps, so snapshot i always reflects the state after step i.
//
// A Recorder is single-use and not safe for concurrent use.
type Recorder struct {
	g    *core.Graph
	opts Options
	ids  []string

	dist map[string]int64
	prev map[string]string
	heur map[string]int64 // nil unless scores are recorded

	res *Result
}

// NewRecorder validates the common inputs, initialises distances (Inf
// everywhere except start = 0) and records snapshot 0.
//
// Preconditions and validation (in order):
//  1. options are valid (ErrOptionViolation).
//  2. g is non-nil (ErrNilGraph).
//  3. g contains start (ErrStartNotFound).
//  4. goal is "" or present in g (ErrGoalNotFound).
func NewRecorder(g *core.Graph, algorithm, start, goal string, withScores bool, opts ...Option) (*Recorder, error) {
	o, err := Resolve(opts...)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if goal != "" && !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalNotFound, goal)
	}

	ids := g.Vertices()
	r := &Recorder{
		g:    g,
		opts: o,
		ids:  ids,
		dist: make(map[string]int64, len(ids)),
		prev: make(map[string]string, len(ids)),
		res: &Result{
			Algorithm: algorithm,
			Start:     start,
			Goal:      goal,
			Steps:     make([]Step, 0, 4*len(ids)),
		},
	}
	for _, id := range ids {
		r.dist[id] = Inf
	}
	r.dist[start] = 0

	if withScores {
		r.heur = make(map[string]int64, len(ids))
		for _, id := range ids {
			r.heur[id] = g.Heuristic(id)
		}
		r.res.Scores = make([]map[string]int64, 0, cap(r.res.Steps)+1)
	}
	r.res.Distances = make([]map[string]int64, 0, cap(r.res.Steps)+1)
	r.res.From = make([]map[string]string, 0, cap(r.res.Steps)+1)
	r.snapshot()

	return r, nil
}

// Graph returns the graph being traversed.
func (r *Recorder) Graph() *core.Graph { return r.g }

// Start returns the start vertex.
func (r *Recorder) Start() string { return r.res.Start }

// Goal returns the goal vertex ("" in traverse-all mode).
func (r *Recorder) Goal() string { return r.res.Goal }

// IsGoal reports whether id is the goal in goal mode.
func (r *Recorder) IsGoal(id string) bool { return r.res.Goal != "" && id == r.res.Goal }

// Vertices returns the sorted vertex IDs captured at construction.
func (r *Recorder) Vertices() []string { return r.ids }

// Dist returns the running distance of id (Inf if unreached).
func (r *Recorder) Dist(id string) int64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return Inf
}

// Heuristic returns the heuristic captured for id (0 if scores are off).
func (r *Recorder) Heuristic(id string) int64 { return r.heur[id] }

// Score returns dist+heuristic for id, or Inf if id is unreached.
func (r *Recorder) Score(id string) int64 {
	d := r.Dist(id)
	if d == Inf {
		return Inf
	}

	return d + r.heur[id]
}

// Relax records d as the distance of v and u as its predecessor.
func (r *Recorder) Relax(v, u string, d int64) {
	r.dist[v] = d
	r.prev[v] = u
}

// Check reports context cancellation.
func (r *Recorder) Check() error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
		return nil
	}
}

// Emit appends a Step, snapshots the running maps and fires OnStep.
func (r *Recorder) Emit(node string, a Action) error {
	if r.opts.MaxSteps > 0 && len(r.res.Steps) >= r.opts.MaxSteps {
		return fmt.Errorf("%w: %d steps", ErrStepLimit, r.opts.MaxSteps)
	}
	s := Step{Node: node, Action: a}
	r.res.Steps = append(r.res.Steps, s)
	r.snapshot()
	r.opts.OnStep(len(r.res.Steps), s)

	return nil
}

// ReachGoal marks the goal reached and appends one MarkPath step per vertex
// of the start→goal path.
func (r *Recorder) ReachGoal() error {
	path, ok := Reconstruct(r.prev, r.dist, r.res.Start, r.res.Goal)
	if !ok {
		return nil
	}
	r.res.Reached = true
	for _, id := range path {
		if err := r.Emit(id, MarkPath); err != nil {
			return err
		}
	}

	return nil
}

// Result returns the recorded trace. The Recorder must not be used afterwards.
func (r *Recorder) Result() *Result { return r.res }

// snapshot copies the running maps into the next snapshot slot.
func (r *Recorder) snapshot() {
	dist := make(map[string]int64, len(r.dist))
	for k, v := range r.dist {
		dist[k] = v
	}
	prev := make(map[string]string, len(r.prev))
	for k, v := range r.prev {
		prev[k] = v
	}
	r.res.Distances = append(r.res.Distances, dist)
	r.res.From = append(r.res.From, prev)

	if r.heur != nil {
		scores := make(map[string]int64, len(r.dist))
		for _, id := range r.ids {
			scores[id] = r.Score(id)
		}
		r.res.Scores = append(r.res.Scores, scores)
	}
}
