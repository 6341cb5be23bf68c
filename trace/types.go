// SPDX-License-Identifier: MIT
//
// Package trace defines the replayable output of every traversal: the Step
// sequence, the per-step snapshots of distances, predecessors and (A* only)
// scores, and path reconstruction over those snapshots.
//
// A Result is immutable once returned by an algorithm. Snapshot slices are
// indexed identically and have length len(Steps)+1: index 0 is the state
// before any step, index i the state right after Steps[i-1].
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrStartNotFound   if the start vertex is absent.
//	– ErrGoalNotFound    if a non-empty goal vertex is absent.
//	– ErrStepLimit       if WithMaxSteps was exceeded.
//	– ErrOptionViolation if an option received a meaningless value.
package trace

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/traverser/core"
)

// Inf is the distance recorded for vertices not reached (yet).
const Inf int64 = math.MaxInt64

// Sentinel errors shared by all traversal algorithms.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a traversal.
	ErrNilGraph = errors.New("trace: graph is nil")

	// ErrStartNotFound indicates that the start vertex does not exist.
	ErrStartNotFound = errors.New("trace: start vertex not found")

	// ErrGoalNotFound indicates that a non-empty goal vertex does not exist.
	ErrGoalNotFound = errors.New("trace: goal vertex not found")

	// ErrStepLimit indicates the traversal exceeded the configured MaxSteps.
	ErrStepLimit = errors.New("trace: step limit exceeded")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Action is the tag of one recorded Step.
type Action int

const (
	// Visit marks a vertex being dequeued/entered.
	Visit Action = iota
	// CheckAdj marks a neighbor being examined from the current vertex.
	CheckAdj
	// Finalize marks a vertex whose distance is settled.
	Finalize
	// MarkPath marks a vertex on the reconstructed start→goal path.
	MarkPath
)

var actionNames = [...]string{
	Visit:    "visiting",
	CheckAdj: "checkAdj",
	Finalize: "finalized",
	MarkPath: "path",
}

// String returns the short log label of a.
func (a Action) String() string {
	if a < Visit || a > MarkPath {
		return fmt.Sprintf("Action(%d)", int(a))
	}

	return actionNames[a]
}

// State returns the vertex tag a produces when replayed.
func (a Action) State() core.State {
	switch a {
	case Visit:
		return core.Visited
	case CheckAdj:
		return core.Checking
	case Finalize:
		return core.Finalized
	case MarkPath:
		return core.OnPath
	default:
		return core.Clean
	}
}

// Step is one atomic visitation event.
type Step struct {
	Node   string
	Action Action
}

// String renders "visiting A".
func (s Step) String() string {
	return s.Action.String() + " " + s.Node
}

// Result is the complete, replayable trace of one traversal run.
type Result struct {
	// Algorithm names the producer ("dijkstra", "astar", "bfs", "dfs").
	Algorithm string

	// Start and Goal echo the inputs; Goal is "" in traverse-all mode.
	Start string
	Goal  string

	// Steps is the ordered event sequence.
	Steps []Step

	// Distances[i] maps vertex → accumulated cost after i steps (Inf if unreached).
	Distances []map[string]int64

	// From[i] maps vertex → predecessor after i steps; the start and
	// unreached vertices have no entry.
	From []map[string]string

	// Scores[i] maps vertex → distance+heuristic after i steps. A* only; nil otherwise.
	Scores []map[string]int64

	// Reached reports whether Goal was reached (always false in traverse-all mode).
	Reached bool
}

// Len returns the number of recorded steps.
func (r *Result) Len() int { return len(r.Steps) }

// Final returns the index of the last snapshot.
func (r *Result) Final() int { return len(r.Distances) - 1 }

// TraverseAll reports whether the run explored without a goal.
func (r *Result) TraverseAll() bool { return r.Goal == "" }

// HasScores reports whether per-step A* scores were recorded.
func (r *Result) HasScores() bool { return r.Scores != nil }

// PathTo reconstructs the start→target path from the final snapshot.
func (r *Result) PathTo(target string) (Path, bool) {
	return r.PathAt(r.Final(), target)
}

// PathAt reconstructs the start→target path from snapshot i.
// Out-of-range indices report unreachable.
func (r *Result) PathAt(i int, target string) (Path, bool) {
	if i < 0 || i >= len(r.Distances) {
		return nil, false
	}

	return Reconstruct(r.From[i], r.Distances[i], r.Start, target)
}
