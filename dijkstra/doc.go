// SPDX-License-Identifier: MIT

// Package dijkstra records Dijkstra's shortest-path algorithm as a
// replayable trace over an undirected graph with non-negative weights.
//
// Overview:
//
//   - Trace runs from a start vertex towards a goal (or over the whole
//     reachable component when goal == "") and returns a *trace.Result:
//     the ordered Steps plus a snapshot of distances and predecessors
//     after every step.
//   - Distances is the plain, unrecorded variant used where only the
//     final distance table is needed (e.g. heuristic generation).
//
// Step protocol (per frontier pop of vertex u):
//
//  1. Skip u if it is already finalized (stale lazy-decrease-key entry).
//  2. Emit Visit(u).
//  3. If u is the goal: emit Finalize(u), append MarkPath steps, stop.
//  4. For each non-finalized neighbor v in ascending ID order: if
//     dist[u]+w < dist[v], update dist/prev and push v; then emit
//     CheckAdj(v), so its snapshot already holds the update.
//  5. Emit Finalize(u).
//
// Frontier ties are broken by insertion order, so the trace is fully
// deterministic for a given graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) for the run, plus O(S·V) for S recorded snapshots.
//
// Errors: see package trace (ErrNilGraph, ErrStartNotFound,
// ErrGoalNotFound, ErrStepLimit, ErrOptionViolation) and context errors
// when trace.WithContext is cancelled.
package dijkstra
