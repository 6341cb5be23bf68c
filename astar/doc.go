// SPDX-License-Identifier: MIT

// Package astar records A* search as a replayable trace.
//
// The frontier is keyed by score = dist + h, where h is the per-vertex
// heuristic stored on core.Vertex. Heuristics produced by the builder
// are admissible (never above the true remaining distance) but in
// general inconsistent, so a settled vertex may later be reached more
// cheaply. When that happens the vertex is re-opened: it is checked,
// its distance and predecessor are updated and it is pushed again. A
// re-opened vertex is visited and finalized a second time.
//
// Step protocol (per frontier pop of vertex u):
//
//  1. Skip the entry if u is finalized or the entry's distance is stale.
//  2. Emit Visit(u).
//  3. If u is the goal: emit Finalize(u), append MarkPath steps, stop.
//  4. For each neighbor v in ascending ID order:
//     - finalized v: only if dist[u]+w < dist[v], re-open it;
//     - on strict improvement update dist/prev and push v;
//     - emit CheckAdj(v).
//  5. Emit Finalize(u).
//
// Every snapshot carries Scores alongside Distances and From.
//
// Complexity: O((V + E) log V) per expansion round; re-opening can
// expand a vertex more than once on inconsistent heuristics.
package astar
