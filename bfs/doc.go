// SPDX-License-Identifier: MIT

// Package bfs records breadth-first search as a replayable trace.
//
// BFS ignores weights when choosing the expansion order (FIFO queue) but
// still accumulates them into the recorded distances, so the distance
// table shows the cost of the BFS-tree path rather than the optimum.
//
// Step protocol:
//
//  1. Dequeue u, emit Visit(u).
//  2. If u is the goal: append MarkPath steps and stop.
//  3. For each undiscovered neighbor v in ascending ID order: record
//     prev[v] = u and dist[v] = dist[u] + w, emit CheckAdj(v), enqueue v.
//
// BFS never emits Finalize.
//
// Complexity: O(V + E) time, O(V) space plus recorded snapshots.
package bfs
