// SPDX-License-Identifier: MIT

// Package dfs records recursive depth-first search as a replayable trace.
//
// Step protocol for entering u:
//
//  1. Emit Visit(u).
//  2. If u is the goal: unwind, then append MarkPath steps.
//  3. For each neighbor v in ascending ID order that is still unvisited:
//     record prev[v] = u and dist[v] = dist[u] + w, emit CheckAdj(v) and
//     descend into v before looking at the next sibling.
//
// Like bfs, the recorded distances are tree-path costs. DFS never emits
// Finalize. Recursion depth is bounded by the vertex count.
package dfs
