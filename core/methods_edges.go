// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by numeric edge sequence asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge from—to with the given weight.
// Missing endpoints are created on the fly.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock mu, reject parallel edges.
//  4. Generate eid atomically, store, mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %s—%s weight=%d", ErrNegativeWeight, from, to, weight)
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("%w: %s—%s", ErrMultiEdgeNotAllowed, from, to)
	}

	// 4) Store and mirror adjacency
	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge joins from and to (in either direction).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge joining from and to.
//
// Errors:
//   - ErrEdgeNotFound if no such edge exists.
func (g *Graph) Weight(from, to string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %s—%s", ErrEdgeNotFound, from, to)
	}

	return g.edges[eid].Weight, nil
}

// Edges returns copies of all edges sorted by creation order (e1, e2, ...).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns the next unique edge ID ("e1", "e2", ...).
// Must be called with mu held for writing.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq parses the numeric suffix of an edge ID; malformed IDs sort last.
func edgeSeq(id string) uint64 {
	n, err := strconv.ParseUint(id[1:], 10, 64)
	if err != nil {
		return ^uint64(0)
	}

	return n
}
