// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Both return neighbors sorted by neighbor ID lex asc; this is the
//     fixed neighbor-ordering rule every traversal relies on.

package core

import (
	"fmt"
	"sort"
)

// Neighbor pairs an adjacent vertex ID with the weight of the joining edge.
type Neighbor struct {
	ID     string
	Weight int64
}

// Neighbors returns the vertices adjacent to id with their edge weights,
// sorted by neighbor ID ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d) where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Neighbor, 0, len(adj))
	for nid, eid := range adj {
		out = append(out, Neighbor{ID: nid, Weight: g.edges[eid].Weight})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborIDs returns the unique adjacent vertex IDs of id, sorted lex asc.
// Errors are propagated from Neighbors.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(nbs))
	for i, nb := range nbs {
		ids[i] = nb.ID
	}

	return ids, nil
}

// Degree returns the number of edges incident to id.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	adj, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(adj), nil
}
