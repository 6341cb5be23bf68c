// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle, heuristic/state tagging and deterministic listings.
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex with zero heuristic and Clean state.
// Idempotent: adding an existing ID is a no-op.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, State: Clean}
	g.adjacency[id] = make(map[string]string)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex record for id.
// The copy is detached: mutating it does not affect g.
//
// Errors:
//   - ErrVertexNotFound if id is absent.
func (g *Graph) Vertex(id string) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return Vertex{}, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return *v, nil
}

// SetHeuristic assigns the A* heuristic for id.
//
// Errors:
//   - ErrNegativeHeuristic if h < 0.
//   - ErrVertexNotFound if id is absent.
func (g *Graph) SetHeuristic(id string, h int64) error {
	if h < 0 {
		return fmt.Errorf("%w: %q h=%d", ErrNegativeHeuristic, id, h)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.Heuristic = h

	return nil
}

// Heuristic returns the heuristic of id, or 0 when id is absent.
// Algorithms call it only for IDs obtained from the same graph.
func (g *Graph) Heuristic(id string) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v, ok := g.vertices[id]; ok {
		return v.Heuristic
	}

	return 0
}

// SetState tags id with s.
//
// Errors:
//   - ErrUnknownState if s is not a declared tag.
//   - ErrVertexNotFound if id is absent.
func (g *Graph) SetState(id string, s State) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	v.State = s

	return nil
}

// State returns the current tag of id, or Clean when id is absent.
func (g *Graph) State(id string) State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if v, ok := g.vertices[id]; ok {
		return v.State
	}

	return Clean
}

// ReplaceState retags every vertex currently in state from with state to.
// Returns the number of vertices changed.
// Complexity: O(V).
func (g *Graph) ReplaceState(from, to State) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := 0
	for _, v := range g.vertices {
		if v.State == from {
			v.State = to
			n++
		}
	}

	return n
}

// ResetStates tags every vertex Clean.
// Complexity: O(V).
func (g *Graph) ResetStates() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range g.vertices {
		v.State = Clean
	}
}

// States returns a detached ID → State snapshot.
func (g *Graph) States() map[string]State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]State, len(g.vertices))
	for id, v := range g.vertices {
		out[id] = v.State
	}

	return out
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}
