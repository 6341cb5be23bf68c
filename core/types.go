// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Vertex, and Edge types used by the
// traversal engine, and provides thread-safe primitives for building,
// querying, tagging, and cloning graphs.
//
// The Graph is always undirected and weighted: every edge is stored once in
// the edge catalog and mirrored in the adjacency of both endpoints. Self-loops
// and parallel edges are rejected. Each vertex carries an integer heuristic
// (used by A*) and a single mutable State tag that drives rendering.
//
// All APIs use one sync.RWMutex, so read-only consumers (for example several
// algorithms traced concurrently) may share a Graph safely.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - requested edge does not exist.
//	ErrNegativeWeight    - edge weight < 0.
//	ErrNegativeHeuristic - heuristic < 0.
//	ErrLoopNotAllowed    - self-loop requested.
//	ErrMultiEdgeNotAllowed - parallel edge requested.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrNegativeHeuristic indicates a negative heuristic value.
	ErrNegativeHeuristic = errors.New("core: negative heuristic")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrUnknownState indicates a State value outside the declared tags.
	ErrUnknownState = errors.New("core: unknown vertex state")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph. Heuristic is an
// estimate of the remaining cost to the designated goal; State is the
// visualization tag (exactly one per vertex at any instant).
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Heuristic is the non-negative A* estimate attached at generation time.
	Heuristic int64

	// State is the current traversal tag; Clean for a fresh graph.
	State State
}

// Edge represents an undirected connection between two vertices.
//
// From/To record the insertion order only; the edge is traversable in both
// directions at the same Weight.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the non-negative traversal cost.
	Weight int64
}

// Other returns the endpoint of e opposite to id.
// If id is not an endpoint, To is returned.
func (e *Edge) Other(id string) string {
	if e.To == id {
		return e.From
	}

	return e.To
}

// Graph is the core in-memory graph data structure.
//
// mu guards every field below it. nextEdgeID is an atomic counter for
// unique Edge.ID generation.
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID joining u and v (mirrored for v,u).
	adjacency map[string]map[string]string
}

// NewGraph creates an empty undirected, weighted Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
