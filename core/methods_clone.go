// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone carries over nextEdgeID to keep textual edge IDs monotonic on the clone.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: vertices (with heuristic and
// state), edges, and adjacency. The clone shares no memory with g, so
// snapshots taken with Clone are independent values.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph()
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		cv := *v
		clone.vertices[id] = &cv
	}
	for eid, e := range g.edges {
		ce := *e
		clone.edges[eid] = &ce
	}
	for id, adj := range g.adjacency {
		cadj := make(map[string]string, len(adj))
		for nid, eid := range adj {
			cadj[nid] = eid
		}
		clone.adjacency[id] = cadj
	}

	return clone
}

// CloneClean returns a deep copy with every vertex tagged Clean.
func (g *Graph) CloneClean() *Graph {
	c := g.Clone()
	c.ResetStates()

	return c
}
