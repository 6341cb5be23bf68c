// SPDX-License-Identifier: MIT
// Package: traverser/builder
//
// generate.go — Generate(size, start, end).
//
// Contract:
//   - MinNodes ≤ size ≤ MaxNodes (ErrTooFewVertices / ErrTooManyVertices).
//   - start, end ∈ Labels(idFn, size) (ErrLabelNotInGraph).
//   - start != end (ErrSameEndpoints).
//   - ID scheme yields distinct labels (ErrDuplicateID).
//
// Complexity:
//   - Time: O(n²) pair trials + O((V+E) log V) for the heuristic pass.
//   - Space: O(V + E).

package builder

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/dijkstra"
)

const methodGenerate = "Generate"

// Generate builds a connected random graph of size vertices and annotates
// every vertex with an admissible heuristic towards end.
func Generate(size int, start, end string, opts ...Option) (*core.Graph, error) {
	cfg := newConfig(opts...)

	// 1) Validate parameters before touching the RNG.
	if size < MinNodes {
		return nil, fmt.Errorf("%s: size=%d < min=%d: %w", methodGenerate, size, MinNodes, ErrTooFewVertices)
	}
	if size > MaxNodes {
		return nil, fmt.Errorf("%s: size=%d > max=%d: %w", methodGenerate, size, MaxNodes, ErrTooManyVertices)
	}
	ids := Labels(cfg.idFn, size)
	for _, label := range []string{start, end} {
		if !slices.Contains(ids, label) {
			return nil, fmt.Errorf("%s: %q: %w", methodGenerate, label, ErrLabelNotInGraph)
		}
	}
	if start == end {
		return nil, fmt.Errorf("%s: %q: %w", methodGenerate, start, ErrSameEndpoints)
	}

	// 2) Vertices in index order.
	g := core.NewGraph()
	for _, id := range ids {
		if g.HasVertex(id) {
			return nil, fmt.Errorf("%s: %q: %w", methodGenerate, id, ErrDuplicateID)
		}
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", methodGenerate, id, err)
		}
	}

	// 3) Spanning links: i joins a uniformly chosen earlier vertex.
	if err := link(g, ids, cfg); err != nil {
		return nil, err
	}

	// 4) Extra edges: stable trial order i asc, j asc.
	if err := densify(g, ids, cfg); err != nil {
		return nil, err
	}

	// 5) Heuristics towards end.
	if err := annotate(g, end, cfg); err != nil {
		return nil, err
	}

	return g, nil
}

func link(g *core.Graph, ids []string, cfg config) error {
	for i := 1; i < len(ids); i++ {
		u, v := ids[cfg.rng.Intn(i)], ids[i]
		w := cfg.weightFn(cfg.rng)
		if _, err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", methodGenerate, u, v, w, err)
		}
	}

	return nil
}

func densify(g *core.Graph, ids []string, cfg config) error {
	if cfg.edgeProb == 0 {
		return nil
	}
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			u, v := ids[i], ids[j]
			if g.HasEdge(u, v) {
				continue // already a spanning link
			}
			if cfg.rng.Float64() >= cfg.edgeProb {
				continue
			}
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w", methodGenerate, u, v, w, err)
			}
		}
	}

	return nil
}

// annotate sets h(v) ∈ [ceil(d·slack), d] with d = dist(v, end).
func annotate(g *core.Graph, end string, cfg config) error {
	dist, err := dijkstra.Distances(g, end)
	if err != nil {
		return fmt.Errorf("%s: distances to %q: %w", methodGenerate, end, err)
	}

	for _, id := range g.Vertices() {
		d := dist[id]
		lo := int64(math.Ceil(float64(d) * cfg.slack))
		if lo > d {
			lo = d
		}
		h := lo
		if d > lo {
			h += cfg.rng.Int63n(d - lo + 1)
		}
		if err = g.SetHeuristic(id, h); err != nil {
			return fmt.Errorf("%s: SetHeuristic(%s): %w", methodGenerate, id, err)
		}
	}

	return nil
}
