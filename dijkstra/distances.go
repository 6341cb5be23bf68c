// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/traverser/core"
	"github.com/katalvlaran/traverser/internal/frontier"
	"github.com/katalvlaran/traverser/trace"
)

// Distances returns the shortest distance from source to every vertex of
// g without recording a trace. Unreachable vertices map to trace.Inf.
//
// Errors: trace.ErrNilGraph, trace.ErrStartNotFound.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Distances(g *core.Graph, source string) (map[string]int64, error) {
	if g == nil {
		return nil, trace.ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", trace.ErrStartNotFound, source)
	}

	ids := g.Vertices()
	dist := make(map[string]int64, len(ids))
	for _, id := range ids {
		dist[id] = trace.Inf
	}
	dist[source] = 0

	done := make(map[string]bool, len(ids))
	var pq frontier.Queue
	pq.Push(source, 0, 0)
	for {
		it, ok := pq.Pop()
		if !ok {
			break
		}
		if done[it.ID] {
			continue
		}
		done[it.ID] = true

		nbs, err := g.Neighbors(it.ID)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: neighbors of %q: %w", it.ID, err)
		}
		for _, nb := range nbs {
			if nd := dist[it.ID] + nb.Weight; nd < dist[nb.ID] {
				dist[nb.ID] = nd
				pq.Push(nb.ID, nd, nd)
			}
		}
	}

	return dist, nil
}
