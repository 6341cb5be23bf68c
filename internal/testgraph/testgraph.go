// SPDX-License-Identifier: MIT

// Package testgraph builds small fixture graphs and brute-force
// reference distances for the traversal tests.
package testgraph

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/traverser/core"
)

// Triangle returns A—B(2), B—C(3), A—C(10).
func Triangle() *core.Graph {
	g := core.NewGraph()
	mustEdge(g, "A", "B", 2)
	mustEdge(g, "B", "C", 3)
	mustEdge(g, "A", "C", 10)

	return g
}

// Random returns a connected graph on n vertices named v00, v01, … with
// a random spanning tree plus each remaining pair added with probability p.
// Weights are uniform in [1, 20]. Deterministic for a given seed.
func Random(seed int64, n int, p float64) *core.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	id := func(i int) string { return fmt.Sprintf("v%02d", i) }

	if err := g.AddVertex(id(0)); err != nil {
		panic(err)
	}
	for i := 1; i < n; i++ {
		mustEdge(g, id(rng.Intn(i)), id(i), 1+rng.Int63n(20))
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !g.HasEdge(id(i), id(j)) && rng.Float64() < p {
				mustEdge(g, id(i), id(j), 1+rng.Int63n(20))
			}
		}
	}

	return g
}

// AllPairs computes every shortest distance with Floyd–Warshall.
// Missing pairs are unreachable.
func AllPairs(g *core.Graph) map[string]map[string]int64 {
	ids := g.Vertices()
	d := make(map[string]map[string]int64, len(ids))
	for _, u := range ids {
		d[u] = map[string]int64{u: 0}
	}
	for _, e := range g.Edges() {
		d[e.From][e.To] = e.Weight
		d[e.To][e.From] = e.Weight
	}
	for _, k := range ids {
		for _, i := range ids {
			dik, ok := d[i][k]
			if !ok {
				continue
			}
			for _, j := range ids {
				dkj, ok := d[k][j]
				if !ok {
					continue
				}
				cur, ok := d[i][j]
				if !ok {
					cur = math.MaxInt64
				}
				if dik+dkj < cur {
					d[i][j] = dik + dkj
				}
			}
		}
	}

	return d
}

func mustEdge(g *core.Graph, u, v string, w int64) {
	if _, err := g.AddEdge(u, v, w); err != nil {
		panic(err)
	}
}
