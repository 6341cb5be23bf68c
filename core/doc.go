// Package core provides the thread-safe in-memory Graph the traversal
// engine runs on.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Undirected, weighted edges only; one edge per vertex pair, no loops.
//   - Constant-time edge lookup via nested maps: adjacency[u][v] = edgeID,
//     mirrored for adjacency[v][u].
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Per-vertex Heuristic (A* estimate) and State (visualization tag).
//   - One sync.RWMutex; concurrent readers never block each other.
//
// Why the narrow shape?
//
//   - The visualizer replays traversals over small generated graphs; every
//     graph it sees is connected, undirected and weighted by construction.
//   - Deterministic iteration: Vertices() and Neighbors() are sorted, which
//     gives the algorithms their fixed neighbor-ordering rule.
//   - Clone is a full deep copy. Snapshots (reset graph, finished graph,
//     path previews) are independent values, never aliases of a live graph.
//
// States:
//
//	Clean → Queued → Checking → Visited → Finalized → OnPath
//
// are tags only; core enforces no transition order. The playback package
// owns the transitions.
//
// Quick example:
//
//	g := core.NewGraph()
//	g.AddEdge("A", "B", 2)
//	g.AddEdge("B", "C", 3)
//	g.SetHeuristic("A", 4)
//	nbs, _ := g.Neighbors("B") // [{A 2} {C 3}]
package core
