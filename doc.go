// Package traverser records and replays graph traversals step by step:
// a random weighted graph is generated, one of four algorithms is traced
// over it, and the recorded steps are played back on a tagged copy of the
// graph at a chosen tempo.
//
// 🚀 What is in the box?
//
//	• Core primitives: undirected weighted graph with per-vertex heuristic and state tag
//	• Generator: connected random graphs with letter labels and admissible heuristics
//	• Traversals: Dijkstra, A*, BFS, DFS, each producing a replayable trace
//	• Playback: step / play / pause / reset over a working copy, trailing log, path previews
//	• Session: one recomputation entry point over {graph, algorithm, start, end, traverse-all}
//
// Everything is organized in subpackages:
//
//	core/      - Graph, Vertex, Edge and the State tags
//	builder/   - Generate and its functional options
//	trace/     - Step, Result, snapshots and path reconstruction
//	dijkstra/, astar/, bfs/, dfs/ - the traced algorithms
//	traversal/ - Kind dispatch and concurrent comparison
//	playback/  - the Controller state machine and schedulers
//	session/   - inputs, recomputation and the owned controller
//	config/, log/, metrics/, render/ - ambient packages for the CLI
//	cmd/traverser - the cobra command line
//
// Quick ASCII example (Dijkstra, A→C):
//
//	    A──2──B
//	     \    │
//	     10   3
//	       \  │
//	        ──C
//
//	steps: visiting A, checkAdj B, checkAdj C, finalized A, visiting B, …
//	path:  A → B → C (cost 5)
package traverser
