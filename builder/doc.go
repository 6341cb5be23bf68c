// SPDX-License-Identifier: MIT
// Package: traverser/builder
//
// Package builder generates the random, heuristic-annotated graphs that
// the traversals are replayed on.
//
// Generate(size, start, end, opts...) produces an undirected weighted
// graph that is:
//
//   - connected: vertex i (i ≥ 1) is joined to a uniformly chosen earlier
//     vertex before any extra edge is sampled;
//   - sparse: every other unordered pair {i<j} is added independently
//     with probability p (WithEdgeProbability, default 0.06);
//   - weighted: each edge draws an integer weight from WeightFn
//     (WithWeightRange, default uniform [1,20]);
//   - annotated: each vertex v carries h(v) drawn uniformly from
//     [ceil(d·slack), d], d being the true distance from v to end. So
//     h(end) = 0 and h never overestimates (admissible), while per-vertex
//     draws leave it inconsistent in general.
//
// Determinism:
//
//   - Vertices are created in index order 0..size-1 via the ID scheme.
//   - Spanning links, then pair trials (i asc, j asc), then heuristics in
//     sorted ID order consume the RNG in a fixed sequence, so WithSeed
//     reproduces a graph exactly.
//   - Without WithSeed/WithRand a time-seeded source is used.
//
// Option constructors validate eagerly and
// panic on meaningless input; Generate itself only returns sentinel
// errors.
package builder
