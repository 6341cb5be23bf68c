// SPDX-License-Identifier: MIT
// Package: traverser/builder
//
// options.go — functional options for Generate.
//
// Contract (strict):
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// Option customizes Generate by mutating a config before construction.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithIDScheme sets the vertex ID generator: idx -> string.
// Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *config) {
		c.weightFn = fn
	}
}

// WithWeightRange draws weights uniformly from [min, max].
// Panics unless 0 ≤ min ≤ max.
func WithWeightRange(min, max int64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithEdgeProbability sets the chance p of each extra (non-spanning) edge.
// Panics unless 0 ≤ p ≤ 1.
func WithEdgeProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("builder: WithEdgeProbability(%g) not in [0,1]", p))
	}
	return func(c *config) {
		c.edgeProb = p
	}
}

// WithHeuristicSlack sets the lower bound of heuristic draws as a
// fraction of the true distance: h ∈ [ceil(d·s), d].
// s = 1 gives the exact (consistent) distance; s = 0 allows any value
// down to zero. Panics unless 0 ≤ s ≤ 1.
func WithHeuristicSlack(s float64) Option {
	if s < 0 || s > 1 {
		panic(fmt.Sprintf("builder: WithHeuristicSlack(%g) not in [0,1]", s))
	}
	return func(c *config) {
		c.slack = s
	}
}
