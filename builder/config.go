// SPDX-License-Identifier: MIT
// Package: traverser/builder
//
// config.go — internal configuration and defaults.
//
// Defaults:
//   • idFn     = LetterIDFn        ("A".."Z","a".."z")
//   • rng      = nil               (time-seeded at Generate time)
//   • weightFn = U[1,20]
//   • edgeProb = 0.06
//   • slack    = 0.5

package builder

import (
	"math/rand"
	"time"
)

// Size bounds accepted by Generate.
const (
	MinNodes = 2
	MaxNodes = 52
)

// Defaults (named, no magic numbers).
const (
	DefaultWeightMin       int64 = 1
	DefaultWeightMax       int64 = 20
	DefaultEdgeProbability       = 0.06
	DefaultHeuristicSlack        = 0.5
)

// config aggregates all knobs used by Generate.
type config struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	edgeProb float64
	slack    float64
}

// newConfig applies opts over the defaults; last option wins.
// A missing RNG is replaced by a time-seeded one.
func newConfig(opts ...Option) config {
	cfg := config{
		idFn:     LetterIDFn,
		weightFn: UniformWeightFn(DefaultWeightMin, DefaultWeightMax),
		edgeProb: DefaultEdgeProbability,
		slack:    DefaultHeuristicSlack,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return cfg
}
