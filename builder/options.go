// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil functions; range problems that depend
//     on user input (WithWeightRange) surface as errors from BuildGraph.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// It cancels an earlier WithWeightRange.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
		c.ranged = false
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithWeightRange draws every weight uniformly from [lo, hi]. An RNG is
// required unless lo == hi. Invalid ranges are reported by BuildGraph as
// ErrInvalidWeightRange.
func WithWeightRange(lo, hi int64) BuilderOption {
	return func(c *builderConfig) {
		c.lo, c.hi = lo, hi
		c.ranged = true
	}
}

// WithDirected emits a single arc u→v per edge instead of both directions.
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}
