// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// config.go — builderConfig and its resolution from options.

package builder

import (
	"fmt"
	"math/rand"
)

// builderConfig is the resolved, immutable configuration handed to every
// Constructor.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for every emitted edge.
	weightFn WeightFn
	// First vertex id used by a constructor (see Shift).
	offset int
	// One arc per edge instead of both directions.
	directed bool

	// WithWeightRange bounds, resolved into weightFn.
	lo, hi int64
	ranged bool
}

// newBuilderConfig applies opts over the defaults and validates the result.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) (builderConfig, error) {
	cfg := builderConfig{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.ranged {
		if cfg.lo < 0 || cfg.hi < cfg.lo {
			return cfg, fmt.Errorf("WithWeightRange: lo=%d hi=%d: %w", cfg.lo, cfg.hi, ErrInvalidWeightRange)
		}
		if cfg.rng == nil && cfg.lo != cfg.hi {
			return cfg, fmt.Errorf("WithWeightRange: [%d,%d]: %w", cfg.lo, cfg.hi, ErrNeedRandSource)
		}
		cfg.weightFn = UniformWeightFn(cfg.lo, cfg.hi)
	}

	return cfg, nil
}

// id maps a constructor-local index to a graph vertex id.
func (c builderConfig) id(i int) int {
	return c.offset + i
}
