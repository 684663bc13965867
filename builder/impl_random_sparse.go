// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices), 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • 0 < p < 1 requires cfg.rng (else ErrNeedRandSource); p ∈ {0,1} is
//     deterministic and draws nothing for edge selection.
//   • Pairs i<j are visited in row-major order; one draw per pair, then the
//     weight draw for a kept pair.
//
// Determinism: identical for a fixed seed and options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/digraph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that keeps each pair of [0, n)
// independently with probability p.
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
