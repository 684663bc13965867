// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_cycle.go — Cycle(n): the ring i–(i+1 mod n).
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges are emitted for i = 0..n-1 in ascending order.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n. For odd n
// the whole ring is a single blossom.
func Cycle(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
