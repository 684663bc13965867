// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_wheel.go — Wheel(n): hub 0 plus the rim cycle 1..n-1.
//
// Emission order: rim edges first (i–i+1, closing n-1–1), then spokes 0–i.

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub (n ≥ 4).
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, minWheelNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addEdge(g, cfg, methodWheel, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
