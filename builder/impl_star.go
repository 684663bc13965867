// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_star.go — Star(n): center 0 joined to leaves 1..n-1.

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds K_{1,n-1} with center at local
// index 0. Every matching of a star has at most one pair.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
