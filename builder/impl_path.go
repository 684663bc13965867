// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_path.go — Path(n): vertices 0..n-1, edges i–(i+1).
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the simple path P_n (n ≥ 2).
// A maximum matching of P_n has ⌊n/2⌋ pairs.
func Path(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
