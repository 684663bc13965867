// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_complete.go — Complete(n): every pair i<j, emitted row by row.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
