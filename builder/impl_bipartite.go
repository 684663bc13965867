// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_bipartite.go — CompleteBipartite(a, b): left side 0..a-1, right side
// a..a+b-1, every cross pair joined.

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodBipartite = "CompleteBipartite"
	minPartition    = 1
)

// CompleteBipartite returns a Constructor that builds K_{a,b}. Its maximum
// matching has min(a, b) pairs.
// Complexity: O(a·b).
func CompleteBipartite(a, b int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodBipartite, "a", a, minPartition); err != nil {
			return err
		}
		if err := validateMin(methodBipartite, "b", b, minPartition); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodBipartite, a+b); err != nil {
			return err
		}
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				if err := addEdge(g, cfg, methodBipartite, i, a+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
