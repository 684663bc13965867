// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_triangles.go — SharedTriangles(k): a chain of k triangles where
// triangle i is (2i, 2i+1, 2i+2), so consecutive triangles share a corner.
//
// The chain has 2k+1 vertices and 3k edges; every maximum matching has k
// pairs and exposes exactly one vertex, and the search contracts nested
// blossoms on it.

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodSharedTriangles = "SharedTriangles"
	minTriangles          = 1
)

// SharedTriangles returns a Constructor that builds k corner-sharing
// triangles. Edges per triangle: (2i,2i+1), (2i+1,2i+2), (2i+2,2i).
// Complexity: O(k).
func SharedTriangles(k int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodSharedTriangles, "k", k, minTriangles); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodSharedTriangles, 2*k+1); err != nil {
			return err
		}
		for i := 0; i < k; i++ {
			a, b, c := 2*i, 2*i+1, 2*i+2
			for _, p := range [3][2]int{{a, b}, {b, c}, {c, a}} {
				if err := addEdge(g, cfg, methodSharedTriangles, p[0], p[1]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
