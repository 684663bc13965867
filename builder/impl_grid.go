// SPDX-License-Identifier: MIT
// Package: lvmatch/builder
//
// impl_grid.go — Grid(rows, cols): 4-neighbourhood lattice, row-major ids
// r*cols + c. Each cell emits its right edge, then its down edge.

package builder

import "github.com/katalvlaran/lvmatch/digraph"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols grid. Grids are
// bipartite, so no blossom ever forms on them.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, minGridDim); err != nil {
			return err
		}
		if err := addVertices(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
