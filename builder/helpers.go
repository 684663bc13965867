// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/digraph"
)

// addVertices registers the local indices [0, n).
func addVertices(g *digraph.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.id(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w: %w", method, id, ErrConstructFailed, err)
		}
	}

	return nil
}

// addEdge joins local indices i and j with a weight drawn from cfg.
func addEdge(g *digraph.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	w := cfg.weightFn(cfg.rng)
	var err error
	if cfg.directed {
		err = g.AddEdge(u, v, w)
	} else {
		err = g.AddUndirected(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
