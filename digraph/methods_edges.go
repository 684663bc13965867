// File: methods_edges.go
// Role: Arc insertion and adjacency queries.
//
// Determinism:
//   - Out() preserves insertion order; Edges() and In() are sorted by
//     (Tail, Head, Weight).

package digraph

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// AddEdge appends the arc tail→head with the given weight, creating missing
// original endpoints on first reference.
//
// Returns ErrNegativeWeight, ErrLoopNotAllowed or ErrVertexOutOfRange.
// Parallel arcs are kept.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(tail, head int, weight int64) error {
	// 1) Weight constraint
	if weight < 0 {
		return fmt.Errorf("AddEdge(%d→%d, w=%d): %w", tail, head, weight, ErrNegativeWeight)
	}
	// 2) Loop constraint
	if tail == head && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d→%d): %w", tail, head, ErrLoopNotAllowed)
	}
	// 3) Endpoints: originals are auto-created, pseudo ids must already be live
	for _, id := range [2]int{tail, head} {
		if g.HasVertex(id) {
			continue
		}
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("AddEdge(%d→%d): %w", tail, head, err)
		}
	}
	g.adj[tail] = append(g.adj[tail], Edge{Tail: tail, Head: head, Weight: weight})
	g.origin[tail] = append(g.origin[tail], [2]int{tail, head})

	return nil
}

// AddUndirected stores a and b as two opposite arcs of equal weight.
func (g *Graph) AddUndirected(a, b int, weight int64) error {
	if err := g.AddEdge(a, b, weight); err != nil {
		return err
	}
	if a == b {
		return nil
	}

	return g.AddEdge(b, a, weight)
}

// Out returns a copy of the out-arcs of id in insertion order.
// Complexity: O(deg(id)).
func (g *Graph) Out(id int) []Edge {
	if !g.HasVertex(id) {
		return nil
	}

	return append([]Edge(nil), g.adj[id]...)
}

// Range calls fn for every out-arc of id without copying; iteration stops
// when fn returns false. fn must not mutate g.
func (g *Graph) Range(id int, fn func(e Edge) bool) {
	if !g.HasVertex(id) {
		return
	}
	for _, e := range g.adj[id] {
		if !fn(e) {
			return
		}
	}
}

// In returns every arc whose head is id, sorted.
// Complexity: O(V + E).
func (g *Graph) In(id int) []Edge {
	var out []Edge
	for _, list := range g.adj {
		for _, e := range list {
			if e.Head == id {
				out = append(out, e)
			}
		}
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// Arc returns the first arc tail→head, if any.
// Complexity: O(deg(tail)).
func (g *Graph) Arc(tail, head int) (Edge, bool) {
	if !g.HasVertex(tail) {
		return Edge{}, false
	}
	for _, e := range g.adj[tail] {
		if e.Head == head {
			return e, true
		}
	}

	return Edge{}, false
}

// HasArc reports whether at least one arc tail→head exists.
func (g *Graph) HasArc(tail, head int) bool {
	_, ok := g.Arc(tail, head)

	return ok
}

// Edges returns every arc of the graph, sorted by (Tail, Head, Weight).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for _, list := range g.adj {
		out = append(out, list...)
	}
	slices.SortFunc(out, compareEdges)

	return out
}

// EdgeCount returns the number of stored arcs.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, list := range g.adj {
		n += len(list)
	}

	return n
}

// MaxWeight returns the largest arc weight, or 0 for an arcless graph.
func (g *Graph) MaxWeight() int64 {
	var best int64
	for _, list := range g.adj {
		for _, e := range list {
			if e.Weight > best {
				best = e.Weight
			}
		}
	}

	return best
}

// IsSymmetric reports whether every arc tail→head has a reverse arc of the
// same weight (multiset-wise), i.e. whether g encodes an undirected graph.
// Complexity: O(E log E).
func (g *Graph) IsSymmetric() bool {
	count := make(map[Edge]int, g.EdgeCount())
	for _, list := range g.adj {
		for _, e := range list {
			if e.IsLoop() {
				continue
			}
			count[e]++
		}
	}
	for e, n := range count {
		if count[e.Reverse()] != n {
			return false
		}
	}

	return true
}
