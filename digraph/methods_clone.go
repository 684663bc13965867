// File: methods_clone.go
// Role: Snapshot copies and structural equality.
//
// Vertex objects are immutable and shared; adjacency slices are deep-copied so
// the clone can be mutated without affecting the source.

package digraph

import "golang.org/x/exp/slices"

// Clone returns an independent snapshot with the same id space, vertices and
// arcs.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := &Graph{
		order:      g.order,
		allowLoops: g.allowLoops,
		adj:        make([][]Edge, len(g.adj)),
		origin:     make([][][2]int, len(g.origin)),
		vertices:   append([]*Vertex(nil), g.vertices...),
		reserved:   append([]bool(nil), g.reserved...),
		live:       g.live,
	}
	for id, list := range g.adj {
		if len(list) > 0 {
			clone.adj[id] = append([]Edge(nil), list...)
			clone.origin[id] = append([][2]int(nil), g.origin[id]...)
		}
	}

	return clone
}

// Equal reports whether g and other have the same live ids and, for every
// live id, the same multiset of out-arcs.
// Complexity: O(E log E).
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || g.live != other.live {
		return false
	}
	n := len(g.vertices)
	if len(other.vertices) > n {
		n = len(other.vertices)
	}
	for id := 0; id < n; id++ {
		if g.HasVertex(id) != other.HasVertex(id) {
			return false
		}
		if !g.HasVertex(id) {
			continue
		}
		if !sameArcs(g.adj[id], other.adj[id]) {
			return false
		}
	}

	return true
}

// sameArcs compares two arc lists as multisets.
func sameArcs(a, b []Edge) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]Edge(nil), a...)
	y := append([]Edge(nil), b...)
	slices.SortFunc(x, compareEdges)
	slices.SortFunc(y, compareEdges)

	return slices.Equal(x, y)
}
