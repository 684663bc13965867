// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns live ids in ascending order.

package digraph

import "fmt"

// AddVertex creates the original vertex id if missing (idempotent).
// Returns ErrVertexOutOfRange if id is negative or id >= Order().
// Complexity: O(1).
func (g *Graph) AddVertex(id int) error {
	if id < 0 || id >= g.order {
		return fmt.Errorf("AddVertex(%d): order=%d: %w", id, g.order, ErrVertexOutOfRange)
	}
	if g.vertices[id] != nil {
		return nil
	}
	if g.reserved[id] {
		return fmt.Errorf("AddVertex(%d): contracted: %w", id, ErrVertexNotFound)
	}
	g.vertices[id] = NewSimple(id)
	g.live++

	return nil
}

// HasVertex reports whether id is live in this snapshot.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	return id >= 0 && id < len(g.vertices) && g.vertices[id] != nil
}

// Vertex returns the live vertex object for id.
func (g *Graph) Vertex(id int) (*Vertex, bool) {
	if !g.HasVertex(id) {
		return nil, false
	}

	return g.vertices[id], true
}

// Vertices returns all live ids in ascending order.
// Complexity: O(Capacity()).
func (g *Graph) Vertices() []int {
	out := make([]int, 0, g.live)
	for id, v := range g.vertices {
		if v != nil {
			out = append(out, id)
		}
	}

	return out
}

// Order returns the maximum number of original vertices.
func (g *Graph) Order() int { return g.order }

// Capacity returns the size of the id space (original + pseudo ids).
func (g *Graph) Capacity() int { return len(g.vertices) }

// Len returns the number of live vertices.
func (g *Graph) Len() int { return g.live }

// IsOriginal reports whether id lies in the original id range.
func (g *Graph) IsOriginal(id int) bool { return id >= 0 && id < g.order }

// Degree returns the number of out-arcs of id (0 if id is not live).
func (g *Graph) Degree(id int) int {
	if !g.HasVertex(id) {
		return 0
	}

	return len(g.adj[id])
}

// nextPseudoID returns the lowest id in the pseudo range that is neither live
// nor nested inside a live pseudo-vertex.
func (g *Graph) nextPseudoID() (int, error) {
	for id := g.order; id < len(g.vertices); id++ {
		if !g.reserved[id] {
			return id, nil
		}
	}

	return 0, ErrCapacityExhausted
}
