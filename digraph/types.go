// File: types.go
// Role: Edge, Vertex and Graph declarations, options, sentinel errors and New.

package digraph

import (
	"errors"
	"fmt"
)

// Sentinel errors for digraph operations.
var (
	// ErrNegativeWeight indicates an arc with weight below zero.
	ErrNegativeWeight = errors.New("digraph: negative weight")

	// ErrVertexOutOfRange indicates an id outside [0, Capacity()) or an
	// original id at or above Order().
	ErrVertexOutOfRange = errors.New("digraph: vertex id out of range")

	// ErrVertexNotFound indicates an operation referenced an id that is not live.
	ErrVertexNotFound = errors.New("digraph: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop when loops are disabled.
	ErrLoopNotAllowed = errors.New("digraph: self-loop not allowed")

	// ErrInvalidCycle indicates a cycle that is not an odd closed walk of
	// distinct live vertices containing the requested root.
	ErrInvalidCycle = errors.New("digraph: invalid cycle")

	// ErrNotPseudo indicates LiftCycle was asked to lift a simple vertex.
	ErrNotPseudo = errors.New("digraph: vertex is not a pseudo-vertex")

	// ErrCapacityExhausted indicates no pseudo-vertex id is left.
	ErrCapacityExhausted = errors.New("digraph: pseudo-vertex capacity exhausted")

	// ErrMalformedLine indicates a text line not of the form "TAIL HEAD WEIGHT".
	ErrMalformedLine = errors.New("digraph: malformed edge line")
)

// Edge is a directed arc Tail→Head carrying a non-negative weight.
// Undirected semantics are obtained by storing both directions.
type Edge struct {
	Tail   int
	Head   int
	Weight int64
}

// Reverse returns the arc in the opposite direction with the same weight.
func (e Edge) Reverse() Edge {
	return Edge{Tail: e.Head, Head: e.Tail, Weight: e.Weight}
}

// IsLoop reports whether the arc starts and ends at the same vertex.
func (e Edge) IsLoop() bool { return e.Tail == e.Head }

// Other returns the endpoint opposite to v. It assumes v is an endpoint.
func (e Edge) Other(v int) int {
	if e.Tail == v {
		return e.Head
	}

	return e.Tail
}

// Key returns the unordered endpoint pair, lower id first.
func (e Edge) Key() [2]int {
	if e.Tail <= e.Head {
		return [2]int{e.Tail, e.Head}
	}

	return [2]int{e.Head, e.Tail}
}

// String renders the arc as "tail--(weight)->head".
func (e Edge) String() string {
	return fmt.Sprintf("%d--(%d)->%d", e.Tail, e.Weight, e.Head)
}

// compareEdges orders arcs by Tail, Head, then Weight.
func compareEdges(a, b Edge) int {
	switch {
	case a.Tail != b.Tail:
		return a.Tail - b.Tail
	case a.Head != b.Head:
		return a.Head - b.Head
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	}

	return 0
}

// Kind tags the Vertex variant.
type Kind uint8

const (
	// KindSimple is an original vertex with no interior.
	KindSimple Kind = iota
	// KindPseudo is a contracted odd cycle (blossom).
	KindPseudo
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == KindPseudo {
		return "pseudo"
	}

	return "simple"
}

// Vertex is a tagged variant over {simple, pseudo}. Both variants expose an id;
// pseudo-vertices additionally expose their ordered interior cycle, the arcs
// joining consecutive members, and a membership test.
//
// Vertex values are immutable after construction and may be shared by several
// graph snapshots.
type Vertex struct {
	id   int
	kind Kind

	// Pseudo-only state. cycle[0] is the root passed to ContractCycle and
	// edges[i] joins cycle[i] and cycle[(i+1)%len(cycle)].
	cycle []int
	edges []Edge

	// Saved state for an exact LiftCycle.
	members []*Vertex // vertex objects aligned with cycle
	inner   []heldArc // arcs between members at contraction time
}

// heldArc is an arc retired by a contraction together with its origin.
type heldArc struct {
	Edge
	origin [2]int
}

// NewSimple returns a simple vertex with the given id.
func NewSimple(id int) *Vertex {
	return &Vertex{id: id, kind: KindSimple}
}

// ID returns the vertex identity.
func (v *Vertex) ID() int { return v.id }

// Kind returns the variant tag.
func (v *Vertex) Kind() Kind { return v.kind }

// IsPseudo reports whether v is a contracted cycle.
func (v *Vertex) IsPseudo() bool { return v.kind == KindPseudo }

// Root returns the first cycle member for a pseudo-vertex and the id itself
// for a simple vertex.
func (v *Vertex) Root() int {
	if v.kind == KindPseudo {
		return v.cycle[0]
	}

	return v.id
}

// Cycle returns a copy of the interior cycle (nil for simple vertices).
func (v *Vertex) Cycle() []int {
	if v.kind != KindPseudo {
		return nil
	}

	return append([]int(nil), v.cycle...)
}

// CycleEdges returns a copy of the arcs witnessing the interior cycle.
func (v *Vertex) CycleEdges() []Edge {
	if v.kind != KindPseudo {
		return nil
	}

	return append([]Edge(nil), v.edges...)
}

// Interior returns the direct member vertices of a pseudo-vertex.
func (v *Vertex) Interior() []*Vertex {
	if v.kind != KindPseudo {
		return nil
	}

	return append([]*Vertex(nil), v.members...)
}

// Contains reports whether id is v itself or nested anywhere inside v.
func (v *Vertex) Contains(id int) bool {
	if v.id == id {
		return true
	}
	// iterative walk over the nesting tree
	stack := append([]*Vertex(nil), v.members...)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.id == id {
			return true
		}
		stack = append(stack, top.members...)
	}

	return false
}

// Leaves returns the original (simple) vertex ids nested inside v, in cycle
// order with nested cycles expanded in place.
func (v *Vertex) Leaves() []int {
	if v.kind != KindPseudo {
		return []int{v.id}
	}
	var out []int
	for _, m := range v.members {
		out = append(out, m.Leaves()...)
	}

	return out
}

// String renders simple vertices as "v3" and pseudo-vertices as "V7{v1 v2 v3}".
func (v *Vertex) String() string {
	if v.kind != KindPseudo {
		return fmt.Sprintf("v%d", v.id)
	}
	s := fmt.Sprintf("V%d{", v.id)
	for i, m := range v.members {
		if i > 0 {
			s += " "
		}
		s += m.String()
	}

	return s + "}"
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithLoops permits self-loop arcs.
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is an adjacency-list digraph keyed by integer vertex id.
//
// adj[id] holds the out-arcs of id; vertices[id] is nil when id is not live
// (never created, or retired by a contraction). origin[id][j] holds the
// endpoints adj[id][j] was created with: an arc always runs between the live
// vertices containing its origin ends.
type Graph struct {
	order      int // maximum number of original vertices
	allowLoops bool

	adj      [][]Edge
	origin   [][][2]int
	vertices []*Vertex
	reserved []bool // ids nested inside a live pseudo-vertex, plus live pseudo ids
	live     int
}

// New creates an empty Graph that accepts original ids in [0, order) and
// reserves [order, 2*order) for pseudo-vertices.
// Complexity: O(order).
func New(order int, opts ...Option) *Graph {
	if order < 1 {
		order = 1
	}
	capacity := 2 * order
	g := &Graph{
		order:    order,
		adj:      make([][]Edge, capacity),
		origin:   make([][][2]int, capacity),
		vertices: make([]*Vertex, capacity),
		reserved: make([]bool, capacity),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
