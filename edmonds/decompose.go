package edmonds

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/matching"
)

// Decomposition is the Gallai–Edmonds partition of the live original
// vertices with respect to a maximum matching.
type Decomposition struct {
	// Outer holds vertices reachable from an exposed vertex by an even
	// alternating path (S labels, including blossom interiors).
	Outer mapset.Set[int]
	// Inner holds vertices reachable only by odd alternating paths (T labels).
	Inner mapset.Set[int]
	// Rest holds every other live vertex; the matching is perfect on it.
	Rest mapset.Set[int]
	// Blossoms lists the leaves of each outermost blossom, ascending by
	// blossom id.
	Blossoms [][]int

	outerComponents int
}

// Deficiency returns the number of vertices every maximum matching leaves
// exposed: the odd components induced by Outer minus the size of Inner.
func (d *Decomposition) Deficiency() int {
	return d.outerComponents - d.Inner.Cardinality()
}

// Decompose classifies the vertices of g with respect to m, which must be a
// maximum matching of g. It grows alternating trees from every exposed vertex
// at once; an arc joining two different trees is an augmenting path and
// yields ErrNotMaximum.
// Complexity: O(V·E).
func Decompose(g *digraph.Graph, m *matching.Matching, opts ...Option) (*Decomposition, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	e := New(g, opts...)
	mm, err := e.prepare(m)
	if err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	s := newSearch(e, mm)
	s.multi = true
	s.reset()

	// 1) Every arc except the matched one is auxiliary; every exposed
	//    vertex roots its own tree.
	for v := 0; v < s.n; v++ {
		for _, a := range e.adj[v] {
			if mm.Mate(a.Head) != v {
				s.arcs[v] = append(s.arcs[v], a)
			}
		}
	}
	for v := 0; v < s.n; v++ {
		if g.HasVertex(v) && !mm.IsMatched(v) {
			s.label(v, none, digraph.Edge{}, v)
		}
	}

	// 2) Grow the forest.
	if s.grow() {
		return nil, fmt.Errorf("Decompose: arc %v joins two alternating trees: %w", s.crossing, ErrNotMaximum)
	}

	// 3) Classify.
	d := &Decomposition{
		Outer: mapset.NewThreadUnsafeSet[int](),
		Inner: mapset.NewThreadUnsafeSet[int](),
		Rest:  mapset.NewThreadUnsafeSet[int](),
	}
	for v := 0; v < s.n; v++ {
		switch {
		case !g.HasVertex(v):
		case s.outer[s.owner[v]]:
			d.Outer.Add(v)
		case s.seen[v]:
			d.Inner.Add(v)
		default:
			d.Rest.Add(v)
		}
	}
	for _, id := range s.forest.Blossoms() {
		if s.forest.Parent(id) == none {
			d.Blossoms = append(d.Blossoms, s.forest.Leaves(id))
		}
	}
	d.outerComponents = components(e.adj, d.Outer)

	return d, nil
}

// components counts the connected components induced by set.
func components(adj [][]digraph.Edge, set mapset.Set[int]) int {
	visited := mapset.NewThreadUnsafeSetWithSize[int](set.Cardinality())
	count := 0
	for _, start := range set.ToSlice() {
		if !visited.Add(start) {
			continue
		}
		count++
		stack := []int{start}
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, a := range adj[v] {
				if set.Contains(a.Head) && visited.Add(a.Head) {
					stack = append(stack, a.Head)
				}
			}
		}
	}

	return count
}
