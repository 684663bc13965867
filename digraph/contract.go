// File: contract.go
// Role: Odd-cycle contraction into a pseudo-vertex and its inverse.
//
// Contract:
//   - Both transformations return a new snapshot; the receiver is untouched.
//   - ContractCycle(root, cycle) followed by LiftCycle(pseudo) reproduces the
//     source graph exactly (per-vertex arc multiset equality). Nested
//     contractions lift outermost first; unrelated ones in any order.
//   - Every arc keeps the endpoints it was created with, so lifting resolves
//     it through whatever contractions happened in between.
//   - Precondition violations return ErrInvalidCycle / ErrNotPseudo and leave
//     no partial state behind.

package digraph

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	methodContract = "ContractCycle"
	methodLift     = "LiftCycle"
	minCycleLen    = 3
)

// ContractCycle replaces the odd cycle of live vertices `cycle` (which must
// contain root) with a fresh pseudo-vertex and returns the new snapshot and
// the pseudo-vertex id.
//
// Consecutive members (cyclically) must be joined by an arc in either
// direction. The pseudo-vertex inherits every external arc of its members:
// out-arcs become pseudo→x and in-arcs become x→pseudo. Arcs between members
// are dropped. Parallel arcs produced by the merge are kept.
//
// Complexity: O(V + E).
func (g *Graph) ContractCycle(root int, cycle []int) (*Graph, int, error) {
	// 1) Shape: odd, at least three members, all distinct and live.
	if len(cycle) < minCycleLen || len(cycle)%2 == 0 {
		return nil, 0, fmt.Errorf("%s: length %d: %w", methodContract, len(cycle), ErrInvalidCycle)
	}
	members := mapset.NewThreadUnsafeSet[int]()
	rootAt := -1
	for i, id := range cycle {
		if !g.HasVertex(id) {
			return nil, 0, fmt.Errorf("%s: member %d: %w", methodContract, id, ErrVertexNotFound)
		}
		if !members.Add(id) {
			return nil, 0, fmt.Errorf("%s: member %d repeated: %w", methodContract, id, ErrInvalidCycle)
		}
		if id == root {
			rootAt = i
		}
	}
	if rootAt < 0 {
		return nil, 0, fmt.Errorf("%s: root %d not on cycle: %w", methodContract, root, ErrInvalidCycle)
	}

	// 2) Rotate so the root comes first, then collect the witnessing arcs.
	ordered := make([]int, len(cycle))
	for i := range cycle {
		ordered[i] = cycle[(rootAt+i)%len(cycle)]
	}
	witness := make([]Edge, len(ordered))
	for i, a := range ordered {
		b := ordered[(i+1)%len(ordered)]
		e, ok := g.Arc(a, b)
		if !ok {
			if e, ok = g.Arc(b, a); !ok {
				return nil, 0, fmt.Errorf("%s: no arc between %d and %d: %w", methodContract, a, b, ErrInvalidCycle)
			}
		}
		witness[i] = e
	}

	// 3) Allocate the pseudo id.
	pid, err := g.nextPseudoID()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", methodContract, err)
	}

	// 4) Build the new snapshot. Redirected arcs keep their origin.
	ng := g.Clone()
	pv := &Vertex{
		id:      pid,
		kind:    KindPseudo,
		cycle:   ordered,
		edges:   witness,
		members: make([]*Vertex, len(ordered)),
	}
	var out []Edge
	var outOrigin [][2]int
	for i, m := range ordered {
		pv.members[i] = g.vertices[m]
		for j, e := range g.adj[m] {
			if members.Contains(e.Head) {
				pv.inner = append(pv.inner, heldArc{Edge: e, origin: g.origin[m][j]})
				continue
			}
			out = append(out, Edge{Tail: pid, Head: e.Head, Weight: e.Weight})
			outOrigin = append(outOrigin, g.origin[m][j])
		}
	}
	// external arcs into members are redirected to the pseudo-vertex
	for x, list := range ng.adj {
		if members.Contains(x) {
			continue
		}
		for j, e := range list {
			if members.Contains(e.Head) {
				list[j].Head = pid
			}
		}
	}
	for _, m := range ordered {
		ng.adj[m], ng.origin[m] = nil, nil
		ng.vertices[m] = nil
		ng.reserved[m] = true
	}
	ng.vertices[pid] = pv
	ng.reserved[pid] = true
	ng.adj[pid], ng.origin[pid] = out, outOrigin
	ng.live += 1 - len(ordered)

	return ng, pid, nil
}

// LiftCycle removes the pseudo-vertex id and restores its direct members with
// the arcs between them. Every arc touching the pseudo-vertex is re-pointed
// to the member holding its origin end, so lifts may happen in any order
// relative to unrelated contractions. Arcs added to the pseudo-vertex itself
// after contraction have no such member and are dropped.
//
// Complexity: O(V + E).
func (g *Graph) LiftCycle(id int) (*Graph, error) {
	pv, ok := g.Vertex(id)
	if !ok {
		return nil, fmt.Errorf("%s(%d): %w", methodLift, id, ErrVertexNotFound)
	}
	if !pv.IsPseudo() {
		return nil, fmt.Errorf("%s(%d): %w", methodLift, id, ErrNotPseudo)
	}
	memberOf := func(leaf int) int {
		for _, m := range pv.members {
			if m.Contains(leaf) {
				return m.id
			}
		}

		return -1
	}

	// 1) Retire the pseudo-vertex and revive its members.
	ng := g.Clone()
	out, outOrigin := ng.adj[id], ng.origin[id]
	ng.adj[id], ng.origin[id] = nil, nil
	ng.vertices[id] = nil
	ng.reserved[id] = false
	ng.live--
	for _, m := range pv.members {
		ng.vertices[m.id] = m
		ng.reserved[m.id] = m.IsPseudo()
		ng.live++
	}

	// 2) Re-point inbound arcs x→id at the member holding their head.
	for x, list := range ng.adj {
		if len(list) == 0 {
			continue
		}
		orig := ng.origin[x]
		kept := 0
		for j, e := range list {
			if e.Head == id {
				if e.Head = memberOf(orig[j][1]); e.Head < 0 {
					continue
				}
			}
			list[kept], orig[kept] = e, orig[j]
			kept++
		}
		ng.adj[x], ng.origin[x] = list[:kept], orig[:kept]
	}

	// 3) Hand the out-arcs back to the member holding their tail.
	for j, e := range out {
		o := outOrigin[j]
		e.Tail = memberOf(o[0])
		if e.Head == id {
			e.Head = memberOf(o[1])
		}
		if e.Tail < 0 || e.Head < 0 {
			continue
		}
		ng.adj[e.Tail] = append(ng.adj[e.Tail], e)
		ng.origin[e.Tail] = append(ng.origin[e.Tail], o)
	}

	// 4) Internal arcs come back unchanged.
	for _, a := range pv.inner {
		ng.adj[a.Tail] = append(ng.adj[a.Tail], a.Edge)
		ng.origin[a.Tail] = append(ng.origin[a.Tail], a.origin)
	}

	return ng, nil
}
