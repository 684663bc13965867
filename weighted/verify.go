package weighted

import (
	"fmt"
	"math"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/matching"
)

// tolerance absorbs float noise in half-integral duals.
const tolerance = 1e-9

// Classify returns the labels of the last stage.
func (e *Engine) Classify() Classification {
	c := Classification{
		Outer:         mapset.NewThreadUnsafeSet[int](),
		Inner:         mapset.NewThreadUnsafeSet[int](),
		OuterBlossoms: mapset.NewThreadUnsafeSet[int](),
		InnerBlossoms: mapset.NewThreadUnsafeSet[int](),
	}
	if e.forest == nil {
		return c
	}
	for v := 0; v < e.n; v++ {
		switch e.label[e.inBlossom[v]] {
		case labelS:
			c.Outer.Add(v)
		case labelT:
			c.Inner.Add(v)
		}
	}
	for _, b := range e.forest.Blossoms() {
		if e.forest.Parent(b) != none {
			continue
		}
		switch e.label[b] {
		case labelS:
			c.OuterBlossoms.Add(b)
		case labelT:
			c.InnerBlossoms.Add(b)
		}
	}

	return c
}

// Alpha returns the dual of vertex v in objective units. Every vertex starts
// at half the largest objective weight, not half its own heaviest edge.
func (e *Engine) Alpha(v int) float64 {
	if e.dual == nil || v < 0 || v >= e.n {
		return 0
	}

	return float64(e.dual[v]) / 2
}

// Gamma returns the dual of blossom b, 0 when b is not live.
func (e *Engine) Gamma(b int) float64 {
	if e.forest == nil || !e.forest.IsBlossom(b) {
		return 0
	}

	return float64(e.dual[b])
}

// Duals snapshots the current dual solution.
func (e *Engine) Duals() Duals {
	d := Duals{
		Alpha:          make([]float64, e.n),
		MaxCardinality: e.opts.MaxCardinality,
		Negated:        e.opts.Minimize,
		Offset:         e.offset,
	}
	for v := range d.Alpha {
		d.Alpha[v] = e.Alpha(v)
	}
	if e.forest == nil {
		return d
	}
	for _, b := range e.forest.Blossoms() {
		d.Blossoms = append(d.Blossoms, DualBlossom{ID: b, Leaves: e.forest.Leaves(b), Gamma: e.Gamma(b)})
	}

	return d
}

// CheckOptimality verifies that d certifies m as optimal on g: every dual is
// feasible, every edge has non-negative reduced cost, matched edges are
// tight, exposed vertices carry zero dual and every blossom with positive
// dual is full. With MaxCardinality the sign and exposure conditions are
// checked on vertex duals shifted by the smallest amount that makes them
// non-negative.
// Complexity: O(E·B + V).
func CheckOptimality(g *digraph.Graph, m *matching.Matching, d Duals) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Order()
	if m == nil || m.Len() != n || len(d.Alpha) != n {
		return fmt.Errorf("CheckOptimality: size mismatch: %w", ErrNotOptimal)
	}

	// 1) dual feasibility
	lowest := math.Inf(1)
	for v, a := range d.Alpha {
		if g.HasVertex(v) {
			lowest = math.Min(lowest, a)
		}
	}
	shift := 0.0
	if d.MaxCardinality && lowest < 0 {
		shift = -lowest
	}
	if lowest+shift < -tolerance {
		return fmt.Errorf("CheckOptimality: vertex dual %g < 0: %w", lowest, ErrNotOptimal)
	}
	members := make([]mapset.Set[int], len(d.Blossoms))
	for i, b := range d.Blossoms {
		if b.Gamma < -tolerance {
			return fmt.Errorf("CheckOptimality: blossom %d dual %g < 0: %w", b.ID, b.Gamma, ErrNotOptimal)
		}
		members[i] = mapset.NewThreadUnsafeSet(b.Leaves...)
	}

	// 2) reduced costs over the collapsed edges
	best := make(map[[2]int]int64)
	for _, a := range g.Edges() {
		if a.IsLoop() || !g.IsOriginal(a.Tail) || !g.IsOriginal(a.Head) {
			continue
		}
		w := d.objective(a.Weight)
		if cur, ok := best[a.Key()]; !ok || w > cur {
			best[a.Key()] = w
		}
	}
	for key, w := range best {
		u, v := key[0], key[1]
		s := d.Alpha[u] + d.Alpha[v] - float64(w)
		for i, b := range d.Blossoms {
			if members[i].Contains(u, v) {
				s += b.Gamma
			}
		}
		if s < -tolerance {
			return fmt.Errorf("CheckOptimality: edge (%d,%d) slack %g < 0: %w", u, v, s, ErrNotOptimal)
		}
		if m.Mate(u) == v && math.Abs(s) > tolerance {
			return fmt.Errorf("CheckOptimality: matched edge (%d,%d) slack %g: %w", u, v, s, ErrNotOptimal)
		}
	}

	// 3) complementary slackness on vertices and pairs
	for _, p := range m.Pairs() {
		if _, ok := best[[2]int{p.U, p.V}]; !ok {
			return fmt.Errorf("CheckOptimality: pair (%d,%d) is not an edge: %w", p.U, p.V, ErrNotOptimal)
		}
	}
	for v, a := range d.Alpha {
		if g.HasVertex(v) && !m.IsMatched(v) && math.Abs(a+shift) > tolerance {
			return fmt.Errorf("CheckOptimality: exposed vertex %d dual %g: %w", v, a+shift, ErrNotOptimal)
		}
	}

	// 4) blossoms with positive dual hold a near-perfect matching
	for i, b := range d.Blossoms {
		if b.Gamma <= tolerance {
			continue
		}
		inside := 0
		for _, v := range b.Leaves {
			if u := m.Mate(v); u != matching.Unmatched && v < u && members[i].Contains(u) {
				inside++
			}
		}
		if len(b.Leaves)%2 == 0 || 2*inside != len(b.Leaves)-1 {
			return fmt.Errorf("CheckOptimality: blossom %d has %d inner pairs over %d vertices: %w",
				b.ID, inside, len(b.Leaves), ErrNotOptimal)
		}
	}

	return nil
}
