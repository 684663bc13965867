package matching

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/lvmatch/digraph"
)

// Len returns the size of the id space.
func (m *Matching) Len() int { return len(m.mate) }

// Count returns the number of matched pairs.
func (m *Matching) Count() int { return m.count }

// Weight returns the accumulated weight of all matched pairs.
func (m *Matching) Weight() int64 { return m.total }

// Mate returns the partner of v, or Unmatched (also for ids out of range).
func (m *Matching) Mate(v int) int {
	if v < 0 || v >= len(m.mate) {
		return Unmatched
	}

	return m.mate[v]
}

// IsMatched reports whether v has a partner.
func (m *Matching) IsMatched(v int) bool { return m.Mate(v) != Unmatched }

// PairWeight returns the weight of the pair covering v, or 0.
func (m *Matching) PairWeight(v int) int64 {
	if !m.IsMatched(v) {
		return 0
	}

	return m.weight[v]
}

// Add records the pair (e.Tail, e.Head) with weight e.Weight.
// Complexity: O(1).
func (m *Matching) Add(e digraph.Edge) error {
	if err := m.checkEdge(e); err != nil {
		return fmt.Errorf("Add(%v): %w", e, err)
	}
	if m.mate[e.Tail] != Unmatched || m.mate[e.Head] != Unmatched {
		return fmt.Errorf("Add(%v): %w", e, ErrAlreadyMatched)
	}
	m.link(e)

	return nil
}

// Remove drops the pair (e.Tail, e.Head). The edge must equal the recorded
// pair in either orientation.
// Complexity: O(1).
func (m *Matching) Remove(e digraph.Edge) error {
	if err := m.checkEdge(e); err != nil {
		return fmt.Errorf("Remove(%v): %w", e, err)
	}
	if m.mate[e.Tail] == Unmatched {
		return fmt.Errorf("Remove(%v): %w", e, ErrNotMatched)
	}
	if m.mate[e.Tail] != e.Head {
		return fmt.Errorf("Remove(%v): mate(%d)=%d: %w", e, e.Tail, m.mate[e.Tail], ErrMismatchedPair)
	}
	m.unlink(e.Tail)

	return nil
}

// RemoveVertex drops the pair covering v.
func (m *Matching) RemoveVertex(v int) error {
	if v < 0 || v >= len(m.mate) {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrOutOfRange)
	}
	if m.mate[v] == Unmatched {
		return fmt.Errorf("RemoveVertex(%d): %w", v, ErrNotMatched)
	}
	m.unlink(v)

	return nil
}

// Augment toggles the alternating path: matched edges on it are removed,
// the others are added.
//
// The path must be a chain of arcs (path[i].Head == path[i+1].Tail) over
// distinct vertices whose edges alternate between matched and unmatched. An
// end reached through an unmatched edge must be exposed. A classic augmenting
// path (unmatched, matched, …, unmatched between two exposed vertices) grows
// the matching by one pair; applying the reversed path afterwards restores
// the previous matching.
//
// On ErrInvalidPath the matching is left unchanged.
// Complexity: O(len(path)).
func (m *Matching) Augment(path []digraph.Edge) error {
	// 1) Validate the whole path before touching any state.
	matched, err := m.classifyPath(path)
	if err != nil {
		return fmt.Errorf("Augment: %w", err)
	}

	// 2) Remove every matched edge first; each removal only touches its own pair.
	for i, e := range path {
		if matched[i] {
			m.unlink(e.Tail)
		}
	}
	// 3) Add the rest.
	for i, e := range path {
		if !matched[i] {
			m.link(e)
		}
	}

	return nil
}

// classifyPath checks the shape of path and reports which of its edges are
// currently matched.
func (m *Matching) classifyPath(path []digraph.Edge) ([]bool, error) {
	if len(path) == 0 {
		return nil, fmt.Errorf("empty path: %w", ErrInvalidPath)
	}
	visited := mapset.NewThreadUnsafeSetWithSize[int](len(path) + 1)
	matched := make([]bool, len(path))
	for i, e := range path {
		if err := m.checkEdge(e); err != nil {
			return nil, fmt.Errorf("edge %d %v: %w: %w", i, e, ErrInvalidPath, err)
		}
		if i > 0 && path[i-1].Head != e.Tail {
			return nil, fmt.Errorf("edge %d %v does not continue %v: %w", i, e, path[i-1], ErrInvalidPath)
		}
		if !visited.Add(e.Tail) {
			return nil, fmt.Errorf("vertex %d repeated: %w", e.Tail, ErrInvalidPath)
		}
		matched[i] = m.mate[e.Tail] == e.Head
		if i > 0 && matched[i] == matched[i-1] {
			return nil, fmt.Errorf("edges %d and %d do not alternate: %w", i-1, i, ErrInvalidPath)
		}
	}
	last := path[len(path)-1]
	if !visited.Add(last.Head) {
		return nil, fmt.Errorf("vertex %d repeated: %w", last.Head, ErrInvalidPath)
	}
	if !matched[0] && m.mate[path[0].Tail] != Unmatched {
		return nil, fmt.Errorf("start %d is not exposed: %w", path[0].Tail, ErrInvalidPath)
	}
	if !matched[len(path)-1] && m.mate[last.Head] != Unmatched {
		return nil, fmt.Errorf("end %d is not exposed: %w", last.Head, ErrInvalidPath)
	}

	return matched, nil
}

// checkEdge validates endpoint range and rejects loops.
func (m *Matching) checkEdge(e digraph.Edge) error {
	n := len(m.mate)
	if e.Tail < 0 || e.Tail >= n || e.Head < 0 || e.Head >= n {
		return ErrOutOfRange
	}
	if e.IsLoop() {
		return ErrSelfLoop
	}

	return nil
}

func (m *Matching) link(e digraph.Edge) {
	m.mate[e.Tail], m.mate[e.Head] = e.Head, e.Tail
	m.weight[e.Tail], m.weight[e.Head] = e.Weight, e.Weight
	m.count++
	m.total += e.Weight
}

func (m *Matching) unlink(v int) {
	w := m.mate[v]
	m.total -= m.weight[v]
	m.count--
	m.mate[v], m.mate[w] = Unmatched, Unmatched
	m.weight[v], m.weight[w] = 0, 0
}

// Pairs returns matched pairs sorted by lower endpoint.
// Complexity: O(n).
func (m *Matching) Pairs() []Pair {
	out := make([]Pair, 0, m.count)
	for v, w := range m.mate {
		if w > v {
			out = append(out, Pair{U: v, V: w, Weight: m.weight[v]})
		}
	}

	return out
}

// Edges returns matched pairs as arcs lower→higher, sorted by Tail.
func (m *Matching) Edges() []digraph.Edge {
	pairs := m.Pairs()
	out := make([]digraph.Edge, len(pairs))
	for i, p := range pairs {
		out[i] = digraph.Edge{Tail: p.U, Head: p.V, Weight: p.Weight}
	}

	return out
}

// Exposed returns the unmatched ids in ascending order.
func (m *Matching) Exposed() []int {
	out := make([]int, 0, len(m.mate)-2*m.count)
	for v, w := range m.mate {
		if w == Unmatched {
			out = append(out, v)
		}
	}

	return out
}

// Clone returns an independent copy.
func (m *Matching) Clone() *Matching {
	return &Matching{
		mate:   append([]int(nil), m.mate...),
		weight: append([]int64(nil), m.weight...),
		count:  m.count,
		total:  m.total,
	}
}

// Equal reports whether both matchings have the same size, pairs and weights.
func (m *Matching) Equal(other *Matching) bool {
	if other == nil || len(m.mate) != len(other.mate) || m.count != other.count || m.total != other.total {
		return false
	}
	for v := range m.mate {
		if m.mate[v] != other.mate[v] || m.weight[v] != other.weight[v] {
			return false
		}
	}

	return true
}

// Reset drops every pair.
func (m *Matching) Reset() {
	for v := range m.mate {
		m.mate[v] = Unmatched
		m.weight[v] = 0
	}
	m.count, m.total = 0, 0
}

// Validate scans the whole array and checks the involution, per-pair weight
// symmetry and the incremental totals.
// Complexity: O(n).
func (m *Matching) Validate() error {
	count := 0
	var total int64
	for v, w := range m.mate {
		if w == Unmatched {
			if m.weight[v] != 0 {
				return fmt.Errorf("Validate: exposed %d carries weight %d: %w", v, m.weight[v], ErrCorrupt)
			}
			continue
		}
		if w < 0 || w >= len(m.mate) || w == v || m.mate[w] != v {
			return fmt.Errorf("Validate: mate(%d)=%d is not symmetric: %w", v, w, ErrCorrupt)
		}
		if m.weight[v] != m.weight[w] {
			return fmt.Errorf("Validate: pair (%d,%d) weight mismatch: %w", v, w, ErrCorrupt)
		}
		if v < w {
			count++
			total += m.weight[v]
		}
	}
	if count != m.count || total != m.total {
		return fmt.Errorf("Validate: totals count=%d/%d weight=%d/%d: %w",
			m.count, count, m.total, total, ErrCorrupt)
	}

	return nil
}

// String renders the matching as "{(0,1) (2,3)} count=2 weight=7".
func (m *Matching) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range m.Pairs() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "(%d,%d)", p.U, p.V)
	}
	fmt.Fprintf(&sb, "} count=%d weight=%d", m.count, m.total)

	return sb.String()
}
