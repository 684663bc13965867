package blossom

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvmatch/digraph"
)

// Order returns the number of original vertices.
func (f *Forest) Order() int { return f.n }

// Len returns the number of live blossoms.
func (f *Forest) Len() int { return len(f.blossoms) }

// IsBlossom reports whether id names a live blossom.
func (f *Forest) IsBlossom(id int) bool {
	_, ok := f.blossoms[id]

	return ok
}

// Get returns the live blossom id. The record is owned by the forest and must
// be treated as read-only.
func (f *Forest) Get(id int) (*Blossom, bool) {
	b, ok := f.blossoms[id]

	return b, ok
}

// Blossoms returns the live blossom ids in ascending order.
func (f *Forest) Blossoms() []int {
	ids := maps.Keys(f.blossoms)
	slices.Sort(ids)

	return ids
}

// Parent returns the enclosing blossom of id, or None.
func (f *Forest) Parent(id int) int {
	if id < 0 || id >= len(f.parent) {
		return None
	}

	return f.parent[id]
}

// Top returns the outermost blossom containing id, or id itself when it is
// not nested.
func (f *Forest) Top(id int) int {
	if id < 0 || id >= len(f.parent) {
		return id
	}
	for f.parent[id] != None {
		id = f.parent[id]
	}

	return id
}

// Base returns the original base vertex of id (id itself for a vertex).
func (f *Forest) Base(id int) int {
	if b, ok := f.blossoms[id]; ok {
		return b.Base
	}

	return id
}

// Contains reports whether v is b itself or nested anywhere inside b.
func (f *Forest) Contains(b, v int) bool {
	if v < 0 || v >= len(f.parent) {
		return false
	}
	for ; v != None; v = f.parent[v] {
		if v == b {
			return true
		}
	}

	return false
}

// Leaves returns the original vertices nested inside id, in cycle order with
// nested cycles expanded in place.
func (f *Forest) Leaves(id int) []int {
	return f.appendLeaves(nil, id)
}

func (f *Forest) appendLeaves(out []int, id int) []int {
	b, ok := f.blossoms[id]
	if !ok {
		return append(out, id)
	}
	for _, c := range b.Cycle {
		out = f.appendLeaves(out, c)
	}

	return out
}

// Alloc returns the lowest unused blossom id.
func (f *Forest) Alloc() (int, error) {
	for id := f.n; id < 2*f.n; id++ {
		if _, used := f.blossoms[id]; !used {
			return id, nil
		}
	}

	return None, ErrCapacity
}

// Add inserts b as a new top-level blossom whose children are current
// top-level nodes. Base is taken from Cycle[0]. The cycle and edge slices are
// owned by the forest afterwards.
// Complexity: O(len(b.Cycle)).
func (f *Forest) Add(b Blossom) (*Blossom, error) {
	// 1) id
	if b.ID < f.n || b.ID >= 2*f.n {
		return nil, fmt.Errorf("Add(%d): %w", b.ID, ErrOutOfRange)
	}
	if f.IsBlossom(b.ID) {
		return nil, fmt.Errorf("Add(%d): id in use: %w", b.ID, ErrInvalidBlossom)
	}
	// 2) shape
	if len(b.Cycle) < 3 || len(b.Cycle)%2 == 0 || len(b.Edges) != len(b.Cycle) {
		return nil, fmt.Errorf("Add(%d): %d children, %d edges: %w",
			b.ID, len(b.Cycle), len(b.Edges), ErrInvalidBlossom)
	}
	// 3) children: existing, top-level, distinct
	for i, c := range b.Cycle {
		if c < 0 || c >= 2*f.n || (c >= f.n && !f.IsBlossom(c)) {
			return nil, fmt.Errorf("Add(%d): child %d: %w", b.ID, c, ErrInvalidBlossom)
		}
		if f.parent[c] != None {
			return nil, fmt.Errorf("Add(%d): child %d already nested in %d: %w",
				b.ID, c, f.parent[c], ErrInvalidBlossom)
		}
		if slices.Index(b.Cycle[:i], c) >= 0 {
			return nil, fmt.Errorf("Add(%d): child %d repeated: %w", b.ID, c, ErrInvalidBlossom)
		}
	}

	rec := &Blossom{ID: b.ID, Base: f.Base(b.Cycle[0]), Cycle: b.Cycle, Edges: b.Edges}
	for i, c := range rec.Cycle {
		f.parent[c] = rec.ID
		f.pos[c] = i
	}
	f.parent[rec.ID] = None
	f.blossoms[rec.ID] = rec

	return rec, nil
}

// Expand dissolves the top-level blossom b one level and returns its
// children, which become top-level nodes.
func (f *Forest) Expand(b int) ([]int, error) {
	rec, ok := f.blossoms[b]
	if !ok {
		return nil, fmt.Errorf("Expand(%d): %w", b, ErrNotBlossom)
	}
	if f.parent[b] != None {
		return nil, fmt.Errorf("Expand(%d): nested in %d: %w", b, f.parent[b], ErrInvalidBlossom)
	}
	for _, c := range rec.Cycle {
		f.parent[c] = None
		f.pos[c] = 0
	}
	delete(f.blossoms, b)

	return rec.Cycle, nil
}

// Remove dissolves the top-level blossom b and every blossom nested in it.
func (f *Forest) Remove(b int) error {
	children, err := f.Expand(b)
	if err != nil {
		return fmt.Errorf("Remove: %w", err)
	}
	for _, c := range children {
		if f.IsBlossom(c) {
			if err = f.Remove(c); err != nil {
				return err
			}
		}
	}

	return nil
}

// Reset dissolves every blossom.
func (f *Forest) Reset() {
	for id := range f.blossoms {
		delete(f.blossoms, id)
	}
	for i := range f.parent {
		f.parent[i] = None
		f.pos[i] = 0
	}
}

// Rotate shifts the cycle of b so that its i-th child comes first and
// refreshes the base from that child, which may itself have been re-based.
// Edge indexing follows the children.
func (f *Forest) Rotate(b, i int) error {
	rec, ok := f.blossoms[b]
	if !ok {
		return fmt.Errorf("Rotate(%d): %w", b, ErrNotBlossom)
	}
	if i < 0 || i >= len(rec.Cycle) {
		return fmt.Errorf("Rotate(%d, %d): %w", b, i, ErrOutOfRange)
	}
	if i == 0 {
		rec.Base = f.Base(rec.Cycle[0])
		return nil
	}
	L := len(rec.Cycle)
	cycle := make([]int, 0, L)
	edges := make([]digraph.Edge, 0, L)
	rec.Cycle = append(append(cycle, rec.Cycle[i:]...), rec.Cycle[:i]...)
	rec.Edges = append(append(edges, rec.Edges[i:]...), rec.Edges[:i]...)
	for k, c := range rec.Cycle {
		f.pos[c] = k
	}
	rec.Base = f.Base(rec.Cycle[0])

	return nil
}

// SetBase records a new base vertex for b. Callers use it after relinking the
// matching inside b when Cycle[0] keeps the same child but that child's base
// changed.
func (f *Forest) SetBase(b, base int) {
	if rec, ok := f.blossoms[b]; ok {
		rec.Base = base
	}
}

// ChildOf returns the direct child of b that contains v.
func (f *Forest) ChildOf(b, v int) (int, error) {
	if v < 0 || v >= len(f.parent) {
		return None, fmt.Errorf("ChildOf(%d, %d): %w", b, v, ErrOutOfRange)
	}
	for x := v; x != None; x = f.parent[x] {
		if f.parent[x] == b {
			return x, nil
		}
	}

	return None, fmt.Errorf("ChildOf(%d, %d): %w", b, v, ErrNotMember)
}

// Index returns the position of id inside its parent's cycle.
func (f *Forest) Index(id int) int { return f.pos[id] }

// PathToBase returns the original vertices on the alternating path from v to
// the base of node, starting with the matched edge at v. node may be an
// original vertex, in which case the path is [v].
// Complexity: O(|leaves(node)|·depth).
func (f *Forest) PathToBase(node, v int) ([]int, error) {
	if node == v && !f.IsBlossom(node) {
		return []int{v}, nil
	}
	if !f.IsBlossom(node) {
		return nil, fmt.Errorf("PathToBase(%d, %d): %w", node, v, ErrNotBlossom)
	}
	if node == v || !f.Contains(node, v) {
		return nil, fmt.Errorf("PathToBase(%d, %d): %w", node, v, ErrNotMember)
	}

	return f.appendPathToBase(nil, node, v), nil
}

// appendPathToBase appends the path from v to base(node); v is nested inside
// node or equal to it.
func (f *Forest) appendPathToBase(out []int, node, v int) []int {
	rec, ok := f.blossoms[node]
	if !ok {
		return append(out, v)
	}
	c, _ := f.ChildOf(node, v)
	out = f.appendPathToBase(out, c, v)

	// Leave child i through its matched edge; odd i walks forward, even i
	// walks backward, and both reach child 0 after an even number of edges.
	k, L := f.pos[c], len(rec.Cycle)
	step := 1
	if k%2 == 0 {
		step = L - 1
	}
	for k != 0 {
		// matched edge: we land on the base of the next child
		k = (k + step) % L
		// unmatched edge out of child k
		next := (k + step) % L
		var exit, entry int
		if step == 1 {
			exit, entry = rec.Edges[k].Tail, rec.Edges[k].Head
		} else {
			exit, entry = rec.Edges[next].Head, rec.Edges[next].Tail
		}
		seg := f.appendPathToBase(nil, rec.Cycle[k], exit)
		for j := len(seg) - 1; j >= 0; j-- {
			out = append(out, seg[j])
		}
		k = next
		out = f.appendPathToBase(out, rec.Cycle[k], entry)
	}

	return out
}
