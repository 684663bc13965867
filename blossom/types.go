package blossom

import (
	"errors"

	"github.com/katalvlaran/lvmatch/digraph"
)

// None marks a missing parent.
const None = -1

var (
	// ErrOutOfRange indicates an id outside the forest's id space.
	ErrOutOfRange = errors.New("blossom: id out of range")

	// ErrNotBlossom indicates an id that does not name a live blossom.
	ErrNotBlossom = errors.New("blossom: not a blossom")

	// ErrInvalidBlossom indicates a malformed blossom record.
	ErrInvalidBlossom = errors.New("blossom: invalid blossom")

	// ErrCapacity indicates that every blossom id is in use.
	ErrCapacity = errors.New("blossom: no free blossom id")

	// ErrNotMember indicates a vertex that is not nested inside the blossom.
	ErrNotMember = errors.New("blossom: vertex not inside blossom")
)

// Blossom is an odd cycle of child ids contracted into one node.
type Blossom struct {
	ID    int
	Base  int            // original vertex at the base
	Cycle []int          // children, Cycle[0] holds the base
	Edges []digraph.Edge // Edges[i] joins Cycle[i] → Cycle[(i+1)%len]
}

// Len returns the number of children.
func (b *Blossom) Len() int { return len(b.Cycle) }

// Contains reports whether child is a direct child of b.
func (b *Blossom) Contains(child int) bool {
	return b.IndexOf(child) >= 0
}

// IndexOf returns the position of child in the cycle, or -1.
func (b *Blossom) IndexOf(child int) int {
	for i, c := range b.Cycle {
		if c == child {
			return i
		}
	}

	return -1
}

// Forest nests blossoms over n original vertices.
//
// parent[id] is the enclosing blossom (None for a top-level node) and pos[id]
// the index of id inside parent's cycle.
type Forest struct {
	n        int
	parent   []int
	pos      []int
	blossoms map[int]*Blossom
}

// NewForest returns an empty forest over original ids [0, n).
func NewForest(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		n:        n,
		parent:   make([]int, 2*n),
		pos:      make([]int, 2*n),
		blossoms: make(map[int]*Blossom),
	}
	for i := range f.parent {
		f.parent[i] = None
	}

	return f
}
