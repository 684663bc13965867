package matching

import "errors"

// Unmatched is the mate of a vertex with no partner.
const Unmatched = -1

var (
	// ErrOutOfRange indicates a vertex id outside [0, Len()).
	ErrOutOfRange = errors.New("matching: vertex id out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("matching: self-loop cannot be matched")

	// ErrAlreadyMatched indicates Add on an endpoint that already has a mate.
	ErrAlreadyMatched = errors.New("matching: vertex already matched")

	// ErrNotMatched indicates Remove on a vertex without a mate.
	ErrNotMatched = errors.New("matching: vertex not matched")

	// ErrMismatchedPair indicates Remove with an edge that differs from the
	// recorded pair.
	ErrMismatchedPair = errors.New("matching: edge is not the recorded pair")

	// ErrInvalidPath indicates Augment with a path that is empty, broken,
	// repeats a vertex, does not alternate, or starts/ends on a matched vertex
	// through an unmatched edge.
	ErrInvalidPath = errors.New("matching: invalid augmenting path")

	// ErrCorrupt indicates Validate found an inconsistent internal state.
	ErrCorrupt = errors.New("matching: corrupt state")
)

// Pair is one matched couple, U < V.
type Pair struct {
	U, V   int
	Weight int64
}

// Matching is a partial involution over [0, n).
//
// weight[v] holds the weight of the pair covering v (0 when v is exposed).
// Matching is not safe for concurrent mutation.
type Matching struct {
	mate   []int
	weight []int64
	count  int
	total  int64
}

// New returns an empty matching over n vertices.
func New(n int) *Matching {
	if n < 0 {
		n = 0
	}
	m := &Matching{
		mate:   make([]int, n),
		weight: make([]int64, n),
	}
	for i := range m.mate {
		m.mate[i] = Unmatched
	}

	return m
}
