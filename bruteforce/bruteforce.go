// Package bruteforce finds optimal matchings by exhaustive enumeration.
//
// It exists as an oracle for the blossom engines: every matching of a small
// graph is visited exactly once (lowest free vertex is either left exposed or
// paired with a higher neighbour), and the best one under the requested
// objective is kept. Parallel arcs collapse to the one the objective prefers:
// the lightest for MinWeightMaxCardinality, the heaviest otherwise. Arc
// direction is ignored.
//
// Complexity: proportional to the number of matchings, which grows faster
// than 2^(n/2); graphs with more than MaxVertices live vertices are rejected
// with ErrTooLarge.
package bruteforce

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/matching"
)

// MaxVertices bounds the number of live original vertices accepted.
const MaxVertices = 16

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bruteforce: graph is nil")

	// ErrTooLarge is returned when the graph has more than MaxVertices
	// live vertices.
	ErrTooLarge = errors.New("bruteforce: graph too large")
)

// score summarises one candidate matching.
type score struct {
	pairs  int
	weight int64
}

// MaxCardinality returns a matching with the largest number of pairs.
func MaxCardinality(g *digraph.Graph) (*matching.Matching, error) {
	return best(g, heaviest, func(a, b score) bool { return a.pairs > b.pairs })
}

// MaxWeight returns a matching with the largest total weight.
func MaxWeight(g *digraph.Graph) (*matching.Matching, error) {
	return best(g, heaviest, func(a, b score) bool { return a.weight > b.weight })
}

// MaxWeightMaxCardinality returns the heaviest among the maximum-cardinality
// matchings.
func MaxWeightMaxCardinality(g *digraph.Graph) (*matching.Matching, error) {
	return best(g, heaviest, func(a, b score) bool {
		return a.pairs > b.pairs || (a.pairs == b.pairs && a.weight > b.weight)
	})
}

// MinWeightMaxCardinality returns the lightest among the maximum-cardinality
// matchings.
func MinWeightMaxCardinality(g *digraph.Graph) (*matching.Matching, error) {
	return best(g, lightest, func(a, b score) bool {
		return a.pairs > b.pairs || (a.pairs == b.pairs && a.weight < b.weight)
	})
}

// AllMaxWeight returns every matching whose weight equals the maximum, in
// enumeration order.
func AllMaxWeight(g *digraph.Graph) ([]*matching.Matching, error) {
	var (
		out  []*matching.Matching
		top  int64
		seen bool
	)
	err := enumerate(g, heaviest, func(m *matching.Matching) {
		switch {
		case !seen || m.Weight() > top:
			out = append(out[:0], m.Clone())
			top, seen = m.Weight(), true
		case m.Weight() == top:
			out = append(out, m.Clone())
		}
	})
	if err != nil {
		return nil, fmt.Errorf("AllMaxWeight: %w", err)
	}

	return out, nil
}

// best keeps the first matching not beaten under better.
func best(g *digraph.Graph, keep arcPick, better func(a, b score) bool) (*matching.Matching, error) {
	var (
		winner *matching.Matching
		ws     score
	)
	err := enumerate(g, keep, func(m *matching.Matching) {
		s := score{pairs: m.Count(), weight: m.Weight()}
		if winner == nil || better(s, ws) {
			winner, ws = m.Clone(), s
		}
	})
	if err != nil {
		return nil, err
	}

	return winner, nil
}

// arcPick selects which of several parallel arcs stands for their pair.
type arcPick bool

const (
	heaviest arcPick = false
	lightest arcPick = true
)

// prefers reports whether an arc of weight a replaces one of weight b.
func (p arcPick) prefers(a, b int64) bool {
	if p == lightest {
		return a < b
	}

	return a > b
}

// enumerate calls visit once per matching of g. The matching handed to
// visit is reused and must be cloned to be kept.
func enumerate(g *digraph.Graph, keep arcPick, visit func(m *matching.Matching)) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.Order()
	live := 0
	for v := 0; v < n; v++ {
		if g.HasVertex(v) {
			live++
		}
	}
	if live > MaxVertices {
		return fmt.Errorf("%d vertices > %d: %w", live, MaxVertices, ErrTooLarge)
	}

	// preferred arc per unordered pair, listed at the lower endpoint
	nbr := make([][]digraph.Edge, n)
	index := make(map[[2]int]int)
	for _, e := range g.Edges() {
		if e.IsLoop() || !g.IsOriginal(e.Tail) || !g.IsOriginal(e.Head) {
			continue
		}
		k := e.Key()
		ke := digraph.Edge{Tail: k[0], Head: k[1], Weight: e.Weight}
		if i, ok := index[k]; ok {
			if keep.prefers(e.Weight, nbr[k[0]][i].Weight) {
				nbr[k[0]][i] = ke
			}
			continue
		}
		index[k] = len(nbr[k[0]])
		nbr[k[0]] = append(nbr[k[0]], ke)
	}

	m := matching.New(n)
	used := make([]bool, n)
	var rec func(v int)
	rec = func(v int) {
		for v < n && used[v] {
			v++
		}
		if v == n {
			visit(m)
			return
		}
		used[v] = true
		rec(v + 1)
		for _, e := range nbr[v] {
			if used[e.Head] {
				continue
			}
			used[e.Head] = true
			must(m.Add(e))
			rec(v + 1)
			must(m.RemoveVertex(v))
			used[e.Head] = false
		}
		used[v] = false
	}
	rec(0)

	return nil
}

// must panics on err. used[] keeps both ends of every added pair free, so the
// matching never rejects an Add or RemoveVertex here.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("bruteforce: %v", err))
	}
}
