package edmonds

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/matching"
)

// Engine runs Edmonds' algorithm over one graph. It is not safe for
// concurrent use; distinct engines may run in parallel.
type Engine struct {
	g    *digraph.Graph
	n    int
	adj  [][]digraph.Edge // undirected admissible view over original ids
	opts Options

	stages        int
	augmentations int
}

// New prepares an engine for g.
// Complexity: O(V + E·deg) to build the undirected view.
func New(g *digraph.Graph, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{g: g, opts: o}
	if g != nil {
		e.n = g.Order()
		e.adj = undirectedView(g, o.Admissible)
	}

	return e
}

// MaxMatching returns a maximum-cardinality matching of g.
func MaxMatching(g *digraph.Graph, opts ...Option) (*matching.Matching, error) {
	return New(g, opts...).Run(nil)
}

// Stages returns the number of root searches run so far.
func (e *Engine) Stages() int { return e.stages }

// Augmentations returns the number of successful augmentations so far.
func (e *Engine) Augmentations() int { return e.augmentations }

// Run extends start (or an empty matching when start is nil) to a maximum
// matching. start is not modified; the result is a fresh Matching.
//
// On ErrStageLimit the partially grown matching is returned with the error.
func (e *Engine) Run(start *matching.Matching) (*matching.Matching, error) {
	if e.g == nil {
		return nil, ErrGraphNil
	}
	m, err := e.prepare(start)
	if err != nil {
		return nil, err
	}

	s := newSearch(e, m)
	stages := 0
	for u := 0; u < e.n; u++ {
		if !e.g.HasVertex(u) || m.IsMatched(u) {
			continue
		}
		if e.opts.StageLimit > 0 && stages >= e.opts.StageLimit {
			return m, fmt.Errorf("Run: after %d stages: %w", stages, ErrStageLimit)
		}
		stages++
		e.stages++
		if s.stage(u) {
			e.augmentations++
		}
	}
	e.opts.Logger.Debug().
		Int("stages", stages).
		Int("pairs", m.Count()).
		Int64("weight", m.Weight()).
		Msg("edmonds: run complete")

	return m, nil
}

// prepare validates and copies the starting matching.
func (e *Engine) prepare(start *matching.Matching) (*matching.Matching, error) {
	if start == nil {
		return matching.New(e.n), nil
	}
	if start.Len() != e.n {
		return nil, fmt.Errorf("Run: matching over %d ids, graph order %d: %w", start.Len(), e.n, ErrSizeMismatch)
	}
	for _, p := range start.Pairs() {
		if _, ok := e.arc(p.U, p.V); !ok {
			return nil, fmt.Errorf("Run: pair (%d,%d): %w", p.U, p.V, ErrForeignPair)
		}
	}

	return start.Clone(), nil
}

// arc returns the first admissible edge a–b of the undirected view.
func (e *Engine) arc(a, b int) (digraph.Edge, bool) {
	if a < 0 || a >= e.n {
		return digraph.Edge{}, false
	}
	for _, x := range e.adj[a] {
		if x.Head == b {
			return x, true
		}
	}

	return digraph.Edge{}, false
}

// undirectedView lists, for every live original vertex, its admissible
// neighbours in both arc directions. Loops and pseudo ids are dropped.
func undirectedView(g *digraph.Graph, admissible func(digraph.Edge) bool) [][]digraph.Edge {
	n := g.Order()
	adj := make([][]digraph.Edge, n)
	usable := func(a digraph.Edge) bool {
		if a.IsLoop() || !g.IsOriginal(a.Head) || !g.HasVertex(a.Head) {
			return false
		}

		return admissible == nil || admissible(a)
	}
	for v := 0; v < n; v++ {
		g.Range(v, func(a digraph.Edge) bool {
			if !usable(a) {
				return true
			}
			adj[v] = append(adj[v], a)
			if !hasUsable(g, a.Head, v, usable) {
				adj[a.Head] = append(adj[a.Head], a.Reverse())
			}

			return true
		})
	}

	return adj
}

// hasUsable reports whether some usable arc a→b exists.
func hasUsable(g *digraph.Graph, a, b int, usable func(digraph.Edge) bool) bool {
	found := false
	g.Range(a, func(x digraph.Edge) bool {
		if x.Head == b && usable(x) {
			found = true
			return false
		}

		return true
	})

	return found
}
