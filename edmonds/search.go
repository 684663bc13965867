package edmonds

import (
	"github.com/katalvlaran/lvmatch/blossom"
	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/matching"
)

const none = blossom.None

// search is the scratch state of one stage. Node ids cover original
// vertices [0, n) and blossoms [n, 2n).
type search struct {
	e      *Engine
	m      *matching.Matching
	n      int
	root   int
	multi  bool // every exposed vertex is a root (Decompose)
	forest *blossom.Forest

	owner []int          // outermost node of each original vertex
	outer []bool         // S label, by node
	pred  []int          // S node the label came from, by node
	via   []digraph.Edge // arc (a in pred, t) with mate(t) = base of node
	tree  []int          // root of the alternating tree, by node
	seen  []bool         // T mark, by original vertex

	exposed    []digraph.Edge // arc to an exposed vertex other than root
	hasExposed []bool

	arcs  [][]digraph.Edge // auxiliary set A, by node
	queue []int

	mark     []int // LCA stamps, by node
	stamp    int
	crossing digraph.Edge // multi mode: arc joining two trees
}

func newSearch(e *Engine, m *matching.Matching) *search {
	n := e.n
	return &search{
		e:          e,
		m:          m,
		n:          n,
		forest:     blossom.NewForest(n),
		owner:      make([]int, n),
		outer:      make([]bool, 2*n),
		pred:       make([]int, 2*n),
		via:        make([]digraph.Edge, 2*n),
		tree:       make([]int, 2*n),
		seen:       make([]bool, n),
		exposed:    make([]digraph.Edge, n),
		hasExposed: make([]bool, n),
		arcs:       make([][]digraph.Edge, 2*n),
		mark:       make([]int, 2*n),
	}
}

// reset returns the context to its pristine per-stage state.
func (s *search) reset() {
	s.forest.Reset()
	for v := 0; v < s.n; v++ {
		s.owner[v] = v
		s.seen[v] = false
		s.hasExposed[v] = false
	}
	for id := range s.outer {
		s.outer[id] = false
		s.pred[id] = none
		s.tree[id] = none
		if id < s.n {
			s.arcs[id] = s.arcs[id][:0]
		} else {
			s.arcs[id] = nil
		}
	}
	s.queue = s.queue[:0]
}

// top returns the outermost node containing id.
func (s *search) top(id int) int {
	if id < s.n {
		return s.owner[id]
	}

	return s.forest.Top(id)
}

// stage searches for an augmenting path from root u and applies it.
// It reports whether the matching grew.
func (s *search) stage(u int) bool {
	s.reset()
	s.root = u
	log := s.e.opts.Logger

	// 1) Auxiliary arcs and exposed witnesses from the current matching.
	exits := false
	for v := 0; v < s.n; v++ {
		for _, a := range s.e.adj[v] {
			mw := s.m.Mate(a.Head)
			switch {
			case mw == matching.Unmatched && a.Head != u:
				if !s.hasExposed[v] {
					s.exposed[v], s.hasExposed[v] = a, true
					exits = true
				}
			case mw != v:
				s.arcs[v] = append(s.arcs[v], a)
			}
		}
	}
	if !exits {
		log.Trace().Int("root", u).Msg("edmonds: no exposed neighbour, stage skipped")
		return false
	}

	// 2) Root becomes S.
	s.label(u, none, digraph.Edge{}, u)
	if s.hasExposed[u] {
		s.augment(u)
		return true
	}

	// 3) Alternating BFS.
	found := s.grow()
	log.Trace().Int("root", u).Bool("augmented", found).Int("blossoms", s.forest.Len()).Msg("edmonds: stage done")

	return found
}

// label marks node x as S with predecessor p reached through arc via.
func (s *search) label(x, p int, via digraph.Edge, root int) {
	s.outer[x] = true
	s.pred[x] = p
	s.via[x] = via
	s.tree[x] = root
	s.queue = append(s.queue, x)
}

// grow drains the queue. It returns true once an augmentation happened (or,
// in multi mode, once two trees touch).
func (s *search) grow() bool {
	for len(s.queue) > 0 {
		x := s.queue[0]
		s.queue = s.queue[1:]
		if s.top(x) != x {
			continue // absorbed by a later blossom
		}
		if s.scan(x) {
			return true
		}
	}

	return false
}

// scan walks A from the S node x.
func (s *search) scan(x int) bool {
	for _, a := range s.arcs[x] {
		w := a.Head
		y := s.owner[w]
		if y == x {
			continue
		}
		if s.outer[y] {
			if s.multi && s.tree[y] != s.tree[x] {
				s.crossing = a
				return true
			}
			// x has been absorbed; its remaining arcs now belong to the blossom
			return s.contract(x, y, a)
		}
		if s.seen[w] {
			continue
		}

		z := s.m.Mate(w)
		enforce(z != matching.Unmatched, "scan", w, "inner candidate has no mate")
		enforce(!s.outer[s.owner[z]], "scan", z, "mate of an unseen vertex is already outer")
		s.seen[w] = true
		s.label(z, x, a, s.tree[x])
		if !s.multi && s.hasExposed[z] {
			s.augment(z)
			return true
		}
	}

	return false
}

// contract closes the odd cycle formed by arc a between S nodes x and y.
func (s *search) contract(x, y int, a digraph.Edge) bool {
	// 1) Base: first common ancestor on the label chains.
	s.stamp++
	for v := x; ; v = s.top(s.pred[v]) {
		s.mark[v] = s.stamp
		if s.pred[v] == none {
			break
		}
	}
	b := y
	for s.mark[b] != s.stamp {
		enforce(s.pred[b] != none, "contract", b, "label chains of %d and %d never meet", x, y)
		b = s.top(s.pred[b])
	}

	// 2) Cycle: b, then down the x branch, across a, and up the y branch.
	var xs, ys []int
	for v := x; v != b; v = s.top(s.pred[v]) {
		xs = append(xs, v)
	}
	for v := y; v != b; v = s.top(s.pred[v]) {
		ys = append(ys, v)
	}
	cycle := make([]int, 1, 1+2*(len(xs)+len(ys)))
	edges := make([]digraph.Edge, 0, cap(cycle))
	inner := make([]int, 0, len(xs)+len(ys))
	cycle[0] = b
	for i := len(xs) - 1; i >= 0; i-- {
		v := xs[i]
		t := s.via[v].Head
		edges = append(edges, s.via[v], s.matchedEdge(t))
		cycle = append(cycle, t, v)
		inner = append(inner, t)
	}
	edges = append(edges, a)
	for _, v := range ys {
		t := s.via[v].Head
		edges = append(edges, s.matchedEdge(t).Reverse(), s.via[v].Reverse())
		cycle = append(cycle, v, t)
		inner = append(inner, t)
	}

	// 3) Register the blossom and move every reference onto it.
	id, err := s.forest.Alloc()
	enforce(err == nil, "contract", b, "%v", err)
	_, err = s.forest.Add(blossom.Blossom{ID: id, Cycle: cycle, Edges: edges})
	enforce(err == nil, "contract", id, "%v", err)
	for _, leaf := range s.forest.Leaves(id) {
		s.owner[leaf] = id
	}
	var merged []digraph.Edge
	for _, c := range cycle {
		for _, arc := range s.arcs[c] {
			if s.owner[arc.Head] != id {
				merged = append(merged, arc)
			}
		}
		s.arcs[c] = nil
	}
	s.arcs[id] = merged
	s.label(id, s.pred[b], s.via[b], s.tree[b])

	s.e.opts.Logger.Trace().
		Int("blossom", id).
		Int("base", s.forest.Base(id)).
		Ints("cycle", cycle).
		Msg("edmonds: contracted")

	// 4) Former inner vertices are outer now.
	if !s.multi {
		for _, t := range inner {
			if s.hasExposed[t] {
				s.augment(t)
				return true
			}
		}
	}

	return false
}

// matchedEdge returns the matched arc t→mate(t).
func (s *search) matchedEdge(t int) digraph.Edge {
	mt := s.m.Mate(t)
	enforce(mt != matching.Unmatched, "matchedEdge", t, "inner vertex is exposed")

	return digraph.Edge{Tail: t, Head: mt, Weight: s.m.PairWeight(t)}
}

// augment expands the path exposed[x] ← x ← … ← root through every blossom
// it crosses and applies it to the matching.
func (s *search) augment(x int) {
	verts := []int{s.exposed[x].Head}
	for cur := x; ; {
		node := s.owner[cur]
		seg, err := s.forest.PathToBase(node, cur)
		enforce(err == nil, "augment", node, "%v", err)
		verts = append(verts, seg...)
		if s.pred[node] == none {
			enforce(s.forest.Base(node) == s.root, "augment", node, "tree top is not rooted at %d", s.root)
			break
		}
		t := s.via[node].Head
		enforce(s.m.Mate(s.forest.Base(node)) == t, "augment", node, "base is not matched to %d", t)
		verts = append(verts, t)
		cur = s.via[node].Tail
	}

	path := make([]digraph.Edge, len(verts)-1)
	for i := range path {
		e, ok := s.e.arc(verts[i], verts[i+1])
		enforce(ok, "augment", verts[i], "no edge to %d", verts[i+1])
		path[i] = e
	}
	err := s.m.Augment(path)
	enforce(err == nil, "augment", x, "%v", err)

	s.e.opts.Logger.Debug().
		Int("root", s.root).
		Int("end", verts[0]).
		Int("length", len(path)).
		Int("pairs", s.m.Count()).
		Msg("edmonds: augmented")
}
