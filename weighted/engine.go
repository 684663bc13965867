package weighted

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/blossom"
	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/edmonds"
	"github.com/katalvlaran/lvmatch/matching"
)

// wedge is one undirected edge of the working graph.
type wedge struct {
	u, v int
	w    int64        // objective weight
	orig digraph.Edge // arc taken from the graph, original weight
}

// Engine runs the primal-dual method over one graph. It is not safe for
// concurrent use.
//
// Edge k has endpoints 2k (u side) and 2k+1 (v side); endpoint p names a
// vertex, and p^1 the opposite end of the same edge.
type Engine struct {
	g    *digraph.Graph
	n    int
	opts Options

	edges  []wedge
	index  map[[2]int]int
	neighb [][]int // remote endpoints of the edges at each vertex
	offset int64   // Duals.Offset when minimizing
	maxW   int64

	mate      []int // remote endpoint of the matched edge, or none
	label     []uint8
	labelEnd  []int // endpoint the label came through, by node
	inBlossom []int // top-level node of each vertex
	forest    *blossom.Forest
	bestEdge  []int
	bestList  [][]int // least-slack edges to other S blossoms; nil = not computed
	dual      []int64 // 2·alpha for vertices, gamma for blossoms
	allowed   []bool
	queue     []int

	stages int
}

// New prepares an engine for g.
// Complexity: O(V + E).
func New(g *digraph.Graph, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{g: g, opts: o}
	if g != nil {
		e.load()
	}

	return e
}

// MaxWeight returns a matching of maximum total weight.
func MaxWeight(g *digraph.Graph, opts ...Option) (*matching.Matching, error) {
	return New(g, opts...).Run()
}

// MaxWeightMaxCardinality returns the heaviest maximum-cardinality matching.
func MaxWeightMaxCardinality(g *digraph.Graph, opts ...Option) (*matching.Matching, error) {
	return New(g, append(opts, WithMaxCardinality())...).Run()
}

// MinWeight returns the lightest maximum-cardinality matching.
func MinWeight(g *digraph.Graph, opts ...Option) (*matching.Matching, error) {
	return New(g, append(opts, WithMinimize())...).Run()
}

// MinWeightPerfect returns the lightest perfect matching of the live
// vertices, or ErrNoPerfectMatching.
func MinWeightPerfect(g *digraph.Graph, opts ...Option) (*matching.Matching, error) {
	m, err := MinWeight(g, opts...)
	if err != nil {
		return nil, err
	}
	if live := g.Len(); 2*m.Count() != live {
		return nil, fmt.Errorf("MinWeightPerfect: %d of %d vertices matched: %w", 2*m.Count(), live, ErrNoPerfectMatching)
	}

	return m, nil
}

// Stages returns the number of stages run so far.
func (e *Engine) Stages() int { return e.stages }

// load collapses the arcs of g into the undirected working graph.
func (e *Engine) load() {
	g := e.g
	e.n = g.Order()
	arcs := g.Edges()

	if e.opts.Minimize {
		for _, a := range arcs {
			if a.Weight > e.offset {
				e.offset = a.Weight
			}
		}
	}
	e.index = make(map[[2]int]int)
	for _, a := range arcs {
		if a.IsLoop() || !g.IsOriginal(a.Tail) || !g.IsOriginal(a.Head) {
			continue
		}
		w := a.Weight
		if e.opts.Minimize {
			w = e.offset - w
		}
		key := a.Key()
		if k, ok := e.index[key]; ok {
			if w > e.edges[k].w {
				e.edges[k].w, e.edges[k].orig = w, a
			}
			continue
		}
		e.index[key] = len(e.edges)
		e.edges = append(e.edges, wedge{u: key[0], v: key[1], w: w, orig: a})
	}

	e.neighb = make([][]int, e.n)
	for k, ed := range e.edges {
		e.neighb[ed.u] = append(e.neighb[ed.u], 2*k+1)
		e.neighb[ed.v] = append(e.neighb[ed.v], 2*k)
		if ed.w > e.maxW {
			e.maxW = ed.w
		}
	}
}

// Run computes the optimal matching. On ErrStageLimit the matching reached so
// far is returned with the error.
func (e *Engine) Run() (*matching.Matching, error) {
	if e.g == nil {
		return nil, ErrGraphNil
	}
	e.init()
	if e.opts.WarmStart && len(e.edges) > 0 {
		if err := e.warmStart(); err != nil {
			return nil, fmt.Errorf("Run: warm start: %w", err)
		}
	}

	err := e.solve()
	m := e.result()
	if err != nil {
		return m, err
	}
	e.opts.Logger.Debug().
		Int("stages", e.stages).
		Int("pairs", m.Count()).
		Int64("weight", m.Weight()).
		Bool("maxCardinality", e.opts.MaxCardinality).
		Bool("minimize", e.opts.Minimize).
		Msg("weighted: run complete")

	if e.opts.Verify {
		if err = CheckOptimality(e.g, m, e.Duals()); err != nil {
			return m, fmt.Errorf("Run: %w", err)
		}
	}

	return m, nil
}

// init allocates the per-run state: every vertex dual at maxW, no blossom.
func (e *Engine) init() {
	n := e.n
	e.mate = make([]int, n)
	e.inBlossom = make([]int, n)
	for v := 0; v < n; v++ {
		e.mate[v] = none
		e.inBlossom[v] = v
	}
	e.label = make([]uint8, 2*n)
	e.labelEnd = make([]int, 2*n)
	e.bestEdge = make([]int, 2*n)
	e.bestList = make([][]int, 2*n)
	e.dual = make([]int64, 2*n)
	for id := range e.labelEnd {
		e.labelEnd[id] = none
		e.bestEdge[id] = none
		if id < n {
			e.dual[id] = e.maxW
		}
	}
	e.forest = blossom.NewForest(n)
	e.allowed = make([]bool, len(e.edges))
	e.queue = e.queue[:0]
	e.stages = 0
}

// warmStart matches the initial equality subgraph with the cardinality
// engine. Its pairs are tight under the initial duals, so the primal-dual
// invariants hold unchanged.
func (e *Engine) warmStart() error {
	h := digraph.New(e.n)
	for _, ed := range e.edges {
		if err := h.AddUndirected(ed.u, ed.v, ed.w); err != nil {
			return err
		}
	}
	top := e.maxW
	m, err := edmonds.MaxMatching(h,
		edmonds.WithLogger(e.opts.Logger),
		edmonds.WithAdmissible(func(a digraph.Edge) bool { return a.Weight == top }),
	)
	if err != nil {
		return err
	}
	for _, p := range m.Pairs() {
		k := e.index[[2]int{p.U, p.V}]
		if e.edges[k].u == p.U {
			e.mate[p.U], e.mate[p.V] = 2*k+1, 2*k
		} else {
			e.mate[p.U], e.mate[p.V] = 2*k, 2*k+1
		}
	}
	e.opts.Logger.Debug().Int("pairs", m.Count()).Int64("weight", top).Msg("weighted: warm start")

	return nil
}

// result converts mate into a Matching carrying original arc weights.
func (e *Engine) result() *matching.Matching {
	m := matching.New(e.n)
	for v, p := range e.mate {
		if p == none || e.endpoint(p) < v {
			continue
		}
		err := m.Add(e.edges[p/2].orig)
		enforce(err == nil, "result", v, "%v", err)
	}

	return m
}

// endpoint returns the vertex at endpoint p.
func (e *Engine) endpoint(p int) int {
	if p&1 == 0 {
		return e.edges[p/2].u
	}

	return e.edges[p/2].v
}

// arcOf orients edge p/2 from endpoint(p) to endpoint(p^1).
func (e *Engine) arcOf(p int) digraph.Edge {
	return digraph.Edge{Tail: e.endpoint(p), Head: e.endpoint(p ^ 1), Weight: e.edges[p/2].orig.Weight}
}

// endOf is the inverse of arcOf.
func (e *Engine) endOf(a digraph.Edge) int {
	k, ok := e.index[a.Key()]
	enforce(ok, "endOf", a.Tail, "no working edge to %d", a.Head)
	if e.edges[k].u == a.Tail {
		return 2 * k
	}

	return 2*k + 1
}

// slack returns 2·(alpha_u + alpha_v − w) for edge k; blossom duals are not
// included, so it is only meaningful between different top-level nodes.
func (e *Engine) slack(k int) int64 {
	ed := e.edges[k]
	return e.dual[ed.u] + e.dual[ed.v] - 2*ed.w
}

// wrap reduces a possibly negative cycle index modulo l.
func wrap(j, l int) int {
	return ((j % l) + l) % l
}
