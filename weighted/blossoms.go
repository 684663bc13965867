package weighted

import (
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/lvmatch/blossom"
	"github.com/katalvlaran/lvmatch/digraph"
)

// assignLabel labels the top-level node holding w with t, reached through
// endpoint p. A T label immediately makes the mate of the node's base S.
func (e *Engine) assignLabel(w int, t uint8, p int) {
	b := e.inBlossom[w]
	enforce(e.label[w] == labelFree && e.label[b] == labelFree, "assignLabel", w, "already labelled")
	e.label[w], e.label[b] = t, t
	e.labelEnd[w], e.labelEnd[b] = p, p
	e.bestEdge[w], e.bestEdge[b] = none, none

	switch t {
	case labelS:
		e.queue = append(e.queue, e.forest.Leaves(b)...)
	case labelT:
		base := e.forest.Base(b)
		mp := e.mate[base]
		enforce(mp != none, "assignLabel", base, "T base has no mate")
		e.assignLabel(e.endpoint(mp), labelS, mp^1)
	}
}

// scanBlossom walks up from v and w alternately. It returns the base of the
// new blossom when both walks meet, or none when they reach two different
// roots (an augmenting path).
func (e *Engine) scanBlossom(v, w int) int {
	var path []int
	base := none
	for v != none || w != none {
		b := e.inBlossom[v]
		if e.label[b]&breadcrumb != 0 {
			base = e.forest.Base(b)
			break
		}
		enforce(e.label[b] == labelS, "scanBlossom", b, "walk left the S nodes")
		path = append(path, b)
		e.label[b] = labelS | breadcrumb
		enforce(e.labelEnd[b] == e.mate[e.forest.Base(b)], "scanBlossom", b, "label does not follow the base mate")

		if e.labelEnd[b] == none {
			v = none // reached a root
		} else {
			v = e.endpoint(e.labelEnd[b])
			b = e.inBlossom[v]
			enforce(e.label[b] == labelT, "scanBlossom", b, "expected a T node")
			v = e.endpoint(e.labelEnd[b])
		}
		if w != none {
			v, w = w, v
		}
	}
	for _, b := range path {
		e.label[b] = labelS
	}

	return base
}

// addBlossom contracts the cycle closed by edge k through base into a new
// S blossom.
func (e *Engine) addBlossom(base, k int) {
	v, w := e.edges[k].u, e.edges[k].v
	bb, bv, bw := e.inBlossom[base], e.inBlossom[v], e.inBlossom[w]

	// 1) Children from the base down to v, then from w back up.
	var path, endps []int
	for bv != bb {
		path = append(path, bv)
		endps = append(endps, e.labelEnd[bv])
		enforce(e.labelEnd[bv] != none, "addBlossom", bv, "unlabelled child")
		bv = e.inBlossom[e.endpoint(e.labelEnd[bv])]
	}
	path = append(path, bb)
	slices.Reverse(path)
	slices.Reverse(endps)
	endps = append(endps, 2*k)
	for bw != bb {
		path = append(path, bw)
		endps = append(endps, e.labelEnd[bw]^1)
		enforce(e.labelEnd[bw] != none, "addBlossom", bw, "unlabelled child")
		bw = e.inBlossom[e.endpoint(e.labelEnd[bw])]
	}
	enforce(e.label[bb] == labelS, "addBlossom", bb, "base node is not S")

	// 2) Register.
	id, err := e.forest.Alloc()
	enforce(err == nil, "addBlossom", base, "%v", err)
	arcs := make([]digraph.Edge, len(endps))
	for i, p := range endps {
		arcs[i] = e.arcOf(p)
	}
	_, err = e.forest.Add(blossom.Blossom{ID: id, Cycle: path, Edges: arcs})
	enforce(err == nil, "addBlossom", id, "%v", err)

	e.label[id] = labelS
	e.labelEnd[id] = e.labelEnd[bb]
	e.dual[id] = 0
	for _, leaf := range e.forest.Leaves(id) {
		if e.label[e.inBlossom[leaf]] == labelT {
			// former T vertices are S now and must be scanned
			e.queue = append(e.queue, leaf)
		}
		e.inBlossom[leaf] = id
	}

	// 3) Least-slack edges to every other S node.
	bestTo := make([]int, 2*e.n)
	for i := range bestTo {
		bestTo[i] = none
	}
	for _, c := range path {
		var lists [][]int
		if e.bestList[c] == nil {
			for _, leaf := range e.forest.Leaves(c) {
				ks := make([]int, len(e.neighb[leaf]))
				for i, p := range e.neighb[leaf] {
					ks[i] = p / 2
				}
				lists = append(lists, ks)
			}
		} else {
			lists = [][]int{e.bestList[c]}
		}
		for _, list := range lists {
			for _, kk := range list {
				j := e.edges[kk].v
				if e.inBlossom[j] == id {
					j = e.edges[kk].u
				}
				bj := e.inBlossom[j]
				if bj != id && e.label[bj] == labelS &&
					(bestTo[bj] == none || e.slack(kk) < e.slack(bestTo[bj])) {
					bestTo[bj] = kk
				}
			}
		}
		e.bestList[c] = nil
		e.bestEdge[c] = none
	}
	best := make([]int, 0, len(path))
	for _, kk := range bestTo {
		if kk != none {
			best = append(best, kk)
		}
	}
	e.bestList[id] = best
	e.bestEdge[id] = none
	for _, kk := range best {
		if e.bestEdge[id] == none || e.slack(kk) < e.slack(e.bestEdge[id]) {
			e.bestEdge[id] = kk
		}
	}

	e.opts.Logger.Trace().Int("blossom", id).Int("base", base).Ints("children", path).Msg("weighted: contracted")
}

// expandBlossom dissolves the top-level blossom b. At the end of a stage
// (endStage) zero-dual children are dissolved recursively; during a stage a T
// blossom relabels the children on the even path from its entry child to the
// base so the alternating tree stays consistent.
func (e *Engine) expandBlossom(b int, endStage bool) {
	rec, ok := e.forest.Get(b)
	enforce(ok, "expandBlossom", b, "not a blossom")
	endps := make([]int, len(rec.Edges))
	for i, a := range rec.Edges {
		endps[i] = e.endOf(a)
	}
	children, err := e.forest.Expand(b)
	enforce(err == nil, "expandBlossom", b, "%v", err)

	for _, s := range children {
		switch {
		case s < e.n:
			e.inBlossom[s] = s
		case endStage && e.dual[s] == 0:
			e.expandBlossom(s, endStage)
		default:
			for _, leaf := range e.forest.Leaves(s) {
				e.inBlossom[leaf] = s
			}
		}
	}

	if !endStage && e.label[b] == labelT {
		e.relabelExpanded(b, children, endps)
	}

	e.label[b] = labelFree
	e.labelEnd[b] = none
	e.bestList[b] = nil
	e.bestEdge[b] = none

	e.opts.Logger.Trace().Int("blossom", b).Bool("endStage", endStage).Msg("weighted: expanded")
}

// relabelExpanded rebuilds T/S labels inside the expanded T blossom b.
func (e *Engine) relabelExpanded(b int, children, endps []int) {
	L := len(children)
	entry := e.inBlossom[e.endpoint(e.labelEnd[b]^1)]
	j := slices.Index(children, entry)
	enforce(j >= 0, "expandBlossom", b, "entry child %d not found", entry)

	// Walk the even-length side from the entry child to the base.
	jstep, trick := -1, 1
	if j&1 != 0 {
		j -= L
		jstep, trick = 1, 0
	}
	p := e.labelEnd[b]
	for j != 0 {
		// relabel the T child, then its S partner
		e.label[e.endpoint(p^1)] = labelFree
		e.label[e.endpoint(endps[wrap(j-trick, L)]^trick^1)] = labelFree
		e.assignLabel(e.endpoint(p^1), labelT, p)
		e.allowed[endps[wrap(j-trick, L)]/2] = true
		j += jstep
		p = endps[wrap(j-trick, L)] ^ trick
		e.allowed[p/2] = true
		j += jstep
	}

	// The base child becomes T without relabelling its mate.
	bv := children[wrap(j, L)]
	x := e.endpoint(p ^ 1)
	e.label[x], e.label[bv] = labelT, labelT
	e.labelEnd[x], e.labelEnd[bv] = p, p
	e.bestEdge[bv] = none

	// Children on the odd side keep only labels they got through edges from
	// outside the blossom.
	j += jstep
	for children[wrap(j, L)] != entry {
		bv = children[wrap(j, L)]
		if e.label[bv] == labelS {
			j += jstep
			continue
		}
		reached := none
		for _, leaf := range e.forest.Leaves(bv) {
			if e.label[leaf] != labelFree {
				reached = leaf
				break
			}
		}
		if reached != none {
			enforce(e.label[reached] == labelT && e.inBlossom[reached] == bv,
				"expandBlossom", reached, "stray label inside child %d", bv)
			e.label[reached] = labelFree
			e.label[e.endpoint(e.mate[e.forest.Base(bv)])] = labelFree
			e.assignLabel(reached, labelT, e.labelEnd[reached])
		}
		j += jstep
	}
}

// augmentBlossom swaps matched and unmatched edges on the even path from v
// to the base of b, then rotates b so the child holding v becomes its base.
func (e *Engine) augmentBlossom(b, v int) {
	t, err := e.forest.ChildOf(b, v)
	enforce(err == nil, "augmentBlossom", b, "%v", err)
	if t >= e.n {
		e.augmentBlossom(t, v)
	}

	rec, _ := e.forest.Get(b)
	L := len(rec.Cycle)
	i := e.forest.Index(t)
	j := i
	jstep, trick := -1, 1
	if i&1 != 0 {
		j -= L
		jstep, trick = 1, 0
	}
	for j != 0 {
		j += jstep
		t = rec.Cycle[wrap(j, L)]
		p := e.endOf(rec.Edges[wrap(j-trick, L)]) ^ trick
		if t >= e.n {
			e.augmentBlossom(t, e.endpoint(p))
		}
		j += jstep
		t = rec.Cycle[wrap(j, L)]
		if t >= e.n {
			e.augmentBlossom(t, e.endpoint(p^1))
		}
		e.mate[e.endpoint(p)] = p ^ 1
		e.mate[e.endpoint(p^1)] = p
	}

	err = e.forest.Rotate(b, i)
	enforce(err == nil, "augmentBlossom", b, "%v", err)
	enforce(e.forest.Base(b) == v, "augmentBlossom", b, "base %d after rotation, want %d", e.forest.Base(b), v)
}

// augmentMatching flips the augmenting path through edge k, which joins two
// S nodes of different trees.
func (e *Engine) augmentMatching(k int) {
	ed := e.edges[k]
	for _, start := range [2][2]int{{ed.u, 2*k + 1}, {ed.v, 2 * k}} {
		s, p := start[0], start[1]
		for {
			bs := e.inBlossom[s]
			enforce(e.label[bs] == labelS, "augmentMatching", bs, "path node is not S")
			enforce(e.labelEnd[bs] == e.mate[e.forest.Base(bs)], "augmentMatching", bs, "label does not follow the base mate")
			if bs >= e.n {
				e.augmentBlossom(bs, s)
			}
			e.mate[s] = p
			if e.labelEnd[bs] == none {
				break // reached the root
			}
			t := e.endpoint(e.labelEnd[bs])
			bt := e.inBlossom[t]
			enforce(e.label[bt] == labelT, "augmentMatching", bt, "expected a T node")
			s = e.endpoint(e.labelEnd[bt])
			j := e.endpoint(e.labelEnd[bt] ^ 1)
			enforce(e.forest.Base(bt) == t, "augmentMatching", bt, "T node not entered at its base")
			if bt >= e.n {
				e.augmentBlossom(bt, j)
			}
			e.mate[j] = e.labelEnd[bt]
			p = e.labelEnd[bt] ^ 1
		}
	}

	e.opts.Logger.Trace().Int("u", ed.u).Int("v", ed.v).Msg("weighted: augmented")
}
