package weighted

import "fmt"

// Dual step kinds, in the order they are considered.
const (
	stepUnset       = -1
	stepVertexDual  = 1 // an S vertex dual reaches zero: optimum reached
	stepFreeEdge    = 2 // an edge from S to a free vertex becomes tight
	stepOuterEdge   = 3 // an edge between two S blossoms becomes tight
	stepBlossomDual = 4 // a T blossom dual reaches zero: expand it
)

// solve runs stages until one ends without augmentation.
func (e *Engine) solve() error {
	for t := 0; t < e.n; t++ {
		if e.opts.StageLimit > 0 && e.stages >= e.opts.StageLimit {
			return fmt.Errorf("Run: after %d stages: %w", e.stages, ErrStageLimit)
		}
		e.stages++
		augmented := e.stage()
		if e.opts.OnStage != nil {
			e.opts.OnStage(e.stages, e.Classify())
		}
		e.opts.Logger.Debug().
			Int("stage", e.stages).
			Bool("augmented", augmented).
			Int("blossoms", e.forest.Len()).
			Msg("weighted: stage done")
		if !augmented {
			break
		}

		// S blossoms whose dual dropped to zero do not survive the stage.
		for b := e.n; b < 2*e.n; b++ {
			if e.forest.IsBlossom(b) && e.forest.Parent(b) == none &&
				e.label[b] == labelS && e.dual[b] == 0 {
				e.expandBlossom(b, true)
			}
		}
	}

	return nil
}

// resetStage clears the labels and the per-stage edge bookkeeping.
func (e *Engine) resetStage() {
	for id := range e.label {
		e.label[id] = labelFree
		e.bestEdge[id] = none
		if id >= e.n {
			e.bestList[id] = nil
		}
	}
	for k := range e.allowed {
		e.allowed[k] = false
	}
	e.queue = e.queue[:0]
}

// stage grows the alternating forest from every exposed vertex, adjusting
// duals whenever it gets stuck. It reports whether the matching grew.
func (e *Engine) stage() bool {
	e.resetStage()
	for v := 0; v < e.n; v++ {
		if e.mate[v] == none && e.label[e.inBlossom[v]] == labelFree {
			e.assignLabel(v, labelS, none)
		}
	}

	for {
		if e.scanQueue() {
			return true
		}

		kind, delta, edge, b := e.nextStep()
		e.applyStep(delta)

		switch kind {
		case stepVertexDual:
			return false
		case stepFreeEdge:
			e.allowed[edge] = true
			i := e.edges[edge].u
			if e.label[e.inBlossom[i]] == labelFree {
				i = e.edges[edge].v
			}
			enforce(e.label[e.inBlossom[i]] == labelS, "stage", i, "tight edge has no S end")
			e.queue = append(e.queue, i)
		case stepOuterEdge:
			e.allowed[edge] = true
			i := e.edges[edge].u
			enforce(e.label[e.inBlossom[i]] == labelS, "stage", i, "tight edge has no S end")
			e.queue = append(e.queue, i)
		case stepBlossomDual:
			e.expandBlossom(b, false)
		}
	}
}

// scanQueue drains the queue over tight edges. It returns true once an
// augmentation happened.
func (e *Engine) scanQueue() bool {
	for len(e.queue) > 0 {
		v := e.queue[len(e.queue)-1]
		e.queue = e.queue[:len(e.queue)-1]
		enforce(e.label[e.inBlossom[v]] == labelS, "scan", v, "queued vertex is not S")

		for _, p := range e.neighb[v] {
			k := p / 2
			w := e.endpoint(p)
			if e.inBlossom[v] == e.inBlossom[w] {
				continue
			}
			var kslack int64
			if !e.allowed[k] {
				kslack = e.slack(k)
				if kslack <= 0 {
					e.allowed[k] = true
				}
			}

			switch {
			case e.allowed[k]:
				switch {
				case e.label[e.inBlossom[w]] == labelFree:
					// w becomes T, its mate S
					e.assignLabel(w, labelT, p^1)
				case e.label[e.inBlossom[w]] == labelS:
					if base := e.scanBlossom(v, w); base != none {
						e.addBlossom(base, k)
					} else {
						e.augmentMatching(k)
						return true
					}
				case e.label[w] == labelFree:
					// w sits inside a T blossom but carries no label yet
					e.label[w] = labelT
					e.labelEnd[w] = p ^ 1
				}
			case e.label[e.inBlossom[w]] == labelS:
				b := e.inBlossom[v]
				if e.bestEdge[b] == none || kslack < e.slack(e.bestEdge[b]) {
					e.bestEdge[b] = k
				}
			case e.label[w] == labelFree:
				if e.bestEdge[w] == none || kslack < e.slack(e.bestEdge[w]) {
					e.bestEdge[w] = k
				}
			}
		}
	}

	return false
}

// nextStep picks the smallest admissible dual step.
func (e *Engine) nextStep() (kind int, delta int64, edge, b int) {
	kind, edge, b = stepUnset, none, none
	if !e.opts.MaxCardinality {
		kind, delta = stepVertexDual, e.minVertexDual()
	}
	for v := 0; v < e.n; v++ {
		if e.label[e.inBlossom[v]] != labelFree || e.bestEdge[v] == none {
			continue
		}
		if d := e.slack(e.bestEdge[v]); kind == stepUnset || d < delta {
			kind, delta, edge = stepFreeEdge, d, e.bestEdge[v]
		}
	}
	for id := 0; id < 2*e.n; id++ {
		if e.forest.Parent(id) != none || e.label[id] != labelS || e.bestEdge[id] == none {
			continue
		}
		ks := e.slack(e.bestEdge[id])
		enforce(ks%2 == 0, "nextStep", id, "odd slack %d between S blossoms", ks)
		if d := ks / 2; kind == stepUnset || d < delta {
			kind, delta, edge = stepOuterEdge, d, e.bestEdge[id]
		}
	}
	for id := e.n; id < 2*e.n; id++ {
		if !e.forest.IsBlossom(id) || e.forest.Parent(id) != none || e.label[id] != labelT {
			continue
		}
		if kind == stepUnset || e.dual[id] < delta {
			kind, delta, b = stepBlossomDual, e.dual[id], id
		}
	}
	if kind == stepUnset {
		// No further progress possible with max cardinality: settle the duals.
		enforce(e.opts.MaxCardinality, "nextStep", none, "no dual step without max cardinality")
		kind, delta = stepVertexDual, max(0, e.minVertexDual())
	}

	return kind, delta, edge, b
}

// applyStep moves every labelled dual by delta.
func (e *Engine) applyStep(delta int64) {
	for v := 0; v < e.n; v++ {
		switch e.label[e.inBlossom[v]] {
		case labelS:
			e.dual[v] -= delta
		case labelT:
			e.dual[v] += delta
		}
	}
	for id := e.n; id < 2*e.n; id++ {
		if !e.forest.IsBlossom(id) || e.forest.Parent(id) != none {
			continue
		}
		switch e.label[id] {
		case labelS:
			e.dual[id] += delta
		case labelT:
			e.dual[id] -= delta
		}
	}
}

func (e *Engine) minVertexDual() int64 {
	if e.n == 0 {
		return 0
	}
	m := e.dual[0]
	for _, d := range e.dual[1:e.n] {
		m = min(m, d)
	}

	return m
}
