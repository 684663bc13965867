// File: parse.go
// Role: Line-oriented edge-list input ("TAIL HEAD WEIGHT").
//
// Format:
//   - one arc per line, three whitespace-separated integers;
//   - blank lines and lines starting with '#' are skipped by ReadEdges;
//   - ids are non-negative, weights are non-negative int64.

package digraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const edgeFields = 3

// MaxInferredOrder bounds the order FromEdges derives from the ids it reads.
// Ids are dense indices, so a larger one would size every per-vertex table
// accordingly.
const MaxInferredOrder = 1 << 20

// ParseLine decodes one "TAIL HEAD WEIGHT" line.
// Returns ErrMalformedLine for a wrong field count or a non-integer field,
// and ErrNegativeWeight for a weight below zero.
func ParseLine(line string) (Edge, error) {
	fields := strings.Fields(line)
	if len(fields) != edgeFields {
		return Edge{}, fmt.Errorf("ParseLine(%q): %d fields: %w", line, len(fields), ErrMalformedLine)
	}
	var nums [edgeFields]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return Edge{}, fmt.Errorf("ParseLine(%q): field %d: %w", line, i, ErrMalformedLine)
		}
		nums[i] = n
	}
	if nums[0] < 0 || nums[1] < 0 {
		return Edge{}, fmt.Errorf("ParseLine(%q): %w", line, ErrVertexOutOfRange)
	}
	if nums[2] < 0 {
		return Edge{}, fmt.Errorf("ParseLine(%q): %w", line, ErrNegativeWeight)
	}

	return Edge{Tail: int(nums[0]), Head: int(nums[1]), Weight: nums[2]}, nil
}

// ParseLine decodes line and inserts the arc into g.
func (g *Graph) ParseLine(line string) error {
	e, err := ParseLine(line)
	if err != nil {
		return err
	}

	return g.AddEdge(e.Tail, e.Head, e.Weight)
}

// ReadEdges decodes every arc line of r, skipping blanks and '#' comments.
// Errors carry the 1-based line number.
func ReadEdges(r io.Reader) ([]Edge, error) {
	var out []Edge
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadEdges: %w", err)
	}

	return out, nil
}

// FromEdges builds a graph holding exactly the given arcs. Order is one past
// the largest id referenced; an id at or above MaxInferredOrder returns
// ErrVertexOutOfRange. With undirected set, every arc is stored in both
// directions.
func FromEdges(edges []Edge, undirected bool, opts ...Option) (*Graph, error) {
	order := 0
	for _, e := range edges {
		if e.Tail >= MaxInferredOrder || e.Head >= MaxInferredOrder {
			return nil, fmt.Errorf("FromEdges(%v): limit %d: %w", e, MaxInferredOrder, ErrVertexOutOfRange)
		}
		if e.Tail >= order {
			order = e.Tail + 1
		}
		if e.Head >= order {
			order = e.Head + 1
		}
	}
	g := New(order, opts...)
	for _, e := range edges {
		var err error
		if undirected {
			err = g.AddUndirected(e.Tail, e.Head, e.Weight)
		} else {
			err = g.AddEdge(e.Tail, e.Head, e.Weight)
		}
		if err != nil {
			return nil, fmt.Errorf("FromEdges: %w", err)
		}
	}

	return g, nil
}

// Parse reads a directed edge list from r into a new graph accepting
// original ids in [0, order). A non-positive order is inferred from the
// largest id in the input.
func Parse(r io.Reader, order int, opts ...Option) (*Graph, error) {
	edges, err := ReadEdges(r)
	if err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}
	if order <= 0 {
		return FromEdges(edges, false, opts...)
	}
	g := New(order, opts...)
	for _, e := range edges {
		if err = g.AddEdge(e.Tail, e.Head, e.Weight); err != nil {
			return nil, fmt.Errorf("Parse: %w", err)
		}
	}

	return g, nil
}
