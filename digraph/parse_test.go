package digraph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/digraph"
)

func TestParseLine(t *testing.T) {
	e, err := digraph.ParseLine("  3 7\t12 ")
	require.NoError(t, err)
	assert.Equal(t, digraph.Edge{Tail: 3, Head: 7, Weight: 12}, e)

	for _, bad := range []string{"", "1 2", "1 2 3 4", "a 2 3", "1 2 x"} {
		_, err = digraph.ParseLine(bad)
		assert.ErrorIs(t, err, digraph.ErrMalformedLine, "line %q", bad)
	}

	_, err = digraph.ParseLine("1 2 -5")
	assert.ErrorIs(t, err, digraph.ErrNegativeWeight)

	_, err = digraph.ParseLine("-1 2 5")
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}

func TestGraph_ParseLine(t *testing.T) {
	g := digraph.New(4)
	require.NoError(t, g.ParseLine("0 3 2"))
	require.True(t, g.HasArc(0, 3))
	require.ErrorIs(t, g.ParseLine("0 4 2"), digraph.ErrVertexOutOfRange)
}

func TestReadEdges(t *testing.T) {
	src := `# triangle
0 1 5

1 2 6
   # indented comment
2 0 7
`
	edges, err := digraph.ReadEdges(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, edges, 3)
	assert.Equal(t, digraph.Edge{Tail: 2, Head: 0, Weight: 7}, edges[2])

	_, err = digraph.ReadEdges(strings.NewReader("0 1 1\n0 1\n"))
	require.ErrorIs(t, err, digraph.ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParse(t *testing.T) {
	src := "0 1 4\n1 2 4\n"

	// inferred order
	g, err := digraph.Parse(strings.NewReader(src), 0)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.EdgeCount())
	assert.False(t, g.IsSymmetric(), "Parse keeps arcs directed")

	// explicit order leaves room for isolated ids
	g, err = digraph.Parse(strings.NewReader(src), 10)
	require.NoError(t, err)
	assert.Equal(t, 10, g.Order())
	assert.Equal(t, 3, g.Len())

	_, err = digraph.Parse(strings.NewReader(src), 2)
	require.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}

func TestFromEdges(t *testing.T) {
	edges := []digraph.Edge{{Tail: 0, Head: 1, Weight: 2}, {Tail: 1, Head: 4, Weight: 3}}

	g, err := digraph.FromEdges(edges, true)
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.IsSymmetric())
	assert.Equal(t, []int{0, 1, 4}, g.Vertices())

	_, err = digraph.FromEdges([]digraph.Edge{{Tail: 2, Head: 2}}, false)
	require.ErrorIs(t, err, digraph.ErrLoopNotAllowed)

	_, err = digraph.FromEdges([]digraph.Edge{{Tail: 1_000_000_000_000, Head: 0, Weight: 1}}, true)
	require.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
	_, err = digraph.FromEdges([]digraph.Edge{{Tail: 0, Head: digraph.MaxInferredOrder, Weight: 1}}, false)
	require.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}
