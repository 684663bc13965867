package digraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/digraph"
)

// nestedFixture returns the directed graph 0→1→2→0 plus 2→3→4→2: two
// triangles sharing vertex 2.
func nestedFixture(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New(5)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 3}, {3, 4}, {4, 2}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

func TestContractCycle_Nested(t *testing.T) {
	g := nestedFixture(t)
	orig := g.Clone()

	// 1) contract the first triangle rooted at 2
	g1, b1, err := g.ContractCycle(2, []int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 5, b1)
	require.True(t, g.Equal(orig), "receiver must not be mutated")

	require.Equal(t, []int{3, 4, 5}, g1.Vertices())
	want := []digraph.Edge{
		{Tail: 3, Head: 4, Weight: 1},
		{Tail: 4, Head: 5, Weight: 1},
		{Tail: 5, Head: 3, Weight: 1},
	}
	if diff := cmp.Diff(want, g1.Edges()); diff != "" {
		t.Fatalf("contracted arcs mismatch (-want +got):\n%s", diff)
	}

	pv, ok := g1.Vertex(b1)
	require.True(t, ok)
	assert.True(t, pv.IsPseudo())
	assert.Equal(t, 2, pv.Root())
	assert.Equal(t, []int{2, 0, 1}, pv.Cycle(), "cycle is rotated to start at the root")
	assert.Len(t, pv.CycleEdges(), 3)
	assert.True(t, pv.Contains(0))
	assert.False(t, pv.Contains(3))

	// 2) contract the remaining triangle, which now contains the pseudo-vertex
	g2, b2, err := g1.ContractCycle(5, []int{5, 3, 4})
	require.NoError(t, err)
	require.Equal(t, 6, b2, "nested pseudo id must not be reused")
	require.Equal(t, []int{6}, g2.Vertices())
	require.Zero(t, g2.EdgeCount())

	outer, _ := g2.Vertex(b2)
	assert.True(t, outer.Contains(1), "membership is transitive")
	assert.Equal(t, []int{2, 0, 1, 3, 4}, outer.Leaves())
	assert.Equal(t, "V6{V5{v2 v0 v1} v3 v4}", outer.String())

	// 3) lift in reverse order: both levels must round-trip exactly
	l1, err := g2.LiftCycle(b2)
	require.NoError(t, err)
	require.True(t, l1.Equal(g1))

	l0, err := l1.LiftCycle(b1)
	require.NoError(t, err)
	require.True(t, l0.Equal(orig))
	require.Equal(t, 5, l0.Len())
}

func TestContractCycle_UndirectedRoundTrip(t *testing.T) {
	g := digraph.New(5)
	require.NoError(t, g.AddUndirected(0, 1, 3))
	require.NoError(t, g.AddUndirected(1, 2, 5))
	require.NoError(t, g.AddUndirected(2, 0, 7))
	require.NoError(t, g.AddUndirected(2, 3, 11))
	require.NoError(t, g.AddUndirected(3, 4, 13))

	c, id, err := g.ContractCycle(1, []int{0, 1, 2})
	require.NoError(t, err)
	require.True(t, c.IsSymmetric())

	e, ok := c.Arc(id, 3)
	require.True(t, ok)
	assert.Equal(t, int64(11), e.Weight, "external arcs keep their weight")
	require.True(t, c.HasArc(3, id))
	require.Equal(t, 4, c.EdgeCount())

	lifted, err := c.LiftCycle(id)
	require.NoError(t, err)
	require.True(t, lifted.Equal(g))
}

func TestContractCycle_Errors(t *testing.T) {
	g := nestedFixture(t)

	cases := []struct {
		name  string
		root  int
		cycle []int
		want  error
	}{
		{"even length", 0, []int{0, 1, 2, 3}, digraph.ErrInvalidCycle},
		{"too short", 0, []int{0}, digraph.ErrInvalidCycle},
		{"root missing", 3, []int{0, 1, 2}, digraph.ErrInvalidCycle},
		{"repeated member", 0, []int{0, 1, 0}, digraph.ErrInvalidCycle},
		{"not closed", 0, []int{0, 1, 3}, digraph.ErrInvalidCycle},
		{"dead member", 0, []int{0, 1, 7}, digraph.ErrVertexNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := g.ContractCycle(tc.root, tc.cycle)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLiftCycle_Errors(t *testing.T) {
	g := nestedFixture(t)

	_, err := g.LiftCycle(0)
	require.ErrorIs(t, err, digraph.ErrNotPseudo)

	_, err = g.LiftCycle(5)
	require.ErrorIs(t, err, digraph.ErrVertexNotFound)
}

func TestContractCycle_RetiredMembers(t *testing.T) {
	g := nestedFixture(t)
	c, _, err := g.ContractCycle(0, []int{0, 1, 2})
	require.NoError(t, err)

	require.False(t, c.HasVertex(1))
	require.ErrorIs(t, c.AddEdge(1, 3, 1), digraph.ErrVertexNotFound,
		"a contracted member cannot be revived by AddEdge")
}

// twinTriangles returns triangles {0,1,2} and {3,4,5} joined by the
// undirected edge 2–3.
func twinTriangles(t *testing.T) *digraph.Graph {
	t.Helper()
	g := digraph.New(6)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}, {2, 3}} {
		require.NoError(t, g.AddUndirected(e[0], e[1], 1))
	}

	return g
}

func TestLiftCycle_AnyOrder(t *testing.T) {
	orders := []struct {
		name        string
		firstIsLeft bool
	}{
		{"first contracted lifted first", true},
		{"last contracted lifted first", false},
	}
	for _, tc := range orders {
		t.Run(tc.name, func(t *testing.T) {
			g := twinTriangles(t)
			gp, p, err := g.ContractCycle(0, []int{0, 1, 2})
			require.NoError(t, err)
			gq, q, err := gp.ContractCycle(3, []int{3, 4, 5})
			require.NoError(t, err)
			require.Equal(t, []digraph.Edge{
				{Tail: p, Head: q, Weight: 1},
				{Tail: q, Head: p, Weight: 1},
			}, gq.Edges())

			first, second := p, q
			if !tc.firstIsLeft {
				first, second = q, p
			}
			mid, err := gq.LiftCycle(first)
			require.NoError(t, err)
			for _, e := range mid.Edges() {
				require.True(t, mid.HasVertex(e.Tail) && mid.HasVertex(e.Head), "dangling arc %v", e)
			}
			require.True(t, mid.IsSymmetric())
			require.Equal(t, 4, mid.Len())

			back, err := mid.LiftCycle(second)
			require.NoError(t, err)
			require.True(t, back.Equal(g), "arcs after lifting: %v", back.Edges())
			require.True(t, back.HasArc(2, 3) && back.HasArc(3, 2))
		})
	}
}

func TestLiftCycle_DropsArcsAddedToPseudo(t *testing.T) {
	g := twinTriangles(t)
	c, p, err := g.ContractCycle(0, []int{0, 1, 2})
	require.NoError(t, err)
	require.NoError(t, c.AddEdge(4, p, 9))

	lifted, err := c.LiftCycle(p)
	require.NoError(t, err)
	require.True(t, lifted.Equal(g))
}
