package digraph_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/digraph"
)

// GraphSuite covers vertex/arc insertion, queries and snapshot copies.
type GraphSuite struct {
	suite.Suite
	g *digraph.Graph
}

func (s *GraphSuite) SetupTest() {
	// triangle 0-1-2 plus the pendant arc 2→3
	s.g = digraph.New(5)
	require.NoError(s.T(), s.g.AddUndirected(0, 1, 4))
	require.NoError(s.T(), s.g.AddUndirected(1, 2, 2))
	require.NoError(s.T(), s.g.AddUndirected(2, 0, 6))
	require.NoError(s.T(), s.g.AddEdge(2, 3, 1))
}

func (s *GraphSuite) TestAddVertex() {
	require := require.New(s.T())

	require.NoError(s.g.AddVertex(4))
	require.True(s.g.HasVertex(4))
	require.Equal(5, s.g.Len())

	// idempotent
	require.NoError(s.g.AddVertex(4))
	require.Equal(5, s.g.Len())

	require.ErrorIs(s.g.AddVertex(-1), digraph.ErrVertexOutOfRange)
	require.ErrorIs(s.g.AddVertex(5), digraph.ErrVertexOutOfRange, "pseudo range is not for AddVertex")
}

func (s *GraphSuite) TestAddEdgeErrors() {
	require := require.New(s.T())

	require.ErrorIs(s.g.AddEdge(0, 1, -1), digraph.ErrNegativeWeight)
	require.ErrorIs(s.g.AddEdge(0, 9, 1), digraph.ErrVertexOutOfRange)
	require.ErrorIs(s.g.AddEdge(3, 3, 1), digraph.ErrLoopNotAllowed)
	require.Equal(7, s.g.EdgeCount(), "failed inserts must not add arcs")
}

func (s *GraphSuite) TestQueries() {
	require := require.New(s.T())

	require.Equal([]int{0, 1, 2, 3}, s.g.Vertices())
	require.Equal(3, s.g.Degree(2))
	require.Equal(0, s.g.Degree(3))
	require.Equal(0, s.g.Degree(42))

	e, ok := s.g.Arc(2, 0)
	require.True(ok)
	require.Equal(int64(6), e.Weight)
	require.False(s.g.HasArc(3, 2))
	_, ok = s.g.Arc(4, 0)
	require.False(ok)

	want := []digraph.Edge{
		{Tail: 0, Head: 2, Weight: 6},
		{Tail: 1, Head: 2, Weight: 2},
	}
	if diff := cmp.Diff(want, s.g.In(2)); diff != "" {
		s.T().Fatalf("In(2) mismatch (-want +got):\n%s", diff)
	}

	require.Equal(int64(6), s.g.MaxWeight())
	require.False(s.g.IsSymmetric(), "pendant arc 2→3 has no reverse")
	require.NoError(s.g.AddEdge(3, 2, 1))
	require.True(s.g.IsSymmetric())
}

func (s *GraphSuite) TestOutIsACopy() {
	out := s.g.Out(0)
	require.Len(s.T(), out, 2)
	out[0].Weight = 100
	e, _ := s.g.Arc(0, out[0].Head)
	require.NotEqual(s.T(), int64(100), e.Weight, "Out must not alias internal storage")
}

func (s *GraphSuite) TestRangeStopsEarly() {
	n := 0
	s.g.Range(2, func(digraph.Edge) bool {
		n++
		return false
	})
	require.Equal(s.T(), 1, n)
}

func (s *GraphSuite) TestEdgesSorted() {
	want := []digraph.Edge{
		{Tail: 0, Head: 1, Weight: 4},
		{Tail: 0, Head: 2, Weight: 6},
		{Tail: 1, Head: 0, Weight: 4},
		{Tail: 1, Head: 2, Weight: 2},
		{Tail: 2, Head: 0, Weight: 6},
		{Tail: 2, Head: 1, Weight: 2},
		{Tail: 2, Head: 3, Weight: 1},
	}
	if diff := cmp.Diff(want, s.g.Edges()); diff != "" {
		s.T().Fatalf("Edges mismatch (-want +got):\n%s", diff)
	}
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())

	c := s.g.Clone()
	require.True(c.Equal(s.g))

	require.NoError(c.AddEdge(3, 4, 9))
	require.False(c.Equal(s.g))
	require.False(s.g.HasVertex(4), "mutating the clone must not touch the source")
	require.Equal(7, s.g.EdgeCount())
}

func (s *GraphSuite) TestEqualIgnoresArcOrder() {
	a := digraph.New(3)
	b := digraph.New(3)
	require.NoError(s.T(), a.AddEdge(0, 1, 1))
	require.NoError(s.T(), a.AddEdge(0, 2, 2))
	require.NoError(s.T(), b.AddEdge(0, 2, 2))
	require.NoError(s.T(), b.AddEdge(0, 1, 1))
	require.True(s.T(), a.Equal(b))

	// parallel arcs count as a multiset
	require.NoError(s.T(), b.AddEdge(0, 1, 1))
	require.False(s.T(), a.Equal(b))
	require.False(s.T(), a.Equal(nil))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
