package blossom_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/blossom"
	"github.com/katalvlaran/lvmatch/digraph"
)

func arc(t, h int) digraph.Edge { return digraph.Edge{Tail: t, Head: h, Weight: 1} }

// ForestSuite builds, over 7 vertices with matched pairs (1,2) and (3,4), the
// triangle B = [0 1 2] and the outer blossom C = [B 3 4].
type ForestSuite struct {
	suite.Suite
	f    *blossom.Forest
	b, c int
}

func (s *ForestSuite) SetupTest() {
	require := require.New(s.T())
	s.f = blossom.NewForest(7)

	var err error
	s.b, err = s.f.Alloc()
	require.NoError(err)
	_, err = s.f.Add(blossom.Blossom{
		ID:    s.b,
		Cycle: []int{0, 1, 2},
		Edges: []digraph.Edge{arc(0, 1), arc(1, 2), arc(2, 0)},
	})
	require.NoError(err)

	s.c, err = s.f.Alloc()
	require.NoError(err)
	_, err = s.f.Add(blossom.Blossom{
		ID:    s.c,
		Cycle: []int{s.b, 3, 4},
		Edges: []digraph.Edge{arc(2, 3), arc(3, 4), arc(4, 1)},
	})
	require.NoError(err)
}

func (s *ForestSuite) TestStructure() {
	require := require.New(s.T())

	require.Equal(7, s.b)
	require.Equal(8, s.c)
	require.Equal([]int{7, 8}, s.f.Blossoms())
	require.Equal(2, s.f.Len())
	require.Equal(0, s.f.Base(s.c))
	require.Equal(s.c, s.f.Top(1))
	require.Equal(s.c, s.f.Top(3))
	require.Equal(5, s.f.Top(5), "unnested vertex is its own top")
	require.Equal(s.b, s.f.Parent(2))
	require.True(s.f.Contains(s.c, 1))
	require.False(s.f.Contains(s.b, 3))
	require.Equal([]int{0, 1, 2, 3, 4}, s.f.Leaves(s.c))

	child, err := s.f.ChildOf(s.c, 2)
	require.NoError(err)
	require.Equal(s.b, child)
	_, err = s.f.ChildOf(s.b, 4)
	require.ErrorIs(err, blossom.ErrNotMember)

	rec, ok := s.f.Get(s.c)
	require.True(ok)
	require.True(rec.Contains(s.b))
	require.Equal(2, rec.IndexOf(4))
	require.Equal(3, rec.Len())
}

func (s *ForestSuite) TestPathToBase() {
	cases := []struct {
		node, v int
		want    []int
	}{
		{s.b, 1, []int{1, 2, 0}},
		{s.b, 2, []int{2, 1, 0}},
		{s.b, 0, []int{0}},
		{s.c, 4, []int{4, 3, 2, 1, 0}},
		{s.c, 3, []int{3, 4, 1, 2, 0}},
		{s.c, 1, []int{1, 2, 0}},
		{5, 5, []int{5}},
	}
	for _, tc := range cases {
		got, err := s.f.PathToBase(tc.node, tc.v)
		require.NoError(s.T(), err)
		require.Equal(s.T(), tc.want, got, "PathToBase(%d, %d)", tc.node, tc.v)
	}

	_, err := s.f.PathToBase(s.b, 4)
	require.ErrorIs(s.T(), err, blossom.ErrNotMember)
	_, err = s.f.PathToBase(5, 6)
	require.ErrorIs(s.T(), err, blossom.ErrNotBlossom)
}

func (s *ForestSuite) TestExpandAndRemove() {
	require := require.New(s.T())

	_, err := s.f.Expand(s.b)
	require.ErrorIs(err, blossom.ErrInvalidBlossom, "nested blossom cannot be expanded first")

	children, err := s.f.Expand(s.c)
	require.NoError(err)
	require.Equal([]int{s.b, 3, 4}, children)
	require.Equal(s.b, s.f.Top(1))
	require.Equal(3, s.f.Top(3))
	require.False(s.f.IsBlossom(s.c))

	// the freed id is reused
	id, err := s.f.Alloc()
	require.NoError(err)
	require.Equal(s.c, id)

	require.NoError(s.f.Remove(s.b))
	require.Zero(s.f.Len())
	require.ErrorIs(s.f.Remove(s.b), blossom.ErrNotBlossom)
}

func (s *ForestSuite) TestRemoveNested() {
	require.NoError(s.T(), s.f.Remove(s.c))
	require.Zero(s.T(), s.f.Len())
	for v := 0; v < 7; v++ {
		require.Equal(s.T(), v, s.f.Top(v))
	}
}

func (s *ForestSuite) TestRotate() {
	require := require.New(s.T())
	_, err := s.f.Expand(s.c)
	require.NoError(err)

	require.NoError(s.f.Rotate(s.b, 1))
	rec, _ := s.f.Get(s.b)
	require.Equal([]int{1, 2, 0}, rec.Cycle)
	require.Equal([]digraph.Edge{arc(1, 2), arc(2, 0), arc(0, 1)}, rec.Edges)
	require.Equal(1, rec.Base)
	require.Equal(2, s.f.Index(0))

	require.ErrorIs(s.f.Rotate(s.b, 5), blossom.ErrOutOfRange)
	require.ErrorIs(s.f.Rotate(3, 0), blossom.ErrNotBlossom)
}

func (s *ForestSuite) TestAddRejects() {
	require := require.New(s.T())
	three := []digraph.Edge{arc(0, 0), arc(0, 0), arc(0, 0)}

	_, err := s.f.Add(blossom.Blossom{ID: 3, Cycle: []int{5, 6, 3}, Edges: three})
	require.ErrorIs(err, blossom.ErrOutOfRange)

	_, err = s.f.Add(blossom.Blossom{ID: s.c, Cycle: []int{5, 6, 0}, Edges: three})
	require.ErrorIs(err, blossom.ErrInvalidBlossom, "id in use")

	_, err = s.f.Add(blossom.Blossom{ID: 9, Cycle: []int{5, 6}, Edges: three[:2]})
	require.ErrorIs(err, blossom.ErrInvalidBlossom, "even cycle")

	_, err = s.f.Add(blossom.Blossom{ID: 9, Cycle: []int{5, 6, 0}, Edges: three})
	require.ErrorIs(err, blossom.ErrInvalidBlossom, "child already nested")

	_, err = s.f.Add(blossom.Blossom{ID: 9, Cycle: []int{5, 6, 5}, Edges: three})
	require.ErrorIs(err, blossom.ErrInvalidBlossom, "child repeated")

	_, err = s.f.Add(blossom.Blossom{ID: 9, Cycle: []int{5, 6, 10}, Edges: three})
	require.ErrorIs(err, blossom.ErrInvalidBlossom, "unknown blossom child")
}

func (s *ForestSuite) TestReset() {
	s.f.Reset()
	require.Zero(s.T(), s.f.Len())
	require.Equal(s.T(), 2, s.f.Top(2))
}

func TestForestSuite(t *testing.T) {
	suite.Run(t, new(ForestSuite))
}

func TestAlloc_Capacity(t *testing.T) {
	f := blossom.NewForest(0)
	_, err := f.Alloc()
	require.ErrorIs(t, err, blossom.ErrCapacity)
}
