package matching_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvmatch/digraph"
	"github.com/katalvlaran/lvmatch/matching"
)

func edge(t, h int, w int64) digraph.Edge { return digraph.Edge{Tail: t, Head: h, Weight: w} }

// MatchingSuite covers pair bookkeeping and path augmentation.
type MatchingSuite struct {
	suite.Suite
	m *matching.Matching
}

func (s *MatchingSuite) SetupTest() {
	s.m = matching.New(6)
}

// TearDownTest runs the full involution scan after every case.
func (s *MatchingSuite) TearDownTest() {
	require.NoError(s.T(), s.m.Validate())
}

func (s *MatchingSuite) TestAddRemove() {
	require := require.New(s.T())

	require.NoError(s.m.Add(edge(0, 1, 5)))
	require.Equal(1, s.m.Mate(0))
	require.Equal(0, s.m.Mate(1))
	require.True(s.m.IsMatched(1))
	require.Equal(int64(5), s.m.PairWeight(1))
	require.Equal(1, s.m.Count())
	require.Equal(int64(5), s.m.Weight())

	require.ErrorIs(s.m.Add(edge(1, 2, 1)), matching.ErrAlreadyMatched)
	require.ErrorIs(s.m.Add(edge(2, 0, 1)), matching.ErrAlreadyMatched)
	require.ErrorIs(s.m.Add(edge(3, 3, 1)), matching.ErrSelfLoop)
	require.ErrorIs(s.m.Add(edge(3, 9, 1)), matching.ErrOutOfRange)

	require.ErrorIs(s.m.Remove(edge(2, 3, 1)), matching.ErrNotMatched)
	require.ErrorIs(s.m.Remove(edge(0, 2, 5)), matching.ErrMismatchedPair)

	// either orientation removes the pair
	require.NoError(s.m.Remove(edge(1, 0, 5)))
	require.Equal(matching.Unmatched, s.m.Mate(0))
	require.Zero(s.m.Count())
	require.Zero(s.m.Weight())
}

func (s *MatchingSuite) TestRemoveVertex() {
	require.NoError(s.T(), s.m.Add(edge(4, 2, 3)))
	require.NoError(s.T(), s.m.RemoveVertex(2))
	require.False(s.T(), s.m.IsMatched(4))
	require.ErrorIs(s.T(), s.m.RemoveVertex(2), matching.ErrNotMatched)
	require.ErrorIs(s.T(), s.m.RemoveVertex(-1), matching.ErrOutOfRange)
}

// TestAugmentPath is the 0-1-2-3 path with initial pair (1,2).
func (s *MatchingSuite) TestAugmentPath() {
	require := require.New(s.T())
	require.NoError(s.m.Add(edge(1, 2, 1)))

	path := []digraph.Edge{edge(0, 1, 1), edge(1, 2, 1), edge(2, 3, 1)}
	require.NoError(s.m.Augment(path))

	want := []matching.Pair{{U: 0, V: 1, Weight: 1}, {U: 2, V: 3, Weight: 1}}
	if diff := cmp.Diff(want, s.m.Pairs()); diff != "" {
		s.T().Fatalf("pairs mismatch (-want +got):\n%s", diff)
	}
	require.Equal(int64(2), s.m.Weight())
	require.Equal(2, s.m.Count())
}

// TestAugmentReverseRestores applies a path and then its reverse.
func (s *MatchingSuite) TestAugmentReverseRestores() {
	require := require.New(s.T())
	require.NoError(s.m.Add(edge(1, 2, 4)))
	before := s.m.Clone()

	path := []digraph.Edge{edge(0, 1, 3), edge(1, 2, 4), edge(2, 3, 5)}
	require.NoError(s.m.Augment(path))
	require.Equal(int64(8), s.m.Weight())

	reversed := make([]digraph.Edge, len(path))
	for i, e := range path {
		reversed[len(path)-1-i] = e.Reverse()
	}
	require.NoError(s.m.Augment(reversed))
	require.True(s.m.Equal(before))
}

func (s *MatchingSuite) TestAugmentRejects() {
	require := require.New(s.T())
	require.NoError(s.m.Add(edge(1, 2, 1)))
	require.NoError(s.m.Add(edge(3, 4, 1)))
	before := s.m.Clone()

	cases := map[string][]digraph.Edge{
		"empty":           nil,
		"broken chain":    {edge(0, 1, 1), edge(2, 3, 1)},
		"not alternating": {edge(0, 1, 1), edge(1, 5, 1)},
		"start matched":   {edge(1, 0, 1)},
		"end matched":     {edge(0, 1, 1), edge(1, 2, 1), edge(2, 3, 1)},
		"repeated vertex": {edge(0, 1, 1), edge(1, 2, 1), edge(2, 0, 1)},
		"out of range":    {edge(0, 7, 1)},
	}
	for name, path := range cases {
		require.ErrorIs(s.m.Augment(path), matching.ErrInvalidPath, name)
		require.True(s.m.Equal(before), "%s: matching must be unchanged", name)
	}
}

func (s *MatchingSuite) TestQueries() {
	require := require.New(s.T())
	require.NoError(s.m.Add(edge(5, 0, 2)))
	require.NoError(s.m.Add(edge(3, 2, 7)))

	require.Equal([]int{1, 4}, s.m.Exposed())
	require.Equal([]digraph.Edge{edge(0, 5, 2), edge(2, 3, 7)}, s.m.Edges())
	require.Equal("{(0,5) (2,3)} count=2 weight=9", s.m.String())
	require.Equal(6, s.m.Len())
	require.Equal(matching.Unmatched, s.m.Mate(100))

	c := s.m.Clone()
	c.Reset()
	require.Zero(c.Count())
	require.Len(c.Exposed(), 6)
	require.Equal(2, s.m.Count(), "Reset on a clone must not touch the source")
	require.False(s.m.Equal(c))
	require.False(s.m.Equal(nil))
}

func TestMatchingSuite(t *testing.T) {
	suite.Run(t, new(MatchingSuite))
}

func TestNew_Negative(t *testing.T) {
	m := matching.New(-3)
	require.Zero(t, m.Len())
	require.Empty(t, m.Exposed())
}
