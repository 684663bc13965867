// Package builder_test checks topology, counts and error contracts of every
// constructor.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmatch/builder"
	"github.com/katalvlaran/lvmatch/digraph"
)

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order int
		ctor  builder.Constructor
		wantV int
		wantE int // undirected edges
		check func(t *testing.T, g *digraph.Graph)
	}{
		{
			name: "Path(4)", order: 4, ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *digraph.Graph) {
				for i := 0; i < 3; i++ {
					e, ok := g.Arc(i, i+1)
					require.True(t, ok)
					assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
				}
				assert.False(t, g.HasArc(0, 3))
			},
		},
		{
			name: "Cycle(5)", order: 5, ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *digraph.Graph) {
				assert.True(t, g.HasArc(4, 0))
				assert.True(t, g.HasArc(0, 4))
			},
		},
		{
			name: "Complete(5)", order: 5, ctor: builder.Complete(5), wantV: 5, wantE: 10,
			check: func(t *testing.T, g *digraph.Graph) {
				for v := 0; v < 5; v++ {
					assert.Equal(t, 4, g.Degree(v))
				}
			},
		},
		{
			name: "Complete(1)", order: 1, ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "Star(5)", order: 5, ctor: builder.Star(5), wantV: 5, wantE: 4,
			check: func(t *testing.T, g *digraph.Graph) {
				assert.Equal(t, 4, g.Degree(0))
				assert.Equal(t, 1, g.Degree(3))
			},
		},
		{
			name: "Wheel(6)", order: 6, ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			check: func(t *testing.T, g *digraph.Graph) {
				assert.Equal(t, 5, g.Degree(0))
				assert.True(t, g.HasArc(5, 1))
				for v := 1; v < 6; v++ {
					assert.Equal(t, 3, g.Degree(v))
				}
			},
		},
		{
			name: "CompleteBipartite(2,3)", order: 5, ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			check: func(t *testing.T, g *digraph.Graph) {
				assert.False(t, g.HasArc(0, 1))
				assert.False(t, g.HasArc(2, 3))
				assert.True(t, g.HasArc(1, 4))
			},
		},
		{
			name: "Grid(2,3)", order: 6, ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			check: func(t *testing.T, g *digraph.Graph) {
				assert.True(t, g.HasArc(0, 3))
				assert.True(t, g.HasArc(4, 5))
				assert.False(t, g.HasArc(2, 3))
			},
		},
		{
			name: "SharedTriangles(3)", order: 7, ctor: builder.SharedTriangles(3), wantV: 7, wantE: 9,
			check: func(t *testing.T, g *digraph.Graph) {
				assert.Equal(t, 4, g.Degree(2))
				assert.Equal(t, 2, g.Degree(0))
				assert.True(t, g.HasArc(6, 4))
			},
		},
		{
			name: "RandomSparse(6,1)", order: 6, ctor: builder.RandomSparse(6, 1), wantV: 6, wantE: 15,
		},
		{
			name: "RandomSparse(6,0)", order: 6, ctor: builder.RandomSparse(6, 0), wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.order, nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.Len())
			assert.Equal(t, 2*tc.wantE, g.EdgeCount())
			assert.True(t, g.IsSymmetric())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		order int
		ctor  builder.Constructor
		opts  []builder.BuilderOption
		want  error
	}{
		{"Path(1)", 4, builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", 4, builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Complete(0)", 4, builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"Star(1)", 4, builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", 4, builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", 4, builder.CompleteBipartite(0, 2), nil, builder.ErrTooFewVertices},
		{"Grid(2,0)", 4, builder.Grid(2, 0), nil, builder.ErrTooFewVertices},
		{"SharedTriangles(0)", 4, builder.SharedTriangles(0), nil, builder.ErrTooFewVertices},
		{"RandomSparse p<0", 4, builder.RandomSparse(4, -0.1), nil, builder.ErrInvalidProbability},
		{"RandomSparse p>1", 4, builder.RandomSparse(4, 1.5), nil, builder.ErrInvalidProbability},
		{"RandomSparse no rng", 4, builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"nil constructor", 4, nil, nil, builder.ErrConstructFailed},
		{"order too small", 3, builder.Path(4), nil, builder.ErrConstructFailed},
		{"range lo<0", 4, builder.Path(4), []builder.BuilderOption{builder.WithSeed(1), builder.WithWeightRange(-1, 3)}, builder.ErrInvalidWeightRange},
		{"range hi<lo", 4, builder.Path(4), []builder.BuilderOption{builder.WithSeed(1), builder.WithWeightRange(5, 3)}, builder.ErrInvalidWeightRange},
		{"range no rng", 4, builder.Path(4), []builder.BuilderOption{builder.WithWeightRange(1, 3)}, builder.ErrNeedRandSource},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.order, tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestOrderTooSmall_KeepsDigraphCause(t *testing.T) {
	_, err := builder.Build(3, builder.Path(4))
	require.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestShift_DisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(6, nil, builder.Cycle(3), builder.Shift(3, builder.Cycle(3)))
	require.NoError(t, err)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, 12, g.EdgeCount())
	assert.True(t, g.HasArc(3, 5))
	assert.False(t, g.HasArc(2, 3))
}

func TestWithDirected(t *testing.T) {
	g, err := builder.Build(4, builder.Cycle(4), builder.WithDirected())
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasArc(3, 0))
	assert.False(t, g.HasArc(0, 3))
	assert.False(t, g.IsSymmetric())
}

func TestWeights(t *testing.T) {
	t.Run("constant", func(t *testing.T) {
		g, err := builder.Build(3, builder.Path(3), builder.WithConstantWeight(7))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.Equal(t, int64(7), e.Weight)
		}
	})

	t.Run("range", func(t *testing.T) {
		g, err := builder.Build(8, builder.Complete(8), builder.WithSeed(42), builder.WithWeightRange(3, 9))
		require.NoError(t, err)
		for _, e := range g.Edges() {
			assert.GreaterOrEqual(t, e.Weight, int64(3))
			assert.LessOrEqual(t, e.Weight, int64(9))
		}
		assert.True(t, g.IsSymmetric())
	})

	t.Run("degenerate range needs no rng", func(t *testing.T) {
		g, err := builder.Build(3, builder.Path(3), builder.WithWeightRange(4, 4))
		require.NoError(t, err)
		assert.Equal(t, int64(4), g.MaxWeight())
	})

	t.Run("weight fn wins when last", func(t *testing.T) {
		g, err := builder.Build(3, builder.Path(3),
			builder.WithWeightRange(-5, -9),
			builder.WithWeightFn(builder.ConstantWeightFn(2)))
		require.NoError(t, err)
		assert.Equal(t, int64(2), g.MaxWeight())
	})
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) *digraph.Graph {
		g, err := builder.Build(12, builder.RandomSparse(12, 0.3),
			builder.WithSeed(seed), builder.WithWeightRange(0, 20))
		require.NoError(t, err)
		return g
	}
	a, b := build(7), build(7)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Edges(), b.Edges())
}
