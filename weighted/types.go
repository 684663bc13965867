package weighted

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvmatch/blossom"
	"github.com/katalvlaran/lvmatch/edmonds"
)

const none = blossom.None

var (
	// ErrGraphNil is returned when a nil *digraph.Graph is passed in.
	ErrGraphNil = errors.New("weighted: graph is nil")

	// ErrNoPerfectMatching is returned by MinWeightPerfect when some vertex
	// stays exposed in every maximum matching.
	ErrNoPerfectMatching = errors.New("weighted: graph has no perfect matching")

	// ErrStageLimit indicates the configured stage budget ran out.
	ErrStageLimit = errors.New("weighted: stage limit reached")

	// ErrNotOptimal is returned by CheckOptimality when a dual constraint or a
	// complementary slackness condition fails.
	ErrNotOptimal = errors.New("weighted: optimality certificate rejected")
)

// Labels of the alternating forest; breadcrumb marks nodes visited by
// scanBlossom.
const (
	labelFree  uint8 = 0
	labelS     uint8 = 1
	labelT     uint8 = 2
	breadcrumb uint8 = 4
)

// enforce panics with an *edmonds.InvariantError when ok is false.
func enforce(ok bool, op string, id int, format string, args ...any) {
	if !ok {
		panic(&edmonds.InvariantError{Op: "weighted." + op, ID: id, Detail: fmt.Sprintf(format, args...)})
	}
}

// Options configures an Engine.
type Options struct {
	// Logger receives Debug (stage, warm start) events.
	Logger zerolog.Logger

	// MaxCardinality restricts the optimum to maximum-cardinality matchings.
	MaxCardinality bool

	// Minimize looks for the lightest matching instead of the heaviest. It is
	// only meaningful together with MaxCardinality.
	Minimize bool

	// StageLimit caps the number of stages; 0 means unlimited.
	StageLimit int

	// Verify runs CheckOptimality on the result before returning it.
	Verify bool

	// WarmStart seeds the matching from the maximum-weight edges.
	WarmStart bool

	// OnStage, if set, observes the forest classification after every stage.
	OnStage func(stage int, c Classification)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger, the max-weight objective and the
// warm start enabled.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop(), WarmStart: true}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMaxCardinality restricts the optimum to maximum-cardinality matchings.
func WithMaxCardinality() Option {
	return func(o *Options) { o.MaxCardinality = true }
}

// WithMinimize switches to the min-weight objective; it implies
// WithMaxCardinality.
func WithMinimize() Option {
	return func(o *Options) {
		o.Minimize = true
		o.MaxCardinality = true
	}
}

// WithStageLimit stops Run after n stages. Non-positive n disables the cap.
func WithStageLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.StageLimit = n
	}
}

// WithVerify checks the dual certificate before returning.
func WithVerify() Option {
	return func(o *Options) { o.Verify = true }
}

// WithoutWarmStart starts from the empty matching.
func WithoutWarmStart() Option {
	return func(o *Options) { o.WarmStart = false }
}

// WithStageHook installs fn as Options.OnStage.
func WithStageHook(fn func(stage int, c Classification)) Option {
	return func(o *Options) { o.OnStage = fn }
}

// Classification is the label state of the alternating forest at the end of
// a stage: O/I vertex sets and the top-level blossoms carrying each label.
type Classification struct {
	Outer         mapset.Set[int] // S vertices (O)
	Inner         mapset.Set[int] // T vertices (I)
	OuterBlossoms mapset.Set[int] // Psi_O
	InnerBlossoms mapset.Set[int] // Psi_I
}

// DualBlossom is one blossom of a dual solution.
type DualBlossom struct {
	ID     int
	Leaves []int
	Gamma  float64
}

// Duals is a dual solution over the objective weights: w when maximizing,
// Offset − w when Negated.
type Duals struct {
	Alpha          []float64
	Blossoms       []DualBlossom
	MaxCardinality bool
	Negated        bool
	Offset         int64
}

// objective maps an original weight onto the maximized weight.
func (d Duals) objective(w int64) int64 {
	if d.Negated {
		return d.Offset - w
	}

	return w
}
