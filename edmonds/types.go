package edmonds

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvmatch/digraph"
)

var (
	// ErrGraphNil is returned when a nil *digraph.Graph is passed in.
	ErrGraphNil = errors.New("edmonds: graph is nil")

	// ErrSizeMismatch indicates a starting matching whose id space differs
	// from the graph order.
	ErrSizeMismatch = errors.New("edmonds: matching size does not match graph order")

	// ErrForeignPair indicates a starting matching that pairs two vertices
	// not joined by an admissible edge.
	ErrForeignPair = errors.New("edmonds: matched pair is not an admissible edge")

	// ErrStageLimit indicates the configured stage budget ran out.
	ErrStageLimit = errors.New("edmonds: stage limit reached")

	// ErrNotMaximum indicates Decompose found an augmenting path.
	ErrNotMaximum = errors.New("edmonds: matching is not maximum")
)

// InvariantError reports a broken internal invariant. It is raised with
// panic and signals a defect, never a property of the input.
type InvariantError struct {
	Op     string // step that detected the failure
	ID     int    // offending vertex or blossom id
	Detail string
}

// Error implements error.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("edmonds: invariant violated in %s at id %d: %s", e.Op, e.ID, e.Detail)
}

// enforce panics with an *InvariantError when ok is false.
func enforce(ok bool, op string, id int, format string, args ...any) {
	if !ok {
		panic(&InvariantError{Op: op, ID: id, Detail: fmt.Sprintf(format, args...)})
	}
}

// Options configures an Engine.
type Options struct {
	// Logger receives Debug (stage/augment) and Trace (blossom) events.
	Logger zerolog.Logger

	// StageLimit caps the number of root searches; 0 means unlimited.
	StageLimit int

	// Admissible, if non-nil, restricts the search to arcs for which it
	// returns true.
	Admissible func(e digraph.Edge) bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger, no stage limit and every arc
// admissible.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger sets the trace logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
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

// WithAdmissible restricts the search to arcs accepted by fn.
func WithAdmissible(fn func(e digraph.Edge) bool) Option {
	return func(o *Options) { o.Admissible = fn }
}
