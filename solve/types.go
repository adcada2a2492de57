package solve

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for solve outcomes. ErrUnsatisfiable is a legitimate
// terminal result; the others indicate interrupted or faulty attempts.
var (
	// ErrUnsatisfiable indicates the clause set (static encoding plus all
	// blocking clauses) admits no model: the puzzle has no solution.
	ErrUnsatisfiable = errors.New("solve: puzzle is unsatisfiable")
	// ErrBudgetExceeded indicates the iteration budget ran out before the
	// loop reached a decision.
	ErrBudgetExceeded = errors.New("solve: iteration budget exhausted without a decision")
	// ErrModelInconsistent indicates a model with zero or multiple true
	// shape or colour atoms for some cell — an encoder/engine contract
	// violation, fatal to the attempt.
	ErrModelInconsistent = errors.New("solve: model is inconsistent with the encoding")
	// ErrEngineIndeterminate indicates the engine stopped without proving
	// satisfiability or unsatisfiability.
	ErrEngineIndeterminate = errors.New("solve: engine returned no decision")
)

// Options configures a solve attempt.
//   - Ctx: checked between refinement iterations; cancellation aborts the
//     attempt with the context's error.
//   - MaxIterations: refinement iteration budget; 0 means unbounded.
//   - Log: structured logger for per-iteration progress; nil discards.
type Options struct {
	Ctx           context.Context
	MaxIterations int
	Log           logrus.FieldLogger
}

// DefaultOptions returns Options with a background context, no iteration
// budget and a discarding logger.
func DefaultOptions() Options {
	return Options{}
}

// normalize fills nil fields with their defaults.
func (o Options) normalize() Options {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Log = l
	}
	return o
}
