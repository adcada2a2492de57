package solve

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/flowgrid/atom"
	"github.com/katalvlaran/flowgrid/encode"
	"github.com/katalvlaran/flowgrid/puzzle"
)

// Solve encodes p, boots a gophersat engine with the static clause set
// and runs the refinement loop to completion. See Run for outcomes.
func Solve(p *puzzle.Puzzle, opts Options) (puzzle.Solution, error) {
	pool := atom.NewPool()
	engine := NewSATEngine(encode.Clauses(p, pool))
	return Run(p, pool, engine, opts)
}

// Run drives the refinement loop against an engine already bootstrapped
// with the static encoding of p, built through pool. Each iteration asks
// the engine for a model, decodes it and checks it for endpoint-free
// cycles; cycles become blocking clauses and the loop re-solves.
//
// Outcomes:
//
//   - a cycle-free Solution with nil error;
//   - ErrUnsatisfiable when the engine proves the clause set has no model;
//   - the context's error or ErrBudgetExceeded when Options bounds fire
//     between iterations, before a decision was reached;
//   - ErrModelInconsistent or an engine error on contract violations.
//
// The loop terminates: each blocking clause forbids at least one
// previously seen shape assignment over the grid, the assignment space
// is finite, and no forbidden assignment can recur.
func Run(p *puzzle.Puzzle, pool *atom.Pool, engine Engine, opts Options) (puzzle.Solution, error) {
	opts = opts.normalize()

	for iteration := 1; ; iteration++ {
		if err := opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if opts.MaxIterations > 0 && iteration > opts.MaxIterations {
			return nil, ErrBudgetExceeded
		}

		sat, err := engine.Solve()
		if err != nil {
			return nil, err
		}
		if !sat {
			opts.Log.WithField("iteration", iteration).Debug("proven unsatisfiable")
			return nil, ErrUnsatisfiable
		}

		solution, err := Decode(p, pool, engine.Model())
		if err != nil {
			return nil, err
		}

		blocking := Cycles(p, pool, solution)
		if len(blocking) == 0 {
			opts.Log.WithField("iteration", iteration).Debug("cycle-free model found")
			return solution, nil
		}
		for _, clause := range blocking {
			engine.AddClause(clause)
		}
		opts.Log.WithFields(logrus.Fields{
			"iteration": iteration,
			"cycles":    len(blocking),
		}).Debug("blocked endpoint-free cycles, re-solving")
	}
}
