package solve

import (
	"github.com/crillab/gophersat/solver"
)

// Engine is the incremental satisfiability contract the refinement loop
// consumes. A single Engine instance is scoped to one solve attempt:
// clauses accumulate across AddClause calls and are never removed.
type Engine interface {
	// Solve reports whether the current clause set is satisfiable. It may
	// block for a long time; it returns an error only when the engine
	// stops without a decision.
	Solve() (bool, error)
	// Model is valid only immediately after a satisfiable Solve. Each
	// entry is a signed literal: positive means the atom with that id is
	// true, negative false. One entry per known id, in id order.
	Model() []int
	// AddClause augments the clause set for subsequent Solve calls with a
	// disjunction of signed literals.
	AddClause(clause []int)
}

// SATEngine adapts the gophersat CDCL solver to the Engine contract.
type SATEngine struct {
	s *solver.Solver
}

// NewSATEngine builds a gophersat solver bootstrapped with the given
// static clause set.
func NewSATEngine(clauses [][]int) *SATEngine {
	return &SATEngine{s: solver.New(solver.ParseSlice(clauses))}
}

// Solve implements Engine.
func (e *SATEngine) Solve() (bool, error) {
	switch e.s.Solve() {
	case solver.Sat:
		return true, nil
	case solver.Unsat:
		return false, nil
	default:
		return false, ErrEngineIndeterminate
	}
}

// Model implements Engine, converting gophersat's boolean bindings into
// signed literals: entry i describes atom id i+1.
func (e *SATEngine) Model() []int {
	bindings := e.s.Model()
	model := make([]int, len(bindings))
	for i, b := range bindings {
		if b {
			model[i] = i + 1
		} else {
			model[i] = -(i + 1)
		}
	}
	return model
}

// AddClause implements Engine.
func (e *SATEngine) AddClause(clause []int) {
	lits := make([]solver.Lit, len(clause))
	for i, l := range clause {
		lits[i] = solver.IntToLit(int32(l))
	}
	e.s.AppendClause(solver.NewClause(lits))
}
