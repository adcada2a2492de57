// Package solve runs the counter-example-guided refinement loop that
// turns the static puzzle encoding into an actual solution.
//
// What:
//
//   - Engine: the incremental solve/model/add-clause contract expected
//     of an external SAT engine, plus a gophersat-backed implementation.
//   - Decode: maps a satisfying model back onto a grid of (shape, colour)
//     tiles, rejecting any model that violates the encoder contract.
//   - Cycles: finds colour components no endpoint reaches in a decoded
//     grid and emits one blocking clause per such component.
//   - Solve / Run: encode once, then loop — solve, decode, check; add
//     blocking clauses and re-solve until the model is cycle free or the
//     clause set is proven unsatisfiable.
//
// Why:
//
//   - The static encoding only states local rules, so it admits models
//     where a colour's interior cells close into a loop no endpoint
//     touches. Each refinement iteration uses such a model as a
//     counter-example: it diagnoses the offending loops and adds clauses
//     that forbid exactly those shape assignments from recurring.
//     Termination follows from finiteness — every iteration rules out at
//     least one full shape assignment over the grid and none can recur.
//
// The engine is constructed once per solve attempt and reused across
// iterations through incremental clause addition, preserving its learned
// state. The loop is single-threaded; the only blocking operation is the
// engine call. A context and an iteration budget, checked between
// iterations, bound the attempt if required.
//
// Errors:
//
//   - ErrUnsatisfiable: the puzzle has no solution (a result, not a fault).
//   - ErrBudgetExceeded: context cancelled or iteration budget exhausted
//     before a decision — distinct from proven unsatisfiability.
//   - ErrModelInconsistent: a model decoded to zero or multiple true
//     shape/colour atoms for a cell; the encoder and engine disagree and
//     the attempt aborts.
//   - ErrEngineIndeterminate: the engine stopped without deciding.
package solve
