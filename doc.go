// Package flowgrid solves single-player connection puzzles on square
// grids by reduction to Boolean satisfiability.
//
// Each colour of a puzzle owns exactly two terminal cells; a solution
// fills every cell with one colour and one flow shape so that every
// colour forms a single unbroken path between its terminals, paths of
// different colours never touch, and no colour closes into a loop away
// from its terminals.
//
// The pipeline is organized under five subpackages:
//
//	puzzle/ — grid, shape and solution value types; definition parsing
//	atom/   — propositional atoms and the atom↔id registry
//	encode/ — the static clause families over those atoms
//	solve/  — gophersat engine adapter, decoder, cycle detector and the
//	          counter-example-guided refinement loop
//	render/ — coloured terminal output of puzzles and solutions
//
// The local clause encoding alone admits closed loops no terminal
// reaches; the solve package eliminates them iteratively, blocking each
// discovered loop with one additional clause and re-solving until the
// engine yields a loop-free model or proves the puzzle unsatisfiable.
//
//	go get github.com/katalvlaran/flowgrid
package flowgrid
