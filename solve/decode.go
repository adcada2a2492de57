package solve

import (
	"fmt"

	"github.com/katalvlaran/flowgrid/atom"
	"github.com/katalvlaran/flowgrid/puzzle"
)

// Decode maps a satisfying model onto a Solution grid. For every cell it
// expects exactly one true flow atom and exactly one true colour atom —
// guaranteed by the exactly-one clause families for any model a correct
// engine returns. Zero or multiple true atoms for a cell mean the
// encoder and engine disagree about an atom id; Decode then fails with
// ErrModelInconsistent rather than return a partially decoded grid.
// Complexity: O(model) time, O(Size²) memory.
func Decode(p *puzzle.Puzzle, pool *atom.Pool, model []int) (puzzle.Solution, error) {
	type cellState struct {
		shape     puzzle.Shape
		colour    int
		hasShape  bool
		hasColour bool
	}
	cells := make([][]cellState, p.Size)
	for i := range cells {
		cells[i] = make([]cellState, p.Size)
	}

	for _, lit := range model {
		if lit < 0 {
			continue
		}
		a, ok := pool.Lookup(lit)
		if !ok {
			continue // engine-internal variable, not one of ours
		}
		cell := &cells[a.Pos.Row][a.Pos.Column]
		switch a.Kind {
		case atom.KindFlow:
			if cell.hasShape {
				return nil, fmt.Errorf("%w: cell (%d,%d) has two shapes", ErrModelInconsistent, a.Pos.Row, a.Pos.Column)
			}
			cell.shape, cell.hasShape = a.Shape, true
		case atom.KindColour:
			if cell.hasColour {
				return nil, fmt.Errorf("%w: cell (%d,%d) has two colours", ErrModelInconsistent, a.Pos.Row, a.Pos.Column)
			}
			cell.colour, cell.hasColour = a.Colour, true
		}
	}

	solution := make(puzzle.Solution, p.Size)
	for r := range solution {
		solution[r] = make([]puzzle.Tile, p.Size)
		for c := range solution[r] {
			cell := cells[r][c]
			if !cell.hasShape || !cell.hasColour {
				return nil, fmt.Errorf("%w: cell (%d,%d) is undecided", ErrModelInconsistent, r, c)
			}
			solution[r][c] = puzzle.Tile{Shape: cell.shape, Colour: cell.colour}
		}
	}
	return solution, nil
}
