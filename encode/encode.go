package encode

import (
	"github.com/katalvlaran/flowgrid/atom"
	"github.com/katalvlaran/flowgrid/puzzle"
)

// ExactlyOneShape emits, for every cell, one at-least-one clause over all
// ten shape atoms and one at-most-one clause per distinct shape pair.
// Clause count: Size²·(1 + 45).
// Complexity: O(Size²) time and memory.
func ExactlyOneShape(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	shapes := puzzle.Shapes()
	clauses := make([][]int, 0, p.Size*p.Size*(1+len(shapes)*(len(shapes)-1)/2))
	for _, pos := range p.Positions() {
		atLeast := make([]int, 0, len(shapes))
		for _, s := range shapes {
			atLeast = append(atLeast, pool.ID(atom.Flow(pos, s)))
		}
		clauses = append(clauses, atLeast)
		for i := 0; i < len(shapes); i++ {
			for j := i + 1; j < len(shapes); j++ {
				clauses = append(clauses, []int{
					-pool.ID(atom.Flow(pos, shapes[i])),
					-pool.ID(atom.Flow(pos, shapes[j])),
				})
			}
		}
	}
	return clauses
}

// ExactlyOneColour emits, for every cell, one at-least-one clause over
// the colour atoms and one at-most-one clause per distinct colour pair.
// Clause count: Size²·(1 + C·(C-1)/2), C = number of colours.
// Complexity: O(Size²·C²) time and memory.
func ExactlyOneColour(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	n := p.NumColours()
	var clauses [][]int
	for _, pos := range p.Positions() {
		atLeast := make([]int, 0, n)
		for c := 0; c < n; c++ {
			atLeast = append(atLeast, pool.ID(atom.Colour(pos, c)))
		}
		clauses = append(clauses, atLeast)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				clauses = append(clauses, []int{
					-pool.ID(atom.Colour(pos, i)),
					-pool.ID(atom.Colour(pos, j)),
				})
			}
		}
	}
	return clauses
}

// BorderContainment forbids, with one unit clause each, every shape that
// would carry flow off the grid: shapes touching Up on the top row, Left
// on the first column, Down on the bottom row and Right on the last
// column.
// Complexity: O(Size) time and memory.
func BorderContainment(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	var clauses [][]int
	forbid := func(pos puzzle.Position, outside puzzle.Direction) {
		for _, s := range puzzle.Shapes() {
			if s.Has(outside) {
				clauses = append(clauses, []int{-pool.ID(atom.Flow(pos, s))})
			}
		}
	}
	for i := 0; i < p.Size; i++ {
		forbid(puzzle.Position{Row: 0, Column: i}, puzzle.Up)
		forbid(puzzle.Position{Row: i, Column: 0}, puzzle.Left)
		forbid(puzzle.Position{Row: p.Size - 1, Column: i}, puzzle.Down)
		forbid(puzzle.Position{Row: i, Column: p.Size - 1}, puzzle.Right)
	}
	return clauses
}

// EndpointShapes restricts each endpoint cell to the four one-edge
// shapes and each interior cell to the six through shapes, one clause
// per cell. Together with the at-most-one clauses of ExactlyOneShape
// this encodes "endpoints are path ends, interior cells are path-through
// segments".
// Complexity: O(Size²) time and memory.
func EndpointShapes(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	clauses := make([][]int, 0, p.Size*p.Size)
	for _, pos := range p.Positions() {
		domain := puzzle.ThroughShapes()
		if _, ok := p.IsEndpoint(pos); ok {
			domain = puzzle.EndpointShapes()
		}
		clause := make([]int, 0, len(domain))
		for _, s := range domain {
			clause = append(clause, pool.ID(atom.Flow(pos, s)))
		}
		clauses = append(clauses, clause)
	}
	return clauses
}

// EndpointColours fixes every endpoint cell to its own colour with a
// unit clause.
// Complexity: O(C) time and memory, C = number of colours.
func EndpointColours(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	clauses := make([][]int, 0, 2*p.NumColours())
	for colour, pair := range p.Endpoints {
		for _, pos := range []puzzle.Position{pair.A, pair.B} {
			clauses = append(clauses, []int{pool.ID(atom.Colour(pos, colour))})
		}
	}
	return clauses
}

// AdjacencyConsistency propagates flow links and colour identity between
// neighbours. For every cell, every in-grid direction d and every shape
// s touching d it emits:
//
//   - link symmetry: ¬flow(cell,s) ∨ ⋁ flow(neighbour,s′) over all s′
//     touching the opposite of d — a cell flowing toward its neighbour
//     forces the neighbour to flow back;
//   - colour propagation: for every colour c,
//     ¬flow(cell,s) ∨ ¬colour(cell,c) ∨ colour(neighbour,c) — flow links
//     never cross a colour boundary.
//
// Every ordered neighbour pair is covered once per direction, so both
// rules bind in both directions.
// Complexity: O(Size²·C) time and memory.
func AdjacencyConsistency(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	var clauses [][]int
	for _, pos := range p.Positions() {
		for _, d := range puzzle.Directions() {
			next := pos.Neighbour(d)
			if !next.InBounds(p.Size) {
				continue
			}
			back := d.Opposite()
			for _, s := range puzzle.Shapes() {
				if !s.Has(d) {
					continue
				}
				flowsOut := -pool.ID(atom.Flow(pos, s))
				symmetry := []int{flowsOut}
				for _, ns := range puzzle.Shapes() {
					if ns.Has(back) {
						symmetry = append(symmetry, pool.ID(atom.Flow(next, ns)))
					}
				}
				clauses = append(clauses, symmetry)
				for c := 0; c < p.NumColours(); c++ {
					clauses = append(clauses, []int{
						flowsOut,
						-pool.ID(atom.Colour(pos, c)),
						pool.ID(atom.Colour(next, c)),
					})
				}
			}
		}
	}
	return clauses
}

// Clauses returns the full static encoding of p: the concatenation of
// all six clause families. Atom ids are issued through pool on first
// use, so decoding a model against the same pool is well defined.
// Complexity: O(Size²·C²) time and memory.
func Clauses(p *puzzle.Puzzle, pool *atom.Pool) [][]int {
	var clauses [][]int
	clauses = append(clauses, BorderContainment(p, pool)...)
	clauses = append(clauses, ExactlyOneShape(p, pool)...)
	clauses = append(clauses, ExactlyOneColour(p, pool)...)
	clauses = append(clauses, EndpointShapes(p, pool)...)
	clauses = append(clauses, EndpointColours(p, pool)...)
	clauses = append(clauses, AdjacencyConsistency(p, pool)...)
	return clauses
}
