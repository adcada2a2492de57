package puzzle

// Tile is the decoded state of a single solved cell: the flow shape the
// cell's path takes through it, and the colour that occupies it.
type Tile struct {
	Shape  Shape
	Colour int
}

// Solution is a row-major Size×Size grid of Tiles, produced once per
// successful solve and never mutated afterwards.
type Solution [][]Tile

// Size returns the edge length of the solution grid.
func (s Solution) Size() int {
	return len(s)
}

// At returns the tile at pos. pos must be within the grid.
// Complexity: O(1).
func (s Solution) At(pos Position) Tile {
	return s[pos.Row][pos.Column]
}

// Linked reports whether the cell at pos flows toward direction d and the
// neighbouring cell in that direction flows back. Positions whose
// neighbour lies outside the grid are never linked.
// Complexity: O(1).
func (s Solution) Linked(pos Position, d Direction) bool {
	if !s.At(pos).Shape.Has(d) {
		return false
	}
	next := pos.Neighbour(d)
	if !next.InBounds(s.Size()) {
		return false
	}
	return s.At(next).Shape.Has(d.Opposite())
}
