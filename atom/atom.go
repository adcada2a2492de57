package atom

import (
	"fmt"

	"github.com/katalvlaran/flowgrid/puzzle"
)

// Kind discriminates the two atom variants.
type Kind uint8

const (
	// KindFlow marks an atom asserting a cell's flow shape.
	KindFlow Kind = iota
	// KindColour marks an atom asserting a cell's colour.
	KindColour
)

// Atom is one propositional variable of the puzzle encoding. It is a
// comparable value: two atoms built from the same arguments are equal
// and map to the same pool id. The Kind tag selects which payload field
// is meaningful — Shape for KindFlow, Colour for KindColour; the unused
// field stays zero.
type Atom struct {
	Kind   Kind
	Pos    puzzle.Position
	Shape  puzzle.Shape
	Colour int
}

// Flow returns the atom "cell pos takes flow shape s".
func Flow(pos puzzle.Position, s puzzle.Shape) Atom {
	return Atom{Kind: KindFlow, Pos: pos, Shape: s}
}

// Colour returns the atom "cell pos holds colour c".
func Colour(pos puzzle.Position, c int) Atom {
	return Atom{Kind: KindColour, Pos: pos, Colour: c}
}

// String implements fmt.Stringer for diagnostics and test failure output.
func (a Atom) String() string {
	if a.Kind == KindFlow {
		return fmt.Sprintf("flow(%d,%d;%s)", a.Pos.Row, a.Pos.Column, a.Shape)
	}
	return fmt.Sprintf("colour(%d,%d;%d)", a.Pos.Row, a.Pos.Column, a.Colour)
}
