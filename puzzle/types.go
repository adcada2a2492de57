// Package puzzle defines core value types and sentinel errors for square
// connection puzzles. See doc.go for the package overview.
package puzzle

import "errors"

// Sentinel errors for puzzle construction and parsing.
var (
	// ErrGridSize indicates a non-positive grid size.
	ErrGridSize = errors.New("puzzle: grid size must be at least 1")
	// ErrNoColours indicates an empty endpoint sequence.
	ErrNoColours = errors.New("puzzle: at least one endpoint pair is required")
	// ErrEndpointOutOfBounds indicates an endpoint outside the grid.
	ErrEndpointOutOfBounds = errors.New("puzzle: endpoint position outside the grid")
	// ErrDuplicateEndpoint indicates two endpoints occupying the same cell.
	ErrDuplicateEndpoint = errors.New("puzzle: duplicate endpoint position")
	// ErrNotSquare indicates a parsed grid whose rows do not match its row count.
	ErrNotSquare = errors.New("puzzle: grid must be square")
	// ErrUnpairedLabel indicates a colour label that does not appear exactly twice.
	ErrUnpairedLabel = errors.New("puzzle: every colour label must appear exactly twice")
)

// Direction identifies one of the four edges of a grid cell.
// Directions combine into Shapes; use Shape.Has to test membership.
type Direction uint8

const (
	// Up points toward row-1.
	Up Direction = 1 << iota
	// Left points toward column-1.
	Left
	// Down points toward row+1.
	Down
	// Right points toward column+1.
	Right
)

// Directions lists the four edge directions in declaration order.
// The slice is freshly allocated on each call; callers may mutate it.
func Directions() []Direction {
	return []Direction{Up, Left, Down, Right}
}

// Opposite returns the direction pointing back at the caller:
// Up↔Down, Left↔Right.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Offset returns the (row, column) delta of one step in direction d.
func (d Direction) Offset() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

// String implements fmt.Stringer for diagnostics and test failure output.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Right:
		return "Right"
	default:
		return "Direction(?)"
	}
}

// Shape is the flow pattern of a single cell: the set of cell edges its
// path touches. The domain is closed over exactly ten values — the four
// one-edge endpoint shapes and the six two-edge through shapes. Zero,
// three and four touched edges never occur: a cell participates in a
// path with degree one (endpoint) or two (interior) by construction.
type Shape uint8

const (
	// ShapeUp is the endpoint shape touching only the upper edge.
	ShapeUp = Shape(Up)
	// ShapeLeft is the endpoint shape touching only the left edge.
	ShapeLeft = Shape(Left)
	// ShapeDown is the endpoint shape touching only the lower edge.
	ShapeDown = Shape(Down)
	// ShapeRight is the endpoint shape touching only the right edge.
	ShapeRight = Shape(Right)
	// ShapeUpLeft is the through shape bending between upper and left edges.
	ShapeUpLeft = Shape(Up | Left)
	// ShapeUpDown is the vertical through shape.
	ShapeUpDown = Shape(Up | Down)
	// ShapeUpRight is the through shape bending between upper and right edges.
	ShapeUpRight = Shape(Up | Right)
	// ShapeLeftDown is the through shape bending between left and lower edges.
	ShapeLeftDown = Shape(Left | Down)
	// ShapeLeftRight is the horizontal through shape.
	ShapeLeftRight = Shape(Left | Right)
	// ShapeDownRight is the through shape bending between lower and right edges.
	ShapeDownRight = Shape(Down | Right)
)

// EndpointShapes lists the four one-edge shapes permitted on endpoint cells.
// The slice is freshly allocated on each call; callers may mutate it.
func EndpointShapes() []Shape {
	return []Shape{ShapeUp, ShapeLeft, ShapeDown, ShapeRight}
}

// ThroughShapes lists the six two-edge shapes permitted on interior cells.
// The slice is freshly allocated on each call; callers may mutate it.
func ThroughShapes() []Shape {
	return []Shape{
		ShapeUpLeft, ShapeUpDown, ShapeUpRight,
		ShapeLeftDown, ShapeLeftRight, ShapeDownRight,
	}
}

// Shapes lists the full ten-value shape domain: endpoint shapes first,
// then through shapes. The slice is freshly allocated on each call.
func Shapes() []Shape {
	return append(EndpointShapes(), ThroughShapes()...)
}

// Has reports whether shape s touches edge direction d.
// Complexity: O(1).
func (s Shape) Has(d Direction) bool {
	return s&Shape(d) != 0
}

// Degree returns the number of edges s touches: 1 for endpoint shapes,
// 2 for through shapes.
func (s Shape) Degree() int {
	n := 0
	for _, d := range Directions() {
		if s.Has(d) {
			n++
		}
	}
	return n
}

// Directions returns the edge directions s touches, in Up, Left, Down,
// Right order.
func (s Shape) Directions() []Direction {
	out := make([]Direction, 0, 2)
	for _, d := range Directions() {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// String implements fmt.Stringer, e.g. "Up|Down" for ShapeUpDown.
func (s Shape) String() string {
	if s == 0 {
		return "Shape(0)"
	}
	out := ""
	for _, d := range s.Directions() {
		if out != "" {
			out += "|"
		}
		out += d.String()
	}
	return out
}
