package puzzle_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/flowgrid/puzzle"
)

//----------------------------------------------------------------------------//
// Direction and Shape Tests
//----------------------------------------------------------------------------//

// TestDirectionOpposite verifies the four direction inversions.
func TestDirectionOpposite(t *testing.T) {
	cases := []struct{ d, want puzzle.Direction }{
		{puzzle.Up, puzzle.Down},
		{puzzle.Down, puzzle.Up},
		{puzzle.Left, puzzle.Right},
		{puzzle.Right, puzzle.Left},
	}
	for _, tc := range cases {
		if got := tc.d.Opposite(); got != tc.want {
			t.Errorf("%s.Opposite() = %s; want %s", tc.d, got, tc.want)
		}
	}
}

// TestDirectionOffset verifies the row/column deltas of each direction.
func TestDirectionOffset(t *testing.T) {
	cases := []struct {
		d      puzzle.Direction
		dr, dc int
	}{
		{puzzle.Up, -1, 0},
		{puzzle.Down, 1, 0},
		{puzzle.Left, 0, -1},
		{puzzle.Right, 0, 1},
	}
	for _, tc := range cases {
		dr, dc := tc.d.Offset()
		if dr != tc.dr || dc != tc.dc {
			t.Errorf("%s.Offset() = (%d,%d); want (%d,%d)", tc.d, dr, dc, tc.dr, tc.dc)
		}
	}
}

// TestShapeDomain checks the closed ten-value shape domain and the
// degree invariant of its two halves.
func TestShapeDomain(t *testing.T) {
	if got := len(puzzle.Shapes()); got != 10 {
		t.Fatalf("len(Shapes()) = %d; want 10", got)
	}
	for _, s := range puzzle.EndpointShapes() {
		if s.Degree() != 1 {
			t.Errorf("endpoint shape %s has degree %d; want 1", s, s.Degree())
		}
	}
	for _, s := range puzzle.ThroughShapes() {
		if s.Degree() != 2 {
			t.Errorf("through shape %s has degree %d; want 2", s, s.Degree())
		}
	}
	// All ten values are distinct.
	seen := map[puzzle.Shape]bool{}
	for _, s := range puzzle.Shapes() {
		if seen[s] {
			t.Errorf("shape %s appears twice in Shapes()", s)
		}
		seen[s] = true
	}
}

// TestShapeHas spot-checks edge containment.
func TestShapeHas(t *testing.T) {
	if !puzzle.ShapeUpLeft.Has(puzzle.Up) || !puzzle.ShapeUpLeft.Has(puzzle.Left) {
		t.Error("ShapeUpLeft should touch Up and Left")
	}
	if puzzle.ShapeUpLeft.Has(puzzle.Down) || puzzle.ShapeUpLeft.Has(puzzle.Right) {
		t.Error("ShapeUpLeft should not touch Down or Right")
	}
	if !puzzle.ShapeDown.Has(puzzle.Down) {
		t.Error("ShapeDown should touch Down")
	}
}

//----------------------------------------------------------------------------//
// Position Tests
//----------------------------------------------------------------------------//

// TestPositionNeighbour verifies single steps in all four directions.
func TestPositionNeighbour(t *testing.T) {
	origin := puzzle.Position{Row: 1, Column: 1}
	cases := []struct {
		d    puzzle.Direction
		want puzzle.Position
	}{
		{puzzle.Up, puzzle.Position{Row: 0, Column: 1}},
		{puzzle.Down, puzzle.Position{Row: 2, Column: 1}},
		{puzzle.Left, puzzle.Position{Row: 1, Column: 0}},
		{puzzle.Right, puzzle.Position{Row: 1, Column: 2}},
	}
	for _, tc := range cases {
		if got := origin.Neighbour(tc.d); got != tc.want {
			t.Errorf("Neighbour(%s) = %v; want %v", tc.d, got, tc.want)
		}
	}
}

// TestPositionInBounds checks boundary cells of a 3×3 grid.
func TestPositionInBounds(t *testing.T) {
	in := []puzzle.Position{{Row: 0, Column: 0}, {Row: 2, Column: 2}, {Row: 1, Column: 2}}
	for _, pos := range in {
		if !pos.InBounds(3) {
			t.Errorf("InBounds(%v, 3) = false; want true", pos)
		}
	}
	out := []puzzle.Position{{Row: -1, Column: 0}, {Row: 3, Column: 0}, {Row: 0, Column: 3}}
	for _, pos := range out {
		if pos.InBounds(3) {
			t.Errorf("InBounds(%v, 3) = true; want false", pos)
		}
	}
}

//----------------------------------------------------------------------------//
// Puzzle Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects malformed definitions.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name      string
		size      int
		endpoints []puzzle.EndpointPair
		err       error
	}{
		{"ZeroSize", 0, []puzzle.EndpointPair{{A: puzzle.Position{}, B: puzzle.Position{}}}, puzzle.ErrGridSize},
		{"NoColours", 3, nil, puzzle.ErrNoColours},
		{
			"OutOfBounds", 2,
			[]puzzle.EndpointPair{{A: puzzle.Position{Row: 0, Column: 0}, B: puzzle.Position{Row: 2, Column: 0}}},
			puzzle.ErrEndpointOutOfBounds,
		},
		{
			"DuplicateWithinPair", 2,
			[]puzzle.EndpointPair{{A: puzzle.Position{Row: 0, Column: 0}, B: puzzle.Position{Row: 0, Column: 0}}},
			puzzle.ErrDuplicateEndpoint,
		},
		{
			"DuplicateAcrossColours", 2,
			[]puzzle.EndpointPair{
				{A: puzzle.Position{Row: 0, Column: 0}, B: puzzle.Position{Row: 0, Column: 1}},
				{A: puzzle.Position{Row: 1, Column: 0}, B: puzzle.Position{Row: 0, Column: 1}},
			},
			puzzle.ErrDuplicateEndpoint,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := puzzle.New(tc.size, tc.endpoints)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d, %v) error = %v; want %v", tc.size, tc.endpoints, err, tc.err)
			}
		})
	}
}

// TestPuzzleAccessors checks NumColours, IsEndpoint and Positions on a
// valid 2×2 puzzle.
func TestPuzzleAccessors(t *testing.T) {
	p, err := puzzle.New(2, []puzzle.EndpointPair{
		{A: puzzle.Position{Row: 0, Column: 0}, B: puzzle.Position{Row: 0, Column: 1}},
		{A: puzzle.Position{Row: 1, Column: 0}, B: puzzle.Position{Row: 1, Column: 1}},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if p.NumColours() != 2 {
		t.Errorf("NumColours() = %d; want 2", p.NumColours())
	}
	if colour, ok := p.IsEndpoint(puzzle.Position{Row: 1, Column: 0}); !ok || colour != 1 {
		t.Errorf("IsEndpoint(1,0) = (%d,%v); want (1,true)", colour, ok)
	}
	if _, ok := p.IsEndpoint(puzzle.Position{Row: 5, Column: 5}); ok {
		t.Error("IsEndpoint(5,5) = true; want false")
	}
	positions := p.Positions()
	if len(positions) != 4 {
		t.Fatalf("len(Positions()) = %d; want 4", len(positions))
	}
	if positions[0] != (puzzle.Position{Row: 0, Column: 0}) || positions[3] != (puzzle.Position{Row: 1, Column: 1}) {
		t.Errorf("Positions() not row-major: %v", positions)
	}
}

//----------------------------------------------------------------------------//
// Solution Tests
//----------------------------------------------------------------------------//

// TestSolutionLinked verifies link detection, including asymmetric and
// off-grid cases.
func TestSolutionLinked(t *testing.T) {
	sol := puzzle.Solution{
		{
			{Shape: puzzle.ShapeRight, Colour: 0},
			{Shape: puzzle.ShapeLeftDown, Colour: 0},
		},
		{
			{Shape: puzzle.ShapeRight, Colour: 1},
			{Shape: puzzle.ShapeUp, Colour: 0},
		},
	}
	if !sol.Linked(puzzle.Position{Row: 0, Column: 0}, puzzle.Right) {
		t.Error("(0,0)→Right should be linked")
	}
	if !sol.Linked(puzzle.Position{Row: 0, Column: 1}, puzzle.Down) {
		t.Error("(0,1)→Down should be linked")
	}
	// (1,0) flows Right but (1,1) does not flow Left back.
	if sol.Linked(puzzle.Position{Row: 1, Column: 0}, puzzle.Right) {
		t.Error("(1,0)→Right should not be linked without a reverse edge")
	}
	// Off-grid direction is never linked.
	if sol.Linked(puzzle.Position{Row: 0, Column: 0}, puzzle.Up) {
		t.Error("(0,0)→Up points off-grid and should not be linked")
	}
}
