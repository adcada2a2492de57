package puzzle

// Position is a grid cell coordinate. It is a comparable value type and
// may be used directly as a map key.
type Position struct {
	Row, Column int
}

// Neighbour returns the position one step from p in direction d.
// The result may lie outside the grid; use InBounds to check.
// Complexity: O(1).
func (p Position) Neighbour(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Column: p.Column + dc}
}

// InBounds reports whether p lies within a size×size grid.
// Complexity: O(1).
func (p Position) InBounds(size int) bool {
	return p.Row >= 0 && p.Row < size && p.Column >= 0 && p.Column < size
}

// EndpointPair holds the two terminal cells of one colour.
type EndpointPair struct {
	A, B Position
}

// Puzzle is an immutable puzzle definition: a square grid of Size×Size
// cells and one endpoint pair per colour. The colour index of a pair is
// its position in Endpoints.
type Puzzle struct {
	// Size is the edge length of the square grid.
	Size int
	// Endpoints holds one terminal pair per colour, ordered by colour index.
	Endpoints []EndpointPair

	// endpointColour maps each endpoint position to its colour index.
	endpointColour map[Position]int
}

// New constructs a validated Puzzle.
//
// Validation (resolving what the raw format leaves unspecified — reject at
// construction rather than produce undefined results):
//
//   - size ≥ 1, else ErrGridSize.
//   - at least one colour, else ErrNoColours.
//   - every endpoint inside the grid, else ErrEndpointOutOfBounds.
//   - all endpoint positions pairwise distinct, else ErrDuplicateEndpoint.
//
// The endpoint slice is copied; callers may reuse their argument.
// Complexity: O(C) time and memory, C = number of colours.
func New(size int, endpoints []EndpointPair) (*Puzzle, error) {
	if size < 1 {
		return nil, ErrGridSize
	}
	if len(endpoints) == 0 {
		return nil, ErrNoColours
	}
	byPos := make(map[Position]int, 2*len(endpoints))
	for colour, pair := range endpoints {
		for _, pos := range []Position{pair.A, pair.B} {
			if !pos.InBounds(size) {
				return nil, ErrEndpointOutOfBounds
			}
			if _, taken := byPos[pos]; taken {
				return nil, ErrDuplicateEndpoint
			}
			byPos[pos] = colour
		}
	}
	pairs := make([]EndpointPair, len(endpoints))
	copy(pairs, endpoints)

	return &Puzzle{Size: size, Endpoints: pairs, endpointColour: byPos}, nil
}

// NumColours returns the number of colours in the puzzle.
func (p *Puzzle) NumColours() int {
	return len(p.Endpoints)
}

// IsEndpoint reports whether pos is a terminal cell and, if so, the
// colour index it belongs to.
// Complexity: O(1).
func (p *Puzzle) IsEndpoint(pos Position) (colour int, ok bool) {
	colour, ok = p.endpointColour[pos]
	return colour, ok
}

// Positions returns every cell of the grid in row-major order.
// Complexity: O(Size²) time and memory.
func (p *Puzzle) Positions() []Position {
	out := make([]Position, 0, p.Size*p.Size)
	for row := 0; row < p.Size; row++ {
		for column := 0; column < p.Size; column++ {
			out = append(out, Position{Row: row, Column: column})
		}
	}
	return out
}
