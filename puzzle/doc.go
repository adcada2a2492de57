// Package puzzle defines the data model for square connection puzzles:
// a grid in which every colour owns exactly two terminal cells and a
// solution threads one unbroken path per colour through the grid.
//
// What:
//
//   - Direction: one of the four edge directions of a cell (Up, Left, Down, Right).
//   - Shape: the closed ten-value set of flow shapes a solved cell may take —
//     four one-way endpoint shapes and six two-way through shapes.
//   - Position: a (row, column) cell coordinate, comparable by value.
//   - Puzzle: grid size plus one ordered endpoint pair per colour.
//   - Tile / Solution: the per-cell (shape, colour) decode of a solved grid.
//   - Parse / Load: read a puzzle definition from a YAML or JSON grid of
//     nullable colour labels.
//
// Why:
//
//   - The solver pipeline (encode → solve → decode → check) shares these
//     value types; keeping them pure and immutable keeps every stage testable
//     in isolation.
//
// Errors:
//
//   - ErrGridSize: grid size is not positive.
//   - ErrNoColours: the endpoint sequence is empty.
//   - ErrEndpointOutOfBounds: an endpoint lies outside the grid.
//   - ErrDuplicateEndpoint: two endpoints share a cell.
//   - ErrNotSquare: a parsed grid row differs in length from the row count.
//   - ErrUnpairedLabel: a parsed colour label appears once or more than twice.
package puzzle
