// Package render draws puzzles and solutions on a terminal.
//
// What:
//
//   - Glyph: the box-drawing rune for each of the ten flow shapes.
//   - Solution: writes a solved grid, one coloured glyph per cell.
//   - Puzzle: writes an unsolved grid, marking endpoints with coloured ●.
//
// Colour output uses ANSI escapes via fatih/color and is enabled only
// when the destination is a terminal (and NO_COLOR is unset); any other
// writer receives plain runes. Rendering is display only — it never
// feeds back into solving.
package render
