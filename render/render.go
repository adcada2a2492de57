package render

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/flowgrid/puzzle"
)

// endpointMark is the glyph drawn for endpoint cells of an unsolved puzzle.
const endpointMark = '●'

// palette cycles over colour indices; puzzles rarely exceed sixteen colours.
var palette = []*color.Color{
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
	color.New(color.FgWhite),
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgHiWhite),
}

// Glyph returns the box-drawing rune for a flow shape:
// ╹╸╻╺ for the four endpoint shapes, ┛┃┗┓━┏ for the six through shapes.
func Glyph(s puzzle.Shape) rune {
	switch s {
	case puzzle.ShapeUp:
		return '╹'
	case puzzle.ShapeLeft:
		return '╸'
	case puzzle.ShapeDown:
		return '╻'
	case puzzle.ShapeRight:
		return '╺'
	case puzzle.ShapeUpLeft:
		return '┛'
	case puzzle.ShapeUpDown:
		return '┃'
	case puzzle.ShapeUpRight:
		return '┗'
	case puzzle.ShapeLeftDown:
		return '┓'
	case puzzle.ShapeLeftRight:
		return '━'
	case puzzle.ShapeDownRight:
		return '┏'
	default:
		return '?'
	}
}

// Solution writes sol to w, one row per line, colouring each shape glyph
// by its cell's colour index when w is a terminal.
// Complexity: O(Size²).
func Solution(w io.Writer, sol puzzle.Solution) error {
	coloured := terminal(w)
	for _, row := range sol {
		for _, tile := range row {
			if err := writeCell(w, Glyph(tile.Shape), tile.Colour, coloured); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Puzzle writes the unsolved grid of p to w: a coloured endpoint mark per
// terminal cell, a space elsewhere.
// Complexity: O(Size²).
func Puzzle(w io.Writer, p *puzzle.Puzzle) error {
	coloured := terminal(w)
	for row := 0; row < p.Size; row++ {
		for column := 0; column < p.Size; column++ {
			pos := puzzle.Position{Row: row, Column: column}
			colour, ok := p.IsEndpoint(pos)
			if !ok {
				if _, err := fmt.Fprint(w, " "); err != nil {
					return err
				}
				continue
			}
			if err := writeCell(w, endpointMark, colour, coloured); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// writeCell writes one glyph, wrapped in the colour's ANSI sequence when
// colouring is on.
func writeCell(w io.Writer, glyph rune, colour int, coloured bool) error {
	var err error
	if coloured {
		_, err = palette[colour%len(palette)].Fprint(w, string(glyph))
	} else {
		_, err = fmt.Fprint(w, string(glyph))
	}
	return err
}

// terminal reports whether w is an interactive terminal with colour
// output not globally disabled (NO_COLOR, see fatih/color).
func terminal(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)

	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
