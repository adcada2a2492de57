package puzzle

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Parse reads a puzzle definition from a YAML (or JSON — a YAML subset)
// document: a square grid of nullable colour labels, one list per row.
// A labelled cell is an endpoint; a null cell is empty. For example:
//
//	- [0, 0, null]
//	- [null, 1, null]
//	- [1, null, null]
//
// Colour indices are assigned by order of first label appearance in
// row-major order, so labels need not be contiguous or sorted.
//
// Returns ErrNotSquare if any row length differs from the row count,
// ErrUnpairedLabel if a label does not appear exactly twice, and any
// validation error from New.
// Complexity: O(Size²) time and memory.
func Parse(data []byte) (*Puzzle, error) {
	var grid [][]*int
	if err := yaml.Unmarshal(data, &grid); err != nil {
		return nil, fmt.Errorf("puzzle: decoding grid: %w", err)
	}
	size := len(grid)
	for _, row := range grid {
		if len(row) != size {
			return nil, ErrNotSquare
		}
	}

	// Pair labels by first and second occurrence, assigning colour
	// indices in order of first appearance.
	colourOf := make(map[int]int)
	var pairs []EndpointPair
	seen := make([]int, 0, len(grid))
	for r, row := range grid {
		for c, label := range row {
			if label == nil {
				continue
			}
			pos := Position{Row: r, Column: c}
			colour, ok := colourOf[*label]
			if !ok {
				colourOf[*label] = len(pairs)
				pairs = append(pairs, EndpointPair{A: pos, B: pos})
				seen = append(seen, 1)
				continue
			}
			if seen[colour] == 2 {
				return nil, fmt.Errorf("%w: label %d appears more than twice", ErrUnpairedLabel, *label)
			}
			pairs[colour].B = pos
			seen[colour] = 2
		}
	}
	for label, colour := range colourOf {
		if seen[colour] != 2 {
			return nil, fmt.Errorf("%w: label %d appears once", ErrUnpairedLabel, label)
		}
	}

	return New(size, pairs)
}

// Load reads and parses a puzzle definition file. See Parse for the format.
func Load(path string) (*Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: reading %s: %w", path, err)
	}
	return Parse(data)
}
