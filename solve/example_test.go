package solve_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/flowgrid/puzzle"
	"github.com/katalvlaran/flowgrid/render"
	"github.com/katalvlaran/flowgrid/solve"
)

// ExampleSolve solves the 2×2 puzzle with one colour per row; its
// solution is unique, two horizontal paths.
func ExampleSolve() {
	p, err := puzzle.New(2, []puzzle.EndpointPair{
		{A: puzzle.Position{Row: 0, Column: 0}, B: puzzle.Position{Row: 0, Column: 1}},
		{A: puzzle.Position{Row: 1, Column: 0}, B: puzzle.Position{Row: 1, Column: 1}},
	})
	if err != nil {
		fmt.Println("puzzle:", err)
		return
	}
	solution, err := solve.Solve(p, solve.DefaultOptions())
	if err != nil {
		fmt.Println("solve:", err)
		return
	}
	_ = render.Solution(os.Stdout, solution)
	// Output:
	// ╺╸
	// ╺╸
}
