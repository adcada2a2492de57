package solve

import (
	"github.com/katalvlaran/flowgrid/atom"
	"github.com/katalvlaran/flowgrid/puzzle"
)

// Cycles inspects a decoded solution for colour components that no
// endpoint reaches and returns one blocking clause per such component.
//
// Every cell has flow degree 1 (endpoint) or 2 (interior), so the flow
// graph decomposes into simple paths and simple cycles. Tracing from
// each endpoint marks all path cells endpoint-reachable; any cell still
// unmarked afterwards belongs to a component without an endpoint, which
// by the degree argument must be a closed cycle. Each cycle yields the
// clause "not all of these flow shapes hold simultaneously again": the
// disjunction of the negations of its flow atoms.
//
// An empty result means the solution is a genuine puzzle solution.
// Complexity: O(Size²) time and memory.
func Cycles(p *puzzle.Puzzle, pool *atom.Pool, sol puzzle.Solution) [][]int {
	visited := make(map[puzzle.Position]bool, p.Size*p.Size)
	for _, pair := range p.Endpoints {
		trace(sol, pair.A, visited)
		trace(sol, pair.B, visited)
	}

	var blocking [][]int
	for _, pos := range p.Positions() {
		if visited[pos] {
			continue
		}
		cycle := trace(sol, pos, visited)
		clause := make([]int, 0, len(cycle))
		for _, cell := range cycle {
			clause = append(clause, -pool.ID(atom.Flow(cell, sol.At(cell).Shape)))
		}
		blocking = append(blocking, clause)
	}
	return blocking
}

// trace walks the flow component containing start, marking every member
// in visited and returning the members in walk order. It follows flow
// links (both cells must flow toward each other) and stops when no
// unvisited linked neighbour remains — the far end of a path, or the
// closing of a cycle. The visited set is owned by the caller and shared
// across traces of one solution, never across solutions.
func trace(sol puzzle.Solution, start puzzle.Position, visited map[puzzle.Position]bool) []puzzle.Position {
	var component []puzzle.Position
	pos, ok := start, !visited[start]
	for ok {
		visited[pos] = true
		component = append(component, pos)
		ok = false
		for _, d := range sol.At(pos).Shape.Directions() {
			next := pos.Neighbour(d)
			if sol.Linked(pos, d) && !visited[next] {
				pos, ok = next, true
				break
			}
		}
	}
	return component
}
