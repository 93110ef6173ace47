// Package solver implements the backtracking search that places a puzzle's
// full domino supply onto its board so that every region constraint holds.
package solver

import "pips/internal/grid"

type Solver interface {
	// Solve runs the search and returns the number of distinct solutions
	// found, up to the configured cap. Distinctness is judged by the complete
	// cell-to-pip-value assignment, so the same assignment reached through a
	// different tile order is counted once.
	Solve() int

	// Solution returns the first discovered solution, or nil if Solve found
	// none (or has not run).
	Solution() []grid.PlacedDomino

	// Solutions returns every recorded solution in discovery order.
	Solutions() [][]grid.PlacedDomino

	// IsUnique reports whether the search recorded exactly one solution.
	IsUnique() bool

	// Verify reports whether a placement list is a legal tiling of the
	// puzzle's board that satisfies every region constraint.
	Verify(placements []grid.PlacedDomino) bool
}

// New builds a solver for the puzzle with the given solution cap. The cap
// bounds search cost: deciding uniqueness only needs maxSolutions = 2.
func New(puzzle *grid.Puzzle, maxSolutions int) Solver {
	return newBacktrackSolver(puzzle, maxSolutions)
}

// IsUnique is the convenience check for generator acceptance: solve with a cap
// of 2 and require exactly one solution.
func IsUnique(puzzle *grid.Puzzle) bool {
	solver := New(puzzle, 2)
	return solver.Solve() == 1
}
