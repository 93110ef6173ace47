package solver

import (
	"pips/internal/grid"
	"pips/internal/tiles"
)

// Verify checks a placement list against the puzzle independently of any
// search: every active cell covered exactly once, every tile drawn from the
// supply at most as often as the supply holds it, and every region constraint
// satisfied by the pip values the placements assign.
func (solver *backtrackSolver) Verify(placements []grid.PlacedDomino) bool {
	if len(placements) != len(solver.puzzle.Supply) {
		return false
	}

	remaining := make(map[tiles.Domino]int, len(solver.puzzle.Supply))
	for _, domino := range solver.puzzle.Supply {
		remaining[domino]++
	}

	values := make(map[grid.Cell]int, len(solver.allCells))
	filled := make(map[grid.Cell]bool, len(solver.allCells))

	for _, placement := range placements {
		if remaining[placement.Domino] == 0 {
			return false
		}
		remaining[placement.Domino]--

		anchor, other := placement.Cells()
		for _, cell := range []grid.Cell{anchor, other} {
			if _, ok := solver.cellToRegion[cell]; !ok {
				return false
			}
			if filled[cell] {
				return false
			}
			filled[cell] = true
		}
		values[anchor] = placement.AnchorPip()
		values[other] = placement.OtherPip()
	}

	if len(filled) != len(solver.allCells) {
		return false
	}

	for i := range solver.puzzle.Regions {
		if !checkRegion(&solver.puzzle.Regions[i], solver.regionByID, values, filled, false) {
			return false
		}
	}
	return true
}
