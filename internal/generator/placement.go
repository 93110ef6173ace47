package generator

import (
	"github.com/samber/lo"

	"pips/internal/grid"
	"pips/internal/tiles"
)

// PlaceDominoes tiles a rows x cols board with the given dominoes using
// backtracking over the first empty cell. It returns nil when the tile count
// does not match half the cell count or no legal tiling exists; both are
// ordinary empty results.
//
// Tiles are placed in the order given, low pip on the anchor cell, so the
// realized pip assignment is deterministic for a fixed domino order.
func PlaceDominoes(dominoes tiles.DominoSet, rows, cols int) []grid.PlacedDomino {
	if len(dominoes)*2 != rows*cols {
		return nil
	}

	occupied := make(map[grid.Cell]bool, rows*cols)
	placements := make([]grid.PlacedDomino, 0, len(dominoes))

	var backtrack func(index int) bool
	backtrack = func(index int) bool {
		if index == len(dominoes) {
			return true
		}
		domino := dominoes[index]

		// The first empty cell in row-major order must be covered by this
		// tile or one of its successors; if neither orientation fits, the
		// branch is dead.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := grid.Cell{Row: r, Col: c}
				if occupied[cell] {
					continue
				}

				right := grid.Cell{Row: r, Col: c + 1}
				if c+1 < cols && !occupied[right] {
					occupied[cell], occupied[right] = true, true
					placements = append(placements, grid.PlacedDomino{
						Domino: domino, Row: r, Col: c, Orientation: grid.Horizontal,
					})

					if backtrack(index + 1) {
						return true
					}

					placements = placements[:len(placements)-1]
					delete(occupied, cell)
					delete(occupied, right)
				}

				below := grid.Cell{Row: r + 1, Col: c}
				if r+1 < rows && !occupied[below] {
					occupied[cell], occupied[below] = true, true
					placements = append(placements, grid.PlacedDomino{
						Domino: domino, Row: r, Col: c, Orientation: grid.Vertical,
					})

					if backtrack(index + 1) {
						return true
					}

					placements = placements[:len(placements)-1]
					delete(occupied, cell)
					delete(occupied, below)
				}

				return false
			}
		}
		return false
	}

	if !backtrack(0) {
		return nil
	}
	return placements
}

// PipAt returns the pip value a placement list assigns to a cell, or -1 if no
// placement covers it.
func PipAt(placements []grid.PlacedDomino, cell grid.Cell) int {
	for _, placement := range placements {
		anchor, other := placement.Cells()
		switch cell {
		case anchor:
			return placement.AnchorPip()
		case other:
			return placement.OtherPip()
		}
	}
	return -1
}

// RegionPipSum sums the realized pip values of the given cells under a
// placement list.
func RegionPipSum(placements []grid.PlacedDomino, cells []grid.Cell) int {
	return lo.SumBy(cells, func(cell grid.Cell) int { return PipAt(placements, cell) })
}
