package solver

import (
	"strconv"
	"strings"

	"pips/internal/grid"
	"pips/internal/tiles"
)

type backtrackSolver struct {
	puzzle       *grid.Puzzle
	maxSolutions int

	//** Lookup structures, built once per puzzle
	cellToRegion map[grid.Cell]int
	regionByID   map[int]*grid.Region
	allCells     []grid.Cell // deterministic traversal and signature order

	//** Per-search state, owned exclusively by the active call chain
	values map[grid.Cell]int
	filled map[grid.Cell]bool
	used   []bool // indexed by supply position, so duplicate tiles stay distinct
	placed []grid.PlacedDomino

	solutions [][]grid.PlacedDomino
	seen      map[string]bool
}

func newBacktrackSolver(puzzle *grid.Puzzle, maxSolutions int) *backtrackSolver {
	solver := &backtrackSolver{
		puzzle:       puzzle,
		maxSolutions: maxSolutions,
		cellToRegion: make(map[grid.Cell]int),
		regionByID:   make(map[int]*grid.Region, len(puzzle.Regions)),
	}

	for i := range puzzle.Regions {
		region := &puzzle.Regions[i]
		solver.regionByID[region.ID] = region
		for _, cell := range region.Cells {
			solver.cellToRegion[cell] = region.ID
		}
	}
	solver.allCells = puzzle.ActiveCells()

	return solver
}

func (solver *backtrackSolver) Solve() int {
	solver.solutions = nil
	solver.seen = make(map[string]bool)
	solver.values = make(map[grid.Cell]int, len(solver.allCells))
	solver.filled = make(map[grid.Cell]bool, len(solver.allCells))
	solver.used = make([]bool, len(solver.puzzle.Supply))
	solver.placed = solver.placed[:0]

	// An infeasible supply size is an ordinary empty result, not an error.
	if len(solver.puzzle.Supply)*2 != len(solver.allCells) {
		return 0
	}

	solver.backtrack()
	return len(solver.solutions)
}

func (solver *backtrackSolver) backtrack() {
	if len(solver.solutions) >= solver.maxSolutions {
		return
	}

	if len(solver.filled) == len(solver.allCells) {
		solver.recordIfNew()
		return
	}

	cell, ok := solver.chooseCell()
	if !ok {
		return
	}

	for tileIndex, domino := range solver.puzzle.Supply {
		if solver.used[tileIndex] {
			continue
		}

		for _, adj := range cell.Neighbors() {
			if solver.filled[adj] {
				continue
			}
			// Both cells must belong to some region; they may belong to
			// different ones, since constraints are evaluated per region.
			if _, ok := solver.cellToRegion[adj]; !ok {
				continue
			}

			orientations := [][2]int{{domino.Low(), domino.High()}}
			if !domino.IsDouble() {
				orientations = append(orientations, [2]int{domino.High(), domino.Low()})
			}

			for _, pips := range orientations {
				solver.values[cell], solver.values[adj] = pips[0], pips[1]
				solver.filled[cell], solver.filled[adj] = true, true

				if solver.touchedRegionsValid(cell, adj) {
					solver.used[tileIndex] = true
					solver.placed = append(solver.placed, placementFor(domino, cell, adj, pips[0]))

					solver.backtrack()

					solver.placed = solver.placed[:len(solver.placed)-1]
					solver.used[tileIndex] = false
				}

				delete(solver.values, cell)
				delete(solver.values, adj)
				delete(solver.filled, cell)
				delete(solver.filled, adj)

				if len(solver.solutions) >= solver.maxSolutions {
					return
				}
			}
		}
	}
}

// chooseCell picks the next unfilled cell with the minimum-remaining-values
// heuristic: the cell whose owning region has the fewest unfilled cells. Ties
// break by the deterministic active-cell order.
func (solver *backtrackSolver) chooseCell() (grid.Cell, bool) {
	best := grid.Cell{}
	bestCount := -1

	for _, cell := range solver.allCells {
		if solver.filled[cell] {
			continue
		}
		region := solver.regionByID[solver.cellToRegion[cell]]
		count := 0
		for _, c := range region.Cells {
			if !solver.filled[c] {
				count++
			}
		}
		if bestCount == -1 || count < bestCount {
			best, bestCount = cell, count
		}
	}

	return best, bestCount != -1
}

// touchedRegionsValid checks, with partial evaluation allowed, every region
// containing either of the two freshly assigned cells.
func (solver *backtrackSolver) touchedRegionsValid(cell, adj grid.Cell) bool {
	first := solver.cellToRegion[cell]
	second := solver.cellToRegion[adj]

	if !solver.checkConstraint(solver.regionByID[first], true) {
		return false
	}
	if second != first && !solver.checkConstraint(solver.regionByID[second], true) {
		return false
	}
	return true
}

// recordIfNew re-validates every region with partial evaluation disabled; this
// re-check is what judges constraints that only become decidable once both
// sides are complete. A validated assignment is recorded unless its signature
// was already seen on another branch.
func (solver *backtrackSolver) recordIfNew() {
	for i := range solver.puzzle.Regions {
		if !solver.checkConstraint(&solver.puzzle.Regions[i], false) {
			return
		}
	}

	signature := solver.signature()
	if solver.seen[signature] {
		return
	}
	solver.seen[signature] = true

	solution := make([]grid.PlacedDomino, len(solver.placed))
	copy(solution, solver.placed)
	solver.solutions = append(solver.solutions, solution)
}

// signature encodes the complete cell-to-pip-value mapping over the
// deterministic cell order. Identical assignments reached via different
// tile-usage orders produce identical signatures.
func (solver *backtrackSolver) signature() string {
	var builder strings.Builder
	for _, cell := range solver.allCells {
		builder.WriteString(strconv.Itoa(solver.values[cell]))
		builder.WriteByte(',')
	}
	return builder.String()
}

// placementFor normalizes an assigned cell pair into a placement anchored at
// the top-left cell of the pair. cellPip is the pip value assigned to cell;
// the placement is flipped when the high pip ends up on the anchor, so the
// recorded placement denotes exactly the assignment that was searched.
func placementFor(domino tiles.Domino, cell, adj grid.Cell, cellPip int) grid.PlacedDomino {
	anchor := cell
	orientation := grid.Vertical
	if cell.Row == adj.Row {
		orientation = grid.Horizontal
		if adj.Col < cell.Col {
			anchor = adj
		}
	} else if adj.Row < cell.Row {
		anchor = adj
	}

	anchorPip := cellPip
	if anchor != cell {
		anchorPip = domino.Pips() - cellPip
	}

	return grid.PlacedDomino{
		Domino:      domino,
		Row:         anchor.Row,
		Col:         anchor.Col,
		Orientation: orientation,
		Flipped:     !domino.IsDouble() && anchorPip == domino.High(),
	}
}

func (solver *backtrackSolver) Solution() []grid.PlacedDomino {
	if len(solver.solutions) == 0 {
		return nil
	}
	return solver.solutions[0]
}

func (solver *backtrackSolver) Solutions() [][]grid.PlacedDomino {
	return solver.solutions
}

func (solver *backtrackSolver) IsUnique() bool {
	return len(solver.solutions) == 1
}
