package generator

import (
	"math/rand"

	"pips/internal/grid"
	"pips/internal/solver"
	"pips/internal/tiles"
)

// certifyCap is the solver's solution cap during certification. Anything past
// the second solution is irrelevant; the third only distinguishes "2" from
// "many" in the statistics.
const certifyCap = 3

// TryTemplate attempts one candidate: realize a tiling of the board with the
// given dominoes, derive each region's constraint from it (Sum regions get the
// realized sum, Less/Greater regions link to the next region in the chain),
// and certify the resulting puzzle with the solver. It returns the puzzle only
// if it has exactly one solution; otherwise the outcome is recorded in stats
// and nil is returned.
func TryTemplate(
	dominoes tiles.DominoSet,
	rows, cols int,
	template Template,
	stats *Stats,
	name string,
) *grid.Puzzle {
	placement := PlaceDominoes(dominoes, rows, cols)
	if placement == nil {
		return nil
	}

	regions := make([]grid.Region, 0, len(template.Cells))
	for i, cells := range template.Cells {
		region := grid.Region{
			ID:         i,
			Cells:      cells,
			Constraint: template.Kinds[i],
		}

		switch template.Kinds[i] {
		case grid.Sum:
			region.Target = grid.IntPtr(RegionPipSum(placement, cells))
		case grid.Less, grid.Greater:
			region.LinkedRegion = grid.IntPtr(i + 1)
		}

		regions = append(regions, region)
	}

	puzzle := &grid.Puzzle{
		Name:       name,
		Difficulty: "unknown",
		Rows:       rows,
		Cols:       cols,
		Regions:    regions,
		Supply:     dominoes,
		Solution:   placement,
	}
	if err := puzzle.Validate(); err != nil {
		// The template does not fit this board/tile combination; a rejected
		// candidate, not a failure.
		return nil
	}

	stats.Attempts++

	s := solver.New(puzzle, certifyCap)
	switch count := s.Solve(); {
	case count == 1:
		stats.UniqueFound++
		return puzzle
	case count == 0:
		stats.NoSolution++
	default:
		stats.MultipleSolutions++
	}
	return nil
}

// SearchUnique runs the bounded outer search: every size-count combination of
// the reference set, crossed with every template, each candidate tried in the
// drawn order and once more in a shuffled order. The search stops at the first
// uniquely solvable puzzle or when the attempt budget runs out; exhausting the
// budget yields nil plus whatever statistics accumulated.
func SearchUnique(
	set tiles.DominoSet,
	count, rows, cols int,
	templates []Template,
	budget int,
	rng *rand.Rand,
	name string,
) (*grid.Puzzle, Stats) {
	var stats Stats
	var found *grid.Puzzle

	combinations(len(set), count, func(indices []int) bool {
		dominoes := make(tiles.DominoSet, 0, count)
		for _, i := range indices {
			dominoes = append(dominoes, set[i])
		}

		for _, template := range templates {
			if puzzle := TryTemplate(dominoes, rows, cols, template, &stats, name); puzzle != nil {
				found = puzzle
				return true
			}
			if stats.Attempts > budget {
				return true
			}

			shuffled := dominoes.Shuffle(rng)
			if puzzle := TryTemplate(shuffled, rows, cols, template, &stats, name); puzzle != nil {
				found = puzzle
				return true
			}
			if stats.Attempts > budget {
				return true
			}
		}

		return false
	})

	return found, stats
}

// combinations enumerates every size-k index combination of 0..n-1 in
// lexicographic order, invoking visit for each. A true return from visit stops
// the enumeration.
func combinations(n, k int, visit func(indices []int) bool) {
	if k > n || k < 0 {
		return
	}
	indices := make([]int, k)
	enumerateCombinations(n, k, 0, 0, indices, visit)
}

func enumerateCombinations(n, k, position, next int, indices []int, visit func(indices []int) bool) bool {
	if position == k {
		return visit(indices)
	}
	for i := next; i <= n-(k-position); i++ {
		indices[position] = i
		if enumerateCombinations(n, k, position+1, i+1, indices, visit) {
			return true
		}
	}
	return false
}
