package solver

import (
	"pips/internal/grid"
)

func (solver *backtrackSolver) checkConstraint(region *grid.Region, partialOK bool) bool {
	return checkRegion(region, solver.regionByID, solver.values, solver.filled, partialOK)
}

// checkRegion evaluates one region's constraint against the current, possibly
// partial, cell assignment. It is a pure function of its arguments.
//
// With partialOK set, a region that cannot be judged yet passes provisionally:
// a partially filled Sum region passes while its running total stays within the
// target, and a Less/Greater region passes until both it and its linked region
// are completely filled. With partialOK unset every constraint must hold
// outright.
func checkRegion(
	region *grid.Region,
	regionByID map[int]*grid.Region,
	values map[grid.Cell]int,
	filled map[grid.Cell]bool,
	partialOK bool,
) bool {
	complete := regionComplete(region, filled)

	switch region.Constraint {
	case grid.Sum:
		if region.Target == nil {
			return true // placeholder region, no real constraint
		}
		sum := regionSum(region, values)
		if complete {
			return sum == *region.Target
		}
		// Pip values are non-negative, so a running total past the target can
		// never recover.
		return partialOK && sum <= *region.Target

	case grid.Equal:
		first, found := -1, false
		for _, cell := range region.Cells {
			value, ok := values[cell]
			if !ok {
				continue
			}
			if !found {
				first, found = value, true
			} else if value != first {
				return false
			}
		}
		return true

	case grid.Less, grid.Greater:
		if !complete {
			return partialOK
		}
		sum := regionSum(region, values)

		var other int
		if region.LinkedRegion != nil {
			linked := regionByID[*region.LinkedRegion]
			if !regionComplete(linked, filled) {
				return partialOK
			}
			other = regionSum(linked, values)
		} else if region.Target != nil {
			// Degenerate single-sided comparison against a fixed target.
			other = *region.Target
		} else {
			return true
		}

		if region.Constraint == grid.Less {
			return sum < other
		}
		return sum > other
	}

	return true
}

func regionComplete(region *grid.Region, filled map[grid.Cell]bool) bool {
	for _, cell := range region.Cells {
		if !filled[cell] {
			return false
		}
	}
	return true
}

func regionSum(region *grid.Region, values map[grid.Cell]int) int {
	sum := 0
	for _, cell := range region.Cells {
		if value, ok := values[cell]; ok {
			sum += value
		}
	}
	return sum
}
