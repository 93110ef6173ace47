package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pips/internal/grid"
	"pips/internal/tiles"
)

func TestCheckRegion(t *testing.T) {
	regions := []grid.Region{
		{ID: 0, Cells: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Constraint: grid.Sum, Target: grid.IntPtr(5)},
		{ID: 1, Cells: []grid.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 3}}, Constraint: grid.Less, LinkedRegion: grid.IntPtr(0)},
	}
	byID := map[int]*grid.Region{0: &regions[0], 1: &regions[1]}

	t.Run("sum partial within target passes", func(t *testing.T) {
		values := map[grid.Cell]int{{Row: 0, Col: 0}: 3}
		filled := map[grid.Cell]bool{{Row: 0, Col: 0}: true}

		assert.True(t, checkRegion(&regions[0], byID, values, filled, true))
	})

	t.Run("sum partial beyond target prunes", func(t *testing.T) {
		values := map[grid.Cell]int{{Row: 0, Col: 0}: 6}
		filled := map[grid.Cell]bool{{Row: 0, Col: 0}: true}

		assert.False(t, checkRegion(&regions[0], byID, values, filled, true))
	})

	t.Run("sum complete must hit target exactly", func(t *testing.T) {
		values := map[grid.Cell]int{{Row: 0, Col: 0}: 3, {Row: 0, Col: 1}: 2}
		filled := map[grid.Cell]bool{{Row: 0, Col: 0}: true, {Row: 0, Col: 1}: true}

		assert.True(t, checkRegion(&regions[0], byID, values, filled, false))

		values[grid.Cell{Row: 0, Col: 1}] = 3
		assert.False(t, checkRegion(&regions[0], byID, values, filled, false))
	})

	t.Run("placeholder sum region always passes", func(t *testing.T) {
		placeholder := grid.Region{ID: 2, Cells: []grid.Cell{{Row: 1, Col: 0}}, Constraint: grid.Sum}
		values := map[grid.Cell]int{{Row: 1, Col: 0}: 6}
		filled := map[grid.Cell]bool{{Row: 1, Col: 0}: true}

		assert.True(t, checkRegion(&placeholder, byID, values, filled, false))
	})

	t.Run("equal tolerates empty and singleton", func(t *testing.T) {
		region := grid.Region{ID: 3, Cells: []grid.Cell{{Row: 2, Col: 0}, {Row: 2, Col: 1}}, Constraint: grid.Equal}

		assert.True(t, checkRegion(&region, byID, map[grid.Cell]int{}, map[grid.Cell]bool{}, true))

		values := map[grid.Cell]int{{Row: 2, Col: 0}: 4}
		filled := map[grid.Cell]bool{{Row: 2, Col: 0}: true}
		assert.True(t, checkRegion(&region, byID, values, filled, true))

		values[grid.Cell{Row: 2, Col: 1}] = 5
		filled[grid.Cell{Row: 2, Col: 1}] = true
		assert.False(t, checkRegion(&region, byID, values, filled, true))
	})

	t.Run("less is provisional until both regions complete", func(t *testing.T) {
		values := map[grid.Cell]int{{Row: 0, Col: 2}: 6, {Row: 0, Col: 3}: 6}
		filled := map[grid.Cell]bool{{Row: 0, Col: 2}: true, {Row: 0, Col: 3}: true}

		// Linked region still open: provisionally valid only when partial
		// evaluation is allowed.
		assert.True(t, checkRegion(&regions[1], byID, values, filled, true))
		assert.False(t, checkRegion(&regions[1], byID, values, filled, false))

		values[grid.Cell{Row: 0, Col: 0}] = 2
		values[grid.Cell{Row: 0, Col: 1}] = 3
		filled[grid.Cell{Row: 0, Col: 0}] = true
		filled[grid.Cell{Row: 0, Col: 1}] = true

		// 12 < 5 fails strictly once both sides are complete.
		assert.False(t, checkRegion(&regions[1], byID, values, filled, false))
	})

	t.Run("greater against explicit target", func(t *testing.T) {
		region := grid.Region{
			ID:         4,
			Cells:      []grid.Cell{{Row: 3, Col: 0}, {Row: 3, Col: 1}},
			Constraint: grid.Greater,
			Target:     grid.IntPtr(7),
		}
		values := map[grid.Cell]int{{Row: 3, Col: 0}: 4, {Row: 3, Col: 1}: 4}
		filled := map[grid.Cell]bool{{Row: 3, Col: 0}: true, {Row: 3, Col: 1}: true}

		assert.True(t, checkRegion(&region, byID, values, filled, false))

		values[grid.Cell{Row: 3, Col: 1}] = 3
		assert.False(t, checkRegion(&region, byID, values, filled, false))
	})
}

func TestSolveCapLimitsSolutionCount(t *testing.T) {
	// Two unconstrained regions over a 1x4 board admit 8 distinct
	// assignments; the cap must stop the search early.
	puzzle := &grid.Puzzle{
		Rows: 1,
		Cols: 4,
		Regions: []grid.Region{
			{ID: 0, Cells: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Constraint: grid.Sum},
			{ID: 1, Cells: []grid.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 3}}, Constraint: grid.Sum},
		},
		Supply: tiles.DominoSet{tiles.NewDomino(0, 1), tiles.NewDomino(2, 3)},
	}
	assert.Nil(t, puzzle.Validate())

	capped := New(puzzle, 3)
	assert.Equal(t, 3, capped.Solve())

	uncapped := New(puzzle, 100)
	assert.Equal(t, 8, uncapped.Solve())
}

func TestSolveDeduplicatesIdenticalAssignments(t *testing.T) {
	// Two identical tiles: every tile-order permutation collapses to the
	// same cell assignment and must be counted once.
	puzzle := &grid.Puzzle{
		Rows: 1,
		Cols: 4,
		Regions: []grid.Region{
			{ID: 0, Cells: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}}, Constraint: grid.Equal},
		},
		Supply: tiles.DominoSet{tiles.NewDomino(3, 3), tiles.NewDomino(3, 3)},
	}
	assert.Nil(t, puzzle.Validate())

	solver := New(puzzle, 10)

	assert.Equal(t, 1, solver.Solve())
	assert.True(t, solver.IsUnique())
}

func TestSolutionRecordsPipOrientation(t *testing.T) {
	// Per-cell sum targets force the high pip onto the anchor cell; the
	// recorded placement must carry that and pass its own verification.
	puzzle := &grid.Puzzle{
		Rows: 1,
		Cols: 2,
		Regions: []grid.Region{
			{ID: 0, Cells: []grid.Cell{{Row: 0, Col: 0}}, Constraint: grid.Sum, Target: grid.IntPtr(1)},
			{ID: 1, Cells: []grid.Cell{{Row: 0, Col: 1}}, Constraint: grid.Sum, Target: grid.IntPtr(0)},
		},
		Supply: tiles.DominoSet{tiles.NewDomino(0, 1)},
	}
	assert.Nil(t, puzzle.Validate())

	solver := New(puzzle, 2)

	assert.Equal(t, 1, solver.Solve())
	solution := solver.Solution()
	assert.Len(t, solution, 1)
	assert.True(t, solution[0].Flipped)
	assert.Equal(t, 1, solution[0].AnchorPip())
	assert.Equal(t, 0, solution[0].OtherPip())
	assert.True(t, solver.Verify(solution))
}

func TestSolveIsRepeatable(t *testing.T) {
	puzzle := &grid.Puzzle{
		Rows: 1,
		Cols: 4,
		Regions: []grid.Region{
			{ID: 0, Cells: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Constraint: grid.Less, LinkedRegion: grid.IntPtr(1)},
			{ID: 1, Cells: []grid.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 3}}, Constraint: grid.Sum},
		},
		Supply: tiles.DominoSet{tiles.NewDomino(0, 1), tiles.NewDomino(2, 3)},
	}
	assert.Nil(t, puzzle.Validate())

	solver := New(puzzle, 10)
	first := solver.Solve()
	firstSolution := solver.Solution()

	assert.Equal(t, first, solver.Solve())
	assert.Equal(t, firstSolution, solver.Solution())
}

func TestVerify(t *testing.T) {
	puzzle := &grid.Puzzle{
		Rows: 1,
		Cols: 4,
		Regions: []grid.Region{
			{ID: 0, Cells: []grid.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 1}}, Constraint: grid.Sum, Target: grid.IntPtr(1)},
			{ID: 1, Cells: []grid.Cell{{Row: 0, Col: 2}, {Row: 0, Col: 3}}, Constraint: grid.Sum, Target: grid.IntPtr(5)},
		},
		Supply: tiles.DominoSet{tiles.NewDomino(0, 1), tiles.NewDomino(2, 3)},
	}
	assert.Nil(t, puzzle.Validate())
	solver := New(puzzle, 2)

	tiling := []grid.PlacedDomino{
		{Domino: tiles.NewDomino(0, 1), Row: 0, Col: 0, Orientation: grid.Horizontal},
		{Domino: tiles.NewDomino(2, 3), Row: 0, Col: 2, Orientation: grid.Horizontal},
	}

	t.Run("accepts a satisfying tiling", func(t *testing.T) {
		assert.True(t, solver.Verify(tiling))
	})

	t.Run("rejects a tile not drawn from the supply", func(t *testing.T) {
		bad := []grid.PlacedDomino{
			{Domino: tiles.NewDomino(0, 1), Row: 0, Col: 0, Orientation: grid.Horizontal},
			{Domino: tiles.NewDomino(2, 4), Row: 0, Col: 2, Orientation: grid.Horizontal},
		}
		assert.False(t, solver.Verify(bad))
	})

	t.Run("rejects overlapping placements", func(t *testing.T) {
		bad := []grid.PlacedDomino{
			{Domino: tiles.NewDomino(0, 1), Row: 0, Col: 0, Orientation: grid.Horizontal},
			{Domino: tiles.NewDomino(2, 3), Row: 0, Col: 1, Orientation: grid.Horizontal},
		}
		assert.False(t, solver.Verify(bad))
	})

	t.Run("rejects a constraint violation", func(t *testing.T) {
		bad := []grid.PlacedDomino{
			{Domino: tiles.NewDomino(2, 3), Row: 0, Col: 0, Orientation: grid.Horizontal},
			{Domino: tiles.NewDomino(0, 1), Row: 0, Col: 2, Orientation: grid.Horizontal},
		}
		assert.False(t, solver.Verify(bad))
	})

	t.Run("rejects an incomplete tiling", func(t *testing.T) {
		assert.False(t, solver.Verify(tiling[:1]))
	})
}
