package generator

import "pips/internal/grid"

// Template is a region-shape pattern: cell groups plus the constraint kind
// each group should carry. Sum targets are derived from a realized tiling at
// generation time; Less/Greater regions get linked to the next group in the
// template, so inequality chains must end in a Sum group.
type Template struct {
	Cells [][]grid.Cell
	Kinds []grid.ConstraintType
}

func row(r, from, to int) []grid.Cell {
	cells := make([]grid.Cell, 0, to-from+1)
	for c := from; c <= to; c++ {
		cells = append(cells, grid.Cell{Row: r, Col: c})
	}
	return cells
}

func block(r0, c0, r1, c1 int) []grid.Cell {
	cells := make([]grid.Cell, 0, (r1-r0+1)*(c1-c0+1))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			cells = append(cells, grid.Cell{Row: r, Col: c})
		}
	}
	return cells
}

// EasyTemplates covers a 2x4 board (4 tiles).
func EasyTemplates() []Template {
	return []Template{
		// Left/right 2x2 blocks.
		{
			Cells: [][]grid.Cell{block(0, 0, 1, 1), block(0, 2, 1, 3)},
			Kinds: []grid.ConstraintType{grid.Sum, grid.Sum},
		},
		// Top/bottom rows.
		{
			Cells: [][]grid.Cell{row(0, 0, 3), row(1, 0, 3)},
			Kinds: []grid.ConstraintType{grid.Sum, grid.Sum},
		},
		// Inequality chain over four 2-cell regions.
		{
			Cells: [][]grid.Cell{row(0, 0, 1), row(0, 2, 3), row(1, 0, 1), row(1, 2, 3)},
			Kinds: []grid.ConstraintType{grid.Less, grid.Less, grid.Less, grid.Sum},
		},
		// Mixed: a short chain feeding into a full-row sum.
		{
			Cells: [][]grid.Cell{row(0, 0, 1), row(0, 2, 3), row(1, 0, 3)},
			Kinds: []grid.ConstraintType{grid.Less, grid.Sum, grid.Sum},
		},
		// L-shaped 3-cell regions force tiles to span boundaries.
		{
			Cells: [][]grid.Cell{
				{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
				{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 3}},
				{{Row: 1, Col: 1}, {Row: 1, Col: 2}},
			},
			Kinds: []grid.ConstraintType{grid.Sum, grid.Sum, grid.Sum},
		},
	}
}

// MediumTemplates covers a 3x4 board (6 tiles).
func MediumTemplates() []Template {
	return []Template{
		// Two L-shapes, a center square and the loose corners.
		{
			Cells: [][]grid.Cell{
				{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}},
				{{Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 1, Col: 3}},
				{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
				{{Row: 2, Col: 0}, {Row: 2, Col: 3}},
			},
			Kinds: []grid.ConstraintType{grid.Sum, grid.Sum, grid.Sum, grid.Sum},
		},
		// Row strips with an inequality chain.
		{
			Cells: [][]grid.Cell{row(0, 0, 3), row(1, 0, 3), row(2, 0, 3)},
			Kinds: []grid.ConstraintType{grid.Less, grid.Less, grid.Sum},
		},
		// Full chain over six per-tile regions.
		{
			Cells: [][]grid.Cell{
				row(0, 0, 1), row(0, 2, 3),
				row(1, 0, 1), row(1, 2, 3),
				row(2, 0, 1), row(2, 2, 3),
			},
			Kinds: []grid.ConstraintType{
				grid.Less, grid.Less, grid.Less, grid.Less, grid.Less, grid.Sum,
			},
		},
	}
}

// HardTemplates covers a 4x4 board (8 tiles).
func HardTemplates() []Template {
	return []Template{
		// Quadrants chained by inequalities.
		{
			Cells: [][]grid.Cell{
				block(0, 0, 1, 1), block(0, 2, 1, 3),
				block(2, 0, 3, 1), block(2, 2, 3, 3),
			},
			Kinds: []grid.ConstraintType{grid.Less, grid.Less, grid.Less, grid.Sum},
		},
		// Row strips chained by inequalities.
		{
			Cells: [][]grid.Cell{row(0, 0, 3), row(1, 0, 3), row(2, 0, 3), row(3, 0, 3)},
			Kinds: []grid.ConstraintType{grid.Less, grid.Less, grid.Less, grid.Sum},
		},
	}
}
