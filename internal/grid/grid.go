// Package grid holds the shared puzzle data model: cells, placements, regions
// with their constraints, and complete puzzle definitions. Values in this
// package are treated as read-only once built; the solver and generator never
// mutate them.
package grid

import (
	"fmt"

	"pips/internal/tiles"
)

// Cell is a board coordinate. It is comparable and used pervasively as a map
// and set key.
type Cell struct {
	Row int
	Col int
}

// Neighbors returns the four orthogonally adjacent coordinates, in the fixed
// order up, down, left, right. Callers filter against the board themselves;
// traversal order stays deterministic because the order here is fixed.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{
		{c.Row - 1, c.Col},
		{c.Row + 1, c.Col},
		{c.Row, c.Col - 1},
		{c.Row, c.Col + 1},
	}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Orientation string

const (
	Horizontal Orientation = "H" // domino spans (r,c) and (r,c+1)
	Vertical   Orientation = "V" // domino spans (r,c) and (r+1,c)
)

// PlacedDomino is a domino bound to an anchor cell and an orientation. The two
// occupied cells derive deterministically from the anchor: the low half sits on
// the anchor and the high half on the shifted cell, unless Flipped reverses
// the two halves.
type PlacedDomino struct {
	Domino      tiles.Domino
	Row         int
	Col         int
	Orientation Orientation
	Flipped     bool
}

// Cells returns the two cells the domino occupies, anchor first.
func (p PlacedDomino) Cells() (Cell, Cell) {
	if p.Orientation == Horizontal {
		return Cell{p.Row, p.Col}, Cell{p.Row, p.Col + 1}
	}
	return Cell{p.Row, p.Col}, Cell{p.Row + 1, p.Col}
}

// AnchorPip returns the pip value sitting on the anchor cell.
func (p PlacedDomino) AnchorPip() int {
	if p.Flipped {
		return p.Domino.High()
	}
	return p.Domino.Low()
}

// OtherPip returns the pip value sitting on the shifted cell.
func (p PlacedDomino) OtherPip() int {
	if p.Flipped {
		return p.Domino.Low()
	}
	return p.Domino.High()
}

func (p PlacedDomino) String() string {
	return fmt.Sprintf("%v@(%d,%d)%v", p.Domino, p.Row, p.Col, p.Orientation)
}

// ConstraintType is the closed set of constraint tags a region can carry.
type ConstraintType string

const (
	Sum     ConstraintType = "sum"     // total pips == target
	Equal   ConstraintType = "equal"   // every pip in the region holds the same value
	Greater ConstraintType = "greater" // region sum > linked region's sum
	Less    ConstraintType = "less"    // region sum < linked region's sum
)

// Region is a fixed group of board cells carrying one constraint. A Sum region
// with a nil Target is a placeholder with no real constraint: it is always
// satisfied. That is how unconstrained cells are represented, rather than
// leaving them outside every region.
type Region struct {
	ID           int
	Cells        []Cell
	Constraint   ConstraintType
	Target       *int // used by Sum; Less/Greater with a target is a single-sided comparison
	LinkedRegion *int // used by Less/Greater to compare against another region
}

func (r Region) Size() int {
	return len(r.Cells)
}

// Target helpers: IntPtr keeps region literals readable in templates and tests.
func IntPtr(v int) *int {
	return &v
}

// Puzzle is a complete puzzle definition. Regions partition the active cells
// exactly; the supply holds one tile per two active cells; Solution, when
// present, is a reference tiling recorded by the generator.
type Puzzle struct {
	Name       string
	Difficulty string
	Rows       int
	Cols       int
	Regions    []Region
	Supply     tiles.DominoSet
	Solution   []PlacedDomino
}

// RegionAt returns the region containing the cell, or nil if the cell is not
// part of the board.
func (p *Puzzle) RegionAt(cell Cell) *Region {
	for i := range p.Regions {
		for _, c := range p.Regions[i].Cells {
			if c == cell {
				return &p.Regions[i]
			}
		}
	}
	return nil
}

// ActiveCells returns every cell owned by some region, in deterministic order:
// region declaration order, then cell order within the region. Solver traversal
// and solution signatures rely on this order being stable.
func (p *Puzzle) ActiveCells() []Cell {
	cells := make([]Cell, 0, 2*len(p.Supply))
	for _, region := range p.Regions {
		cells = append(cells, region.Cells...)
	}
	return cells
}
