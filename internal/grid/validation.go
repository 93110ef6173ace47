package grid

import (
	"errors"
	"fmt"
)

var (
	ErrCellOverlap       = errors.New("cell belongs to more than one region")
	ErrBadLink           = errors.New("linked region reference is invalid")
	ErrSupplyMismatch    = errors.New("supply size does not match half the active cell count")
	ErrMissingComparison = errors.New("inequality region has neither a linked region nor a target")
)

// Validate fails fast on configuration errors so they never surface deep
// inside a search: region cells must partition the board, linked references
// must resolve to existing, distinct regions, inequality regions must have
// something to compare against, and the supply must hold exactly one tile per
// two active cells.
func (p *Puzzle) Validate() error {
	byID := make(map[int]bool, len(p.Regions))
	for _, region := range p.Regions {
		if byID[region.ID] {
			return fmt.Errorf("duplicate region id %d: %w", region.ID, ErrBadLink)
		}
		byID[region.ID] = true
	}

	seen := make(map[Cell]int)
	for _, region := range p.Regions {
		for _, cell := range region.Cells {
			if owner, ok := seen[cell]; ok {
				return fmt.Errorf("cell %v in regions %d and %d: %w", cell, owner, region.ID, ErrCellOverlap)
			}
			seen[cell] = region.ID
		}
	}

	for _, region := range p.Regions {
		if region.Constraint == Less || region.Constraint == Greater {
			if region.LinkedRegion == nil && region.Target == nil {
				return fmt.Errorf("region %d: %w", region.ID, ErrMissingComparison)
			}
		}
		if region.LinkedRegion == nil {
			continue
		}
		linked := *region.LinkedRegion
		if linked == region.ID {
			return fmt.Errorf("region %d links to itself: %w", region.ID, ErrBadLink)
		}
		if !byID[linked] {
			return fmt.Errorf("region %d links to unknown region %d: %w", region.ID, linked, ErrBadLink)
		}
	}

	if len(p.Supply)*2 != len(seen) {
		return fmt.Errorf("%d tiles for %d active cells: %w", len(p.Supply), len(seen), ErrSupplyMismatch)
	}

	return nil
}
