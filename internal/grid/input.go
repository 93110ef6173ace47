package grid

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"

	"pips/internal/tiles"
)

// puzzleInput mirrors the JSON persistence schema for puzzles. Dominoes are
// value pairs, cells are [row, col] pairs. A region with an empty type or an
// absent target decodes to the placeholder Sum constraint.
type puzzleInput struct {
	Name       string
	Difficulty string
	Rows       int
	Cols       int
	Dominoes   [][]int
	Regions    []regionInput
	Solution   []placementInput
}

type regionInput struct {
	ID     int `mapstructure:"id"`
	Cells  [][]int
	Type   string
	Target *int
	Linked *int
}

type placementInput struct {
	Domino      []int
	Row         int
	Col         int
	Orientation string
	Flipped     bool
}

// FromJSON reads a puzzle definition from a JSON file and validates it before
// returning. Configuration problems surface here, never inside a search.
func FromJSON(file string) (*Puzzle, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, err
	}

	var input puzzleInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return nil, fmt.Errorf("cannot decode puzzle input: %w", err)
	}

	return input.toPuzzle()
}

func (input puzzleInput) toPuzzle() (*Puzzle, error) {
	supply := make(tiles.DominoSet, 0, len(input.Dominoes))
	for _, pair := range input.Dominoes {
		if len(pair) != 2 {
			return nil, fmt.Errorf("domino %v must have exactly two values", pair)
		}
		supply = append(supply, tiles.NewDomino(pair[0], pair[1]))
	}

	regions := make([]Region, 0, len(input.Regions))
	for _, r := range input.Regions {
		cells := make([]Cell, 0, len(r.Cells))
		for _, pair := range r.Cells {
			if len(pair) != 2 {
				return nil, fmt.Errorf("cell %v must have exactly two coordinates", pair)
			}
			cells = append(cells, Cell{Row: pair[0], Col: pair[1]})
		}

		constraint, target, err := decodeConstraint(r)
		if err != nil {
			return nil, err
		}

		regions = append(regions, Region{
			ID:           r.ID,
			Cells:        cells,
			Constraint:   constraint,
			Target:       target,
			LinkedRegion: r.Linked,
		})
	}

	solution := make([]PlacedDomino, 0, len(input.Solution))
	for _, p := range input.Solution {
		if len(p.Domino) != 2 {
			return nil, fmt.Errorf("solution domino %v must have exactly two values", p.Domino)
		}
		orientation := Orientation(p.Orientation)
		if orientation != Horizontal && orientation != Vertical {
			return nil, fmt.Errorf("unknown orientation %q", p.Orientation)
		}
		solution = append(solution, PlacedDomino{
			Domino:      tiles.NewDomino(p.Domino[0], p.Domino[1]),
			Row:         p.Row,
			Col:         p.Col,
			Orientation: orientation,
			Flipped:     p.Flipped,
		})
	}

	puzzle := &Puzzle{
		Name:       input.Name,
		Difficulty: input.Difficulty,
		Rows:       input.Rows,
		Cols:       input.Cols,
		Regions:    regions,
		Supply:     supply,
		Solution:   solution,
	}

	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	return puzzle, nil
}

// decodeConstraint maps a constraint-kind string onto the tag set. An empty or
// "none" kind means no constraint, represented as Sum with an absent target.
func decodeConstraint(r regionInput) (ConstraintType, *int, error) {
	switch r.Type {
	case "", "none":
		return Sum, nil, nil
	case string(Sum):
		return Sum, r.Target, nil
	case string(Equal):
		return Equal, nil, nil
	case string(Less):
		return Less, r.Target, nil
	case string(Greater):
		return Greater, r.Target, nil
	default:
		return Sum, nil, fmt.Errorf("unknown constraint type %q", r.Type)
	}
}

// ToJSON writes the puzzle back out in the same schema FromJSON reads.
func (p *Puzzle) ToJSON(file string) error {
	out := map[string]any{
		"name":       p.Name,
		"difficulty": p.Difficulty,
		"rows":       p.Rows,
		"cols":       p.Cols,
		"dominoes": lo.Map(p.Supply, func(d tiles.Domino, _ int) []int {
			return []int{d.Low(), d.High()}
		}),
		"regions": lo.Map(p.Regions, func(r Region, _ int) map[string]any {
			region := map[string]any{
				"id": r.ID,
				"cells": lo.Map(r.Cells, func(c Cell, _ int) []int {
					return []int{c.Row, c.Col}
				}),
				"type": string(r.Constraint),
			}
			if r.Target != nil {
				region["target"] = *r.Target
			}
			if r.LinkedRegion != nil {
				region["linked"] = *r.LinkedRegion
			}
			return region
		}),
		"solution": lo.Map(p.Solution, func(placement PlacedDomino, _ int) map[string]any {
			return map[string]any{
				"domino":      []int{placement.Domino.Low(), placement.Domino.High()},
				"row":         placement.Row,
				"col":         placement.Col,
				"orientation": string(placement.Orientation),
				"flipped":     placement.Flipped,
			}
		}),
	}

	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(file, bytes, 0644)
}
