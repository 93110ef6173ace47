package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"pips/internal/generator"
	"pips/internal/grid"
	"pips/internal/solver"
	"pips/internal/tiles"
)

const AttemptBudget = 50000

type difficultyConfig struct {
	name      string
	set       tiles.DominoSet
	count     int
	rows      int
	cols      int
	templates []generator.Template
}

func main() {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	configs := []difficultyConfig{
		{"easy", tiles.DoubleSix(), 4, 2, 4, generator.EasyTemplates()},
		{"medium", tiles.DoubleSix(), 6, 3, 4, generator.MediumTemplates()},
		{"hard", tiles.DoubleNineRemainder(), 8, 4, 4, generator.HardTemplates()},
	}

	for _, config := range configs {
		fmt.Printf("--- %v (%d dominoes, %dx%d grid) ---\n", config.name, config.count, config.rows, config.cols)

		puzzle, stats := generator.SearchUnique(
			config.set, config.count, config.rows, config.cols,
			config.templates, AttemptBudget, rng, config.name+" puzzle",
		)
		if puzzle == nil {
			fmt.Printf("no unique puzzle found (%v)\n\n", stats)
			continue
		}

		puzzle.Difficulty = config.name
		fmt.Printf("found unique puzzle after %d attempts (%v)\n", stats.Attempts, stats)
		printPuzzle(puzzle)

		if !solver.IsUnique(puzzle) {
			log.Fatalf("verification failed: %v is not uniquely solvable", puzzle.Name)
		}
		fmt.Println()
	}
}

func printPuzzle(puzzle *grid.Puzzle) {
	fmt.Printf("supply: ")
	for _, domino := range puzzle.Supply {
		fmt.Printf("%v  ", domino)
	}
	fmt.Println()

	for _, region := range puzzle.Regions {
		switch {
		case region.Target != nil:
			fmt.Printf("region %d: %v=%d, cells=%v\n", region.ID, region.Constraint, *region.Target, region.Cells)
		case region.LinkedRegion != nil:
			fmt.Printf("region %d: %v region %d, cells=%v\n", region.ID, region.Constraint, *region.LinkedRegion, region.Cells)
		default:
			fmt.Printf("region %d: %v, cells=%v\n", region.ID, region.Constraint, region.Cells)
		}
	}
}
