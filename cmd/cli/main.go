package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"slices"
	"time"

	"github.com/samber/lo"

	"pips/internal/generator"
	"pips/internal/grid"
	"pips/internal/solver"
	"pips/internal/tiles"
)

var validDifficulties = []string{"easy", "medium", "hard"}

func main() {
	// Define arguments
	difficultyPtr := flag.String("difficulty", "easy", "Difficulty of the generated puzzle. Allowed values are: \"easy\" (4 dominoes, 2x4), \"medium\" (6 dominoes, 3x4) and \"hard\" (8 dominoes from the double-nine remainder, 4x4), where \"easy\" is the default")
	seedPtr := flag.Int64("seed", 0, "Seed for the random source. 0 (the default) derives a seed from the current time")
	budgetPtr := flag.Int("budget", 50000, "Attempt budget for the uniqueness search")
	inputPtr := flag.String("input", "", "Path to a puzzle JSON file to solve instead of generating")
	outputPtr := flag.String("output", "", "Path to write the generated puzzle JSON to")
	layoutPtr := flag.Bool("layout", false, "Generate an organic connected layout instead of a rectangular template puzzle")
	countPtr := flag.Int("count", 0, "Number of dominoes for a layout puzzle. 0 (the default) derives the count from the difficulty")
	flag.Parse()

	// Verify arguments
	if !slices.Contains(validDifficulties, *difficultyPtr) {
		log.Fatalf("invalid difficulty: %v. Allowed values are: %v", *difficultyPtr, validDifficulties)
	}
	if *countPtr < 0 {
		log.Fatalf("invalid count: %v. Must be non-negative", *countPtr)
	}

	seed := *seedPtr
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	if *inputPtr != "" {
		solvePuzzleFile(*inputPtr)
		return
	}

	var puzzle *grid.Puzzle
	var stats generator.Stats

	if *layoutPtr {
		count := *countPtr
		if count == 0 {
			count = lo.Switch[string, int](*difficultyPtr).
				Case("easy", 4).
				Case("medium", 6).
				Default(8)
		}
		layout := generator.NewLayoutGenerator(tiles.DoubleSix(), rng)
		puzzle, stats = layout.GenerateUnique("layout puzzle", *difficultyPtr, count, *budgetPtr, true)
	} else {
		puzzle, stats = searchTemplates(*difficultyPtr, *budgetPtr, rng)
	}

	if puzzle == nil {
		fmt.Printf("No unique puzzle found: %v\n", stats)
		return
	}

	puzzle.Difficulty = *difficultyPtr
	fmt.Printf("Found unique %v puzzle (%v)\n", puzzle.Difficulty, stats)
	fmt.Printf("Supply: %v, board: %dx%d, regions: %d\n", puzzle.Supply, puzzle.Rows, puzzle.Cols, len(puzzle.Regions))

	if *outputPtr != "" {
		if err := puzzle.ToJSON(*outputPtr); err != nil {
			log.Fatalf("cannot write puzzle: %v", err)
		}
		fmt.Printf("Written to %v\n", *outputPtr)
	}
}

func searchTemplates(difficulty string, budget int, rng *rand.Rand) (*grid.Puzzle, generator.Stats) {
	switch difficulty {
	case "medium":
		return generator.SearchUnique(tiles.DoubleSix(), 6, 3, 4, generator.MediumTemplates(), budget, rng, "medium puzzle")
	case "hard":
		return generator.SearchUnique(tiles.DoubleNineRemainder(), 8, 4, 4, generator.HardTemplates(), budget, rng, "hard puzzle")
	default:
		return generator.SearchUnique(tiles.DoubleSix(), 4, 2, 4, generator.EasyTemplates(), budget, rng, "easy puzzle")
	}
}

func solvePuzzleFile(path string) {
	puzzle, err := grid.FromJSON(path)
	if err != nil {
		log.Fatalf("cannot load puzzle: %v", err)
	}

	s := solver.New(puzzle, 2)
	count := s.Solve()

	switch count {
	case 0:
		fmt.Println("No solution")
	case 1:
		fmt.Println("Unique solution:")
		for _, placement := range s.Solution() {
			fmt.Printf("  %v\n", placement)
		}
	default:
		fmt.Println("Multiple solutions; first one:")
		for _, placement := range s.Solution() {
			fmt.Printf("  %v\n", placement)
		}
	}
}
