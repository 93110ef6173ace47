package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"pips/internal/generator"
	"pips/internal/tiles"
)

// Benchmark harness: runs the uniqueness search for each difficulty across a
// range of seeds and reports timing plus outcome statistics as CSV.

type benchCase struct {
	difficulty string
	set        tiles.DominoSet
	count      int
	rows       int
	cols       int
	templates  []generator.Template
}

func main() {
	seedsPtr := flag.Int("seeds", 5, "Number of seeds to benchmark per difficulty")
	budgetPtr := flag.Int("budget", 20000, "Attempt budget per search")
	flag.Parse()

	cases := []benchCase{
		{"easy", tiles.DoubleSix(), 4, 2, 4, generator.EasyTemplates()},
		{"medium", tiles.DoubleSix(), 6, 3, 4, generator.MediumTemplates()},
		{"hard", tiles.DoubleNineRemainder(), 8, 4, 4, generator.HardTemplates()},
	}

	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"difficulty", "seed", "found", "attempts", "no_solution", "multiple_solutions", "duration_ms"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write csv: %v", err)
	}

	for _, benchmark := range cases {
		for seed := int64(1); seed <= int64(*seedsPtr); seed++ {
			rng := rand.New(rand.NewSource(seed))

			start := time.Now()
			puzzle, stats := generator.SearchUnique(
				benchmark.set, benchmark.count, benchmark.rows, benchmark.cols,
				benchmark.templates, *budgetPtr, rng, "benchmark",
			)
			elapsed := time.Since(start)

			record := []string{
				benchmark.difficulty,
				strconv.FormatInt(seed, 10),
				strconv.FormatBool(puzzle != nil),
				strconv.Itoa(stats.Attempts),
				strconv.Itoa(stats.NoSolution),
				strconv.Itoa(stats.MultipleSolutions),
				strconv.FormatInt(elapsed.Milliseconds(), 10),
			}
			if err := writer.Write(record); err != nil {
				log.Fatalf("cannot write csv: %v", err)
			}
			writer.Flush()

			fmt.Fprintf(os.Stderr, "%v seed=%d: %v in %v\n", benchmark.difficulty, seed, stats, formatDuration(elapsed))
		}
	}
}

// formatDuration renders a duration as hh:mm:ss.cc for the progress log.
func formatDuration(d time.Duration) string {
	totalCentis := d.Milliseconds() / 10
	centis := totalCentis % 100
	seconds := (totalCentis / 100) % 60
	minutes := (totalCentis / 6000) % 60
	hours := totalCentis / 360000
	return fmt.Sprintf("%02d:%02d:%02d.%02d", hours, minutes, seconds, centis)
}
