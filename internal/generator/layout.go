package generator

import (
	"fmt"
	"math/rand"

	"pips/internal/dsu"
	"pips/internal/grid"
	"pips/internal/solver"
	"pips/internal/tiles"
)

// LayoutGenerator grows organic board shapes from a reference domino set. All
// randomness flows through the injected source, so a fixed seed reproduces the
// same layout.
type LayoutGenerator struct {
	set tiles.DominoSet
	rng *rand.Rand
}

func NewLayoutGenerator(set tiles.DominoSet, rng *rand.Rand) *LayoutGenerator {
	return &LayoutGenerator{set: set, rng: rng}
}

type layoutCandidate struct {
	row         int
	col         int
	orientation grid.Orientation
}

// ConnectedLayout grows a connected board shape by random accretion: the first
// tile lands at a fixed center anchor, every later tile at the first shuffled
// frontier candidate offering two free in-bounds cells. A disjoint set tracks
// connectivity of the occupied cells as bookkeeping for region merging.
//
// Running out of placeable candidates stops the growth early with whatever
// prefix was placed; that is a partial-layout outcome, not a failure. The
// returned placements are normalized to 0-based coordinates along with the
// resulting row and column counts.
func (g *LayoutGenerator) ConnectedLayout(count, maxWidth, maxHeight int) ([]grid.PlacedDomino, int, int) {
	dominoes := tiles.DominoSet(g.set[:min(count, len(g.set))]).Shuffle(g.rng)

	occupied := make(map[grid.Cell]bool)
	order := make([]grid.Cell, 0, 2*len(dominoes)) // deterministic frontier scan order
	placements := make([]grid.PlacedDomino, 0, len(dominoes))
	connectivity := dsu.New[grid.Cell]()

	place := func(p grid.PlacedDomino) {
		placements = append(placements, p)
		first, second := p.Cells()
		for _, cell := range []grid.Cell{first, second} {
			occupied[cell] = true
			order = append(order, cell)
			connectivity.MakeSet(cell)
			for _, neighbor := range cell.Neighbors() {
				if occupied[neighbor] {
					connectivity.Union(cell, neighbor)
				}
			}
		}
	}

	for _, domino := range dominoes {
		if len(placements) == 0 {
			orientation := grid.Horizontal
			if g.rng.Float64() < 0.5 {
				orientation = grid.Vertical
			}
			place(grid.PlacedDomino{
				Domino:      domino,
				Row:         maxHeight / 2,
				Col:         maxWidth / 2,
				Orientation: orientation,
			})
			continue
		}

		candidate, ok := g.nextCandidate(order, occupied, maxWidth, maxHeight)
		if !ok {
			break // stuck: keep the prefix placed so far
		}
		place(grid.PlacedDomino{
			Domino:      domino,
			Row:         candidate.row,
			Col:         candidate.col,
			Orientation: candidate.orientation,
		})
	}

	return normalize(placements, occupied)
}

// nextCandidate collects every frontier anchor adjacent to the occupied set,
// shuffles them, and returns the first one whose two cells are free and in
// bounds.
func (g *LayoutGenerator) nextCandidate(
	order []grid.Cell,
	occupied map[grid.Cell]bool,
	maxWidth, maxHeight int,
) (layoutCandidate, bool) {
	candidates := make([]layoutCandidate, 0, 4*len(order))
	for _, cell := range order {
		for _, frontier := range cell.Neighbors() {
			if occupied[frontier] {
				continue
			}
			if frontier.Col+1 < maxWidth && !occupied[grid.Cell{Row: frontier.Row, Col: frontier.Col + 1}] {
				candidates = append(candidates, layoutCandidate{frontier.Row, frontier.Col, grid.Horizontal})
			}
			if frontier.Row+1 < maxHeight && !occupied[grid.Cell{Row: frontier.Row + 1, Col: frontier.Col}] {
				candidates = append(candidates, layoutCandidate{frontier.Row, frontier.Col, grid.Vertical})
			}
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, candidate := range candidates {
		if candidate.row < 0 || candidate.row >= maxHeight || candidate.col < 0 || candidate.col >= maxWidth {
			continue
		}
		p := grid.PlacedDomino{Row: candidate.row, Col: candidate.col, Orientation: candidate.orientation}
		first, second := p.Cells()
		if occupied[first] || occupied[second] {
			continue
		}
		if second.Row >= maxHeight || second.Col >= maxWidth {
			continue
		}
		return candidate, true
	}
	return layoutCandidate{}, false
}

func normalize(placements []grid.PlacedDomino, occupied map[grid.Cell]bool) ([]grid.PlacedDomino, int, int) {
	if len(placements) == 0 {
		return nil, 0, 0
	}

	minRow, maxRow := int(^uint(0)>>1), -1
	minCol, maxCol := int(^uint(0)>>1), -1
	for cell := range occupied {
		minRow, maxRow = min(minRow, cell.Row), max(maxRow, cell.Row)
		minCol, maxCol = min(minCol, cell.Col), max(maxCol, cell.Col)
	}

	normalized := make([]grid.PlacedDomino, 0, len(placements))
	for _, p := range placements {
		normalized = append(normalized, grid.PlacedDomino{
			Domino:      p.Domino,
			Row:         p.Row - minRow,
			Col:         p.Col - minCol,
			Orientation: p.Orientation,
		})
	}
	return normalized, maxRow - minRow + 1, maxCol - minCol + 1
}

// SingleDominoRegions builds one Sum region per placed tile, targeted at that
// tile's pip sum.
func SingleDominoRegions(placements []grid.PlacedDomino) []grid.Region {
	regions := make([]grid.Region, 0, len(placements))
	for i, p := range placements {
		first, second := p.Cells()
		regions = append(regions, grid.Region{
			ID:         i,
			Cells:      []grid.Cell{first, second},
			Constraint: grid.Sum,
			Target:     grid.IntPtr(p.Domino.Pips()),
		})
	}
	return regions
}

// MergedRegions builds Sum regions by probabilistically merging adjacent tiles
// with a disjoint set over tile indices; a merged region's target is the sum
// of its tiles' pips. Region IDs follow the first tile index in each group, so
// output is deterministic for a fixed random source.
func MergedRegions(placements []grid.PlacedDomino, mergeProbability float64, rng *rand.Rand) []grid.Region {
	groups := dsu.New[int]()
	cellToTile := make(map[grid.Cell]int, 2*len(placements))

	for i, p := range placements {
		groups.MakeSet(i)
		first, second := p.Cells()
		cellToTile[first] = i
		cellToTile[second] = i
	}

	for i, p := range placements {
		first, second := p.Cells()
		for _, cell := range []grid.Cell{first, second} {
			for _, neighbor := range cell.Neighbors() {
				j, ok := cellToTile[neighbor]
				if ok && j != i && rng.Float64() < mergeProbability {
					groups.Union(i, j)
				}
			}
		}
	}

	// Assemble groups in tile-index order rather than map order.
	members := make(map[int][]int, len(placements))
	roots := make([]int, 0, len(placements))
	for i := range placements {
		root := groups.Find(i)
		if _, ok := members[root]; !ok {
			roots = append(roots, root)
		}
		members[root] = append(members[root], i)
	}

	regions := make([]grid.Region, 0, len(roots))
	for id, root := range roots {
		cells := make([]grid.Cell, 0, 2*len(members[root]))
		pips := 0
		for _, tile := range members[root] {
			first, second := placements[tile].Cells()
			cells = append(cells, first, second)
			pips += placements[tile].Domino.Pips()
		}
		regions = append(regions, grid.Region{
			ID:         id,
			Cells:      cells,
			Constraint: grid.Sum,
			Target:     grid.IntPtr(pips),
		})
	}
	return regions
}

// Generate assembles a complete puzzle from an organic layout: grow a
// connected shape, derive regions from the realized tiling (merged or one per
// tile), and record the tiling as the reference solution. The supply holds
// exactly the placed tiles, so a partial layout still yields a consistent
// puzzle.
func (g *LayoutGenerator) Generate(name, difficulty string, count int, merge bool) (*grid.Puzzle, error) {
	placements, rows, cols := g.ConnectedLayout(count, 10, 10)
	if len(placements) == 0 {
		return nil, fmt.Errorf("layout produced no placements")
	}

	var regions []grid.Region
	if merge {
		regions = MergedRegions(placements, 0.25, g.rng)
	} else {
		regions = SingleDominoRegions(placements)
	}

	supply := make(tiles.DominoSet, 0, len(placements))
	for _, p := range placements {
		supply = append(supply, p.Domino)
	}

	puzzle := &grid.Puzzle{
		Name:       name,
		Difficulty: difficulty,
		Rows:       rows,
		Cols:       cols,
		Regions:    regions,
		Supply:     supply,
		Solution:   placements,
	}
	if err := puzzle.Validate(); err != nil {
		return nil, err
	}
	return puzzle, nil
}

// GenerateUnique retries Generate until the solver certifies exactly one
// solution or the attempt budget runs out. A nil puzzle with the accumulated
// statistics is the "not found" outcome, not an error.
func (g *LayoutGenerator) GenerateUnique(name, difficulty string, count, budget int, merge bool) (*grid.Puzzle, Stats) {
	var stats Stats

	for stats.Attempts < budget {
		stats.Attempts++

		puzzle, err := g.Generate(name, difficulty, count, merge)
		if err != nil {
			continue
		}

		s := solver.New(puzzle, certifyCap)
		switch solutions := s.Solve(); {
		case solutions == 1:
			stats.UniqueFound++
			return puzzle, stats
		case solutions == 0:
			stats.NoSolution++
		default:
			stats.MultipleSolutions++
		}
	}
	return nil, stats
}
