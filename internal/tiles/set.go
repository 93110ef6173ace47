package tiles

import (
	"fmt"
	"math/rand"

	"github.com/samber/lo"
)

// DominoSet is an ordered collection of dominoes. Duplicates are permitted:
// a supply may legitimately hold the same tile twice.
type DominoSet []Domino

// DoubleSix returns the standard double-six set (28 tiles, pips 0..6).
func DoubleSix() DominoSet {
	return rangeSet(6, func(Domino) bool { return true })
}

// DoubleNine returns the double-nine set (55 tiles, pips 0..9).
func DoubleNine() DominoSet {
	return rangeSet(9, func(Domino) bool { return true })
}

// DoubleNineRemainder returns the 27 tiles of the double-nine set that are not
// in the double-six set, i.e. tiles with at least one side >= 7.
func DoubleNineRemainder() DominoSet {
	return rangeSet(9, func(d Domino) bool { return d.High() >= 7 })
}

func rangeSet(max int, keep func(Domino) bool) DominoSet {
	set := make(DominoSet, 0, (max+1)*(max+2)/2)
	for i := 0; i <= max; i++ {
		for j := i; j <= max; j++ {
			if d := NewDomino(i, j); keep(d) {
				set = append(set, d)
			}
		}
	}
	return set
}

// Subset returns a random sample of n dominoes drawn without replacement.
func (s DominoSet) Subset(n int, rng *rand.Rand) (DominoSet, error) {
	if n > len(s) {
		return nil, fmt.Errorf("cannot select %d from %d dominoes", n, len(s))
	}
	indices := rng.Perm(len(s))[:n]
	return lo.Map(indices, func(i int, _ int) Domino { return s[i] }), nil
}

// Shuffle returns a new set holding the same dominoes in a random order. The
// receiver is left untouched.
func (s DominoSet) Shuffle(rng *rand.Rand) DominoSet {
	shuffled := make(DominoSet, len(s))
	copy(shuffled, s)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// TotalPips returns the combined pip count of every tile in the set.
func (s DominoSet) TotalPips() int {
	return lo.SumBy(s, func(d Domino) int { return d.Pips() })
}

func (s DominoSet) String() string {
	return fmt.Sprintf("DominoSet(%d tiles)", len(s))
}
