package tiles

import "fmt"

// Domino is a tile with two pip values stored in canonical order (low <= high).
// It is an immutable value type: two dominoes are equal iff their canonical
// pairs are equal, so Domino can be used directly as a map key.
type Domino struct {
	low  int
	high int
}

// NewDomino builds a canonical domino from two pip values. Arguments given in
// the wrong order are swapped silently rather than rejected.
func NewDomino(a, b int) Domino {
	if a > b {
		a, b = b, a
	}
	return Domino{low: a, high: b}
}

func (d Domino) Low() int {
	return d.low
}

func (d Domino) High() int {
	return d.high
}

// Pips returns the total pip count of the tile.
func (d Domino) Pips() int {
	return d.low + d.high
}

// IsDouble reports whether both halves carry the same value.
func (d Domino) IsDouble() bool {
	return d.low == d.high
}

func (d Domino) String() string {
	return fmt.Sprintf("[%d|%d]", d.low, d.high)
}
