package generator

import "fmt"

// Stats accumulates generation outcomes. "No solution" and "multiple
// solutions" are rejected candidates, not errors; the counters exist so a
// caller can see how hard the search worked.
type Stats struct {
	Attempts          int
	UniqueFound       int
	NoSolution        int
	MultipleSolutions int
}

func (s Stats) String() string {
	return fmt.Sprintf("attempts=%d unique=%d no-solution=%d multiple=%d",
		s.Attempts, s.UniqueFound, s.NoSolution, s.MultipleSolutions)
}
