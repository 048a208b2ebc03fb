package solver

import "github.com/fd-lab/quadra/pkg/quadra"

// Solution is returned by the Solver when the search completes. It
// carries the packing itself plus counters describing the search that
// produced it.
type Solution struct {
	packing quadra.Packing
	stats   quadra.Stats
}

// Packing returns the solved placement. Its area is minimal over all
// rectangles that can hold the squares.
func (s *Solution) Packing() quadra.Packing {
	return s.packing
}

// Stats returns the search counters behind the packing.
func (s *Solution) Stats() quadra.Stats {
	return s.stats
}
