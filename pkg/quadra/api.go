package quadra

import (
	"errors"
	"fmt"
)

// InvalidSizeError is returned when a solve is requested for a
// non-positive instance size, before any solver state is built.
type InvalidSizeError struct {
	N int
}

func (e InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid instance size %d: must be at least 1", e.N)
}

// ExhaustedError is returned when the search runs out of candidates
// without finding a packing. The initial bounds are derived so that a
// packing always exists within them, so callers should treat this as
// an internal inconsistency rather than an unsatisfiable instance.
type ExhaustedError struct {
	N int
}

func (e ExhaustedError) Error() string {
	return fmt.Sprintf("search exhausted without a packing for n=%d: derived bounds should always admit one", e.N)
}

// ErrNodeLimit is returned when a solve gives up after visiting the
// configured maximum number of search nodes.
var ErrNodeLimit = errors.New("search node limit reached")

// Square is one placed square. Size is its side length and also its
// identity within a packing; X and Y locate its lower-left corner.
type Square struct {
	Size int `json:"size"`
	X    int `json:"x"`
	Y    int `json:"y"`
}

// Packing is a complete placement of the squares 1..N inside a
// Width x Height rectangle.
type Packing struct {
	Width   int      `json:"width"`
	Height  int      `json:"height"`
	Area    int      `json:"area"`
	Squares []Square `json:"squares"`
}

// Stats summarizes the work a solve performed.
type Stats struct {
	Nodes      uint64
	Backtracks uint64
}

// Validate checks every packing invariant: canonical orientation,
// consistent area, one square per size 1..N, squares inside the
// rectangle, and no overlapping pair. It returns nil for a valid
// packing and a descriptive error for the first violation found.
func (p Packing) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("rectangle %dx%d has a non-positive side", p.Width, p.Height)
	}
	if p.Height > p.Width {
		return fmt.Errorf("rectangle %dx%d is not in canonical orientation (height > width)", p.Width, p.Height)
	}
	if p.Area != p.Width*p.Height {
		return fmt.Errorf("area %d does not match %dx%d", p.Area, p.Width, p.Height)
	}
	seen := make(map[int]bool, len(p.Squares))
	for _, sq := range p.Squares {
		if sq.Size < 1 || sq.Size > len(p.Squares) {
			return fmt.Errorf("square of size %d does not belong to 1..%d", sq.Size, len(p.Squares))
		}
		if seen[sq.Size] {
			return fmt.Errorf("square of size %d appears twice", sq.Size)
		}
		seen[sq.Size] = true
		if sq.X < 0 || sq.Y < 0 || sq.X+sq.Size > p.Width || sq.Y+sq.Size > p.Height {
			return fmt.Errorf("square of size %d at (%d,%d) lies outside the %dx%d rectangle",
				sq.Size, sq.X, sq.Y, p.Width, p.Height)
		}
	}
	for i := 0; i < len(p.Squares); i++ {
		for j := i + 1; j < len(p.Squares); j++ {
			if overlaps(p.Squares[i], p.Squares[j]) {
				return fmt.Errorf("squares of size %d and %d overlap", p.Squares[i].Size, p.Squares[j].Size)
			}
		}
	}
	return nil
}

func overlaps(a, b Square) bool {
	return a.X < b.X+b.Size && b.X < a.X+a.Size &&
		a.Y < b.Y+b.Size && b.Y < a.Y+a.Size
}
