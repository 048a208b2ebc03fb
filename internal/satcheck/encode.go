// Package satcheck decides rectangle feasibility questions with a SAT
// solver. It shares no code with the interval-propagation engine, so
// the two can be played against each other: the engine claims an area
// is minimal, satcheck confirms that every smaller rectangle really
// admits no packing.
package satcheck

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/fd-lab/quadra/pkg/quadra"
)

const satisfiable = 1

// coverage records which squares could claim one cell.
type coverage struct {
	size int
	lit  z.Lit
}

// Feasible reports whether the squares 1..n fit into a width x height
// rectangle without overlapping. Each candidate position of each
// square becomes one literal; a packing exists exactly when every
// square can hold at least one position and no cell is claimed by two
// different squares, so those clauses are handed to gini verbatim.
//
// When includeUnit is false the unit square is left out of the
// encoding, mirroring the solver flag of the same name. The area
// precondition still counts its cell, which guarantees the free cell
// the caller will slot it into.
func Feasible(ctx context.Context, n, width, height int, includeUnit bool) (bool, error) {
	if n < 1 {
		return false, quadra.InvalidSizeError{N: n}
	}
	if width < 1 || height < 1 {
		return false, fmt.Errorf("invalid rectangle %dx%d: both sides must be at least 1", width, height)
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	// Necessary conditions that need no search: the largest square
	// must fit, and the rectangle must have a cell for every unit of
	// square area.
	total := 0
	for i := 1; i <= n; i++ {
		total += i * i
	}
	if n > width || n > height || total > width*height {
		return false, nil
	}

	lowest := 2
	if includeUnit {
		lowest = 1
	}
	if lowest > n {
		return true, nil
	}

	c := logic.NewC()
	var clauses []z.Lit
	cover := make([][]coverage, width*height)

	for i := lowest; i <= n; i++ {
		var positions []z.Lit
		for x := 0; x <= width-i; x++ {
			for y := 0; y <= height-i; y++ {
				m := c.Lit()
				positions = append(positions, m)
				for cx := x; cx < x+i; cx++ {
					for cy := y; cy < y+i; cy++ {
						cell := cy*width + cx
						cover[cell] = append(cover[cell], coverage{size: i, lit: m})
					}
				}
			}
		}
		clauses = append(clauses, c.Ors(positions...))
	}

	for _, claims := range cover {
		for a := 0; a < len(claims); a++ {
			for b := a + 1; b < len(claims); b++ {
				if claims[a].size == claims[b].size {
					continue
				}
				clauses = append(clauses, c.Or(claims[a].lit.Not(), claims[b].lit.Not()))
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}
	g := gini.New()
	c.ToCnf(g)
	g.Assume(clauses...)
	return g.Solve() == satisfiable, nil
}
