package solver

import (
	"context"
	"fmt"

	"github.com/fd-lab/quadra/internal/solver"
	"github.com/fd-lab/quadra/pkg/quadra"
)

// Solver packs the squares of sizes 1..n into a rectangle of least
// area. A Solver is stateless between calls and safe to reuse; every
// Solve builds its own variable store.
type Solver struct {
	tracer    quadra.Tracer
	unit      bool
	nodeLimit uint64
}

func New(options ...Option) (*Solver, error) {
	s := Solver{unit: true}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *Solver) error

// WithTracer streams search events to t.
func WithTracer(t quadra.Tracer) Option {
	return func(s *Solver) error {
		s.tracer = t
		return nil
	}
}

// WithoutUnitSquare excludes the 1x1 square from constraint
// reasoning. The returned packing still contains it: after the search
// it is moved into a free cell, which the area lower bound guarantees
// exists.
func WithoutUnitSquare() Option {
	return func(s *Solver) error {
		s.unit = false
		return nil
	}
}

// WithNodeLimit makes Solve fail with quadra.ErrNodeLimit once the
// search has tried limit assignments. Zero means unlimited.
func WithNodeLimit(limit uint64) Option {
	return func(s *Solver) error {
		s.nodeLimit = limit
		return nil
	}
}

var defaults = []Option{
	func(s *Solver) error {
		if s.tracer == nil {
			s.tracer = solver.DefaultTracer{}
		}
		return nil
	},
}

// Solve searches for a least-area packing of the squares 1..n. The
// candidate areas are tried in increasing order and each is fully
// refuted before the next, so the first packing found is optimal.
func (s *Solver) Solve(ctx context.Context, n int) (*Solution, error) {
	core, err := solver.NewSolver(s.coreOptions()...)
	if err != nil {
		return nil, err
	}
	res, err := core.Solve(ctx, n)
	if err != nil {
		return nil, err
	}

	packing := quadra.Packing{
		Width:   res.Width,
		Height:  res.Height,
		Area:    res.Area,
		Squares: make([]quadra.Square, 0, n),
	}
	for i := 1; i < len(res.X); i++ {
		packing.Squares = append(packing.Squares, quadra.Square{Size: i, X: res.X[i], Y: res.Y[i]})
	}
	if !s.unit {
		placeUnitSquare(&packing)
	}
	if err := packing.Validate(); err != nil {
		return nil, fmt.Errorf("solver produced an invalid packing: %w", err)
	}
	return &Solution{
		packing: packing,
		stats:   quadra.Stats{Nodes: res.Nodes, Backtracks: res.Backtracks},
	}, nil
}

func (s *Solver) coreOptions() []solver.Option {
	options := []solver.Option{solver.WithTracer(s.tracer)}
	if !s.unit {
		options = append(options, solver.WithoutUnitSquare())
	}
	if s.nodeLimit > 0 {
		options = append(options, solver.WithNodeLimit(s.nodeLimit))
	}
	return options
}

// placeUnitSquare moves the unit square into the first free cell in
// row-major order. A solve that excluded it from reasoning leaves it
// parked at the origin, possibly under another square.
func placeUnitSquare(p *quadra.Packing) {
	occupied := make([]bool, p.Width*p.Height)
	for _, sq := range p.Squares {
		if sq.Size == 1 {
			continue
		}
		for y := sq.Y; y < sq.Y+sq.Size; y++ {
			for x := sq.X; x < sq.X+sq.Size; x++ {
				occupied[y*p.Width+x] = true
			}
		}
	}
	for cell, taken := range occupied {
		if taken {
			continue
		}
		for i := range p.Squares {
			if p.Squares[i].Size == 1 {
				p.Squares[i].X = cell % p.Width
				p.Squares[i].Y = cell / p.Width
				return
			}
		}
	}
}
