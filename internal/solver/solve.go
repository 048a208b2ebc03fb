package solver

import (
	"context"

	"github.com/fd-lab/quadra/pkg/quadra"
)

// Solver finds least-area packings of the squares 1..n.
type Solver interface {
	Solve(ctx context.Context, n int) (*Result, error)
}

// Result is a complete packing as raw coordinate values. X and Y are
// indexed by square size; index 0 is unused.
type Result struct {
	Width, Height, Area int
	X, Y                []int
	Nodes, Backtracks   uint64
}

type solver struct {
	includeUnit bool
	tracer      quadra.Tracer
	nodeLimit   uint64
}

// Solve builds the constraint model for n squares and searches it. It
// returns the first packing found, which has minimal area, or an
// error when n is invalid, the search is cancelled, the node limit is
// hit, or every candidate is refuted.
func (s *solver) Solve(ctx context.Context, n int) (*Result, error) {
	if n < 1 {
		return nil, quadra.InvalidSizeError{N: n}
	}
	e := &engine{
		m:         newModel(n, s.includeUnit),
		tracer:    s.tracer,
		nodeLimit: s.nodeLimit,
	}
	return e.run(ctx)
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{includeUnit: true}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

// WithoutUnitSquare drops the unit square from constraint reasoning.
// The result still carries coordinates for it, parked at the origin;
// moving it into a free cell is the caller's job.
func WithoutUnitSquare() Option {
	return func(s *solver) error {
		s.includeUnit = false
		return nil
	}
}

func WithTracer(t quadra.Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

// WithNodeLimit aborts any solve that tries more than limit
// assignments. Zero means no limit.
func WithNodeLimit(limit uint64) Option {
	return func(s *solver) error {
		s.nodeLimit = limit
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}
