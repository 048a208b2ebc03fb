package solver

import (
	"context"
	"fmt"

	"github.com/fd-lab/quadra/pkg/quadra"
)

// searchState names the phases of the solve loop.
type searchState int

const (
	statePropagating searchState = iota
	stateBranching
	stateBacktracking
	stateSolved
	stateExhausted
)

// frame is one open choice point: the trail mark taken just before
// val was tried for v.
type frame struct {
	at  mark
	v   varID
	val int
}

// engine runs a depth-first search with chronological backtracking
// over a model. Variables are branched in the model's fixed order and
// values in increasing order, so the search is deterministic and,
// with the area leading the order, the first packing found is one of
// least area: every smaller area was refuted before it.
type engine struct {
	m         *model
	tracer    quadra.Tracer
	nodeLimit uint64

	frames     []frame
	nodes      uint64
	backtracks uint64
}

// Depth and Nodes let the engine stand in as the position handed to
// tracers.
func (e *engine) Depth() int    { return len(e.frames) }
func (e *engine) Nodes() uint64 { return e.nodes }

// next returns the first variable in branching order whose domain
// still holds more than one value.
func (e *engine) next() (varID, bool) {
	for _, v := range e.m.order {
		if !e.m.st.fixed(v) {
			return v, true
		}
	}
	return 0, false
}

func (e *engine) run(ctx context.Context) (*Result, error) {
	st := e.m.st
	state := statePropagating
	for {
		switch state {
		case statePropagating:
			if p, err := fixpoint(st, e.m.props); err != nil {
				e.tracer.Fail(e, p.String())
				state = stateExhausted
			} else {
				state = stateBranching
			}

		case stateBranching:
			if err := ctx.Err(); err != nil {
				st.restore(0)
				return nil, fmt.Errorf("search interrupted: %w", err)
			}
			if e.nodeLimit > 0 && e.nodes >= e.nodeLimit {
				st.restore(0)
				return nil, quadra.ErrNodeLimit
			}
			v, ok := e.next()
			if !ok {
				state = stateSolved
				break
			}
			val := st.min(v)
			e.frames = append(e.frames, frame{at: st.checkpoint(), v: v, val: val})
			e.nodes++
			if _, err := st.assign(v, val); err != nil {
				state = stateBacktracking
				break
			}
			e.tracer.Branch(e, st.name(v), val)
			if p, err := fixpoint(st, e.m.props); err != nil {
				e.tracer.Fail(e, p.String())
				state = stateBacktracking
			}

		case stateBacktracking:
			if err := ctx.Err(); err != nil {
				st.restore(0)
				return nil, fmt.Errorf("search interrupted: %w", err)
			}
			if len(e.frames) == 0 {
				state = stateExhausted
				break
			}
			f := e.frames[len(e.frames)-1]
			e.frames = e.frames[:len(e.frames)-1]
			st.restore(f.at)
			e.backtracks++
			// Values are tried in increasing order, so discarding the
			// failed one raises the lower bound past it. The narrowing
			// lands above the parent frame's mark and is undone with it.
			if _, err := st.setMin(f.v, f.val+1); err != nil {
				e.tracer.Backtrack(e, st.name(f.v))
				break
			}
			if p, err := fixpoint(st, e.m.props); err != nil {
				e.tracer.Fail(e, p.String())
				break
			}
			state = stateBranching

		case stateSolved:
			e.tracer.Solution(e)
			return e.m.snapshot(e.nodes, e.backtracks), nil

		case stateExhausted:
			st.restore(0)
			return nil, quadra.ExhaustedError{N: e.m.n}
		}
	}
}
