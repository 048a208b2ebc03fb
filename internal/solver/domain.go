package solver

import (
	"errors"
	"fmt"
)

// errEmptyDomain reports a narrowing that would leave a variable with
// no admissible values. It never escapes the engine; the search loop
// converts it into a backtrack.
var errEmptyDomain = errors.New("empty domain")

// varID indexes a variable within a store.
type varID int32

// change records the bounds a variable held before a narrowing, so the
// narrowing can be undone.
type change struct {
	v      varID
	lo, hi int
}

// store owns one contiguous integer interval per variable together
// with a trail of bound changes. All narrowing during propagation and
// search funnels through narrow, so rewinding the trail to a
// checkpoint restores the exact previous state.
type store struct {
	lo, hi []int
	names  []string
	trail  []change
}

func newStore() *store {
	return &store{}
}

// addVar creates a variable with the inclusive domain [lo, hi].
func (s *store) addVar(name string, lo, hi int) varID {
	s.lo = append(s.lo, lo)
	s.hi = append(s.hi, hi)
	s.names = append(s.names, name)
	return varID(len(s.lo) - 1)
}

func (s *store) min(v varID) int     { return s.lo[v] }
func (s *store) max(v varID) int     { return s.hi[v] }
func (s *store) fixed(v varID) bool  { return s.lo[v] == s.hi[v] }
func (s *store) name(v varID) string { return s.names[v] }

// value returns the single value of a fixed variable.
func (s *store) value(v varID) int {
	if !s.fixed(v) {
		panic(fmt.Sprintf("variable %s read before it was fixed", s.names[v]))
	}
	return s.lo[v]
}

// narrow intersects v's domain with [lo, hi]. It reports whether the
// domain shrank, so propagators can detect fixpoints, and fails with
// errEmptyDomain when the intersection is empty.
func (s *store) narrow(v varID, lo, hi int) (bool, error) {
	if lo < s.lo[v] {
		lo = s.lo[v]
	}
	if hi > s.hi[v] {
		hi = s.hi[v]
	}
	if lo > hi {
		return false, errEmptyDomain
	}
	if lo == s.lo[v] && hi == s.hi[v] {
		return false, nil
	}
	s.trail = append(s.trail, change{v: v, lo: s.lo[v], hi: s.hi[v]})
	s.lo[v], s.hi[v] = lo, hi
	return true, nil
}

func (s *store) setMin(v varID, lo int) (bool, error) {
	return s.narrow(v, lo, s.hi[v])
}

func (s *store) setMax(v varID, hi int) (bool, error) {
	return s.narrow(v, s.lo[v], hi)
}

func (s *store) assign(v varID, val int) (bool, error) {
	return s.narrow(v, val, val)
}

// mark is a checkpoint into the trail.
type mark int

func (s *store) checkpoint() mark {
	return mark(len(s.trail))
}

// restore rewinds every change recorded after m, most recent first.
func (s *store) restore(m mark) {
	for i := len(s.trail) - 1; i >= int(m); i-- {
		c := s.trail[i]
		s.lo[c.v], s.hi[c.v] = c.lo, c.hi
	}
	s.trail = s.trail[:m]
}
