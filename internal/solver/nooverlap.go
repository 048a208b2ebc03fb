package solver

import "fmt"

// noOverlap separates one pair of squares: they must not share a cell,
// so at least one of the four relative positions must hold:
//
//	X[i]+i <= X[j]  or  X[j]+j <= X[i]  or  Y[i]+i <= Y[j]  or  Y[j]+j <= Y[i]
//
// When three of the disjuncts are impossible under the current domains
// the fourth is enforced as a hard narrowing; when all four are
// impossible the pair cannot be separated and the propagator fails.
// With two or more disjuncts still open nothing is pruned; the
// disjunction stays undecided until search or other propagators commit
// the pair.
type noOverlap struct {
	i, j           int
	xi, yi, xj, yj varID
}

func (p *noOverlap) String() string {
	return fmt.Sprintf("no-overlap(%d,%d)", p.i, p.j)
}

// disjuncts are indexed: 0 i left of j, 1 j left of i, 2 i below j,
// 3 j below i.
func (p *noOverlap) run(st *store) (bool, error) {
	possible := [4]bool{
		st.min(p.xi)+p.i <= st.max(p.xj),
		st.min(p.xj)+p.j <= st.max(p.xi),
		st.min(p.yi)+p.i <= st.max(p.yj),
		st.min(p.yj)+p.j <= st.max(p.yi),
	}
	open := 0
	last := -1
	for k, ok := range possible {
		if ok {
			open++
			last = k
		}
	}
	switch open {
	case 0:
		return false, errEmptyDomain
	case 1:
		return p.enforce(st, last)
	default:
		return false, nil
	}
}

// enforce applies one disjunct as a hard inequality low + size <= high,
// narrowing both sides.
func (p *noOverlap) enforce(st *store, k int) (bool, error) {
	var low, high varID
	var size int
	switch k {
	case 0:
		low, high, size = p.xi, p.xj, p.i
	case 1:
		low, high, size = p.xj, p.xi, p.j
	case 2:
		low, high, size = p.yi, p.yj, p.i
	case 3:
		low, high, size = p.yj, p.yi, p.j
	}
	changed, err := st.setMin(high, st.min(low)+size)
	if err != nil {
		return changed, err
	}
	ch, err := st.setMax(low, st.max(high)-size)
	return changed || ch, err
}
