package solver

import "fmt"

// symmetryPin breaks the mirror symmetry of the rectangle. Reflecting
// a packing along either axis yields another packing, so the largest
// square can be confined to the lower-left quadrant of its feasible
// positions: 2*C <= dim - size. Propagation runs both ways, capping
// the coordinate from the dimension's upper bound and lifting the
// dimension from the coordinate's lower bound.
type symmetryPin struct {
	axis  axis
	size  int
	coord varID
	dim   varID
}

func (p *symmetryPin) String() string { return "symmetry pin " + p.axis.String() }

func (p *symmetryPin) run(st *store) (bool, error) {
	changed, err := st.setMax(p.coord, (st.max(p.dim)-p.size)/2)
	if err != nil {
		return changed, err
	}
	ch, err := st.setMin(p.dim, 2*st.min(p.coord)+p.size)
	return changed || ch, err
}

// fgap returns the widest border gap beside a square of the given size
// that cannot appear in some minimal packing. A strip one cell wide
// between a square of size >= 2 and the border can only ever hold the
// unit square, and the unit square always fits in the cells the shift
// to the border vacates, so a gap of exactly 1 is never needed. No
// such exchange exists for the unit square itself.
func fgap(size int) int {
	if size < 2 {
		return 0
	}
	return 1
}

// gapRule excludes dominated border gaps for one square on one axis.
// Writing D for the axis dimension, C for the coordinate and g for
// fgap(size), positions with a border distance in 1..g are dominated,
// leaving C in {0} u [g+1, D-size-g-1] u {D-size}. Two zone booleans
// record which border the square claims:
//
//	bl = 1 -> C = 0        bl = 0 -> C >= g+1
//	bh = 1 -> C + size = D bh = 0 -> C + size + g + 1 <= D
//
// and at most one of them may hold. The rule only applies in this form
// while the middle region is non-degenerate for every remaining D
// (split mode, min(D) - size >= 2g+2). When even max(D) leaves no
// middle region every interior position sits in some border band, so
// the square must touch one border or the other and the booleans are
// left unconstrained. When the mode depends on where D lands, nothing
// is pruned.
type gapRule struct {
	axis   axis
	size   int
	gap    int
	coord  varID
	dim    varID
	bl, bh varID
}

func (p *gapRule) String() string {
	return fmt.Sprintf("gap rule %s size %d", p.axis.String(), p.size)
}

func (p *gapRule) run(st *store) (bool, error) {
	switch {
	case st.min(p.dim)-p.size >= 2*p.gap+2:
		return p.split(st)
	case st.max(p.dim)-p.size < 2*p.gap+2:
		return p.extremes(st)
	default:
		return false, nil
	}
}

func (p *gapRule) split(st *store) (bool, error) {
	changed := false

	// Resolve the low boolean from the coordinate, then apply it.
	if st.min(p.coord) >= 1 {
		ch, err := st.setMax(p.bl, 0)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.max(p.coord) <= p.gap {
		ch, err := st.setMin(p.bl, 1)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.min(p.bl) == 1 {
		ch, err := st.assign(p.coord, 0)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.max(p.bl) == 0 {
		ch, err := st.setMin(p.coord, p.gap+1)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}

	// Same for the high boolean, against the moving border D.
	if st.min(p.coord)+p.size > st.max(p.dim) || st.max(p.coord)+p.size < st.min(p.dim) {
		ch, err := st.setMax(p.bh, 0)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.min(p.coord)+p.size+p.gap+1 > st.max(p.dim) {
		ch, err := st.setMin(p.bh, 1)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.min(p.bh) == 1 {
		ch, err := p.flushHigh(st)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.max(p.bh) == 0 {
		ch, err := st.setMax(p.coord, st.max(p.dim)-p.size-p.gap-1)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
		ch, err = st.setMin(p.dim, st.min(p.coord)+p.size+p.gap+1)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}

	// A square cannot claim both borders.
	if st.min(p.bl) == 1 {
		ch, err := st.setMax(p.bh, 0)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	if st.min(p.bh) == 1 {
		ch, err := st.setMax(p.bl, 0)
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// extremes enforces the small-span disjunction C = 0 or C + size = D.
func (p *gapRule) extremes(st *store) (bool, error) {
	lowOK := st.min(p.coord) == 0
	highOK := st.min(p.coord)+p.size <= st.max(p.dim) && st.min(p.dim) <= st.max(p.coord)+p.size
	switch {
	case !lowOK && !highOK:
		return false, errEmptyDomain
	case !lowOK:
		return p.flushHigh(st)
	case !highOK:
		return st.assign(p.coord, 0)
	default:
		return false, nil
	}
}

// flushHigh couples C + size = D on both bounds.
func (p *gapRule) flushHigh(st *store) (bool, error) {
	changed, err := st.narrow(p.coord, st.min(p.dim)-p.size, st.max(p.dim)-p.size)
	if err != nil {
		return changed, err
	}
	ch, err := st.narrow(p.dim, st.min(p.coord)+p.size, st.max(p.coord)+p.size)
	return changed || ch, err
}
