package solver

import "fmt"

// propagator narrows variable domains toward consistency with one
// constraint. run reports whether it changed any domain and returns
// errEmptyDomain when the constraint cannot be satisfied under the
// current domains. Propagators must be sound: they may only remove
// values that appear in no packing the remaining rules admit.
type propagator interface {
	fmt.Stringer
	run(st *store) (bool, error)
}

// fixpoint sweeps the propagators until a full pass leaves every
// domain unchanged. On failure it returns the propagator that detected
// the conflict together with the error.
func fixpoint(st *store, props []propagator) (propagator, error) {
	for {
		changed := false
		for _, p := range props {
			ch, err := p.run(st)
			if err != nil {
				return p, err
			}
			changed = changed || ch
		}
		if !changed {
			return nil, nil
		}
	}
}

// orderedDims keeps the rectangle in canonical orientation,
// Height <= Width.
type orderedDims struct {
	width, height varID
}

func (p *orderedDims) String() string { return "height <= width" }

func (p *orderedDims) run(st *store) (bool, error) {
	changed, err := st.setMax(p.height, st.max(p.width))
	if err != nil {
		return changed, err
	}
	ch, err := st.setMin(p.width, st.min(p.height))
	return changed || ch, err
}

// areaProduct links Area = Width * Height by interval arithmetic. Once
// Area and Height are fixed, Width either snaps to their quotient or,
// when the division does not come out even, the domain empties and the
// assignment is rejected.
type areaProduct struct {
	area, width, height varID
}

func (p *areaProduct) String() string { return "area = width * height" }

func (p *areaProduct) run(st *store) (bool, error) {
	changed := false
	ch, err := st.narrow(p.area, st.min(p.width)*st.min(p.height), st.max(p.width)*st.max(p.height))
	changed = changed || ch
	if err != nil {
		return changed, err
	}
	ch, err = st.narrow(p.width, ceilDiv(st.min(p.area), st.max(p.height)), st.max(p.area)/st.min(p.height))
	changed = changed || ch
	if err != nil {
		return changed, err
	}
	ch, err = st.narrow(p.height, ceilDiv(st.min(p.area), st.max(p.width)), st.max(p.area)/st.min(p.width))
	changed = changed || ch
	return changed, err
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// contained keeps every square inside the rectangle on one axis:
// coord + size <= dim.
type contained struct {
	axis   axis
	coords []varID
	sizes  []int
	dim    varID
}

func (p *contained) String() string { return "containment " + p.axis.String() }

func (p *contained) run(st *store) (bool, error) {
	changed := false
	for k, c := range p.coords {
		ch, err := st.setMax(c, st.max(p.dim)-p.sizes[k])
		changed = changed || ch
		if err != nil {
			return changed, err
		}
		ch, err = st.setMin(p.dim, st.min(c)+p.sizes[k])
		changed = changed || ch
		if err != nil {
			return changed, err
		}
	}
	return changed, nil
}

// axis tags x/y specific propagators for diagnostics.
type axis int

const (
	axisX axis = iota
	axisY
)

func (a axis) String() string {
	if a == axisX {
		return "x"
	}
	return "y"
}
