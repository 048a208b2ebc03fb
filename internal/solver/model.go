package solver

import "fmt"

// model is the per-solve constraint network for one instance size.
type model struct {
	n    int
	unit bool
	b    bounds
	st   *store

	width, height, area varID
	x, y                []varID // indexed by size, entry 0 unused

	props []propagator
	order []varID
}

// newModel builds the variables and propagators for packing the
// squares 1..n. When unit is false the unit square keeps its slot in
// the coordinate slices but is pinned at the origin and left out of
// every pairwise, capacity and dominance rule; the caller moves it
// into a free cell once the others are placed.
func newModel(n int, unit bool) *model {
	m := &model{n: n, unit: unit, b: deriveBounds(n), st: newStore()}
	st := m.st

	m.width = st.addVar("width", m.b.widthLo(), m.b.widthHi())
	m.height = st.addVar("height", m.b.heightLo(), m.b.heightHi())
	m.area = st.addVar("area", m.b.minArea, m.b.maxArea)

	m.x = make([]varID, n+1)
	m.y = make([]varID, n+1)
	for i := 1; i <= n; i++ {
		xhi, yhi := m.b.widthHi()-i, m.b.heightHi()-i
		if i == 1 && !unit {
			xhi, yhi = 0, 0
		}
		m.x[i] = st.addVar(fmt.Sprintf("x[%d]", i), 0, xhi)
		m.y[i] = st.addVar(fmt.Sprintf("y[%d]", i), 0, yhi)
	}

	m.props = append(m.props,
		&orderedDims{width: m.width, height: m.height},
		&areaProduct{area: m.area, width: m.width, height: m.height},
	)

	sizes := m.consideredSizes()
	if len(sizes) > 0 {
		xs := make([]varID, len(sizes))
		ys := make([]varID, len(sizes))
		for k, i := range sizes {
			xs[k] = m.x[i]
			ys[k] = m.y[i]
		}
		m.props = append(m.props,
			&contained{axis: axisX, coords: xs, sizes: sizes, dim: m.width},
			&contained{axis: axisY, coords: ys, sizes: sizes, dim: m.height},
		)
		for a := 0; a < len(sizes); a++ {
			for b := a + 1; b < len(sizes); b++ {
				i, j := sizes[b], sizes[a]
				m.props = append(m.props, &noOverlap{
					i: i, j: j,
					xi: m.x[i], yi: m.y[i],
					xj: m.x[j], yj: m.y[j],
				})
			}
		}
		m.props = append(m.props,
			&capacity{axis: axisX, coords: xs, sizes: sizes, cap: m.height},
			&capacity{axis: axisY, coords: ys, sizes: sizes, cap: m.width},
		)

		largest := sizes[0]
		m.props = append(m.props,
			&symmetryPin{axis: axisX, size: largest, coord: m.x[largest], dim: m.width},
			&symmetryPin{axis: axisY, size: largest, coord: m.y[largest], dim: m.height},
		)
		for _, i := range sizes {
			g := fgap(i)
			if g == 0 {
				continue
			}
			m.props = append(m.props,
				&gapRule{
					axis: axisX, size: i, gap: g, coord: m.x[i], dim: m.width,
					bl: st.addVar(fmt.Sprintf("bl[x,%d]", i), 0, 1),
					bh: st.addVar(fmt.Sprintf("bh[x,%d]", i), 0, 1),
				},
				&gapRule{
					axis: axisY, size: i, gap: g, coord: m.y[i], dim: m.height,
					bl: st.addVar(fmt.Sprintf("bl[y,%d]", i), 0, 1),
					bh: st.addVar(fmt.Sprintf("bh[y,%d]", i), 0, 1),
				},
			)
		}
	}

	// Branch on the area first so the first packing found has the
	// least area, the height next so the width follows from the
	// product rule, then the coordinates of the squares from largest
	// to smallest, rows before columns. Zone booleans are never
	// branched; propagation resolves them.
	m.order = append(m.order, m.area, m.height)
	for _, i := range sizes {
		m.order = append(m.order, m.y[i])
	}
	for _, i := range sizes {
		m.order = append(m.order, m.x[i])
	}
	return m
}

// consideredSizes lists the squares subject to pairwise, capacity and
// dominance reasoning, largest first.
func (m *model) consideredSizes() []int {
	lowest := 2
	if m.unit {
		lowest = 1
	}
	var sizes []int
	for i := m.n; i >= lowest; i-- {
		sizes = append(sizes, i)
	}
	return sizes
}

// snapshot reads a complete assignment out of the store.
func (m *model) snapshot(nodes, backtracks uint64) *Result {
	res := &Result{
		Width:      m.st.value(m.width),
		Height:     m.st.value(m.height),
		Area:       m.st.value(m.area),
		X:          make([]int, m.n+1),
		Y:          make([]int, m.n+1),
		Nodes:      nodes,
		Backtracks: backtracks,
	}
	for i := 1; i <= m.n; i++ {
		res.X[i] = m.st.value(m.x[i])
		res.Y[i] = m.st.value(m.y[i])
	}
	return res
}
