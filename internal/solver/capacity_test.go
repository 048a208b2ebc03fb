package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityRaisesPerpendicularDimension(t *testing.T) {
	// Squares 3 and 2 fixed at x=0 and x=1 overlap in columns 1 and 2,
	// so those columns carry 5 cells: the height must be at least 5.
	st := newStore()
	x3 := st.addVar("x[3]", 0, 0)
	x2 := st.addVar("x[2]", 1, 1)
	h := st.addVar("height", 4, 8)

	p := &capacity{axis: axisX, coords: []varID{x3, x2}, sizes: []int{3, 2}, cap: h}
	changed, err := p.run(st)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 5, st.min(h))
}

func TestCapacityFailsOnOverload(t *testing.T) {
	st := newStore()
	x3 := st.addVar("x[3]", 0, 0)
	x2 := st.addVar("x[2]", 1, 1)
	h := st.addVar("height", 4, 4)

	p := &capacity{axis: axisX, coords: []varID{x3, x2}, sizes: []int{3, 2}, cap: h}
	_, err := p.run(st)
	assert.ErrorIs(t, err, errEmptyDomain)
}

func TestCapacityTrimsInfeasibleStarts(t *testing.T) {
	// Square 4 occupies columns 0..3 of a height-5 rectangle. Square 2
	// cannot start before column 4: it would stack to 6 somewhere.
	st := newStore()
	x4 := st.addVar("x[4]", 0, 0)
	x2 := st.addVar("x[2]", 0, 6)
	h := st.addVar("height", 5, 5)

	p := &capacity{axis: axisX, coords: []varID{x4, x2}, sizes: []int{4, 2}, cap: h}
	changed, err := p.run(st)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 4, st.min(x2))
	assert.Equal(t, 6, st.max(x2))
}

func TestCapacityIgnoresOwnCompulsoryPart(t *testing.T) {
	// A single square never conflicts with its own profile entries.
	st := newStore()
	x3 := st.addVar("x[3]", 1, 2)
	h := st.addVar("height", 3, 3)

	p := &capacity{axis: axisX, coords: []varID{x3}, sizes: []int{3}, cap: h}
	changed, err := p.run(st)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, 1, st.min(x3))
	assert.Equal(t, 2, st.max(x3))
}

func TestCapacityEmptiesCoordinateWhenNothingFits(t *testing.T) {
	// Square 2 is confined to the columns square 3 already fills, and
	// height 4 cannot hold both, so trimming empties its domain.
	st := newStore()
	x3 := st.addVar("x[3]", 0, 0)
	x2 := st.addVar("x[2]", 0, 2)
	h := st.addVar("height", 4, 4)

	p := &capacity{axis: axisX, coords: []varID{x3, x2}, sizes: []int{3, 2}, cap: h}
	_, err := p.run(st)
	assert.ErrorIs(t, err, errEmptyDomain)
}
