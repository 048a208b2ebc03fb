package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveBounds(t *testing.T) {
	type tc struct {
		Name      string
		N         int
		MinArea   int
		MaxWidth  int
		RefHeight int
		MaxArea   int
		MaxHeight int
		MinWidth  int
	}

	for _, tt := range []tc{
		{Name: "n=1", N: 1, MinArea: 1, MaxWidth: 1, RefHeight: 1, MaxArea: 1, MaxHeight: 1, MinWidth: 1},
		{Name: "n=2", N: 2, MinArea: 5, MaxWidth: 2, RefHeight: 3, MaxArea: 6, MaxHeight: 2, MinWidth: 3},
		{Name: "n=3", N: 3, MinArea: 14, MaxWidth: 5, RefHeight: 3, MaxArea: 15, MaxHeight: 3, MinWidth: 4},
		{Name: "n=4", N: 4, MinArea: 30, MaxWidth: 7, RefHeight: 5, MaxArea: 35, MaxHeight: 5, MinWidth: 6},
		{Name: "n=5", N: 5, MinArea: 55, MaxWidth: 12, RefHeight: 5, MaxArea: 60, MaxHeight: 7, MinWidth: 8},
		{Name: "n=6", N: 6, MinArea: 91, MaxWidth: 15, RefHeight: 7, MaxArea: 105, MaxHeight: 10, MinWidth: 10},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			b := deriveBounds(tt.N)
			assert.Equal(t, tt.MinArea, b.minArea)
			assert.Equal(t, tt.MaxWidth, b.maxWidth)
			assert.Equal(t, tt.RefHeight, b.refHeight)
			assert.Equal(t, tt.MaxArea, b.maxArea)
			assert.Equal(t, tt.MaxHeight, b.maxHeight)
			assert.Equal(t, tt.MinWidth, b.minWidth)
		})
	}
}

func TestBoundsDomains(t *testing.T) {
	// The n=2 optimum is the 3x2 rectangle: wider than the two-square
	// row of the reference packing, so the width upper bound must take
	// the reference height into account.
	b := deriveBounds(2)
	assert.Equal(t, 3, b.widthLo())
	assert.Equal(t, 3, b.widthHi())
	assert.Equal(t, 2, b.heightLo())
	assert.Equal(t, 2, b.heightHi())

	b = deriveBounds(5)
	assert.Equal(t, 8, b.widthLo())
	assert.Equal(t, 12, b.widthHi())
	assert.Equal(t, 5, b.heightLo())
	assert.Equal(t, 7, b.heightHi())
}

func TestIsqrt(t *testing.T) {
	for _, v := range []struct{ in, out int }{
		{0, 0}, {1, 1}, {2, 1}, {3, 1}, {4, 2}, {8, 2}, {9, 3},
		{15, 3}, {16, 4}, {35, 5}, {36, 6}, {60, 7}, {105, 10}, {10000, 100},
	} {
		assert.Equal(t, v.out, isqrt(v.in), fmt.Sprintf("isqrt(%d)", v.in))
	}
}
