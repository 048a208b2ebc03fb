package solver

// bounds collects the scalar limits derived from the instance size
// before any variable is created.
type bounds struct {
	n int

	// minArea is the summed area of the squares themselves; no smaller
	// rectangle can contain them.
	minArea int

	// maxWidth and refHeight describe a reference packing that always
	// exists: the squares floor(n/2)+1..n side by side in one row, with
	// every smaller square stacked in the leftover space above. Its area
	// caps the area worth searching.
	maxWidth  int
	refHeight int
	maxArea   int

	// maxHeight is the tallest canonical rectangle (height <= width)
	// with at most maxArea cells; minWidth the narrowest with at least
	// minArea cells.
	maxHeight int
	minWidth  int
}

// deriveBounds computes the initial limits for n squares of sizes 1..n.
// Callers must reject n < 1 first.
func deriveBounds(n int) bounds {
	b := bounds{n: n}
	for i := 1; i <= n; i++ {
		b.minArea += i * i
	}
	for i := n/2 + 1; i <= n; i++ {
		b.maxWidth += i
	}
	b.refHeight = n
	if n%2 == 0 {
		b.refHeight = n + 1
	}
	b.maxArea = b.maxWidth * b.refHeight
	b.maxHeight = isqrt(b.maxArea)
	b.minWidth = isqrt(b.minArea)
	if b.minWidth*b.minWidth < b.minArea {
		b.minWidth++
	}
	return b
}

// widthLo and widthHi bound the Width domain. The upper bound takes the
// reference packing's larger side so that short-and-wide optima such as
// the 3x2 rectangle for n=2 stay reachable; the lower bound must admit
// the largest square.
func (b bounds) widthLo() int {
	if b.n > b.minWidth {
		return b.n
	}
	return b.minWidth
}

func (b bounds) widthHi() int {
	if b.refHeight > b.maxWidth {
		return b.refHeight
	}
	return b.maxWidth
}

// heightLo and heightHi bound the Height domain.
func (b bounds) heightLo() int { return b.n }
func (b bounds) heightHi() int { return b.maxHeight }

// isqrt returns floor(sqrt(v)) for v >= 0 using only integers.
func isqrt(v int) int {
	if v < 2 {
		return v
	}
	r := v
	x := (r + 1) / 2
	for x < r {
		r = x
		x = (x + v/x) / 2
	}
	return r
}
