package spline

import "math"

// ghostLeft is the virtual node one interval left of node 0. Its right-hand
// counterpart sits at M+1 and is computed per configuration.
const ghostLeft = -1

// ghostRight returns the virtual node index one interval right of node M.
func (b *Base) ghostRight() int { return b.m + 1 }

// kernel evaluates the uncorrected normalized cubic B-spline centered on
// node m at x, via its piecewise cubic form. The support is |x-xm| < 2*DX.
// m may be any integer, including the ghost nodes outside 0..M.
func (b *Base) kernel(m int, x float64) float64 {
	xm := b.xmin + float64(m)*b.dx
	z := math.Abs(x-xm) / b.dx
	if z >= 2 {
		return 0
	}

	z = 2 - z
	y := 0.25 * z * z * z
	z -= 1
	if z > 0 {
		y -= z * z * z
	}
	return y
}

// basis evaluates the boundary-corrected basis function at node m for x.
// The two nodes nearest each domain edge carry an extra ghost-node term
// that enforces the configured boundary condition. m must lie in 0..M.
func (b *Base) basis(m int, x float64) float64 {
	y := b.kernel(m, x)
	switch {
	case m <= 1:
		y += b.beta(m) * b.kernel(ghostLeft, x)
	case m >= b.m-1:
		y += b.beta(m) * b.kernel(b.ghostRight(), x)
	}
	return y
}
