package spline

import "math"

// derivOrder is the order of the derivative constrained by the roughness
// penalty. The alpha closed form below handles orders 1..3, but the qparts
// integral table is precomputed for first-derivative products only, so the
// order stays fixed at 1.
const derivOrder = 1

// alphaFor converts a cutoff wavelength into the roughness weight
// (wl / 2π)^(2K). A zero wavelength disables the penalty.
func alphaFor(wl float64) float64 {
	a := wl / (2 * math.Pi)
	a *= a
	switch derivOrder {
	case 2:
		a *= a
	case 3:
		a *= a * a
	}
	return a
}

// qparts[d][k] is the integral of the product of the first derivatives of
// two normalized basis functions d nodes apart, over the k-th unit interval
// of the four-interval support.
var qparts = [4][4]float64{
	{0.11250, 0.63750, 0.63750, 0.11250},
	{0.00000, 0.13125, -0.54375, 0.13125},
	{0.00000, 0.00000, -0.22500, -0.22500},
	{0.00000, 0.00000, 0.00000, -0.01875},
}

// qDelta integrates the product of the first derivatives of the basis
// functions at nodes m1 and m2, truncated to the node domain 0..M and
// scaled by DX and alpha. It accepts the ghost node indices, which is how
// the edge corrections below reach outside the domain.
func (b *Base) qDelta(m1, m2 int) float64 {
	if m1 > m2 {
		m1, m2 = m2, m1
	}
	if m2-m1 > 3 {
		return 0
	}

	var q float64
	for m := max(m1-2, 0); m < min(m1+2, b.m); m++ {
		q += qparts[m2-m1][m-m1+2]
	}
	return q * b.dx * b.alpha
}

// addPenalty fills the banded system with the roughness penalty Q: the main
// diagonal and three off-diagonals of first-derivative energy integrals,
// followed by the ghost-node corrections for the two rows nearest each edge.
// A zero alpha leaves the system untouched (pure least-squares fit).
func (b *Base) addPenalty() {
	if b.alpha == 0 {
		return
	}

	for i := 0; i <= b.m; i++ {
		for j := i; j <= min(b.m, i+3); j++ {
			b.sys.Add(i, j, b.qDelta(i, j))
		}
	}

	// Upper-left corner: cross terms from coupling nodes 0 and 1 to the
	// left ghost node.
	for i := 0; i <= 1; i++ {
		b1 := b.beta(i)
		for j := i; j < i+4; j++ {
			b2 := b.beta(j)
			var q float64
			if i+1 < 4 {
				q += b2 * b.qDelta(ghostLeft, i)
			}
			if j+1 < 4 {
				q += b1 * b.qDelta(ghostLeft, j)
			}
			q += b1 * b2 * b.qDelta(ghostLeft, ghostLeft)
			b.sys.Add(i, j, q)
		}
	}

	// Lower-right corner: same corrections against the right ghost node.
	gr := b.ghostRight()
	for i := b.m - 1; i <= b.m; i++ {
		b1 := b.beta(i)
		for j := i - 3; j <= i; j++ {
			b2 := b.beta(j)
			var q float64
			if b.m+1-i < 4 {
				q += b2 * b.qDelta(i, gr)
			}
			if b.m+1-j < 4 {
				q += b1 * b.qDelta(j, gr)
			}
			q += b1 * b2 * b.qDelta(gr, gr)
			b.sys.Add(i, j, q)
		}
	}
}
