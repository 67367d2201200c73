package spline

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// testBase returns a hand-built configuration for unit-level basis and
// penalty checks, bypassing the grid planner.
func testBase(m int, bc BoundaryType) *Base {
	return &Base{
		xmin:  0,
		xmax:  float64(m),
		m:     m,
		dx:    1,
		bc:    bc,
		alpha: 1,
	}
}

func TestKernelCompactSupport(t *testing.T) {
	b := testBase(10, BoundaryZeroFirst)
	for _, x := range []float64{2.0, 3.0, 7.0, 12.5} {
		if got := b.kernel(5, x); got != 0 {
			t.Errorf("kernel(5, %v) = %v, want 0 outside support", x, got)
		}
	}
	for _, x := range []float64{3.001, 5.0, 6.999} {
		if got := b.kernel(5, x); got <= 0 {
			t.Errorf("kernel(5, %v) = %v, want > 0 inside support", x, got)
		}
	}
}

func TestKernelPiecewiseValues(t *testing.T) {
	b := testBase(10, BoundaryZeroFirst)
	cases := []struct {
		x    float64
		want float64
	}{
		{5.0, 1.0},    // at the node
		{4.0, 0.25},   // one interval away
		{6.0, 0.25},   // symmetric
		{5.5, 0.71875}, // 0.25*1.5^3 - 0.5^3
		{3.0, 0},      // support edge
	}
	for _, c := range cases {
		if got := b.kernel(5, c.x); !almostEqual(got, c.want, 1e-4) {
			t.Errorf("kernel(5, %v) = %v, want %v", c.x, got, c.want)
		}
	}
}

func TestKernelSymmetric(t *testing.T) {
	b := testBase(10, BoundaryZeroFirst)
	for _, d := range []float64{0.1, 0.7, 1.3, 1.9} {
		l := b.kernel(5, 5-d)
		r := b.kernel(5, 5+d)
		if !almostEqual(l, r, eps) {
			t.Errorf("kernel asymmetric at offset %v: %v vs %v", d, l, r)
		}
	}
}

func TestKernelGhostNodes(t *testing.T) {
	b := testBase(10, BoundaryZeroFirst)
	// The ghost nodes sit one interval outside the domain and still reach
	// into it.
	if got := b.kernel(ghostLeft, 0); !almostEqual(got, 0.25, eps) {
		t.Errorf("kernel(ghostLeft, 0) = %v, want 0.25", got)
	}
	if got := b.kernel(b.ghostRight(), 10); !almostEqual(got, 0.25, eps) {
		t.Errorf("kernel(ghostRight, 10) = %v, want 0.25", got)
	}
}

func TestBetaInteriorZero(t *testing.T) {
	for bc := BoundaryZeroEndpoints; bc <= BoundaryZeroSecond; bc++ {
		b := testBase(20, bc)
		for m := 2; m < b.m-1; m++ {
			if got := b.beta(m); got != 0 {
				t.Errorf("bc %v: beta(%d) = %v, want 0 for interior node", bc, m, got)
			}
		}
	}
}

func TestBetaEdgeCoefficients(t *testing.T) {
	b := testBase(20, BoundaryZeroEndpoints)
	want := []float64{-4, -1, -1, -4}
	for i, m := range []int{0, 1, b.m - 1, b.m} {
		if got := b.beta(m); got != want[i] {
			t.Errorf("beta(%d) = %v, want %v", m, got, want[i])
		}
	}
}

func TestBasisZeroEndpointsVanishesAtEdges(t *testing.T) {
	b := testBase(20, BoundaryZeroEndpoints)
	for _, m := range []int{0, 1, b.m - 1, b.m} {
		for _, x := range []float64{0, 20} {
			if got := b.basis(m, x); !almostEqual(got, 0, eps) {
				t.Errorf("basis(%d, %v) = %v, want 0 at domain edge", m, x, got)
			}
		}
	}
}

func TestBasisZeroFirstFlatAtEdges(t *testing.T) {
	b := testBase(20, BoundaryZeroFirst)
	// Numerical derivative of every edge-corrected basis function must
	// vanish at the endpoints.
	const h = 1e-6
	for _, m := range []int{0, 1, b.m - 1, b.m} {
		dl := (b.basis(m, h) - b.basis(m, 0)) / h
		dr := (b.basis(m, 20) - b.basis(m, 20-h)) / h
		if !almostEqual(dl, 0, 1e-5) || !almostEqual(dr, 0, 1e-5) {
			t.Errorf("basis(%d) edge slopes = %v, %v, want 0", m, dl, dr)
		}
	}
}

func TestBasisInteriorMatchesKernel(t *testing.T) {
	b := testBase(20, BoundaryZeroSecond)
	for _, x := range []float64{8.5, 10, 11.9} {
		if got, want := b.basis(10, x), b.kernel(10, x); !almostEqual(got, want, eps) {
			t.Errorf("basis(10, %v) = %v, want uncorrected %v", x, got, want)
		}
	}
}
