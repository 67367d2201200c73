package spline

import (
	"testing"

	"github.com/cwbudde/algo-spline/internal/banded"
)

func TestQDeltaSymmetric(t *testing.T) {
	b := testBase(12, BoundaryZeroFirst)
	for m1 := -1; m1 <= b.m+1; m1++ {
		for m2 := -1; m2 <= b.m+1; m2++ {
			if got, want := b.qDelta(m1, m2), b.qDelta(m2, m1); got != want {
				t.Fatalf("qDelta(%d,%d) = %v but qDelta(%d,%d) = %v", m1, m2, got, m2, m1, want)
			}
		}
	}
}

func TestQDeltaBandLimit(t *testing.T) {
	b := testBase(12, BoundaryZeroFirst)
	for m1 := 0; m1 <= b.m; m1++ {
		for m2 := m1 + 4; m2 <= b.m; m2++ {
			if got := b.qDelta(m1, m2); got != 0 {
				t.Fatalf("qDelta(%d,%d) = %v, want 0 beyond the band", m1, m2, got)
			}
		}
	}
}

func TestQDeltaInteriorValues(t *testing.T) {
	// Away from the domain edges the clipped sums reduce to the full row
	// sums of the integral table.
	b := testBase(20, BoundaryZeroFirst)
	cases := []struct {
		m2   int
		want float64
	}{
		{10, 1.5},
		{11, -0.28125},
		{12, -0.45},
		{13, -0.01875},
	}
	for _, c := range cases {
		if got := b.qDelta(10, c.m2); !almostEqual(got, c.want, eps) {
			t.Errorf("qDelta(10,%d) = %v, want %v", c.m2, got, c.want)
		}
	}
}

func TestQDeltaScaling(t *testing.T) {
	b := testBase(20, BoundaryZeroFirst)
	b.dx = 2
	b.alpha = 3
	if got, want := b.qDelta(10, 10), 1.5*2*3; !almostEqual(got, want, eps) {
		t.Errorf("qDelta with dx=2 alpha=3 = %v, want %v", got, want)
	}
}

func TestPenaltySkippedWhenAlphaZero(t *testing.T) {
	b := testBase(12, BoundaryZeroFirst)
	b.alpha = 0
	b.sys = banded.NewSystem(b.m+1, bandwidth)
	b.addPenalty()
	for i := 0; i <= b.m; i++ {
		for j := 0; j <= b.m; j++ {
			if b.sys.At(i, j) != 0 {
				t.Fatalf("penalty written at (%d,%d) despite alpha == 0", i, j)
			}
		}
	}
}

func TestSystemSymmetricAfterAssembly(t *testing.T) {
	b, err := New(uniform(21), 5, BoundaryZeroSecond)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i <= b.m; i++ {
		for j := 0; j <= b.m; j++ {
			if got, want := b.sys.At(i, j), b.sys.At(j, i); got != want {
				t.Fatalf("system asymmetric at (%d,%d): %v vs %v", i, j, got, want)
			}
		}
	}
}

func TestPenaltyBoundaryCornersSymmetric(t *testing.T) {
	// Corner corrections must keep the assembled penalty symmetric for
	// every boundary type.
	for bc := BoundaryZeroEndpoints; bc <= BoundaryZeroSecond; bc++ {
		b := testBase(12, bc)
		b.sys = banded.NewSystem(b.m+1, bandwidth)
		b.addPenalty()
		for i := 0; i <= b.m; i++ {
			for j := 0; j <= b.m; j++ {
				if got, want := b.sys.At(i, j), b.sys.At(j, i); got != want {
					t.Fatalf("bc %v: penalty asymmetric at (%d,%d)", bc, i, j)
				}
			}
		}
	}
}
