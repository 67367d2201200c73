package spline

import "fmt"

// BoundaryType selects the endpoint constraint applied to the fitted curve.
// The constraint is realized by coupling the four edge basis functions
// (nodes 0, 1, M-1 and M) to a virtual node just outside each end of the
// domain.
type BoundaryType int

const (
	// BoundaryZeroEndpoints constrains the curve to zero at both endpoints.
	BoundaryZeroEndpoints BoundaryType = iota
	// BoundaryZeroFirst constrains the first derivative to zero at both
	// endpoints.
	BoundaryZeroFirst
	// BoundaryZeroSecond constrains the second derivative to zero at both
	// endpoints.
	BoundaryZeroSecond
)

// String returns a human-readable name for the boundary type.
func (t BoundaryType) String() string {
	switch t {
	case BoundaryZeroEndpoints:
		return "zero-endpoints"
	case BoundaryZeroFirst:
		return "zero-first-derivative"
	case BoundaryZeroSecond:
		return "zero-second-derivative"
	default:
		return fmt.Sprintf("BoundaryType(%d)", int(t))
	}
}

func (t BoundaryType) valid() bool {
	return t >= BoundaryZeroEndpoints && t <= BoundaryZeroSecond
}

// boundaryCoeffs holds the ghost-node coupling coefficients per boundary
// type, addressed by edge-node offset 0..3 for nodes 0, 1, M-1 and M.
var boundaryCoeffs = [3][4]float64{
	BoundaryZeroEndpoints: {-4, -1, -1, -4},
	BoundaryZeroFirst:     {0, 1, 1, 0},
	BoundaryZeroSecond:    {2, -1, -1, 2},
}

// beta returns the ghost-node coupling coefficient for node m. Interior
// nodes do not couple to a ghost node. The index arithmetic is a hard
// contract: callers never pass nodes outside 0..M.
func (b *Base) beta(m int) float64 {
	if m > 1 && m < b.m-1 {
		return 0
	}
	if m >= b.m-1 {
		m -= b.m - 3
	}
	if m < 0 || m > 3 {
		panic(fmt.Sprintf("spline: beta offset %d out of range", m))
	}
	return boundaryCoeffs[b.bc][m]
}
