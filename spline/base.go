package spline

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/cwbudde/algo-spline/internal/banded"
)

// bandwidth is the half-bandwidth of the combined system matrix: basis
// functions more than three nodes apart never overlap.
const bandwidth = 3

// lsRidge is the diagonal ridge applied in pure least-squares mode
// (wavelength zero). The data-term diagonal is O(1), so the perturbation
// is far below solve tolerance.
const lsRidge = 1e-9

// Base is one domain configuration: the node grid, the factored combined
// penalty and data-fit matrix, and the sample positions. A Base returned by
// New is immutable and may be shared freely across goroutines; each call to
// Fit produces an independent Spline.
type Base struct {
	x          []float64
	xmin, xmax float64
	wavelength float64
	bc         BoundaryType

	m     int     // node interval count; the grid has m+1 nodes
	dx    float64 // node spacing
	alpha float64 // roughness weight

	sys   *banded.System
	fact  *banded.Factorization
	nodes []float64

	log *slog.Logger
	ok  bool
}

// New builds a domain configuration for the sample positions x, a cutoff
// wavelength, and a boundary type. The wavelength is the scale below which
// variation is suppressed; zero disables the roughness penalty and leaves a
// pure least-squares fit. The node grid, system matrix, and factorization
// are computed once here and reused by every subsequent Fit.
func New(x []float64, wavelength float64, boundary BoundaryType, opts ...Option) (*Base, error) {
	if len(x) == 0 {
		return nil, ErrNoSamples
	}
	if wavelength < 0 {
		return nil, ErrWavelength
	}
	if !boundary.valid() {
		return nil, ErrBoundary
	}

	b := &Base{
		x:          slices.Clone(x),
		wavelength: wavelength,
		bc:         boundary,
		log:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}

	if err := b.planGrid(); err != nil {
		return nil, err
	}
	b.log.Debug("node grid selected", "intervals", b.m, "spacing", b.dx)

	b.alpha = alphaFor(wavelength)
	b.log.Debug("roughness weight computed", "alpha", b.alpha)

	b.sys = banded.NewSystem(b.m+1, bandwidth)
	b.addPenalty()
	b.addNormal()

	// With the penalty off the grid carries M+1 basis functions against
	// NX = M samples, so the bare normal equations are rank deficient.
	// A ridge far below the data-term scale keeps the system factorable.
	if b.alpha == 0 {
		for i := 0; i <= b.m; i++ {
			b.sys.Add(i, i, lsRidge)
		}
	}

	fact, err := banded.Factor(b.sys)
	if err != nil {
		b.log.Debug("factorization failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	b.fact = fact
	b.log.Debug("factorization complete")

	b.nodes = make([]float64, b.m+1)
	for i := range b.nodes {
		b.nodes[i] = b.xmin + float64(i)*b.dx
	}

	b.ok = true
	return b, nil
}

// OK reports whether the configuration is ready to produce fits. It is true
// for every Base returned by New and false for the zero value.
func (b *Base) OK() bool { return b != nil && b.ok }

// Intervals returns the node interval count M. The grid has M+1 nodes.
func (b *Base) Intervals() int {
	if !b.OK() {
		return 0
	}
	return b.m
}

// Spacing returns the node spacing DX.
func (b *Base) Spacing() float64 {
	if !b.OK() {
		return 0
	}
	return b.dx
}

// Wavelength returns the configured cutoff wavelength.
func (b *Base) Wavelength() float64 {
	if !b.OK() {
		return 0
	}
	return b.wavelength
}

// Boundary returns the configured boundary type.
func (b *Base) Boundary() BoundaryType {
	if !b.OK() {
		return 0
	}
	return b.bc
}

// Domain returns the abscissa bounds derived from the samples.
func (b *Base) Domain() (xmin, xmax float64) {
	if !b.OK() {
		return 0, 0
	}
	return b.xmin, b.xmax
}

// Nodes returns the M+1 node positions xmin + i*DX. The slice is a copy.
func (b *Base) Nodes() []float64 {
	if !b.OK() {
		return nil
	}
	return slices.Clone(b.nodes)
}

// Fit solves for the spline coefficients of one data vector y, which must
// have one value per domain sample. The configuration's factorization is
// reused, so fitting many data vectors against one Base is cheap. A solve
// failure is reported per fit and leaves the Base usable.
func (b *Base) Fit(y []float64) (*Spline, error) {
	if !b.OK() {
		return nil, ErrNotReady
	}
	if len(y) != len(b.x) {
		return nil, ErrDataLength
	}

	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))

	yc := make([]float64, len(y))
	for i, v := range y {
		yc[i] = v - mean
	}

	coeffs, err := b.fact.Solve(b.rhs(yc))
	if err != nil {
		b.log.Debug("solve failed", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
	}

	return &Spline{base: b, coeffs: coeffs, mean: mean}, nil
}
