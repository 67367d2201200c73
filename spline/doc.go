// Package spline fits band-limited smoothing curves through noisy,
// possibly unevenly spaced one-dimensional samples.
//
// The fit is a least-squares projection onto a cubic B-spline basis,
// regularized by a first-derivative roughness penalty whose weight follows
// from a cutoff wavelength: variation on scales shorter than the cutoff is
// suppressed, which makes the result a low-pass smoother rather than an
// interpolant. Boundary behavior is selectable via [BoundaryType].
//
// # Usage
//
// Configuration and fitting are split so that one domain setup can serve
// many data vectors:
//
//	base, err := spline.New(x, 30.0, spline.BoundaryZeroSecond)
//	if err != nil {
//		// invalid domain, wavelength, or too few samples
//	}
//	fit, err := base.Fit(y)       // one solve per data vector
//	v := fit.Evaluate(12.5)       // smoothed value anywhere in the domain
//	c := fit.Curve()              // curve at the node positions
//
// New chooses a node grid from the sample density and the cutoff
// wavelength, assembles the banded penalty and normal-equations matrix,
// and factors it once. Fit then only assembles a right-hand side and
// solves against the cached factorization.
//
// A wavelength of zero disables the penalty entirely and yields the plain
// least-squares fit on a grid with one interval per sample.
//
// # Concurrency
//
// A [Base] is immutable once built and safe for concurrent use. Each [Spline]
// owns its coefficients; its curve cache is initialized at most once and is
// safe for concurrent first access.
package spline
