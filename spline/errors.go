package spline

import "errors"

// Errors returned during configuration and fitting. Configuration errors
// are deterministic functions of the input; nothing here is retryable.
var (
	ErrNoSamples   = errors.New("spline: domain needs at least one sample")
	ErrZeroSpan    = errors.New("spline: domain samples span zero width")
	ErrWavelength  = errors.New("spline: cutoff wavelength must lie within [0, domain span]")
	ErrBoundary    = errors.New("spline: boundary type out of range")
	ErrSparseData  = errors.New("spline: too few samples for the requested cutoff wavelength")
	ErrSingular    = errors.New("spline: combined system matrix cannot be factored")
	ErrNotReady    = errors.New("spline: configuration is not ready")
	ErrDataLength  = errors.New("spline: data length does not match the domain sample count")
	ErrSolveFailed = errors.New("spline: solve failed for this data vector")
)
