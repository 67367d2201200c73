// Package response measures the frequency response of the band-limited
// smoothing spline.
//
// The smoother in package spline suppresses variation below its cutoff
// wavelength, but the exact attenuation depends on the node grid chosen for
// a given sample density. This package measures the realized behavior:
//
//   - [Analyzer.Attenuation] fits a probe sinusoid of a chosen wavelength
//     and reports the output/input RMS amplitude ratio.
//   - [Analyzer.Transfer] fits seeded white noise and reports the
//     per-frequency-bin magnitude ratio of output over input spectra.
//
// Both operate over a uniform domain, which keeps the grid planner's choice
// reproducible for a given Analyzer.
package response
