package response

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spline/spline"
)

// Errors returned by response measurements.
var (
	ErrSampleCount = errors.New("response: sample count must be at least 16")
	ErrSpan        = errors.New("response: span must be positive")
	ErrCutoff      = errors.New("response: cutoff wavelength must be positive")
	ErrProbe       = errors.New("response: probe wavelength must be positive")
	ErrFFTSize     = errors.New("response: fft size must be a power of two >= 16")
)

// noiseSeed fixes the excitation used by Transfer so repeated measurements
// of the same configuration are identical.
const noiseSeed = 0x5eed

// Analyzer measures the effective frequency response of the band-limited
// smoother over a uniform domain [0, Span].
//
// The smoother has no closed-form transfer function: its attenuation
// depends on the node grid the planner picks for the given density and
// cutoff. Analyzer answers the practical question instead, by fitting known
// excitations and comparing output to input.
type Analyzer struct {
	Span        float64 // domain length
	SampleCount int     // number of uniform samples over the domain
	Cutoff      float64 // cutoff wavelength handed to the smoother
	Boundary    spline.BoundaryType
}

// Validate checks the analyzer parameters.
func (a *Analyzer) Validate() error {
	if a.Span <= 0 {
		return ErrSpan
	}
	if a.SampleCount < 16 {
		return ErrSampleCount
	}
	if a.Cutoff <= 0 {
		return ErrCutoff
	}
	return nil
}

// domain returns the uniform sample positions.
func (a *Analyzer) domain() []float64 {
	x := make([]float64, a.SampleCount)
	step := a.Span / float64(a.SampleCount-1)
	for i := range x {
		x[i] = float64(i) * step
	}
	return x
}

// Attenuation fits a unit-amplitude sinusoid of the given wavelength and
// returns the ratio of output to input RMS amplitude at the sample
// positions. Probes well above the cutoff wavelength pass nearly
// unattenuated; probes below it are suppressed.
func (a *Analyzer) Attenuation(probeWavelength float64) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if probeWavelength <= 0 {
		return 0, ErrProbe
	}

	x := a.domain()
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = math.Sin(2 * math.Pi * v / probeWavelength)
	}

	fit, err := a.fit(x, y)
	if err != nil {
		return 0, err
	}

	var num, den float64
	for i, v := range x {
		out := fit.Evaluate(v)
		num += out * out
		den += y[i] * y[i]
	}
	if den == 0 {
		return 0, nil
	}
	return math.Sqrt(num / den), nil
}

// Transfer estimates the smoother's magnitude transfer function by fitting
// seeded white noise and dividing the output spectrum by the input
// spectrum. The result holds fftSize/2 magnitude ratios from DC up to the
// sampling limit; bins where the input spectrum is nearly empty are
// regularized rather than divided to infinity.
func (a *Analyzer) Transfer(fftSize int) ([]float64, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if fftSize < 16 || fftSize < a.SampleCount || fftSize&(fftSize-1) != 0 {
		return nil, ErrFFTSize
	}

	x := a.domain()
	rng := rand.New(rand.NewSource(noiseSeed))
	y := make([]float64, len(x))
	for i := range y {
		y[i] = rng.Float64()*2 - 1
	}

	fit, err := a.fit(x, y)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = fit.Evaluate(v)
	}

	inMag, err := magnitudeSpectrum(y, fftSize)
	if err != nil {
		return nil, err
	}
	outMag, err := magnitudeSpectrum(out, fftSize)
	if err != nil {
		return nil, err
	}

	const eps = 1e-9
	ratio := make([]float64, fftSize/2)
	for i := range ratio {
		ratio[i] = outMag[i] / (inMag[i] + eps)
	}
	return ratio, nil
}

// fit builds a fresh configuration for the analyzer parameters and fits y.
func (a *Analyzer) fit(x, y []float64) (*spline.Spline, error) {
	base, err := spline.New(x, a.Cutoff, a.Boundary)
	if err != nil {
		return nil, fmt.Errorf("response: configure failed: %w", err)
	}
	fit, err := base.Fit(y)
	if err != nil {
		return nil, fmt.Errorf("response: fit failed: %w", err)
	}
	return fit, nil
}

// magnitudeSpectrum zero-pads the signal to fftSize and returns the
// magnitude of its forward FFT.
func magnitudeSpectrum(signal []float64, fftSize int) ([]float64, error) {
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, in); err != nil {
		return nil, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	re := make([]float64, fftSize)
	im := make([]float64, fftSize)
	for i, c := range freq {
		re[i] = real(c)
		im[i] = imag(c)
	}
	mag := make([]float64, fftSize)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}
