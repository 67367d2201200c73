package spline

import (
	"slices"
	"sync"
)

// Spline is one fitted curve: the coefficient vector solved for a single
// data vector plus its mean offset. A Spline owns its coefficients and
// caches; many Splines may share one Base without interference.
type Spline struct {
	base   *Base
	coeffs []float64
	mean   float64

	curveOnce sync.Once
	curve     []float64
}

// Evaluate returns the fitted curve value at x. The zero Spline evaluates
// to 0 everywhere.
func (s *Spline) Evaluate(x float64) float64 {
	if s == nil || !s.base.OK() {
		return 0
	}

	y := s.mean
	for i, a := range s.coeffs {
		y += a * s.base.basis(i, x)
	}
	return y
}

// Mean returns the arithmetic mean of the fitted data vector.
func (s *Spline) Mean() float64 {
	if s == nil || !s.base.OK() {
		return 0
	}
	return s.mean
}

// Coefficient returns coefficient n, or 0 when n is outside 0..M.
func (s *Spline) Coefficient(n int) float64 {
	if s == nil || !s.base.OK() || n < 0 || n >= len(s.coeffs) {
		return 0
	}
	return s.coeffs[n]
}

// Coefficients returns a copy of the full coefficient vector.
func (s *Spline) Coefficients() []float64 {
	if s == nil || !s.base.OK() {
		return nil
	}
	return slices.Clone(s.coeffs)
}

// Curve returns the fitted curve evaluated at the M+1 node positions. The
// evaluation runs once and is cached; the cache is safe for concurrent
// first access. The returned slice is a copy.
func (s *Spline) Curve() []float64 {
	if s == nil || !s.base.OK() {
		return nil
	}

	s.curveOnce.Do(func() {
		c := make([]float64, s.base.m+1)
		for i := range c {
			c[i] = s.Evaluate(s.base.xmin + float64(i)*s.base.dx)
		}
		s.curve = c
	})

	return slices.Clone(s.curve)
}
