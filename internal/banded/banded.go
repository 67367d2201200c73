// Package banded provides symmetric banded linear-system storage with a
// factor-once, solve-many interface backed by gonum's banded Cholesky.
package banded

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the banded solver.
var (
	ErrNotPositiveDefinite = errors.New("banded: matrix is singular or not positive definite")
	ErrDimensionMismatch   = errors.New("banded: right-hand side length does not match system size")
)

// System is an n×n symmetric banded matrix under assembly. Entries beyond
// the half-bandwidth are implicitly zero.
type System struct {
	n, k int
	m    *mat.SymBandDense
}

// NewSystem returns a zeroed n×n symmetric system with the given
// half-bandwidth. A bandwidth of n or more is clamped to the full matrix.
func NewSystem(n, bandwidth int) *System {
	if bandwidth >= n {
		bandwidth = n - 1
	}
	return &System{
		n: n,
		k: bandwidth,
		m: mat.NewSymBandDense(n, bandwidth, nil),
	}
}

// Dim returns the system size n.
func (s *System) Dim() int { return s.n }

// Bandwidth returns the half-bandwidth.
func (s *System) Bandwidth() int { return s.k }

// At returns the element at (i, j). Elements outside the band are zero.
// The matrix is symmetric, so At(i, j) == At(j, i).
func (s *System) At(i, j int) float64 {
	return s.m.At(i, j)
}

// Add accumulates v into the (i, j) element. (i, j) and (j, i) address the
// same storage; adding to one updates both views.
func (s *System) Add(i, j int, v float64) {
	if i > j {
		i, j = j, i
	}
	s.m.SetSymBand(i, j, s.m.At(i, j)+v)
}

// Factorization holds the Cholesky decomposition of a System. It keeps its
// own copy of the matrix, so the source System may keep accumulating (or be
// discarded) after factoring.
type Factorization struct {
	n    int
	chol mat.BandCholesky
}

// Factor decomposes the system. It fails if the matrix is singular or not
// positive definite.
func Factor(s *System) (*Factorization, error) {
	f := &Factorization{n: s.n}
	if ok := f.chol.Factorize(s.m); !ok {
		return nil, ErrNotPositiveDefinite
	}
	return f, nil
}

// Solve solves the factored system for the given right-hand side and returns
// a freshly allocated solution vector. rhs is not modified.
func (f *Factorization) Solve(rhs []float64) ([]float64, error) {
	if len(rhs) != f.n {
		return nil, ErrDimensionMismatch
	}

	var dst mat.VecDense
	if err := f.chol.SolveVecTo(&dst, mat.NewVecDense(len(rhs), rhs)); err != nil {
		return nil, fmt.Errorf("banded: solve failed: %w", err)
	}

	out := make([]float64, f.n)
	for i := range out {
		out[i] = dst.AtVec(i)
	}
	return out, nil
}
