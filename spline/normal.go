package spline

import "gonum.org/v1/gonum/floats"

// addNormal accumulates the normal-equations contribution of every data
// sample into the banded system. Each sample touches the five basis
// functions whose support contains it; products of basis pairs further than
// three nodes apart vanish, so the band structure is preserved. No spacing
// factor is applied here: only the roughness term carries the DX scaling.
func (b *Base) addNormal() {
	for _, x := range b.x {
		mid := int((x - b.xmin) / b.dx)

		for m := max(0, mid-2); m <= min(b.m, mid+2); m++ {
			pm := b.basis(m, x)
			b.sys.Add(m, m, pm*pm)
			for n := m + 1; n <= min(b.m, m+3); n++ {
				b.sys.Add(m, n, pm*b.basis(n, x))
			}
		}
	}
}

// rhs assembles the right-hand side for the demeaned data vector yc:
// B[m] = Σ_j yc[j] * basis(m, X[j]).
func (b *Base) rhs(yc []float64) []float64 {
	out := make([]float64, b.m+1)
	col := make([]float64, len(b.x))
	for m := 0; m <= b.m; m++ {
		for j, x := range b.x {
			col[j] = b.basis(m, x)
		}
		out[m] = floats.Dot(yc, col)
	}
	return out
}
