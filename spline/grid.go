package spline

// Node-grid selection policy. The search favors the coarsest grid that is
// still dense enough in data and fine enough relative to the cutoff
// wavelength; the thresholds are policy constants, not derived quantities.
const (
	startIntervals = 9    // search starts one past this interval count
	minNodeRatio   = 2.0  // minimum interval-span-to-wavelength ratio to stop coarse growth
	fineNodeRatio  = 4.0  // refinement target for the interval-span-to-wavelength ratio
	maxNodeRatio   = 15.0 // refinement abort threshold
	maxPointRatio  = 2.0  // maximum data points per node interval during refinement
)

// ratio computes the candidate spacing and the two search ratios for ni node
// intervals: ratiof is the interval span per cutoff wavelength and ratiod the
// data points per node. ok reports whether the data are dense enough (at
// least one point per node).
func (b *Base) ratio(ni int) (deltax, ratiof, ratiod float64, ok bool) {
	deltax = (b.xmax - b.xmin) / float64(ni)
	ratiof = deltax / b.wavelength
	ratiod = float64(len(b.x)) / float64(ni+1)
	return deltax, ratiof, ratiod, ratiod >= 1
}

// planGrid determines the domain bounds and chooses the node interval count
// M and spacing DX from the sample density and cutoff wavelength.
func (b *Base) planGrid() error {
	b.xmin, b.xmax = b.x[0], b.x[0]
	for _, v := range b.x[1:] {
		if v < b.xmin {
			b.xmin = v
		} else if v > b.xmax {
			b.xmax = v
		}
	}

	span := b.xmax - b.xmin
	if span <= 0 {
		return ErrZeroSpan
	}
	if b.wavelength > span {
		return ErrWavelength
	}

	// A zero wavelength turns the frequency constraint off entirely; the
	// grid then simply follows the sample count.
	if b.wavelength == 0 {
		b.m = len(b.x)
		b.dx = span / float64(len(b.x))
		return nil
	}

	ni := startIntervals
	var deltax, ratiof, ratiod float64
	var ok bool

	// Coarse growth: add intervals until each spans at most minNodeRatio
	// cutoff wavelengths.
	for {
		ni++
		deltax, ratiof, _, ok = b.ratio(ni)
		if !ok {
			return ErrSparseData
		}
		if ratiof <= minNodeRatio {
			break
		}
	}

	// Refinement: keep adding intervals while the grid is still too fine
	// per wavelength or too packed with data; back off one step when the
	// density runs out or the span ratio overshoots.
	for {
		ni++
		deltax, ratiof, ratiod, ok = b.ratio(ni)
		if !ok || ratiof > maxNodeRatio {
			ni--
			deltax, ratiof, _, _ = b.ratio(ni)
			break
		}
		if ratiof >= fineNodeRatio && ratiod <= maxPointRatio {
			break
		}
	}

	b.m = ni
	b.dx = deltax
	return nil
}
