package engine

import (
	"gonum.org/v1/gonum/floats"
)

// LinearSpace fills dst[0:n] with n evenly spaced values covering [0, 1].
// The step is 1/(n-1) and the last value is exactly 1; n must be at least 2
// and no larger than len(dst).
func LinearSpace(dst []float64, n int) []float64 {
	if n < minLinearSpacePoints || n > len(dst) {
		panic("engine: linear space length out of range")
	}
	x := floats.Span(dst[:n], 0, 1)
	x[n-1] = 1
	return x
}

// Interpolator performs piecewise-linear lookup over a monotonic abscissa.
//
// The scan position is cached between calls, so a pass of non-decreasing
// queries costs amortized O(1) per query. Queries issued out of order
// produce wrong values, never a panic; call Reset before starting a new pass.
type Interpolator struct {
	start int
}

// Reset rewinds the cached scan position.
func (p *Interpolator) Reset() {
	p.start = 0
}

// Start returns the cached scan position.
func (p *Interpolator) Start() int {
	return p.start
}

// At evaluates the curve at v.
//
// x is searched within [start, end). y is indexed in the same space as x,
// shifted by yOffset. lower is returned when v lies below x[0] and upper when
// v is not below any abscissa before end.
func (p *Interpolator) At(v float64, x, y []float64, yOffset, end int, lower, upper float64) float64 {
	if end > len(x) {
		end = len(x)
	}

	for i := p.start; i < end; i++ {
		if v >= x[i] {
			continue
		}

		// Resume at this segment: the next query may fall inside it too.
		p.start = i
		if i == 0 {
			return lower
		}

		x0 := x[i-1]
		y0 := y[i-1+yOffset]
		y1 := y[i+yOffset]
		t := (v - x0) / (x[i] - x0)
		return y0 + t*(y1-y0)
	}

	p.start = 0
	return upper
}
