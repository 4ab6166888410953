package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// LinearSpace
// =============================================================================

func TestLinearSpace(t *testing.T) {
	dst := make([]float64, 8)
	x := LinearSpace(dst, 5)

	require.Len(t, x, 5)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.5, 0.75, 1}, x, 1e-15)
	assert.Zero(t, dst[5], "samples past n must not be touched")
}

func TestLinearSpace_InvalidLength(t *testing.T) {
	assert.Panics(t, func() { LinearSpace(make([]float64, 4), 1) })
	assert.Panics(t, func() { LinearSpace(make([]float64, 4), 5) })
}

// =============================================================================
// Interpolator
// =============================================================================

func TestInterpolator_Segments(t *testing.T) {
	x := []float64{0, 0.5, 1}
	y := []float64{0, 10, 20}

	testCases := []struct {
		v        float64
		expected float64
		desc     string
	}{
		{0, 0, "first_abscissa"},
		{0.25, 5, "first_segment_midpoint"},
		{0.5, 10, "inner_abscissa"},
		{0.75, 15, "second_segment_midpoint"},
		{0.999, 19.98, "just_below_end"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			var p Interpolator
			assert.InDelta(t, tc.expected, p.At(tc.v, x, y, 0, len(x), -1, 99), 1e-12)
		})
	}
}

func TestInterpolator_Boundaries(t *testing.T) {
	x := []float64{0.2, 0.6, 1}
	y := []float64{1, 2, 3}

	var p Interpolator
	assert.Equal(t, -1.0, p.At(0.1, x, y, 0, len(x), -1, 99), "below domain returns lower")

	p.Reset()
	assert.Equal(t, 99.0, p.At(1, x, y, 0, len(x), -1, 99), "at or past the last abscissa returns upper")
	assert.Zero(t, p.Start(), "returning upper rewinds the cache")
}

func TestInterpolator_YOffset(t *testing.T) {
	x := []float64{0, 0.5, 1}
	y := []float64{100, 100, 0, 4, 8, 100}

	var p Interpolator
	assert.InDelta(t, 2.0, p.At(0.25, x, y, 2, len(x), 0, 0), 1e-12)
	assert.InDelta(t, 6.0, p.At(0.75, x, y, 2, len(x), 0, 0), 1e-12)
}

// TestInterpolator_CachedPassMatchesFresh verifies that a non-decreasing pass
// using the cached scan position yields the same values as independent lookups,
// including several queries inside the same segment.
func TestInterpolator_CachedPassMatchesFresh(t *testing.T) {
	x := LinearSpace(make([]float64, 11), 11)
	y := make([]float64, 11)
	for i := range y {
		y[i] = float64(i * i)
	}

	grid := LinearSpace(make([]float64, 97), 97)

	var cached Interpolator
	for _, v := range grid {
		var fresh Interpolator
		want := fresh.At(v, x, y, 0, len(x), y[0], y[10])
		got := cached.At(v, x, y, 0, len(x), y[0], y[10])
		require.InDelta(t, want, got, 1e-12, "v=%v", v)
	}
}

func TestInterpolator_EndLimitsScan(t *testing.T) {
	x := []float64{0, 0.5, 1}
	y := []float64{0, 1, 2}

	var p Interpolator
	assert.Equal(t, 7.0, p.At(0.75, x, y, 0, 2, 0, 7), "abscissae at or past end are not searched")
	p.Reset()
	assert.InDelta(t, 1.5, p.At(0.75, x, y, 0, 10, 0, 7), 1e-12, "end past len(x) is clamped")
}
