package engine

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceMedian sorts a copy of values and applies the even/odd rule.
func referenceMedian(values []float64) float64 {
	s := slices.Clone(values)
	slices.Sort(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// =============================================================================
// MedianFilter
// =============================================================================

func TestMedianFilter_PrefixThenFullWindow(t *testing.T) {
	m := NewMedianFilter()

	steps := []struct {
		sample   float64
		expected float64
		valid    int
	}{
		{5, 5, 1},
		{3, 4, 2},   // (3+5)/2
		{1, 3, 3},   // {1,3,5}
		{4, 3.5, 4}, // (3+4)/2
		{2, 3, 5},   // {1,2,3,4,5}
	}

	for i, s := range steps {
		got := m.Process(s.sample)
		assert.InDelta(t, s.expected, got, 1e-15, "after push %d", i+1)
		assert.Equal(t, s.valid, m.Len(), "valid window after push %d", i+1)
	}
}

func TestMedianFilter_SlidingWindow(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, extra := range []int{0, 1, 2, 3, 4, 5, 17, 250} {
		m := NewMedianFilter()
		pushed := make([]float64, 0, extra+medianWindowSize)

		var got float64
		for range extra + medianWindowSize {
			v := math.Round(rng.NormFloat64()*10) / 2 // coarse values to force ties
			pushed = append(pushed, v)
			got = m.Process(v)
		}

		want := referenceMedian(pushed[len(pushed)-medianWindowSize:])
		require.Equal(t, want, got, "N=%d", extra)
	}
}

func TestMedianFilter_EveryStepMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewMedianFilter()
	var pushed []float64

	for i := range 1000 {
		v := rng.Float64()
		pushed = append(pushed, v)
		got := m.Process(v)

		lo := max(0, len(pushed)-medianWindowSize)
		require.Equal(t, referenceMedian(pushed[lo:]), got, "step %d", i)
	}
	assert.Zero(t, m.NonConvergent())
}

func TestMedianFilter_Outlier(t *testing.T) {
	m := NewMedianFilter()
	var last float64
	for _, v := range []float64{1, 1, 1000, 1, 1} {
		last = m.Process(v)
	}
	assert.Equal(t, 1.0, last, "a single spike must be rejected")
}

func TestMedianFilter_Reset(t *testing.T) {
	m := NewMedianFilter()
	for _, v := range []float64{9, 8, 7, 6, 5, 4} {
		m.Process(v)
	}
	require.Equal(t, medianWindowSize, m.Len())

	m.Reset()
	assert.Zero(t, m.Len())
	assert.Equal(t, 2.0, m.Process(2), "no stale samples after reset")
}

func TestMedianFilter_NoAllocations(t *testing.T) {
	m := NewMedianFilter()
	x := 0.0
	allocs := testing.AllocsPerRun(100, func() {
		x += 0.37
		m.Process(math.Sin(x))
	})
	assert.Zero(t, allocs)
}

func TestMedianFilter_NaNDoesNotHang(t *testing.T) {
	m := NewMedianFilter()
	assert.NotPanics(t, func() {
		for _, v := range []float64{1, math.NaN(), 3, math.NaN(), 2, 5} {
			m.Process(v)
		}
	})
}

// =============================================================================
// Selection
// =============================================================================

func TestSelectKth_AllRanks(t *testing.T) {
	testCases := []struct {
		values []float64
		desc   string
	}{
		{[]float64{5}, "single"},
		{[]float64{2, 1}, "pair"},
		{[]float64{3, 1, 2}, "three"},
		{[]float64{4, 4, 4, 4, 4}, "all_equal"},
		{[]float64{1, 2, 3, 4, 5}, "sorted"},
		{[]float64{5, 4, 3, 2, 1}, "reversed"},
		{[]float64{2, 7, 2, 7, 2}, "ties"},
		{[]float64{-0.5, 3, -8, 3, 0}, "mixed_sign"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			sorted := slices.Clone(tc.values)
			slices.Sort(sorted)

			for k := range tc.values {
				work := slices.Clone(tc.values)
				got, ok := selectKth(work, k)
				require.True(t, ok)
				assert.Equal(t, sorted[k], got, "rank %d", k)
			}
		})
	}
}

func TestSelectKth_EndRanksScan(t *testing.T) {
	values := []float64{3, -1, 8, 2}
	work := slices.Clone(values)

	v, ok := selectKth(work, 0)
	assert.True(t, ok)
	assert.Equal(t, -1.0, v)

	v, ok = selectKth(work, 3)
	assert.True(t, ok)
	assert.Equal(t, 8.0, v)

	assert.Equal(t, values, work, "min/max scans leave the slice untouched")
}

func TestMedianOfThree(t *testing.T) {
	testCases := [][]float64{
		{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}, {2, 2, 1}, {1, 2, 2},
	}
	for _, a := range testCases {
		idx := medianOfThree(a, 0, 1, 2)
		assert.Equal(t, referenceMedian(a), a[idx], "%v", a)
	}
}
