package engine

import (
	"github.com/sirupsen/logrus"
)

// MedianFilter is a streaming median over the last five samples.
//
// Samples are written into a fixed ring whose write offset walks downwards
// 4, 3, 2, 1, 0 and then wraps. Until the ring has been filled once, the
// median only covers the samples written so far. The filter never allocates
// after construction and is not safe for concurrent use.
type MedianFilter struct {
	window  [medianWindowSize]float64
	scratch [medianWindowSize]float64
	offset  int
	full    bool

	// nonConvergent counts selections that exhausted the iteration cap.
	nonConvergent uint64
}

// NewMedianFilter creates an empty median filter.
func NewMedianFilter() *MedianFilter {
	return &MedianFilter{offset: medianWindowSize - 1}
}

// Reset clears the window and returns the filter to its empty state.
// The non-convergence counter is kept.
func (m *MedianFilter) Reset() {
	m.window = [medianWindowSize]float64{}
	m.offset = medianWindowSize - 1
	m.full = false
}

// Len returns the number of samples currently contributing to the median.
func (m *MedianFilter) Len() int {
	if m.full {
		return medianWindowSize
	}
	return medianWindowSize - 1 - m.offset
}

// NonConvergent returns how many selections hit the iteration cap and fell
// back to zero.
func (m *MedianFilter) NonConvergent() uint64 {
	return m.nonConvergent
}

// Process pushes sample into the window and returns the running median.
func (m *MedianFilter) Process(sample float64) float64 {
	m.window[m.offset] = sample

	valid := m.window[:]
	if !m.full {
		valid = m.window[m.offset:]
	}

	if m.offset == 0 {
		m.offset = medianWindowSize - 1
		m.full = true
	} else {
		m.offset--
	}

	return m.median(valid)
}

// median returns the median of values using the even/odd rule.
func (m *MedianFilter) median(values []float64) float64 {
	n := len(values)
	k := n / halfDivisor
	if n%halfDivisor == 1 {
		return m.selectRank(values, k)
	}
	return (m.selectRank(values, k-1) + m.selectRank(values, k)) / halfDivisor
}

// selectRank returns the k-th smallest element of values without modifying it.
func (m *MedianFilter) selectRank(values []float64, k int) float64 {
	scratch := m.scratch[:len(values)]
	copy(scratch, values)

	v, ok := selectKth(scratch, k)
	if !ok {
		m.nonConvergent++
		log().WithFields(logrus.Fields{
			"rank":   k,
			"window": len(values),
		}).Warn("median selection did not converge, returning 0")
	}
	return v
}

// selectKth partially orders a so that a[k] holds its k-th smallest element
// and returns it. Ranks at either end use a linear scan. The partition loop is
// capped at maxSelectIterations; when the cap is hit it returns 0 and false.
func selectKth(a []float64, k int) (float64, bool) {
	n := len(a)
	switch {
	case n == 0:
		return 0, true
	case k <= 0:
		return minOf(a), true
	case k >= n-1:
		return maxOf(a), true
	}

	lo, hi := 0, n-1
	for range maxSelectIterations {
		if lo >= hi {
			return a[k], true
		}

		p := partition(a, lo, hi, medianOfThree(a, lo, lo+(hi-lo)/halfDivisor, hi))
		switch {
		case k == p:
			return a[k], true
		case k < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}

	return 0, false
}

// medianOfThree returns whichever of the indices i, j, l holds the middle value.
func medianOfThree(a []float64, i, j, l int) int {
	if a[i] > a[j] {
		i, j = j, i
	}
	if a[j] > a[l] {
		j = l
		if a[i] > a[j] {
			j = i
		}
	}
	return j
}

// partition moves a[pivot] to its sorted position within a[lo:hi+1] and
// returns that position. Elements left of it are smaller than the pivot;
// elements right of it are greater or equal.
func partition(a []float64, lo, hi, pivot int) int {
	pv := a[pivot]
	a[pivot], a[hi] = a[hi], a[pivot]

	store := lo
	for i := lo; i < hi; i++ {
		if a[i] < pv {
			a[i], a[store] = a[store], a[i]
			store++
		}
	}
	a[store], a[hi] = a[hi], a[store]
	return store
}

func minOf(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(a []float64) float64 {
	m := a[0]
	for _, v := range a[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
