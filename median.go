package clatter

import (
	"github.com/tphakala/go-clatter/internal/engine"
)

// MedianWindow is the number of samples the median filter looks back over.
const MedianWindow = 5

// MedianFilter is a streaming median over the last MedianWindow samples.
// Until the window has filled, the median covers only the samples pushed so
// far, averaging the two middle values for even counts. It does not allocate
// per sample and is not safe for concurrent use.
type MedianFilter struct {
	f *engine.MedianFilter
}

// NewMedianFilter creates an empty median filter.
func NewMedianFilter() *MedianFilter {
	return &MedianFilter{f: engine.NewMedianFilter()}
}

// Process pushes sample and returns the median of the current window.
func (m *MedianFilter) Process(sample float64) float64 {
	return m.f.Process(sample)
}

// Len returns how many samples the current median covers.
func (m *MedianFilter) Len() int {
	return m.f.Len()
}

// NonConvergent returns how many times selection exhausted its iteration
// bound and returned 0. A non-zero value indicates a bug.
func (m *MedianFilter) NonConvergent() uint64 {
	return m.f.NonConvergent()
}

// Reset empties the window.
func (m *MedianFilter) Reset() {
	m.f.Reset()
}
