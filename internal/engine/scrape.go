package engine

import (
	"math"
	"sync"

	"github.com/tphakala/simd/f64"
)

// ScrapeParams holds the physical parameters of one scrape tick.
type ScrapeParams struct {
	Speed          float64 // current scrape speed
	MaxSpeed       float64 // speed at which the force reaches full scale
	PrimaryMass    float64 // mass of the scraping object
	RoughnessRatio float64
	SimulationAmp  float64
	ScrapeAmp      float64
	NumPoints      int // curve samples consumed per tick
}

var (
	defaultGridOnce sync.Once
	defaultGrid     []float64
)

// sharedDefaultGrid returns the sampling grid for DefaultScrapeSamples.
// It is built once and never modified.
func sharedDefaultGrid() []float64 {
	defaultGridOnce.Do(func() {
		defaultGrid = LinearSpace(make([]float64, DefaultScrapeSamples), DefaultScrapeSamples)
	})
	return defaultGrid
}

// ScrapeGenerator turns surface-derivative curves into scrape audio.
//
// Each tick walks NumPoints samples of the dsdx and d2sdx2 curves, resamples
// them onto a fixed grid, shapes them into a friction force and convolves the
// force with an impulse response. The generator owns the scrape cursor and the
// median filter state, so one generator serves one voice.
type ScrapeGenerator struct {
	samples int
	grid    []float64 // immutable, shared for the default size

	linearSpace []float64
	force       []float64

	horizontal Interpolator
	vertical   Interpolator
	median     *MedianFilter
	conv       *Convolver

	scrapeIndex int
}

// NewScrapeGenerator creates a generator producing samples outputs per tick,
// with linear space scratch for up to maxPoints curve samples.
func NewScrapeGenerator(samples, maxPoints int) *ScrapeGenerator {
	if samples < minLinearSpacePoints || maxPoints < minLinearSpacePoints {
		panic("engine: scrape generator sizes out of range")
	}

	grid := sharedDefaultGrid()
	if samples != DefaultScrapeSamples {
		grid = LinearSpace(make([]float64, samples), samples)
	}

	return &ScrapeGenerator{
		samples:     samples,
		grid:        grid,
		linearSpace: make([]float64, maxPoints),
		force:       make([]float64, samples),
		median:      NewMedianFilter(),
		conv:        NewConvolver(samples),
	}
}

// Samples returns the number of output samples per tick.
func (g *ScrapeGenerator) Samples() int {
	return g.samples
}

// MaxPoints returns the largest NumPoints the generator accepts.
func (g *ScrapeGenerator) MaxPoints() int {
	return len(g.linearSpace)
}

// ScrapeIndex returns the cursor position the next tick starts from.
func (g *ScrapeGenerator) ScrapeIndex() int {
	return g.scrapeIndex
}

// SetScrapeIndex moves the cursor.
func (g *ScrapeGenerator) SetScrapeIndex(i int) {
	g.scrapeIndex = i
}

// Median exposes the vertical-channel median filter.
func (g *ScrapeGenerator) Median() *MedianFilter {
	return g.median
}

// Force returns the force signal computed by the last tick. The slice is
// reused by the next tick.
func (g *ScrapeGenerator) Force() []float64 {
	return g.force
}

// Reset rewinds the cursor and clears the median filter.
func (g *ScrapeGenerator) Reset() {
	g.scrapeIndex = 0
	g.median.Reset()
	g.horizontal.Reset()
	g.vertical.Reset()
}

// Tick synthesizes one block of scrape audio into dst[0:Samples()].
//
// Callers must ensure 2 <= NumPoints <= MaxPoints(), len(dsdx) > NumPoints,
// len(d2sdx2) >= len(dsdx), a non-empty ir and len(dst) >= Samples(). The
// public API checks these before calling in.
func (g *ScrapeGenerator) Tick(dst, dsdx, d2sdx2, ir []float64, p ScrapeParams) {
	n := p.NumPoints
	x := LinearSpace(g.linearSpace, n)

	start := g.scrapeIndex
	final := start + n
	if final >= len(dsdx) {
		start = 0
		final = n
	}

	g.horizontal.Reset()
	g.vertical.Reset()

	speedRatio := p.Speed / p.MaxSpeed
	hGain := horizontalForceGain * speedRatio
	vGain := verticalForceGain * speedRatio * speedRatio
	massScale := verticalMassScale * p.PrimaryMass

	hLower, hUpper := dsdx[start], dsdx[final]
	vLower, vUpper := d2sdx2[start], d2sdx2[final]

	for k, v := range g.grid {
		h := g.horizontal.At(v, x, dsdx, start, n, hLower, hUpper)
		bump := g.vertical.At(v, x, d2sdx2, start, n, vLower, vUpper)
		g.force[k] = hGain*h + vGain*g.median.Process(math.Tanh(bump/massScale))
	}

	out := dst[:g.samples]
	g.conv.Convolve(out, g.force, ir, g.samples)
	f64.Scale(out, out, p.RoughnessRatio*p.SimulationAmp*p.ScrapeAmp)

	g.scrapeIndex = final
}
