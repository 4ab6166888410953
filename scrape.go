package clatter

import (
	"fmt"
	"sync"

	"github.com/go-audio/audio"
	"github.com/tphakala/go-clatter/internal/engine"
)

// ScrapeConfig holds the fixed sizes of a Scraper.
type ScrapeConfig struct {
	// SampleCount is the number of audio samples produced per tick.
	SampleCount int

	// MaxPoints is the largest NumPoints a tick may request.
	MaxPoints int

	// Framerate is the sample rate in Hz reported on audio buffers.
	Framerate int
}

// DefaultScrapeConfig returns a configuration producing 100 ms ticks at
// 44.1 kHz.
func DefaultScrapeConfig() ScrapeConfig {
	return ScrapeConfig{
		SampleCount: DefaultScrapeSamples,
		MaxPoints:   DefaultMaxPoints,
		Framerate:   DefaultFramerate,
	}
}

// Validate checks if the configuration is valid.
func (c *ScrapeConfig) Validate() error {
	if c.SampleCount < minPoints {
		return fmt.Errorf("%w: sample count must be at least %d", ErrInvalidArgument, minPoints)
	}
	if c.MaxPoints < minPoints {
		return fmt.Errorf("%w: max points must be at least %d", ErrInvalidArgument, minPoints)
	}
	if c.Framerate <= 0 {
		return fmt.Errorf("%w: framerate must be positive", ErrInvalidArgument)
	}
	return nil
}

// ScrapeParams holds the physical parameters of one scrape tick.
// Values are not range-checked: a zero MaxSpeed or PrimaryMass produces
// NaN or Inf samples, as the arithmetic dictates.
type ScrapeParams struct {
	// Speed is the current scrape speed.
	Speed float64

	// MaxSpeed is the speed at which the force reaches full scale.
	MaxSpeed float64

	// PrimaryMass is the mass of the scraping object; heavier objects soften
	// the vertical bumps.
	PrimaryMass float64

	// RoughnessRatio, SimulationAmp and ScrapeAmp multiply the output.
	RoughnessRatio float64
	SimulationAmp  float64
	ScrapeAmp      float64

	// NumPoints is the number of curve samples consumed per tick.
	NumPoints int
}

func (p *ScrapeParams) toEngine() engine.ScrapeParams {
	return engine.ScrapeParams{
		Speed:          p.Speed,
		MaxSpeed:       p.MaxSpeed,
		PrimaryMass:    p.PrimaryMass,
		RoughnessRatio: p.RoughnessRatio,
		SimulationAmp:  p.SimulationAmp,
		ScrapeAmp:      p.ScrapeAmp,
		NumPoints:      p.NumPoints,
	}
}

// ScrapeCurve holds the first and second derivative of a surface profile
// with respect to position. Ticks walk the curves and loop at the end.
type ScrapeCurve struct {
	Dsdx   []float64
	D2sdx2 []float64
}

// Validate checks that the curve can serve ticks of numPoints samples.
func (c *ScrapeCurve) Validate(numPoints int) error {
	if len(c.Dsdx) <= numPoints {
		return fmt.Errorf("%w: dsdx has %d samples, need more than %d",
			ErrInvalidArgument, len(c.Dsdx), numPoints)
	}
	if len(c.D2sdx2) < len(c.Dsdx) {
		return fmt.Errorf("%w: d2sdx2 has %d samples, shorter than dsdx (%d)",
			ErrInvalidArgument, len(c.D2sdx2), len(c.Dsdx))
	}
	return nil
}

// Scraper synthesizes scrape audio for one voice.
//
// It owns the scrape cursor and the vertical-force median filter, which carry
// over between ticks. Calls on the same Scraper are serialized by an internal
// lock; use one Scraper per concurrently sounding voice.
type Scraper struct {
	config ScrapeConfig
	gen    *engine.ScrapeGenerator

	mu sync.Mutex
}

// NewScraper creates a scraper with the given configuration.
func NewScraper(config *ScrapeConfig) (*Scraper, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidArgument)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Scraper{
		config: *config,
		gen:    engine.NewScrapeGenerator(config.SampleCount, config.MaxPoints),
	}, nil
}

// Config returns the scraper configuration.
func (s *Scraper) Config() ScrapeConfig {
	return s.config
}

// Tick synthesizes one block of SampleCount samples.
func (s *Scraper) Tick(curve ScrapeCurve, ir []float64, params ScrapeParams) ([]float64, error) {
	out := make([]float64, s.config.SampleCount)
	if err := s.TickInto(out, curve, ir, params); err != nil {
		return nil, err
	}
	return out, nil
}

// TickInto synthesizes one block into dst[0:SampleCount]. The scrape cursor
// advances by params.NumPoints, wrapping to the start of the curve when the
// next window would run past its end.
func (s *Scraper) TickInto(dst []float64, curve ScrapeCurve, ir []float64, params ScrapeParams) error {
	if len(dst) < s.config.SampleCount {
		return bufferTooSmall("output", len(dst), s.config.SampleCount)
	}
	if err := s.checkTick(&curve, ir, &params); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen.Tick(dst, curve.Dsdx, curve.D2sdx2, ir, params.toEngine())
	return nil
}

// TickBuffer synthesizes one block as a mono go-audio float buffer.
func (s *Scraper) TickBuffer(curve ScrapeCurve, ir []float64, params ScrapeParams) (*audio.FloatBuffer, error) {
	data, err := s.Tick(curve, ir, params)
	if err != nil {
		return nil, err
	}
	return ToFloatBuffer(data, s.config.Framerate), nil
}

func (s *Scraper) checkTick(curve *ScrapeCurve, ir []float64, params *ScrapeParams) error {
	if params.NumPoints < minPoints || params.NumPoints > s.config.MaxPoints {
		return fmt.Errorf("%w: num points %d outside [%d, %d]",
			ErrInvalidArgument, params.NumPoints, minPoints, s.config.MaxPoints)
	}
	if len(ir) == 0 {
		return fmt.Errorf("%w: empty impulse response", ErrInvalidArgument)
	}
	return curve.Validate(params.NumPoints)
}

// ScrapeIndex returns the curve offset the next tick starts from.
func (s *Scraper) ScrapeIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.ScrapeIndex()
}

// SetScrapeIndex moves the cursor. An index past the end of the curve makes
// the next tick start from 0.
func (s *Scraper) SetScrapeIndex(i int) error {
	if i < 0 {
		return fmt.Errorf("%w: negative scrape index %d", ErrInvalidArgument, i)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.SetScrapeIndex(i)
	return nil
}

// NonConvergent returns how many median selections fell back to zero.
func (s *Scraper) NonConvergent() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Median().NonConvergent()
}

// Reset rewinds the cursor and clears the median filter, so the next tick
// behaves like the first tick of a new scraper.
func (s *Scraper) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen.Reset()
}
