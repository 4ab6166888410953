package clatter

import (
	"fmt"
	"sync"

	"github.com/tphakala/go-clatter/internal/pipeline"
)

// ScrapeStream turns a Scraper into a continuous sample stream.
//
// Ticks are synthesized on demand as Read needs samples; leftover samples of
// the last tick are kept for the next Read. Parameters set with SetParams
// apply from the next tick on.
type ScrapeStream struct {
	scraper *Scraper
	stream  *pipeline.Stream

	mu     sync.Mutex
	curve  ScrapeCurve
	ir     []float64
	params ScrapeParams
}

// scrapeSource adapts a ScrapeStream to pipeline.Source.
type scrapeSource struct {
	s *ScrapeStream
}

func (src scrapeSource) BlockSize() int {
	return src.s.scraper.config.SampleCount
}

func (src scrapeSource) Next(dst []float64) error {
	return src.s.scraper.TickInto(dst, src.s.curve, src.s.ir, src.s.params)
}

func (src scrapeSource) Reset() {
	src.s.scraper.Reset()
}

// NewScrapeStream creates a stream ticking scraper over curve with the given
// impulse response and parameters. The curve and ir are referenced, not
// copied.
func NewScrapeStream(scraper *Scraper, curve ScrapeCurve, ir []float64, params ScrapeParams) (*ScrapeStream, error) {
	if scraper == nil {
		return nil, fmt.Errorf("%w: scraper is nil", ErrInvalidArgument)
	}
	if err := scraper.checkTick(&curve, ir, &params); err != nil {
		return nil, err
	}

	s := &ScrapeStream{
		scraper: scraper,
		curve:   curve,
		ir:      ir,
		params:  params,
	}

	stream, err := pipeline.NewStream(scrapeSource{s: s})
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}
	s.stream = stream

	return s, nil
}

// Read fills dst with the next len(dst) samples.
func (s *ScrapeStream) Read(dst []float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream.Read(dst)
}

// SetParams replaces the tick parameters. Samples already synthesized but not
// yet read keep the old parameters.
func (s *ScrapeStream) SetParams(params ScrapeParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.scraper.checkTick(&s.curve, s.ir, &params); err != nil {
		return err
	}
	s.params = params
	return nil
}

// Buffered returns the number of synthesized samples not yet read.
func (s *ScrapeStream) Buffered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream.Buffered()
}

// Ticks returns how many ticks the stream has synthesized.
func (s *ScrapeStream) Ticks() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream.Blocks()
}

// Reset drops buffered samples and resets the underlying scraper.
func (s *ScrapeStream) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stream.Reset()
}
