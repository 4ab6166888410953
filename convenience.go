package clatter

import (
	"fmt"

	"github.com/go-audio/audio"
)

// NewDefaultScraper creates a scraper producing DefaultScrapeSamples samples
// per tick at DefaultFramerate.
func NewDefaultScraper() (*Scraper, error) {
	config := DefaultScrapeConfig()
	return NewScraper(&config)
}

// ScrapeTicks synthesizes ticks consecutive scrape blocks with a fresh default
// scraper and returns them concatenated. The cursor starts at 0.
func ScrapeTicks(curve ScrapeCurve, ir []float64, params ScrapeParams, ticks int) ([]float64, error) {
	if ticks < 0 {
		return nil, fmt.Errorf("%w: negative tick count %d", ErrInvalidArgument, ticks)
	}

	s, err := NewDefaultScraper()
	if err != nil {
		return nil, err
	}

	n := s.config.SampleCount
	out := make([]float64, ticks*n)
	for i := range ticks {
		if err := s.TickInto(out[i*n:(i+1)*n], curve, ir, params); err != nil {
			return nil, fmt.Errorf("tick %d: %w", i, err)
		}
	}
	return out, nil
}

// ToFloatBuffer wraps mono samples in a go-audio float buffer. The samples
// are not copied.
func ToFloatBuffer(samples []float64, framerate int) *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: framerate},
		Data:   samples,
	}
}
