// Package clatter synthesizes physically-based impact and scrape sounds in
// pure Go.
//
// The package is the numerical core of a modal audio synthesizer: it turns
// physical parameters (mass, speed, material resonance, surface roughness)
// into sample buffers. Event handling, material tables and playback belong to
// the caller.
//
// # Features
//
//   - Decaying sinusoids for single resonant modes of a struck object
//   - Direct and FFT-based truncated convolution
//   - A streaming 5-sample median filter that never allocates per sample
//   - Scrape synthesis from surface-derivative curves with a looping cursor
//   - Optional SIMD acceleration (AVX2/SSE/NEON) via github.com/tphakala/simd
//   - Interop with github.com/go-audio/audio float buffers
//
// # Quick Start
//
// Build an impulse response from a few modes:
//
//	ir, err := clatter.ImpactResponse([]clatter.Mode{
//	    {Power: 0, Decay: 120, Frequency: 880, Resonance: 0.9},
//	    {Power: -6, Decay: 80, Frequency: 1760, Resonance: 0.9},
//	}, 4410, clatter.DefaultFramerate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Then scrape it along a surface:
//
//	config := clatter.DefaultScrapeConfig()
//	s, err := clatter.NewScraper(&config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	curve := clatter.ScrapeCurve{Dsdx: dsdx, D2sdx2: d2sdx2}
//	for range ticks {
//	    block, err := s.Tick(curve, ir, params)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    play(block)
//	}
//
// # Scrape Synthesis
//
// Each tick consumes NumPoints samples of the dsdx and d2sdx2 curves, starting
// at the scrape cursor. The curve window is resampled onto a fixed grid of
// SampleCount points. The horizontal channel (dsdx) becomes a friction term
// scaled by speed; the vertical channel (d2sdx2) is soft-clipped by mass,
// median filtered and scaled by speed squared. Their sum is convolved with the
// impulse response and truncated to SampleCount samples.
//
// The cursor advances by NumPoints per tick and wraps to 0 when the next
// window would read past the end of the curve. The median filter state
// carries across ticks, so consecutive ticks join without clicks.
//
// # Streaming
//
// [ScrapeStream] wraps a [Scraper] for consumers that read audio in sizes
// unrelated to the tick length, such as an audio callback.
//
// # Errors and Numerics
//
// Precondition violations return errors wrapping [ErrInvalidArgument];
// short output buffers additionally match [ErrBufferTooSmall]. Numerically
// degenerate inputs, such as a zero resonance or a zero MaxSpeed, are not
// errors: NaN and Inf propagate to the output.
//
// # Thread Safety
//
// A [Scraper] serializes its own calls, but ticks of one voice are inherently
// sequential. Use one Scraper per concurrently sounding voice. [MedianFilter]
// is not safe for concurrent use.
package clatter
