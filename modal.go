package clatter

import (
	"fmt"

	"github.com/tphakala/go-clatter/internal/engine"
)

// Mode describes one resonant mode of a vibrating object.
type Mode struct {
	// Power is the onset level in dB.
	Power float64

	// Decay is the time in milliseconds for the mode to fall by 60 dB.
	Decay float64

	// Frequency is the mode frequency in Hz.
	Frequency float64

	// Resonance scales the decay time.
	Resonance float64
}

func (m Mode) toEngine() engine.Mode {
	return engine.Mode{
		Power:     m.Power,
		Decay:     m.Decay,
		Frequency: m.Frequency,
		Resonance: m.Resonance,
	}
}

// ModeSinusoid returns modeCount samples of a decaying cosine for one mode:
//
//	cos(2π·frequency·t) · 10^(power/20) · 10^(t·dcy),  t = i/framerate
//
// with dcy = -60/(decay·resonance/1000)/20, so the envelope falls 60 dB after
// decay·resonance milliseconds. A zero decay yields NaN samples.
func ModeSinusoid(power, decay, frequency, resonance float64, modeCount int, framerate float64) ([]float64, error) {
	if modeCount < 0 {
		return nil, fmt.Errorf("%w: negative mode count %d", ErrInvalidArgument, modeCount)
	}
	if framerate <= 0 {
		return nil, fmt.Errorf("%w: framerate must be positive, got %v", ErrInvalidArgument, framerate)
	}

	dst := make([]float64, modeCount)
	m := Mode{Power: power, Decay: decay, Frequency: frequency, Resonance: resonance}
	engine.ModeSinusoid(dst, m.toEngine(), framerate)
	return dst, nil
}

// ImpactResponse sums the sinusoids of modes into an impulse response of
// length samples.
func ImpactResponse(modes []Mode, length int, framerate float64) ([]float64, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	if framerate <= 0 {
		return nil, fmt.Errorf("%w: framerate must be positive, got %v", ErrInvalidArgument, framerate)
	}

	em := make([]engine.Mode, len(modes))
	for i, m := range modes {
		em[i] = m.toEngine()
	}

	dst := make([]float64, length)
	engine.ImpactResponse(dst, make([]float64, length), em, framerate)
	return dst, nil
}

// ImpactFrequencies returns length samples of a sine ramp over [0, π]:
// zero at both ends, rising to one at the centre.
func ImpactFrequencies(length int) ([]float64, error) {
	if length < 0 {
		return nil, fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	dst := make([]float64, length)
	engine.ImpactFrequencies(dst)
	return dst, nil
}
