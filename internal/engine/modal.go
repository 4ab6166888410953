package engine

import (
	"math"

	"github.com/tphakala/go-clatter/internal/mathutil"
	"gonum.org/v1/gonum/floats"
)

// Mode describes one resonant mode of a vibrating object.
type Mode struct {
	Power     float64 // onset level in dB
	Decay     float64 // time to decay by 60 dB, in ms
	Frequency float64 // Hz
	Resonance float64 // scales the decay time
}

// ModeSinusoid fills dst with an exponentially decaying cosine:
//
//	dst[i] = cos(2π·f·t) · 10^(power/20) · 10^(t·dcy),  t = i/framerate
//
// where dcy makes the envelope fall 60 dB after decay·resonance ms.
// A zero decay propagates NaN rather than being special-cased.
func ModeSinusoid(dst []float64, m Mode, framerate float64) {
	amp := mathutil.DBToAmplitude(m.Power)
	dcy := mathutil.DecayExponent(m.Decay, m.Resonance)
	omega := 2 * math.Pi * m.Frequency

	for i := range dst {
		t := float64(i) / framerate
		dst[i] = math.Cos(t*omega) * amp * mathutil.DecayEnvelope(t, dcy)
	}
}

// ImpactResponse sums the sinusoids of all modes into dst, overwriting it.
// scratch must be at least len(dst) long.
func ImpactResponse(dst, scratch []float64, modes []Mode, framerate float64) {
	clear(dst)
	scratch = scratch[:len(dst)]
	for _, m := range modes {
		ModeSinusoid(scratch, m, framerate)
		floats.Add(dst, scratch)
	}
}

// ImpactFrequencies fills dst with one half period of a sine spanning
// [0, π]: zero at both ends and one at the centre.
func ImpactFrequencies(dst []float64) {
	switch len(dst) {
	case 0:
		return
	case 1:
		dst[0] = 0
		return
	}

	floats.Span(dst, 0, math.Pi)
	dst[len(dst)-1] = math.Pi
	for i, x := range dst {
		dst[i] = math.Sin(x)
	}
}
