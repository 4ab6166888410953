// Package mathutil provides the level and decay conversions used by modal synthesis.
package mathutil

import (
	"math"
)

// DBToAmplitude converts a level in decibels to a linear amplitude factor:
// 10^(db/20).
func DBToAmplitude(db float64) float64 {
	return math.Pow(decibelBase, db/amplitudeDBFactor)
}

// AmplitudeToDB converts a linear amplitude factor to decibels.
// Zero maps to -Inf and negative values to NaN.
func AmplitudeToDB(amplitude float64) float64 {
	return amplitudeDBFactor * math.Log10(amplitude)
}

// DecayExponent returns the per-second exponent e such that 10^(t·e) falls by
// 60 dB after decayMs·resonance milliseconds.
//
// A zero decay or resonance divides by zero; the resulting Inf/NaN is returned
// as is.
func DecayExponent(decayMs, resonance float64) float64 {
	return decayAttenuationDB / (decayMs * resonance / msPerSecond) / amplitudeDBFactor
}

// DecayEnvelope returns 10^(t·exponent), the envelope of a mode t seconds after
// onset.
func DecayEnvelope(t, exponent float64) float64 {
	return math.Pow(decibelBase, t*exponent)
}
