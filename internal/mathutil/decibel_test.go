package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDBToAmplitude(t *testing.T) {
	testCases := []struct {
		db       float64
		expected float64
		desc     string
	}{
		{0, 1, "unity"},
		{20, 10, "plus_20dB"},
		{-20, 0.1, "minus_20dB"},
		{-60, 0.001, "minus_60dB"},
		{6.0206, 2, "double"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.InDelta(t, tc.expected, DBToAmplitude(tc.db), 1e-4)
		})
	}
}

func TestAmplitudeToDB_RoundTrip(t *testing.T) {
	for _, db := range []float64{-90, -60, -3, 0, 12} {
		assert.InDelta(t, db, AmplitudeToDB(DBToAmplitude(db)), 1e-9)
	}
	assert.True(t, math.IsInf(AmplitudeToDB(0), -1))
}

func TestDecayExponent_SixtyDBAfterDecay(t *testing.T) {
	testCases := []struct {
		decayMs   float64
		resonance float64
	}{
		{100, 1},
		{250, 1},
		{250, 0.5},
		{1500, 2},
	}

	for _, tc := range testCases {
		e := DecayExponent(tc.decayMs, tc.resonance)
		elapsed := tc.decayMs * tc.resonance / msPerSecond
		env := DecayEnvelope(elapsed, e)
		assert.InDelta(t, -60.0, AmplitudeToDB(env), 1e-9,
			"decay=%v resonance=%v", tc.decayMs, tc.resonance)
	}
}

func TestDecayExponent_ZeroDecayPropagates(t *testing.T) {
	e := DecayExponent(0, 1)
	assert.True(t, math.IsInf(e, -1), "zero decay should give -Inf exponent, got %v", e)

	// At t=0 the envelope is 10^(0·-Inf) = NaN.
	assert.True(t, math.IsNaN(DecayEnvelope(0, e)))
}
