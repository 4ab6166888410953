package mathutil

// Decibel conversion constants
const (
	// amplitudeDBFactor converts amplitude ratios to decibels (20·log10).
	amplitudeDBFactor = 20.0

	// decibelBase is the base of the logarithm used for decibels.
	decibelBase = 10.0

	// decayAttenuationDB is the attenuation a mode reaches after one decay time.
	decayAttenuationDB = -60.0

	// msPerSecond converts milliseconds to seconds.
	msPerSecond = 1000.0
)
