package clatter

// Synthesis defaults
const (
	// DefaultFramerate is the audio sample rate assumed by the defaults.
	DefaultFramerate = 44100

	// DefaultScrapeSamples is the number of samples produced per scrape tick.
	DefaultScrapeSamples = 4410

	// DefaultMaxPoints is the default upper bound on curve samples per tick.
	DefaultMaxPoints = 1000

	// minPoints is the smallest linear space that still forms a segment.
	minPoints = 2
)
