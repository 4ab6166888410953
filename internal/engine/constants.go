package engine

// Scrape synthesis constants
const (
	// DefaultScrapeSamples is the number of audio samples produced per scrape tick
	// (100 ms at 44.1 kHz).
	DefaultScrapeSamples = 4410

	// Horizontal (friction) force gain applied to the dsdx channel.
	horizontalForceGain = 0.05

	// Vertical (bump) force gain applied to the median-filtered d2sdx2 channel.
	verticalForceGain = 0.5

	// Divisor applied to primary mass before the tanh soft clip.
	verticalMassScale = 10.0

	// Minimum number of linear space points needed to form one segment.
	minLinearSpacePoints = 2
)

// Median filter constants
const (
	// medianWindowSize is the ring capacity of the streaming median filter.
	medianWindowSize = 5

	// maxSelectIterations bounds the quickselect loop.
	maxSelectIterations = 100

	// halfDivisor splits a window into its lower and upper halves.
	halfDivisor = 2
)

// FFT convolution constants.
const (
	// Minimum FFT size for same-mode convolution.
	minFFTSize = 64

	// fftHermitianDivisor is used to calculate unique frequency bins in real FFT.
	// Due to Hermitian symmetry, a real FFT of size N has N/2 + 1 unique complex coefficients.
	fftHermitianDivisor = 2
)
