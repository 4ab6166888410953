package engine

import (
	"github.com/tphakala/simd/c128"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTConvolver performs linear convolution against a fixed kernel in the
// frequency domain. This is O(N log N) vs O(N×M) for direct convolution,
// which pays off for long impulse responses.
//
// The kernel spectrum is computed once; signals up to maxSignal samples can
// then be convolved without further allocation.
type FFTConvolver struct {
	fft       *fourier.FFT
	fftSize   int
	kernelLen int
	maxSignal int
	scale     float64 // 1/fftSize for IFFT normalization (gonum doesn't normalize)

	// Precomputed kernel in frequency domain
	kernelFFT []complex128

	// Working buffers (pre-allocated for zero allocation during processing)
	signalBlock []float64
	signalFFT   []complex128
	productFFT  []complex128
	ifftResult  []float64
}

// NewFFTConvolver creates a convolver for kernel accepting signals of up to
// maxSignal samples. Returns nil for an empty kernel or non-positive maxSignal.
func NewFFTConvolver(kernel []float64, maxSignal int) *FFTConvolver {
	kernelLen := len(kernel)
	if kernelLen == 0 || maxSignal <= 0 {
		return nil
	}

	// Full linear convolution needs maxSignal+kernelLen-1 points to avoid
	// circular wrap.
	fftSize := minFFTSize
	for fftSize < maxSignal+kernelLen-1 {
		fftSize *= 2
	}

	fft := fourier.NewFFT(fftSize)

	kernelPadded := make([]float64, fftSize)
	copy(kernelPadded, kernel)
	kernelFFT := fft.Coefficients(nil, kernelPadded)

	fftLen := fftSize/fftHermitianDivisor + 1

	return &FFTConvolver{
		fft:         fft,
		fftSize:     fftSize,
		kernelLen:   kernelLen,
		maxSignal:   maxSignal,
		scale:       1.0 / float64(fftSize),
		kernelFFT:   kernelFFT,
		signalBlock: make([]float64, fftSize),
		signalFFT:   make([]complex128, fftLen),
		productFFT:  make([]complex128, fftLen),
		ifftResult:  make([]float64, fftSize),
	}
}

// KernelLen returns the kernel length.
func (c *FFTConvolver) KernelLen() int {
	return c.kernelLen
}

// MaxSignal returns the longest signal the convolver accepts.
func (c *FFTConvolver) MaxSignal() int {
	return c.maxSignal
}

// full computes the complete linear convolution of signal with the kernel
// and returns a view of the len(signal)+kernelLen-1 valid samples. The view
// aliases internal storage and is overwritten by the next call.
func (c *FFTConvolver) full(signal []float64) []float64 {
	if len(signal) > c.maxSignal {
		panic("engine: signal longer than FFT convolver capacity")
	}

	clear(c.signalBlock)
	copy(c.signalBlock, signal)

	c.signalFFT = c.fft.Coefficients(c.signalFFT, c.signalBlock)
	c128.Mul(c.productFFT, c.signalFFT, c.kernelFFT)
	c.ifftResult = c.fft.Sequence(c.ifftResult, c.productFFT)

	f64.Scale(c.ifftResult, c.ifftResult, c.scale)

	return c.ifftResult[:len(signal)+c.kernelLen-1]
}

// Full writes the complete linear convolution into dst and returns the number
// of samples written, min(len(dst), len(signal)+kernelLen-1).
func (c *FFTConvolver) Full(dst, signal []float64) int {
	if len(signal) == 0 {
		return 0
	}
	return copy(dst, c.full(signal))
}

// Same writes the len(signal)-long window of the full convolution centred on
// the kernel, starting at offset (kernelLen-1)/2, truncated to len(dst).
// Returns the number of samples written.
func (c *FFTConvolver) Same(dst, signal []float64) int {
	if len(signal) == 0 {
		return 0
	}
	full := c.full(signal)
	start := (c.kernelLen - 1) / halfDivisor
	return copy(dst, full[start:start+len(signal)])
}

// ConvolveSame convolves signal with kernel in the frequency domain and writes
// the first length samples of the "same" window into dst.
func ConvolveSame(dst, signal, kernel []float64, length int) {
	if length <= 0 {
		return
	}
	if length > len(dst) {
		panic("engine: convolution length exceeds output buffer")
	}

	clear(dst[:length])
	conv := NewFFTConvolver(kernel, len(signal))
	if conv == nil {
		return
	}
	conv.Same(dst[:length], signal)
}
