package engine

import (
	"github.com/tphakala/simd/f64"
)

// Convolver computes truncated causal convolutions by direct summation.
//
// Each output sample is a SIMD dot product between a slice of the input and a
// slice of the time-reversed kernel. The reversed kernel is cached and only
// rebuilt when a different kernel is passed, so repeated convolutions against
// the same impulse response do not allocate.
type Convolver struct {
	reversed []float64
	source   []float64
}

// NewConvolver creates a Convolver with scratch space for kernels up to
// capacity samples.
func NewConvolver(capacity int) *Convolver {
	return &Convolver{
		reversed: make([]float64, 0, capacity),
	}
}

// Convolve fills dst[0:length] with
//
//	dst[i] = sum_j input[i-j] * kernel[j]
//
// where j runs over max(0, i-len(input)+1) .. min(len(kernel)-1, i).
// Terms that would index outside input or kernel are treated as zero.
// Samples are computed from the end of the window towards the start.
// A zero length is a no-op. length must not exceed len(dst).
func (c *Convolver) Convolve(dst, input, kernel []float64, length int) {
	if length <= 0 {
		return
	}
	if length > len(dst) {
		panic("engine: convolution length exceeds output buffer")
	}

	inputLen := len(input)
	kernelLen := len(kernel)
	if inputLen == 0 || kernelLen == 0 {
		clear(dst[:length])
		return
	}

	rk := c.reverse(kernel)

	for i := length - 1; i >= 0; i-- {
		lo := max(0, i-inputLen+1)
		hi := min(kernelLen-1, i)
		if lo > hi {
			dst[i] = 0
			continue
		}

		// input[i-hi .. i-lo] pairs with kernel[hi .. lo], i.e. rk[K-1-hi .. K-1-lo].
		dst[i] = f64.DotProduct(input[i-hi:i-lo+1], rk[kernelLen-1-hi:kernelLen-lo])
	}
}

// reverse returns the cached time-reversed kernel, rebuilding it when the
// kernel differs from the one seen last.
func (c *Convolver) reverse(kernel []float64) []float64 {
	n := len(kernel)
	if len(c.source) == n && len(c.reversed) == n && sameSlice(c.source, kernel) {
		return c.reversed
	}

	if cap(c.reversed) < n {
		c.reversed = make([]float64, n)
	}
	c.reversed = c.reversed[:n]
	for i, v := range kernel {
		c.reversed[n-1-i] = v
	}

	if cap(c.source) < n {
		c.source = make([]float64, n)
	}
	c.source = c.source[:n]
	copy(c.source, kernel)

	return c.reversed
}

// sameSlice reports whether a and b hold identical values.
func sameSlice(a, b []float64) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Convolve is a convenience wrapper around a temporary Convolver.
func Convolve(dst, input, kernel []float64, length int) {
	NewConvolver(len(kernel)).Convolve(dst, input, kernel, length)
}
