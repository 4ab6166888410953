package clatter

import (
	"fmt"

	"github.com/tphakala/go-clatter/internal/engine"
)

// Convolve fills output[0:length] with the causal convolution of input and
// kernel:
//
//	output[i] = sum_j input[i-j] * kernel[j]
//
// Terms outside input or kernel count as zero, so the result is the first
// length samples of the full linear convolution. Samples past length are left
// untouched. A zero length is a no-op.
func Convolve(input, kernel, output []float64, length int) error {
	if err := checkLength(output, length); err != nil {
		return err
	}
	engine.Convolve(output, input, kernel, length)
	return nil
}

// ConvolveFFT fills output[0:length] with the "same"-mode convolution of input
// and kernel computed in the frequency domain: the len(input)-long window of
// the full convolution starting at (len(kernel)-1)/2. Samples of the window
// past len(input) are zero. It is the faster choice for long kernels.
func ConvolveFFT(input, kernel, output []float64, length int) error {
	if err := checkLength(output, length); err != nil {
		return err
	}
	engine.ConvolveSame(output, input, kernel, length)
	return nil
}

func checkLength(output []float64, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrInvalidArgument, length)
	}
	if length > len(output) {
		return bufferTooSmall("output", len(output), length)
	}
	return nil
}
