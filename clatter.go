package clatter

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tphakala/go-clatter/internal/engine"
	"github.com/tphakala/simd/cpu"
)

// Common errors returned by the kernel.
var (
	// ErrInvalidArgument indicates a violated precondition: a length, curve or
	// parameter the kernel cannot work with.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrBufferTooSmall indicates a caller buffer shorter than the requested
	// length. Errors wrapping it also match ErrInvalidArgument.
	ErrBufferTooSmall = errors.New("buffer too small")
)

// bufferTooSmall builds an error matching both ErrInvalidArgument and
// ErrBufferTooSmall.
func bufferTooSmall(what string, have, need int) error {
	return fmt.Errorf("%w: %w: %s holds %d samples, need %d",
		ErrInvalidArgument, ErrBufferTooSmall, what, have, need)
}

// SetLogger replaces the logger used to report exceptional numerical events,
// such as a median selection that failed to converge. Passing nil restores
// the default logrus standard logger.
func SetLogger(l logrus.FieldLogger) {
	engine.SetLogger(l)
}

// Info describes the kernel build.
type Info struct {
	// SIMD describes the instruction set used for dot products and scaling.
	SIMD string

	// ScrapeSamples is the default number of samples per scrape tick.
	ScrapeSamples int

	// MedianWindow is the length of the vertical-force median filter.
	MedianWindow int
}

// GetInfo returns information about the kernel.
func GetInfo() Info {
	return Info{
		SIMD:          cpu.Info(),
		ScrapeSamples: DefaultScrapeSamples,
		MedianWindow:  MedianWindow,
	}
}
