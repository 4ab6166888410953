// Package pipeline turns block-based synthesis sources into sample streams.
// A source always produces a fixed number of samples per call; a Stream
// buffers those blocks so consumers can read any number of samples.
package pipeline

import (
	"fmt"
)

// Source produces audio in fixed-size blocks.
type Source interface {
	// BlockSize returns the number of samples written by each Next call.
	BlockSize() int

	// Next writes exactly BlockSize samples into dst.
	Next(dst []float64) error

	// Reset clears internal state.
	Reset()
}

// Stream adapts a Source to arbitrary-sized reads.
type Stream struct {
	source Source
	buffer *RingBuffer
	block  []float64
	blocks int64
}

// NewStream creates a stream over source.
func NewStream(source Source) (*Stream, error) {
	if source == nil {
		return nil, fmt.Errorf("nil source")
	}
	size := source.BlockSize()
	if size < 1 {
		return nil, fmt.Errorf("invalid block size: %d", size)
	}

	return &Stream{
		source: source,
		buffer: NewRingBuffer(size * blocksBuffered),
		block:  make([]float64, size),
	}, nil
}

// Read fills dst completely, pulling as many blocks from the source as
// needed. Leftover samples are kept for the next call. On a source error the
// samples already copied are reported in n.
func (s *Stream) Read(dst []float64) (n int, err error) {
	for n < len(dst) {
		if s.buffer.Available() == 0 {
			if err := s.source.Next(s.block); err != nil {
				return n, fmt.Errorf("block %d: %w", s.blocks, err)
			}
			s.blocks++
			s.buffer.Write(s.block)
		}
		n += s.buffer.ReadInto(dst[n:])
	}
	return n, nil
}

// Buffered returns the number of samples produced but not yet read.
func (s *Stream) Buffered() int {
	return s.buffer.Available()
}

// Blocks returns how many blocks have been pulled from the source.
func (s *Stream) Blocks() int64 {
	return s.blocks
}

// Reset discards buffered samples and resets the source.
func (s *Stream) Reset() {
	s.buffer.Clear()
	s.source.Reset()
	s.blocks = 0
}
