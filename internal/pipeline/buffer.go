package pipeline

import (
	"sync"
)

// RingBuffer implements a circular buffer for audio samples.
// It decouples the fixed block size of a synthesis source from the
// arbitrary read sizes of its consumer.
type RingBuffer struct {
	data     []float64
	capacity int
	size     int
	readPos  int
	writePos int
	mu       sync.Mutex
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
func NewRingBuffer(capacity int) *RingBuffer {
	if capacity < 1 {
		capacity = 1
	}

	return &RingBuffer{
		data:     make([]float64, capacity),
		capacity: capacity,
	}
}

// Write adds samples to the buffer.
// If the buffer doesn't have enough space, it will grow automatically.
func (b *RingBuffer) Write(samples []float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	needed := len(samples)
	if needed == 0 {
		return
	}

	if b.size+needed > b.capacity {
		b.grow(b.size + needed)
	}

	// Copy in at most two contiguous runs
	n := copy(b.data[b.writePos:], samples)
	copy(b.data, samples[n:])
	b.writePos = (b.writePos + needed) % b.capacity
	b.size += needed
}

// ReadInto moves up to len(dst) samples into dst and returns how many were
// copied. It does not allocate.
func (b *RingBuffer) ReadInto(dst []float64) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := min(len(dst), b.size)
	if n == 0 {
		return 0
	}

	first := min(n, b.capacity-b.readPos)
	copy(dst, b.data[b.readPos:b.readPos+first])
	copy(dst[first:n], b.data[:n-first])

	b.readPos = (b.readPos + n) % b.capacity
	b.size -= n
	return n
}

// Read retrieves up to n samples from the buffer.
// Returns fewer samples if less are available.
func (b *RingBuffer) Read(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	result := make([]float64, min(n, b.Available()))
	got := b.ReadInto(result)
	return result[:got]
}

// Available returns the number of samples available for reading.
func (b *RingBuffer) Available() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Capacity returns the current buffer capacity.
func (b *RingBuffer) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.capacity
}

// Clear removes all samples from the buffer.
func (b *RingBuffer) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.size = 0
	b.readPos = 0
	b.writePos = 0
}

// grow increases the buffer capacity to at least the specified size.
func (b *RingBuffer) grow(minCapacity int) {
	newCapacity := b.capacity
	for newCapacity < minCapacity {
		newCapacity *= bufferGrowthFactor
	}

	newData := make([]float64, newCapacity)

	// Copy existing data to maintain order
	if b.size > 0 {
		first := min(b.size, b.capacity-b.readPos)
		copy(newData, b.data[b.readPos:b.readPos+first])
		copy(newData[first:b.size], b.data[:b.size-first])
	}

	b.data = newData
	b.capacity = newCapacity
	b.readPos = 0
	b.writePos = b.size % newCapacity
}
