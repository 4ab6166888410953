package pipeline

// Buffer sizing constants
const (
	// bufferGrowthFactor is the factor applied when a ring buffer must grow.
	bufferGrowthFactor = 2

	// blocksBuffered is how many source blocks a stream reserves up front.
	blocksBuffered = 2
)
