package clatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrapeStream_MatchesConsecutiveTicks(t *testing.T) {
	const (
		samples = 441
		ticks   = 5
		chunk   = 100
	)
	curve := testCurve(500)
	ir := testIR(t)
	p := testScrapeParams()

	ref := newTestScraper(t, samples)
	var expected []float64
	for range ticks {
		block, err := ref.Tick(curve, ir, p)
		require.NoError(t, err)
		expected = append(expected, block...)
	}

	stream, err := NewScrapeStream(newTestScraper(t, samples), curve, ir, p)
	require.NoError(t, err)

	got := make([]float64, 0, len(expected))
	buf := make([]float64, chunk)
	for len(got) < len(expected) {
		want := min(chunk, len(expected)-len(got))
		n, err := stream.Read(buf[:want])
		require.NoError(t, err)
		require.Equal(t, want, n)
		got = append(got, buf[:n]...)
	}

	assert.Equal(t, expected, got)
	assert.Equal(t, int64(ticks), stream.Ticks())
	assert.Equal(t, 0, stream.Buffered())
}

func TestScrapeStream_BuffersRemainder(t *testing.T) {
	stream, err := NewScrapeStream(newTestScraper(t, 64), testCurve(300), []float64{1}, testScrapeParams())
	require.NoError(t, err)

	n, err := stream.Read(make([]float64, 10))
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 54, stream.Buffered())
	assert.Equal(t, int64(1), stream.Ticks())

	n, err = stream.Read(make([]float64, 100))
	require.NoError(t, err)
	assert.Equal(t, 100, n)
	assert.Equal(t, 18, stream.Buffered())
	assert.Equal(t, int64(2), stream.Ticks())
}

func TestScrapeStream_SetParams(t *testing.T) {
	s := newTestScraper(t, 64)
	stream, err := NewScrapeStream(s, testCurve(300), []float64{1}, testScrapeParams())
	require.NoError(t, err)

	p := testScrapeParams()
	p.NumPoints = 50
	require.NoError(t, stream.SetParams(p))

	_, err = stream.Read(make([]float64, 64))
	require.NoError(t, err)
	assert.Equal(t, 50, s.ScrapeIndex())

	p.NumPoints = 1
	assert.ErrorIs(t, stream.SetParams(p), ErrInvalidArgument)
}

func TestScrapeStream_Reset(t *testing.T) {
	s := newTestScraper(t, 64)
	stream, err := NewScrapeStream(s, testCurve(300), []float64{1}, testScrapeParams())
	require.NoError(t, err)

	first := make([]float64, 30)
	_, err = stream.Read(first)
	require.NoError(t, err)

	stream.Reset()
	assert.Equal(t, 0, stream.Buffered())
	assert.Equal(t, int64(0), stream.Ticks())
	assert.Equal(t, 0, s.ScrapeIndex())

	again := make([]float64, 30)
	_, err = stream.Read(again)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestNewScrapeStream_Errors(t *testing.T) {
	_, err := NewScrapeStream(nil, testCurve(300), []float64{1}, testScrapeParams())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewScrapeStream(newTestScraper(t, 64), testCurve(50), []float64{1}, testScrapeParams())
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
