package compress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewStatsRatio(t *testing.T) {
	s := newStats(1000, 250, time.Second)
	require.InDelta(t, 0.75, s.Ratio, 1e-9)

	// Output larger than input yields a negative ratio.
	s = newStats(100, 150, time.Second)
	require.InDelta(t, -0.5, s.Ratio, 1e-9)

	// Empty source is defined as ratio 0 rather than dividing by zero.
	s = newStats(0, 20, time.Second)
	require.Zero(t, s.Ratio)
}

func TestStatsFormatting(t *testing.T) {
	s := Stats{
		SourceSize: 10 << 20,
		TargetSize: 1 << 20,
		Elapsed:    1234567 * time.Microsecond,
		Ratio:      0.9,
	}

	require.Equal(t, "10.00 MB", s.SourceMB())
	require.Equal(t, "1.00 MB", s.TargetMB())
	require.Equal(t, "90.0%", s.RatioPercent())
	require.Equal(t, "1.235s", s.ElapsedString())
}

func TestStatsSummary(t *testing.T) {
	s := newStats(2<<20, 1<<20, 42*time.Millisecond)
	summary := s.Summary()

	require.Contains(t, summary, "Source file size: 2.00 MB")
	require.Contains(t, summary, "Compressed size: 1.00 MB")
	require.Contains(t, summary, "Compression ratio: 50.0%")
	require.Contains(t, summary, "Time elapsed: 42ms")
}
