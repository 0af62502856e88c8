package compress

import (
	"fmt"
	"strings"
	"time"
)

const bytesPerMB = 1 << 20

// Stats describes a completed compression run. Ratio is the fraction of
// the source size removed, 1 - target/source: negative when the output
// grew, and defined as 0 for an empty source.
type Stats struct {
	SourceSize int64
	TargetSize int64
	Elapsed    time.Duration
	Ratio      float64
}

func newStats(sourceSize, targetSize int64, elapsed time.Duration) Stats {
	s := Stats{
		SourceSize: sourceSize,
		TargetSize: targetSize,
		Elapsed:    elapsed,
	}
	if sourceSize > 0 {
		s.Ratio = 1 - float64(targetSize)/float64(sourceSize)
	}
	return s
}

// SourceMB reports the source size in megabytes with two decimals.
func (s Stats) SourceMB() string { return formatMB(s.SourceSize) }

// TargetMB reports the compressed size in megabytes with two decimals.
func (s Stats) TargetMB() string { return formatMB(s.TargetSize) }

// RatioPercent renders the ratio as a percentage with one decimal.
func (s Stats) RatioPercent() string {
	return fmt.Sprintf("%.1f%%", s.Ratio*100)
}

// ElapsedString renders the wall time with sub-second precision.
func (s Stats) ElapsedString() string {
	return s.Elapsed.Round(time.Millisecond).String()
}

// Summary renders the plain-text report, one field per line. Coloring
// is left to the caller.
func (s Stats) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source file size: %s\n", s.SourceMB())
	fmt.Fprintf(&b, "Compressed size: %s\n", s.TargetMB())
	fmt.Fprintf(&b, "Compression ratio: %s\n", s.RatioPercent())
	fmt.Fprintf(&b, "Time elapsed: %s\n", s.ElapsedString())
	return b.String()
}

func formatMB(n int64) string {
	return fmt.Sprintf("%.2f MB", float64(n)/bytesPerMB)
}
