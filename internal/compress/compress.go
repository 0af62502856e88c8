// Package compress implements the streaming file compression pipeline:
// a chunked read/compress/write loop with optional progress reporting,
// plus the statistics computed once the target file is finalized.
package compress

import (
	"bufio"
	"io"
	"os"
	"time"
)

// chunkSize is the read buffer size for the streaming loop. Memory use
// is bounded by this regardless of source size.
const chunkSize = 1 << 20

// Job describes a single compression run. It is constructed once from
// validated caller input and not modified afterwards.
//
// Progress, when non-nil, is invoked after each chunk is written with
// the cumulative number of source bytes consumed. A nil Progress skips
// the bookkeeping entirely; both paths run the same loop and produce
// identical output.
type Job struct {
	SourcePath string
	TargetPath string
	Level      Level
	Format     Format
	Progress   func(consumed int64)
}

// Run executes the job and returns the resulting statistics. On any
// failure no statistics are returned; a partially written target file
// may be left behind and is not cleaned up.
func Run(job Job) (Stats, error) {
	info, err := os.Stat(job.SourcePath)
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, &InvalidInputError{Path: job.SourcePath}
		}
		return Stats{}, &IOError{Op: "stat source file", Err: err}
	}
	sourceSize := info.Size()

	source, err := os.Open(job.SourcePath)
	if err != nil {
		return Stats{}, &IOError{Op: "open source file", Err: err}
	}
	defer source.Close()

	target, err := os.Create(job.TargetPath)
	if err != nil {
		return Stats{}, &IOError{Op: "create target file", Err: err}
	}
	defer target.Close()

	encoder, err := newEncoder(job.Format, target, job.Level)
	if err != nil {
		return Stats{}, err
	}

	start := time.Now()

	if err := pump(bufio.NewReaderSize(source, chunkSize), encoder, job.Progress); err != nil {
		encoder.Close()
		return Stats{}, &IOError{Op: "compress", Err: err}
	}

	// Trailer data (footer, checksum) reaches the target only when the
	// encoder is closed; the size on disk is meaningless before this.
	if err := encoder.Close(); err != nil {
		return Stats{}, &IOError{Op: "finalize target file", Err: err}
	}

	elapsed := time.Since(start)

	targetInfo, err := os.Stat(job.TargetPath)
	if err != nil {
		return Stats{}, &IOError{Op: "stat target file", Err: err}
	}

	return newStats(sourceSize, targetInfo.Size(), elapsed), nil
}

// pump drives the read/compress/write loop. The same loop serves the
// progress and quiet paths so their output cannot diverge.
func pump(src io.Reader, dst io.Writer, progress func(int64)) error {
	buf := make([]byte, chunkSize)
	var consumed int64

	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return werr
			}
			consumed += int64(n)
			if progress != nil {
				progress(consumed)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
