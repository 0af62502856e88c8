package compress

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Format selects the container format written to the target file.
type Format string

const (
	FormatGzip  Format = "gzip"
	FormatZstd  Format = "zstd"
	FormatXZ    Format = "xz"
	FormatBzip2 Format = "bzip2"
)

// ParseFormat maps a user-supplied format name to a Format. Unlike
// compression levels, an unknown format is an error: silently writing a
// different container than asked for would produce a file the user
// cannot open with the tool they expect.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "gzip", "gz":
		return FormatGzip, nil
	case "zstd", "zst":
		return FormatZstd, nil
	case "xz":
		return FormatXZ, nil
	case "bzip2", "bz2":
		return FormatBzip2, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// newEncoder wraps w in a compressing writer for the given format and
// level. The writer must be closed to flush trailer data; the target
// size is not final before that.
func newEncoder(format Format, w io.Writer, level Level) (io.WriteCloser, error) {
	switch format {
	case FormatGzip:
		return gzip.NewWriterLevel(w, level.gzipLevel())
	case FormatZstd:
		return zstd.NewWriter(w, zstd.WithEncoderLevel(level.zstdLevel()))
	case FormatXZ:
		// the xz writer has a single preset; level is ignored
		return xz.NewWriter(w)
	case FormatBzip2:
		return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level.bzip2Level()})
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// newDecoder mirrors newEncoder and is used to verify round-trips.
func newDecoder(format Format, r io.Reader) (io.ReadCloser, error) {
	switch format {
	case FormatGzip:
		return gzip.NewReader(r)
	case FormatZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case FormatXZ:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(xr), nil
	case FormatBzip2:
		return bzip2.NewReader(r, nil)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}
