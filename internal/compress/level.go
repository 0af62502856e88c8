package compress

import (
	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Level is the speed/ratio trade-off applied by the encoder.
type Level string

const (
	LevelFast    Level = "fast"
	LevelDefault Level = "default"
	LevelBest    Level = "best"
)

// ParseLevel maps a user-supplied level name to a Level. Unrecognized
// values fall back to LevelDefault rather than being rejected, matching
// the documented CLI behavior.
func ParseLevel(s string) Level {
	switch s {
	case "fast":
		return LevelFast
	case "best":
		return LevelBest
	default:
		return LevelDefault
	}
}

func (l Level) gzipLevel() int {
	switch l {
	case LevelFast:
		return gzip.BestSpeed
	case LevelBest:
		return gzip.BestCompression
	default:
		return gzip.DefaultCompression
	}
}

func (l Level) zstdLevel() zstd.EncoderLevel {
	switch l {
	case LevelFast:
		return zstd.SpeedFastest
	case LevelBest:
		return zstd.SpeedBestCompression
	default:
		return zstd.SpeedDefault
	}
}

func (l Level) bzip2Level() int {
	switch l {
	case LevelFast:
		return bzip2.BestSpeed
	case LevelBest:
		return bzip2.BestCompression
	default:
		return bzip2.DefaultCompression
	}
}
