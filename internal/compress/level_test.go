package compress

import (
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"fast", LevelFast},
		{"default", LevelDefault},
		{"best", LevelBest},
		// Unrecognized values fall back to the default level.
		{"", LevelDefault},
		{"turbo", LevelDefault},
		{"BEST", LevelDefault},
		{"bset", LevelDefault},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestGzipLevelMapping(t *testing.T) {
	require.Equal(t, gzip.BestSpeed, LevelFast.gzipLevel())
	require.Equal(t, gzip.DefaultCompression, LevelDefault.gzipLevel())
	require.Equal(t, gzip.BestCompression, LevelBest.gzipLevel())
}
