package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)

	assert.Equal(t, "./downloads", cfg.OutputDir)
	assert.Equal(t, "720p", cfg.Resolution)
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFile_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `
output_dir = "/data/media"
resolution = "1080p"
log_level = "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/media", cfg.OutputDir)
	assert.Equal(t, "1080p", cfg.Resolution)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched key keeps its default
	assert.Equal(t, "ffmpeg", cfg.FFmpegPath)
}

func TestLoadFile_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("output_dir = [broken"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
