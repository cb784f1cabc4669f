// Package transcode converts downloaded container files to MP3 using the
// ffmpeg command line tool.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const (
	// DefaultFFmpegPath is looked up in PATH when no explicit path is given.
	DefaultFFmpegPath = "ffmpeg"

	audioCodec   = "libmp3lame"
	audioQuality = "2"
)

// FFmpeg implements client.AudioTranscoder by invoking the ffmpeg binary.
type FFmpeg struct {
	Path string
}

// NewFFmpeg returns an FFmpeg transcoder.
// If path is empty, "ffmpeg" is looked up in PATH.
func NewFFmpeg(path string) *FFmpeg {
	if path == "" {
		path = DefaultFFmpegPath
	}
	return &FFmpeg{Path: path}
}

// Available checks if ffmpeg is executable.
func (f *FFmpeg) Available() bool {
	_, err := exec.LookPath(f.Path)
	return err == nil
}

// TranscodeToMP3 decodes inputPath and writes MP3 output to outputPath.
func (f *FFmpeg) TranscodeToMP3(ctx context.Context, inputPath, outputPath string) error {
	cmd := exec.CommandContext(ctx, f.Path, transcodeArgs(inputPath, outputPath)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := lastStderrLine(stderr.String()); msg != "" {
			return fmt.Errorf("ffmpeg transcode failed: %s: %w", msg, err)
		}
		return fmt.Errorf("ffmpeg transcode failed: %w", err)
	}
	return nil
}

// transcodeArgs builds the ffmpeg argument list.
// ffmpeg -i input.mp4 -vn -codec:a libmp3lame -q:a 2 -y output.mp3
func transcodeArgs(inputPath, outputPath string) []string {
	return []string{
		"-i", inputPath,
		"-vn",
		"-codec:a", audioCodec,
		"-q:a", audioQuality,
		"-y", outputPath,
	}
}

func lastStderrLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
