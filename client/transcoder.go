package client

import "context"

// AudioTranscoder converts a downloaded container file into an MP3 file.
type AudioTranscoder interface {
	// TranscodeToMP3 decodes inputPath and writes MP3 output to outputPath.
	TranscodeToMP3(ctx context.Context, inputPath, outputPath string) error
}
