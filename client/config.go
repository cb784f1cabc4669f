package client

// DefaultOutputDir is used when Config.OutputDir is empty.
const DefaultOutputDir = "./downloads"

// DefaultResolution is the target resolution when none is requested.
const DefaultResolution = "720p"

// Config holds configuration for the download client.
type Config struct {
	// Provider resolves video URLs into sources. Required.
	Provider StreamProvider

	// Transcoder converts downloaded audio into MP3.
	// Required only for DownloadAudio.
	Transcoder AudioTranscoder

	// OutputDir is the directory downloads are written to.
	// If empty, DefaultOutputDir is used. Created on first use if absent.
	OutputDir string

	// Logger receives progress and warning messages. If nil, logging is off.
	Logger Logger

	// ProgressFunc, when set, receives transfer progress updates.
	// Total is -1 when the stream size is unknown.
	ProgressFunc func(written, total int64)
}
