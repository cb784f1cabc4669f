package client

import (
	"errors"
	"fmt"
)

var (
	// ErrNoStreams indicates the provider returned no usable streams.
	ErrNoStreams = errors.New("no streams available")
	// ErrNoAudioStream indicates no suitable audio stream was found.
	// The audio path has no fallback; this is fatal.
	ErrNoAudioStream = errors.New("no suitable audio stream found")
	// ErrUnsupportedContainer indicates the selected stream uses a container
	// this tool cannot handle.
	ErrUnsupportedContainer = errors.New("unsupported stream container")
	// ErrTranscoderNotConfigured indicates the audio path was requested
	// without an AudioTranscoder in the client config.
	ErrTranscoderNotConfigured = errors.New("audio transcoder not configured")
)

// Media identifies which download path an error belongs to.
type Media string

const (
	MediaVideo Media = "video"
	MediaAudio Media = "audio"
)

// DownloadError wraps any failure in a download path with its underlying cause.
type DownloadError struct {
	Media Media
	Err   error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("failed to download %s: %v", e.Media, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

func wrapDownloadFailure(media Media, err error) error {
	if err == nil {
		return nil
	}
	return &DownloadError{Media: media, Err: err}
}
