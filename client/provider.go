package client

import (
	"context"
	"io"
)

// Source is a resolved video: its metadata and the streams available for it.
type Source interface {
	// Info returns the video metadata snapshot.
	Info() VideoInfo
	// Streams enumerates the available stream descriptors.
	Streams() []StreamInfo
	// Open starts a byte transfer for the given stream. The caller owns the
	// returned reader. Size is the expected content length, -1 when unknown.
	Open(ctx context.Context, stream StreamInfo) (io.ReadCloser, int64, error)
}

// StreamProvider resolves a video URL into a Source.
//
// The production implementation wraps an external extraction library; tests
// substitute fakes.
type StreamProvider interface {
	Resolve(ctx context.Context, url string) (Source, error)
}
