package client

// VideoInfo is the package-level metadata result.
type VideoInfo struct {
	ID          string
	Title       string
	Author      string
	Duration    int // seconds
	Views       int
	PublishDate string // YYYY-MM-DD, empty when unknown
	Description string
}

// StreamInfo is the normalized public stream model.
type StreamInfo struct {
	Itag       int
	MimeType   string
	Resolution string // e.g. "720p", empty for audio-only streams
	Bitrate    int    // bits per second; audio bitrate for audio-only streams
	HasAudio   bool
	HasVideo   bool
	Size       int64
}

// Progressive reports whether the stream carries both audio and video in one file.
func (s StreamInfo) Progressive() bool {
	return s.HasAudio && s.HasVideo
}

// Adaptive reports whether the stream carries exactly one of audio or video.
func (s StreamInfo) Adaptive() bool {
	return s.HasAudio != s.HasVideo
}
