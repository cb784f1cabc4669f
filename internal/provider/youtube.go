// Package provider implements the production StreamProvider on top of the
// kkdai/youtube extraction library.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kkdai/youtube/v2"

	"github.com/DNhacker/yt-dl/client"
)

// YouTube resolves video URLs through github.com/kkdai/youtube/v2.
type YouTube struct {
	yt youtube.Client
}

// NewYouTube returns a provider using the given HTTP client.
// If httpClient is nil, the library default is used.
func NewYouTube(httpClient *http.Client) *YouTube {
	p := &YouTube{}
	if httpClient != nil {
		p.yt.HTTPClient = httpClient
	}
	return p
}

// Resolve fetches metadata and the available streams for url.
func (p *YouTube) Resolve(ctx context.Context, url string) (client.Source, error) {
	video, err := p.yt.GetVideoContext(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("resolve video: %w", err)
	}
	return &youtubeSource{yt: &p.yt, video: video}, nil
}

type youtubeSource struct {
	yt    *youtube.Client
	video *youtube.Video
}

func (s *youtubeSource) Info() client.VideoInfo {
	info := client.VideoInfo{
		ID:          s.video.ID,
		Title:       s.video.Title,
		Author:      s.video.Author,
		Duration:    int(s.video.Duration.Seconds()),
		Views:       s.video.Views,
		Description: s.video.Description,
	}
	if !s.video.PublishDate.IsZero() {
		info.PublishDate = s.video.PublishDate.Format("2006-01-02")
	}
	return info
}

func (s *youtubeSource) Streams() []client.StreamInfo {
	streams := make([]client.StreamInfo, 0, len(s.video.Formats))
	for _, f := range s.video.Formats {
		streams = append(streams, streamFromFormat(f))
	}
	return streams
}

func (s *youtubeSource) Open(ctx context.Context, stream client.StreamInfo) (io.ReadCloser, int64, error) {
	for i := range s.video.Formats {
		f := &s.video.Formats[i]
		if f.ItagNo != stream.Itag {
			continue
		}
		body, size, err := s.yt.GetStreamContext(ctx, s.video, f)
		if err != nil {
			return nil, 0, fmt.Errorf("open stream itag=%d: %w", stream.Itag, err)
		}
		return body, normalizeSize(size), nil
	}
	return nil, 0, fmt.Errorf("stream itag=%d not found", stream.Itag)
}

// normalizeSize maps the library's zero-for-unknown content length to the
// Source.Open contract of -1 for unknown.
func normalizeSize(size int64) int64 {
	if size <= 0 {
		return -1
	}
	return size
}

func streamFromFormat(f youtube.Format) client.StreamInfo {
	return client.StreamInfo{
		Itag:       f.ItagNo,
		MimeType:   f.MimeType,
		Resolution: f.QualityLabel,
		Bitrate:    f.Bitrate,
		HasAudio:   f.AudioChannels > 0,
		HasVideo:   f.Width != 0 || f.Height != 0,
		Size:       f.ContentLength,
	}
}
