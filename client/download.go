package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/DNhacker/yt-dl/internal/sanitize"
)

// DownloadVideo downloads the video at url as an MP4 file and returns the
// final local path. If stem is empty, it is derived from the sanitized video
// title. If resolution is empty, DefaultResolution is used. When no stream
// matches the requested resolution, the highest-resolution progressive mp4
// stream is used; failing that, the best available stream carrying video.
func (c *Client) DownloadVideo(ctx context.Context, url, stem, resolution string) (string, error) {
	path, err := c.downloadVideo(ctx, url, stem, resolution)
	if err != nil {
		return "", wrapDownloadFailure(MediaVideo, err)
	}
	return path, nil
}

func (c *Client) downloadVideo(ctx context.Context, url, stem, resolution string) (string, error) {
	if resolution == "" {
		resolution = DefaultResolution
	}
	if err := c.ensureOutputDir(); err != nil {
		return "", err
	}

	src, err := c.provider.Resolve(ctx, url)
	if err != nil {
		return "", err
	}
	info := src.Info()
	streams := src.Streams()
	if len(streams) == 0 {
		return "", ErrNoStreams
	}
	if stem == "" {
		stem = sanitize.Filename(info.Title)
	}

	stream, ok := selectVideoStream(streams, resolution)
	if !ok {
		stream, ok = fallbackVideoStream(streams)
	}
	if !ok {
		return "", ErrNoStreams
	}

	c.logger.Infof("Downloading: %s", info.Title)
	c.logger.Infof("Resolution: %s", stream.Resolution)

	path := filepath.Join(c.outputDir, stem+"."+streamExt(stream))
	if err := c.transferTo(ctx, src, stream, path); err != nil {
		return "", err
	}

	// Normalize the output to end in .mp4. Rename, never copy.
	if ext := streamExt(stream); ext != "mp4" {
		normalized := filepath.Join(c.outputDir, stem+".mp4")
		if err := os.Rename(path, normalized); err != nil {
			return "", fmt.Errorf("normalize output extension: %w", err)
		}
		path = normalized
	}

	c.logger.Infof("Download completed: %s", path)
	return path, nil
}

// DownloadAudio downloads the best audio stream at url, transcodes it to MP3
// and returns the final local path. If stem is empty, it is derived from the
// sanitized video title. The intermediate container file is removed on every
// exit path, including transcoding failure.
func (c *Client) DownloadAudio(ctx context.Context, url, stem string) (string, error) {
	path, err := c.downloadAudio(ctx, url, stem)
	if err != nil {
		return "", wrapDownloadFailure(MediaAudio, err)
	}
	return path, nil
}

func (c *Client) downloadAudio(ctx context.Context, url, stem string) (string, error) {
	if c.transcoder == nil {
		return "", ErrTranscoderNotConfigured
	}
	if err := c.ensureOutputDir(); err != nil {
		return "", err
	}

	src, err := c.provider.Resolve(ctx, url)
	if err != nil {
		return "", err
	}
	info := src.Info()
	if stem == "" {
		stem = sanitize.Filename(info.Title)
	}

	streams := src.Streams()
	stream, ok := selectAudioStream(streams)
	if !ok {
		if hasAudioOnly(streams) {
			return "", fmt.Errorf("%w: no %s audio stream", ErrUnsupportedContainer, targetContainer)
		}
		return "", ErrNoAudioStream
	}

	c.logger.Infof("Downloading audio: %s", info.Title)

	tmp, err := os.CreateTemp("", "yt-dl-*.mp4")
	if err != nil {
		return "", fmt.Errorf("create temporary file: %w", err)
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	defer os.Remove(tmpPath)

	if err := c.transferTo(ctx, src, stream, tmpPath); err != nil {
		return "", err
	}

	outputPath := filepath.Join(c.outputDir, stem+".mp3")
	c.logger.Infof("Converting to MP3...")
	if err := c.transcoder.TranscodeToMP3(ctx, tmpPath, outputPath); err != nil {
		return "", err
	}

	c.logger.Infof("MP3 conversion completed: %s", outputPath)
	return outputPath, nil
}

// transferTo writes the stream's bytes to path. A partial file is removed on
// transfer failure.
func (c *Client) transferTo(ctx context.Context, src Source, stream StreamInfo, path string) error {
	body, size, err := src.Open(ctx, stream)
	if err != nil {
		return err
	}
	defer body.Close()

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var dst io.Writer = f
	if c.progress != nil {
		dst = &progressWriter{w: f, total: size, fn: c.progress}
	}

	if _, err := io.Copy(dst, body); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

type progressWriter struct {
	w       io.Writer
	written int64
	total   int64
	fn      func(written, total int64)
}

func (p *progressWriter) Write(b []byte) (int, error) {
	n, err := p.w.Write(b)
	p.written += int64(n)
	p.fn(p.written, p.total)
	return n, err
}

// streamExt maps a stream's container to a file extension.
func streamExt(s StreamInfo) string {
	container := streamContainer(s)
	if container == "" {
		return "mp4"
	}
	if idx := strings.IndexByte(container, '-'); idx > 0 {
		container = container[:idx]
	}
	return container
}
