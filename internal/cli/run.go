package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/DNhacker/yt-dl/client"
	"github.com/DNhacker/yt-dl/internal/logger"
)

// Deps are the collaborators Run dispatches to. Tests substitute fakes.
type Deps struct {
	Provider   client.StreamProvider
	Transcoder client.AudioTranscoder
	Logger     logger.Logger
	Stdout     io.Writer
}

// Run executes one download per the parsed options and prints the resulting
// path on success.
func Run(ctx context.Context, opts Options, deps Deps) error {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	if opts.Type == TypeMP3 {
		if t, ok := deps.Transcoder.(interface{ Available() bool }); ok && !t.Available() {
			return fmt.Errorf("ffmpeg not found; required for mp3 output")
		}
	}

	c := client.New(client.Config{
		Provider:   deps.Provider,
		Transcoder: deps.Transcoder,
		OutputDir:  opts.OutputDir,
		Logger:     clientLogger{log},
		ProgressFunc: func(written, total int64) {
			log.Debugf("transferred %d/%d bytes", written, total)
		},
	})

	var path string
	var err error
	switch opts.Type {
	case TypeMP3:
		path, err = c.DownloadAudio(ctx, opts.URL, opts.Output)
	default:
		path, err = c.DownloadVideo(ctx, opts.URL, opts.Output, opts.Resolution)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Download completed: %s\n", path)
	return nil
}

// clientLogger adapts the application logger to the client package contract.
type clientLogger struct {
	log logger.Logger
}

func (l clientLogger) Infof(format string, args ...any) { l.log.Infof(format, args...) }
func (l clientLogger) Warnf(format string, args ...any) { l.log.Warnf(format, args...) }
