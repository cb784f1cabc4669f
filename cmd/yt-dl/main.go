package main

import (
	"context"
	"fmt"
	"os"

	"github.com/DNhacker/yt-dl/internal/cli"
	"github.com/DNhacker/yt-dl/internal/config"
	"github.com/DNhacker/yt-dl/internal/logger"
	"github.com/DNhacker/yt-dl/internal/provider"
	"github.com/DNhacker/yt-dl/internal/transcode"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	opts, err := cli.Parse(os.Args[1:], cfg, os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}

	deps := cli.Deps{
		Provider:   provider.NewYouTube(nil),
		Transcoder: transcode.NewFFmpeg(cfg.FFmpegPath),
		Logger:     logger.NewLogrus(level, os.Stderr),
		Stdout:     os.Stdout,
	}

	if err := cli.Run(context.Background(), opts, deps); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
