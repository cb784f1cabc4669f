package client

import (
	"fmt"
	"os"
)

// Client downloads YouTube videos as MP4 or MP3 files.
type Client struct {
	provider   StreamProvider
	transcoder AudioTranscoder
	outputDir  string
	logger     Logger
	progress   func(written, total int64)
}

// New creates a Client from config. Config.Provider must be set.
func New(cfg Config) *Client {
	c := &Client{
		provider:   cfg.Provider,
		transcoder: cfg.Transcoder,
		outputDir:  cfg.OutputDir,
		logger:     cfg.Logger,
		progress:   cfg.ProgressFunc,
	}
	if c.outputDir == "" {
		c.outputDir = DefaultOutputDir
	}
	if c.logger == nil {
		c.logger = nopLogger{}
	}
	return c
}

// OutputDir returns the directory downloads are written to.
func (c *Client) OutputDir() string { return c.outputDir }

// ensureOutputDir creates the output directory. No error if it already exists.
func (c *Client) ensureOutputDir() error {
	if err := os.MkdirAll(c.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
