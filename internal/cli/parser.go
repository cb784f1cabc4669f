// Package cli parses command-line options and dispatches downloads.
package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/DNhacker/yt-dl/internal/config"
)

// Download types accepted by the -t/--type flag.
const (
	TypeMP4 = "mp4"
	TypeMP3 = "mp3"
)

// Options holds all command-line options.
type Options struct {
	URL        string
	Type       string // mp4 or mp3
	Output     string // filename stem, without extension
	Resolution string // mp4 only
	OutputDir  string
	Verbose    bool
}

// Parse parses args (without the program name) into Options. Flag defaults
// come from cfg, so explicit flags always win over the config file.
func Parse(args []string, cfg *config.Config, usageOut io.Writer) (Options, error) {
	opts := Options{}

	fs := flag.NewFlagSet("yt-dl", flag.ContinueOnError)
	fs.SetOutput(usageOut)

	var typeShort, typeLong string
	var outputShort, outputLong string
	var resShort, resLong string

	fs.StringVar(&typeShort, "t", TypeMP4, "Download type (mp4 or mp3)")
	fs.StringVar(&typeLong, "type", TypeMP4, "Download type (mp4 or mp3)")

	fs.StringVar(&outputShort, "o", "", "Output filename (without extension)")
	fs.StringVar(&outputLong, "output", "", "Output filename (without extension)")

	fs.StringVar(&resShort, "r", cfg.Resolution, "Video resolution for MP4 (e.g. 720p, 1080p)")
	fs.StringVar(&resLong, "resolution", cfg.Resolution, "Video resolution for MP4 (e.g. 720p, 1080p)")

	fs.StringVar(&opts.OutputDir, "output-dir", cfg.OutputDir, "Output directory")
	fs.BoolVar(&opts.Verbose, "v", false, "Verbose logging")
	fs.BoolVar(&opts.Verbose, "verbose", false, "Verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(usageOut, "Usage: yt-dl [flags] <url>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}

	opts.Type = pickFlag(typeShort, typeLong, TypeMP4)
	opts.Output = pickFlag(outputShort, outputLong, "")
	opts.Resolution = pickFlag(resShort, resLong, cfg.Resolution)

	if opts.Type != TypeMP4 && opts.Type != TypeMP3 {
		err := fmt.Errorf("invalid type %q (expected mp4 or mp3)", opts.Type)
		fmt.Fprintf(usageOut, "yt-dl: %v\n", err)
		return Options{}, err
	}

	rest := fs.Args()
	if len(rest) != 1 {
		fs.Usage()
		return Options{}, fmt.Errorf("expected exactly one URL argument")
	}
	opts.URL = rest[0]

	return opts, nil
}

// pickFlag resolves a double-bound short/long flag pair: whichever deviates
// from the default wins, long form preferred.
func pickFlag(short, long, def string) string {
	if long != def {
		return long
	}
	if short != def {
		return short
	}
	return def
}
