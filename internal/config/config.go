// Package config loads tool defaults from an optional yt-dl.toml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
)

// FileName is the configuration file searched for in the current directory
// and under the user config directory.
const FileName = "yt-dl.toml"

// Config holds tool defaults. CLI flags override these values.
type Config struct {
	OutputDir  string `koanf:"output_dir"`
	Resolution string `koanf:"resolution"`
	FFmpegPath string `koanf:"ffmpeg_path"`
	LogLevel   string `koanf:"log_level"`
}

func defaults() map[string]any {
	return map[string]any{
		"output_dir":  "./downloads",
		"resolution":  "720p",
		"ffmpeg_path": "ffmpeg",
		"log_level":   "info",
	}
}

// Load reads the configuration from the first yt-dl.toml found in the search
// paths. A missing file is not an error; built-in defaults apply.
func Load() (*Config, error) {
	return loadFrom(searchPaths())
}

// LoadFile reads the configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	return loadFrom([]string{path})
}

func loadFrom(paths []string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		break
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func searchPaths() []string {
	paths := []string{FileName}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "yt-dl", FileName))
	}
	return paths
}
