// Package sanitize builds filesystem-safe filenames from video titles.
package sanitize

import (
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// Filename replaces characters that are illegal in file paths with "_" and
// trims surrounding whitespace. Pure and total; sanitizing twice is a no-op.
func Filename(name string) string {
	return strings.TrimSpace(unsafeChars.ReplaceAllString(name, "_"))
}
