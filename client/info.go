package client

import (
	"context"
	"unicode/utf8"
)

const descriptionLimit = 200 // characters, not bytes

// GetVideoInfo fetches metadata for the video at url. Any provider failure is
// swallowed: the zero VideoInfo is returned and a warning is logged. Callers
// must treat the zero value as "unavailable".
func (c *Client) GetVideoInfo(ctx context.Context, url string) VideoInfo {
	src, err := c.provider.Resolve(ctx, url)
	if err != nil {
		c.logger.Warnf("error getting video info: %v", err)
		return VideoInfo{}
	}
	info := src.Info()
	info.Description = truncateDescription(info.Description)
	return info
}

func truncateDescription(s string) string {
	if utf8.RuneCountInString(s) <= descriptionLimit {
		return s
	}
	count := 0
	for i := range s {
		if count == descriptionLimit {
			return s[:i] + "..."
		}
		count++
	}
	return s
}
