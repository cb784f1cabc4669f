package client

import (
	"mime"
	"strconv"
	"strings"
)

const targetContainer = "mp4"

// selectVideoStream picks a stream for the requested resolution.
// Progressive mp4 matches win over adaptive video-only mp4 matches; within a
// tier the highest resolution wins, ties broken by provider order.
func selectVideoStream(streams []StreamInfo, resolution string) (StreamInfo, bool) {
	if s, ok := bestMatch(streams, func(s StreamInfo) bool {
		return s.Progressive() && streamContainer(s) == targetContainer && resolutionMatches(s, resolution)
	}); ok {
		return s, true
	}
	return bestMatch(streams, func(s StreamInfo) bool {
		return s.HasVideo && !s.HasAudio && streamContainer(s) == targetContainer && resolutionMatches(s, resolution)
	})
}

// fallbackVideoStream applies the caller fallback when no stream matched the
// requested resolution: the highest-resolution progressive mp4 stream, then
// the overall best stream carrying video regardless of container.
func fallbackVideoStream(streams []StreamInfo) (StreamInfo, bool) {
	if s, ok := bestMatch(streams, func(s StreamInfo) bool {
		return s.Progressive() && streamContainer(s) == targetContainer
	}); ok {
		return s, true
	}
	return bestMatch(streams, func(s StreamInfo) bool {
		return s.HasVideo
	})
}

// selectAudioStream picks the highest-bitrate audio-only stream of the target
// container. There is no fallback; absence is fatal for the audio path.
func selectAudioStream(streams []StreamInfo) (StreamInfo, bool) {
	var best StreamInfo
	hasBest := false
	for _, s := range streams {
		if !s.HasAudio || s.HasVideo || streamContainer(s) != targetContainer {
			continue
		}
		if !hasBest || s.Bitrate > best.Bitrate {
			best = s
			hasBest = true
		}
	}
	return best, hasBest
}

// hasAudioOnly reports whether any audio-only stream exists, in any container.
func hasAudioOnly(streams []StreamInfo) bool {
	for _, s := range streams {
		if s.HasAudio && !s.HasVideo {
			return true
		}
	}
	return false
}

func bestMatch(streams []StreamInfo, match func(StreamInfo) bool) (StreamInfo, bool) {
	var best StreamInfo
	hasBest := false
	for _, s := range streams {
		if !match(s) {
			continue
		}
		if !hasBest || betterVideo(s, best) {
			best = s
			hasBest = true
		}
	}
	return best, hasBest
}

func betterVideo(a, b StreamInfo) bool {
	return compareKeys(
		[]int{trackRank(a), resolutionValue(a.Resolution), a.Bitrate},
		[]int{trackRank(b), resolutionValue(b.Resolution), b.Bitrate},
	)
}

func compareKeys(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] == b[i] {
			continue
		}
		return a[i] > b[i]
	}
	return false
}

func trackRank(s StreamInfo) int {
	switch {
	case s.HasVideo && s.HasAudio:
		return 2
	case s.HasVideo:
		return 1
	default:
		return 0
	}
}

func resolutionMatches(s StreamInfo, resolution string) bool {
	return strings.EqualFold(strings.TrimSpace(s.Resolution), strings.TrimSpace(resolution))
}

// resolutionValue parses the leading digits of a label like "720p" or "1080p60".
func resolutionValue(label string) int {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	v, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return v
}

func streamContainer(s StreamInfo) string {
	mediaType, _, err := mime.ParseMediaType(s.MimeType)
	if err != nil {
		return ""
	}
	parts := strings.SplitN(mediaType, "/", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.ToLower(parts[1])
}
