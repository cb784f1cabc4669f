package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"
)

type recordingLogger struct {
	warnings []string
}

func (l *recordingLogger) Infof(string, ...any) {}
func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestGetVideoInfo_Success(t *testing.T) {
	src := &fakeSource{
		info: VideoInfo{
			ID:          "jNQXAC9IVRw",
			Title:       "Me at the zoo",
			Author:      "jawed",
			Duration:    19,
			Views:       348000000,
			PublishDate: "2005-04-23",
			Description: "The first video on YouTube.",
		},
	}
	c, _ := newTestClient(t, &fakeProvider{source: src}, nil)

	got := c.GetVideoInfo(context.Background(), "https://youtu.be/jNQXAC9IVRw")
	if got.Title != "Me at the zoo" || got.Author != "jawed" || got.Duration != 19 {
		t.Fatalf("unexpected info: %+v", got)
	}
	if got.Description != "The first video on YouTube." {
		t.Fatalf("short description changed: %q", got.Description)
	}
}

func TestGetVideoInfo_TruncatesLongDescription(t *testing.T) {
	src := &fakeSource{
		info: VideoInfo{Title: "long", Description: strings.Repeat("d", 250)},
	}
	c, _ := newTestClient(t, &fakeProvider{source: src}, nil)

	got := c.GetVideoInfo(context.Background(), "https://youtu.be/x")
	if n := utf8.RuneCountInString(got.Description); n != descriptionLimit+len("...") {
		t.Fatalf("description length = %d runes, want %d", n, descriptionLimit+3)
	}
	if !strings.HasSuffix(got.Description, "...") {
		t.Fatalf("description not ellipsized: %q", got.Description[len(got.Description)-5:])
	}
}

func TestGetVideoInfo_TruncatesOnRuneBoundary(t *testing.T) {
	// A multi-byte rune at the cut position must not be split.
	desc := strings.Repeat("a", descriptionLimit-1) + "é" + strings.Repeat("b", 50)
	src := &fakeSource{
		info: VideoInfo{Title: "accented", Description: desc},
	}
	c, _ := newTestClient(t, &fakeProvider{source: src}, nil)

	got := c.GetVideoInfo(context.Background(), "https://youtu.be/x")
	if !utf8.ValidString(got.Description) {
		t.Fatalf("truncated description is invalid UTF-8: %q", got.Description)
	}
	if n := utf8.RuneCountInString(got.Description); n != descriptionLimit+len("...") {
		t.Fatalf("description length = %d runes, want %d", n, descriptionLimit+3)
	}
	if !strings.HasSuffix(got.Description, "é...") {
		t.Fatalf("expected the accented rune kept whole before the ellipsis: %q", got.Description[len(got.Description)-8:])
	}
}

func TestGetVideoInfo_ShortMultiByteDescriptionUntouched(t *testing.T) {
	desc := strings.Repeat("é", descriptionLimit) // 200 runes, 400 bytes
	src := &fakeSource{
		info: VideoInfo{Title: "accented", Description: desc},
	}
	c, _ := newTestClient(t, &fakeProvider{source: src}, nil)

	got := c.GetVideoInfo(context.Background(), "https://youtu.be/x")
	if got.Description != desc {
		t.Fatalf("200-rune description was altered: %d runes", utf8.RuneCountInString(got.Description))
	}
}

func TestGetVideoInfo_SwallowsProviderError(t *testing.T) {
	log := &recordingLogger{}
	c := New(Config{
		Provider:  &fakeProvider{err: errors.New("dns broke")},
		OutputDir: t.TempDir(),
		Logger:    log,
	})

	got := c.GetVideoInfo(context.Background(), "https://youtu.be/x")
	if got != (VideoInfo{}) {
		t.Fatalf("expected zero VideoInfo, got %+v", got)
	}
	if len(log.warnings) != 1 {
		t.Fatalf("expected one warning, got %v", log.warnings)
	}
}
