package tui

import (
	"strings"
	"testing"

	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/mattn/go-runewidth"
)

func TestTrackLineUsesPlainHyphen(t *testing.T) {
	got := trackLine("chillhop", "Lofi Beat")
	if got != "chillhop - Lofi Beat" {
		t.Errorf("trackLine = %q, want %q", got, "chillhop - Lofi Beat")
	}
}

func TestNowPlayingTextUsesPlainHyphen(t *testing.T) {
	got := nowPlayingText(catalog.Track{
		Artist:   "synthwave",
		Title:    "Night Drive",
		Duration: 260,
	})
	if !strings.Contains(got, "synthwave") || !strings.Contains(got, " - Night Drive") {
		t.Errorf("unexpected now-playing text: %q", got)
	}
	if !strings.Contains(got, "(4:20)") {
		t.Errorf("expected duration in now-playing text, got %q", got)
	}
	if strings.ContainsRune(got, '—') {
		t.Errorf("expected plain hyphen separator, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "shorter than width", text: "short", width: 10, want: "short"},
		{name: "exactly width", text: "exact", width: 5, want: "exact"},
		{name: "longer than width", text: "a very long track title", width: 10, want: "a very ..."},
		{name: "zero width unchanged", text: "anything", width: 0, want: "anything"},
		{name: "width smaller than ellipsis", text: "anything", width: 2, want: ".."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.text, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestTruncateWideRunes(t *testing.T) {
	got := truncate("日本語のタイトルです", 8)
	if w := runewidth.StringWidth(got); w > 8 {
		t.Errorf("truncated width = %d, want <= 8 (%q)", w, got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{225, "3:45"},
		{600, "10:00"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3723, "1:02:03"},
		{-5, "0:00"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.seconds); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
