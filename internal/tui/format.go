package tui

import (
	"fmt"

	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"
)

// trackLine renders a result list entry as "artist - title".
func trackLine(artist, title string) string {
	return fmt.Sprintf("%s - %s", artist, truncate(title, maxTitleWidth))
}

// nowPlayingText renders the now-playing panel content.
func nowPlayingText(track catalog.Track) string {
	return fmt.Sprintf("[green]%s[-] - %s  (%s)",
		tview.Escape(track.Artist), tview.Escape(track.Title), formatDuration(track.Duration))
}

// truncate shortens text to a display width, appending "..." when content
// is cut. Width is measured in display columns, accounting for Unicode
// characters. If width <= 0, text is returned unchanged.
func truncate(text string, width int) string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return text
	}

	ellipsis := "..."
	ellipsisWidth := runewidth.StringWidth(ellipsis)
	if width <= ellipsisWidth {
		return runewidth.Truncate(ellipsis, width, "")
	}

	return runewidth.Truncate(text, width-ellipsisWidth, "") + ellipsis
}

// formatDuration renders seconds as M:SS, or H:MM:SS for durations of an
// hour or more.
func formatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
