// Package tui implements the terminal interface: a search field, the
// result list, and a now-playing panel. It is the UI boundary of the
// session controller; every notifier method runs on the UI loop.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/jfmyers9/strum/internal/session"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
)

const maxTitleWidth = 60

// App is the TUI application for searching and playing tracks.
type App struct {
	app        *tview.Application
	input      *tview.InputField
	list       *tview.List
	nowPlaying *tview.TextView
	status     *tview.TextView

	session *session.Controller
	logger  zerolog.Logger

	// Current result set, index-aligned with the list items.
	tracks []catalog.Track

	// Recent queries offered as autocomplete suggestions.
	recent []string
}

// New creates the TUI application.
func New(logger zerolog.Logger) *App {
	a := &App{
		app:    tview.NewApplication(),
		logger: logger.With().Str("component", "tui").Logger(),
	}
	a.setupUI()
	return a
}

// SetSession wires the session controller the UI dispatches intents to.
func (a *App) SetSession(s *session.Controller) {
	a.session = s
}

// SetRecentQueries provides history entries for search autocompletion.
func (a *App) SetRecentQueries(queries []string) {
	a.recent = queries
}

// Apply marshals a function onto the UI loop. It is handed to the session
// controller so search completions never mutate shared state from the
// worker goroutine.
func (a *App) Apply(f func()) {
	a.app.QueueUpdateDraw(f)
}

// setupUI creates the UI layout
func (a *App) setupUI() {
	// Search input
	a.input = tview.NewInputField().
		SetLabel(" Search ").
		SetPlaceholder("Search SoundCloud...").
		SetFieldWidth(0)
	a.input.SetBorder(true)
	a.input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		if a.session != nil {
			a.session.HandleSearch(a.input.GetText())
		}
		a.app.SetFocus(a.list)
	})
	a.input.SetAutocompleteFunc(func(current string) []string {
		if current == "" {
			return nil
		}
		var matches []string
		for _, q := range a.recent {
			if strings.HasPrefix(strings.ToLower(q), strings.ToLower(current)) {
				matches = append(matches, q)
			}
		}
		return matches
	})

	// Result list
	a.list = tview.NewList().
		SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
			if a.session == nil || index < 0 || index >= len(a.tracks) {
				return
			}
			a.session.HandleSelection(a.tracks[index].ID)
		})
	a.list.SetBorder(true).
		SetTitle(" Tracks ").
		SetTitleAlign(tview.AlignLeft)

	// Now playing panel
	a.nowPlaying = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	a.nowPlaying.SetBorder(true).
		SetTitle(" Now Playing ").
		SetTitleAlign(tview.AlignLeft)

	// Status bar
	a.status = tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]ctrl-q:quit  /:search  enter:play  space:play/pause  n:next  p:prev[-]")

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.input, 3, 1, true).
		AddItem(a.list, 0, 3, false).
		AddItem(a.nowPlaying, 3, 1, false).
		AddItem(a.status, 1, 1, false)

	// Handle keyboard input
	a.app.SetInputCapture(a.handleKeyEvent)

	a.app.SetRoot(flex, true)
}

// handleKeyEvent processes keyboard input
func (a *App) handleKeyEvent(event *tcell.EventKey) *tcell.EventKey {
	if event.Key() == tcell.KeyCtrlQ {
		a.app.Stop()
		return nil
	}

	// While typing a query, everything else belongs to the input field.
	if a.input.HasFocus() {
		if event.Key() == tcell.KeyEscape {
			a.app.SetFocus(a.list)
			return nil
		}
		return event
	}

	switch event.Rune() {
	case '/':
		a.app.SetFocus(a.input)
		return nil
	case ' ':
		if a.session != nil {
			a.session.HandlePlayPause()
		}
		return nil
	case 'n', 'N':
		if a.session != nil {
			a.session.HandleNext()
		}
		return nil
	case 'p', 'P':
		if a.session != nil {
			a.session.HandlePrevious()
		}
		return nil
	}
	return event
}

// Run starts the TUI and blocks until the user quits.
func (a *App) Run() error {
	if err := a.app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Stop terminates the TUI.
func (a *App) Stop() {
	a.app.Stop()
}

// SetTracks replaces the displayed result set.
func (a *App) SetTracks(tracks []catalog.Track) {
	a.tracks = tracks
	a.list.Clear()
	for _, t := range tracks {
		secondary := "   " + formatDuration(t.Duration)
		a.list.AddItem(trackLine(t.Artist, t.Title), secondary, 0, nil)
	}
}

// Searching shows the transient search notification.
func (a *App) Searching(query string) {
	a.status.SetText(fmt.Sprintf("[yellow]Searching for '%s'...[-]", tview.Escape(query)))
}

// SearchFailed reports a failed search, distinct from an empty result.
func (a *App) SearchFailed(query string, err error) {
	cause := err
	var searchErr *catalog.SearchError
	if errors.As(err, &searchErr) {
		cause = searchErr.Cause
	}
	a.status.SetText(fmt.Sprintf("[red]Search failed: %s[-]", tview.Escape(cause.Error())))
}

// NoResults reports an empty, successful search.
func (a *App) NoResults(query string) {
	a.status.SetText(fmt.Sprintf("[gray]No results for '%s'[-]", tview.Escape(query)))
}

// NowPlaying updates the now-playing panel.
func (a *App) NowPlaying(track catalog.Track) {
	a.nowPlaying.SetText(nowPlayingText(track))
	a.status.SetText("[gray]space:play/pause  n:next  p:prev  ctrl-q:quit[-]")
}

// PlaybackFailed reports a track the engine could not play.
func (a *App) PlaybackFailed(title string, err error) {
	a.status.SetText(fmt.Sprintf("[red]Playback failed: %s[-]", tview.Escape(title)))
	a.logger.Warn().Err(err).Str("track", title).Msg("Playback failed")
}
