// Package session orchestrates search, selection, and playback without
// owning the internals of any collaborator. All handler methods are
// invoked from the UI loop; the only concurrent work is the single
// in-flight search, whose result is marshalled back onto the UI loop
// before it touches shared state.
package session

import (
	"context"

	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/jfmyers9/strum/internal/player"
	"github.com/rs/zerolog"
)

// Catalog is the track discovery boundary.
type Catalog interface {
	Search(ctx context.Context, query string) ([]catalog.Track, error)
}

// Artwork is the cover art display boundary. Display failures are the
// implementation's problem; the session never observes them.
type Artwork interface {
	Display(url string)
	Clear()
}

// History records issued queries. Recording is best effort.
type History interface {
	Record(ctx context.Context, query string) error
}

// Notifier is the surface the session exposes to the UI boundary. All
// methods are invoked on the UI loop.
type Notifier interface {
	// SetTracks replaces the displayed result set.
	SetTracks(tracks []catalog.Track)
	// Searching reports that a search for the query has started.
	Searching(query string)
	// SearchFailed reports a failed search, distinct from an empty one.
	SearchFailed(query string, err error)
	// NoResults reports a completed search that matched nothing.
	NoResults(query string)
	// NowPlaying reports that playback of the track has started.
	NowPlaying(track catalog.Track)
	// PlaybackFailed reports that the named track could not be played.
	PlaybackFailed(title string, err error)
}

// Config holds session controller dependencies.
type Config struct {
	Catalog  Catalog
	Player   *player.Controller
	Artwork  Artwork // Optional
	History  History // Optional
	Notifier Notifier
	// Apply marshals a function onto the UI loop. Search completion is the
	// only caller; handlers already run there.
	Apply  func(func())
	Logger zerolog.Logger
}

// Controller coordinates the catalog client, the playback controller, and
// the UI boundary.
type Controller struct {
	catalog  Catalog
	player   *player.Controller
	artwork  Artwork
	history  History
	notifier Notifier
	apply    func(func())
	logger   zerolog.Logger

	// Shared state, touched only on the UI loop.
	tracks       []catalog.Track
	generation   uint64
	cancelSearch context.CancelFunc
}

// New creates a session controller.
func New(cfg Config) *Controller {
	apply := cfg.Apply
	if apply == nil {
		apply = func(f func()) { f() }
	}
	return &Controller{
		catalog:  cfg.Catalog,
		player:   cfg.Player,
		artwork:  cfg.Artwork,
		history:  cfg.History,
		notifier: cfg.Notifier,
		apply:    apply,
		logger:   cfg.Logger.With().Str("component", "session").Logger(),
	}
}

// HandleSearch starts a cancellable search for the query. At most one
// search is in flight: an outstanding one is cancelled first, and its
// result is discarded even if it arrives later, so a stale result can
// never overwrite a newer one.
func (s *Controller) HandleSearch(query string) {
	if s.cancelSearch != nil {
		s.cancelSearch()
		s.cancelSearch = nil
	}

	s.generation++
	gen := s.generation

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelSearch = cancel

	s.notifier.Searching(query)
	s.logger.Debug().Str("query", query).Msg("Starting search")

	if s.history != nil {
		if err := s.history.Record(ctx, query); err != nil {
			s.logger.Debug().Err(err).Msg("Failed to record query history")
		}
	}

	go func() {
		tracks, err := s.catalog.Search(ctx, query)

		s.apply(func() {
			// A newer search supersedes this one; discard the result
			// without touching displayed state.
			if gen != s.generation {
				return
			}
			s.cancelSearch = nil

			// The displayed set is being replaced; cover art from the old
			// set is stale either way.
			if s.artwork != nil {
				s.artwork.Clear()
			}

			if err != nil {
				s.logger.Warn().Err(err).Str("query", query).Msg("Search failed")
				s.tracks = nil
				s.notifier.SetTracks(nil)
				s.notifier.SearchFailed(query, err)
				return
			}

			s.tracks = tracks
			s.notifier.SetTracks(tracks)
			if len(tracks) == 0 {
				s.notifier.NoResults(query)
			}
		})
	}()
}

// HandleSelection plays the track with the given id from the currently
// displayed result set. A selection that raced with a newer search and
// references a vanished track is silently ignored.
func (s *Controller) HandleSelection(trackID string) {
	var selected *catalog.Track
	for i := range s.tracks {
		if s.tracks[i].ID == trackID {
			selected = &s.tracks[i]
			break
		}
	}
	if selected == nil {
		s.logger.Debug().Str("track_id", trackID).Msg("Selection not in current result set, ignoring")
		return
	}

	if err := s.player.LoadAndPlay(*selected); err != nil {
		s.notifier.PlaybackFailed(selected.Title, err)
		return
	}

	s.notifier.NowPlaying(*selected)

	if s.artwork != nil && selected.ArtworkURL != "" {
		s.artwork.Display(selected.ArtworkURL)
	}
}

// HandlePlayPause toggles playback of the current track, if any.
func (s *Controller) HandlePlayPause() {
	s.player.TogglePause()
}

// HandleNext plays the track after the current one in the displayed set.
// Without a current track, or at the end of the set, it does nothing.
func (s *Controller) HandleNext() {
	s.step(1)
}

// HandlePrevious plays the track before the current one in the displayed
// set. Without a current track, or at the start of the set, it does
// nothing.
func (s *Controller) HandlePrevious() {
	s.step(-1)
}

func (s *Controller) step(delta int) {
	current := s.player.Current()
	if current == nil {
		return
	}
	for i := range s.tracks {
		if s.tracks[i].ID == current.ID {
			if next := i + delta; next >= 0 && next < len(s.tracks) {
				s.HandleSelection(s.tracks[next].ID)
			}
			return
		}
	}
}

// Tracks returns the currently displayed result set.
func (s *Controller) Tracks() []catalog.Track {
	return s.tracks
}

// Close cancels any in-flight search and stops playback. Bumping the
// generation makes the cancelled search's completion stale, so its result
// is discarded even if the UI loop still drains pending updates.
func (s *Controller) Close() {
	if s.cancelSearch != nil {
		s.cancelSearch()
		s.cancelSearch = nil
	}
	s.generation++
	if s.artwork != nil {
		s.artwork.Clear()
	}
	s.player.Stop()
}
