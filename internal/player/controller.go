// Package player drives a single-slot audio engine through a small
// playback state machine. Exactly one track may be active at a time.
package player

import (
	"fmt"

	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/rs/zerolog"
)

// PlaybackError reports that the engine could not open or play a resolved
// stream URL. It names the failed track so the UI can surface it.
type PlaybackError struct {
	Track catalog.Track
	Err   error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("playback of %q failed: %v", e.Track.Title, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// Controller owns the single current-track slot and drives the audio
// engine. It is invoked only from the UI loop, so it carries no locking;
// its fields are never written by any other component.
type Controller struct {
	engine  Engine
	logger  zerolog.Logger
	current *catalog.Track
	state   State
}

// NewController creates a playback controller around the given engine.
func NewController(engine Engine, logger zerolog.Logger) *Controller {
	return &Controller{
		engine: engine,
		logger: logger.With().Str("component", "player").Logger(),
		state:  StateIdle,
	}
}

// LoadAndPlay binds the engine to the track's stream URL and starts
// playback, implicitly stopping any previously active track first. On
// engine failure the controller transitions to Stopped and returns a
// *PlaybackError; the failure is never fatal.
func (c *Controller) LoadAndPlay(track catalog.Track) error {
	if c.state == StatePlaying || c.state == StatePaused {
		c.engine.Stop()
	}

	if err := c.engine.Open(track.StreamURL); err != nil {
		c.current = &track
		c.state = StateStopped
		c.logger.Warn().Err(err).Str("track", track.Title).Msg("Failed to open stream")
		return &PlaybackError{Track: track, Err: err}
	}

	c.engine.Play()
	c.current = &track
	c.state = StatePlaying
	c.logger.Info().Str("track", track.Title).Str("artist", track.Artist).Msg("Playing")
	return nil
}

// TogglePause flips between Playing and Paused. From Idle or Stopped it is
// a no-op and returns false.
func (c *Controller) TogglePause() bool {
	switch c.state {
	case StatePlaying:
		c.engine.TogglePause()
		c.state = StatePaused
		return true
	case StatePaused:
		c.engine.TogglePause()
		c.state = StatePlaying
		return true
	default:
		c.logger.Debug().Stringer("state", c.state).Msg("Ignoring pause toggle")
		return false
	}
}

// Stop halts playback and releases the media handle. The last track is
// retained for display purposes.
func (c *Controller) Stop() {
	if c.state == StatePlaying || c.state == StatePaused {
		c.engine.Stop()
	}
	if c.current != nil {
		c.state = StateStopped
	}
}

// State returns the current playback state.
func (c *Controller) State() State {
	return c.state
}

// Current returns the track occupying the single playback slot, or nil if
// no track has ever been loaded.
func (c *Controller) Current() *catalog.Track {
	return c.current
}
