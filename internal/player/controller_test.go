package player

import (
	"errors"
	"testing"

	"github.com/jfmyers9/strum/internal/catalog"
	"github.com/rs/zerolog"
)

// fakeEngine records the call sequence so tests can assert ordering
// properties like "no overlapping audio".
type fakeEngine struct {
	calls   []string
	openErr error
}

func (f *fakeEngine) Open(streamURL string) error {
	f.calls = append(f.calls, "open:"+streamURL)
	return f.openErr
}
func (f *fakeEngine) Play()        { f.calls = append(f.calls, "play") }
func (f *fakeEngine) TogglePause() { f.calls = append(f.calls, "toggle") }
func (f *fakeEngine) Stop()        { f.calls = append(f.calls, "stop") }
func (f *fakeEngine) Close() error { return nil }

func testTrack(id, title string) catalog.Track {
	return catalog.Track{
		ID:        id,
		Title:     title,
		Artist:    "artist",
		Duration:  180,
		StreamURL: "https://stream.example/" + id,
	}
}

func TestLoadAndPlay(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine, zerolog.Nop())

	track := testTrack("t1", "First")
	if err := c.LoadAndPlay(track); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.State() != StatePlaying {
		t.Errorf("expected state playing, got %s", c.State())
	}
	if c.Current() == nil || c.Current().ID != "t1" {
		t.Errorf("expected current track t1, got %+v", c.Current())
	}
}

func TestLoadAndPlayReplacesActiveTrack(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine, zerolog.Nop())

	if err := c.LoadAndPlay(testTrack("x", "TrackX")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.LoadAndPlay(testTrack("y", "TrackY")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.State() != StatePlaying {
		t.Errorf("expected state playing, got %s", c.State())
	}
	if c.Current().ID != "y" {
		t.Errorf("expected current track y, got %s", c.Current().ID)
	}

	// The first track must be stopped before the second stream is opened.
	want := []string{
		"open:https://stream.example/x",
		"play",
		"stop",
		"open:https://stream.example/y",
		"play",
	}
	if len(engine.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, engine.calls)
	}
	for i := range want {
		if engine.calls[i] != want[i] {
			t.Fatalf("expected calls %v, got %v", want, engine.calls)
		}
	}
}

func TestLoadAndPlayOpenFailure(t *testing.T) {
	engine := &fakeEngine{openErr: errors.New("connection refused")}
	c := NewController(engine, zerolog.Nop())

	track := testTrack("bad", "Unreachable")
	err := c.LoadAndPlay(track)

	var playbackErr *PlaybackError
	if !errors.As(err, &playbackErr) {
		t.Fatalf("expected *PlaybackError, got %v", err)
	}
	if playbackErr.Track.Title != "Unreachable" {
		t.Errorf("expected error to name the failed track, got %q", playbackErr.Track.Title)
	}
	if c.State() != StateStopped {
		t.Errorf("expected state stopped after open failure, got %s", c.State())
	}
}

func TestTogglePause(t *testing.T) {
	engine := &fakeEngine{}
	c := NewController(engine, zerolog.Nop())

	if err := c.LoadAndPlay(testTrack("t", "Track")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !c.TogglePause() {
		t.Error("expected toggle from playing to succeed")
	}
	if c.State() != StatePaused {
		t.Errorf("expected state paused, got %s", c.State())
	}

	if !c.TogglePause() {
		t.Error("expected toggle from paused to succeed")
	}
	if c.State() != StatePlaying {
		t.Errorf("expected state playing, got %s", c.State())
	}
}

func TestTogglePauseNoOpWhenNotActive(t *testing.T) {
	tests := []struct {
		name  string
		setup func(c *Controller)
		want  State
	}{
		{
			name:  "idle",
			setup: func(c *Controller) {},
			want:  StateIdle,
		},
		{
			name: "stopped",
			setup: func(c *Controller) {
				if err := c.LoadAndPlay(testTrack("t", "Track")); err != nil {
					panic(err)
				}
				c.Stop()
			},
			want: StateStopped,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(&fakeEngine{}, zerolog.Nop())
			tt.setup(c)

			if c.TogglePause() {
				t.Error("expected toggle to be a no-op")
			}
			if c.State() != tt.want {
				t.Errorf("expected state %s unchanged, got %s", tt.want, c.State())
			}
		})
	}
}

func TestStopRetainsTrackForDisplay(t *testing.T) {
	c := NewController(&fakeEngine{}, zerolog.Nop())

	if err := c.LoadAndPlay(testTrack("t", "Track")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.Stop()

	if c.State() != StateStopped {
		t.Errorf("expected state stopped, got %s", c.State())
	}
	if c.Current() == nil || c.Current().ID != "t" {
		t.Errorf("expected last track retained, got %+v", c.Current())
	}
}

func TestStopFromIdleStaysIdle(t *testing.T) {
	c := NewController(&fakeEngine{}, zerolog.Nop())

	c.Stop()

	if c.State() != StateIdle {
		t.Errorf("expected state idle, got %s", c.State())
	}
	if c.Current() != nil {
		t.Errorf("expected no current track, got %+v", c.Current())
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateIdle, "idle"},
		{StatePlaying, "playing"},
		{StatePaused, "paused"},
		{StateStopped, "stopped"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
