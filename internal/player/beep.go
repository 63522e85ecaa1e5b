package player

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"
)

const speakerBufferLen = 100 * time.Millisecond

// BeepEngine streams MP3 audio over HTTP through the beep speaker.
//
// The speaker is a process-wide resource and is initialized exactly once,
// at the sample rate of the first opened stream; later streams with a
// different rate are resampled to the speaker rate.
type BeepEngine struct {
	httpClient *http.Client
	logger     zerolog.Logger

	initOnce    sync.Once
	initErr     error
	speakerRate beep.SampleRate

	streamer beep.StreamCloser
	ctrl     *beep.Ctrl
}

// NewBeepEngine creates a beep-backed audio engine.
func NewBeepEngine(logger zerolog.Logger) *BeepEngine {
	return &BeepEngine{
		httpClient: &http.Client{},
		logger:     logger.With().Str("component", "audio").Logger(),
	}
}

// Open fetches the stream URL and prepares it for playback, tearing down
// any previously opened stream first.
func (e *BeepEngine) Open(streamURL string) error {
	e.Stop()

	resp, err := e.httpClient.Get(streamURL)
	if err != nil {
		return fmt.Errorf("failed to open stream: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		return fmt.Errorf("stream returned status %s", resp.Status)
	}

	streamer, format, err := mp3.Decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return fmt.Errorf("failed to decode stream: %w", err)
	}

	e.initOnce.Do(func() {
		e.speakerRate = format.SampleRate
		e.initErr = speaker.Init(format.SampleRate, format.SampleRate.N(speakerBufferLen))
	})
	if e.initErr != nil {
		streamer.Close()
		return fmt.Errorf("failed to initialize speaker: %w", e.initErr)
	}

	var source beep.Streamer = streamer
	if format.SampleRate != e.speakerRate {
		source = beep.Resample(4, format.SampleRate, e.speakerRate, streamer)
	}

	e.streamer = streamer
	e.ctrl = &beep.Ctrl{Streamer: source}
	return nil
}

// Play starts output of the opened stream.
func (e *BeepEngine) Play() {
	if e.ctrl == nil {
		return
	}
	speaker.Play(e.ctrl)
}

// TogglePause flips the pause state of the current stream.
func (e *BeepEngine) TogglePause() {
	if e.ctrl == nil {
		return
	}
	speaker.Lock()
	e.ctrl.Paused = !e.ctrl.Paused
	speaker.Unlock()
}

// Stop halts output and releases the current stream.
func (e *BeepEngine) Stop() {
	if e.ctrl == nil {
		return
	}
	speaker.Clear()
	if err := e.streamer.Close(); err != nil {
		e.logger.Debug().Err(err).Msg("Failed to close streamer")
	}
	e.streamer = nil
	e.ctrl = nil
}

// Close releases the engine.
func (e *BeepEngine) Close() error {
	e.Stop()
	return nil
}
