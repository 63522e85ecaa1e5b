package player

// Engine is the audio backend boundary. One engine is constructed at
// session start and reused across tracks; the controller never creates
// engines itself.
type Engine interface {
	// Open tears down any existing media handle and prepares the engine
	// to play the given stream URL.
	Open(streamURL string) error

	// Play starts output of the most recently opened stream.
	Play()

	// TogglePause flips the engine's pause state. Only meaningful while a
	// stream is open.
	TogglePause()

	// Stop halts output and releases the current media handle.
	Stop()

	// Close releases the engine itself.
	Close() error
}
