package player

// State represents the playback state of the controller.
type State int

const (
	StateIdle    State = iota // No track has ever been loaded
	StatePlaying              // Engine is actively outputting audio
	StatePaused               // Engine holds position without outputting
	StateStopped              // Track unloaded, position discarded
)

// String returns a human-readable representation of the State.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
