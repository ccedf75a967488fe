package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // RNG seed for generated rooms
	Level   string // Level id to start on; empty means the first one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // The run has ended, cleared or abandoned
	Cleared  bool   // Every region of the room has been resolved
	Level    string // Level id, used as the score key
}

// EventKind classifies what happened during a step.
type EventKind uint8

const (
	EventMoved EventKind = iota
	EventMoveRejected
	EventCast
	EventCleared
	EventLevelLoaded
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventMoveRejected:
		return "move_rejected"
	case EventCast:
		return "cast"
	case EventCleared:
		return "cleared"
	case EventLevelLoaded:
		return "level_loaded"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence reported to the platform for logging and
// metrics. Detail carries a short value such as a cast outcome.
type Event struct {
	Kind   EventKind
	Detail string
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State  GameState
	Events []Event
}
