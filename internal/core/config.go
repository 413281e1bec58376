package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (whole distance units)
	Started  bool // Whether a run has been started
	GameOver bool // Whether the run has ended
}

// EventType identifies a simulation event.
type EventType int

const (
	EventJump EventType = iota + 1
	EventGameOver
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventJump:
		return "jump"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a one-shot signal for collaborators (audio, score persistence, UI).
type Event struct {
	Type     EventType
	Distance float64 // Cumulative distance when the event fired
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
	// Err reports an internal consistency fault. Normal gameplay never sets it.
	Err error
}

// Has reports whether an event of the given type is in the result.
func (r StepResult) Has(t EventType) bool {
	for _, e := range r.Events {
		if e.Type == t {
			return true
		}
	}
	return false
}
