package core

// RuntimeConfig is passed to games at initialization. Games use it to adapt
// to the terminal size and to seed deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in character cells
	ScreenH  int   // Screen height in character cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based one
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the lifecycle state of a match. Transitions are always
// Idle -> Playing <-> Paused -> GameOver -> (reset) -> Idle; GameOver is
// terminal until an explicit reset.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// GameState is the platform-visible status of a game, returned by
// Game.State() after every tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
// Events carries opaque milestone identifiers ("first_score", "match_won")
// for the platform to display or persist; the core neither knows nor cares
// what happens to them.
type StepResult struct {
	State  GameState
	Events []string
}
