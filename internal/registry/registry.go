// Package registry provides a global registry of game factories. Games
// register themselves in init() functions so the platform can discover and
// instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/termcade/termcade/internal/core"
)

// Game is the interface every arcade game implements. Games contain pure
// simulation logic with no terminal dependencies; the platform owns input
// mapping, timing, and display.
type Game interface {
	// ID returns a unique identifier (e.g. "duelpong"), used for CLI
	// commands and score storage.
	ID() string

	// Title returns a human-readable display name.
	Title() string

	// Reset initializes or restarts the game. Called once at start and on
	// restart after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. dt is the measured time
	// since the previous tick; games clamp it through sim.Clock so a
	// stalled host clock cannot blow up the integration. Exactly one Step
	// runs at a time.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current state into the screen buffer. The render
	// path treats simulation state as read-only.
	Render(dst *core.Screen)

	// State returns the current score/game-over/paused status.
	State() core.GameState
}

// GameInfo is metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Typically called from a game's init().
// Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
