package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/registry"
	"github.com/termcade/termcade/internal/storage"
)

// toastDuration is how long a milestone toast stays on screen.
const toastDuration = 2 * time.Second

// toastText maps game milestone events to display strings. Events without
// an entry are stats-only and render nothing.
var toastText = map[string]string{
	"first_score":          "First blood!",
	"rally_streak":         "Rally streak!",
	"match_won":            "Victory!",
	"match_lost":           "Defeat...",
	"first_kill":           "First kill!",
	"kill_streak":          "Kill streak!",
	"glide_streak":         "Smooth glider!",
	"powerup_big-paddle":   "Big paddle!",
	"powerup_multi-ball":   "Multi-ball!",
	"powerup_slow-ball":    "Slow motion!",
	"powerup_double-score": "Double score!",
}

// bestStreaker is implemented by games that track a run streak worth
// persisting (longest rally, kill streak).
type bestStreaker interface {
	BestStreak() int
}

// bestRallier is the duelpong flavor of the same stat.
type bestRallier interface {
	BestRally() int
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper

	lastTick   time.Time // Zero until the first tick; dt is measured between ticks
	toast      string
	toastUntil time.Time

	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been persisted for the current game over
}

// NewGameModel creates a Bubble Tea model for the given game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
	}
}

// Init initializes the model and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// B returns to the menu from a finished or paused game.
	if m.keyMapper.MapKeyToMenuAction(msg) == MenuActionBack &&
		(m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The simulation runs in
// logical field units, so a resize only reallocates the screen buffer.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the simulation by one step with the measured frame
// delta. The game clamps the delta itself, so a host stall between ticks
// cannot blow up the integration here.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := time.Second / time.Duration(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.runSaved = false
	}

	result := m.game.Step(m.inputFrame, dt)
	m.gameState = result.State

	for _, e := range result.Events {
		if text, ok := toastText[e]; ok {
			m.toast = text
			m.toastUntil = now.Add(toastDuration)
		}
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the finished run: best-effort, the game continues
// regardless of storage errors.
func (m *GameModel) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}

	streak := 0
	switch g := m.game.(type) {
	case bestStreaker:
		streak = g.BestStreak()
	case bestRallier:
		streak = g.BestRally()
	}

	//nolint:errcheck
	m.store.SaveRun(m.game.ID(), m.gameState.Score, streak)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	if m.toast != "" && time.Now().Before(m.toastUntil) {
		m.screen.DrawTextCentered(m.screen.Height()-1, "✨ "+m.toast+" ✨")
	}

	return RenderScreen(m.screen)
}

// IsQuitting returns true if the user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user requested to go back to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for one game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewGameModel(game, store, cfg),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
