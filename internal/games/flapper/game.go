// Package flapper implements a one-button gravity dodger: the bird falls,
// a jump gives a fixed upward impulse, and the pipe gap narrows as the
// score grows.
package flapper

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/registry"
	"github.com/termcade/termcade/internal/sim"
)

// Logical field; the renderer scales to terminal cells.
const (
	FieldW = 800.0
	FieldH = 400.0

	BirdX    = 200.0 // Fixed horizontal position; the world scrolls instead
	BirdSize = 14.0

	BirdChar = '◆'
	PipeChar = '█'
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// Pipe is one obstacle column. GapY is the top of the opening.
type Pipe struct {
	X      float64
	GapY   float64
	GapH   float64
	Scored bool
}

// Game implements the Flapper game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.FlapperConfig

	clock     sim.Clock
	rng       *sim.Rand
	particles *sim.ParticleSystem
	diff      *config.DifficultyManager

	phase core.Phase
	birdY float64
	birdV float64
	pipes []Pipe

	score int
	tick  int

	events []string
}

// New creates a new Flapper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flapper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flapper"
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadFlapper(configPath)
	if err != nil {
		cfg = config.DefaultFlapperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlapperPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.clock = sim.NewClock(runtime.TickRate)
	g.rng = sim.NewRand(runtime.Seed)
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	bounds := core.Rect{X: -50, Y: -50, W: FieldW + 100, H: FieldH + 100}
	g.particles = sim.NewParticleSystem(sim.DefaultParticleCap, bounds, g.rng)

	g.birdY = FieldH / 2
	g.birdV = 0
	g.pipes = g.pipes[:0]
	g.spawnPipe(FieldW)
	g.spawnPipe(FieldW + cfg.Obstacles.PipeSpacing)

	g.score = 0
	g.tick = 0
	g.events = g.events[:0]
	g.phase = core.PhaseIdle
}

// spawnPipe appends a pipe at the given x. The gap size comes from the
// difficulty manager; its vertical placement is uniform within the margins.
func (g *Game) spawnPipe(x float64) {
	o := g.cfg.Obstacles
	base := g.rng.Range(o.MinGapSize, o.MaxGapSize)
	gap := g.diff.Gap(base, o.MinGapSize, g.score, g.tick)

	g.pipes = append(g.pipes, Pipe{
		X:    x,
		GapY: g.rng.Range(o.Margin, FieldH-o.Margin-gap),
		GapH: gap,
	})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.events = g.events[:0]

	jump := in.Has(core.ActionJump) || in.Has(core.ActionUp) || in.Has(core.ActionFire)

	if in.Has(core.ActionRestart) && g.phase == core.PhaseGameOver {
		g.Reset(g.runtime)
		return g.result()
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case core.PhasePlaying:
			g.phase = core.PhasePaused
		case core.PhasePaused:
			g.phase = core.PhasePlaying
		}
	}

	switch g.phase {
	case core.PhaseIdle:
		if !jump {
			return g.result()
		}
		g.phase = core.PhasePlaying
	case core.PhasePaused, core.PhaseGameOver:
		return g.result()
	}

	g.tick++
	scale := g.clock.Scale(dt)
	p := g.cfg.Physics

	if jump {
		g.birdV = p.JumpImpulse
		g.particles.Emit(BirdX, g.birdY+BirdSize/2, 3, sim.ParticleTrail)
	}

	g.birdV += p.Gravity * scale
	if g.birdV > p.MaxFallSpeed {
		g.birdV = p.MaxFallSpeed
	}
	g.birdY += g.birdV * scale

	g.scrollPipes(scale)
	g.checkCollisions()
	g.particles.Update(scale)

	return g.result()
}

// scrollPipes moves the world left at the difficulty-scaled speed, scores
// pipes the bird has passed, and recycles off-screen pipes into new ones.
func (g *Game) scrollPipes(scale float64) {
	o := g.cfg.Obstacles
	speed := g.diff.Speed(g.cfg.Physics.BaseSpeed, g.score, g.tick) * scale

	maxX := 0.0
	for i := range g.pipes {
		g.pipes[i].X -= speed
		if g.pipes[i].X > maxX {
			maxX = g.pipes[i].X
		}
	}

	recycled := 0
	live := g.pipes[:0]
	for _, pp := range g.pipes {
		if !pp.Scored && pp.X+o.PipeWidth < BirdX {
			pp.Scored = true
			g.score++
			g.particles.Emit(BirdX, g.birdY, 6, sim.ParticlePickup)
			if g.score == 10 {
				g.events = append(g.events, "glide_streak")
			}
		}
		if pp.X+o.PipeWidth > 0 {
			live = append(live, pp)
		} else {
			recycled++
		}
	}
	g.pipes = live

	// Recycle culled pipes past the rightmost one, keeping spacing constant.
	for i := 0; i < recycled; i++ {
		maxX += o.PipeSpacing
		g.spawnPipe(maxX)
	}
}

// checkCollisions ends the run when the bird leaves the field vertically
// or clips a pipe outside its gap.
func (g *Game) checkCollisions() {
	half := BirdSize / 2

	if g.birdY-half < 0 || g.birdY+half > FieldH {
		g.crash()
		return
	}

	o := g.cfg.Obstacles
	for _, pp := range g.pipes {
		if BirdX+half < pp.X || BirdX-half > pp.X+o.PipeWidth {
			continue
		}
		if g.birdY-half < pp.GapY || g.birdY+half > pp.GapY+pp.GapH {
			g.crash()
			return
		}
	}
}

func (g *Game) crash() {
	g.phase = core.PhaseGameOver
	g.particles.Emit(BirdX, g.birdY, 20, sim.ParticleExplosion)
	g.events = append(g.events, "crashed")
}

func (g *Game) result() core.StepResult {
	events := make([]string, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.phase == core.PhasePaused,
	}
}

// Hash folds the gameplay state into one value for determinism checks.
func (g *Game) Hash() uint64 {
	h := fnv.New64a()
	q := func(f float64) int64 { return int64(f * 1e6) }

	fmt.Fprintf(h, "p%d t%d s%d b%d v%d g%d\n", g.phase, g.tick, g.score, q(g.birdY), q(g.birdV), g.rng.State())
	for _, pp := range g.pipes {
		fmt.Fprintf(h, "o %d %d %d\n", q(pp.X), q(pp.GapY), q(pp.GapH))
	}
	return h.Sum64()
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < 10 || h < 6 {
		return
	}

	fieldH := h - 1
	sx := func(x float64) int { return int(x / FieldW * float64(w)) }
	sy := func(y float64) int { return 1 + int(y/FieldH*float64(fieldH)) }

	o := g.cfg.Obstacles
	for _, pp := range g.pipes {
		left, right := sx(pp.X), sx(pp.X+o.PipeWidth)
		gapTop, gapBot := sy(pp.GapY), sy(pp.GapY+pp.GapH)
		for x := left; x <= right; x++ {
			for y := 1; y < gapTop; y++ {
				dst.SetColored(x, y, PipeChar, core.ColorGreen)
			}
			for y := gapBot; y < h; y++ {
				dst.SetColored(x, y, PipeChar, core.ColorGreen)
			}
		}
	}

	for _, p := range g.particles.Snapshot() {
		dst.SetColored(sx(p.Pos.X), sy(p.Pos.Y), '·', p.Color)
	}

	dst.SetColored(sx(BirdX), sy(g.birdY), BirdChar, core.ColorBrightYellow)

	dst.DrawTextColored(2, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)

	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(h/2, "SPACE to flap")
	case core.PhasePaused:
		dst.DrawTextCentered(h/2, "── PAUSED ──")
	case core.PhaseGameOver:
		dst.DrawTextCentered(h/2-1, fmt.Sprintf("CRASHED · %d", g.score))
		dst.DrawTextCentered(h/2+1, "R to restart · Q to quit")
	}
}

// Register the game with the registry.
func init() {
	registry.Register("flapper", func() registry.Game {
		return New()
	})
}
