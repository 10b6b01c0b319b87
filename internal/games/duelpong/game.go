// Package duelpong implements the arcade's pong variant: power-ups,
// multi-ball, particle effects, and an adaptive CPU opponent. All
// simulation state lives in the Game struct and is mutated only by Step;
// rendering reads a per-tick snapshot and never writes back.
package duelpong

import (
	"time"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/registry"
	"github.com/termcade/termcade/internal/sim"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
	FlashChar  = '✶'
)

// BaseScore is the points awarded per conceded ball before multipliers.
const BaseScore = 1

// comboRallyDiv: every 5 rally returns add one bonus point to the next
// score event.
const comboRallyDiv = 5

// rallyMilestone is the rally streak that fires the milestone event.
const rallyMilestone = 10

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
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Flash is a transient impact marker for the renderer.
type Flash struct {
	Pos core.Vec2
	TTL float64 // Remaining nominal ticks
}

// Game implements the Duelpong game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.DuelpongConfig

	clock     sim.Clock
	rng       *sim.Rand
	particles *sim.ParticleSystem
	powerups  *PowerUps
	opponent  *Opponent

	phase  core.Phase
	balls  []Ball
	player Paddle
	cpu    Paddle

	scorePlayer int
	scoreCPU    int

	tick       int // Advances only while playing; pause freezes all expiry stamps
	sinceScore int // Ticks since the last score event, drives the rally speed ramp
	rally      int
	bestRally  int

	shake   float64
	flashes []Flash

	events         []string
	firstScoreSent bool
}

// New creates a new Duelpong game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "duelpong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Duelpong"
}

// BestRally returns the longest rally of the current match, exposed for
// session stats.
func (g *Game) BestRally() int {
	return g.bestRally
}

// Reset initializes or restarts the match: entities, scores, power-ups,
// and particles all return to defaults. There are no timers to cancel;
// every schedule is a tick stamp that the fresh tick counter invalidates.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadDuelpong(configPath)
	if err != nil {
		cfg = config.DefaultDuelpongConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDuelpongPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.clock = sim.NewClock(runtime.TickRate)
	g.rng = sim.NewRand(runtime.Seed)

	bounds := core.Rect{X: -50, Y: -50, W: FieldW + 100, H: FieldH + 100}
	g.particles = sim.NewParticleSystem(sim.DefaultParticleCap, bounds, g.rng)

	g.powerups = NewPowerUps(PowerUpConfig{
		SpawnBase:      cfg.PowerUps.SpawnBase,
		SpawnShrinkPer: cfg.PowerUps.SpawnShrinkPer,
		SpawnMin:       cfg.PowerUps.SpawnMin,
		Duration:       cfg.PowerUps.Duration,
		MaxUncollected: cfg.PowerUps.MaxUncollected,
	}, g.rng)

	g.opponent = NewOpponent(AIConfig{
		Friction:     cfg.AI.Friction,
		Accel:        cfg.AI.Accel,
		Jitter:       cfg.AI.Jitter,
		MissChance:   cfg.AI.MissChance,
		BaseMaxSpeed: cfg.AI.BaseMaxSpeed,
		MaxSpeedCap:  cfg.AI.MaxSpeedCap,
		RampPerRally: cfg.AI.RampPerRally,
	}, g.rng)

	h := cfg.Physics.PaddleHeight
	g.player = Paddle{X: PaddleGap + PaddleW, Y: (FieldH - h) / 2, Height: h}
	g.cpu = Paddle{X: FieldW - PaddleGap - PaddleW, Y: (FieldH - h) / 2, Height: h}

	g.balls = []Ball{NewCenterBall(g.rng, cfg.Physics.BallSpeed, g.rng.Chance(0.5))}

	g.scorePlayer = 0
	g.scoreCPU = 0
	g.tick = 0
	g.sinceScore = 0
	g.rally = 0
	g.bestRally = 0
	g.shake = 0
	g.flashes = g.flashes[:0]
	g.events = g.events[:0]
	g.firstScoreSent = false
	g.phase = core.PhaseIdle
}

// speedMultiplier is the global multiplier applied to ball velocity: it
// ramps with time since the last score and is cut by the slow power-up,
// clamped to MaxSpeedK.
func (g *Game) speedMultiplier() float64 {
	ramp := core.ClampF(float64(g.sinceScore)/SpeedRampAt, 0, 1)
	mult := 1 + ramp*(MaxSpeedK-1)
	if g.powerups.Active(PowerSlowBall, g.tick) {
		mult *= SlowBallK
	}
	return core.ClampF(mult, 0, MaxSpeedK)
}

// Step advances the game by one tick. Exactly one Step runs at a time;
// entity slices are rebuilt wholesale so a render snapshot taken after a
// tick stays valid.
func (g *Game) Step(in core.InputFrame, dt time.Duration) core.StepResult {
	g.events = g.events[:0]

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
		if in.Has(core.ActionUp) || in.Has(core.ActionDown) ||
			in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.phase = core.PhasePlaying
		} else {
			return g.result()
		}
	case core.PhasePaused, core.PhaseGameOver:
		// Simulation time is suspended: tick does not advance, so every
		// tick-stamped expiry is frozen rather than silently draining.
		return g.result()
	}

	g.tick++
	g.sinceScore++
	scale := g.clock.Scale(dt)

	g.updatePlayer(in, scale)
	g.applyPaddleEffects()
	g.opponent.Update(&g.cpu, g.balls, scale)
	g.updateBalls(scale)
	g.powerups.MaybeSpawn(g.tick, g.scorePlayer+g.scoreCPU)
	g.particles.Update(scale)
	g.decayEffects(scale)

	return g.result()
}

// updatePlayer applies directional input to the player paddle.
func (g *Game) updatePlayer(in core.InputFrame, scale float64) {
	speed := g.cfg.Physics.PaddleSpeed * scale
	if in.Has(core.ActionUp) {
		g.player.Y -= speed
	}
	if in.Has(core.ActionDown) {
		g.player.Y += speed
	}
	g.player.Clamp()
}

// applyPaddleEffects recomputes the player paddle height from the active
// power-up flags. Height is derived every tick, so expiry needs no
// transition callback.
func (g *Game) applyPaddleEffects() {
	h := g.cfg.Physics.PaddleHeight
	if g.powerups.Active(PowerBigPaddle, g.tick) {
		h *= BigPaddleK
	}
	if h != g.player.Height {
		center := g.player.CenterY()
		g.player.Height = h
		g.player.Y = center - h/2
		g.player.Clamp()
	}
}

// updateBalls integrates every ball and resolves collisions. Wall and
// paddle collisions are axis-disjoint (y-edge vs x-plane), so a ball never
// takes two conflicting velocity writes in one tick. Balls do not collide
// with each other.
func (g *Game) updateBalls(scale float64) {
	mult := g.speedMultiplier()

	// Rebuild the ball list wholesale; activate() may append extra balls
	// (multi-ball) to the list under construction.
	cur := g.balls
	g.balls = make([]Ball, 0, len(cur))

	for _, b := range cur {
		b.Advance(mult, scale)

		if b.ReflectWalls() {
			g.particles.Emit(b.Pos.X, b.Pos.Y, 3, sim.ParticleTrail)
		}

		switch {
		case HitsPaddle(&b, &g.player, false):
			BounceOffPaddle(&b, &g.player, false)
			g.onReturn(b.Pos)
		case HitsPaddle(&b, &g.cpu, true):
			BounceOffPaddle(&b, &g.cpu, true)
			g.onReturn(b.Pos)
		}

		if t, ok := g.powerups.CollectAt(&b); ok {
			g.activate(t)
			g.particles.Emit(b.Pos.X, b.Pos.Y, 10, sim.ParticlePickup)
		}

		// Scoring removes the ball immediately, never deferred.
		if b.OutLeft() {
			g.scorePoint(false, b.Pos)
			continue
		}
		if b.OutRight() {
			g.scorePoint(true, b.Pos)
			continue
		}

		g.balls = append(g.balls, b)
	}

	// The resolver guarantees at least one active ball after every
	// playing tick; an empty set is a scoring outcome, not an error.
	if len(g.balls) == 0 && g.phase == core.PhasePlaying {
		g.balls = append(g.balls, NewCenterBall(g.rng, g.cfg.Physics.BallSpeed, g.rng.Chance(0.5)))
	}
}

// onReturn records a successful paddle return.
func (g *Game) onReturn(pos core.Vec2) {
	g.rally++
	if g.rally == rallyMilestone {
		g.events = append(g.events, "rally_streak")
	}
	g.opponent.OnRally()

	g.particles.Emit(pos.X, pos.Y, 6, sim.ParticleTrail)
	g.flashes = append(g.flashes, Flash{Pos: pos, TTL: 8})
}

// activate arms a collected power-up. Timed effects are tick-stamped with
// a fixed window, last trigger wins; multi-ball is instantaneous.
func (g *Game) activate(t PowerUpType) {
	g.events = append(g.events, "powerup_"+t.String())

	if t == PowerMultiBall {
		speed := g.cfg.Physics.BallSpeed
		g.balls = append(g.balls,
			NewCenterBall(g.rng, speed, true),
			NewCenterBall(g.rng, speed, false),
		)
		return
	}
	g.powerups.Activate(t, g.tick)
}

// scorePoint credits the side that did not concede. The increment is the
// base amount, doubled by the score-multiplier power-up, plus a combo
// bonus for long rallies; scores are capped at the win threshold so the
// match ends exactly on it.
func (g *Game) scorePoint(player bool, pos core.Vec2) {
	// A second ball leaving the field in the same tick the match ended
	// must not move the score or re-fire the win event.
	if g.phase == core.PhaseGameOver {
		return
	}

	points := BaseScore
	if g.powerups.Active(PowerDouble, g.tick) {
		points *= 2
	}
	points += g.rally / comboRallyDiv

	if g.rally > g.bestRally {
		g.bestRally = g.rally
	}
	g.rally = 0
	g.sinceScore = 0
	g.shake = 6
	g.particles.Emit(pos.X, pos.Y, 18, sim.ParticleExplosion)

	win := g.cfg.Rules.WinScore
	if player {
		g.scorePlayer = core.Min(g.scorePlayer+points, win)
		if !g.firstScoreSent {
			g.firstScoreSent = true
			g.events = append(g.events, "first_score")
		}
		if g.scorePlayer == win {
			g.phase = core.PhaseGameOver
			g.events = append(g.events, "match_won")
		}
	} else {
		g.scoreCPU = core.Min(g.scoreCPU+points, win)
		if g.scoreCPU == win {
			g.phase = core.PhaseGameOver
			g.events = append(g.events, "match_lost")
		}
	}
}

// decayEffects advances the transient visual effects (screen shake,
// impact flashes).
func (g *Game) decayEffects(scale float64) {
	g.shake *= 0.85

	live := g.flashes[:0]
	for _, f := range g.flashes {
		f.TTL -= scale
		if f.TTL > 0 {
			live = append(live, f)
		}
	}
	g.flashes = live
}

func (g *Game) result() core.StepResult {
	events := make([]string, len(g.events))
	copy(events, g.events)
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scorePlayer,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.phase == core.PhasePaused,
	}
}

// Register the game with the registry.
func init() {
	registry.Register("duelpong", func() registry.Game {
		return New()
	})
}
