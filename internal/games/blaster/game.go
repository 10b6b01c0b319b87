// Package blaster implements a fixed-screen shooter: the ship holds the
// bottom edge, enemies descend from the top, and difficulty ramps with the
// score.
package blaster

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/termcade/termcade/internal/config"
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/registry"
	"github.com/termcade/termcade/internal/sim"
)

const (
	ShipChar       = '▲'
	ProjectileChar = '|'
	EnemyChar      = '▼'

	shipW       = 24.0
	shipH       = 16.0
	projectileW = 4.0
	projectileH = 12.0
	projSpeed   = 10.0
	enemyW      = 20.0
	enemyH      = 16.0

	streakMilestone = 10
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

// Game implements the Blaster game logic.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.BlasterConfig

	clock     sim.Clock
	rng       *sim.Rand
	particles *sim.ParticleSystem
	diff      *config.DifficultyManager

	phase core.Phase
	ship  Entity
	shots []Entity
	foes  []Entity

	score      int
	lives      int
	streak     int // Kills since last life lost
	bestStreak int

	tick      int
	lastShot  int // Tick stamp of the last projectile, enforces the fire cooldown
	nextSpawn int

	events        []string
	firstKillSent bool
}

// New creates a new Blaster game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "blaster"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Blaster"
}

// BestStreak returns the longest kill streak of the run, exposed for
// session stats.
func (g *Game) BestStreak() int {
	return g.bestStreak
}

// Reset initializes or restarts the run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlaster(configPath)
	if err != nil {
		cfg = config.DefaultBlasterConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlasterPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.clock = sim.NewClock(runtime.TickRate)
	g.rng = sim.NewRand(runtime.Seed)
	g.diff = config.NewDifficultyManager(cfg.Difficulty)

	bounds := core.Rect{X: -50, Y: -50, W: FieldW + 100, H: FieldH + 100}
	g.particles = sim.NewParticleSystem(sim.DefaultParticleCap, bounds, g.rng)

	g.ship = Entity{
		Kind: KindShip,
		Pos:  core.Vec2{X: FieldW / 2, Y: FieldH - shipH},
		W:    shipW,
		H:    shipH,
	}
	g.shots = g.shots[:0]
	g.foes = g.foes[:0]

	g.score = 0
	g.lives = cfg.Ship.Lives
	g.streak = 0
	g.bestStreak = 0
	g.tick = 0
	g.lastShot = -cfg.Ship.FireCooldown // First shot is never gated
	g.nextSpawn = cfg.Enemies.SpawnBase
	g.events = g.events[:0]
	g.firstKillSent = false
	g.phase = core.PhaseIdle
}

// Step advances the game by one tick.
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
		if in.Has(core.ActionLeft) || in.Has(core.ActionRight) ||
			in.Has(core.ActionFire) || in.Has(core.ActionJump) {
			g.phase = core.PhasePlaying
		} else {
			return g.result()
		}
	case core.PhasePaused, core.PhaseGameOver:
		return g.result()
	}

	g.tick++
	scale := g.clock.Scale(dt)

	g.updateShip(in, scale)
	g.updateShots(scale)
	g.maybeSpawnFoe()
	g.updateFoes(scale)
	g.resolveHits()
	g.particles.Update(scale)

	return g.result()
}

// updateShip applies horizontal movement and firing.
func (g *Game) updateShip(in core.InputFrame, scale float64) {
	speed := g.cfg.Ship.Speed * scale
	if in.Has(core.ActionLeft) {
		g.ship.Pos.X -= speed
	}
	if in.Has(core.ActionRight) {
		g.ship.Pos.X += speed
	}
	g.ship.Pos.X = core.ClampF(g.ship.Pos.X, shipW/2, FieldW-shipW/2)

	// The cooldown is a tick stamp, not a countdown, so pausing cannot
	// drain it early. Space maps to Jump on the platform side and fires
	// here, matching the HUD hint.
	if (in.Has(core.ActionFire) || in.Has(core.ActionJump)) &&
		g.tick-g.lastShot >= g.cfg.Ship.FireCooldown {
		g.lastShot = g.tick
		g.shots = append(g.shots, Entity{
			Kind:   KindProjectile,
			Pos:    core.Vec2{X: g.ship.Pos.X, Y: g.ship.Pos.Y - shipH},
			Vel:    core.Vec2{Y: -projSpeed},
			W:      projectileW,
			H:      projectileH,
			Damage: 1,
		})
		g.particles.Emit(g.ship.Pos.X, g.ship.Pos.Y-shipH, 2, sim.ParticleTrail)
	}
}

// updateShots integrates projectiles and culls the ones past the top edge.
func (g *Game) updateShots(scale float64) {
	live := g.shots[:0]
	for _, s := range g.shots {
		s.Advance(scale)
		if s.Pos.Y+s.H/2 > 0 {
			live = append(live, s)
		}
	}
	g.shots = live
}

// maybeSpawnFoe places a new enemy when the difficulty-scaled spawn timer
// fires.
func (g *Game) maybeSpawnFoe() {
	if g.tick < g.nextSpawn {
		return
	}

	e := g.cfg.Enemies
	interval := g.diff.SpawnInterval(e.SpawnBase, e.SpawnMin, g.score, g.tick)
	g.nextSpawn = g.tick + interval

	g.foes = append(g.foes, Entity{
		Kind:   KindEnemy,
		Pos:    core.Vec2{X: g.rng.Range(enemyW, FieldW-enemyW), Y: -enemyH / 2},
		Vel:    core.Vec2{Y: g.diff.Speed(e.BaseSpeed, g.score, g.tick)},
		W:      enemyW,
		H:      enemyH,
		Health: e.BaseHealth,
	})
}

// updateFoes integrates enemies. One reaching the bottom edge or ramming
// the ship costs a life and resets the streak.
func (g *Game) updateFoes(scale float64) {
	live := g.foes[:0]
	for _, f := range g.foes {
		f.Advance(scale)

		if f.Pos.Y-f.H/2 > FieldH || f.Collides(&g.ship) {
			g.loseLife(f.Pos)
			continue
		}
		live = append(live, f)
	}
	g.foes = live
}

// resolveHits runs projectile/enemy AABB collisions. Each projectile is
// consumed by its first hit; an enemy at zero health explodes and scores.
func (g *Game) resolveHits() {
	liveShots := g.shots[:0]
	for _, s := range g.shots {
		hit := false
		for i := range g.foes {
			if g.foes[i].Health <= 0 || !s.Collides(&g.foes[i]) {
				continue
			}
			g.foes[i].Health -= s.Damage
			hit = true
			if g.foes[i].Health <= 0 {
				g.onKill(g.foes[i].Pos)
			} else {
				g.particles.Emit(s.Pos.X, s.Pos.Y, 3, sim.ParticleTrail)
			}
			break
		}
		if !hit {
			liveShots = append(liveShots, s)
		}
	}
	g.shots = liveShots

	liveFoes := g.foes[:0]
	for _, f := range g.foes {
		if f.Health > 0 {
			liveFoes = append(liveFoes, f)
		}
	}
	g.foes = liveFoes
}

// onKill credits a destroyed enemy.
func (g *Game) onKill(pos core.Vec2) {
	g.score++
	g.streak++
	if g.streak > g.bestStreak {
		g.bestStreak = g.streak
	}
	g.particles.Emit(pos.X, pos.Y, 14, sim.ParticleExplosion)

	if !g.firstKillSent {
		g.firstKillSent = true
		g.events = append(g.events, "first_kill")
	}
	if g.streak == streakMilestone {
		g.events = append(g.events, "kill_streak")
	}
}

// loseLife handles an enemy breaching the bottom edge or the ship.
func (g *Game) loseLife(pos core.Vec2) {
	g.lives--
	g.streak = 0
	g.particles.Emit(pos.X, pos.Y, 18, sim.ParticleExplosion)

	if g.lives <= 0 {
		g.phase = core.PhaseGameOver
		g.events = append(g.events, "run_over")
	}
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

	fmt.Fprintf(h, "p%d t%d s%d l%d k%d g%d\n", g.phase, g.tick, g.score, g.lives, g.streak, g.rng.State())
	fmt.Fprintf(h, "ship %d\n", q(g.ship.Pos.X))
	for _, s := range g.shots {
		fmt.Fprintf(h, "x %d %d\n", q(s.Pos.X), q(s.Pos.Y))
	}
	for _, f := range g.foes {
		fmt.Fprintf(h, "f %d %d %d %d\n", q(f.Pos.X), q(f.Pos.Y), q(f.Vel.Y), f.Health)
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

	for _, p := range g.particles.Snapshot() {
		r := '·'
		if p.Size >= 2 {
			r = '•'
		}
		dst.SetColored(sx(p.Pos.X), sy(p.Pos.Y), r, p.Color)
	}

	for _, s := range g.shots {
		dst.SetColored(sx(s.Pos.X), sy(s.Pos.Y), ProjectileChar, core.ColorBrightYellow)
	}
	for _, f := range g.foes {
		c := core.ColorBrightRed
		if f.Health > 1 {
			c = core.ColorBrightMagenta
		}
		dst.SetColored(sx(f.Pos.X), sy(f.Pos.Y), EnemyChar, c)
	}
	dst.SetColored(sx(g.ship.Pos.X), sy(g.ship.Pos.Y), ShipChar, core.ColorBrightCyan)

	dst.DrawTextColored(2, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	hearts := ""
	for i := 0; i < g.lives; i++ {
		hearts += "♥"
	}
	dst.DrawTextColored(w-g.lives-2, 0, hearts, core.ColorBrightRed)
	if g.streak >= 3 {
		dst.DrawTextCentered(0, fmt.Sprintf("streak ×%d", g.streak))
	}

	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(h/2, "←/→ to move · SPACE to fire")
	case core.PhasePaused:
		dst.DrawTextCentered(h/2, "── PAUSED ──")
	case core.PhaseGameOver:
		dst.DrawTextCentered(h/2-1, fmt.Sprintf("GAME OVER · %d", g.score))
		dst.DrawTextCentered(h/2+1, "R to restart · Q to quit")
	}
}

// Register the game with the registry.
func init() {
	registry.Register("blaster", func() registry.Game {
		return New()
	})
}
