package duelpong

import (
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/sim"
)

// AIConfig tunes the computer opponent. The constants are playtest
// defaults, not load-bearing behavior; they live in one struct so the YAML
// config can override them.
type AIConfig struct {
	Friction     float64 // Low-pass factor on the paddle velocity
	Accel        float64 // Acceleration toward the desired position per tick
	Jitter       float64 // Uniform tracking noise in field units (± this)
	MissChance   float64 // Probability per tick of a wrong-direction impulse
	BaseMaxSpeed float64 // Speed clamp at rally 0
	MaxSpeedCap  float64 // Hard ceiling on the ramped speed clamp
	RampPerRally float64 // Speed clamp increase per successful return
}

// DefaultAIConfig returns the stock opponent tuning.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Friction:     0.88,
		Accel:        0.9,
		Jitter:       15,
		MissChance:   0.10,
		BaseMaxSpeed: 4.0,
		MaxSpeedCap:  7.5,
		RampPerRally: 0.12,
	}
}

// Opponent moves the computer paddle. It tracks the threatening ball with
// bounded, low-pass filtered velocity, imperfect by design: uniform noise
// on the target and an occasional deliberate wrong-direction impulse keep
// long matches winnable.
type Opponent struct {
	cfg      AIConfig
	vel      float64
	maxSpeed float64
	rng      *sim.Rand
}

// NewOpponent creates an opponent at its base difficulty.
func NewOpponent(cfg AIConfig, rng *sim.Rand) *Opponent {
	return &Opponent{cfg: cfg, maxSpeed: cfg.BaseMaxSpeed, rng: rng}
}

// Reset returns the opponent to base difficulty and zero velocity.
func (o *Opponent) Reset() {
	o.vel = 0
	o.maxSpeed = o.cfg.BaseMaxSpeed
}

// OnRally ramps the speed clamp after a successful return, up to the cap,
// so difficulty rises slowly over a long rally.
func (o *Opponent) OnRally() {
	o.maxSpeed += o.cfg.RampPerRally
	if o.maxSpeed > o.cfg.MaxSpeedCap {
		o.maxSpeed = o.cfg.MaxSpeedCap
	}
}

// MaxSpeed returns the current speed clamp, for snapshots and tests.
func (o *Opponent) MaxSpeed() float64 {
	return o.maxSpeed
}

// target picks the tracked ball: the one closest to the opponent's edge
// (largest x). With no balls in play the paddle drifts to field center.
func (o *Opponent) target(balls []Ball) float64 {
	if len(balls) == 0 {
		return FieldH / 2
	}
	best := balls[0]
	for _, b := range balls[1:] {
		if b.Pos.X > best.Pos.X {
			best = b
		}
	}
	return best.Pos.Y
}

// Update advances the opponent paddle one tick. Desired position is the
// tracked ball's y minus half the paddle height, plus tracking jitter; the
// velocity is low-pass filtered toward it and clamped to ±maxSpeed, and
// the resulting position clamped to the field.
func (o *Opponent) Update(p *Paddle, balls []Ball, scale float64) {
	desired := o.target(balls) - p.Height/2 + o.rng.Range(-o.cfg.Jitter, o.cfg.Jitter)

	accel := o.cfg.Accel
	if desired < p.Y {
		accel = -accel
	}
	if o.rng.Chance(o.cfg.MissChance) {
		accel = -accel
	}

	o.vel = o.vel*o.cfg.Friction + accel
	o.vel = core.ClampF(o.vel, -o.maxSpeed, o.maxSpeed)

	p.Y += o.vel * scale
	p.Clamp()
}
