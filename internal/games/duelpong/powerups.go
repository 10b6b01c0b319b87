package duelpong

import (
	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/sim"
)

// PowerUpType enumerates the pickups that can spawn on the field.
type PowerUpType int

const (
	PowerBigPaddle PowerUpType = iota // Player paddle height × BigPaddleK
	PowerMultiBall                    // Two extra balls, instantaneous
	PowerSlowBall                     // Global speed multiplier × SlowBallK
	PowerDouble                       // Score increments × 2
	powerUpCount
)

// Glyph returns the display character for a pickup.
func (p PowerUpType) Glyph() rune {
	switch p {
	case PowerBigPaddle:
		return 'B'
	case PowerMultiBall:
		return 'M'
	case PowerSlowBall:
		return 'S'
	case PowerDouble:
		return '2'
	default:
		return '?'
	}
}

// String returns the pickup name.
func (p PowerUpType) String() string {
	switch p {
	case PowerBigPaddle:
		return "big-paddle"
	case PowerMultiBall:
		return "multi-ball"
	case PowerSlowBall:
		return "slow-ball"
	case PowerDouble:
		return "double-score"
	default:
		return "unknown"
	}
}

// Pickup is a spawned, not yet collected power-up. Pickups never expire on
// their own; they leave the field only by being collected.
type Pickup struct {
	Type PowerUpType
	Pos  core.Vec2
}

// PowerUpConfig tunes spawning and effect duration, all in ticks.
type PowerUpConfig struct {
	SpawnBase      int // Spawn interval at score 0
	SpawnShrinkPer int // Ticks removed from the interval per combined point
	SpawnMin       int // Interval floor
	Duration       int // Active window for timed effects
	MaxUncollected int // Spawn is a no-op at this many pickups on the field
}

// DefaultPowerUpConfig returns the tuning used at 60 ticks per second.
func DefaultPowerUpConfig() PowerUpConfig {
	return PowerUpConfig{
		SpawnBase:      720, // 12 s
		SpawnShrinkPer: 30,  // 0.5 s faster per combined point
		SpawnMin:       300, // never below 5 s
		Duration:       600, // 10 s
		MaxUncollected: 2,
	}
}

// PowerUps is the spawner/activator. Effects are tick-stamped: an active
// flag is simply an expiry tick in the future, checked against the match
// tick counter. No deferred callbacks exist, so pause (which stops the
// counter) freezes every effect and reset cannot race a stale timer.
type PowerUps struct {
	Config  PowerUpConfig
	Pickups []Pickup

	expiresAt [powerUpCount]int
	nextSpawn int
	rng       *sim.Rand
}

// NewPowerUps creates a spawner with its first spawn scheduled one base
// interval in.
func NewPowerUps(cfg PowerUpConfig, rng *sim.Rand) *PowerUps {
	return &PowerUps{
		Config:    cfg,
		Pickups:   make([]Pickup, 0, cfg.MaxUncollected),
		nextSpawn: cfg.SpawnBase,
		rng:       rng,
	}
}

// spawnInterval shrinks monotonically with the combined score, floored at
// the configured minimum.
func (pu *PowerUps) spawnInterval(combinedScore int) int {
	interval := pu.Config.SpawnBase - combinedScore*pu.Config.SpawnShrinkPer
	if interval < pu.Config.SpawnMin {
		interval = pu.Config.SpawnMin
	}
	return interval
}

// MaybeSpawn places one pickup of a uniformly random type at a random
// in-bounds position when the spawn timer fires. While the uncollected cap
// is reached the spawn request is dropped, not queued. Returns true if a
// pickup appeared.
func (pu *PowerUps) MaybeSpawn(tick, combinedScore int) bool {
	if tick < pu.nextSpawn {
		return false
	}
	pu.nextSpawn = tick + pu.spawnInterval(combinedScore)

	if len(pu.Pickups) >= pu.Config.MaxUncollected {
		return false
	}

	// Keep clear of the paddles so a pickup is always reachable mid-field.
	margin := FieldW / 8
	pu.Pickups = append(pu.Pickups, Pickup{
		Type: PowerUpType(pu.rng.Intn(int(powerUpCount))),
		Pos: core.Vec2{
			X: pu.rng.Range(margin, FieldW-margin),
			Y: pu.rng.Range(BallSize*2, FieldH-BallSize*2),
		},
	})
	return true
}

// CollectAt checks the ball against every pickup using independent-axis
// distance thresholds (|Δx| < 2×ballSize AND |Δy| < 2×ballSize). On a hit
// the pickup is removed and its type returned; activation is the caller's
// job and runs exactly once per collected pickup.
func (pu *PowerUps) CollectAt(b *Ball) (PowerUpType, bool) {
	for i, pk := range pu.Pickups {
		dx := b.Pos.X - pk.Pos.X
		dy := b.Pos.Y - pk.Pos.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		if dx < 2*BallSize && dy < 2*BallSize {
			pu.Pickups = append(pu.Pickups[:i], pu.Pickups[i+1:]...)
			return pk.Type, true
		}
	}
	return 0, false
}

// Activate arms the effect for the fixed duration from now. Re-activating
// before expiry reschedules the same window: last trigger wins, no
// stacking.
func (pu *PowerUps) Activate(t PowerUpType, tick int) {
	pu.expiresAt[t] = tick + pu.Config.Duration
}

// Active reports whether the effect is live at the given tick.
func (pu *PowerUps) Active(t PowerUpType, tick int) bool {
	return pu.expiresAt[t] > tick
}

// Remaining returns the ticks left in the effect window, or 0.
func (pu *PowerUps) Remaining(t PowerUpType, tick int) int {
	if r := pu.expiresAt[t] - tick; r > 0 {
		return r
	}
	return 0
}

// Reset drops all pickups and active effects and restarts the spawn timer
// relative to the given tick.
func (pu *PowerUps) Reset(tick int) {
	pu.Pickups = pu.Pickups[:0]
	for i := range pu.expiresAt {
		pu.expiresAt[i] = 0
	}
	pu.nextSpawn = tick + pu.Config.SpawnBase
}
