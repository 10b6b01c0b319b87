package sim

import (
	"math"

	"github.com/termcade/termcade/internal/core"
)

// DefaultParticleCap bounds the live particle set. Overflow drops the
// oldest entries first so the most recent visual feedback survives.
const DefaultParticleCap = 500

// ParticleKind selects the emission preset: color, size, speed, life,
// gravity, and whether particles fade out or render with a glow halo.
type ParticleKind int

const (
	ParticleExplosion ParticleKind = iota
	ParticleTrail
	ParticlePickup
	ParticleAmbient
)

// String returns the preset name.
func (k ParticleKind) String() string {
	switch k {
	case ParticleExplosion:
		return "explosion"
	case ParticleTrail:
		return "trail"
	case ParticlePickup:
		return "pickup"
	case ParticleAmbient:
		return "ambient"
	default:
		return "unknown"
	}
}

// Particle is one ephemeral visual effect. Life is measured in nominal
// ticks and decremented by the step scale each update.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Size    float64
	Life    float64
	MaxLife float64
	Color   core.Color
	Kind    ParticleKind
	Gravity float64
	Fade    bool
	Glow    bool

	baseSize float64
}

// preset holds per-kind emission defaults.
type preset struct {
	color   core.Color
	size    float64
	speed   float64
	life    float64
	spread  float64
	gravity float64
	fade    bool
	glow    bool
}

var presets = map[ParticleKind]preset{
	ParticleExplosion: {color: core.ColorOrange, size: 3, speed: 4, life: 40, spread: 0.9, gravity: 0.08, fade: true},
	ParticleTrail:     {color: core.ColorCyan, size: 2, speed: 1, life: 18, spread: 0.4, fade: true, glow: true},
	ParticlePickup:    {color: core.ColorBrightYellow, size: 2.5, speed: 2.5, life: 30, spread: 0.6, fade: true, glow: true},
	ParticleAmbient:   {color: core.ColorGray, size: 1.5, speed: 0.5, life: 90, spread: 1.2, gravity: 0.01, fade: true},
}

// Override replaces individual preset values for one Emit call. Zero
// values mean "use the preset"; none of the preset values are legitimately
// zero so no sentinel is needed.
type Override struct {
	Color  core.Color
	Spread float64
	Speed  float64
	Life   float64
	Size   float64
}

// ParticleSystem manages a bounded pool of particles. The live set is
// rebuilt wholesale each update, never mutated during a render read.
type ParticleSystem struct {
	parts  []Particle
	cap    int
	bounds core.Rect
	rng    *Rand
}

// NewParticleSystem creates a system confined to the given field bounds.
// Particles leaving the bounds are reaped on the next update.
func NewParticleSystem(cap int, bounds core.Rect, rng *Rand) *ParticleSystem {
	if cap <= 0 {
		cap = DefaultParticleCap
	}
	return &ParticleSystem{
		parts:  make([]Particle, 0, cap),
		cap:    cap,
		bounds: bounds,
		rng:    rng,
	}
}

// Emit appends count particles of the given kind at (x, y) using the
// kind's preset. count <= 0 is a no-op.
func (ps *ParticleSystem) Emit(x, y float64, count int, kind ParticleKind) {
	ps.EmitWith(x, y, count, kind, Override{})
}

// EmitWith appends count particles, applying any non-zero overrides.
// Initial velocity vectors are spaced evenly around the circle (2π/count)
// and perturbed by ±spread/2 of uniform jitter; the magnitude is the
// preset speed scaled by U(0.5, 1.0). When the pool is full the oldest
// particles are dropped first (FIFO); insertion order is preserved.
func (ps *ParticleSystem) EmitWith(x, y float64, count int, kind ParticleKind, o Override) {
	if count <= 0 {
		return
	}

	p := presets[kind]
	color := p.color
	if o.Color != core.ColorDefault {
		color = o.Color
	}
	spread := p.spread
	if o.Spread != 0 {
		spread = o.Spread
	}
	speed := p.speed
	if o.Speed != 0 {
		speed = o.Speed
	}
	life := p.life
	if o.Life != 0 {
		life = o.Life
	}
	size := p.size
	if o.Size != 0 {
		size = o.Size
	}

	step := 2 * math.Pi / float64(count)
	for i := 0; i < count; i++ {
		angle := step*float64(i) + ps.rng.Range(-spread/2, spread/2)
		mag := speed * ps.rng.Range(0.5, 1.0)

		ps.parts = append(ps.parts, Particle{
			Pos:      core.Vec2{X: x, Y: y},
			Vel:      core.Vec2{X: math.Cos(angle) * mag, Y: math.Sin(angle) * mag},
			Size:     size,
			Life:     life,
			MaxLife:  life,
			Color:    color,
			Kind:     kind,
			Gravity:  p.gravity,
			Fade:     p.fade,
			Glow:     p.glow,
			baseSize: size,
		})
	}

	if overflow := len(ps.parts) - ps.cap; overflow > 0 {
		ps.parts = append(ps.parts[:0], ps.parts[overflow:]...)
	}
}

// Update advances every particle by one step: position += velocity,
// velocity.y += gravity, life decremented, size tracks the remaining life
// fraction when fading. Dead or out-of-bounds particles are filtered out.
func (ps *ParticleSystem) Update(scale float64) {
	live := ps.parts[:0]
	for _, p := range ps.parts {
		p.Pos = p.Pos.Add(p.Vel.Scale(scale))
		p.Vel.Y += p.Gravity * scale
		p.Life -= scale

		if p.Life <= 0 {
			continue
		}
		if !ps.bounds.Contains(p.Pos.X, p.Pos.Y) {
			continue
		}
		if p.Fade {
			p.Size = p.baseSize * (p.Life / p.MaxLife)
		}
		live = append(live, p)
	}
	ps.parts = live
}

// Clear empties the pool immediately.
func (ps *ParticleSystem) Clear() {
	ps.parts = ps.parts[:0]
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.parts)
}

// Cap returns the pool capacity.
func (ps *ParticleSystem) Cap() int {
	return ps.cap
}

// Snapshot returns a copy of the live particle list for rendering. The
// caller may hold it across ticks; the system never mutates a returned
// slice.
func (ps *ParticleSystem) Snapshot() []Particle {
	out := make([]Particle, len(ps.parts))
	copy(out, ps.parts)
	return out
}
