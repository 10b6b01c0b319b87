package sim

import (
	"math"
	"testing"

	"github.com/termcade/termcade/internal/core"
)

var testBounds = core.Rect{X: -50, Y: -50, W: 900, H: 500}

func newTestSystem(cap int) *ParticleSystem {
	return NewParticleSystem(cap, testBounds, NewRand(42))
}

func TestEmitCount(t *testing.T) {
	ps := newTestSystem(100)

	ps.Emit(400, 200, 12, ParticleExplosion)
	if ps.Len() != 12 {
		t.Errorf("Len() = %d, want 12", ps.Len())
	}

	// count = 0 is a no-op
	ps.Emit(400, 200, 0, ParticleExplosion)
	if ps.Len() != 12 {
		t.Errorf("Len() after zero emit = %d, want 12", ps.Len())
	}

	// negative count is a no-op
	ps.Emit(400, 200, -3, ParticleTrail)
	if ps.Len() != 12 {
		t.Errorf("Len() after negative emit = %d, want 12", ps.Len())
	}
}

func TestEmitVelocityMagnitude(t *testing.T) {
	ps := newTestSystem(100)
	ps.EmitWith(0, 0, 50, ParticleExplosion, Override{Speed: 4})

	for i, p := range ps.Snapshot() {
		mag := p.Vel.Len()
		// magnitude is speed * U(0.5, 1.0)
		if mag < 2-1e-9 || mag > 4+1e-9 {
			t.Errorf("particle %d velocity magnitude %v outside [2, 4]", i, mag)
		}
	}
}

func TestPoolCapEvictsOldestFirst(t *testing.T) {
	ps := newTestSystem(10)

	ps.EmitWith(1, 1, 8, ParticleTrail, Override{})
	ps.EmitWith(2, 2, 8, ParticleExplosion, Override{})

	if ps.Len() != 10 {
		t.Fatalf("Len() = %d, want cap 10", ps.Len())
	}

	parts := ps.Snapshot()
	// The 6 oldest trail particles were dropped; the survivors keep
	// insertion order: 2 trail then 8 explosion.
	for i := 0; i < 2; i++ {
		if parts[i].Kind != ParticleTrail {
			t.Errorf("parts[%d].Kind = %v, want trail", i, parts[i].Kind)
		}
	}
	for i := 2; i < 10; i++ {
		if parts[i].Kind != ParticleExplosion {
			t.Errorf("parts[%d].Kind = %v, want explosion", i, parts[i].Kind)
		}
	}
}

func TestLifeBoundsInvariant(t *testing.T) {
	ps := newTestSystem(200)
	ps.Emit(400, 200, 60, ParticleExplosion)
	ps.Emit(400, 200, 60, ParticleAmbient)

	for tick := 0; tick < 200; tick++ {
		ps.Update(1.0)
		if ps.Len() > ps.Cap() {
			t.Fatalf("tick %d: count %d exceeds cap %d", tick, ps.Len(), ps.Cap())
		}
		for i, p := range ps.Snapshot() {
			if p.Life <= 0 || p.Life > p.MaxLife {
				t.Fatalf("tick %d: particle %d life %v outside (0, %v]", tick, i, p.Life, p.MaxLife)
			}
		}
	}

	// Everything decays eventually
	if ps.Len() != 0 {
		t.Errorf("all particles should be reaped, %d remain", ps.Len())
	}
}

func TestFadeScalesSize(t *testing.T) {
	ps := newTestSystem(10)
	ps.EmitWith(400, 200, 1, ParticleExplosion, Override{Size: 4, Life: 10, Speed: 0.001})

	ps.Update(1.0)
	p := ps.Snapshot()[0]
	want := 4 * (p.Life / p.MaxLife)
	if math.Abs(p.Size-want) > 1e-9 {
		t.Errorf("Size = %v, want %v", p.Size, want)
	}
}

func TestGravityAccelerates(t *testing.T) {
	ps := newTestSystem(10)
	ps.Emit(400, 200, 1, ParticleExplosion)

	before := ps.Snapshot()[0].Vel.Y
	ps.Update(1.0)
	after := ps.Snapshot()[0].Vel.Y

	if after <= before {
		t.Errorf("gravity should increase vy: before %v, after %v", before, after)
	}
}

func TestOutOfBoundsReaped(t *testing.T) {
	ps := newTestSystem(200)
	// Long-lived, fast particles: every one leaves the field well before
	// its life runs out, so removal must come from the bounds check.
	ps.EmitWith(400, 200, 64, ParticleExplosion, Override{Speed: 50, Life: 10000})

	for tick := 0; tick < 100; tick++ {
		ps.Update(1.0)
	}
	if ps.Len() != 0 {
		t.Errorf("out-of-bounds particles should be reaped, %d remain", ps.Len())
	}
}

func TestClear(t *testing.T) {
	ps := newTestSystem(100)
	ps.Emit(400, 200, 30, ParticlePickup)

	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Clear left %d particles", ps.Len())
	}
}

func TestOverrideColor(t *testing.T) {
	ps := newTestSystem(10)
	ps.EmitWith(400, 200, 1, ParticleExplosion, Override{Color: core.ColorMagenta})

	if got := ps.Snapshot()[0].Color; got != core.ColorMagenta {
		t.Errorf("Color = %v, want magenta", got)
	}
}
