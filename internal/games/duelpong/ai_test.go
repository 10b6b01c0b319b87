package duelpong

import (
	"math"
	"testing"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/sim"
)

func TestOpponentVelocityNeverExceedsClamp(t *testing.T) {
	cfg := DefaultAIConfig()
	o := NewOpponent(cfg, sim.NewRand(7))
	p := Paddle{X: FieldW - PaddleGap - PaddleW, Y: 0, Height: 80}
	balls := []Ball{{Pos: core.Vec2{X: 700, Y: FieldH - 10}, Vel: core.Vec2{X: 7, Y: 0}}}

	for i := 0; i < 500; i++ {
		o.Update(&p, balls, 1.0)
		if math.Abs(o.vel) > o.maxSpeed+1e-9 {
			t.Fatalf("tick %d: |vel| = %v exceeds clamp %v", i, math.Abs(o.vel), o.maxSpeed)
		}
	}
}

func TestOpponentSteadyStateSpeedBounded(t *testing.T) {
	// With friction f and per-tick accel a, the low-pass converges to
	// a/(1-f). At the defaults that is 0.9/0.12 = 7.5, which the ramped
	// clamp is allowed to reach but never pass.
	cfg := DefaultAIConfig()
	limit := cfg.Accel / (1 - cfg.Friction)

	if limit > cfg.MaxSpeedCap+1e-9 {
		t.Fatalf("steady-state speed %v exceeds the hard cap %v", limit, cfg.MaxSpeedCap)
	}
}

func TestOpponentTracksBall(t *testing.T) {
	cfg := DefaultAIConfig()
	cfg.MissChance = 0 // deterministic tracking for this test
	cfg.Jitter = 0
	o := NewOpponent(cfg, sim.NewRand(3))

	p := Paddle{X: FieldW - PaddleGap - PaddleW, Y: 0, Height: 80}
	balls := []Ball{{Pos: core.Vec2{X: 600, Y: 300}}}

	for i := 0; i < 300; i++ {
		o.Update(&p, balls, 1.0)
	}

	if math.Abs(p.CenterY()-300) > p.Height {
		t.Errorf("paddle center %v, ball at 300: opponent failed to track", p.CenterY())
	}
}

func TestOpponentTargetsNearestThreat(t *testing.T) {
	o := NewOpponent(DefaultAIConfig(), sim.NewRand(1))
	balls := []Ball{
		{Pos: core.Vec2{X: 200, Y: 50}},
		{Pos: core.Vec2{X: 650, Y: 350}},
		{Pos: core.Vec2{X: 400, Y: 100}},
	}

	if got := o.target(balls); got != 350 {
		t.Errorf("target y = %v, want 350 (ball closest to the opponent)", got)
	}
	if got := o.target(nil); got != FieldH/2 {
		t.Errorf("idle target = %v, want field center", got)
	}
}

func TestOpponentRampCapsAtCeiling(t *testing.T) {
	cfg := DefaultAIConfig()
	o := NewOpponent(cfg, sim.NewRand(1))

	if o.MaxSpeed() != cfg.BaseMaxSpeed {
		t.Fatalf("initial clamp = %v, want %v", o.MaxSpeed(), cfg.BaseMaxSpeed)
	}

	for i := 0; i < 1000; i++ {
		o.OnRally()
	}
	if o.MaxSpeed() != cfg.MaxSpeedCap {
		t.Errorf("ramped clamp = %v, want ceiling %v", o.MaxSpeed(), cfg.MaxSpeedCap)
	}

	o.Reset()
	if o.MaxSpeed() != cfg.BaseMaxSpeed || o.vel != 0 {
		t.Error("reset did not restore base difficulty")
	}
}

func TestOpponentMissChanceMovesWrongWay(t *testing.T) {
	// With a 100% miss chance every impulse is inverted, so a paddle below
	// the ball should trend away from it rather than toward it.
	cfg := DefaultAIConfig()
	cfg.MissChance = 1.0
	cfg.Jitter = 0
	o := NewOpponent(cfg, sim.NewRand(9))

	p := Paddle{X: FieldW - PaddleGap - PaddleW, Y: 300, Height: 80}
	balls := []Ball{{Pos: core.Vec2{X: 700, Y: 50}}}

	for i := 0; i < 50; i++ {
		o.Update(&p, balls, 1.0)
	}

	if p.Y < 300 {
		t.Errorf("paddle y = %v moved toward the ball despite inverted impulses", p.Y)
	}
}
