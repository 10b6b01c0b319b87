package flapper

import (
	"testing"
	"time"

	"github.com/termcade/termcade/internal/core"
)

const nominalDT = time.Second / 60

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func jumpFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestGravityPullsDown(t *testing.T) {
	g := newTestGame(1)
	g.Step(jumpFrame(), nominalDT) // starts play with an impulse

	// After the impulse decays the bird must be falling.
	startY := g.birdY
	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame(), nominalDT)
		if g.phase == core.PhaseGameOver {
			return // hit the floor, which proves the point
		}
	}
	if g.birdY <= startY {
		t.Errorf("bird y %v -> %v, want falling without input", startY, g.birdY)
	}
}

func TestJumpSetsFixedImpulse(t *testing.T) {
	g := newTestGame(2)
	g.Step(jumpFrame(), nominalDT)

	// The impulse replaces the velocity rather than accumulating, so
	// mashing jump cannot launch the bird arbitrarily fast.
	g.birdV = 100
	g.Step(jumpFrame(), nominalDT)
	want := g.cfg.Physics.JumpImpulse + g.cfg.Physics.Gravity
	if g.birdV != want {
		t.Errorf("birdV = %v, want %v after jump", g.birdV, want)
	}
}

func TestFallSpeedCapped(t *testing.T) {
	g := newTestGame(3)
	g.Step(jumpFrame(), nominalDT)

	for i := 0; i < 200 && g.phase == core.PhasePlaying; i++ {
		g.Step(core.NewInputFrame(), nominalDT)
		if g.birdV > g.cfg.Physics.MaxFallSpeed {
			t.Fatalf("birdV = %v exceeds max fall speed %v", g.birdV, g.cfg.Physics.MaxFallSpeed)
		}
	}
}

func TestFloorAndCeilingEndTheRun(t *testing.T) {
	tests := []struct {
		name string
		y    float64
		v    float64
	}{
		{"floor", FieldH - BirdSize/2 - 1, 10},
		{"ceiling", BirdSize / 2, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(4)
			g.Step(jumpFrame(), nominalDT)

			g.birdY = tt.y
			g.birdV = tt.v
			g.checkCollisions()
			if g.phase == core.PhaseGameOver {
				return // already out of bounds counts
			}
			g.Step(core.NewInputFrame(), nominalDT)

			if g.phase != core.PhaseGameOver {
				t.Errorf("bird at y=%v still alive", g.birdY)
			}
		})
	}
}

func TestPipeCollisionOutsideGap(t *testing.T) {
	g := newTestGame(5)
	g.Step(jumpFrame(), nominalDT)
	o := g.cfg.Obstacles

	// A pipe overlapping the bird's x with the gap elsewhere is a crash.
	g.pipes = append(g.pipes[:0], Pipe{X: BirdX - o.PipeWidth/2, GapY: 300, GapH: 120})
	g.birdY = 100
	g.checkCollisions()
	if g.phase != core.PhaseGameOver {
		t.Fatal("no crash against a pipe wall")
	}

	// Inside the gap the bird survives.
	g = newTestGame(5)
	g.Step(jumpFrame(), nominalDT)
	g.pipes = append(g.pipes[:0], Pipe{X: BirdX - o.PipeWidth/2, GapY: 100, GapH: 150})
	g.birdY = 175
	g.checkCollisions()
	if g.phase == core.PhaseGameOver {
		t.Error("crashed while inside the gap")
	}
}

func TestPassingPipeScoresOnce(t *testing.T) {
	g := newTestGame(6)
	g.Step(jumpFrame(), nominalDT)

	g.pipes = append(g.pipes[:0], Pipe{X: BirdX - 100, GapY: 100, GapH: 150})
	g.scrollPipes(1.0)

	if g.score != 1 {
		t.Fatalf("score = %d, want 1 after passing a pipe", g.score)
	}

	g.scrollPipes(1.0)
	if g.score != 1 {
		t.Error("pipe scored twice")
	}
}

func TestGapNeverBelowFloor(t *testing.T) {
	g := newTestGame(7)
	g.Step(jumpFrame(), nominalDT)
	g.score = 1000 // max difficulty

	for i := 0; i < 50; i++ {
		g.spawnPipe(FieldW)
		pp := g.pipes[len(g.pipes)-1]
		if pp.GapH < g.cfg.Obstacles.MinGapSize {
			t.Fatalf("gap %v below the floor %v", pp.GapH, g.cfg.Obstacles.MinGapSize)
		}
		if pp.GapY < 0 || pp.GapY+pp.GapH > FieldH {
			t.Fatalf("gap [%v, %v] outside the field", pp.GapY, pp.GapY+pp.GapH)
		}
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []uint64 {
		g := newTestGame(4242)
		hashes := make([]uint64, 0, 400)

		for i := 0; i < 400; i++ {
			in := core.NewInputFrame()
			if i%13 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in, nominalDT)
			hashes = append(hashes, g.Hash())
		}
		return hashes
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: hash diverged", i+1)
		}
	}
}

func TestRestartAfterCrash(t *testing.T) {
	g := newTestGame(8)
	g.Step(jumpFrame(), nominalDT)
	g.crash()

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in, nominalDT)

	if g.phase != core.PhaseIdle || g.score != 0 || g.birdY != FieldH/2 {
		t.Errorf("restart state: phase=%v score=%d birdY=%v", g.phase, g.score, g.birdY)
	}
}
