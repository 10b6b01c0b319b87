package duelpong

import (
	"testing"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/sim"
)

func newTestPowerUps() *PowerUps {
	return NewPowerUps(DefaultPowerUpConfig(), sim.NewRand(1))
}

func TestSpawnTimerAndInterval(t *testing.T) {
	pu := newTestPowerUps()
	base := pu.Config.SpawnBase

	if pu.MaybeSpawn(base-1, 0) {
		t.Error("spawned before the timer fired")
	}
	if !pu.MaybeSpawn(base, 0) {
		t.Error("no spawn when the timer fired")
	}
	if len(pu.Pickups) != 1 {
		t.Fatalf("pickups = %d, want 1", len(pu.Pickups))
	}

	// The interval shrinks with combined score but never below the floor.
	if got := pu.spawnInterval(4); got != base-4*pu.Config.SpawnShrinkPer {
		t.Errorf("interval at score 4 = %d", got)
	}
	if got := pu.spawnInterval(1000); got != pu.Config.SpawnMin {
		t.Errorf("interval at score 1000 = %d, want floor %d", got, pu.Config.SpawnMin)
	}
}

func TestSpawnDroppedAtCap(t *testing.T) {
	pu := newTestPowerUps()
	tick := pu.Config.SpawnBase

	// Fill to the uncollected cap.
	for len(pu.Pickups) < pu.Config.MaxUncollected {
		if !pu.MaybeSpawn(tick, 0) {
			t.Fatal("spawn failed below the cap")
		}
		tick = pu.nextSpawn
	}

	// At the cap the request is dropped, not queued: the timer still
	// reschedules, and nothing appears later without a new timer expiry.
	if pu.MaybeSpawn(tick, 0) {
		t.Error("spawned past the uncollected cap")
	}
	if len(pu.Pickups) != pu.Config.MaxUncollected {
		t.Errorf("pickups = %d, want %d", len(pu.Pickups), pu.Config.MaxUncollected)
	}
	if pu.nextSpawn <= tick {
		t.Error("dropped spawn did not reschedule the timer")
	}
}

func TestCollectRemovesAndReturnsType(t *testing.T) {
	pu := newTestPowerUps()
	pu.Pickups = append(pu.Pickups, Pickup{Type: PowerSlowBall, Pos: core.Vec2{X: 400, Y: 200}})

	tests := []struct {
		name string
		pos  core.Vec2
		want bool
	}{
		{"dead on", core.Vec2{X: 400, Y: 200}, true},
		{"inside threshold", core.Vec2{X: 400 + 2*BallSize - 1, Y: 200}, true},
		{"outside on x", core.Vec2{X: 400 + 2*BallSize, Y: 200}, false},
		{"outside on y", core.Vec2{X: 400, Y: 200 + 2*BallSize}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pu.Pickups = pu.Pickups[:0]
			pu.Pickups = append(pu.Pickups, Pickup{Type: PowerSlowBall, Pos: core.Vec2{X: 400, Y: 200}})

			b := Ball{Pos: tt.pos}
			typ, ok := pu.CollectAt(&b)

			if ok != tt.want {
				t.Fatalf("collected = %v, want %v", ok, tt.want)
			}
			if ok && typ != PowerSlowBall {
				t.Errorf("type = %v, want slow-ball", typ)
			}
			if ok && len(pu.Pickups) != 0 {
				t.Error("collected pickup still on the field")
			}
		})
	}
}

func TestActivationWindowLastWriteWins(t *testing.T) {
	pu := newTestPowerUps()
	d := pu.Config.Duration

	pu.Activate(PowerDouble, 100)

	if !pu.Active(PowerDouble, 100) {
		t.Error("effect inactive immediately after activation")
	}
	if !pu.Active(PowerDouble, 100+d-1) {
		t.Error("effect expired one tick early")
	}
	if pu.Active(PowerDouble, 100+d) {
		t.Error("effect still live at its expiry tick")
	}

	// Re-activating mid-window replaces the window, it never stacks.
	pu.Activate(PowerDouble, 100)
	pu.Activate(PowerDouble, 400)
	if got := pu.Remaining(PowerDouble, 400); got != d {
		t.Errorf("remaining after re-activation = %d, want %d", got, d)
	}
	if pu.Active(PowerDouble, 400+d) {
		t.Error("stacked duration detected")
	}
}

func TestEffectsIndependent(t *testing.T) {
	pu := newTestPowerUps()

	pu.Activate(PowerBigPaddle, 50)
	if pu.Active(PowerSlowBall, 50) || pu.Active(PowerDouble, 50) {
		t.Error("activating one effect armed another")
	}
}

func TestResetClearsEverything(t *testing.T) {
	pu := newTestPowerUps()
	pu.Pickups = append(pu.Pickups, Pickup{Type: PowerMultiBall, Pos: core.Vec2{X: 300, Y: 100}})
	pu.Activate(PowerBigPaddle, 10)

	pu.Reset(0)

	if len(pu.Pickups) != 0 {
		t.Error("pickups survived reset")
	}
	if pu.Active(PowerBigPaddle, 11) {
		t.Error("effect survived reset")
	}
	if pu.nextSpawn != pu.Config.SpawnBase {
		t.Errorf("nextSpawn = %d, want %d", pu.nextSpawn, pu.Config.SpawnBase)
	}
}
