package sim

import (
	"math"
	"testing"
	"time"
)

func TestClockScale(t *testing.T) {
	c := NewClock(60)
	target := c.TargetInterval()

	tests := []struct {
		name string
		dt   time.Duration
		want float64
	}{
		{"nominal frame", target, 1.0},
		{"half frame", target / 2, 0.5},
		{"double frame", 2 * target, 2.0},
		{"stalled clock clamps", 10 * time.Second, MaxStepScale},
		{"zero delta falls back", 0, 1.0},
		{"negative delta falls back", -target, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Scale(tt.dt); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Scale(%v) = %v, want %v", tt.dt, got, tt.want)
			}
		})
	}
}

func TestClockZeroTickRate(t *testing.T) {
	c := NewClock(0)
	if c.TargetInterval() != time.Second/60 {
		t.Errorf("zero tick rate should default to 60, got %v", c.TargetInterval())
	}
}

func TestRandDeterminism(t *testing.T) {
	r1 := NewRand(12345)
	r2 := NewRand(12345)

	for i := 0; i < 1000; i++ {
		if r1.Next() != r2.Next() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRandFloat64Range(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v outside [0, 1)", f)
		}
	}
}

func TestRandRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		f := r.Range(-15, 15)
		if f < -15 || f >= 15 {
			t.Fatalf("Range(-15, 15) = %v out of bounds", f)
		}
	}
}
