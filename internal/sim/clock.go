// Package sim holds the simulation primitives shared by the games: the
// frame clock, a deterministic RNG, and the particle system. Everything in
// here is pure in-memory state advanced by exactly one Step at a time;
// there are no goroutines and no timers to leak.
package sim

import (
	"math"
	"time"
)

// MaxStepScale caps how many nominal frames a single step may cover. A
// stalled host clock would otherwise integrate a huge delta and tunnel
// entities through thin paddles.
const MaxStepScale = 3.0

// Clock converts measured frame deltas into a dimensionless step scale.
// A scale of 1.0 means exactly one nominal frame elapsed; the simulation
// multiplies velocities by it so its rate stays decoupled from the
// display rate.
type Clock struct {
	target time.Duration
}

// NewClock creates a clock for the given tick rate (ticks per second).
func NewClock(tickRate int) Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Clock{target: time.Second / time.Duration(tickRate)}
}

// TargetInterval returns the nominal duration of one tick.
func (c Clock) TargetInterval() time.Duration {
	return c.target
}

// Scale returns dt expressed in nominal frames, clamped to (0, MaxStepScale].
// Zero, negative, or non-finite deltas fall back to one nominal frame, so a
// bad host clock degrades to fixed-step instead of corrupting state.
func (c Clock) Scale(dt time.Duration) float64 {
	scale := float64(dt) / float64(c.target)
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		return 1.0
	}
	if scale > MaxStepScale {
		return MaxStepScale
	}
	return scale
}
