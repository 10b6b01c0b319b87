package duelpong

import (
	"math"

	"github.com/termcade/termcade/internal/core"
	"github.com/termcade/termcade/internal/sim"
)

// The simulation runs in a logical field independent of the terminal;
// the renderer scales field units to cells.
const (
	FieldW = 800.0
	FieldH = 400.0

	BallSize    = 10.0
	PaddleW     = 12.0
	PaddleGap   = 20.0 // Distance from field edge to paddle face
	MaxBounce   = 0.75 // Max deflection angle in radians
	BigPaddleK  = 1.5  // Paddle height factor while the big-paddle power-up is active
	SlowBallK   = 0.5  // Speed multiplier factor while the slow power-up is active
	MaxSpeedK   = 1.6  // Cap on the rally speed multiplier
	SpeedRampAt = 1800 // Ticks since last score at which the multiplier maxes out
)

// Ball is a moving entity. Position is the center; velocity is in field
// units per nominal tick. Balls are owned by the step function: created on
// reset or by the multi-ball power-up, removed immediately on scoring.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Advance integrates the ball position: pos += vel × mult × scale, where
// mult is the global speed multiplier and scale the clamped frame delta.
func (b *Ball) Advance(mult, scale float64) {
	b.Pos = b.Pos.Add(b.Vel.Scale(mult * scale))
}

// ReflectWalls bounces the ball off the top and bottom field edges: vy is
// negated and the position clamped, an exact reflection with no energy
// loss. Returns true when a bounce happened.
func (b *Ball) ReflectWalls() bool {
	half := BallSize / 2

	if b.Pos.Y < half {
		b.Pos.Y = half
		b.Vel.Y = -b.Vel.Y
		return true
	}
	if b.Pos.Y > FieldH-half {
		b.Pos.Y = FieldH - half
		b.Vel.Y = -b.Vel.Y
		return true
	}
	return false
}

// Paddle is one player's paddle. X is the inner face the ball bounces off;
// Y is the top edge. Height may be temporarily scaled by the big-paddle
// power-up.
type Paddle struct {
	X      float64
	Y      float64
	Height float64
}

// CenterY returns the vertical center of the paddle.
func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Clamp keeps the paddle inside the field.
func (p *Paddle) Clamp() {
	p.Y = core.ClampF(p.Y, 0, FieldH-p.Height)
}

// HitsPaddle reports whether the ball's leading edge has crossed the
// paddle's x-plane while its y lies within the paddle's vertical span.
// movingRight selects which paddle face is the plane.
func HitsPaddle(b *Ball, p *Paddle, movingRight bool) bool {
	half := BallSize / 2

	if movingRight {
		if b.Vel.X <= 0 || b.Pos.X+half < p.X {
			return false
		}
	} else {
		if b.Vel.X >= 0 || b.Pos.X-half > p.X {
			return false
		}
	}

	return b.Pos.Y >= p.Y-half && b.Pos.Y <= p.Y+p.Height+half
}

// BounceOffPaddle recomputes the ball velocity after a paddle hit. The
// deflection angle is proportional to where on the paddle contact
// occurred: normalizedOffset = (paddleCenter − contactY)/(paddleHeight/2),
// clamped to [−1, 1], and bounceAngle = normalizedOffset × MaxBounce.
// Speed magnitude is preserved; x reverses, y follows sin(bounceAngle).
// A center hit therefore reflects purely horizontally, the top edge gives
// maximal positive deflection and the bottom edge maximal negative.
func BounceOffPaddle(b *Ball, p *Paddle, movingRight bool) {
	offset := core.ClampF((p.CenterY()-b.Pos.Y)/(p.Height/2), -1, 1)
	angle := offset * MaxBounce
	speed := b.Vel.Len()

	dir := 1.0
	if movingRight {
		dir = -1.0
		b.Pos.X = p.X - BallSize/2
	} else {
		b.Pos.X = p.X + BallSize/2
	}

	b.Vel.X = dir * speed * math.Cos(angle)
	b.Vel.Y = speed * math.Sin(angle)
}

// NewCenterBall spawns a ball at the field center with a randomized launch
// direction toward the given side, the vertical component within ±MaxBounce.
func NewCenterBall(rng *sim.Rand, speed float64, towardPlayer bool) Ball {
	angle := rng.Range(-MaxBounce, MaxBounce)
	vx := speed * math.Cos(angle)
	if towardPlayer {
		vx = -vx
	}
	return Ball{
		Pos: core.Vec2{X: FieldW / 2, Y: FieldH / 2},
		Vel: core.Vec2{X: vx, Y: speed * math.Sin(angle)},
	}
}

// OutLeft reports whether the ball has left the field past the player edge.
func (b *Ball) OutLeft() bool {
	return b.Pos.X < 0
}

// OutRight reports whether the ball has left the field past the CPU edge.
func (b *Ball) OutRight() bool {
	return b.Pos.X > FieldW
}
