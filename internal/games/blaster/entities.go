package blaster

import "github.com/termcade/termcade/internal/core"

// Logical field; the renderer scales to terminal cells.
const (
	FieldW = 800.0
	FieldH = 400.0
)

// Kind tags an entity variant. All entities share position/velocity and
// an AABB; kind-specific data (health, damage) lives in the same struct
// and is meaningful only for the kinds that use it.
type Kind int

const (
	KindShip Kind = iota
	KindProjectile
	KindEnemy
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindShip:
		return "ship"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is one object on the field. Pos is the center.
type Entity struct {
	Kind Kind
	Pos  core.Vec2
	Vel  core.Vec2
	W, H float64

	Health int // enemies: hits left
	Damage int // projectiles: health removed on impact
}

// Bounds returns the axis-aligned box used for collision.
func (e *Entity) Bounds() core.Rect {
	return core.Rect{
		X: e.Pos.X - e.W/2,
		Y: e.Pos.Y - e.H/2,
		W: e.W,
		H: e.H,
	}
}

// Advance integrates the position by one scaled step.
func (e *Entity) Advance(scale float64) {
	e.Pos = e.Pos.Add(e.Vel.Scale(scale))
}

// Collides reports AABB overlap with another entity.
func (e *Entity) Collides(other *Entity) bool {
	return e.Bounds().Intersects(other.Bounds())
}
