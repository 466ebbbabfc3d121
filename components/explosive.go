package components

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// Bomb is a thrown explosive with decaying velocity and a detonation
// countdown. Exploded flips exactly once, on the tick the countdown
// reaches zero; the explosive system resolves area damage on that edge
// and removes the bomb the same tick.
type Bomb struct {
	X, Y     float64
	DX, DY   float64
	Damage   int
	Radius   float64
	Flight   int
	Exploded bool
}

// NewBomb creates a bomb at (x, y) thrown along the unit vector (dx, dy)
func NewBomb(x, y, dx, dy float64, damage int, radius float64) *Bomb {
	return &Bomb{X: x, Y: y, DX: dx, DY: dy, Damage: damage, Radius: radius, Flight: constants.BombFlightTicks}
}

// Rect returns the bomb's rectangle, centered on its position
func (b *Bomb) Rect() vmath.Rect {
	return vmath.CenteredRect(b.X, b.Y, constants.BombWidth, constants.BombHeight)
}

// Advance moves the bomb one tick with decaying velocity and counts down
// to detonation. Returns true on the detonation edge.
func (b *Bomb) Advance() bool {
	if b.Exploded {
		return false
	}

	b.X += b.DX * constants.BombSpeed
	b.Y += b.DY * constants.BombSpeed
	b.DX *= constants.BombVelocityDecay
	b.DY *= constants.BombVelocityDecay
	b.Flight--

	if b.Flight <= 0 {
		b.Exploded = true
		return true
	}
	return false
}
