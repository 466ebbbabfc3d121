package components

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// Arrow is a ranged projectile. It deals exactly one hit, then
// deactivates; it also deactivates on lifetime expiry or when it leaves
// the map.
type Arrow struct {
	X, Y     float64
	DX, DY   float64
	Lifetime int
	Active   bool
}

// NewArrow creates an arrow at (x, y) moving along the unit vector
// (dx, dy)
func NewArrow(x, y, dx, dy float64) *Arrow {
	return &Arrow{X: x, Y: y, DX: dx, DY: dy, Lifetime: constants.ArrowLifetime, Active: true}
}

// Rect returns the arrow's collision rectangle
func (a *Arrow) Rect() vmath.Rect {
	return vmath.NewRect(a.X, a.Y, constants.ArrowSize, constants.ArrowSize)
}

// Advance moves the arrow one tick and deactivates it on expiry or when
// it leaves the map bounds
func (a *Arrow) Advance() {
	a.X += a.DX * constants.ArrowSpeed
	a.Y += a.DY * constants.ArrowSpeed
	a.Lifetime--

	if a.Lifetime <= 0 || a.X < 0 || a.X > constants.MapWidth || a.Y < 0 || a.Y > constants.MapHeight {
		a.Active = false
	}
}
