// Package vmath provides float64 vector and rectangle math for the
// simulation. All positions and velocities are in world units.
package vmath

import "math"

// Normalize2D returns the unit vector of (x, y), zero-safe.
// A zero-length input returns (0, 0) so callers can skip movement
// instead of dividing by zero.
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := Magnitude(x, y)
	if mag == 0 {
		return 0, 0
	}
	return x / mag, y / mag
}

// Magnitude returns the vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	return Magnitude(x2-x1, y2-y1)
}

// Perpendicular returns the vector rotated 90° counter-clockwise
func Perpendicular(x, y float64) (px, py float64) {
	return -y, x
}

// FromAngle returns the unit vector for an angle in radians
func FromAngle(angle float64) (x, y float64) {
	return math.Cos(angle), math.Sin(angle)
}

// Clamp limits v to the inclusive range [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
