// Package terrain models the static platform geometry: the island
// rectangle the run takes place on and the destructible rock spires
// that obstruct movement. The model is a plain value passed into
// movement and collision queries; there is no package-level state.
package terrain

import (
	"math"
	"math/rand"

	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// Spire is a single destructible obstruction anchored at (X, Y)
type Spire struct {
	X, Y float64
}

// Rect returns the spire's collision rectangle
func (s Spire) Rect() vmath.Rect {
	return vmath.NewRect(
		s.X+constants.SpireCollisionOffsetX,
		s.Y+constants.SpireCollisionOffsetY,
		constants.SpireCollisionWidth,
		constants.SpireCollisionHeight,
	)
}

// Model holds the island bounds and the current set of spires
type Model struct {
	Island vmath.Rect
	Spires []Spire
}

// Generate builds a fresh terrain model with randomly placed spires.
// Spires keep clear of the central spawn area and of each other.
func Generate(rng *rand.Rand) *Model {
	m := &Model{
		Island: vmath.NewRect(
			constants.IslandLeft,
			constants.IslandTop,
			constants.IslandRight-constants.IslandLeft,
			constants.IslandBottom-constants.IslandTop,
		),
	}

	centerX := float64(constants.MapWidth) / 2
	centerY := float64(constants.MapHeight) / 2

	for attempts := 0; len(m.Spires) < constants.SpireCount && attempts < constants.SpirePlacementAttempts; attempts++ {
		x := float64(constants.IslandLeft + 20 + rng.Intn(constants.IslandRight-constants.IslandLeft-60))
		y := float64(constants.IslandTop + 20 + rng.Intn(constants.IslandBottom-constants.IslandTop-60))

		if math.Hypot(x-centerX, y-centerY) < constants.SpireMinCenterDist {
			continue
		}

		tooClose := false
		for _, s := range m.Spires {
			if math.Hypot(x-s.X, y-s.Y) < constants.SpireMinSpacing {
				tooClose = true
				break
			}
		}
		if !tooClose {
			m.Spires = append(m.Spires, Spire{X: x, Y: y})
		}
	}

	return m
}

// Blocked reports whether r overlaps any spire
func (m *Model) Blocked(r vmath.Rect) bool {
	return m.BlockingIndex(r) >= 0
}

// BlockingIndex returns the index of the first spire overlapping r,
// or -1 if the rectangle is clear
func (m *Model) BlockingIndex(r vmath.Rect) int {
	for i, s := range m.Spires {
		if r.Overlaps(s.Rect()) {
			return i
		}
	}
	return -1
}

// Destroy permanently removes the spire at index, returning its anchor
// position. Returns ok=false for an out-of-range index (the spire may
// already have been destroyed this tick).
func (m *Model) Destroy(index int) (x, y float64, ok bool) {
	if index < 0 || index >= len(m.Spires) {
		return 0, 0, false
	}
	s := m.Spires[index]
	m.Spires = append(m.Spires[:index], m.Spires[index+1:]...)
	return s.X, s.Y, true
}

// ClampRect constrains a rectangle origin so the whole rectangle stays
// on the island
func (m *Model) ClampRect(x, y, w, h float64) (cx, cy float64) {
	cx = vmath.Clamp(x, m.Island.X, m.Island.X+m.Island.W-w)
	cy = vmath.Clamp(y, m.Island.Y, m.Island.Y+m.Island.H-h)
	return cx, cy
}

// ClampPoint constrains a point to the island bounds. Used by the
// pursuer, whose anchor is its head center rather than a top-left
// origin.
func (m *Model) ClampPoint(x, y float64) (cx, cy float64) {
	cx = vmath.Clamp(x, m.Island.X, m.Island.X+m.Island.W)
	cy = vmath.Clamp(y, m.Island.Y, m.Island.Y+m.Island.H)
	return cx, cy
}
