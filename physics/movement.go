package physics

import (
	"github.com/haoranliu666/Hell-Survivor/terrain"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// MoveResult reports which step of the resolution ladder succeeded
type MoveResult int

const (
	// MoveFull means the unmodified displacement was applied
	MoveFull MoveResult = iota

	// MoveAxisX and MoveAxisY mean only one axis of the displacement fit
	MoveAxisX
	MoveAxisY

	// MoveDeflected means a perpendicular deflection was applied instead
	MoveDeflected

	// MoveBlocked means no candidate fit and the mover stayed put
	MoveBlocked
)

// Blocked reports whether the displaced position hit an obstruction.
// MoveFull and the axis slides count as progress.
func (r MoveResult) Blocked() bool {
	return r != MoveFull
}

// ResolveMove advances a w x h mover from (x, y) by (dx, dy) against the
// terrain, trying the full displacement first, then each axis alone,
// then, when deflect is set, two perpendicular deflections of the same
// magnitude. The chosen position is clamped to the island. Returns the
// final origin and which step succeeded.
func ResolveMove(m *terrain.Model, x, y, w, h, dx, dy float64, deflect bool) (nx, ny float64, res MoveResult) {
	type candidate struct {
		dx, dy float64
		res    MoveResult
	}

	candidates := []candidate{
		{dx, dy, MoveFull},
		{dx, 0, MoveAxisX},
		{0, dy, MoveAxisY},
	}
	if deflect {
		px, py := vmath.Perpendicular(dx, dy)
		candidates = append(candidates,
			candidate{px, py, MoveDeflected},
			candidate{-px, -py, MoveDeflected},
		)
	}

	for _, c := range candidates {
		if c.dx == 0 && c.dy == 0 && c.res != MoveFull {
			continue
		}
		cx, cy := m.ClampRect(x+c.dx, y+c.dy, w, h)
		if !m.Blocked(vmath.NewRect(cx, cy, w, h)) {
			return cx, cy, c.res
		}
	}

	// Stay put, but keep the mover on the island
	nx, ny = m.ClampRect(x, y, w, h)
	return nx, ny, MoveBlocked
}

// ResolvePoint advances a center-anchored mover whose collision rect is
// centered on its position, clamping the center itself to the island.
// Used by the pursuer, whose anchor is its head center.
func ResolvePoint(m *terrain.Model, x, y, w, h, dx, dy float64) (nx, ny float64, res MoveResult) {
	candidates := [][2]float64{{dx, dy}, {dx, 0}, {0, dy}}
	results := []MoveResult{MoveFull, MoveAxisX, MoveAxisY}

	for i, c := range candidates {
		if c[0] == 0 && c[1] == 0 && results[i] != MoveFull {
			continue
		}
		cx, cy := m.ClampPoint(x+c[0], y+c[1])
		if !m.Blocked(vmath.CenteredRect(cx, cy, w, h)) {
			return cx, cy, results[i]
		}
	}

	nx, ny = m.ClampPoint(x, y)
	return nx, ny, MoveBlocked
}
