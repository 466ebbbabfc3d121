package systems

import (
	"math"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
	"github.com/haoranliu666/Hell-Survivor/physics"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// EnemySystem advances enemy AI: wanderer drift, pursuer slither chase,
// and boss pursuit with spire demolition when blocked too long.
type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (es *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

func (es *EnemySystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		if e.DamageCooldown > 0 {
			e.DamageCooldown--
		}

		switch e.Kind {
		case components.EnemyWanderer:
			es.updateWanderer(w, e)
		case components.EnemyPursuer:
			es.updatePursuer(w, e)
		case components.EnemyBoss:
			es.updateBoss(w, e)
		}
	}
}

// updateWanderer drifts on a timed random heading with an occasional
// lunge toward the player; a dead end steers perpendicular
func (es *EnemySystem) updateWanderer(w *engine.World, e *components.Enemy) {
	e.MoveTimer--
	if e.MoveTimer <= 0 {
		if w.Rng.Float64() < 0.1 {
			px, py := w.Player.Center()
			cx, cy := e.Center()
			e.MoveDX, e.MoveDY = vmath.Normalize2D(px-cx, py-cy)
		} else {
			angle := w.Rng.Float64() * 2 * math.Pi
			e.MoveDX, e.MoveDY = vmath.FromAngle(angle)
		}
		e.MoveTimer = 20 + w.Rng.Intn(41)
	}

	e.FacingRight = e.MoveDX >= 0

	var res physics.MoveResult
	e.X, e.Y, res = physics.ResolveMove(w.Terrain,
		e.X, e.Y, e.Width, e.Height,
		e.MoveDX*e.Speed, e.MoveDY*e.Speed, false)

	if res == physics.MoveBlocked {
		// Steer perpendicular to the blocked heading, random side
		perpAngle := math.Atan2(e.MoveDY, e.MoveDX)
		if w.Rng.Float64() < 0.5 {
			perpAngle += math.Pi / 2
		} else {
			perpAngle -= math.Pi / 2
		}
		e.MoveDX, e.MoveDY = vmath.FromAngle(perpAngle)
		e.MoveTimer = 10 + w.Rng.Intn(21)
	}
}

// updatePursuer chases the player head-first with a sinusoidal slither,
// deflecting around obstructions, and records the segment trail
func (es *EnemySystem) updatePursuer(w *engine.World, e *components.Enemy) {
	e.SlitherOffset += constants.PursuerSlitherStep

	px, py := w.Player.Center()
	dx := px - e.X
	dy := py - e.Y
	dist := vmath.Magnitude(dx, dy)

	if dist > 0 {
		slither := math.Sin(e.SlitherOffset) * constants.PursuerSlitherAmp
		perpX := -dy / dist
		perpY := dx / dist

		moveX := (dx/dist)*e.Speed + perpX*slither
		moveY := (dy/dist)*e.Speed + perpY*slither

		var res physics.MoveResult
		e.X, e.Y, res = physics.ResolvePoint(w.Terrain, e.X, e.Y, e.Width+2, e.Height+2, moveX, moveY)

		if res == physics.MoveBlocked {
			// Deflect perpendicular to the player direction, either side
			for _, sign := range []float64{1, -1} {
				nx, ny := w.Terrain.ClampPoint(e.X+perpX*e.Speed*sign, e.Y+perpY*e.Speed*sign)
				if !w.Terrain.Blocked(vmath.CenteredRect(nx, ny, e.Width+2, e.Height+2)) {
					e.X, e.Y = nx, ny
					break
				}
			}
		}
	}

	e.RecordSegment()
}

// updateBoss pursues the player directly. Any tick where the direct
// path is obstructed counts toward the demolition timer; after a full
// second blocked on the same spire the boss destroys it.
func (es *EnemySystem) updateBoss(w *engine.World, e *components.Enemy) {
	px, py := w.Player.Center()
	cx, cy := e.Center()
	dx, dy := vmath.Normalize2D(px-cx, py-cy)
	moveX := dx * e.Speed
	moveY := dy * e.Speed

	if moveX != 0 || moveY != 0 {
		e.FacingRight = moveX >= 0
	}

	// The spire in the direct path, before any slide is attempted
	blocking := w.Terrain.BlockingIndex(vmath.NewRect(e.X+moveX, e.Y+moveY, e.Width, e.Height))

	var res physics.MoveResult
	e.X, e.Y, res = physics.ResolveMove(w.Terrain, e.X, e.Y, e.Width, e.Height, moveX, moveY, true)

	if !res.Blocked() {
		e.BlockTicks = 0
		return
	}

	e.BlockTicks++
	if e.BlockTicks >= constants.BossBlockDestroyTicks && blocking >= 0 {
		if sx, sy, ok := w.Terrain.Destroy(blocking); ok {
			spawnSpireDebris(w, sx, sy)
			w.PushEvent(events.EventObstructionDestroyed, &events.ObstructionPayload{X: sx, Y: sy})
		}
		e.BlockTicks = 0
	}
}

// spawnSpireDebris scatters rock shards when a spire is demolished
func spawnSpireDebris(w *engine.World, sx, sy float64) {
	cx := sx + constants.SpireCollisionWidth/2
	cy := sy + constants.SpireCollisionHeight/4

	colors := []uint8{components.ColorBrown, components.ColorGray, components.ColorDarkGreen, components.ColorOrange}
	for i := 0; i < 15; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		speed := 2.0 + w.Rng.Float64()*3.0
		w.Particles = append(w.Particles, &components.Particle{
			X: cx, Y: cy,
			DX:          math.Cos(angle) * speed,
			DY:          math.Sin(angle)*speed - 2,
			Lifetime:    25 + w.Rng.Intn(26),
			MaxLifetime: 50,
			Size:        3 + w.Rng.Intn(5),
			Color:       colors[w.Rng.Intn(len(colors))],
		})
	}
}
