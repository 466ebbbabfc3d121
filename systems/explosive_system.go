package systems

import (
	"math"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// ExplosiveSystem advances bombs in flight and resolves detonations.
// Blast damage applies to every live enemy whose center lies within the
// Euclidean blast radius; the bomb is removed the same tick it explodes.
type ExplosiveSystem struct{}

func NewExplosiveSystem() *ExplosiveSystem {
	return &ExplosiveSystem{}
}

func (es *ExplosiveSystem) Priority() int {
	return constants.PriorityExplosive
}

func (es *ExplosiveSystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	live := w.Bombs[:0]
	for _, b := range w.Bombs {
		if !b.Advance() {
			live = append(live, b)
			continue
		}

		spawnExplosionBurst(w, b.X, b.Y, b.Radius)
		w.PushEvent(events.EventExplosion, &events.ExplosionPayload{X: b.X, Y: b.Y, Radius: b.Radius})

		for _, e := range w.Enemies {
			if e.Dead {
				continue
			}
			ex, ey := e.Center()
			if vmath.Distance(b.X, b.Y, ex, ey) <= b.Radius {
				if e.TakeDamage(b.Damage) {
					ApplyKill(w, e, SourceExplosive)
				}
			}
		}
	}
	w.Bombs = live
}

// spawnExplosionBurst scatters blast particles, a wide ring plus a hot
// inner flash
func spawnExplosionBurst(w *engine.World, x, y, radius float64) {
	ringColors := []uint8{components.ColorRed, components.ColorOrange, components.ColorYellow, components.ColorWhite}

	count := int(radius/2) + 10
	for i := 0; i < count; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		speed := 2.0 + w.Rng.Float64()*3.0
		w.Particles = append(w.Particles, &components.Particle{
			X: x, Y: y,
			DX:          math.Cos(angle) * speed,
			DY:          math.Sin(angle) * speed,
			Lifetime:    15 + w.Rng.Intn(21),
			MaxLifetime: 35,
			Size:        4 + w.Rng.Intn(5),
			Color:       ringColors[w.Rng.Intn(len(ringColors))],
		})
	}

	for i := 0; i < 8; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		speed := 0.5 + w.Rng.Float64()*1.5
		color := components.ColorWhite
		if i%2 == 0 {
			color = components.ColorYellow
		}
		w.Particles = append(w.Particles, &components.Particle{
			X: x, Y: y,
			DX:          math.Cos(angle) * speed,
			DY:          math.Sin(angle)*speed - 1,
			Lifetime:    10 + w.Rng.Intn(11),
			MaxLifetime: 20,
			Size:        2 + w.Rng.Intn(3),
			Color:       color,
		})
	}
}
