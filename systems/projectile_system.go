package systems

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
)

// ProjectileSystem advances arrows and resolves their hits. An arrow
// damages the first live enemy it overlaps and is spent either way.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (ps *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

func (ps *ProjectileSystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	for _, a := range w.Arrows {
		a.Advance()
		if !a.Active {
			continue
		}

		rect := a.Rect()
		for _, e := range w.Enemies {
			if e.Dead || !rect.Overlaps(e.Rect()) {
				continue
			}
			if e.TakeDamage(constants.ArrowDamage) {
				ApplyKill(w, e, SourceProjectile)
			}
			a.Active = false
			break
		}
	}

	// Compact spent arrows in place
	live := w.Arrows[:0]
	for _, a := range w.Arrows {
		if a.Active {
			live = append(live, a)
		}
	}
	w.Arrows = live
}
