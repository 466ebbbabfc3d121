package systems

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
)

// ParticleSystem advances decorative particles and floating texts,
// dropping expired ones. Purely cosmetic; no game state reads back from
// these collections.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (ps *ParticleSystem) Priority() int {
	return constants.PriorityParticle
}

func (ps *ParticleSystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		if p.Advance() {
			particles = append(particles, p)
		}
	}
	w.Particles = particles

	texts := w.FloatingTexts[:0]
	for _, t := range w.FloatingTexts {
		if t.Advance() {
			texts = append(texts, t)
		}
	}
	w.FloatingTexts = texts
}
