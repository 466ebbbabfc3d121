package systems

import (
	"github.com/haoranliu666/Hell-Survivor/engine"
)

// Register wires the full simulation pipeline into the world
func Register(w *engine.World) {
	w.AddSystem(NewPlayerSystem())
	w.AddSystem(NewEnemySystem())
	w.AddSystem(NewProjectileSystem())
	w.AddSystem(NewExplosiveSystem())
	w.AddSystem(NewSpawnSystem())
	w.AddSystem(NewParticleSystem())
	w.AddSystem(NewCombatSystem())
	w.AddSystem(NewWaveSystem())
	w.AddSystem(NewMetaSystem())
}
