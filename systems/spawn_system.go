package systems

import (
	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// SpawnSystem feeds the run with ambient enemies and food on fixed
// intervals. The enemy interval tightens each wave; both populations
// are capped.
type SpawnSystem struct{}

func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (ss *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

func (ss *SpawnSystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	interval := int64(constants.EnemySpawnIntervalTicks - (w.Wave-1)*constants.EnemySpawnIntervalStep)
	if interval < constants.EnemySpawnIntervalFloor {
		interval = constants.EnemySpawnIntervalFloor
	}
	if w.Tick-w.LastEnemySpawnTick >= interval {
		ss.spawnEnemy(w)
		w.LastEnemySpawnTick = w.Tick
	}

	if w.Tick-w.LastFoodSpawnTick >= constants.FoodSpawnIntervalTicks {
		ss.spawnFood(w)
		w.LastFoodSpawnTick = w.Tick
	}
}

// spawnEnemy places a wanderer or pursuer at a random island edge,
// respecting the per-wave population cap
func (ss *SpawnSystem) spawnEnemy(w *engine.World) {
	maxEnemies := constants.MaxEnemies + (w.Wave-1)*constants.MaxEnemiesPerWave
	if w.AliveEnemies() >= maxEnemies {
		return
	}

	var x, y float64
	switch w.Rng.Intn(4) {
	case 0: // Top edge
		x = float64(constants.IslandLeft + w.Rng.Intn(constants.IslandRight-constants.IslandLeft))
		y = constants.IslandTop
	case 1: // Bottom edge
		x = float64(constants.IslandLeft + w.Rng.Intn(constants.IslandRight-constants.IslandLeft))
		y = constants.IslandBottom - 20
	case 2: // Left edge
		x = constants.IslandLeft
		y = float64(constants.IslandTop + w.Rng.Intn(constants.IslandBottom-constants.IslandTop))
	default: // Right edge
		x = constants.IslandRight - 20
		y = float64(constants.IslandTop + w.Rng.Intn(constants.IslandBottom-constants.IslandTop))
	}

	kind := components.EnemyPursuer
	if w.Rng.Float64() < constants.WandererSpawnChance {
		kind = components.EnemyWanderer
	}
	w.Enemies = append(w.Enemies, components.NewEnemy(x, y, kind, w.Wave))
}

// spawnFood drops a minor heal near a random spire, or anywhere on the
// island once all spires are gone
func (ss *SpawnSystem) spawnFood(w *engine.World) {
	food := 0
	for _, it := range w.Items {
		if it.Kind.IsFood() {
			food++
		}
	}
	if food >= constants.MaxFood {
		return
	}

	var x, y float64
	if len(w.Terrain.Spires) > 0 {
		s := w.Terrain.Spires[w.Rng.Intn(len(w.Terrain.Spires))]
		x = s.X + float64(w.Rng.Intn(61)-30)
		y = s.Y + float64(w.Rng.Intn(61)-30)
	} else {
		x = float64(constants.IslandLeft + 20 + w.Rng.Intn(constants.IslandRight-constants.IslandLeft-40))
		y = float64(constants.IslandTop + 20 + w.Rng.Intn(constants.IslandBottom-constants.IslandTop-40))
	}
	x = vmath.Clamp(x, constants.IslandLeft+10, constants.IslandRight-10)
	y = vmath.Clamp(y, constants.IslandTop+10, constants.IslandBottom-10)

	w.Items = append(w.Items, components.NewItem(x, y, components.ItemHealMinor))
}
