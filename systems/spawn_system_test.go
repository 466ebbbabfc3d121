package systems

import (
	"testing"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/terrain"
)

func TestEnemySpawnInterval(t *testing.T) {
	w := newTestWorld(10)
	ss := NewSpawnSystem()

	w.Tick = constants.EnemySpawnIntervalTicks - 1
	ss.Update(w)
	if len(w.Enemies) != 0 {
		t.Fatal("Spawned before the interval elapsed")
	}

	w.Tick = constants.EnemySpawnIntervalTicks
	ss.Update(w)
	if len(w.Enemies) != 1 {
		t.Fatalf("Expected one spawn at the interval, got %d", len(w.Enemies))
	}
	if w.LastEnemySpawnTick != w.Tick {
		t.Error("Spawn tick not recorded")
	}
}

func TestEnemySpawnIntervalFloor(t *testing.T) {
	w := newTestWorld(11)
	ss := NewSpawnSystem()
	w.Wave = 10

	w.Tick = constants.EnemySpawnIntervalFloor - 1
	ss.Update(w)
	if len(w.Enemies) != 0 {
		t.Fatal("Interval must not shrink below the floor")
	}

	w.Tick = constants.EnemySpawnIntervalFloor
	ss.Update(w)
	if len(w.Enemies) != 1 {
		t.Fatal("Expected a spawn at the floored interval")
	}
}

func TestEnemySpawnCap(t *testing.T) {
	w := newTestWorld(12)
	ss := NewSpawnSystem()

	for i := int64(0); i < constants.MaxEnemies; i++ {
		w.Enemies = append(w.Enemies, components.NewEnemy(100, 100, components.EnemyWanderer, 1))
	}
	w.Tick = constants.EnemySpawnIntervalTicks
	ss.Update(w)
	if int64(len(w.Enemies)) != constants.MaxEnemies {
		t.Error("Spawned past the population cap")
	}

	// The cap grows with the wave
	w.Wave = 2
	w.Tick += constants.EnemySpawnIntervalTicks
	ss.Update(w)
	if int64(len(w.Enemies)) != constants.MaxEnemies+1 {
		t.Error("Raised cap should admit another spawn")
	}
}

func TestSpawnPlacesEnemiesOnIsland(t *testing.T) {
	w := newTestWorld(13)
	ss := NewSpawnSystem()

	for i := 0; i < 20; i++ {
		w.Enemies = w.Enemies[:0]
		w.Tick += constants.EnemySpawnIntervalTicks
		w.LastEnemySpawnTick = 0
		ss.Update(w)
		w.LastEnemySpawnTick = 0
		if len(w.Enemies) != 1 {
			t.Fatal("Expected a spawn each pass")
		}
		e := w.Enemies[0]
		if e.X < constants.IslandLeft || e.X > constants.IslandRight ||
			e.Y < constants.IslandTop || e.Y > constants.IslandBottom {
			t.Fatalf("Enemy spawned off the island at (%.0f, %.0f)", e.X, e.Y)
		}
	}
}

func TestFoodSpawnNearSpire(t *testing.T) {
	w := newTestWorld(14)
	ss := NewSpawnSystem()
	w.Terrain.Spires = []terrain.Spire{{X: 400, Y: 300}}

	w.Tick = constants.FoodSpawnIntervalTicks
	ss.Update(w)

	food := 0
	for _, it := range w.Items {
		if it.Kind.IsFood() {
			food++
			if it.X < 400-30 || it.X > 400+30 || it.Y < 300-30 || it.Y > 300+30 {
				t.Errorf("Food placed too far from the spire at (%.0f, %.0f)", it.X, it.Y)
			}
		}
	}
	if food != 1 {
		t.Fatalf("Expected one food drop, got %d", food)
	}
}

func TestFoodCap(t *testing.T) {
	w := newTestWorld(15)
	ss := NewSpawnSystem()

	for i := 0; i < constants.MaxFood; i++ {
		w.Items = append(w.Items, components.NewItem(200, 200, components.ItemHealMinor))
	}
	// Weapons on the ground do not count against the food cap
	w.Items = append(w.Items, components.NewItem(300, 300, components.ItemSword))

	w.Tick = constants.FoodSpawnIntervalTicks
	ss.Update(w)

	food := 0
	for _, it := range w.Items {
		if it.Kind.IsFood() {
			food++
		}
	}
	if food != constants.MaxFood {
		t.Errorf("Food cap exceeded: %d", food)
	}
}
