package systems

import (
	"testing"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/terrain"
)

func TestPursuerClosesOnPlayer(t *testing.T) {
	w := newTestWorld(1)
	es := NewEnemySystem()

	px, py := w.Player.Center()
	e := components.NewEnemy(px-200, py, components.EnemyPursuer, 1)
	w.Enemies = append(w.Enemies, e)

	start := px - e.X
	for i := 0; i < 60; i++ {
		es.Update(w)
	}
	if px-e.X >= start {
		t.Error("Pursuer should close distance to the player")
	}
	if e.Segments[0] != [2]float64{e.X, e.Y} {
		t.Error("Newest segment should track the head")
	}
}

func TestWandererStaysOnIsland(t *testing.T) {
	w := newTestWorld(2)
	es := NewEnemySystem()

	e := components.NewEnemy(constants.IslandLeft, constants.IslandTop, components.EnemyWanderer, 1)
	w.Enemies = append(w.Enemies, e)

	for i := 0; i < 300; i++ {
		es.Update(w)
		if e.X < constants.IslandLeft || e.X > constants.IslandRight-e.Width ||
			e.Y < constants.IslandTop || e.Y > constants.IslandBottom-e.Height {
			t.Fatalf("Wanderer left the island at tick %d: (%f, %f)", i, e.X, e.Y)
		}
	}
}

func TestBossDestroysBlockingSpire(t *testing.T) {
	w := newTestWorld(3)
	es := NewEnemySystem()

	// Boss penned in an alcove: a wall in the direct path to the player
	// plus a ceiling and floor so neither slides nor deflections work.
	// The wall spire is the one in the path, so it gets demolished.
	w.Terrain.Spires = []terrain.Spire{
		{X: 400, Y: 270}, // wall, box x 400..424 y 264..292
		{X: 370, Y: 240}, // ceiling, box y 234..262
		{X: 370, Y: 300}, // floor, box y 294..322
	}

	boss := components.NewEnemy(400-constants.BossSize, 262, components.EnemyBoss, 1)
	w.Enemies = append(w.Enemies, boss)

	// Player straight to the right, vertically centered on the boss
	w.Player.X = 500
	w.Player.Y = 278 - w.Player.Height/2

	destroyed := false
	for i := 0; i < constants.BossBlockDestroyTicks+5 && !destroyed; i++ {
		es.Update(w)
		destroyed = len(w.Terrain.Spires) == 2
	}
	if !destroyed {
		t.Fatal("Boss never destroyed the obstructing spire")
	}
	for _, s := range w.Terrain.Spires {
		if s.X == 400 {
			t.Error("The wrong spire was destroyed")
		}
	}
	if len(w.Particles) == 0 {
		t.Error("Spire destruction should scatter debris")
	}
}

func TestBossBlockCounterResetsWhenClear(t *testing.T) {
	w := newTestWorld(4)
	es := NewEnemySystem()

	boss := components.NewEnemy(100, 100, components.EnemyBoss, 1)
	boss.BlockTicks = constants.BossBlockDestroyTicks - 1
	w.Enemies = append(w.Enemies, boss)

	// Open ground: the direct path is clear, so the counter resets
	es.Update(w)
	if boss.BlockTicks != 0 {
		t.Errorf("BlockTicks = %d after a clear move, want 0", boss.BlockTicks)
	}
}

func TestDeadEnemiesAreSkipped(t *testing.T) {
	w := newTestWorld(5)
	es := NewEnemySystem()

	e := components.NewEnemy(100, 100, components.EnemyWanderer, 1)
	e.Dead = true
	w.Enemies = append(w.Enemies, e)

	x, y := e.X, e.Y
	es.Update(w)
	if e.X != x || e.Y != y {
		t.Error("Dead enemies must not move")
	}
}
