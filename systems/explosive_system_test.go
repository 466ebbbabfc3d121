package systems

import (
	"testing"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
)

func TestBombDamagesEnemiesInRadius(t *testing.T) {
	w := newTestWorld(1)
	es := NewExplosiveSystem()

	b := components.NewBomb(300, 300, 0, 0, 3, 40)
	b.Flight = 1
	w.Bombs = append(w.Bombs, b)

	near := components.NewEnemy(320, 293, components.EnemyWanderer, 1) // center (327, 300), dist 27
	near.Health = 10
	far := components.NewEnemy(400, 293, components.EnemyWanderer, 1) // center (407, 300), dist 107
	far.Health = 10
	w.Enemies = append(w.Enemies, near, far)

	es.Update(w)

	if near.Health != 7 {
		t.Errorf("Enemy in radius: health = %d, want 7", near.Health)
	}
	if far.Health != 10 {
		t.Errorf("Enemy outside radius should be untouched, health = %d", far.Health)
	}
	if len(w.Bombs) != 0 {
		t.Error("Bomb should be removed on detonation")
	}
	if len(w.Particles) == 0 {
		t.Error("Detonation should scatter particles")
	}
}

func TestBombKillUsesExplosiveDropChance(t *testing.T) {
	w := newTestWorld(2)
	es := NewExplosiveSystem()

	b := components.NewBomb(300, 300, 0, 0, 10, 60)
	b.Flight = 1
	w.Bombs = append(w.Bombs, b)

	boss := components.NewEnemy(290, 290, components.EnemyBoss, 1)
	boss.Health = 1
	w.Enemies = append(w.Enemies, boss)
	w.WaveActive = true

	es.Update(w)

	if !boss.Dead {
		t.Fatal("Boss inside the blast should die")
	}
	if w.Player.Exp != constants.ExpBossRanged {
		t.Errorf("Explosive boss kill should grant %d exp, got %d", constants.ExpBossRanged, w.Player.Exp)
	}
	if w.Score != constants.ScoreBoss {
		t.Errorf("Score = %d, want %d", w.Score, constants.ScoreBoss)
	}
}

func TestBombInFlightDamagesNothing(t *testing.T) {
	w := newTestWorld(3)
	es := NewExplosiveSystem()

	b := components.NewBomb(300, 300, 0, 0, 3, 40)
	w.Bombs = append(w.Bombs, b)

	e := components.NewEnemy(300, 300, components.EnemyWanderer, 1)
	e.Health = 10
	w.Enemies = append(w.Enemies, e)

	es.Update(w)

	if e.Health != 10 {
		t.Error("A bomb in flight must not damage enemies")
	}
	if len(w.Bombs) != 1 {
		t.Error("Bomb should still be in flight")
	}
}
