package systems

import (
	"testing"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
)

func TestMetaCompactsDeadEnemies(t *testing.T) {
	w := newTestWorld(1)
	ms := NewMetaSystem()

	alive := components.NewEnemy(100, 100, components.EnemyWanderer, 1)
	dead := components.NewEnemy(200, 200, components.EnemyPursuer, 1)
	dead.Dead = true
	w.Enemies = append(w.Enemies, alive, dead)

	ms.Update(w)

	if len(w.Enemies) != 1 || w.Enemies[0] != alive {
		t.Errorf("Expected only the live enemy to remain, got %d", len(w.Enemies))
	}
}

func TestMetaMessageCountdown(t *testing.T) {
	w := newTestWorld(2)
	ms := NewMetaSystem()

	w.SetMessage("TEST", 2)
	ms.Update(w)
	if w.Message != "TEST" {
		t.Fatal("Message should persist while the timer runs")
	}
	ms.Update(w)
	if w.Message != "" {
		t.Error("Message should clear when the timer expires")
	}
}

func TestGameOverLatchesOnce(t *testing.T) {
	w := newTestWorld(3)
	ms := NewMetaSystem()

	w.Score = 250
	w.Player.Health = 0
	ms.Update(w)

	if !w.GameOver {
		t.Fatal("Game over should latch at zero health")
	}
	if len(w.HighScores) != 1 {
		t.Fatalf("Expected one high score entry, got %d", len(w.HighScores))
	}

	gameOvers := 0
	for _, ev := range w.ConsumeEvents() {
		if ev.Type == events.EventGameOver {
			gameOvers++
		}
	}
	if gameOvers != 1 {
		t.Errorf("Expected one game-over event, got %d", gameOvers)
	}

	// Further ticks are inert
	ms.Update(w)
	if len(w.HighScores) != 1 {
		t.Error("High score recorded twice")
	}
	for _, ev := range w.ConsumeEvents() {
		if ev.Type == events.EventGameOver {
			t.Error("Game-over event emitted twice")
		}
	}
}

func TestZeroScoreRunNotRecorded(t *testing.T) {
	w := newTestWorld(4)
	ms := NewMetaSystem()

	w.Player.Health = 0
	ms.Update(w)

	if !w.GameOver {
		t.Fatal("Game over should latch")
	}
	if len(w.HighScores) != 0 {
		t.Error("A zero-score run must not enter the table")
	}
}

func TestRestartIntentResetsAfterGameOver(t *testing.T) {
	w := newTestWorld(5)
	systems := []engine.System{NewPlayerSystem(), NewMetaSystem()}

	w.Player.Health = 0
	w.Score = 50
	for _, s := range systems {
		s.Update(w)
	}
	if !w.GameOver {
		t.Fatal("Game over should latch")
	}

	w.SetIntent(engine.Intent{Restart: true})
	for _, s := range systems {
		s.Update(w)
	}

	if w.GameOver {
		t.Error("Restart should begin a fresh run")
	}
	if w.Player.Health != constants.PlayerMaxHealth {
		t.Error("Fresh run should have a fresh player")
	}
	if len(w.HighScores) != 1 {
		t.Error("High score table should survive the restart")
	}
}
