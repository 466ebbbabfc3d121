package systems

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
)

// MetaSystem closes each tick: message countdown, compaction of dead
// enemies, and the game-over latch with its single high-score record.
// Runs last so every other system saw a consistent collection.
type MetaSystem struct{}

func NewMetaSystem() *MetaSystem {
	return &MetaSystem{}
}

func (ms *MetaSystem) Priority() int {
	return constants.PriorityMeta
}

func (ms *MetaSystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	if w.MessageTimer > 0 {
		w.MessageTimer--
		if w.MessageTimer == 0 {
			w.Message = ""
		}
	}

	// Compact enemies whose death payout ran this tick
	live := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Dead {
			live = append(live, e)
		}
	}
	w.Enemies = live

	if w.Player.Health <= 0 {
		w.GameOver = true
		w.RecordHighScore()
		w.PushEvent(events.EventGameOver, &events.GameOverPayload{
			Score: w.Score,
			Wave:  w.Wave,
			Kills: w.Kills,
		})
	}
}
