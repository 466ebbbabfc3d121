package systems

import (
	"fmt"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// WaveSystem drives the wave progression state machine. With no wave
// active, a timeout or a kill quota triggers the next one: wave N drops
// N bosses at fixed positions around the island edge with jitter.
type WaveSystem struct{}

func NewWaveSystem() *WaveSystem {
	return &WaveSystem{}
}

func (ws *WaveSystem) Priority() int {
	return constants.PriorityWave
}

func (ws *WaveSystem) Update(w *engine.World) {
	if w.GameOver || w.WaveActive {
		return
	}

	waited := w.Tick - w.WaveStartTick
	if waited >= constants.WaveTimeTriggerTicks || w.WaveKills >= constants.WaveKillTrigger {
		ws.spawnWaveBosses(w)
	}
}

// spawnWaveBosses places this wave's bosses on the edge rotation
func (ws *WaveSystem) spawnWaveBosses(w *engine.World) {
	count := w.Wave
	w.LootDropped = false

	bossSize := float64(constants.BossSize)
	positions := [8][2]float64{
		{constants.IslandRight - bossSize - 10, constants.IslandBottom - bossSize - 10},
		{constants.IslandLeft + 10, constants.IslandTop + 10},
		{constants.IslandRight - bossSize - 10, constants.IslandTop + 10},
		{constants.IslandLeft + 10, constants.IslandBottom - bossSize - 10},
		{constants.MapWidth / 2, constants.IslandTop + 10},
		{constants.MapWidth / 2, constants.IslandBottom - bossSize - 10},
		{constants.IslandLeft + 10, constants.MapHeight / 2},
		{constants.IslandRight - bossSize - 10, constants.MapHeight / 2},
	}

	for i := 0; i < count; i++ {
		pos := positions[i%len(positions)]
		x := pos[0] + float64(w.Rng.Intn(2*constants.BossSpawnJitter+1)-constants.BossSpawnJitter)
		y := pos[1] + float64(w.Rng.Intn(2*constants.BossSpawnJitter+1)-constants.BossSpawnJitter)
		x = vmath.Clamp(x, constants.IslandLeft, constants.IslandRight-bossSize)
		y = vmath.Clamp(y, constants.IslandTop, constants.IslandBottom-bossSize)
		w.Enemies = append(w.Enemies, components.NewEnemy(x, y, components.EnemyBoss, w.Wave))
	}

	w.WaveActive = true
	if count == 1 {
		w.SetMessage(fmt.Sprintf("WAVE %d: BOSS SPAWNED!", w.Wave), constants.MessageLong)
	} else {
		w.SetMessage(fmt.Sprintf("WAVE %d: %d BOSSES!", w.Wave, count), constants.MessageLong)
	}
	w.PushEvent(events.EventWaveStarted, &events.WavePayload{Wave: w.Wave, Bosses: count})
}
