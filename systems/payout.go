package systems

import (
	"fmt"
	"math"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
)

// KillSource identifies which weapon path killed an enemy. It selects
// the drop chance and the boss experience rule.
type KillSource int

const (
	SourceMelee KillSource = iota
	SourceProjectile
	SourceExplosive
)

func (s KillSource) dropChance() float64 {
	if s == SourceExplosive {
		return constants.DropChanceExplosive
	}
	return constants.DropChanceDirect
}

// ApplyKill runs the full death payout for an enemy whose health reached
// zero: score, experience, drops, loot gating, effects and events. The
// Dead flag makes the payout idempotent; a second hit source in the same
// tick sees the flag and does nothing. The enemy itself is compacted at
// the meta phase.
func ApplyKill(w *engine.World, e *components.Enemy, source KillSource) {
	if e.Dead {
		return
	}
	e.Dead = true

	cx, cy := e.Center()

	if e.Kind == components.EnemyBoss {
		w.Score += constants.ScoreBoss

		// Melee boss kills grant no experience
		if source != SourceMelee {
			grantExp(w, constants.ExpBossRanged)
		}

		if w.Rng.Float64() < source.dropChance() {
			w.Items = append(w.Items, components.NewItem(
				cx-constants.FoodSize/2, cy-constants.FoodSize/2,
				components.ItemHealTertiary,
			))
		}

		spawnDeathBurst(w, e)
		w.FloatingTexts = append(w.FloatingTexts,
			components.NewFloatingText(cx, cy-10, fmt.Sprintf("+%d", constants.ScoreBoss)))
		w.PushEvent(events.EventBossKilled, &events.EnemyKilledPayload{
			Kind: e.Kind, X: cx, Y: cy, Score: constants.ScoreBoss,
		})

		if w.AliveBosses() == 0 && !w.LootDropped {
			w.Items = append(w.Items, components.NewItem(
				cx-constants.LootCrateSize/2, cy-constants.LootCrateSize/2,
				components.ItemLootCrate,
			))
			w.LootDropped = true
			w.SetMessage(fmt.Sprintf("WAVE %d COMPLETE!", w.Wave), constants.MessageLong)
			w.PushEvent(events.EventWaveComplete, &events.WavePayload{Wave: w.Wave})

			w.WaveActive = false
			w.WaveKills = 0
			w.WaveStartTick = w.Tick
			w.Wave++
		} else {
			w.SetMessage(fmt.Sprintf("BOSS DOWN! %d LEFT!", w.AliveBosses()), constants.MessageShort)
		}
		return
	}

	var score, exp int
	switch e.Kind {
	case components.EnemyWanderer:
		score, exp = constants.ScoreWanderer, constants.ExpWanderer
		if w.Rng.Float64() < source.dropChance() {
			w.Items = append(w.Items, components.NewItem(
				cx-constants.FoodSize/2, cy-constants.FoodSize/2,
				components.ItemHealSecondary,
			))
		}
	case components.EnemyPursuer:
		score, exp = constants.ScorePursuer, constants.ExpPursuer
	}

	w.Score += score
	grantExp(w, exp)

	w.Kills++
	w.WaveKills++

	spawnDeathBurst(w, e)
	w.FloatingTexts = append(w.FloatingTexts,
		components.NewFloatingText(cx, cy-10, fmt.Sprintf("+%d", score)))
	w.PushEvent(events.EventEnemyKilled, &events.EnemyKilledPayload{
		Kind: e.Kind, X: cx, Y: cy, Score: score, Exp: exp,
	})
}

// grantExp awards experience and surfaces level ups
func grantExp(w *engine.World, amount int) {
	if amount <= 0 {
		return
	}
	if levels := w.Player.GainExp(amount); levels > 0 {
		w.SetMessage(fmt.Sprintf("LEVEL UP! LV %d", w.Player.Level), constants.MessageShort)
		w.PushEvent(events.EventLevelUp, &events.LevelUpPayload{
			Level: w.Player.Level, Gained: levels,
		})
	}
}

// spawnDeathBurst scatters death particles from the enemy's center
func spawnDeathBurst(w *engine.World, e *components.Enemy) {
	var colors []uint8
	var count int
	switch e.Kind {
	case components.EnemyWanderer:
		colors = []uint8{components.ColorBrown, components.ColorOrange, components.ColorYellow}
		count = 8
	case components.EnemyPursuer:
		colors = []uint8{components.ColorGreen, components.ColorDarkGreen, components.ColorWhite}
		count = 10
	default:
		colors = []uint8{components.ColorBrown, components.ColorOrange, components.ColorRed, components.ColorYellow}
		count = 20
	}

	cx, cy := e.Center()
	for i := 0; i < count; i++ {
		angle := w.Rng.Float64() * 2 * math.Pi
		speed := 1.5 + w.Rng.Float64()*2.5
		w.Particles = append(w.Particles, &components.Particle{
			X: cx, Y: cy,
			DX:          math.Cos(angle) * speed,
			DY:          math.Sin(angle)*speed - 1,
			Lifetime:    20 + w.Rng.Intn(21),
			MaxLifetime: 40,
			Size:        3 + w.Rng.Intn(4),
			Color:       colors[w.Rng.Intn(len(colors))],
		})
	}
}
