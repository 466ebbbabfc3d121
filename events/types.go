package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventSwordSwing signals the start of a melee swing
	// Trigger: PlayerSystem on attack intent
	// Consumer: SoundManager | Payload: nil
	EventSwordSwing EventType = iota

	// EventArrowFired signals one bow shot (possibly several arrows)
	// Trigger: PlayerSystem on shoot intent
	// Consumer: SoundManager | Payload: *ShotPayload
	EventArrowFired

	// EventBombThrown signals a bomb leaving the player's hand
	// Trigger: PlayerSystem on throw intent
	// Consumer: SoundManager | Payload: *ShotPayload
	EventBombThrown

	// EventDodge signals the start of a dodge roll
	// Trigger: PlayerSystem on dodge intent
	// Consumer: SoundManager | Payload: nil
	EventDodge

	// EventEnemyKilled signals a non-boss enemy death after its payout
	// Trigger: CombatSystem, ProjectileSystem, ExplosiveSystem
	// Consumer: SoundManager, renderer flash | Payload: *EnemyKilledPayload
	EventEnemyKilled

	// EventBossKilled signals a boss death
	// Trigger: Any hit source killing a boss
	// Consumer: SoundManager | Payload: *EnemyKilledPayload
	EventBossKilled

	// EventExplosion signals a bomb detonation
	// Trigger: ExplosiveSystem on the detonation edge
	// Consumer: SoundManager, renderer shockwave | Payload: *ExplosionPayload
	EventExplosion

	// EventObstructionDestroyed signals a boss smashing a spire
	// Trigger: EnemySystem after the blocked countdown lapses
	// Consumer: SoundManager, renderer debris | Payload: *ObstructionPayload
	EventObstructionDestroyed

	// EventItemPickup signals a weapon, food or crate collection
	// Trigger: CombatSystem on player/item overlap
	// Consumer: SoundManager | Payload: *PickupPayload
	EventItemPickup

	// EventPlayerHurt signals damage actually landing on the player
	// Trigger: CombatSystem contact resolution
	// Consumer: SoundManager, renderer hurt flash | Payload: *HurtPayload
	EventPlayerHurt

	// EventLevelUp signals one or more level gains
	// Trigger: Death payout granting experience past the threshold
	// Consumer: SoundManager | Payload: *LevelUpPayload
	EventLevelUp

	// EventWaveStarted signals boss spawn at the wave trigger
	// Trigger: WaveSystem when the time or kill trigger fires
	// Consumer: SoundManager, status banner | Payload: *WavePayload
	EventWaveStarted

	// EventWaveComplete signals all bosses of a wave defeated
	// Trigger: CombatSystem when the last boss payout runs
	// Consumer: SoundManager, status banner | Payload: *WavePayload
	EventWaveComplete

	// EventGameOver signals the player's death, once per run
	// Trigger: MetaSystem game-over latch
	// Consumer: SoundManager, mode switch | Payload: *GameOverPayload
	EventGameOver
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      int64
	Timestamp time.Time
}
