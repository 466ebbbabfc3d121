package events

import (
	"github.com/haoranliu666/Hell-Survivor/components"
)

// ShotPayload carries the origin of a fired projectile or thrown bomb
type ShotPayload struct {
	X, Y  float64
	Count int // Arrows per shot; 1 for bombs
}

// EnemyKilledPayload identifies the enemy that died and where
type EnemyKilledPayload struct {
	Kind  components.EnemyKind
	X, Y  float64
	Score int
	Exp   int
}

// ExplosionPayload carries the detonation center and blast radius
type ExplosionPayload struct {
	X, Y   float64
	Radius float64
}

// ObstructionPayload carries the center of a destroyed spire
type ObstructionPayload struct {
	X, Y float64
}

// PickupPayload describes a collected item and any weapon it displaced
type PickupPayload struct {
	Kind      components.ItemKind
	X, Y      float64
	Discarded components.Weapon
}

// HurtPayload carries the damage dealt to the player
type HurtPayload struct {
	Amount    int
	Remaining int
}

// LevelUpPayload carries the new level after experience payout
type LevelUpPayload struct {
	Level  int
	Gained int
}

// WavePayload identifies the wave and its boss count
type WavePayload struct {
	Wave   int
	Bosses int
}

// GameOverPayload carries the final run statistics
type GameOverPayload struct {
	Score int
	Wave  int
	Kills int
}
