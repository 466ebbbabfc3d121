package components

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// EnemyKind is the enemy variant tag
type EnemyKind int

const (
	EnemyWanderer EnemyKind = iota
	EnemyPursuer
	EnemyBoss
)

// Enemy is a single hostile actor. Variant-specific movement state is
// kept inline; only the fields for the enemy's own kind are meaningful.
type Enemy struct {
	Kind EnemyKind

	X, Y          float64
	Width, Height float64
	Speed         float64
	Damage        int
	Health        int
	Wave          int

	// Dead marks an enemy whose death payout has been made. Dead enemies
	// are skipped by every hit source and compacted at end of tick.
	Dead bool

	// DamageCooldown gates repeated contact damage to the player
	DamageCooldown int

	// Wanderer: current drift direction and ticks until re-roll
	MoveTimer int
	MoveDX    float64
	MoveDY    float64

	// Pursuer: trailing head positions for the segment chain, newest
	// first, and the slither phase
	Segments      [][2]float64
	SlitherOffset float64

	// Boss: consecutive ticks spent blocked by a spire
	BlockTicks int

	FacingRight bool
}

// NewEnemy creates an enemy of the given kind. Boss stats scale with the
// wave number: +15% size, +20% speed and +1 health per wave above 1.
func NewEnemy(x, y float64, kind EnemyKind, wave int) *Enemy {
	e := &Enemy{Kind: kind, X: x, Y: y, Wave: wave, FacingRight: true}

	switch kind {
	case EnemyWanderer:
		e.Width = constants.WandererSize
		e.Height = constants.WandererSize
		e.Speed = constants.WandererSpeed
		e.Damage = constants.WandererDamage
		e.Health = constants.WandererHealth

	case EnemyPursuer:
		e.Width = constants.PursuerSegmentSize
		e.Height = constants.PursuerSegmentSize
		e.Speed = constants.PursuerSpeed
		e.Damage = constants.PursuerDamage
		e.Health = constants.PursuerHealth
		e.Segments = make([][2]float64, constants.PursuerNumSegments)
		for i := range e.Segments {
			e.Segments[i] = [2]float64{x, y}
		}

	case EnemyBoss:
		sizeScale := 1.0 + float64(wave-1)*constants.BossSizeScalePerWave
		speedScale := 1.0 + float64(wave-1)*constants.BossSpeedScalePerWave
		e.Width = float64(int(constants.BossSize * sizeScale))
		e.Height = e.Width
		e.Speed = constants.BossSpeed * speedScale
		e.Damage = constants.BossDamage
		e.Health = constants.BossHealth + (wave - 1)
	}

	return e
}

// Rect returns the enemy's collision rectangle. The pursuer's anchor is
// its head center, so its rect is centered and slightly padded.
func (e *Enemy) Rect() vmath.Rect {
	if e.Kind == EnemyPursuer {
		return vmath.NewRect(e.X-e.Width/2, e.Y-e.Height/2, e.Width+2, e.Height+2)
	}
	return vmath.NewRect(e.X, e.Y, e.Width, e.Height)
}

// Center returns the enemy's center point
func (e *Enemy) Center() (cx, cy float64) {
	if e.Kind == EnemyPursuer {
		return e.X, e.Y
	}
	return e.X + e.Width/2, e.Y + e.Height/2
}

// TakeDamage subtracts health and reports whether the enemy died
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	return e.Health <= 0
}

// CanDamagePlayer reports whether the contact-damage cooldown has lapsed
func (e *Enemy) CanDamagePlayer() bool {
	return e.DamageCooldown == 0
}

// ResetDamageCooldown restarts the contact-damage gate
func (e *Enemy) ResetDamageCooldown() {
	e.DamageCooldown = constants.ContactDamageCooldown
}

// RecordSegment pushes the current head position onto the trail,
// dropping the oldest entry. Pursuer only.
func (e *Enemy) RecordSegment() {
	if len(e.Segments) == 0 {
		return
	}
	copy(e.Segments[1:], e.Segments[:len(e.Segments)-1])
	e.Segments[0] = [2]float64{e.X, e.Y}
}
