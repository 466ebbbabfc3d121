package components

import (
	"math"

	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// Facing is one of the four cardinal directions the player can face
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

// Vector returns the unit vector for the facing direction
func (f Facing) Vector() (dx, dy float64) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Weapon identifies the player's equipped weapon. Weapons are mutually
// exclusive; picking one up discards any other.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponSword
	WeaponBow
	WeaponBomb
)

// Player holds all per-run player state
type Player struct {
	X, Y          float64
	Width, Height float64

	Health    int
	MaxHealth int

	Facing   Facing
	IsMoving bool

	// Equipped weapon and upgrade levels
	Weapon      Weapon
	SwordLevel  int
	ExtraArrows int
	BombLevel   int

	// Active state timers, in ticks
	IsAttacking bool
	AttackTimer int
	IsDodging   bool
	DodgeTimer  int
	DodgeDX     float64
	DodgeDY     float64

	DodgeCooldown   int
	BowCooldown     int
	BombCooldown    int
	InvincibleTimer int

	// Progression
	Exp             int
	Level           int
	SpeedMultiplier float64
}

// NewPlayer creates a player at (x, y) with base stats
func NewPlayer(x, y float64) *Player {
	return &Player{
		X:               x,
		Y:               y,
		Width:           constants.PlayerWidth,
		Height:          constants.PlayerHeight,
		Health:          constants.PlayerMaxHealth,
		MaxHealth:       constants.PlayerMaxHealth,
		Facing:          FacingDown,
		Level:           1,
		SpeedMultiplier: 1.0,
	}
}

// Rect returns the player's collision rectangle
func (p *Player) Rect() vmath.Rect {
	return vmath.NewRect(p.X, p.Y, p.Width, p.Height)
}

// Center returns the player's center point
func (p *Player) Center() (cx, cy float64) {
	return p.X + p.Width/2, p.Y + p.Height/2
}

// Speed returns the effective movement speed including level bonuses
func (p *Player) Speed() float64 {
	return constants.PlayerSpeed * p.SpeedMultiplier
}

// GainExp adds experience and applies level ups. Leveling repeats until
// the remaining experience is below the threshold again; each level adds
// a speed bonus and raises both max and current health. Returns the
// number of levels gained.
func (p *Player) GainExp(amount int) int {
	p.Exp += amount
	levels := 0
	for p.Exp >= constants.ExpPerLevel {
		p.Exp -= constants.ExpPerLevel
		p.Level++
		p.SpeedMultiplier += constants.LevelSpeedBonus
		p.MaxHealth += constants.LevelHealthBonus
		p.Health += constants.LevelHealthBonus
		levels++
	}
	return levels
}

// TakeDamage applies damage unless the player is invincible or dodging.
// A successful hit starts the invincibility window. Returns true if
// damage was applied.
func (p *Player) TakeDamage(amount int) bool {
	if p.InvincibleTimer > 0 || p.IsDodging {
		return false
	}
	p.Health -= amount
	if p.Health < 0 {
		p.Health = 0
	}
	p.InvincibleTimer = constants.InvincibilityTicks
	return true
}

// Heal restores health up to the maximum
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// StartAttack begins a melee swing if the player holds the sword and is
// neither attacking nor dodging
func (p *Player) StartAttack() bool {
	if p.Weapon != WeaponSword || p.IsAttacking || p.IsDodging {
		return false
	}
	p.IsAttacking = true
	p.AttackTimer = constants.PlayerAttackDuration
	return true
}

// StartDodge begins a dodge roll in the current facing direction
func (p *Player) StartDodge() bool {
	if p.DodgeCooldown > 0 || p.IsDodging || p.IsAttacking {
		return false
	}
	p.IsDodging = true
	p.DodgeTimer = constants.DodgeDuration
	p.DodgeCooldown = constants.DodgeCooldown
	p.DodgeDX, p.DodgeDY = p.Facing.Vector()
	return true
}

// StartShot consumes the bow cooldown if a shot is possible
func (p *Player) StartShot() bool {
	if p.Weapon != WeaponBow || p.BowCooldown > 0 || p.IsAttacking || p.IsDodging {
		return false
	}
	p.BowCooldown = constants.BowCooldown
	return true
}

// StartThrow consumes the bomb cooldown if a throw is possible
func (p *Player) StartThrow() bool {
	if p.Weapon != WeaponBomb || p.BombCooldown > 0 || p.IsAttacking || p.IsDodging {
		return false
	}
	p.BombCooldown = constants.BombCooldown
	return true
}

// AdvanceTimers ticks down all countdown state. Called once per
// simulation tick after movement is applied.
func (p *Player) AdvanceTimers() {
	if p.IsAttacking {
		p.AttackTimer--
		if p.AttackTimer <= 0 {
			p.IsAttacking = false
		}
	}
	if p.IsDodging {
		p.DodgeTimer--
		if p.DodgeTimer <= 0 {
			p.IsDodging = false
		}
	}
	if p.DodgeCooldown > 0 {
		p.DodgeCooldown--
	}
	if p.BowCooldown > 0 {
		p.BowCooldown--
	}
	if p.BombCooldown > 0 {
		p.BombCooldown--
	}
	if p.InvincibleTimer > 0 {
		p.InvincibleTimer--
	}
}

// SwordDamage returns melee damage for the current sword level.
// Base 2; each level adds one, with an extra point every second level.
func (p *Player) SwordDamage() int {
	return 2 + p.SwordLevel + p.SwordLevel/2
}

// AttackRect returns the melee hitbox extending from the player's center
// in the facing direction, or ok=false when not attacking. Reach and
// width scale with sword level.
func (p *Player) AttackRect() (vmath.Rect, bool) {
	if !p.IsAttacking {
		return vmath.Rect{}, false
	}

	cx, cy := p.Center()
	scale := 1.0 + float64(p.SwordLevel)*constants.SwordReachPerLevel
	reach := constants.PlayerAttackRange * scale
	width := constants.PlayerAttackWidth * scale

	switch p.Facing {
	case FacingUp:
		return vmath.NewRect(cx-width/2, cy-reach, width, reach), true
	case FacingDown:
		return vmath.NewRect(cx-width/2, cy, width, reach), true
	case FacingLeft:
		return vmath.NewRect(cx-reach, cy-width/2, reach, width), true
	default:
		return vmath.NewRect(cx, cy-width/2, reach, width), true
	}
}

// BombDamage returns explosive damage for the current bomb level
func (p *Player) BombDamage() int {
	return constants.BombBaseDamage + p.BombLevel*constants.BombDamagePerLevel
}

// BombRange returns the explosion radius for the current bomb level
func (p *Player) BombRange() float64 {
	return constants.BombBaseRange + float64(p.BombLevel*constants.BombRangePerLevel)
}

// ArrowDirections returns normalized unit vectors for every arrow of one
// shot: the facing direction plus a symmetric pair per extra-arrow
// upgrade at a fixed small angle increment.
func (p *Player) ArrowDirections() [][2]float64 {
	bx, by := p.Facing.Vector()
	raw := [][2]float64{{bx, by}}

	for i := 0; i < p.ExtraArrows; i++ {
		spread := constants.ArrowSpreadStep * float64(i+1)
		if bx != 0 {
			raw = append(raw, [2]float64{bx, spread}, [2]float64{bx, -spread})
		} else {
			raw = append(raw, [2]float64{spread, by}, [2]float64{-spread, by})
		}
	}

	dirs := make([][2]float64, 0, len(raw))
	for _, d := range raw {
		mag := math.Hypot(d[0], d[1])
		dirs = append(dirs, [2]float64{d[0] / mag, d[1] / mag})
	}
	return dirs
}

// Equip sets the player's weapon, discarding any other. Returns the
// previously equipped weapon.
func (p *Player) Equip(w Weapon) Weapon {
	prev := p.Weapon
	p.Weapon = w
	return prev
}

// ApplyCrateUpgrade grants the upgrade tied to the equipped weapon and
// returns a short description for the UI
func (p *Player) ApplyCrateUpgrade() string {
	switch p.Weapon {
	case WeaponBow:
		p.ExtraArrows++
		return "MULTI-ARROW!"
	case WeaponBomb:
		p.BombLevel++
		return "MEGA BOMB!"
	default:
		p.SwordLevel++
		return "SWORD UP!"
	}
}
