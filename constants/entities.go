package constants

// Player
const (
	PlayerWidth     = 12
	PlayerHeight    = 20
	PlayerSpeed     = 1.5
	PlayerMaxHealth = 100

	// PlayerAttackRange and PlayerAttackWidth size the base melee hitbox
	PlayerAttackRange = 32
	PlayerAttackWidth = 28

	// PlayerAttackDuration is the melee swing length in ticks
	PlayerAttackDuration = 18

	// SwordReachPerLevel is the hitbox scale added per sword level
	SwordReachPerLevel = 0.25

	// InvincibilityTicks is the immunity window after taking damage
	InvincibilityTicks = 30

	// ExpPerLevel is the experience threshold for a level up
	ExpPerLevel = 100

	// LevelSpeedBonus and LevelHealthBonus are applied once per level gained
	LevelSpeedBonus  = 0.03
	LevelHealthBonus = 5
)

// Dodge roll
const (
	DodgeDuration = 12
	DodgeSpeed    = 5.0
	DodgeCooldown = 45
)

// Wanderer
const (
	WandererSize   = 14
	WandererSpeed  = 0.6
	WandererDamage = 5
	WandererHealth = 1
)

// Pursuer
const (
	PursuerSegmentSize = 6
	PursuerNumSegments = 8
	PursuerSpeed       = 0.8
	PursuerDamage      = 10
	PursuerHealth      = 1

	// PursuerSlitherStep advances the sinusoidal slither phase per tick
	PursuerSlitherStep = 0.3

	// PursuerSlitherAmp scales the perpendicular slither component
	PursuerSlitherAmp = 0.5
)

// Boss
const (
	BossSize   = 32
	BossSpeed  = 1.0
	BossDamage = 30
	BossHealth = 7

	// BossSizeScalePerWave and BossSpeedScalePerWave apply per wave above 1
	BossSizeScalePerWave  = 0.15
	BossSpeedScalePerWave = 0.2

	// BossBlockDestroyTicks is how long a boss must stay blocked before it
	// destroys the obstructing spire
	BossBlockDestroyTicks = 60
)

// ContactDamageCooldown gates repeated contact damage from one enemy
const ContactDamageCooldown = 60

// Arrow (ranged projectile)
const (
	ArrowSize     = 4
	ArrowSpeed    = 6.0
	ArrowDamage   = 1
	ArrowLifetime = 120

	// BowCooldown is the minimum interval between shots
	BowCooldown = 30

	// ArrowSpreadStep is the angle increment per extra arrow pair, radians
	ArrowSpreadStep = 0.1
)

// Bomb (thrown explosive)
const (
	BombWidth  = 10
	BombHeight = 10

	BombSpeed         = 4.0
	BombVelocityDecay = 0.95
	BombBaseDamage    = 3
	BombBaseRange     = 40
	BombCooldown      = 90
	BombFlightTicks   = 30

	// BombDamagePerLevel and BombRangePerLevel scale with crate upgrades
	BombDamagePerLevel = 2
	BombRangePerLevel  = 15
)

// Item sizes
const (
	SwordItemWidth  = 6
	SwordItemHeight = 14
	BowItemWidth    = 10
	BowItemHeight   = 12
	FoodSize        = 8
	LootCrateSize   = 12
)

// Healing amounts per food tier
const (
	HealMinor     = 10
	HealSecondary = 20
	HealTertiary  = 50
)
