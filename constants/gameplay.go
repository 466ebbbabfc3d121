package constants

// Enemy Spawning
const (
	// EnemySpawnIntervalTicks is the base interval between ambient spawns
	EnemySpawnIntervalTicks = 180

	// EnemySpawnIntervalStep shrinks the interval per wave
	EnemySpawnIntervalStep = 18

	// EnemySpawnIntervalFloor is the minimum spawn interval
	EnemySpawnIntervalFloor = 48

	// MaxEnemies caps ambient (non-boss) enemies; grows per wave
	MaxEnemies        = 12
	MaxEnemiesPerWave = 2

	// WandererSpawnChance is the probability an ambient spawn is a wanderer
	WandererSpawnChance = 0.6
)

// Food Spawning
const (
	FoodSpawnIntervalTicks = 300
	MaxFood                = 8
)

// Wave Triggers
const (
	// WaveTimeTriggerTicks starts the next wave after this much waiting
	WaveTimeTriggerTicks = 60 * TicksPerSecond

	// WaveKillTrigger starts the next wave after this many kills since the
	// previous wave ended
	WaveKillTrigger = 10

	// BossSpawnJitter is the random offset applied to boss spawn positions
	BossSpawnJitter = 20
)

// Score awards per kill
const (
	ScoreWanderer = 5
	ScorePursuer  = 10
	ScoreBoss     = 100
)

// Experience awards per kill source
const (
	ExpWanderer = 10
	ExpPursuer  = 20

	// ExpBossRanged is granted for projectile and explosive boss kills.
	// Melee boss kills grant no experience; the original behaves this way
	// and the asymmetry is kept.
	ExpBossRanged = 50
)

// Drop chances
const (
	// DropChanceDirect applies to melee and projectile kills
	DropChanceDirect = 0.1

	// DropChanceExplosive applies to explosive kills
	DropChanceExplosive = 0.3
)

// UI message durations in ticks
const (
	MessageShort = 90
	MessageLong  = 150
)

// MaxHighScores bounds the in-memory high score table
const MaxHighScores = 10
