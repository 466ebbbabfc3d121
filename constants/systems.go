package constants

// System priorities. Lower values run earlier in the tick; the order is
// part of the simulation contract (movement before combat, combat before
// wave bookkeeping, compaction last).
const (
	PriorityPlayer     = 10
	PriorityEnemy      = 20
	PriorityProjectile = 30
	PriorityExplosive  = 40
	PrioritySpawn      = 50
	PriorityParticle   = 60
	PriorityCombat     = 70
	PriorityWave       = 80
	PriorityMeta       = 90
)
