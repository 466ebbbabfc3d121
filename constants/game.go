package constants

import "time"

// Game Loop Timing Constants
const (
	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond = 60

	// GameUpdateInterval is the simulation tick interval
	GameUpdateInterval = time.Second / TicksPerSecond

	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
)

// Event queue sizing. EventQueueSize must be a power of two so the ring
// index can be masked instead of taken modulo.
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)

// Map Geometry
const (
	// MapWidth and MapHeight are the world dimensions in world units
	MapWidth  = 960
	MapHeight = 540

	// PlatformMargin is the distance from the map edge where lava begins
	PlatformMargin = 25

	// IslandLeft, IslandTop, IslandRight, IslandBottom bound the walkable platform
	IslandLeft   = PlatformMargin
	IslandTop    = PlatformMargin
	IslandRight  = MapWidth - PlatformMargin
	IslandBottom = MapHeight - PlatformMargin
)

// Spire (obstruction) configuration
const (
	// SpireCount is the number of rock spires generated per run
	SpireCount = 12

	// SpireCollisionOffsetX and SpireCollisionOffsetY position the collision
	// box relative to the spire anchor (crown extends above the anchor)
	SpireCollisionOffsetX = 0
	SpireCollisionOffsetY = -6

	// SpireCollisionWidth and SpireCollisionHeight size the collision box
	SpireCollisionWidth  = 24
	SpireCollisionHeight = 28

	// SpireMinCenterDist keeps spires away from the player spawn point
	SpireMinCenterDist = 80

	// SpireMinSpacing is the minimum distance between two spires
	SpireMinSpacing = 60

	// SpirePlacementAttempts caps random placement retries
	SpirePlacementAttempts = 500
)
