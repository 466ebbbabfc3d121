package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/events"
	"github.com/haoranliu666/Hell-Survivor/terrain"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// System runs one slice of the simulation each tick. Lower priority
// values run first; ordering between systems is part of the tick
// contract (movement before combat, combat before compaction).
type System interface {
	Update(w *World)
	Priority() int
}

// World owns the full simulation state for one run plus the run-spanning
// high-score table. All mutation happens under the update mutex; the
// renderer reads through Snapshot only.
type World struct {
	mu          sync.RWMutex
	systems     []System
	updateMutex sync.Mutex

	Rng     *rand.Rand
	Terrain *terrain.Model
	Player  *components.Player

	Enemies       []*components.Enemy
	Items         []*components.Item
	Arrows        []*components.Arrow
	Bombs         []*components.Bomb
	Particles     []*components.Particle
	FloatingTexts []*components.FloatingText

	// Tick is the number of completed simulation ticks this run
	Tick int64

	// Wave progression state. WaveActive means bosses are alive or
	// spawning; kills and the start tick drive the next trigger.
	Wave          int
	WaveActive    bool
	WaveStartTick int64
	WaveKills     int
	LootDropped   bool

	// Spawn bookkeeping
	LastEnemySpawnTick int64
	LastFoodSpawnTick  int64

	Score int
	Kills int

	// Message is the transient status line with its countdown
	Message      string
	MessageTimer int

	// GameOver latches once per run; ScoreRecorded guards the single
	// high-score insertion
	GameOver      bool
	ScoreRecorded bool

	// HighScores survives Reset
	HighScores []ScoreEntry

	intent Intent

	eventQueue *events.EventQueue
}

// ScoreEntry is one finished run in the high-score table
type ScoreEntry struct {
	Score int
	Wave  int
	Kills int
	Ticks int64
	When  time.Time
}

// NewWorld creates a world with a fresh run. The seed fixes terrain and
// spawn randomness for deterministic tests.
func NewWorld(seed int64) *World {
	w := &World{
		Rng:        rand.New(rand.NewSource(seed)),
		eventQueue: events.NewEventQueue(),
	}
	w.Reset()
	return w
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Lock acquires the world's update mutex
func (w *World) Lock() {
	w.updateMutex.Lock()
}

// Unlock releases the update mutex
func (w *World) Unlock() {
	w.updateMutex.Unlock()
}

// Update runs one full tick
func (w *World) Update() {
	w.RunSafe(func() {
		w.UpdateLocked()
	})
}

// UpdateLocked runs all systems assuming the caller already holds the
// update mutex, then advances the tick counter
func (w *World) UpdateLocked() {
	w.mu.RLock()
	systems := make([]System, len(w.systems))
	copy(systems, w.systems)
	w.mu.RUnlock()

	for _, system := range systems {
		system.Update(w)
	}
	w.Tick++
}

// PushEvent emits a game event tagged with the current tick
func (w *World) PushEvent(eventType events.EventType, payload any) {
	w.eventQueue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Tick:      w.Tick,
		Timestamp: time.Now(),
	})
}

// ConsumeEvents drains pending effect events. Single consumer; called by
// the audio/render drain outside the tick.
func (w *World) ConsumeEvents() []events.GameEvent {
	return w.eventQueue.Consume()
}

// SetIntent publishes the input state for the next tick. Discrete action
// flags accumulate until the player system consumes them, so a keypress
// between ticks is never lost. Takes the update lock: the render loop
// publishes intent while the scheduler goroutine runs ticks.
func (w *World) SetIntent(in Intent) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	w.intent.MoveX = in.MoveX
	w.intent.MoveY = in.MoveY
	w.intent.Attack = w.intent.Attack || in.Attack
	w.intent.Dodge = w.intent.Dodge || in.Dodge
	w.intent.Restart = w.intent.Restart || in.Restart
}

// TakeIntent returns the pending intent and clears the discrete actions
func (w *World) TakeIntent() Intent {
	in := w.intent
	w.intent.Attack = false
	w.intent.Dodge = false
	w.intent.Restart = false
	return in
}

// Reset starts a fresh run: new terrain, player at the island center,
// starting items, all counters zeroed. The high-score table is kept.
func (w *World) Reset() {
	w.Terrain = terrain.Generate(w.Rng)

	px := float64(constants.MapWidth)/2 - constants.PlayerWidth/2
	py := float64(constants.MapHeight)/2 - constants.PlayerHeight/2
	w.Player = components.NewPlayer(px, py)

	w.Enemies = nil
	w.Items = nil
	w.Arrows = nil
	w.Bombs = nil
	w.Particles = nil
	w.FloatingTexts = nil

	w.Tick = 0
	w.Wave = 1
	w.WaveActive = false
	w.WaveStartTick = 0
	w.WaveKills = 0
	w.LootDropped = false
	w.LastEnemySpawnTick = 0
	w.LastFoodSpawnTick = 0
	w.Score = 0
	w.Kills = 0
	w.Message = ""
	w.MessageTimer = 0
	w.GameOver = false
	w.ScoreRecorded = false
	w.intent = Intent{}

	w.placeStartingItems()
}

// placeStartingItems seeds the three weapon pickups and a few food items
func (w *World) placeStartingItems() {
	cx, cy := w.Player.Center()

	w.Items = append(w.Items,
		components.NewItem(cx-60, cy, components.ItemSword),
		components.NewItem(cx+60, cy, components.ItemBow),
		components.NewItem(constants.IslandLeft+20, constants.IslandBottom-40, components.ItemBomb),
	)

	for i := 0; i < 4; i++ {
		x, y, ok := w.RandomClearPosition(constants.FoodSize, constants.FoodSize)
		if !ok {
			continue
		}
		w.Items = append(w.Items, components.NewItem(x, y, components.ItemHealMinor))
	}
}

// RandomClearPosition picks a random island position where a w x h rect
// does not overlap any spire. Returns ok=false when no clear spot was
// found in a bounded number of tries.
func (w *World) RandomClearPosition(rw, rh float64) (x, y float64, ok bool) {
	for i := 0; i < 50; i++ {
		x = float64(constants.IslandLeft) + w.Rng.Float64()*float64(constants.IslandRight-constants.IslandLeft-int(rw))
		y = float64(constants.IslandTop) + w.Rng.Float64()*float64(constants.IslandBottom-constants.IslandTop-int(rh))
		if !w.Terrain.Blocked(vmath.NewRect(x, y, rw, rh)) {
			return x, y, true
		}
	}
	return 0, 0, false
}

// SetMessage shows a transient status line for the given tick count
func (w *World) SetMessage(text string, ticks int) {
	w.Message = text
	w.MessageTimer = ticks
}

// AliveBosses counts bosses not yet marked dead
func (w *World) AliveBosses() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Kind == components.EnemyBoss && !e.Dead {
			n++
		}
	}
	return n
}

// AliveEnemies counts non-boss enemies not yet marked dead
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Kind != components.EnemyBoss && !e.Dead {
			n++
		}
	}
	return n
}

// RecordHighScore inserts the current run into the table once, keeping
// the top entries ordered by score, ties broken by longer runs.
// Zero-score runs are not recorded.
func (w *World) RecordHighScore() {
	if w.ScoreRecorded || w.Score <= 0 {
		return
	}
	w.ScoreRecorded = true

	entry := ScoreEntry{
		Score: w.Score,
		Wave:  w.Wave,
		Kills: w.Kills,
		Ticks: w.Tick,
		When:  time.Now(),
	}

	pos := len(w.HighScores)
	for i, e := range w.HighScores {
		if entry.Score > e.Score || (entry.Score == e.Score && entry.Ticks > e.Ticks) {
			pos = i
			break
		}
	}

	w.HighScores = append(w.HighScores, ScoreEntry{})
	copy(w.HighScores[pos+1:], w.HighScores[pos:])
	w.HighScores[pos] = entry

	if len(w.HighScores) > constants.MaxHighScores {
		w.HighScores = w.HighScores[:constants.MaxHighScores]
	}
}
