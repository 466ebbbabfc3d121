package engine

import (
	"github.com/haoranliu666/Hell-Survivor/components"
)

// Snapshot is an immutable copy of the renderable world state, taken
// under the update lock after a tick completes. The renderer never
// touches live simulation state.
type Snapshot struct {
	Tick int64

	Player PlayerView

	Enemies   []EnemyView
	Items     []ItemView
	Arrows    []ArrowView
	Bombs     []BombView
	Particles []ParticleView
	Texts     []TextView
	Spires    [][2]float64

	Wave       int
	WaveActive bool
	Score      int
	Kills      int

	Message  string
	GameOver bool

	HighScores []ScoreEntry
}

// PlayerView is the renderable player state
type PlayerView struct {
	X, Y          float64
	Width, Height float64
	Health        int
	MaxHealth     int
	Level         int
	Exp           int
	Facing        components.Facing
	Weapon        components.Weapon
	SwordLevel    int
	ExtraArrows   int
	BombLevel     int
	Attacking     bool
	AttackRect    [4]float64
	Dodging       bool
	Invincible    bool
}

// EnemyView is the renderable state of one enemy
type EnemyView struct {
	Kind          components.EnemyKind
	X, Y          float64
	Width, Height float64
	Health        int
	Segments      [][2]float64
	FacingRight   bool
}

// ItemView is the renderable state of one collectible
type ItemView struct {
	Kind          components.ItemKind
	X, Y          float64
	Width, Height float64
}

// ArrowView is the renderable state of one arrow
type ArrowView struct {
	X, Y   float64
	DX, DY float64
}

// BombView is the renderable state of one bomb in flight
type BombView struct {
	X, Y float64
}

// ParticleView is one effect particle
type ParticleView struct {
	X, Y  float64
	Color uint8
}

// TextView is one floating score text
type TextView struct {
	X, Y float64
	Text string
}

// Snapshot copies the renderable state under the update lock
func (w *World) Snapshot() Snapshot {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()

	s := Snapshot{
		Tick:       w.Tick,
		Wave:       w.Wave,
		WaveActive: w.WaveActive,
		Score:      w.Score,
		Kills:      w.Kills,
		Message:    w.Message,
		GameOver:   w.GameOver,
	}

	p := w.Player
	s.Player = PlayerView{
		X: p.X, Y: p.Y,
		Width: p.Width, Height: p.Height,
		Health:      p.Health,
		MaxHealth:   p.MaxHealth,
		Level:       p.Level,
		Exp:         p.Exp,
		Facing:      p.Facing,
		Weapon:      p.Weapon,
		SwordLevel:  p.SwordLevel,
		ExtraArrows: p.ExtraArrows,
		BombLevel:   p.BombLevel,
		Attacking:   p.IsAttacking,
		Dodging:     p.IsDodging,
		Invincible:  p.InvincibleTimer > 0,
	}
	if r, ok := p.AttackRect(); ok {
		s.Player.AttackRect = [4]float64{r.X, r.Y, r.W, r.H}
	}

	for _, e := range w.Enemies {
		if e.Dead {
			continue
		}
		ev := EnemyView{
			Kind: e.Kind,
			X:    e.X, Y: e.Y,
			Width: e.Width, Height: e.Height,
			Health:      e.Health,
			FacingRight: e.FacingRight,
		}
		if len(e.Segments) > 0 {
			ev.Segments = make([][2]float64, len(e.Segments))
			copy(ev.Segments, e.Segments)
		}
		s.Enemies = append(s.Enemies, ev)
	}

	for _, it := range w.Items {
		s.Items = append(s.Items, ItemView{
			Kind: it.Kind,
			X:    it.X, Y: it.Y,
			Width: it.Width, Height: it.Height,
		})
	}

	for _, a := range w.Arrows {
		s.Arrows = append(s.Arrows, ArrowView{X: a.X, Y: a.Y, DX: a.DX, DY: a.DY})
	}
	for _, b := range w.Bombs {
		s.Bombs = append(s.Bombs, BombView{X: b.X, Y: b.Y})
	}
	for _, pt := range w.Particles {
		s.Particles = append(s.Particles, ParticleView{X: pt.X, Y: pt.Y, Color: pt.Color})
	}
	for _, ft := range w.FloatingTexts {
		s.Texts = append(s.Texts, TextView{X: ft.X, Y: ft.Y, Text: ft.Text})
	}

	for _, sp := range w.Terrain.Spires {
		s.Spires = append(s.Spires, [2]float64{sp.X, sp.Y})
	}

	if w.GameOver {
		s.HighScores = make([]ScoreEntry, len(w.HighScores))
		copy(s.HighScores, w.HighScores)
	}

	return s
}
