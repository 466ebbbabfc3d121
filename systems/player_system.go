package systems

import (
	"math"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
	"github.com/haoranliu666/Hell-Survivor/physics"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// PlayerSystem consumes the tick's intent: movement with obstruction
// resolution, dodge displacement, the attack trigger dispatched to the
// equipped weapon path, and timer countdown. Runs first each tick.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (ps *PlayerSystem) Priority() int {
	return constants.PriorityPlayer
}

func (ps *PlayerSystem) Update(w *engine.World) {
	in := w.TakeIntent()

	if w.GameOver {
		if in.Restart {
			w.Reset()
		}
		return
	}

	p := w.Player

	if p.IsDodging {
		ps.moveDodge(w, p)
	} else {
		ps.move(w, p, in)
	}

	if in.Dodge && p.StartDodge() {
		w.PushEvent(events.EventDodge, nil)
	}
	if in.Attack {
		ps.triggerAttack(w, p)
	}

	p.AdvanceTimers()
}

// moveDodge applies the fixed-direction dodge displacement. A blocked
// dodge stops in place rather than sliding.
func (ps *PlayerSystem) moveDodge(w *engine.World, p *components.Player) {
	nx := p.X + p.DodgeDX*constants.DodgeSpeed
	ny := p.Y + p.DodgeDY*constants.DodgeSpeed
	nx, ny = w.Terrain.ClampRect(nx, ny, p.Width, p.Height)

	if !w.Terrain.Blocked(vmath.NewRect(nx, ny, p.Width, p.Height)) {
		p.X, p.Y = nx, ny
	}
}

// move applies held-direction movement through the obstruction resolver
func (ps *PlayerSystem) move(w *engine.World, p *components.Player, in engine.Intent) {
	p.IsMoving = in.Moving()
	if !p.IsMoving {
		return
	}

	dx, dy := in.MoveX, in.MoveY

	// Horizontal wins when both axes are held
	if dy < 0 {
		p.Facing = components.FacingUp
	}
	if dy > 0 {
		p.Facing = components.FacingDown
	}
	if dx < 0 {
		p.Facing = components.FacingLeft
	}
	if dx > 0 {
		p.Facing = components.FacingRight
	}

	if dx != 0 && dy != 0 {
		dx *= math.Sqrt2 / 2
		dy *= math.Sqrt2 / 2
	}

	speed := p.Speed()
	p.X, p.Y, _ = physics.ResolveMove(w.Terrain, p.X, p.Y, p.Width, p.Height, dx*speed, dy*speed, false)
}

// triggerAttack dispatches the single attack intent to the equipped
// weapon: bow shot, bomb throw, or melee swing
func (ps *PlayerSystem) triggerAttack(w *engine.World, p *components.Player) {
	cx, cy := p.Center()

	switch {
	case p.Weapon == components.WeaponBow && p.StartShot():
		dirs := p.ArrowDirections()
		for _, d := range dirs {
			w.Arrows = append(w.Arrows, components.NewArrow(cx, cy, d[0], d[1]))
		}
		w.PushEvent(events.EventArrowFired, &events.ShotPayload{X: cx, Y: cy, Count: len(dirs)})

	case p.Weapon == components.WeaponBomb && p.StartThrow():
		dx, dy := p.Facing.Vector()
		w.Bombs = append(w.Bombs, components.NewBomb(cx, cy, dx, dy, p.BombDamage(), p.BombRange()))
		w.PushEvent(events.EventBombThrown, &events.ShotPayload{X: cx, Y: cy, Count: 1})

	case p.StartAttack():
		w.PushEvent(events.EventSwordSwing, nil)
	}
}
