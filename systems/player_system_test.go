package systems

import (
	"math"
	"testing"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
)

func TestPlayerMovesAndFaces(t *testing.T) {
	tests := []struct {
		name   string
		mx, my float64
		facing components.Facing
	}{
		{"right", 1, 0, components.FacingRight},
		{"left", -1, 0, components.FacingLeft},
		{"up", 0, -1, components.FacingUp},
		{"down", 0, 1, components.FacingDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(20)
			ps := NewPlayerSystem()
			sx, sy := w.Player.X, w.Player.Y

			w.SetIntent(engine.Intent{MoveX: tt.mx, MoveY: tt.my})
			ps.Update(w)

			speed := w.Player.Speed()
			if w.Player.X != sx+tt.mx*speed || w.Player.Y != sy+tt.my*speed {
				t.Errorf("Moved to (%.2f, %.2f), expected (%.2f, %.2f)",
					w.Player.X, w.Player.Y, sx+tt.mx*speed, sy+tt.my*speed)
			}
			if w.Player.Facing != tt.facing {
				t.Errorf("Facing = %v, expected %v", w.Player.Facing, tt.facing)
			}
			if !w.Player.IsMoving {
				t.Error("IsMoving should be set while travelling")
			}
		})
	}
}

func TestDiagonalMovementNormalized(t *testing.T) {
	w := newTestWorld(21)
	ps := NewPlayerSystem()
	sx := w.Player.X

	w.SetIntent(engine.Intent{MoveX: 1, MoveY: 1})
	ps.Update(w)

	want := sx + w.Player.Speed()*math.Sqrt2/2
	if math.Abs(w.Player.X-want) > 1e-9 {
		t.Errorf("Diagonal X step = %.4f, expected %.4f", w.Player.X-sx, want-sx)
	}
}

func TestDodgeDisplacesAlongFacing(t *testing.T) {
	w := newTestWorld(22)
	ps := NewPlayerSystem()
	w.Player.Facing = components.FacingRight
	sx := w.Player.X

	w.SetIntent(engine.Intent{Dodge: true})
	ps.Update(w)
	if !w.Player.IsDodging {
		t.Fatal("Dodge should start")
	}

	// Movement applies on the following ticks
	ps.Update(w)
	if w.Player.X != sx+constants.DodgeSpeed {
		t.Errorf("Dodge moved %.2f, expected %.2f", w.Player.X-sx, float64(constants.DodgeSpeed))
	}

	found := false
	for _, ev := range w.ConsumeEvents() {
		if ev.Type == events.EventDodge {
			found = true
		}
	}
	if !found {
		t.Error("Expected a dodge event")
	}
}

func TestAttackDispatchesPerWeapon(t *testing.T) {
	t.Run("sword", func(t *testing.T) {
		w := newTestWorld(23)
		ps := NewPlayerSystem()
		w.Player.Equip(components.WeaponSword)

		w.SetIntent(engine.Intent{Attack: true})
		ps.Update(w)

		if !w.Player.IsAttacking {
			t.Error("Sword attack should start a swing")
		}
		assertEvent(t, w, events.EventSwordSwing)
	})

	t.Run("bow", func(t *testing.T) {
		w := newTestWorld(24)
		ps := NewPlayerSystem()
		w.Player.Equip(components.WeaponBow)

		w.SetIntent(engine.Intent{Attack: true})
		ps.Update(w)

		if len(w.Arrows) != 1 {
			t.Errorf("Expected one arrow, got %d", len(w.Arrows))
		}
		if w.Player.BowCooldown == 0 {
			t.Error("Shot should start the bow cooldown")
		}
		assertEvent(t, w, events.EventArrowFired)
	})

	t.Run("bomb", func(t *testing.T) {
		w := newTestWorld(25)
		ps := NewPlayerSystem()
		w.Player.Equip(components.WeaponBomb)

		w.SetIntent(engine.Intent{Attack: true})
		ps.Update(w)

		if len(w.Bombs) != 1 {
			t.Errorf("Expected one bomb, got %d", len(w.Bombs))
		}
		assertEvent(t, w, events.EventBombThrown)
	})

	t.Run("unarmed", func(t *testing.T) {
		w := newTestWorld(26)
		ps := NewPlayerSystem()

		w.SetIntent(engine.Intent{Attack: true})
		ps.Update(w)

		if w.Player.IsAttacking || len(w.Arrows) != 0 || len(w.Bombs) != 0 {
			t.Error("Attacking without a weapon should do nothing")
		}
	})
}

func TestBowCooldownBlocksRepeatShots(t *testing.T) {
	w := newTestWorld(27)
	ps := NewPlayerSystem()
	w.Player.Equip(components.WeaponBow)

	w.SetIntent(engine.Intent{Attack: true})
	ps.Update(w)
	w.SetIntent(engine.Intent{Attack: true})
	ps.Update(w)

	if len(w.Arrows) != 1 {
		t.Errorf("Cooldown should block the second shot, got %d arrows", len(w.Arrows))
	}
}

func assertEvent(t *testing.T, w *engine.World, want events.EventType) {
	t.Helper()
	for _, ev := range w.ConsumeEvents() {
		if ev.Type == want {
			return
		}
	}
	t.Errorf("Expected event %v", want)
}
