package systems

import (
	"math"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
	"github.com/haoranliu666/Hell-Survivor/events"
)

// CombatSystem resolves the player-facing collisions of the tick: item
// pickups, enemy contact damage, and the single-tick melee hit window.
type CombatSystem struct{}

func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

func (cs *CombatSystem) Priority() int {
	return constants.PriorityCombat
}

func (cs *CombatSystem) Update(w *engine.World) {
	if w.GameOver {
		return
	}

	cs.pickupItems(w)
	cs.contactDamage(w)
	cs.meleeHits(w)
}

// pickupItems collects every item the player overlaps
func (cs *CombatSystem) pickupItems(w *engine.World) {
	pr := w.Player.Rect()
	chosen := components.ItemKind(-1)

	kept := w.Items[:0]
	for _, it := range w.Items {
		if !pr.Overlaps(it.Rect()) {
			kept = append(kept, it)
			continue
		}

		switch {
		case it.Kind.IsWeapon():
			weapon := it.Kind.Weapon()
			w.Player.Equip(weapon)
			switch weapon {
			case components.WeaponSword:
				w.SetMessage("SWORD CHOSEN!", constants.MessageShort)
			case components.WeaponBow:
				w.SetMessage("BOW CHOSEN!", constants.MessageShort)
			default:
				w.SetMessage("BOMB CHOSEN!", constants.MessageShort)
			}
			w.PushEvent(events.EventItemPickup, &events.PickupPayload{
				Kind: it.Kind, X: it.X, Y: it.Y,
			})
			chosen = it.Kind

		case it.Kind.IsFood():
			w.Player.Heal(it.HealAmount())
			w.PushEvent(events.EventItemPickup, &events.PickupPayload{
				Kind: it.Kind, X: it.X, Y: it.Y,
			})

		case it.Kind == components.ItemLootCrate:
			w.SetMessage(w.Player.ApplyCrateUpgrade(), 120)
			w.PushEvent(events.EventItemPickup, &events.PickupPayload{
				Kind: it.Kind, X: it.X, Y: it.Y,
			})
		}
	}
	w.Items = kept

	// Choosing a weapon commits the run to that path; the other
	// pickups vanish dramatically
	if chosen >= 0 {
		cs.discardOtherWeapons(w, chosen)
	}
}

// discardOtherWeapons removes the unchosen weapon pickups from the
// ground with a particle burst
func (cs *CombatSystem) discardOtherWeapons(w *engine.World, chosen components.ItemKind) {
	kept := w.Items[:0]
	for _, it := range w.Items {
		if !it.Kind.IsWeapon() || it.Kind == chosen {
			kept = append(kept, it)
			continue
		}

		cx := it.X + it.Width/2
		cy := it.Y + it.Height/2
		colors := discardColors(it.Kind)
		for i := 0; i < 20; i++ {
			angle := w.Rng.Float64() * 2 * math.Pi
			speed := 1.0 + w.Rng.Float64()*3.0
			w.Particles = append(w.Particles, &components.Particle{
				X: cx, Y: cy,
				DX:          math.Cos(angle) * speed,
				DY:          math.Sin(angle)*speed - 2,
				Lifetime:    20 + w.Rng.Intn(21),
				MaxLifetime: 40,
				Size:        2 + w.Rng.Intn(3),
				Color:       colors[w.Rng.Intn(len(colors))],
			})
		}
		w.PushEvent(events.EventItemPickup, &events.PickupPayload{
			Kind: it.Kind, X: it.X, Y: it.Y, Discarded: it.Kind.Weapon(),
		})
	}
	w.Items = kept
}

func discardColors(kind components.ItemKind) []uint8 {
	switch kind {
	case components.ItemSword:
		return []uint8{components.ColorRed, components.ColorOrange, components.ColorYellow, components.ColorWhite}
	case components.ItemBow:
		return []uint8{components.ColorPurple, components.ColorBlue, components.ColorWhite, components.ColorYellow}
	default:
		return []uint8{components.ColorOrange, components.ColorRed, components.ColorYellow, components.ColorGray}
	}
}

// contactDamage applies enemy touch damage. The per-enemy cooldown
// restarts on every qualifying overlap, even when invincibility
// suppressed the damage itself.
func (cs *CombatSystem) contactDamage(w *engine.World) {
	if w.Player.IsDodging {
		return
	}

	pr := w.Player.Rect()
	for _, e := range w.Enemies {
		if e.Dead || !e.CanDamagePlayer() || !pr.Overlaps(e.Rect()) {
			continue
		}
		if w.Player.TakeDamage(e.Damage) {
			w.PushEvent(events.EventPlayerHurt, &events.HurtPayload{
				Amount:    e.Damage,
				Remaining: w.Player.Health,
			})
		}
		e.ResetDamageCooldown()
	}
}

// meleeHits applies sword damage exactly once per swing, on the first
// tick after the swing starts
func (cs *CombatSystem) meleeHits(w *engine.World) {
	p := w.Player
	if p.AttackTimer != constants.PlayerAttackDuration-1 {
		return
	}
	rect, ok := p.AttackRect()
	if !ok {
		return
	}

	damage := p.SwordDamage()
	for _, e := range w.Enemies {
		if e.Dead || !rect.Overlaps(e.Rect()) {
			continue
		}
		if e.TakeDamage(damage) {
			ApplyKill(w, e, SourceMelee)
		}
	}
}
