package components

import (
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/vmath"
)

// ItemKind is the collectible variant tag
type ItemKind int

const (
	ItemSword ItemKind = iota
	ItemBow
	ItemBomb
	ItemHealMinor
	ItemHealSecondary
	ItemHealTertiary
	ItemLootCrate
)

// IsWeapon reports whether the kind is a weapon pickup
func (k ItemKind) IsWeapon() bool {
	return k == ItemSword || k == ItemBow || k == ItemBomb
}

// IsFood reports whether the kind is a healing item
func (k ItemKind) IsFood() bool {
	return k == ItemHealMinor || k == ItemHealSecondary || k == ItemHealTertiary
}

// Weapon maps a weapon item kind to the player weapon it equips
func (k ItemKind) Weapon() Weapon {
	switch k {
	case ItemSword:
		return WeaponSword
	case ItemBow:
		return WeaponBow
	case ItemBomb:
		return WeaponBomb
	default:
		return WeaponNone
	}
}

// Item is a collectible placed in the world
type Item struct {
	Kind          ItemKind
	X, Y          float64
	Width, Height float64
}

// NewItem creates an item of the given kind with its fixed per-variant
// size
func NewItem(x, y float64, kind ItemKind) *Item {
	it := &Item{Kind: kind, X: x, Y: y}

	switch kind {
	case ItemSword:
		it.Width, it.Height = constants.SwordItemWidth, constants.SwordItemHeight
	case ItemBow:
		it.Width, it.Height = constants.BowItemWidth, constants.BowItemHeight
	case ItemBomb:
		it.Width, it.Height = constants.BombWidth, constants.BombHeight
	case ItemLootCrate:
		it.Width, it.Height = constants.LootCrateSize, constants.LootCrateSize
	default:
		it.Width, it.Height = constants.FoodSize, constants.FoodSize
	}

	return it
}

// Rect returns the item's pickup rectangle
func (it *Item) Rect() vmath.Rect {
	return vmath.NewRect(it.X, it.Y, it.Width, it.Height)
}

// HealAmount returns the health restored by a food item, zero otherwise
func (it *Item) HealAmount() int {
	switch it.Kind {
	case ItemHealMinor:
		return constants.HealMinor
	case ItemHealSecondary:
		return constants.HealSecondary
	case ItemHealTertiary:
		return constants.HealTertiary
	default:
		return 0
	}
}
