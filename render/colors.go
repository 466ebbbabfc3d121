package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/haoranliu666/Hell-Survivor/components"
)

// World surface colors
var (
	ColorLava     = tcell.NewRGBColor(200, 40, 10)
	ColorLavaGlow = tcell.NewRGBColor(255, 120, 30)
	ColorGround   = tcell.NewRGBColor(70, 45, 30)
	ColorSpire    = tcell.NewRGBColor(110, 110, 120)
	ColorSpireCap = tcell.NewRGBColor(160, 160, 170)
)

// Entity colors
var (
	ColorPlayer     = tcell.ColorWhite
	ColorPlayerHurt = tcell.NewRGBColor(255, 80, 80)
	ColorPlayerRoll = tcell.NewRGBColor(120, 200, 255)
	ColorWanderer   = tcell.NewRGBColor(90, 200, 90)
	ColorPursuer    = tcell.NewRGBColor(170, 90, 220)
	ColorBoss       = tcell.NewRGBColor(230, 50, 50)
	ColorArrow      = tcell.NewRGBColor(240, 220, 120)
	ColorBomb       = tcell.NewRGBColor(200, 200, 210)
	ColorSword      = tcell.NewRGBColor(200, 200, 230)
	ColorBow        = tcell.NewRGBColor(180, 130, 70)
	ColorHeal       = tcell.NewRGBColor(90, 220, 90)
	ColorCrate      = tcell.NewRGBColor(230, 190, 60)
)

// HUD colors
var (
	ColorHUDText    = tcell.ColorWhite
	ColorHealthFull = tcell.NewRGBColor(60, 220, 60)
	ColorHealthLow  = tcell.NewRGBColor(230, 60, 60)
	ColorExpBar     = tcell.NewRGBColor(80, 160, 255)
	ColorMessage    = tcell.NewRGBColor(255, 230, 100)
)

// particlePalette maps effect particle color indexes onto terminal
// colors. Order follows the palette in the components package.
var particlePalette = [...]tcell.Color{
	components.ColorWhite:     tcell.ColorWhite,
	components.ColorYellow:    tcell.NewRGBColor(250, 230, 90),
	components.ColorOrange:    tcell.NewRGBColor(250, 150, 50),
	components.ColorRed:       tcell.NewRGBColor(230, 60, 40),
	components.ColorGreen:     tcell.NewRGBColor(90, 220, 90),
	components.ColorDarkGreen: tcell.NewRGBColor(40, 130, 40),
	components.ColorBrown:     tcell.NewRGBColor(150, 100, 50),
	components.ColorGray:      tcell.NewRGBColor(140, 140, 140),
	components.ColorPurple:    tcell.NewRGBColor(180, 90, 220),
	components.ColorBlue:      tcell.NewRGBColor(90, 140, 250),
}

// ParticleColor resolves a palette index, falling back to white for
// indexes outside the palette
func ParticleColor(idx uint8) tcell.Color {
	if int(idx) < len(particlePalette) {
		return particlePalette[idx]
	}
	return tcell.ColorWhite
}

// ItemColor returns the display color for a collectible kind
func ItemColor(kind components.ItemKind) tcell.Color {
	switch kind {
	case components.ItemSword:
		return ColorSword
	case components.ItemBow:
		return ColorBow
	case components.ItemBomb:
		return ColorBomb
	case components.ItemLootCrate:
		return ColorCrate
	default:
		return ColorHeal
	}
}
