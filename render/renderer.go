package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/haoranliu666/Hell-Survivor/components"
	"github.com/haoranliu666/Hell-Survivor/constants"
	"github.com/haoranliu666/Hell-Survivor/engine"
)

// hudRows is the vertical space reserved above the arena
const hudRows = 2

// TerminalRenderer draws world snapshots onto a tcell screen. The
// arena is scaled to whatever cell grid is available below the HUD.
type TerminalRenderer struct {
	screen tcell.Screen

	width, height int
	gameY         int
	scaleX        float64
	scaleY        float64
}

// NewTerminalRenderer creates a renderer for the given screen
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{screen: screen}
}

// layout recomputes the world-to-cell scaling from the current screen
// size. Cheap enough to run every frame, which also absorbs resizes.
func (r *TerminalRenderer) layout() {
	r.width, r.height = r.screen.Size()
	r.gameY = hudRows

	gameH := r.height - hudRows
	if gameH < 1 {
		gameH = 1
	}
	r.scaleX = float64(r.width) / constants.MapWidth
	r.scaleY = float64(gameH) / constants.MapHeight
}

// cell maps a world coordinate to a screen cell
func (r *TerminalRenderer) cell(wx, wy float64) (int, int) {
	return int(wx * r.scaleX), r.gameY + int(wy*r.scaleY)
}

// RenderFrame draws one complete frame from the snapshot
func (r *TerminalRenderer) RenderFrame(s *engine.Snapshot) {
	r.layout()
	r.screen.Clear()

	r.drawTerrain(s)
	r.drawItems(s)
	r.drawEnemies(s)
	r.drawAttackArc(s)
	r.drawPlayer(s)
	r.drawProjectiles(s)
	r.drawParticles(s)
	r.drawTexts(s)
	r.drawHUD(s)

	if s.Message != "" && !s.GameOver {
		r.drawMessage(s.Message)
	}
	if s.GameOver {
		r.drawGameOver(s)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawTerrain(s *engine.Snapshot) {
	lavaStyle := tcell.StyleDefault.Foreground(ColorLavaGlow).Background(ColorLava)
	groundStyle := tcell.StyleDefault.Foreground(ColorGround)

	left, top := r.cell(constants.IslandLeft, constants.IslandTop)
	right, bottom := r.cell(constants.IslandRight, constants.IslandBottom)

	for y := r.gameY; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			if x >= left && x < right && y >= top && y < bottom {
				r.screen.SetContent(x, y, '·', nil, groundStyle)
			} else {
				r.screen.SetContent(x, y, '~', nil, lavaStyle)
			}
		}
	}

	spireStyle := tcell.StyleDefault.Foreground(ColorSpire)
	capStyle := tcell.StyleDefault.Foreground(ColorSpireCap)
	for _, sp := range s.Spires {
		// Collision box top-left, in world units
		bx := sp[0] + constants.SpireCollisionOffsetX
		by := sp[1] + constants.SpireCollisionOffsetY

		x0, y0 := r.cell(bx, by)
		x1, y1 := r.cell(bx+constants.SpireCollisionWidth, by+constants.SpireCollisionHeight)
		for y := y0; y <= y1 && y < r.height; y++ {
			for x := x0; x <= x1 && x < r.width; x++ {
				if y == y0 {
					r.screen.SetContent(x, y, '▲', nil, capStyle)
				} else {
					r.screen.SetContent(x, y, '█', nil, spireStyle)
				}
			}
		}
	}
}

func (r *TerminalRenderer) drawItems(s *engine.Snapshot) {
	for _, it := range s.Items {
		x, y := r.cell(it.X+it.Width/2, it.Y+it.Height/2)
		style := tcell.StyleDefault.Foreground(ItemColor(it.Kind))
		r.setCell(x, y, itemGlyph(it.Kind), style)
	}
}

func itemGlyph(kind components.ItemKind) rune {
	switch kind {
	case components.ItemSword:
		return '†'
	case components.ItemBow:
		return ')'
	case components.ItemBomb:
		return 'ò'
	case components.ItemLootCrate:
		return '▣'
	default:
		return '+'
	}
}

func (r *TerminalRenderer) drawEnemies(s *engine.Snapshot) {
	for _, e := range s.Enemies {
		switch e.Kind {
		case components.EnemyWanderer:
			x, y := r.cell(e.X+e.Width/2, e.Y+e.Height/2)
			r.setCell(x, y, 'w', tcell.StyleDefault.Foreground(ColorWanderer))

		case components.EnemyPursuer:
			style := tcell.StyleDefault.Foreground(ColorPursuer)
			// Tail first so the head overdraws it
			for i := len(e.Segments) - 1; i >= 1; i-- {
				x, y := r.cell(e.Segments[i][0], e.Segments[i][1])
				r.setCell(x, y, 'o', style.Dim(true))
			}
			x, y := r.cell(e.X, e.Y)
			r.setCell(x, y, 'S', style.Bold(true))

		case components.EnemyBoss:
			style := tcell.StyleDefault.Foreground(ColorBoss).Bold(true)
			x0, y0 := r.cell(e.X, e.Y)
			x1, y1 := r.cell(e.X+e.Width, e.Y+e.Height)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					r.setCell(x, y, '▓', style)
				}
			}
			cx := (x0 + x1) / 2
			eye := 'Ò'
			if !e.FacingRight {
				eye = 'Ó'
			}
			r.setCell(cx, y0, eye, style)
		}
	}
}

func (r *TerminalRenderer) drawAttackArc(s *engine.Snapshot) {
	if !s.Player.Attacking {
		return
	}
	ar := s.Player.AttackRect
	if ar[2] == 0 || ar[3] == 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(ColorSword).Bold(true)
	x0, y0 := r.cell(ar[0], ar[1])
	x1, y1 := r.cell(ar[0]+ar[2], ar[1]+ar[3])
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.setCell(x, y, '/', style)
		}
	}
}

func (r *TerminalRenderer) drawPlayer(s *engine.Snapshot) {
	p := s.Player
	color := ColorPlayer
	if p.Dodging {
		color = ColorPlayerRoll
	} else if p.Invincible {
		// Blink while invincible
		if s.Tick%10 < 5 {
			color = ColorPlayerHurt
		}
	}

	x, y := r.cell(p.X+p.Width/2, p.Y+p.Height/2)
	r.setCell(x, y, '@', tcell.StyleDefault.Foreground(color).Bold(true))

	// Facing marker
	fx, fy := p.Facing.Vector()
	r.setCell(x+int(fx), y+int(fy), facingGlyph(p.Facing), tcell.StyleDefault.Foreground(color))
}

func facingGlyph(f components.Facing) rune {
	switch f {
	case components.FacingUp:
		return '^'
	case components.FacingDown:
		return 'v'
	case components.FacingLeft:
		return '<'
	default:
		return '>'
	}
}

func (r *TerminalRenderer) drawProjectiles(s *engine.Snapshot) {
	arrowStyle := tcell.StyleDefault.Foreground(ColorArrow)
	for _, a := range s.Arrows {
		x, y := r.cell(a.X, a.Y)
		glyph := '-'
		if a.DY != 0 && a.DX == 0 {
			glyph = '|'
		} else if a.DX != 0 && a.DY != 0 {
			if a.DX*a.DY > 0 {
				glyph = '\\'
			} else {
				glyph = '/'
			}
		}
		r.setCell(x, y, glyph, arrowStyle)
	}

	bombStyle := tcell.StyleDefault.Foreground(ColorBomb).Bold(true)
	for _, b := range s.Bombs {
		x, y := r.cell(b.X, b.Y)
		r.setCell(x, y, '●', bombStyle)
	}
}

func (r *TerminalRenderer) drawParticles(s *engine.Snapshot) {
	for _, p := range s.Particles {
		x, y := r.cell(p.X, p.Y)
		r.setCell(x, y, '*', tcell.StyleDefault.Foreground(ParticleColor(p.Color)))
	}
}

func (r *TerminalRenderer) drawTexts(s *engine.Snapshot) {
	style := tcell.StyleDefault.Foreground(ColorMessage)
	for _, t := range s.Texts {
		x, y := r.cell(t.X, t.Y)
		r.drawString(x, y, t.Text, style)
	}
}

func (r *TerminalRenderer) drawHUD(s *engine.Snapshot) {
	p := s.Player

	healthColor := ColorHealthFull
	if p.Health*3 < p.MaxHealth {
		healthColor = ColorHealthLow
	}
	r.drawBar(0, 0, 20, p.Health, p.MaxHealth, healthColor)
	r.drawString(22, 0, fmt.Sprintf("HP %d/%d", p.Health, p.MaxHealth),
		tcell.StyleDefault.Foreground(ColorHUDText))

	need := constants.ExpPerLevel
	r.drawBar(0, 1, 20, p.Exp, need, ColorExpBar)
	r.drawString(22, 1, fmt.Sprintf("LV %d", p.Level),
		tcell.StyleDefault.Foreground(ColorHUDText))

	status := fmt.Sprintf("WAVE %d  SCORE %d  KILLS %d  %s",
		s.Wave, s.Score, s.Kills, weaponLabel(p))
	r.drawString(r.width-len(status)-1, 0, status,
		tcell.StyleDefault.Foreground(ColorHUDText))
}

func weaponLabel(p engine.PlayerView) string {
	switch p.Weapon {
	case components.WeaponSword:
		return fmt.Sprintf("SWORD+%d", p.SwordLevel)
	case components.WeaponBow:
		return fmt.Sprintf("BOW+%d", p.ExtraArrows)
	case components.WeaponBomb:
		return fmt.Sprintf("BOMB+%d", p.BombLevel)
	default:
		return "UNARMED"
	}
}

func (r *TerminalRenderer) drawBar(x, y, width, value, max int, color tcell.Color) {
	if max <= 0 {
		max = 1
	}
	filled := value * width / max
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	fillStyle := tcell.StyleDefault.Foreground(color)
	emptyStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for i := 0; i < width; i++ {
		glyph := '░'
		style := emptyStyle
		if i < filled {
			glyph = '█'
			style = fillStyle
		}
		r.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawMessage(msg string) {
	style := tcell.StyleDefault.Foreground(ColorMessage).Bold(true)
	x := (r.width - len(msg)) / 2
	r.drawString(x, r.gameY+1, msg, style)
}

func (r *TerminalRenderer) drawGameOver(s *engine.Snapshot) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("SCORE %d   WAVE %d   KILLS %d", s.Score, s.Wave, s.Kills),
		"",
	}
	if len(s.HighScores) > 0 {
		lines = append(lines, "HIGH SCORES")
		for i, hs := range s.HighScores {
			secs := hs.Ticks / constants.TicksPerSecond
			lines = append(lines, fmt.Sprintf("%2d. %6d  wave %d  %d:%02d",
				i+1, hs.Score, hs.Wave, secs/60, secs%60))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "PRESS R TO RESTART, Q TO QUIT")

	style := tcell.StyleDefault.Foreground(ColorHUDText).Bold(true)
	startY := (r.height - len(lines)) / 2
	for i, line := range lines {
		x := (r.width - len(line)) / 2
		r.drawString(x, startY+i, line, style)
	}
}

func (r *TerminalRenderer) drawString(x, y int, str string, style tcell.Style) {
	for i, ch := range str {
		r.setCell(x+i, y, ch, style)
	}
}

// setCell clips to the screen bounds
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= r.width || y >= r.height {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}
