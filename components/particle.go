package components

// Particle color palette tags. The renderer maps these to terminal
// colors; the simulation only picks them.
const (
	ColorWhite uint8 = iota
	ColorYellow
	ColorOrange
	ColorRed
	ColorGreen
	ColorDarkGreen
	ColorBrown
	ColorGray
	ColorPurple
	ColorBlue
)

// Particle is a short-lived decorative effect. Particles never affect
// game logic; they exist so the renderer has something to draw and are
// advanced by the particle system to keep lifetimes tick-accurate.
type Particle struct {
	X, Y        float64
	DX, DY      float64
	Lifetime    int
	MaxLifetime int
	Size        int
	Color       uint8
}

// Advance moves the particle one tick with light gravity. Returns false
// when the particle has expired.
func (p *Particle) Advance() bool {
	p.X += p.DX
	p.Y += p.DY
	p.DY += 0.1
	p.Lifetime--
	return p.Lifetime > 0
}

// FloatingText is a rising score/notice label
type FloatingText struct {
	X, Y        float64
	Text        string
	Lifetime    int
	MaxLifetime int
	DY          float64
}

// NewFloatingText creates a label rising from (x, y)
func NewFloatingText(x, y float64, text string) *FloatingText {
	return &FloatingText{X: x, Y: y, Text: text, Lifetime: 45, MaxLifetime: 45, DY: -1.5}
}

// Advance moves the text one tick, slowing as it rises. Returns false
// when expired.
func (t *FloatingText) Advance() bool {
	t.Y += t.DY
	t.DY *= 0.95
	t.Lifetime--
	return t.Lifetime > 0
}
