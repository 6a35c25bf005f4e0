package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable button firing OnClick once per press.
type Button struct {
	Label   string
	X, Y    float64
	W, H    float64
	OnClick func()
	clicked bool
}

// NewButton creates a button with the default dimensions.
func NewButton(x, y float64, label string, onClick func()) *Button {
	return &Button{Label: label, X: x, Y: y, W: 120, H: 22, OnClick: onClick}
}

func (b *Button) over() bool {
	mx, my := ebiten.CursorPosition()
	return float64(mx) >= b.X && float64(mx) <= b.X+b.W &&
		float64(my) >= b.Y && float64(my) <= b.Y+b.H
}

// Update fires the callback on a fresh click inside the button.
func (b *Button) Update() {
	if b.over() && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if !b.clicked && b.OnClick != nil {
			b.OnClick()
			b.clicked = true
		}
	} else {
		b.clicked = false
	}
}

// Draw renders the button, highlighted while hovered.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := color.RGBA{R: 80, G: 120, B: 180, A: 255}
	if b.over() {
		bg = color.RGBA{R: 100, G: 150, B: 220, A: 255}
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
	ebitenutil.DebugPrintAt(screen, b.Label, int(b.X+8), int(b.Y+4))
}

// Height reports the vertical space the widget needs.
func (b *Button) Height() float64 { return b.H + 8 }

// SetPos moves the widget; the panel calls this while laying out.
func (b *Button) SetPos(x, y float64) { b.X, b.Y = x, y }
