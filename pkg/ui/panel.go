package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is the interface all panel widgets implement. Widgets draw their
// own labels; the panel only handles stacking and chrome.
type Widget interface {
	Update()
	Draw(screen *ebiten.Image)
	Height() float64
	SetPos(x, y float64)
}

// Panel stacks widgets vertically inside a titled box.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	widgets       []Widget

	BGColor     color.RGBA
	BorderColor color.RGBA
}

// NewPanel creates an empty panel at the given position.
func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title: title,
		X:     x, Y: y,
		Width: width, Height: height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSlider appends a slider to the panel and returns it.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.widgets = append(p.widgets, s)
	return s
}

// AddCheckbox appends a checkbox to the panel and returns it.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.widgets = append(p.widgets, c)
	return c
}

// AddButton appends a button to the panel and returns it.
func (p *Panel) AddButton(label string, onClick func()) *Button {
	b := NewButton(p.X+10, 0, label, onClick)
	p.widgets = append(p.widgets, b)
	return b
}

// layout repositions every widget below the title, top to bottom.
func (p *Panel) layout() {
	y := p.Y + 28
	for _, w := range p.widgets {
		// Sliders reserve label space above the track.
		if _, ok := w.(*Slider); ok {
			y += 16
		}
		w.SetPos(p.X+10, y)
		y += w.Height()
	}
}

// Update lays out and updates all widgets.
func (p *Panel) Update() {
	p.layout()
	for _, w := range p.widgets {
		w.Update()
	}
}

// Draw renders the panel chrome and every widget.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+6))

	for _, w := range p.widgets {
		w.Draw(screen)
	}
}
