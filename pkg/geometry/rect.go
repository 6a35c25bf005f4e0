package geometry

import "fmt"

// Rect is an axis-aligned rectangle in world coordinates (y grows upward).
// It is the shape of the viewport boundary handed to the simulation each
// tick, so it may change between ticks when the window is resized.
type Rect struct {
	Min Vector2D // bottom-left corner
	Max Vector2D // top-right corner
}

// NewRect builds a rectangle from two opposite corners.
func NewRect(min, max Vector2D) Rect {
	return Rect{Min: min, Max: max}
}

// CenteredRect builds a w×h rectangle centered on the origin, matching the
// window rectangle convention used by the renderer.
func CenteredRect(w, h float64) Rect {
	return Rect{
		Min: Vector2D{X: -w / 2, Y: -h / 2},
		Max: Vector2D{X: w / 2, Y: h / 2},
	}
}

func (r Rect) Left() float64   { return r.Min.X }
func (r Rect) Right() float64  { return r.Max.X }
func (r Rect) Bottom() float64 { return r.Min.Y }
func (r Rect) Top() float64    { return r.Max.Y }

// W returns the rectangle width.
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the rectangle height.
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside the rectangle (edges included).
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) String() string {
	return fmt.Sprintf("[%s %s]", r.Min, r.Max)
}
