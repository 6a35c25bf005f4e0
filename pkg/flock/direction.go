package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// EdgeMargin is the distance from a viewport edge at which a boid flips
// its direction of travel on that axis.
const EdgeMargin = 10.0

// DirectionX is the horizontal travel direction of a boid.
// Direction is tracked separately from velocity: velocity holds per-axis
// speed magnitudes and the direction flag supplies the sign.
type DirectionX uint8

const (
	Right DirectionX = iota
	Left
)

// DirectionY is the vertical travel direction of a boid.
type DirectionY uint8

const (
	Top DirectionY = iota
	Bottom
)

// Next returns the horizontal direction after the boundary check at x.
// The checks are level-triggered and re-evaluated every tick; the right
// edge takes precedence over the left one.
func (d DirectionX) Next(x float64, view geometry.Rect) DirectionX {
	switch {
	case x >= view.Right()-EdgeMargin:
		return Left
	case x <= view.Left()+EdgeMargin:
		return Right
	}
	return d
}

// Sign converts the flag into the displacement sign for the x axis.
func (d DirectionX) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

func (d DirectionX) String() string {
	if d == Left {
		return "Left"
	}
	return "Right"
}

// Next returns the vertical direction after the boundary check at y.
// Top is the positive y edge of the viewport.
func (d DirectionY) Next(y float64, view geometry.Rect) DirectionY {
	switch {
	case y >= view.Top()-EdgeMargin:
		return Bottom
	case y <= view.Bottom()+EdgeMargin:
		return Top
	}
	return d
}

// Sign converts the flag into the displacement sign for the y axis.
func (d DirectionY) Sign() float64 {
	if d == Bottom {
		return -1
	}
	return 1
}

func (d DirectionY) String() string {
	if d == Bottom {
		return "Bottom"
	}
	return "Top"
}
