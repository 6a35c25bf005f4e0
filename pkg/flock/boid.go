package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// Boid represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds and related group motion.
// https://en.wikipedia.org/wiki/Boids
// Fields are exported so the renderer can read them; only this package
// writes them.
type Boid struct {
	Pos  geometry.Vector2D
	Vel  geometry.Vector2D // per-axis speed magnitudes, sign comes from DirX/DirY
	DirX DirectionX
	DirY DirectionY
}

// Separate accumulates a repulsion offset from every peer in positions that
// sits within ProtectedRange on either axis, then applies it directly to
// the boid's position scaled by AvoidFactor. self is the boid's own index
// in the snapshot and is skipped.
//
// The proximity trigger is an inclusive OR over independent per-axis
// distance checks, not a Euclidean radius: the trigger region is a cross
// of two infinite bands. Both components accumulate once either axis
// trips. The offset nudges position, not velocity.
func (b *Boid) Separate(positions []geometry.Vector2D, self int, avoidFactor, protectedRange float64) {
	closeDx, closeDy := 0.0, 0.0
	for i, p := range positions {
		if i == self {
			continue
		}
		dx := b.Pos.X - p.X
		dy := b.Pos.Y - p.Y
		if math.Abs(dx) < protectedRange || math.Abs(dy) < protectedRange {
			closeDx += dx
			closeDy += dy
		}
	}
	b.Pos.X += closeDx * avoidFactor
	b.Pos.Y += closeDy * avoidFactor
}

// ClampSpeed caps each velocity axis at maxSpeed. There is deliberately no
// lower bound: MinSpeed is configured but not enforced here.
func (b *Boid) ClampSpeed(maxSpeed float64) {
	if b.Vel.X > maxSpeed {
		b.Vel.X = maxSpeed
	}
	if b.Vel.Y > maxSpeed {
		b.Vel.Y = maxSpeed
	}
}

// Reflect runs both direction state machines against the viewport edges.
func (b *Boid) Reflect(view geometry.Rect) {
	b.DirX = b.DirX.Next(b.Pos.X, view)
	b.DirY = b.DirY.Next(b.Pos.Y, view)
}

// Advance moves the boid one step along its current direction flags.
func (b *Boid) Advance() {
	b.Pos.X += b.DirX.Sign() * b.Vel.X
	b.Pos.Y += b.DirY.Sign() * b.Vel.Y
}
