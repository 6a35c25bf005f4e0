package flock

import "github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"

// Boids spawn staggered along a diagonal from spawnBase, all sharing the
// same initial velocity and directions (Right, Top).
var (
	spawnBase = geometry.Vector2D{X: -100, Y: 100}
	spawnStep = geometry.Vector2D{X: 10, Y: 30}
	spawnVel  = geometry.Vector2D{X: 4, Y: 3}
)

// Flock owns the ordered boid collection and the immutable parameter
// bundle. The order is stable; it only matters for excluding a boid from
// its own snapshot scan.
type Flock struct {
	Boids []*Boid
	cfg   *Config
}

// New creates a flock of n boids with deterministic staggered placement.
// Construction is total for any n >= 0 and involves no randomness: two
// calls with identical inputs produce identical flocks.
func New(n int, cfg *Config) *Flock {
	boids := make([]*Boid, n)
	for i := range boids {
		boids[i] = &Boid{
			Pos: geometry.Vector2D{
				X: spawnBase.X + float64(i)*spawnStep.X,
				Y: spawnBase.Y + float64(i)*spawnStep.Y,
			},
			Vel:  spawnVel,
			DirX: Right,
			DirY: Top,
		}
	}
	return &Flock{Boids: boids, cfg: cfg}
}

// Config returns the parameter bundle the flock was built with.
func (f *Flock) Config() *Config {
	return f.cfg
}

// Update advances the flock by exactly one time step against the given
// viewport boundary. Positions are snapshotted before any mutation so
// every boid reacts to its peers as they stood at the start of the tick,
// independent of processing order.
//
// Per boid the steps are: separation, speed clamp, boundary reflection,
// position integration. Separation is the only interaction rule evaluated;
// cohesion and alignment have configured factors but are not applied.
// TODO: wire CenteringFactor/MatchingFactor into a visual-range scan once
// the full three-rule model is scheduled.
func (f *Flock) Update(view geometry.Rect) {
	snapshot := make([]geometry.Vector2D, len(f.Boids))
	for i, b := range f.Boids {
		snapshot[i] = b.Pos
	}

	for i, b := range f.Boids {
		b.Separate(snapshot, i, f.cfg.AvoidFactor, f.cfg.ProtectedRange)
		b.ClampSpeed(f.cfg.MaxSpeed)
		b.Reflect(view)
		b.Advance()
	}
}
