package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= geometry.Epsilon
}

// bigView is a viewport large enough that no test boid ever reaches an
// edge margin, so boundary reflection stays out of the way.
var bigView = geometry.CenteredRect(2000, 2000)

func TestNew_StaggeredPlacement(t *testing.T) {
	f := New(10, DefaultConfig())

	if len(f.Boids) != 10 {
		t.Fatalf("expected 10 boids, got %d", len(f.Boids))
	}

	for i, b := range f.Boids {
		wantX := -100 + float64(i)*10
		wantY := 100 + float64(i)*30
		if !floatEquals(b.Pos.X, wantX) || !floatEquals(b.Pos.Y, wantY) {
			t.Errorf("boid %d at %s; want (%.0f, %.0f)", i, b.Pos, wantX, wantY)
		}
		if !b.Vel.Eq(geometry.Vector2D{X: 4, Y: 3}) {
			t.Errorf("boid %d velocity %s; want (4, 3)", i, b.Vel)
		}
		if b.DirX != Right || b.DirY != Top {
			t.Errorf("boid %d directions %s/%s; want Right/Top", i, b.DirX, b.DirY)
		}
	}
}

func TestNew_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := New(10, cfg)
	b := New(10, cfg)

	for i := range a.Boids {
		if !a.Boids[i].Pos.Eq(b.Boids[i].Pos) || !a.Boids[i].Vel.Eq(b.Boids[i].Vel) {
			t.Errorf("boid %d differs between identical constructions: %s vs %s",
				i, a.Boids[i].Pos, b.Boids[i].Pos)
		}
	}
}

func TestNew_ZeroCount(t *testing.T) {
	f := New(0, DefaultConfig())
	if len(f.Boids) != 0 {
		t.Fatalf("expected empty flock, got %d boids", len(f.Boids))
	}
	f.Update(bigView) // must not panic
}

func TestSeparate_SelfExclusion(t *testing.T) {
	b := &Boid{Pos: geometry.Vector2D{X: 7, Y: -3}}
	snapshot := []geometry.Vector2D{b.Pos}

	b.Separate(snapshot, 0, 0.005, 15)

	if !b.Pos.Eq(geometry.Vector2D{X: 7, Y: -3}) {
		t.Errorf("boid repelled by itself: moved to %s", b.Pos)
	}
}

func TestSeparate_PerAxisOrTrigger(t *testing.T) {
	// Peer is 5 apart on x (inside the 15 protected range) but 100 apart
	// on y (far outside). The inclusive OR must still trigger, and both
	// components accumulate once it does.
	b := &Boid{Pos: geometry.Vector2D{X: 0, Y: 0}}
	snapshot := []geometry.Vector2D{b.Pos, {X: 5, Y: 100}}

	b.Separate(snapshot, 0, 0.005, 15)

	if !floatEquals(b.Pos.X, -5*0.005) {
		t.Errorf("x after separation = %v; want %v", b.Pos.X, -5*0.005)
	}
	if !floatEquals(b.Pos.Y, -100*0.005) {
		t.Errorf("y after separation = %v; want %v", b.Pos.Y, -100*0.005)
	}
}

func TestSeparate_OutOfRange(t *testing.T) {
	// Both axes at or beyond the protected range: no accumulation.
	b := &Boid{Pos: geometry.Vector2D{X: 0, Y: 0}}
	snapshot := []geometry.Vector2D{b.Pos, {X: 20, Y: 20}}

	b.Separate(snapshot, 0, 0.005, 15)

	if !b.Pos.Eq(geometry.Vector2D{}) {
		t.Errorf("boid moved by out-of-range peer: %s", b.Pos)
	}
}

func TestUpdate_SnapshotIsolation(t *testing.T) {
	// Boid 1 must react to boid 0's pre-tick position even though boid 0
	// has already been nudged by the time boid 1 is processed.
	cfg := DefaultConfig()
	f := &Flock{
		Boids: []*Boid{
			{Pos: geometry.Vector2D{X: 0, Y: 0}, DirX: Right, DirY: Top},
			{Pos: geometry.Vector2D{X: 5, Y: 0}, DirX: Right, DirY: Top},
		},
		cfg: cfg,
	}

	f.Update(bigView)

	// From the snapshot, boid 1 sees boid 0 at x=0: offset 5 * AvoidFactor.
	want := 5 + 5*cfg.AvoidFactor
	if !floatEquals(f.Boids[1].Pos.X, want) {
		t.Errorf("boid 1 x = %v; want %v (processing order leaked into the tick)",
			f.Boids[1].Pos.X, want)
	}
}

func TestUpdate_SpeedClamp(t *testing.T) {
	cfg := DefaultConfig() // MaxSpeed 6, MinSpeed 3

	fast := &Flock{Boids: []*Boid{{Vel: geometry.Vector2D{X: 10, Y: 9}}}, cfg: cfg}
	fast.Update(bigView)
	if v := fast.Boids[0].Vel; v.X != 6 || v.Y != 6 {
		t.Errorf("velocity after clamp = %s; want (6, 6)", v)
	}

	// MinSpeed is configured but not enforced: a slow boid stays slow.
	slow := &Flock{Boids: []*Boid{{Vel: geometry.Vector2D{X: 1, Y: 2}}}, cfg: cfg}
	slow.Update(bigView)
	if v := slow.Boids[0].Vel; v.X != 1 || v.Y != 2 {
		t.Errorf("velocity below MinSpeed was altered: %s; want (1, 2)", v)
	}
}

func TestUpdate_BoundaryReflection(t *testing.T) {
	view := geometry.CenteredRect(800, 600) // right edge 400, trigger at 390
	f := &Flock{
		Boids: []*Boid{{
			Pos:  geometry.Vector2D{X: 395, Y: 0},
			Vel:  geometry.Vector2D{X: 4, Y: 3},
			DirX: Right,
			DirY: Top,
		}},
		cfg: DefaultConfig(),
	}
	b := f.Boids[0]

	f.Update(view)
	if b.DirX != Left {
		t.Fatalf("direction after edge tick = %s; want Left", b.DirX)
	}
	if !floatEquals(b.Pos.X, 391) {
		t.Errorf("x after edge tick = %v; want 391", b.Pos.X)
	}

	xBefore := b.Pos.X
	f.Update(view)
	if b.Pos.X >= xBefore {
		t.Errorf("x did not decrease on the tick after flipping: %v -> %v", xBefore, b.Pos.X)
	}
}

func TestUpdate_EndToEnd(t *testing.T) {
	// One tick with default parameters: every boid moves, nobody starts
	// near an edge so all direction flags stay Right/Top. The viewport is
	// sized so the highest spawn (y=370) stays clear of the top margin.
	cfg := DefaultConfig()
	f := New(10, cfg)

	initial := make([]geometry.Vector2D, len(f.Boids))
	for i, b := range f.Boids {
		initial[i] = b.Pos
	}

	f.Update(geometry.CenteredRect(1024, 768))

	for i, b := range f.Boids {
		if b.Pos.Eq(initial[i]) {
			t.Errorf("boid %d did not move from %s", i, initial[i])
		}
		if b.DirX != Right || b.DirY != Top {
			t.Errorf("boid %d flipped to %s/%s without boundary proximity", i, b.DirX, b.DirY)
		}
	}
}
