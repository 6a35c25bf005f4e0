package simulation

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

// markerRadius draws each boid as a 20x20 circular marker.
const markerRadius = 10.0

// Game drives the flock with one update per tick and renders the result.
// It is the external clock and render sink around the core: the flock is
// mutated only inside Update, and Draw only reads it, so ticks and frames
// strictly alternate on the single ebiten goroutine.
type Game struct {
	flock  *flock.Flock
	cfg    *flock.Config
	logger golog.Logger

	// UI controls (presentation only, the Config stays immutable)
	panel               *ui.Panel
	widgetPaused        *ui.Checkbox
	widgetShowProtected *ui.Checkbox
	widgetShowVisual    *ui.Checkbox
	widgetTPS           *ui.Slider

	// Current outside size; the viewport rectangle is re-derived from it
	// every tick so window resizes reach the simulation immediately.
	viewW, viewH int

	// Timing instrumentation (exponential moving averages, in ms)
	updateAvg float64
	drawAvg   float64

	tickCount   int
	lastLogTime time.Time
}

// GetNewGame builds the game around a fresh flock and wires the UI panel.
func GetNewGame(cfg *flock.Config, logger golog.Logger) *Game {
	g := &Game{
		flock:       flock.New(cfg.NumBoids, cfg),
		cfg:         cfg,
		logger:      logger,
		viewW:       int(cfg.WorldWidth),
		viewH:       int(cfg.WorldHeight),
		lastLogTime: time.Now(),
	}

	panel := ui.NewPanel("Simulation", 10, 10, 210, 200)
	g.widgetPaused = panel.AddCheckbox("Pause", false)
	g.widgetShowProtected = panel.AddCheckbox("Show Protected Range", false)
	g.widgetShowVisual = panel.AddCheckbox("Show Visual Range", false)
	g.widgetTPS = panel.AddSlider("Target TPS", 10, 120, float64(ebiten.TPS()))
	panel.AddButton("Reset Flock", func() {
		g.flock = flock.New(cfg.NumBoids, cfg)
		g.logger.Info("flock reset")
	})
	g.panel = panel

	return g
}

// Update runs exactly one simulation step against the current viewport.
func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	g.panel.Update()
	ebiten.SetTPS(int(g.widgetTPS.Value))

	if !g.widgetPaused.Value {
		view := geometry.CenteredRect(float64(g.viewW), float64(g.viewH))
		g.flock.Update(view)
		g.tickCount++
	}

	g.logBenchmarks()
	return nil
}

// logBenchmarks emits one telemetry line per second.
func (g *Game) logBenchmarks() {
	if time.Since(g.lastLogTime) < time.Second {
		return
	}
	g.logger.Infof("ticks: %d/sec | boids: %d | update avg: %.2fms | draw avg: %.2fms",
		g.tickCount, len(g.flock.Boids), g.updateAvg, g.drawAvg)
	g.tickCount = 0
	g.lastLogTime = time.Now()
}

// Draw renders every boid as a filled black circle on a white canvas.
// World coordinates are origin-centered with y up; the screen has y down,
// so the transform flips the vertical axis.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.White)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	for _, b := range g.flock.Boids {
		sx := float32(w/2 + b.Pos.X)
		sy := float32(h/2 - b.Pos.Y)

		if g.widgetShowProtected.Value {
			vector.StrokeCircle(screen, sx, sy, float32(g.cfg.ProtectedRange),
				1, color.RGBA{R: 255, G: 100, B: 100, A: 255}, true)
		}
		if g.widgetShowVisual.Value {
			vector.StrokeCircle(screen, sx, sy, float32(g.cfg.VisualRange),
				1, color.RGBA{R: 100, G: 100, B: 255, A: 255}, true)
		}

		vector.FillCircle(screen, sx, sy, markerRadius, color.Black, true)
	}

	g.panel.Draw(screen)

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(), ebiten.ActualTPS(), g.updateAvg, g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, int(w)-120, 10)
}

// Layout reports the outside size so resizes change the viewport boundary.
func (g *Game) Layout(w, h int) (int, int) {
	g.viewW, g.viewH = w, h
	return w, h
}
