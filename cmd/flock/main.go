package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file (defaults used when empty)")
	schemaFile := flag.String("schema", "flock.schema.json", "path to the config JSON-Schema")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := golog.InfoLevel
	if *verbose {
		level = golog.DebugLevel
	}
	logger := golog.New(level, os.Stdout)

	cfg := flock.DefaultConfig()
	if *configFile != "" {
		loaded, err := flock.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			logger.Fatal(err)
		}
		cfg = loaded
		logger.Infof("loaded config from %s", *configFile)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Flock: Boundary Reflection Boids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game := simulation.GetNewGame(cfg, logger)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal(err)
	}
}
