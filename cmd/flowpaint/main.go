//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"flowpaint/internal/app"
	"flowpaint/internal/sims/fluid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := fluid.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height
	simCfg.Seed = cfg.Seed

	sim := fluid.NewWithConfig(simCfg)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg)
	size := sim.Size()

	// The update loop runs at 60 Hz; the -tps flag throttles solver steps
	// inside it, so rendering stays smooth at low simulation rates.
	ebiten.SetWindowTitle("flowpaint")
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
