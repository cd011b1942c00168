//go:build ebiten

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"continent/internal/app"
	"continent/internal/gen/continent"
	"continent/internal/gen/voronoi"
	"continent/internal/mapgen"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides app.Overrides
	flag.Var(&overrides, "set", "tunable override in key=value form (repeatable)")
	verbose := flag.Bool("v", false, "log generation details to stderr")
	flag.Parse()

	if *verbose {
		mapgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	kv := overrides.Map(cfg)
	world := mapgen.NewWorld(continent.FromMap(kv), voronoi.FromMap(kv))
	if err := world.Err(); err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg.Scale, cfg.HUDWidth)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("continent")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
