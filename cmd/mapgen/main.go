package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"

	"continent/internal/app"
	"continent/internal/gen/continent"
	"continent/internal/gen/voronoi"
	"continent/internal/mapgen"
	"continent/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides app.Overrides
	flag.Var(&overrides, "set", "tunable override in key=value form (repeatable)")
	pngPath := flag.String("png", "", "write the map as PNG to this path")
	svgPath := flag.String("svg", "", "write the map as SVG to this path")
	regions := flag.Bool("regions", false, "build the region overlay")
	roads := flag.Bool("roads", false, "draw the region network in SVG output (implies -regions)")
	fill := flag.Bool("fill", false, "colour PNG land cells by nearest region site")
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
	res := world.Result()
	fmt.Printf("seed %d: %dx%d, %d land cells (%.1f%%)\n",
		world.Config().Seed, res.Mask.W, res.Mask.H, res.LandPixels, res.Percent())

	var overlay voronoi.Result
	if *regions || *roads || *fill {
		overlay = world.BuildOverlay()
		net := world.Network()
		closed := 0
		for _, r := range overlay.Regions {
			if len(r.Polygon) > 0 {
				closed++
			}
		}
		fmt.Printf("regions: %d sites (target %d, %d attempts, min distance %.1f), %d closed, %d borders, %d hops from capital\n",
			len(overlay.Sites), world.Options().Count, overlay.Attempts, overlay.MinDist, closed, len(overlay.Segments), net.MaxHops())
	}

	if *pngPath != "" {
		var img image.Image = render.MaskImage(res.Mask)
		if *fill && len(overlay.Sites) > 0 {
			img = render.RegionImage(res.Mask, overlay.Sites)
		}
		if err := render.SavePNG(*pngPath, img); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *pngPath)
	}

	if *svgPath != "" {
		opts := render.SVGOptions{Scale: cfg.Scale, Borders: true, Sites: true}
		if *roads {
			opts.Roads = world.Network().Tree
		}
		if err := render.SaveSVG(*svgPath, res.Mask, overlay, opts); err != nil {
			log.Fatal(err)
		}
		fmt.Println("wrote", *svgPath)
	}
}
