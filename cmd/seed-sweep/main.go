package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"continent/internal/app"
	"continent/internal/gen/continent"
	"continent/internal/gen/voronoi"
	"continent/internal/mapgen"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides app.Overrides
	flag.Var(&overrides, "set", "tunable override in key=value form (repeatable)")
	runs := flag.Int("runs", 32, "number of consecutive seeds to generate")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "print this many seeds with the most land")
	verbose := flag.Bool("v", false, "log warnings from the generator")
	flag.Parse()

	if *verbose {
		mapgen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))
	}

	kv := overrides.Map(cfg)
	base := continent.FromMap(kv)
	opts := voronoi.FromMap(kv)

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = base.Seed + int64(i)
	}

	fmt.Printf("Sweeping %d seeds from %d (%d workers, %dx%d)\n", len(seeds), base.Seed, *workers, base.Width, base.Height)
	start := time.Now()
	results := mapgen.SeedSweep(base, opts, seeds, *workers)
	elapsed := time.Since(start)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("seed %d failed: %v\n", r.Seed, r.Err)
		}
	}

	s := mapgen.Summarize(results, opts.Count)
	fmt.Printf("Completed %d runs (%d failed) in %s\n", s.Runs, s.Failed, elapsed.Round(time.Millisecond))
	if s.Runs == 0 {
		return
	}
	fmt.Printf("Land: mean %.1f%%, min %.1f%%, max %.1f%%\n", s.MeanLand*100, s.MinLand*100, s.MaxLand*100)
	fmt.Printf("Sites: mean %.1f for target %d, %d/%d runs within 20%%\n", s.MeanSites, opts.Count, s.InBand, s.Runs)

	ok := results[:0:0]
	for _, r := range results {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}
	sort.Slice(ok, func(i, j int) bool { return ok[i].LandFraction > ok[j].LandFraction })
	fmt.Println("\nMost land:")
	for i := 0; i < *top && i < len(ok); i++ {
		r := ok[i]
		fmt.Printf("  seed %d: %.1f%% land, %d sites, %d closed regions, %d hops\n",
			r.Seed, r.LandFraction*100, r.Sites, r.Regions, r.MaxHops)
	}
}
