package mapgen

import (
	"runtime"
	"sync"

	"continent/internal/gen/continent"
	"continent/internal/gen/voronoi"

	"gonum.org/v1/gonum/floats"
)

// SweepResult records one seed of a sweep.
type SweepResult struct {
	Seed         int64
	LandPixels   int
	LandFraction float64
	Sites        int
	Regions      int // regions with a closed polygon
	Segments     int
	Attempts     int
	MaxHops      int
	Err          error
}

type sweepJob struct {
	index int
	seed  int64
}

// SeedSweep generates a continent and overlay for every seed on a pool of
// workers. Results keep the order of seeds. workers <= 0 uses one worker per
// CPU.
func SeedSweep(cfg continent.Config, opts voronoi.Options, seeds []int64, workers int) []SweepResult {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]SweepResult, len(seeds))
	jobs := make(chan sweepJob)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				results[job.index] = runSeed(cfg, opts, job.seed)
			}
		}()
	}

	for i, seed := range seeds {
		jobs <- sweepJob{index: i, seed: seed}
	}
	close(jobs)
	wg.Wait()
	return results
}

func runSeed(base continent.Config, opts voronoi.Options, seed int64) SweepResult {
	cfg := base
	cfg.Seed = seed
	out := SweepResult{Seed: seed}

	res, err := Generate(cfg)
	if err != nil {
		out.Err = err
		return out
	}
	out.LandPixels = res.LandPixels
	out.LandFraction = res.LandFraction

	overlay := buildOverlay(res.Mask, opts, cfg.RNG, cfg.Noise, seed)
	out.Sites = len(overlay.Sites)
	out.Segments = len(overlay.Segments)
	out.Attempts = overlay.Attempts
	for _, r := range overlay.Regions {
		if len(r.Polygon) > 0 {
			out.Regions++
		}
	}
	out.MaxHops = Connect(overlay, 0).MaxHops()
	return out
}

// SweepSummary aggregates the successful runs of a sweep.
type SweepSummary struct {
	Runs      int
	Failed    int
	MeanLand  float64
	MinLand   float64
	MaxLand   float64
	MeanSites float64

	// InBand counts runs whose site count landed within ±20% of target.
	InBand int
}

// Summarize aggregates sweep results against the requested region count.
func Summarize(results []SweepResult, target int) SweepSummary {
	var s SweepSummary
	var land, sites []float64
	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		land = append(land, r.LandFraction)
		sites = append(sites, float64(r.Sites))
		if t := float64(target); float64(r.Sites) >= 0.8*t && float64(r.Sites) <= 1.2*t {
			s.InBand++
		}
	}
	s.Runs = len(land)
	if s.Runs == 0 {
		return s
	}
	n := float64(s.Runs)
	s.MeanLand = floats.Sum(land) / n
	s.MinLand = floats.Min(land)
	s.MaxLand = floats.Max(land)
	s.MeanSites = floats.Sum(sites) / n
	return s
}
