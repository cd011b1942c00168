// Package mapgen wires the generation stages into the pipeline used by the
// viewer and the command line tools.
package mapgen

import (
	"continent/internal/core"
	"continent/internal/gen/continent"
	"continent/internal/gen/voronoi"
	"continent/internal/graph"
	_ "continent/internal/noise/perlin"
	_ "continent/internal/noise/simplex"

	"github.com/pkg/errors"
)

// JitterSeedOffset separates the segment jitter noise from the continent
// noise sources of the same seed.
const JitterSeedOffset = 3000

// BuildContinent shapes a continent on a width×height grid with the default
// random stream and noise backend.
func BuildContinent(width, height int, params continent.Params, seed int64) (continent.Result, error) {
	cfg := continent.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	cfg.Params = params
	return Generate(cfg)
}

// Generate validates cfg and runs the shaping pipeline.
func Generate(cfg continent.Config) (continent.Result, error) {
	if err := cfg.Validate(); err != nil {
		Logger().Warn("rejected continent config", "err", err)
		return continent.Result{}, errors.Wrap(err, "mapgen: build continent")
	}
	res := continent.Generate(cfg)
	log := Logger()
	log.Debug("continent shaped",
		"seed", cfg.Seed,
		"metaballs", res.Metaballs,
		"pre_erosion", res.PreErosion,
		"eroded", res.Eroded,
	)
	log.Info("continent generated",
		"seed", cfg.Seed,
		"size", cfg.Width*cfg.Height,
		"land", res.LandPixels,
		"percent", res.Percent(),
	)
	return res, nil
}

// BuildVoronoiOverlay builds region borders over mask. The sampler stream is
// seeded with seed and the segment jitter noise with seed+JitterSeedOffset.
func BuildVoronoiOverlay(mask *core.LandMask, opts voronoi.Options, seed int64) voronoi.Result {
	return buildOverlay(mask, opts, "pcg", core.DefaultNoise, seed)
}

func buildOverlay(mask *core.LandMask, opts voronoi.Options, rngKind, noise string, seed int64) voronoi.Result {
	rng := core.NewStream(rngKind, seed)
	jitter := core.NewNoise(noise, seed+JitterSeedOffset)
	res := voronoi.Build(mask, opts, rng, jitter)

	log := Logger()
	log.Debug("sites sampled",
		"target", opts.Count,
		"sites", len(res.Sites),
		"attempts", res.Attempts,
		"min_dist", res.MinDist,
	)
	if res.Empty() {
		log.Warn("voronoi overlay empty", "seed", seed, "sites", len(res.Sites))
		return res
	}
	log.Info("voronoi overlay built",
		"seed", seed,
		"regions", len(res.Regions),
		"segments", len(res.Segments),
	)
	return res
}

// Network links the regions of an overlay: neighbour lists, a depth-first
// spanning tree rooted at the capital region and hop counts from it.
type Network struct {
	Capital   int
	Adjacency [][]int
	Reached   []bool
	Tree      [][2]int
	Hops      []int
}

// Connect derives the region network of overlay rooted at capital. An
// overlay without regions yields an empty network.
func Connect(overlay voronoi.Result, capital int) Network {
	n := len(overlay.Sites)
	if n == 0 || len(overlay.Triangles) == 0 {
		return Network{Capital: -1}
	}
	if capital < 0 || capital >= n {
		capital = 0
	}
	adj := graph.Adjacency(overlay.Triangles, n)
	reached, tree := graph.DFSConnect(adj, capital)
	return Network{
		Capital:   capital,
		Adjacency: adj,
		Reached:   reached,
		Tree:      tree,
		Hops:      graph.Distances(adj, []int{capital}),
	}
}

// MaxHops returns the largest finite hop count in the network.
func (n Network) MaxHops() int {
	best := 0
	for _, h := range n.Hops {
		best = max(best, h)
	}
	return best
}
