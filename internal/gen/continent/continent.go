// Package continent shapes a single landmass on a grid: metaball field,
// edge-aware noise, largest-component extraction and coastline erosion.
package continent

import (
	"math"

	"continent/internal/core"
)

// Result is the output of one generation run.
type Result struct {
	Mask         *core.LandMask
	LandPixels   int
	LandFraction float64

	// Metaballs records how many balls shaped the field.
	Metaballs int

	// PreErosion is the land pixel count before erosion ran.
	PreErosion int

	// Eroded is the number of cells erosion removed, including fragments
	// dropped when erosion split the landmass.
	Eroded int
}

// Percent reports the land coverage as a percentage rounded to one decimal.
func (r Result) Percent() float64 {
	return math.Round(r.LandFraction*1000) / 10
}

// Generate runs the full shaping pipeline with the RNG and noise backends
// named in cfg, all seeded from cfg.Seed.
func Generate(cfg Config) Result {
	rng := core.NewStream(cfg.RNG, cfg.Seed)
	return GenerateWith(cfg, rng, NewSources(cfg.Noise, cfg.Seed))
}

// GenerateWith runs the shaping pipeline with explicit randomness. cfg must
// have positive dimensions; see Config.Validate.
func GenerateWith(cfg Config, rng core.Stream, src Sources) Result {
	w, h := cfg.Width, cfg.Height
	p := cfg.Params
	field := core.NewScalarField(w, h)
	mask := core.NewLandMask(w, h)

	radius := float64(min(w, h)) * p.IslandSize * 0.4
	balls := BuildShape(field, float64(w)/2, float64(h)/2, radius, p.BlobComplexity, p.VerticalStretch, p.ScaleFactor, rng)

	ApplyEdgeNoise(field, mask, p.NoiseScale, p.NoiseStrength, p.ScaleFactor, src)

	before := mask.Count()
	Erode(mask, p.ErosionIterations)
	land := KeepLargest(mask)

	res := Result{
		Mask:       mask,
		LandPixels: land,
		Metaballs:  len(balls),
		PreErosion: before,
		Eroded:     before - land,
	}
	if total := w * h; total > 0 {
		res.LandFraction = float64(land) / float64(total)
	}
	return res
}
