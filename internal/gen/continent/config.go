package continent

import (
	"strconv"

	"continent/internal/core"

	"github.com/pkg/errors"
)

// Params holds the shaping, noise and erosion tunables of one generation run.
type Params struct {
	IslandSize        float64
	BlobComplexity    int
	NoiseScale        float64
	NoiseStrength     float64
	ErosionIterations int
	VerticalStretch   float64
	ScaleFactor       float64
}

// Config controls the map dimensions, seeding and generator tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	// RNG selects the random stream: "pcg" (default) or "lcg".
	RNG string

	// Noise names the registered noise backend.
	Noise string

	Params Params
}

// DefaultParams returns tunables that produce one large island.
func DefaultParams() Params {
	return Params{
		IslandSize:        0.8,
		BlobComplexity:    12,
		NoiseScale:        4,
		NoiseStrength:     0.35,
		ErosionIterations: 2,
		VerticalStretch:   1.4,
		ScaleFactor:       1,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   1337,
		RNG:    "pcg",
		Noise:  core.DefaultNoise,
		Params: DefaultParams(),
	}
}

// Validate reports configurations the generator cannot run with.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("continent: invalid dimensions %dx%d", c.Width, c.Height)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rng"]; ok && (v == "pcg" || v == "lcg") {
		c.RNG = v
	}
	if v, ok := cfg["noise"]; ok && v != "" {
		c.Noise = v
	}
	ApplyParam(&c.Params, cfg)
	return c
}

// ApplyParam overrides the tunables present in kv, ignoring unparsable or
// out-of-range values.
func ApplyParam(p *Params, kv map[string]string) {
	if v, ok := kv["island_size"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.IslandSize = parsed
		}
	}
	if v, ok := kv["blob_complexity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.BlobComplexity = parsed
		}
	}
	if v, ok := kv["noise_scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.NoiseScale = parsed
		}
	}
	if v, ok := kv["noise_strength"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			p.NoiseStrength = parsed
		}
	}
	if v, ok := kv["erosion_iterations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.ErosionIterations = parsed
		}
	}
	if v, ok := kv["vertical_stretch"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.VerticalStretch = parsed
		}
	}
	if v, ok := kv["scale_factor"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			p.ScaleFactor = parsed
		}
	}
}
