// Package perlin registers a classic Perlin noise backend.
package perlin

import (
	"continent/internal/core"

	goperlin "github.com/aquilax/go-perlin"
)

// Name identifies the backend in the noise registry.
const Name = "perlin"

const (
	alpha   = 2
	beta    = 2
	octaves = 3
)

// Source adapts go-perlin to core.Noise.
type Source struct {
	p *goperlin.Perlin
}

// New returns a Perlin source seeded with seed.
func New(seed int64) core.Noise {
	return &Source{p: goperlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Eval2 samples the noise at (x, y), clamped to [-1, 1].
func (s *Source) Eval2(x, y float64) float64 {
	v := s.p.Noise2D(x, y)
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

func init() {
	core.RegisterNoise(Name, New)
}
