package core

import "math/rand/v2"

// Stream is a seeded source of uniform floats in [0, 1).
type Stream interface {
	Next() float64
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Next returns a uniform float in [0, 1).
func (r *RNG) Next() float64 {
	return r.r.Float64()
}

// LCG is the small linear congruential generator the first version of the
// map generator used. It is kept so old seeds still reproduce their maps.
type LCG struct {
	state int64
}

const (
	lcgMul = 9301
	lcgInc = 49297
	lcgMod = 233280
)

// NewLCG seeds the legacy generator.
func NewLCG(seed int64) *LCG {
	s := seed % lcgMod
	if s < 0 {
		s += lcgMod
	}
	return &LCG{state: s}
}

// Next advances the generator and returns a float in [0, 1).
func (g *LCG) Next() float64 {
	g.state = (g.state*lcgMul + lcgInc) % lcgMod
	return float64(g.state) / lcgMod
}

// NewStream returns the named generator seeded with seed. "lcg" selects the
// legacy generator; anything else selects the PCG-backed RNG.
func NewStream(kind string, seed int64) Stream {
	if kind == "lcg" {
		return NewLCG(seed)
	}
	return NewRNG(seed)
}
