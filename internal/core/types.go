package core

import "sort"

// Size describes the dimensions of a map grid.
type Size struct {
	W int
	H int
}

// Noise is a deterministic 2-D coherent noise function returning values in [-1, 1].
type Noise interface {
	Eval2(x, y float64) float64
}

// NoiseFactory constructs a seeded Noise source.
type NoiseFactory func(seed int64) Noise

// DefaultNoise names the backend used when none (or an unknown one) is requested.
const DefaultNoise = "simplex"

var noises = map[string]NoiseFactory{}

// RegisterNoise adds a noise backend under the provided name.
func RegisterNoise(name string, f NoiseFactory) {
	if name == "" || f == nil {
		return
	}
	noises[name] = f
}

// Noises exposes the registry of available noise backends.
func Noises() map[string]NoiseFactory {
	return noises
}

// NoiseNames lists the registered backends in sorted order.
func NoiseNames() []string {
	names := make([]string, 0, len(noises))
	for name := range noises {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewNoise builds a seeded source from the named backend, falling back to
// DefaultNoise. It returns nil when no backend is registered at all.
func NewNoise(name string, seed int64) Noise {
	if f, ok := noises[name]; ok {
		return f(seed)
	}
	if f, ok := noises[DefaultNoise]; ok {
		return f(seed)
	}
	return nil
}
