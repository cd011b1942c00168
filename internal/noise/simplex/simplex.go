// Package simplex registers the OpenSimplex noise backend.
package simplex

import (
	"continent/internal/core"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Name identifies the backend in the noise registry.
const Name = "simplex"

// New returns an OpenSimplex source with output in [-1, 1].
func New(seed int64) core.Noise {
	return opensimplex.New(seed)
}

func init() {
	core.RegisterNoise(Name, New)
}
