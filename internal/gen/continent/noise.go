package continent

import (
	"math"

	"continent/internal/core"
	_ "continent/internal/noise/simplex"

	"gonum.org/v1/gonum/floats"
)

// Sources bundles the three independent noise inputs of the edge-aware pass.
type Sources struct {
	Interior core.Noise
	Detail   core.Noise
	Edge     core.Noise
}

// Seed offsets between the three noise sources of one run.
const (
	detailSeedOffset = 1000
	edgeSeedOffset   = 2000
)

// NewSources builds the three sources from the named backend. Unknown names
// fall back to core.DefaultNoise, which this package always links in.
func NewSources(backend string, seed int64) Sources {
	return Sources{
		Interior: core.NewNoise(backend, seed),
		Detail:   core.NewNoise(backend, seed+detailSeedOffset),
		Edge:     core.NewNoise(backend, seed+edgeSeedOffset),
	}
}

const (
	edgeThreshold = 0.6
	landThreshold = 0.35

	edgeOctaves        = 5
	edgeLacunarity     = 2.2
	interiorOctaves    = 4
	interiorLacunarity = 2.0
	detailAmplitude    = 0.2
	detailFrequency    = 4.0
	interiorDampen     = 0.7
)

func eval(n core.Noise, x, y float64) float64 {
	if n == nil {
		return 0
	}
	return n.Eval2(x, y)
}

// ApplyEdgeNoise perturbs field in place, coastal cells with isotropic noise
// and interior cells with vertically stretched noise, then thresholds it into
// mask and keeps only the largest 4-connected landmass.
func ApplyEdgeNoise(field *core.ScalarField, mask *core.LandMask, noiseScale, noiseStrength, scaleFactor float64, src Sources) {
	if len(field.Values) == 0 {
		return
	}
	maxField := floats.Max(field.Values)

	if scaleFactor <= 0 {
		scaleFactor = 1
	}
	adjusted := noiseScale / math.Sqrt(scaleFactor)
	spanX := float64(field.W) / adjusted
	spanY := float64(field.H) / adjusted

	for y := 0; y < field.H; y++ {
		for x := 0; x < field.W; x++ {
			idx := y*field.W + x
			value := field.Values[idx]
			if value <= 0 {
				continue
			}
			isEdge := value/maxField < edgeThreshold

			fx := float64(x)
			fy := float64(y)
			noiseValue, maxValue := 0.0, 0.0
			amplitude, frequency := 1.0, 1.0
			if isEdge {
				for i := 0; i < edgeOctaves; i++ {
					noiseValue += eval(src.Edge, fx*frequency/spanX, fy*frequency/spanY) * amplitude
					maxValue += amplitude
					amplitude *= 0.5
					frequency *= edgeLacunarity
				}
			} else {
				for i := 0; i < interiorOctaves; i++ {
					noiseValue += eval(src.Interior, fx*frequency/spanX, fy*frequency/spanY*0.5) * amplitude
					maxValue += amplitude
					amplitude *= 0.5
					frequency *= interiorLacunarity
				}
			}

			noiseValue += eval(src.Detail, fx*detailFrequency/spanX, fy*detailFrequency/spanY) * detailAmplitude
			maxValue += detailAmplitude

			noiseValue = (noiseValue/maxValue + 1) * 0.5

			strength := noiseStrength
			if !isEdge {
				strength *= interiorDampen
			}
			field.Values[idx] = value*(1-strength) + value*noiseValue*strength
		}
	}

	Threshold(field, mask, landThreshold)
	KeepLargest(mask)
}

// Threshold writes field > level into mask.
func Threshold(field *core.ScalarField, mask *core.LandMask, level float64) {
	cells := mask.Cells()
	for i, v := range field.Values {
		if i >= len(cells) {
			break
		}
		cells[i] = v > level
	}
}
