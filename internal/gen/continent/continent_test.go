package continent

import (
	"math"
	"slices"
	"testing"

	"continent/internal/core"
)

func maskFrom(w, h int, land ...core.Cell) *core.LandMask {
	m := core.NewLandMask(w, h)
	for _, c := range land {
		m.Set(c.X, c.Y, true)
	}
	return m
}

func block(x0, y0, x1, y1 int) []core.Cell {
	var cells []core.Cell
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cells = append(cells, core.Cell{X: x, Y: y})
		}
	}
	return cells
}

func TestLargestComponentSquare(t *testing.T) {
	mask := maskFrom(4, 4, block(1, 1, 2, 2)...)
	got := LargestComponent(mask)
	if len(got) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(got))
	}
	for _, c := range got {
		if c.X < 1 || c.X > 2 || c.Y < 1 || c.Y > 2 {
			t.Fatalf("unexpected cell %+v in component", c)
		}
	}
}

func TestComponentsIgnoreDiagonals(t *testing.T) {
	mask := maskFrom(3, 3, core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 1}, core.Cell{X: 2, Y: 2})
	if got := len(Components(mask)); got != 3 {
		t.Fatalf("diagonal cells must not connect, got %d components", got)
	}
}

func TestLargestComponentTieGoesToFirstDiscovered(t *testing.T) {
	cells := append(block(3, 0, 4, 0), block(0, 3, 1, 3)...)
	mask := maskFrom(5, 5, cells...)
	got := LargestComponent(mask)
	if len(got) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(got))
	}
	for _, c := range got {
		if c.Y != 0 {
			t.Fatalf("expected the top component to win the tie, got %+v", got)
		}
	}
}

func TestLargestComponentEmptyMask(t *testing.T) {
	mask := core.NewLandMask(6, 4)
	if got := LargestComponent(mask); len(got) != 0 {
		t.Fatalf("expected empty component, got %d cells", len(got))
	}
	if kept := KeepLargest(mask); kept != 0 || mask.Count() != 0 {
		t.Fatalf("expected empty mask to stay empty, kept %d", kept)
	}
}

func TestKeepLargestDropsFragments(t *testing.T) {
	cells := append(block(0, 0, 2, 2), block(5, 5, 6, 6)...)
	mask := maskFrom(8, 8, cells...)
	if kept := KeepLargest(mask); kept != 9 {
		t.Fatalf("expected 9 cells kept, got %d", kept)
	}
	if mask.At(5, 5) {
		t.Fatal("fragment survived")
	}
	if len(Components(mask)) != 1 {
		t.Fatal("expected a single component")
	}
}

func TestErodeRemovesBlockCorners(t *testing.T) {
	mask := maskFrom(7, 7, block(2, 2, 4, 4)...)
	removed := Erode(mask, 1)
	if removed != 4 {
		t.Fatalf("expected the 4 corners to erode, removed %d", removed)
	}
	for _, c := range []core.Cell{{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 2, Y: 4}, {X: 4, Y: 4}} {
		if mask.At(c.X, c.Y) {
			t.Fatalf("corner %+v should have eroded", c)
		}
	}
	for _, c := range []core.Cell{{X: 3, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 3, Y: 4}} {
		if !mask.At(c.X, c.Y) {
			t.Fatalf("cell %+v should remain", c)
		}
	}
}

func TestErodeAppliesIterationAfterScan(t *testing.T) {
	mask := maskFrom(7, 7, block(2, 2, 4, 4)...)
	// First iteration (threshold 5) strips the corners; the second (threshold
	// 4) sees the plus shape and removes all of it at once.
	if removed := Erode(mask, 2); removed != 9 {
		t.Fatalf("expected all 9 cells to erode, removed %d", removed)
	}
	if mask.Count() != 0 {
		t.Fatalf("expected empty mask, got %d cells", mask.Count())
	}
}

func TestErodeKeepsBorderAndIsolatedCells(t *testing.T) {
	mask := maskFrom(5, 5, core.Cell{X: 0, Y: 0}, core.Cell{X: 2, Y: 2})
	if removed := Erode(mask, 3); removed != 0 {
		t.Fatalf("expected no erosion, removed %d", removed)
	}
	if !mask.At(0, 0) || !mask.At(2, 2) {
		t.Fatal("border cell and isolated speck must survive")
	}
}

func TestErodeMonotonic(t *testing.T) {
	rng := core.NewRNG(11)
	for iterations := -1; iterations <= 4; iterations++ {
		mask := core.NewLandMask(24, 18)
		cells := mask.Cells()
		for i := range cells {
			cells[i] = rng.Next() < 0.6
		}
		before := append([]bool(nil), cells...)
		Erode(mask, iterations)
		if iterations <= 0 {
			if !slices.Equal(before, mask.Cells()) {
				t.Fatalf("iterations=%d must leave the mask unchanged", iterations)
			}
			continue
		}
		for i, land := range mask.Cells() {
			if land && !before[i] {
				t.Fatalf("iterations=%d created land at %d", iterations, i)
			}
		}
	}
}

func TestPlaceMetaballsCounts(t *testing.T) {
	cases := []struct {
		complexity int
		want       int
	}{
		{10, 10},
		{1, 1},
		{0, 0},
		{-3, 0},
	}
	for _, tc := range cases {
		balls := PlaceMetaballs(50, 50, 20, tc.complexity, 1.4, 1, core.NewRNG(3))
		if len(balls) != tc.want {
			t.Fatalf("complexity %d: expected %d balls, got %d", tc.complexity, tc.want, len(balls))
		}
		for _, b := range balls {
			if b.Radius <= 0 || b.Strength <= 0 {
				t.Fatalf("complexity %d: invalid ball %+v", tc.complexity, b)
			}
		}
	}
}

func TestPlaceMetaballsDeterministic(t *testing.T) {
	a := PlaceMetaballs(64, 64, 25, 12, 1.4, 1.2, core.NewLCG(99))
	b := PlaceMetaballs(64, 64, 25, 12, 1.4, 1.2, core.NewLCG(99))
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different metaballs")
	}
}

func TestAccumulateCubicFalloff(t *testing.T) {
	field := core.NewScalarField(6, 1)
	Accumulate(field, []Metaball{{X: 0, Y: 0, Radius: 2, Strength: 1}})

	if got := field.Values[0]; math.Abs(got-1) > 1e-12 {
		t.Fatalf("centre value %f, want 1", got)
	}
	if got := field.Values[2]; math.Abs(got-0.125) > 1e-12 {
		t.Fatalf("half-reach value %f, want 0.125", got)
	}
	if got := field.Values[4]; got != 0 {
		t.Fatalf("value at reach %f, want 0", got)
	}
}

func TestApplyEdgeNoiseZeroStrengthThresholds(t *testing.T) {
	field := core.NewScalarField(8, 8)
	for i := range field.Values {
		field.Values[i] = 0.2
	}
	for _, c := range block(1, 1, 3, 3) {
		field.Values[field.Index(c.X, c.Y)] = 1
	}
	for _, c := range block(6, 6, 7, 7) {
		field.Values[field.Index(c.X, c.Y)] = 1
	}
	mask := core.NewLandMask(8, 8)
	ApplyEdgeNoise(field, mask, 4, 0, 1, Sources{})

	if mask.Count() != 9 {
		t.Fatalf("expected only the larger blob (9 cells), got %d", mask.Count())
	}
	if !mask.At(2, 2) || mask.At(6, 6) {
		t.Fatal("wrong component kept")
	}
}

func TestGenerateSingleDeterministicLandmass(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 96
	cfg.Height = 80
	cfg.Seed = 5

	first := Generate(cfg)
	second := Generate(cfg)

	if first.LandPixels == 0 {
		t.Fatal("expected land")
	}
	if first.LandPixels != first.Mask.Count() {
		t.Fatalf("land pixel count %d disagrees with mask %d", first.LandPixels, first.Mask.Count())
	}
	if got := len(Components(first.Mask)); got != 1 {
		t.Fatalf("expected exactly one landmass, got %d", got)
	}
	if first.LandPixels > first.PreErosion {
		t.Fatal("erosion grew the landmass")
	}
	if !slices.Equal(first.Mask.Cells(), second.Mask.Cells()) {
		t.Fatal("same seed produced different masks")
	}
	if want := float64(first.LandPixels) / float64(96*80); math.Abs(first.LandFraction-want) > 1e-12 {
		t.Fatalf("land fraction %f, want %f", first.LandFraction, want)
	}

	cfg.Seed = 6
	other := Generate(cfg)
	if slices.Equal(first.Mask.Cells(), other.Mask.Cells()) {
		t.Fatal("different seeds should produce different masks")
	}
}

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                  "120",
		"h":                  "-4",
		"seed":               "77",
		"rng":                "lcg",
		"noise":              "perlin",
		"island_size":        "0.5",
		"blob_complexity":    "x",
		"erosion_iterations": "5",
		"scale_factor":       "0",
	})
	def := DefaultConfig()
	if cfg.Width != 120 || cfg.Height != def.Height {
		t.Fatalf("unexpected dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Seed != 77 || cfg.RNG != "lcg" || cfg.Noise != "perlin" {
		t.Fatalf("unexpected seeding %+v", cfg)
	}
	if cfg.Params.IslandSize != 0.5 || cfg.Params.ErosionIterations != 5 {
		t.Fatalf("overrides not applied: %+v", cfg.Params)
	}
	if cfg.Params.BlobComplexity != def.Params.BlobComplexity || cfg.Params.ScaleFactor != def.Params.ScaleFactor {
		t.Fatalf("invalid overrides must be ignored: %+v", cfg.Params)
	}
}

func TestValidateRejectsEmptyGrid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	cfg.Height = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero height")
	}
}

type flatNoise float64

func (f flatNoise) Eval2(float64, float64) float64 { return float64(f) }

func TestApplyEdgeNoiseBlend(t *testing.T) {
	field := core.NewScalarField(3, 1)
	copy(field.Values, []float64{1, 0.5, 0})
	mask := core.NewLandMask(3, 1)
	src := Sources{Interior: flatNoise(1), Edge: flatNoise(-1), Detail: flatNoise(0)}
	ApplyEdgeNoise(field, mask, 4, 0.5, 1, src)

	// Interior: 4 octaves sum to 1.875 of 2.075, remapped to [0,1], blended at 0.5*0.7.
	interior := 0.65 + 0.35*(1.875/2.075+1)*0.5
	// Edge: 5 octaves sum to -1.9375 of 2.1375, blended at 0.5.
	edge := 0.25 + 0.25*(-1.9375/2.1375+1)*0.5
	want := []float64{interior, edge, 0}
	for i, w := range want {
		if math.Abs(field.Values[i]-w) > 1e-12 {
			t.Fatalf("value %d = %.15f, want %.15f", i, field.Values[i], w)
		}
	}
	if math.Abs(want[0]-0.9831325301204819) > 1e-12 || math.Abs(want[1]-0.26169590643274854) > 1e-12 {
		t.Fatalf("reference blend drifted: %v", want)
	}
	if !mask.At(0, 0) || mask.At(1, 0) || mask.At(2, 0) {
		t.Fatalf("threshold at 0.35 gave %v", mask.Cells())
	}
}

func TestNewSourcesAlwaysHasBackend(t *testing.T) {
	for _, name := range []string{"", "missing", core.DefaultNoise} {
		src := NewSources(name, 7)
		if src.Interior == nil || src.Detail == nil || src.Edge == nil {
			t.Fatalf("backend %q left a nil noise source: %+v", name, src)
		}
	}
}

func TestGenerateAppliesNoise(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 96
	cfg.Height = 80
	cfg.Params.ErosionIterations = 0
	noisy := Generate(cfg)

	cfg.Params.NoiseStrength = 0
	smooth := Generate(cfg)
	if slices.Equal(noisy.Mask.Cells(), smooth.Mask.Cells()) {
		t.Fatal("noise strength had no effect on the coastline")
	}
}
