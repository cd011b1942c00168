package poisson

import (
	"math"
	"slices"
	"testing"

	"continent/internal/core"
)

func assertSpacing(t *testing.T, pts []core.Point, minDist float64) {
	t.Helper()
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y); d < minDist-1e-9 {
				t.Fatalf("points %d and %d only %f apart (min %f)", i, j, d, minDist)
			}
		}
	}
}

func TestSampleSpacingAndBounds(t *testing.T) {
	pts := Sample(200, 120, 15, 0, nil, core.NewRNG(4))
	if len(pts) < 20 {
		t.Fatalf("expected a dense sample, got %d points", len(pts))
	}
	assertSpacing(t, pts, 15)
	for _, p := range pts {
		if p.X < 0 || p.X >= 200 || p.Y < 0 || p.Y >= 120 {
			t.Fatalf("point %+v out of bounds", p)
		}
	}
}

func TestSampleRespectsMask(t *testing.T) {
	mask := core.NewLandMask(100, 100)
	for y := 0; y < 100; y++ {
		for x := 0; x < 40; x++ {
			mask.Set(x, y, true)
		}
	}
	pts := Sample(100, 100, 8, 30, MaskAccept(mask), core.NewLCG(21))
	if len(pts) == 0 {
		t.Fatal("expected points on land")
	}
	assertSpacing(t, pts, 8)
	for _, p := range pts {
		if !mask.Accept(p.X, p.Y) {
			t.Fatalf("point %+v lies in water", p)
		}
	}
}

func TestSampleAllWaterReturnsEmpty(t *testing.T) {
	mask := core.NewLandMask(64, 64)
	if pts := Sample(64, 64, 10, 30, MaskAccept(mask), core.NewRNG(1)); len(pts) != 0 {
		t.Fatalf("expected no points, got %d", len(pts))
	}
	if pts := Sample(64, 64, 10, 30, MaskAccept(nil), core.NewRNG(1)); len(pts) != 0 {
		t.Fatalf("nil mask must reject everything, got %d", len(pts))
	}
}

func TestSampleInvalidArguments(t *testing.T) {
	cases := []struct {
		w, h, d float64
	}{
		{100, 100, 0},
		{100, 100, -3},
		{100, 100, math.NaN()},
		{0, 100, 5},
		{100, -1, 5},
	}
	for _, tc := range cases {
		if pts := Sample(tc.w, tc.h, tc.d, 30, nil, core.NewRNG(2)); pts != nil {
			t.Fatalf("%+v: expected nil, got %d points", tc, len(pts))
		}
	}
}

func TestSampleDeterministic(t *testing.T) {
	a := Sample(150, 90, 12, 30, nil, core.NewRNG(77))
	b := Sample(150, 90, 12, 30, nil, core.NewRNG(77))
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different samples")
	}
	c := Sample(150, 90, 12, 30, nil, core.NewRNG(78))
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced identical samples")
	}
}
