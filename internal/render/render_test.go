package render

import (
	"bytes"
	"image/color"
	"image/png"
	"slices"
	"strings"
	"testing"

	"continent/internal/core"
	"continent/internal/gen/voronoi"

	"github.com/pkg/errors"
)

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillMaskRGBA(buf, []bool{true, false}, LandColor, OceanColor)
	want := []byte{139, 90, 43, 255, 30, 60, 120, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v want %v", buf, want)
	}
}

func TestFillPaletteRGBACycles(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}
	bg := color.RGBA{B: 9, A: 255}
	buf := make([]byte, 16)
	fillPaletteRGBA(buf, []int{0, 1, 2, -1}, palette, bg)
	if buf[0] != 1 || buf[4] != 2 || buf[8] != 1 {
		t.Fatalf("palette did not cycle: %v", buf)
	}
	if buf[14] != 9 {
		t.Fatalf("water should take the background: %v", buf[12:])
	}
}

func TestNearestSite(t *testing.T) {
	mask := core.NewLandMask(4, 1)
	mask.Set(0, 0, true)
	mask.Set(1, 0, true)
	mask.Set(3, 0, true)
	sites := []core.Point{{X: 0.5, Y: 0.5}, {X: 3.5, Y: 0.5}}
	got := NearestSite(mask, sites)
	want := []int{0, 0, -1, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
	for _, v := range NearestSite(mask, nil) {
		if v != -1 {
			t.Fatal("no sites should leave every cell unassigned")
		}
	}
}

func TestWritePNGKeepsSize(t *testing.T) {
	mask := core.NewLandMask(12, 7)
	mask.Set(3, 3, true)
	var buf bytes.Buffer
	if err := WritePNG(&buf, MaskImage(mask)); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Fatalf("unexpected bounds %v", b)
	}
	r, _, _, _ := img.At(3, 3).RGBA()
	if uint8(r>>8) != LandColor.R {
		t.Fatalf("land pixel has red %d", r>>8)
	}
}

func TestWriteSVG(t *testing.T) {
	mask := core.NewLandMask(20, 20)
	for y := 5; y < 15; y++ {
		for x := 5; x < 15; x++ {
			mask.Set(x, y, true)
		}
	}
	overlay := voronoi.Result{
		Sites: []core.Point{{X: 6, Y: 6}, {X: 12, Y: 12}},
		Segments: []voronoi.Segment{
			{A: core.Point{X: 5, Y: 14}, B: core.Point{X: 14, Y: 5}},
		},
	}
	var buf bytes.Buffer
	opts := SVGOptions{Scale: 2, Borders: true, Sites: true, Roads: [][2]int{{0, 1}, {0, 7}}}
	if err := WriteSVG(&buf, mask, overlay, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"<svg", "<polyline", "<circle", "<line", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %s in output", want)
		}
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Fatalf("expected 2 sites, got %d", got)
	}
	if got := strings.Count(out, "<line"); got != 1 {
		t.Fatalf("out-of-range road should be skipped, got %d lines", got)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGReportsWriteErrors(t *testing.T) {
	err := WriteSVG(failWriter{}, core.NewLandMask(2, 2), voronoi.Result{}, SVGOptions{})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected wrapped write error, got %v", err)
	}
	if err := WriteSVG(&bytes.Buffer{}, nil, voronoi.Result{}, SVGOptions{}); err == nil {
		t.Fatal("expected error for nil mask")
	}
}
