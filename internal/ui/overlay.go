//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"continent/internal/core"
	"continent/internal/gen/voronoi"
	"continent/internal/mapgen"
	"continent/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// OverlaySource exposes the region overlay and its road network.
type OverlaySource interface {
	Overlay() (voronoi.Result, bool)
	Network() mapgen.Network
}

// Overlay draws the region borders, roads and sites on top of the map.
type Overlay struct {
	src   OverlaySource
	scale int

	showBorders bool
	showRoads   bool
	showSites   bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay with borders and sites visible.
func NewOverlay(src OverlaySource, scale int) *Overlay {
	o := &Overlay{src: src, scale: max(scale, 1), showBorders: true, showSites: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers on the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showBorders = !o.showBorders
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showRoads = !o.showRoads
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showSites = !o.showSites
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || o.src == nil {
		return
	}
	res, ok := o.src.Overlay()
	if !ok || res.Empty() {
		return
	}
	scale := float64(o.scale)
	if o.showBorders {
		thickness := math.Max(1, scale*0.6)
		for _, s := range res.Segments {
			o.drawPath(screen, s.Path(), thickness, render.BorderColor)
		}
	}
	if o.showRoads {
		thickness := math.Max(1, scale*0.4)
		for _, e := range o.src.Network().Tree {
			a, b := res.Sites[e[0]], res.Sites[e[1]]
			o.drawLine(screen, a.X*scale, a.Y*scale, b.X*scale, b.Y*scale, thickness, render.RoadColor)
		}
	}
	if o.showSites {
		size := math.Max(3, scale*2)
		for _, p := range res.Sites {
			o.drawPoint(screen, p.X*scale, p.Y*scale, size, render.SiteColor)
		}
	}
}

func (o *Overlay) drawPath(screen *ebiten.Image, path []core.Point, thickness float64, col color.RGBA) {
	scale := float64(o.scale)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		o.drawLine(screen, a.X*scale, a.Y*scale, b.X*scale, b.Y*scale, thickness, col)
	}
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
