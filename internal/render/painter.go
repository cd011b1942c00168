//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaskPainter uploads a land mask into a single RGBA image and draws it.
type MaskPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMaskPainter allocates a painter for a grid of size w*h.
func NewMaskPainter(w, h int) *MaskPainter {
	mp := &MaskPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	mp.img = ebiten.NewImage(w, h)
	return mp
}

// Blit uploads the provided cells into the painter image and draws it.
func (mp *MaskPainter) Blit(dst *ebiten.Image, cells []bool, land, ocean color.Color, scale int) {
	if len(cells) != mp.w*mp.h {
		return
	}
	fillMaskRGBA(mp.buf, cells, land, ocean)
	mp.img.ReplacePixels(mp.buf)
	mp.draw(dst, scale)
}

// BlitRegions paints land cells by region index, water in OceanColor.
func (mp *MaskPainter) BlitRegions(dst *ebiten.Image, regions []int, scale int) {
	if len(regions) != mp.w*mp.h {
		return
	}
	fillPaletteRGBA(mp.buf, regions, RegionPalette, OceanColor)
	mp.img.ReplacePixels(mp.buf)
	mp.draw(dst, scale)
}

func (mp *MaskPainter) draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(mp.img, op)
}

// Size returns the dimensions of the underlying image.
func (mp *MaskPainter) Size() (int, int) { return mp.w, mp.h }
