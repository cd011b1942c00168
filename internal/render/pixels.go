package render

import (
	"image"
	"image/color"
	"math"

	"continent/internal/core"
)

// Map colours.
var (
	LandColor   = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	OceanColor  = color.RGBA{R: 30, G: 60, B: 120, A: 255}
	BorderColor = color.RGBA{R: 255, G: 210, B: 0, A: 0x88}
	RoadColor   = color.RGBA{R: 230, G: 230, B: 220, A: 200}
	SiteColor   = color.RGBA{R: 250, G: 80, B: 60, A: 255}
)

// fillMaskRGBA converts land cells into RGBA pixels in buf.
func fillMaskRGBA(buf []byte, cells []bool, land, ocean color.Color) {
	rOn, gOn, bOn, aOn := land.RGBA()
	rOff, gOff, bOff, aOff := ocean.RGBA()
	for i, c := range cells {
		base := i * 4
		if c {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// fillPaletteRGBA colours each cell by its palette index, cycling through the
// palette. Negative indices take the background colour. An empty palette
// paints every non-negative cell transparent.
func fillPaletteRGBA(buf []byte, cells []int, palette []color.RGBA, background color.RGBA) {
	for i, c := range cells {
		base := i * 4
		col := background
		if c >= 0 {
			col = color.RGBA{}
			if len(palette) > 0 {
				col = palette[c%len(palette)]
			}
		}
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// MaskImage renders mask as a land/ocean raster.
func MaskImage(mask *core.LandMask) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, mask.W, mask.H))
	fillMaskRGBA(img.Pix, mask.Cells(), LandColor, OceanColor)
	return img
}

// RegionPalette is the fill cycle used for region maps.
var RegionPalette = []color.RGBA{
	{R: 166, G: 120, B: 70, A: 255},
	{R: 120, G: 150, B: 80, A: 255},
	{R: 190, G: 160, B: 100, A: 255},
	{R: 140, G: 110, B: 140, A: 255},
	{R: 100, G: 140, B: 130, A: 255},
	{R: 200, G: 130, B: 90, A: 255},
	{R: 150, G: 160, B: 120, A: 255},
	{R: 110, G: 100, B: 80, A: 255},
}

// NearestSite assigns every land cell the index of the closest site, -1 for
// water. Ties go to the lower index.
func NearestSite(mask *core.LandMask, sites []core.Point) []int {
	cells := mask.Cells()
	out := make([]int, len(cells))
	for i := range out {
		out[i] = -1
	}
	if len(sites) == 0 {
		return out
	}
	for y := 0; y < mask.H; y++ {
		for x := 0; x < mask.W; x++ {
			idx := y*mask.W + x
			if !cells[idx] {
				continue
			}
			px, py := float64(x)+0.5, float64(y)+0.5
			best, bestD := 0, math.Inf(1)
			for si, s := range sites {
				dx, dy := s.X-px, s.Y-py
				if d := dx*dx + dy*dy; d < bestD {
					best, bestD = si, d
				}
			}
			out[idx] = best
		}
	}
	return out
}

// RegionImage renders each land cell in the colour of its nearest site.
func RegionImage(mask *core.LandMask, sites []core.Point) *image.RGBA {
	if len(sites) == 0 {
		return MaskImage(mask)
	}
	img := image.NewRGBA(image.Rect(0, 0, mask.W, mask.H))
	fillPaletteRGBA(img.Pix, NearestSite(mask, sites), RegionPalette, OceanColor)
	return img
}
