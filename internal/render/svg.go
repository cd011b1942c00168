package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"continent/internal/core"
	"continent/internal/gen/voronoi"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"
)

// SVGOptions selects what WriteSVG draws on top of the land mask.
type SVGOptions struct {
	// Scale multiplies every coordinate; values below 1 are treated as 1.
	Scale int

	Borders bool
	Sites   bool

	// Roads are pairs of site indices drawn as straight lines.
	Roads [][2]int
}

// errWriter remembers the first write error; svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, nil
}

func rgb(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func opacity(c color.RGBA) string {
	return fmt.Sprintf("%.3f", float64(c.A)/255)
}

// WriteSVG draws the mask as run-length land rows over an ocean backdrop,
// then the overlay borders, roads and sites as requested.
func WriteSVG(w io.Writer, mask *core.LandMask, overlay voronoi.Result, opts SVGOptions) error {
	if mask == nil {
		return errors.New("render: nil mask")
	}
	scale := max(opts.Scale, 1)
	px := func(v float64) int { return int(math.Round(v * float64(scale))) }

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(mask.W*scale, mask.H*scale)
	canvas.Rect(0, 0, mask.W*scale, mask.H*scale, "fill:"+rgb(OceanColor))

	canvas.Gstyle("fill:" + rgb(LandColor) + ";stroke:none")
	for y := 0; y < mask.H; y++ {
		x := 0
		for x < mask.W {
			if !mask.At(x, y) {
				x++
				continue
			}
			start := x
			for x < mask.W && mask.At(x, y) {
				x++
			}
			canvas.Rect(start*scale, y*scale, (x-start)*scale, scale)
		}
	}
	canvas.Gend()

	if opts.Borders && len(overlay.Segments) > 0 {
		canvas.Gstyle("fill:none;stroke:" + rgb(BorderColor) + ";stroke-opacity:" + opacity(BorderColor) + ";stroke-width:1.2")
		for _, s := range overlay.Segments {
			path := s.Path()
			xs := make([]int, len(path))
			ys := make([]int, len(path))
			for i, p := range path {
				xs[i], ys[i] = px(p.X), px(p.Y)
			}
			canvas.Polyline(xs, ys)
		}
		canvas.Gend()
	}

	if len(opts.Roads) > 0 {
		canvas.Gstyle("stroke:" + rgb(RoadColor) + ";stroke-width:1;stroke-dasharray:4,3")
		for _, r := range opts.Roads {
			if r[0] < 0 || r[1] < 0 || r[0] >= len(overlay.Sites) || r[1] >= len(overlay.Sites) {
				continue
			}
			a, b := overlay.Sites[r[0]], overlay.Sites[r[1]]
			canvas.Line(px(a.X), px(a.Y), px(b.X), px(b.Y))
		}
		canvas.Gend()
	}

	if opts.Sites {
		canvas.Gstyle("fill:" + rgb(SiteColor))
		for _, s := range overlay.Sites {
			canvas.Circle(px(s.X), px(s.Y), 2*scale)
		}
		canvas.Gend()
	}
	canvas.End()

	if ew.err != nil {
		return errors.Wrap(ew.err, "render: write svg")
	}
	return nil
}

// SaveSVG writes the SVG rendering to path.
func SaveSVG(path string, mask *core.LandMask, overlay voronoi.Result, opts SVGOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "render: create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "render: close %s", path)
		}
	}()
	return WriteSVG(f, mask, overlay, opts)
}
