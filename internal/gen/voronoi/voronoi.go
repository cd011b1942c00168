// Package voronoi derives region borders over a land mask from the dual of a
// Delaunay triangulation of Poisson-disk sites.
package voronoi

import (
	"cmp"
	"math"
	"slices"

	"continent/internal/core"
	"continent/internal/gen/delaunay"
	"continent/internal/gen/poisson"
)

// Segment is one region border. Polyline holds the jittered path from A to B
// and is nil when segment noise is disabled.
type Segment struct {
	A, B     core.Point
	Polyline []core.Point
}

// Path returns the points to draw for the segment.
func (s Segment) Path() []core.Point {
	if len(s.Polyline) > 0 {
		return s.Polyline
	}
	return []core.Point{s.A, s.B}
}

// Region is the cell around one site. Polygon is empty when fewer than three
// circumcenters surround the site; hull regions are left open.
type Region struct {
	Index   int
	Center  core.Point
	Polygon []core.Point
}

// Result is a built overlay.
type Result struct {
	Sites     []core.Point
	Triangles []delaunay.Triangle
	Segments  []Segment
	Regions   []Region

	// MinDist is the spacing of the final sampling attempt.
	MinDist float64

	// Attempts counts the sampling passes made.
	Attempts int
}

// Empty reports whether no borders were produced.
func (r Result) Empty() bool { return len(r.Segments) == 0 && len(r.Regions) == 0 }

const (
	maxAttempts   = 5
	spacingFactor = 0.85
	yieldLow      = 0.8
	yieldHigh     = 1.2
	minSites      = 3
)

// Build samples about opts.Count sites on the land of mask, triangulates them
// and returns the Voronoi borders and regions. rng drives the sampling and
// jitter drives the segment noise; a nil jitter disables it.
func Build(mask *core.LandMask, opts Options, rng core.Stream, jitter core.Noise) Result {
	if mask == nil {
		return Result{}
	}
	land := mask.Count()
	if land == 0 {
		return Result{}
	}
	width, height := float64(mask.W), float64(mask.H)
	target := opts.target()

	minDist := math.Sqrt(float64(land)/float64(target)) * spacingFactor
	var res Result
	var sites []core.Point
	for attempt := 0; attempt < maxAttempts; attempt++ {
		res.Attempts = attempt + 1
		res.MinDist = minDist
		sites = poisson.Sample(width, height, minDist, poisson.DefaultAttempts, mask.Accept, rng)
		got := float64(len(sites))
		if got >= yieldLow*float64(target) && got <= yieldHigh*float64(target) {
			break
		}
		if len(sites) == 0 {
			minDist *= 0.5
		} else {
			minDist *= math.Sqrt(got / float64(target))
		}
	}
	res.Sites = sites
	if len(sites) < minSites {
		return res
	}

	res.Triangles = delaunay.Triangulate(sites, width, height)
	res.Segments = Segments(sites, res.Triangles, width, height)
	if opts.SegmentNoiseAmp > 0 && jitter != nil {
		scale := opts.segmentScale()
		for i := range res.Segments {
			s := &res.Segments[i]
			s.Polyline = Jitter(s.A, s.B, opts.SegmentNoiseAmp, scale, jitter)
		}
	}
	res.Regions = Regions(sites, res.Triangles)
	return res
}

type edgeKey struct{ u, v int }

type edgeUse struct {
	key   edgeKey
	tris  [2]int
	count int
}

// Segments emits one border per triangulation edge in first-seen order:
// internal edges join the two circumcenters, hull edges run from the
// circumcenter outward to the [0,width]×[0,height] boundary.
func Segments(sites []core.Point, tris []delaunay.Triangle, width, height float64) []Segment {
	index := map[edgeKey]int{}
	var edges []edgeUse
	for ti, t := range tris {
		for _, e := range [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
			k := edgeKey{min(e[0], e[1]), max(e[0], e[1])}
			at, ok := index[k]
			if !ok {
				at = len(edges)
				index[k] = at
				edges = append(edges, edgeUse{key: k})
			}
			use := &edges[at]
			if use.count < 2 {
				use.tris[use.count] = ti
			}
			use.count++
		}
	}

	segments := make([]Segment, 0, len(edges))
	for _, e := range edges {
		switch e.count {
		case 2:
			segments = append(segments, Segment{A: tris[e.tris[0]].Center, B: tris[e.tris[1]].Center})
		case 1:
			t := tris[e.tris[0]]
			segments = append(segments, hullSegment(sites, t, e.key, width, height))
		}
	}
	return segments
}

func hullSegment(sites []core.Point, t delaunay.Triangle, k edgeKey, width, height float64) Segment {
	pu, pv := sites[k.u], sites[k.v]
	third := t.A
	for _, v := range t.Vertices() {
		if v != k.u && v != k.v {
			third = v
		}
	}
	pw := sites[third]

	dx, dy := -(pv.Y - pu.Y), pv.X-pu.X
	mx, my := (pu.X+pv.X)/2, (pu.Y+pv.Y)/2
	if dx*(pw.X-mx)+dy*(pw.Y-my) > 0 {
		dx, dy = -dx, -dy
	}
	origin := t.Center
	return Segment{A: origin, B: clipRay(origin, dx, dy, width, height)}
}

// clipRay returns where the ray from o along (dx,dy) leaves the box. When no
// axis yields a positive exit the ray collapses to o.
func clipRay(o core.Point, dx, dy, width, height float64) core.Point {
	best := math.Inf(1)
	if dx > 0 {
		if t := (width - o.X) / dx; t > 0 {
			best = min(best, t)
		}
	} else if dx < 0 {
		if t := -o.X / dx; t > 0 {
			best = min(best, t)
		}
	}
	if dy > 0 {
		if t := (height - o.Y) / dy; t > 0 {
			best = min(best, t)
		}
	} else if dy < 0 {
		if t := -o.Y / dy; t > 0 {
			best = min(best, t)
		}
	}
	if math.IsInf(best, 1) {
		return o
	}
	return core.Point{X: o.X + dx*best, Y: o.Y + dy*best}
}

// Jitter resamples a→b into max(2, floor(len/scale)) steps and pushes every
// interior sample along the segment normal by noise·amp. Endpoints stay put.
func Jitter(a, b core.Point, amp, scale float64, noise core.Noise) []core.Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 || scale <= 0 || noise == nil {
		return []core.Point{a, b}
	}
	steps := max(2, int(math.Floor(length/scale)))
	nx, ny := -dy/length, dx/length

	out := make([]core.Point, 0, steps+1)
	out = append(out, a)
	for i := 1; i < steps; i++ {
		f := float64(i) / float64(steps)
		x := a.X + dx*f
		y := a.Y + dy*f
		off := noise.Eval2(x/scale, y/scale) * amp
		out = append(out, core.Point{X: x + nx*off, Y: y + ny*off})
	}
	return append(out, b)
}

// Regions groups circumcenters by incident site and orders each group by
// polar angle around the site.
func Regions(sites []core.Point, tris []delaunay.Triangle) []Region {
	incident := make([][]core.Point, len(sites))
	for _, t := range tris {
		for _, v := range t.Vertices() {
			incident[v] = append(incident[v], t.Center)
		}
	}

	regions := make([]Region, len(sites))
	for i, site := range sites {
		regions[i] = Region{Index: i, Center: site}
		centers := incident[i]
		if len(centers) < minSites {
			continue
		}
		slices.SortStableFunc(centers, func(p, q core.Point) int {
			return cmp.Compare(angle(site, p), angle(site, q))
		})
		regions[i].Polygon = centers
	}
	return regions
}

func angle(o, p core.Point) float64 {
	return math.Atan2(p.Y-o.Y, p.X-o.X)
}
