// Package delaunay triangulates a small set of sites with the Bowyer–Watson
// incremental algorithm.
package delaunay

import (
	"math"

	"continent/internal/core"
)

// Triangle references three sites by index and caches its circumcircle.
type Triangle struct {
	A, B, C int
	Center  core.Point
	// R2 is the squared circumradius; +Inf for collinear vertices.
	R2 float64
}

// Degenerate reports whether the triangle's vertices are collinear.
func (t Triangle) Degenerate() bool { return math.IsInf(t.R2, 1) }

// Vertices returns the site indices in winding order.
func (t Triangle) Vertices() [3]int { return [3]int{t.A, t.B, t.C} }

// Has reports whether site i is a vertex of t.
func (t Triangle) Has(i int) bool { return t.A == i || t.B == i || t.C == i }

const (
	superScale   = 10
	collinearEps = 1e-12
)

// Circumcircle returns the circumcenter and squared circumradius of abc.
// Collinear points yield their centroid and an infinite radius.
func Circumcircle(a, b, c core.Point) (core.Point, float64) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < collinearEps {
		return core.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}, math.Inf(1)
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	center := core.Point{
		X: (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d,
		Y: (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d,
	}
	dx, dy := a.X-center.X, a.Y-center.Y
	return center, dx*dx + dy*dy
}

func makeTriangle(pts []core.Point, a, b, c int) Triangle {
	center, r2 := Circumcircle(pts[a], pts[b], pts[c])
	return Triangle{A: a, B: b, C: c, Center: center, R2: r2}
}

// contains reports whether p lies strictly inside t's circumcircle.
// Degenerate triangles never contain anything.
func (t Triangle) contains(p core.Point) bool {
	if t.Degenerate() {
		return false
	}
	dx, dy := p.X-t.Center.X, p.Y-t.Center.Y
	return dx*dx+dy*dy < t.R2
}

type edge struct{ u, v int }

func (e edge) key() edge {
	if e.u > e.v {
		return edge{e.v, e.u}
	}
	return e
}

// Triangulate inserts sites in order and returns the triangles whose vertices
// are all input sites. Fewer than three sites yield nil.
func Triangulate(sites []core.Point, width, height float64) []Triangle {
	n := len(sites)
	if n < 3 {
		return nil
	}

	cx, cy := width/2, height/2
	d := superScale * math.Max(width, height)
	if !(d > 0) {
		d = superScale
	}
	pts := make([]core.Point, n, n+3)
	copy(pts, sites)
	pts = append(pts,
		core.Point{X: cx - d, Y: cy - d},
		core.Point{X: cx + d, Y: cy - d},
		core.Point{X: cx, Y: cy + d},
	)

	tris := []Triangle{makeTriangle(pts, n, n+1, n+2)}
	var (
		kept     []Triangle
		boundary []edge
		seen     = map[edge]int{}
	)

	for i := 0; i < n; i++ {
		p := pts[i]
		kept = kept[:0]
		boundary = boundary[:0]
		clear(seen)

		for _, t := range tris {
			if !t.contains(p) {
				kept = append(kept, t)
				continue
			}
			for _, e := range [3]edge{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}} {
				k := e.key()
				if at, ok := seen[k]; ok {
					// Shared by two cavity triangles: interior edge.
					boundary[at].u = -1
					continue
				}
				seen[k] = len(boundary)
				boundary = append(boundary, e)
			}
		}

		next := make([]Triangle, 0, len(kept)+len(boundary))
		next = append(next, kept...)
		for _, e := range boundary {
			if e.u < 0 {
				continue
			}
			next = append(next, makeTriangle(pts, e.u, e.v, i))
		}
		tris = next
	}

	out := make([]Triangle, 0, len(tris))
	for _, t := range tris {
		if t.A >= n || t.B >= n || t.C >= n {
			continue
		}
		out = append(out, t)
	}
	return out
}
