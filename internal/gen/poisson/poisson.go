// Package poisson implements Bridson's Poisson-disk sampling restricted to an
// acceptance predicate such as a land mask.
package poisson

import (
	"math"

	"continent/internal/core"
)

const (
	// DefaultAttempts is the number of candidates tried around an active
	// point before it is retired.
	DefaultAttempts = 30
	seedTries       = 500
	neighbourhood   = 2
)

// Accept reports whether a candidate position may hold a sample.
type Accept func(x, y float64) bool

// Sample scatters points over [0,width)×[0,height) so that no two are closer
// than minDist and every point satisfies accept. A nil accept admits every
// position and k <= 0 uses DefaultAttempts. It returns nil when minDist or the
// area is not positive, or when no seed point passes accept within 500 tries.
func Sample(width, height, minDist float64, k int, accept Accept, rng core.Stream) []core.Point {
	if !(minDist > 0) || !(width > 0) || !(height > 0) {
		return nil
	}
	if k <= 0 {
		k = DefaultAttempts
	}
	if accept == nil {
		accept = func(float64, float64) bool { return true }
	}

	cellSize := minDist / math.Sqrt2
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))
	grid := make([]int, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}
	minDist2 := minDist * minDist

	var points []core.Point
	var active []int

	cellOf := func(x, y float64) (int, int) {
		return int(x / cellSize), int(y / cellSize)
	}
	add := func(p core.Point) {
		gx, gy := cellOf(p.X, p.Y)
		grid[gy*gridW+gx] = len(points)
		active = append(active, len(points))
		points = append(points, p)
	}
	crowded := func(x, y float64) bool {
		gx, gy := cellOf(x, y)
		for ny := gy - neighbourhood; ny <= gy+neighbourhood; ny++ {
			if ny < 0 || ny >= gridH {
				continue
			}
			for nx := gx - neighbourhood; nx <= gx+neighbourhood; nx++ {
				if nx < 0 || nx >= gridW {
					continue
				}
				idx := grid[ny*gridW+nx]
				if idx < 0 {
					continue
				}
				dx, dy := points[idx].X-x, points[idx].Y-y
				if dx*dx+dy*dy < minDist2 {
					return true
				}
			}
		}
		return false
	}

	for try := 0; try < seedTries; try++ {
		x := rng.Next() * width
		y := rng.Next() * height
		if accept(x, y) {
			add(core.Point{X: x, Y: y})
			break
		}
	}
	if len(points) == 0 {
		return nil
	}

	for len(active) > 0 {
		slot := int(rng.Next() * float64(len(active)))
		if slot >= len(active) {
			slot = len(active) - 1
		}
		centre := points[active[slot]]
		placed := false

		for i := 0; i < k; i++ {
			r := minDist * (1 + rng.Next())
			theta := rng.Next() * math.Pi * 2
			x := centre.X + r*math.Cos(theta)
			y := centre.Y + r*math.Sin(theta)
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			if !accept(x, y) || crowded(x, y) {
				continue
			}
			add(core.Point{X: x, Y: y})
			placed = true
			break
		}
		if !placed {
			active = append(active[:slot], active[slot+1:]...)
		}
	}
	return points
}

// MaskAccept binds the acceptance predicate to a land mask.
func MaskAccept(mask *core.LandMask) Accept {
	if mask == nil {
		return func(float64, float64) bool { return false }
	}
	return mask.Accept
}
