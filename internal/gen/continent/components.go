package continent

import "continent/internal/core"

// Components returns every 4-connected land component in row-major discovery
// order. The flood fill uses an explicit stack so large grids cannot exhaust
// the goroutine stack.
func Components(mask *core.LandMask) [][]core.Cell {
	w, h := mask.W, mask.H
	cells := mask.Cells()
	visited := make([]bool, len(cells))
	var components [][]core.Cell
	var stack []core.Cell

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || !cells[idx] {
				continue
			}
			var component []core.Cell
			stack = append(stack[:0], core.Cell{X: x, Y: y})
			for len(stack) > 0 {
				c := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if c.X < 0 || c.X >= w || c.Y < 0 || c.Y >= h {
					continue
				}
				i := c.Y*w + c.X
				if visited[i] || !cells[i] {
					continue
				}
				visited[i] = true
				component = append(component, c)
				stack = append(stack,
					core.Cell{X: c.X + 1, Y: c.Y},
					core.Cell{X: c.X - 1, Y: c.Y},
					core.Cell{X: c.X, Y: c.Y + 1},
					core.Cell{X: c.X, Y: c.Y - 1},
				)
			}
			components = append(components, component)
		}
	}
	return components
}

// LargestComponent returns the cells of the largest 4-connected land
// component. Ties go to the component discovered first in row-major order; an
// all-water mask yields nil.
func LargestComponent(mask *core.LandMask) []core.Cell {
	var largest []core.Cell
	for _, c := range Components(mask) {
		if len(c) > len(largest) {
			largest = c
		}
	}
	return largest
}

// KeepLargest clears every land cell outside the largest component and
// returns the number of cells kept.
func KeepLargest(mask *core.LandMask) int {
	largest := LargestComponent(mask)
	mask.Clear()
	for _, c := range largest {
		mask.Set(c.X, c.Y, true)
	}
	return len(largest)
}
