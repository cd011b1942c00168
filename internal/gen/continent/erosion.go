package continent

import "continent/internal/core"

var mooreOffsets = [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Erode softens coastlines by removing land cells with many water neighbours
// and returns how many cells were removed. The first half of the iterations
// require five water neighbours, the rest four. Border cells are never
// touched and each iteration reads only the mask as it was before the
// iteration started.
func Erode(mask *core.LandMask, iterations int) int {
	w, h := mask.W, mask.H
	cells := mask.Cells()
	removed := 0
	var toErode []int

	for iter := 0; iter < iterations; iter++ {
		threshold := 4
		if iter < iterations/2 {
			threshold = 5
		}
		toErode = toErode[:0]
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				idx := y*w + x
				if !cells[idx] {
					continue
				}
				water, land := 0, 0
				for _, d := range mooreOffsets {
					if cells[(y+d[1])*w+x+d[0]] {
						land++
					} else {
						water++
					}
				}
				if water >= threshold && land >= 1 {
					toErode = append(toErode, idx)
				}
			}
		}
		for _, idx := range toErode {
			cells[idx] = false
		}
		removed += len(toErode)
	}
	return removed
}
