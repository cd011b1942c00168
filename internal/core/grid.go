package core

import "math"

// Point is a continuous position on the map plane.
type Point struct {
	X, Y float64
}

// Cell addresses a single grid cell.
type Cell struct {
	X, Y int
}

// ScalarField stores one float per grid cell in row-major order.
type ScalarField struct {
	W, H   int
	Values []float64
}

// NewScalarField allocates a zeroed field with the given dimensions.
func NewScalarField(w, h int) *ScalarField {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &ScalarField{W: w, H: h, Values: make([]float64, w*h)}
}

// Index returns the linear slice index for coordinates (x, y).
func (f *ScalarField) Index(x, y int) int { return y*f.W + x }

// LandMask stores the land/water classification of a grid in row-major order.
type LandMask struct {
	W, H int
	data []bool
}

// NewLandMask allocates an all-water mask with the given dimensions.
func NewLandMask(w, h int) *LandMask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &LandMask{W: w, H: h, data: make([]bool, w*h)}
}

// Size reports the mask dimensions.
func (m *LandMask) Size() Size { return Size{W: m.W, H: m.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (m *LandMask) Cells() []bool { return m.data }

// Index returns the linear slice index for coordinates (x, y).
func (m *LandMask) Index(x, y int) int { return y*m.W + x }

// InBounds reports whether (x, y) addresses a cell of the mask.
func (m *LandMask) InBounds(x, y int) bool {
	return x >= 0 && x < m.W && y >= 0 && y < m.H
}

// At reports whether (x, y) is land. Out-of-range coordinates are water.
func (m *LandMask) At(x, y int) bool {
	if !m.InBounds(x, y) {
		return false
	}
	return m.data[y*m.W+x]
}

// Set marks (x, y) as land or water. Out-of-range coordinates are ignored.
func (m *LandMask) Set(x, y int, land bool) {
	if !m.InBounds(x, y) {
		return
	}
	m.data[y*m.W+x] = land
}

// Accept is the land-acceptance predicate used for sampling: the continuous
// coordinate is floored to its cell and anything off the grid is rejected.
func (m *LandMask) Accept(x, y float64) bool {
	if x < 0 || y < 0 || math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	return m.At(int(math.Floor(x)), int(math.Floor(y)))
}

// Count returns the number of land cells.
func (m *LandMask) Count() int {
	total := 0
	for _, v := range m.data {
		if v {
			total++
		}
	}
	return total
}

// Clone returns an independent copy of the mask.
func (m *LandMask) Clone() *LandMask {
	out := &LandMask{W: m.W, H: m.H, data: make([]bool, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Clear marks every cell as water.
func (m *LandMask) Clear() {
	for i := range m.data {
		m.data[i] = false
	}
}
