//go:build !ebiten

package ui

import (
	"continent/internal/gen/voronoi"
	"continent/internal/mapgen"
)

// OverlaySource exposes the region overlay and its road network.
type OverlaySource interface {
	Overlay() (voronoi.Result, bool)
	Network() mapgen.Network
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(OverlaySource, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
