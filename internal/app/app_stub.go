//go:build !ebiten

package app

import (
	"continent/internal/mapgen"

	"github.com/pkg/errors"
)

// errNoViewer is returned by every stubbed entry point.
var errNoViewer = errors.New("app: viewer not compiled in; build with -tags ebiten")

// Game stands in for the viewer in headless builds so callers still compile.
type Game struct{}

// New refuses to build a viewer without ebiten linked in.
func New(*mapgen.World, int, int) *Game {
	panic(errNoViewer)
}

// Reset does nothing without a viewer.
func (g *Game) Reset(int64) {}

// Update fails with errNoViewer.
func (g *Game) Update() error { return errNoViewer }

// Draw does nothing without a viewer.
func (g *Game) Draw(any) {}

// Layout has no screen to size in headless builds.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
