//go:build ebiten

package app

import (
	"time"

	"continent/internal/mapgen"
	"continent/internal/render"
	"continent/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a continent World to the ebiten.Game interface.
type Game struct {
	world   *mapgen.World
	painter *render.MaskPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	seed     int64

	// regions is the nearest-site fill, nil until requested.
	regions     []int
	showRegions bool
}

// New constructs a Game around world.
func New(world *mapgen.World, scale, hudWidth int) *Game {
	size := world.Size()
	scale = max(scale, 1)
	return &Game{
		world:    world,
		painter:  render.NewMaskPainter(size.W, size.H),
		overlay:  ui.NewOverlay(world, scale),
		hud:      ui.NewHUD(world, hudWidth),
		scale:    scale,
		hudWidth: max(hudWidth, 0),
		seed:     world.Config().Seed,
	}
}

// Reset regenerates the continent with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.regions = nil
}

// Update handles input; generation only happens in response to it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.regenerate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.world.BuildOverlay()
		g.regions = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.world.ClearOverlay()
		g.regions = nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showRegions = !g.showRegions
	}

	g.overlay.Update()
	if g.hud.Update(g.mapWidth()) {
		g.regenerate()
	}
	return nil
}

func (g *Game) regenerate() {
	g.world.Regenerate()
	g.regions = nil
}

// Draw renders the map, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	mask := g.world.Mask()
	if mask == nil {
		screen.Fill(render.OceanColor)
	} else if res, ok := g.world.Overlay(); ok && g.showRegions && len(res.Sites) > 0 {
		if g.regions == nil {
			g.regions = render.NearestSite(mask, res.Sites)
		}
		g.painter.BlitRegions(screen, g.regions, g.scale)
	} else {
		g.painter.Blit(screen, mask.Cells(), render.LandColor, render.OceanColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.mapWidth(), g.scale)
}

func (g *Game) mapWidth() int { return g.world.Size().W * g.scale }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.world.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
