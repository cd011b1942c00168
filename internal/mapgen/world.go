package mapgen

import (
	"continent/internal/core"
	"continent/internal/gen/continent"
	"continent/internal/gen/voronoi"
)

// World holds the state of an interactive session: the current
// configuration, the last generated continent and its optional overlay.
type World struct {
	cfg  continent.Config
	opts voronoi.Options

	result continent.Result
	err    error

	overlay     voronoi.Result
	hasOverlay  bool
	overlayRoll int64
	network     Network
}

// NewWorld generates the first continent for cfg.
func NewWorld(cfg continent.Config, opts voronoi.Options) *World {
	w := &World{cfg: cfg, opts: opts}
	w.Regenerate()
	return w
}

// Name identifies the generator.
func (w *World) Name() string { return "continent" }

// Size reports the map dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Config returns the active configuration.
func (w *World) Config() continent.Config { return w.cfg }

// Options returns the active overlay options.
func (w *World) Options() voronoi.Options { return w.opts }

// Result returns the last generated continent.
func (w *World) Result() continent.Result { return w.result }

// Err reports why the last regeneration failed, if it did.
func (w *World) Err() error { return w.err }

// Mask returns the land mask of the last continent, nil before a successful
// generation.
func (w *World) Mask() *core.LandMask { return w.result.Mask }

// Reset regenerates with seed; a zero seed keeps the configured one.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.cfg.Seed = seed
	}
	w.Regenerate()
}

// Regenerate reshapes the continent with the current configuration and
// drops any overlay built for the previous mask.
func (w *World) Regenerate() error {
	w.ClearOverlay()
	w.overlayRoll = 0
	res, err := Generate(w.cfg)
	w.err = err
	if err != nil {
		w.result = continent.Result{}
		return err
	}
	w.result = res
	return nil
}

// BuildOverlay builds a fresh overlay over the current mask. Each call after
// the first re-rolls the sites.
func (w *World) BuildOverlay() voronoi.Result {
	if w.result.Mask == nil {
		w.ClearOverlay()
		return voronoi.Result{}
	}
	seed := w.cfg.Seed + w.overlayRoll
	w.overlayRoll++
	w.overlay = buildOverlay(w.result.Mask, w.opts, w.cfg.RNG, w.cfg.Noise, seed)
	w.hasOverlay = true
	w.network = Connect(w.overlay, 0)
	return w.overlay
}

// Overlay returns the current overlay, if one was built.
func (w *World) Overlay() (voronoi.Result, bool) { return w.overlay, w.hasOverlay }

// Network returns the region network of the current overlay.
func (w *World) Network() Network { return w.network }

// ClearOverlay discards the current overlay.
func (w *World) ClearOverlay() {
	w.overlay = voronoi.Result{}
	w.hasOverlay = false
	w.network = Network{Capital: -1}
}
