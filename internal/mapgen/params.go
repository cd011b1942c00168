package mapgen

import (
	"fmt"

	"continent/internal/core"
)

// Parameters snapshots the tunables and the last result for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	o := w.opts
	groups := []core.ParameterGroup{
		{
			Name: "Map",
			Params: []core.Parameter{
				core.IntParam("w", "Width", w.cfg.Width),
				core.IntParam("h", "Height", w.cfg.Height),
				core.Int64Param("seed", "Seed", w.cfg.Seed),
				core.StringParam("rng", "Random stream", w.cfg.RNG),
				core.StringParam("noise", "Noise backend", w.cfg.Noise),
			},
			Summary: w.summary(),
		},
		{
			Name: "Shape",
			Params: []core.Parameter{
				core.FloatParam("island_size", "Island size", p.IslandSize),
				core.IntParam("blob_complexity", "Blob complexity", p.BlobComplexity),
				core.FloatParam("vertical_stretch", "Vertical stretch", p.VerticalStretch),
				core.FloatParam("scale_factor", "Scale factor", p.ScaleFactor),
			},
		},
		{
			Name: "Noise",
			Params: []core.Parameter{
				core.FloatParam("noise_scale", "Noise scale", p.NoiseScale),
				core.FloatParam("noise_strength", "Noise strength", p.NoiseStrength),
				core.IntParam("erosion_iterations", "Erosion iterations", p.ErosionIterations),
			},
		},
		{
			Name: "Regions",
			Params: []core.Parameter{
				core.IntParam("count", "Region count", o.Count),
				core.FloatParam("variety", "Region variety", o.Variety),
				core.FloatParam("segment_noise_amp", "Border noise amp", o.SegmentNoiseAmp),
				core.FloatParam("segment_noise_scale", "Border noise scale", o.SegmentNoiseScale),
				core.FloatParam("metric_noise_amp", "Metric noise amp", o.MetricNoiseAmp),
				core.FloatParam("metric_noise_scale", "Metric noise scale", o.MetricNoiseScale),
				core.FloatParam("max_area_ratio", "Max area ratio", o.MaxAreaRatio),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (w *World) summary() string {
	if w.err != nil {
		return w.err.Error()
	}
	if w.result.Mask == nil {
		return "no continent"
	}
	s := fmt.Sprintf("%.1f%% land (%d px)", w.result.Percent(), w.result.LandPixels)
	if w.hasOverlay {
		s += fmt.Sprintf(", %d regions", len(w.overlay.Regions))
	}
	return s
}

var controls = []core.ParameterControl{
	{Key: "island_size", Label: "Island size", Type: core.ParamTypeFloat, Step: 0.05, Min: 0.1, Max: 1.5, HasMin: true, HasMax: true},
	{Key: "blob_complexity", Label: "Blob complexity", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 40, HasMin: true, HasMax: true},
	{Key: "noise_scale", Label: "Noise scale", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: 20, HasMin: true, HasMax: true},
	{Key: "noise_strength", Label: "Noise strength", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	{Key: "erosion_iterations", Label: "Erosion", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 10, HasMin: true, HasMax: true},
	{Key: "vertical_stretch", Label: "Vertical stretch", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.5, Max: 3, HasMin: true, HasMax: true},
	{Key: "scale_factor", Label: "Scale factor", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.2, Max: 3, HasMin: true, HasMax: true},
	{Key: "count", Label: "Regions", Type: core.ParamTypeInt, Step: 1, Min: 3, Max: 15, HasMin: true, HasMax: true},
	{Key: "segment_noise_amp", Label: "Border noise", Type: core.ParamTypeFloat, Step: 0.2, Min: 0, Max: 10, HasMin: true, HasMax: true},
	{Key: "segment_noise_scale", Label: "Border scale", Type: core.ParamTypeFloat, Step: 2, Min: 4, Max: 96, HasMin: true, HasMax: true},
}

// ParameterControls lists the HUD-adjustable tunables.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(controls))
	copy(out, controls)
	return out
}

func lookupControl(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer tunable, clamped to its control bounds.
// The change takes effect on the next regeneration.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := lookupControl(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	value = int(ctrl.ClampFloat(float64(value)))
	switch key {
	case "blob_complexity":
		w.cfg.Params.BlobComplexity = value
	case "erosion_iterations":
		w.cfg.Params.ErosionIterations = value
	case "count":
		w.opts.Count = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable, clamped to its control
// bounds. The change takes effect on the next regeneration.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := lookupControl(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	value = ctrl.ClampFloat(value)
	switch key {
	case "island_size":
		w.cfg.Params.IslandSize = value
	case "noise_scale":
		w.cfg.Params.NoiseScale = value
	case "noise_strength":
		w.cfg.Params.NoiseStrength = value
	case "vertical_stretch":
		w.cfg.Params.VerticalStretch = value
	case "scale_factor":
		w.cfg.Params.ScaleFactor = value
	case "segment_noise_amp":
		w.opts.SegmentNoiseAmp = value
	case "segment_noise_scale":
		w.opts.SegmentNoiseScale = value
	default:
		return false
	}
	return true
}
