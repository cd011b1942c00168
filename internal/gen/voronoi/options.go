package voronoi

import "strconv"

// Options tunes the overlay. Count and the segment noise settings shape the
// result; Variety, MetricNoiseAmp, MetricNoiseScale and MaxAreaRatio are
// accepted and carried along but reserved, so they have no effect.
type Options struct {
	// Count is the target number of regions.
	Count int

	// Variety is the requested region size diversity in [0,1]. Reserved.
	Variety float64

	MetricNoiseAmp   float64 // reserved
	MetricNoiseScale float64 // reserved

	SegmentNoiseAmp   float64
	SegmentNoiseScale float64

	MaxAreaRatio float64 // reserved
}

// DefaultOptions returns the overlay settings used by the viewer.
func DefaultOptions() Options {
	return Options{
		Count:             8,
		Variety:           0.5,
		MetricNoiseAmp:    0.08,
		MetricNoiseScale:  80,
		SegmentNoiseAmp:   1.8,
		SegmentNoiseScale: 24,
		MaxAreaRatio:      0.5,
	}
}

// FromMap populates options from string key/value pairs, ignoring values
// that do not parse.
func FromMap(kv map[string]string) Options {
	o := DefaultOptions()
	if kv == nil {
		return o
	}
	if v, ok := kv["count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			o.Count = parsed
		}
	}
	floatsByKey := map[string]*float64{
		"variety":             &o.Variety,
		"metric_noise_amp":    &o.MetricNoiseAmp,
		"metric_noise_scale":  &o.MetricNoiseScale,
		"segment_noise_amp":   &o.SegmentNoiseAmp,
		"segment_noise_scale": &o.SegmentNoiseScale,
		"max_area_ratio":      &o.MaxAreaRatio,
	}
	for key, dst := range floatsByKey {
		v, ok := kv[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			*dst = parsed
		}
	}
	return o
}

func (o Options) target() int {
	if o.Count <= 0 {
		return DefaultOptions().Count
	}
	return o.Count
}

func (o Options) segmentScale() float64 {
	if o.SegmentNoiseScale <= 0 {
		return DefaultOptions().SegmentNoiseScale
	}
	return o.SegmentNoiseScale
}
