package config

import "sort"

var Presets = map[string]*Config{
	"standard": {
		X: DistConfig{Family: "normal", Params: []float64{0, 1}},
		Y: DistConfig{Family: "uniform", Params: []float64{0, 1}},
	},
	"skewed": {
		X: DistConfig{Family: "gamma", Params: []float64{2, 2}},
		Y: DistConfig{Family: "exponential", Params: []float64{1.5}},
	},
	"bathtub": {
		X: DistConfig{Family: "beta", Params: []float64{0.5, 0.5}},
		Y: DistConfig{Family: "beta", Params: []float64{2, 5}},
	},
	"waiting": {
		X: DistConfig{Family: "exponential", Params: []float64{2}},
		Y: DistConfig{Family: "gamma", Params: []float64{0.5, 1}},
	},
	"flat": {
		X: DistConfig{Family: "uniform", Params: []float64{-1, 1}},
		Y: DistConfig{Family: "normal", Params: []float64{0, 0.5}},
	},
}

// GetPreset returns a copy of the named preset layered over the
// defaults, or nil when there is none.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.X = p.X
	cfg.Y = p.Y
	return cfg.Clone()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
