package config

import "sort"

// Presets are named black hole configurations. Radii are visual units, not
// solar masses; the ratios between horizon, ISCO and disk edge are what the
// presets vary.
var presets = map[string]func() *Config{
	"stellar": DefaultConfig,
	"supermassive": func() *Config {
		cfg := DefaultConfig()
		cfg.BlackHole.Mass = 1e6
		cfg.BlackHole.SchwarzschildRadius = 4
		cfg.BlackHole.ISCORadius = 12
		cfg.Disk.OuterRadius = 40
		return cfg
	},
	"primordial": func() *Config {
		cfg := DefaultConfig()
		cfg.BlackHole.Mass = 0.25
		cfg.BlackHole.SchwarzschildRadius = 0.5
		cfg.BlackHole.ISCORadius = 1.5
		cfg.Disk.OuterRadius = 8
		return cfg
	},
	"bare": func() *Config {
		cfg := DefaultConfig()
		cfg.Toggles.Disk = false
		cfg.Toggles.Lensing = false
		return cfg
	},
}

// GetPreset returns a fresh Config for the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	mk, ok := presets[name]
	if !ok {
		return nil
	}
	return mk()
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
