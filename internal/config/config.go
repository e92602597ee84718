package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth     = 1024
	DefaultHeight    = 768
	DefaultFPS       = 60
	DefaultMass      = 1.0
	DefaultRadius    = 2.0
	DefaultISCO      = 6.0
	DefaultDiskOuter = 20.0
	DefaultStarCount = 1000
	DefaultSpread    = 100
)

// Validation errors.
var (
	ErrBadWindow = errors.New("config: window dimensions and fps must be positive")
	ErrBadRadius = errors.New("config: schwarzschild radius must be positive")
	ErrBadISCO   = errors.New("config: isco radius must be at least the schwarzschild radius")
	ErrBadDisk   = errors.New("config: disk outer radius must exceed the inner (isco) radius")
	ErrBadStars  = errors.New("config: star count and spread must be positive")
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	BlackHole BlackHoleConfig `yaml:"black_hole"`
	Disk      DiskConfig      `yaml:"disk"`
	Stars     StarConfig      `yaml:"stars"`
	Toggles   ToggleConfig    `yaml:"toggles"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	TargetFPS int32  `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

type BlackHoleConfig struct {
	Mass                float64 `yaml:"mass"`
	SchwarzschildRadius float64 `yaml:"schwarzschild_radius"`
	ISCORadius          float64 `yaml:"isco_radius"`
}

// DiskConfig describes the accretion disk. The inner radius is not a config
// field: it is always the ISCO radius.
type DiskConfig struct {
	OuterRadius   float64 `yaml:"outer_radius"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	Temperature   float64 `yaml:"temperature"`
	HotColor      RGB     `yaml:"hot_color"`
	CoolColor     RGB     `yaml:"cool_color"`
}

type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// StarConfig controls the background starfield. Seed 0 means seed from the
// clock; any other value makes the field reproducible.
type StarConfig struct {
	Count  int   `yaml:"count"`
	Spread int   `yaml:"spread"`
	Seed   int64 `yaml:"seed"`
}

type ToggleConfig struct {
	Lensing     bool `yaml:"lensing"`
	Disk        bool `yaml:"disk"`
	TimeEffects bool `yaml:"time_effects"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			TargetFPS: DefaultFPS,
			Title:     "blackhole",
		},
		BlackHole: BlackHoleConfig{
			Mass:                DefaultMass,
			SchwarzschildRadius: DefaultRadius,
			ISCORadius:          DefaultISCO,
		},
		Disk: DiskConfig{
			OuterRadius:   DefaultDiskOuter,
			RotationSpeed: 1.0,
			HotColor:      RGB{255, 200, 50},
			CoolColor:     RGB{200, 50, 25},
		},
		Stars: StarConfig{
			Count:  DefaultStarCount,
			Spread: DefaultSpread,
		},
		Toggles: ToggleConfig{
			Lensing:     true,
			Disk:        true,
			TimeEffects: true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.TargetFPS <= 0 {
		return ErrBadWindow
	}
	if c.BlackHole.SchwarzschildRadius <= 0 {
		return ErrBadRadius
	}
	if c.BlackHole.ISCORadius < c.BlackHole.SchwarzschildRadius {
		return ErrBadISCO
	}
	if c.Disk.OuterRadius <= c.BlackHole.ISCORadius {
		return ErrBadDisk
	}
	if c.Stars.Count <= 0 || c.Stars.Spread <= 0 {
		return ErrBadStars
	}
	return nil
}
