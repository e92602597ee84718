// Package sim holds the mutable world model: camera, black hole, accretion
// disk, starfield, the dilated simulation clock, and the display toggles.
package sim

import (
	"math/rand"
	"time"

	"github.com/ashudevcodes/blackHole/internal/config"
	"github.com/ashudevcodes/blackHole/internal/physics"
)

// Color is a plain RGBA value; the render layer converts it to whatever the
// GPU backend wants.
type Color struct {
	R, G, B, A uint8
}

// BlackHole holds the fixed parameters of the central mass. Immutable after
// New; there is no accretion dynamics.
type BlackHole struct {
	Position            physics.Vec3
	Mass                float64
	SchwarzschildRadius float64
	ISCORadius          float64
}

// AccretionDisk parameters. InnerRadius equals the ISCO radius at
// initialization. RotationSpeed and Temperature are reserved; the disk
// shader derives angular speed per-radius analytically.
type AccretionDisk struct {
	InnerRadius   float64
	OuterRadius   float64
	RotationSpeed float64
	Temperature   float64
	HotColor      Color
	CoolColor     Color
}

// Star is one point of the static background field. Stars never move.
type Star struct {
	Position   physics.Vec3
	Brightness float64
	Color      Color
}

// Camera is a perspective look-at camera. Input mutates it every frame;
// physics never does.
type Camera struct {
	Position physics.Vec3
	Target   physics.Vec3
	Up       physics.Vec3
	FOVY     float64
}

// Forward returns the normalized view direction.
func (c *Camera) Forward() physics.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Dolly moves the camera along its view direction. Positive steps move
// toward the target, negative away. The target stays fixed.
func (c *Camera) Dolly(step float64) {
	c.Position = c.Position.Add(c.Forward().Scale(step))
}

// Strafe moves the camera along its right vector, positive to the right.
func (c *Camera) Strafe(step float64) {
	right := c.Target.Sub(c.Position).Cross(c.Up).Normalize()
	c.Position = c.Position.Add(right.Scale(step))
}

// State is the whole mutable world: camera, black hole, disk, stars, the
// simulated clock and the display toggles. One goroutine owns it for the
// process lifetime.
type State struct {
	Camera    Camera
	BlackHole BlackHole
	Disk      AccretionDisk
	Stars     []Star

	// Time is the simulated clock fed to the disk shader. It only grows;
	// near the horizon it grows slower.
	Time         float64
	TimeDilation float64

	ShowLensing     bool
	ShowDisk        bool
	ShowTimeEffects bool
}

// New builds the initial world from cfg. The starfield is seeded once and
// never regenerated.
func New(cfg *config.Config) (*State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Stars.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	st := &State{
		Camera: Camera{
			Position: physics.Vec3{X: 0, Y: 5, Z: 30},
			Target:   physics.Vec3{},
			Up:       physics.Vec3{Y: 1},
			FOVY:     45,
		},
		BlackHole: BlackHole{
			Position:            physics.Vec3{},
			Mass:                cfg.BlackHole.Mass,
			SchwarzschildRadius: cfg.BlackHole.SchwarzschildRadius,
			ISCORadius:          cfg.BlackHole.ISCORadius,
		},
		Disk: AccretionDisk{
			InnerRadius:   cfg.BlackHole.ISCORadius,
			OuterRadius:   cfg.Disk.OuterRadius,
			RotationSpeed: cfg.Disk.RotationSpeed,
			Temperature:   cfg.Disk.Temperature,
			HotColor:      Color{cfg.Disk.HotColor.R, cfg.Disk.HotColor.G, cfg.Disk.HotColor.B, 255},
			CoolColor:     Color{cfg.Disk.CoolColor.R, cfg.Disk.CoolColor.G, cfg.Disk.CoolColor.B, 255},
		},
		Stars:           make([]Star, cfg.Stars.Count),
		TimeDilation:    1,
		ShowLensing:     cfg.Toggles.Lensing,
		ShowDisk:        cfg.Toggles.Disk,
		ShowTimeEffects: cfg.Toggles.TimeEffects,
	}

	spread := cfg.Stars.Spread
	for i := range st.Stars {
		st.Stars[i] = Star{
			Position: physics.Vec3{
				X: float64(rng.Intn(2*spread+1) - spread),
				Y: float64(rng.Intn(2*spread+1) - spread),
				Z: float64(rng.Intn(2*spread+1) - spread),
			},
			Brightness: float64(50+rng.Intn(206)) / 255.0,
		}
		v := uint8(st.Stars[i].Brightness * 255)
		st.Stars[i].Color = Color{v, v, v, 255}
	}

	return st, nil
}

// Update advances the simulated clock by one real frame delta. With time
// effects on, the delta is scaled by the dilation at the camera's current
// distance, so the disk appears to freeze as the camera falls toward the
// horizon. With them off the clock runs at wall rate and the last dilation
// value is kept for display.
func (s *State) Update(deltaReal float64) {
	dt := deltaReal
	if s.ShowTimeEffects {
		s.TimeDilation = physics.TimeDilation(s.Camera.Position, s.BlackHole.Position, s.BlackHole.SchwarzschildRadius)
		dt *= s.TimeDilation
	}
	s.Time += dt
}

// CameraDistance is the camera's distance to the black hole center.
func (s *State) CameraDistance() float64 {
	return s.Camera.Position.Distance(s.BlackHole.Position)
}

// StarVisible reports whether a star is far enough from the hole to draw.
// Stars within twice the Schwarzschild radius would poke through the
// horizon sphere, so the renderer skips them.
func (s *State) StarVisible(star Star) bool {
	return star.Position.Distance(s.BlackHole.Position) > 2*s.BlackHole.SchwarzschildRadius
}
