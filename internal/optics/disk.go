package optics

import (
	"math"

	"github.com/ashudevcodes/blackHole/internal/physics"
)

// DiskParams are the disk shader uniforms that matter to shading. Colors
// are float triples in [0,1], matching the vec3 uniforms.
type DiskParams struct {
	InnerRadius float64
	OuterRadius float64
	HotColor    [3]float64
	CoolColor   [3]float64
}

// Sample is one shaded disk fragment. Channels can exceed 1 where the
// Doppler tint brightens the approaching side; display layers clamp.
type Sample struct {
	R, G, B float64
	Alpha   float64
}

// Noise is the shader's hash noise: fract(sin(dot(p,(127.1,311.7)))*43758.5453).
// Deterministic, unsigned, in [0,1).
func Noise(p Vec2) float64 {
	s := math.Sin(p.X*127.1+p.Y*311.7) * 43758.5453
	return s - math.Floor(s)
}

// Temperature is the disk's radial heat gradient: 1 at the inner edge,
// 0 at the outer, square-rooted to widen the hot region.
func Temperature(r float64, d DiskParams) float64 {
	return math.Sqrt((d.OuterRadius - r) / (d.OuterRadius - d.InnerRadius))
}

// Shade colors the disk point at planar offset (x, z) from the hole at
// simulated time t. The bool is false where the fragment is discarded:
// at or outside either radial bound. The formulas are the fragment
// shader's, term for term.
func Shade(x, z, t float64, d DiskParams) (Sample, bool) {
	r := math.Hypot(x, z)
	if r <= d.InnerRadius || r >= d.OuterRadius {
		return Sample{}, false
	}

	angle := math.Atan2(z, x)
	temp := Temperature(r, d)

	// Keplerian-like rotation, then two octaves of turbulence drifting
	// with time.
	angle += t * physics.OrbitalRate(r)
	nc := Vec2{X: angle*3 + t*0.1, Y: r * 0.1}
	turbulence := Noise(nc)*0.5 + Noise(Vec2{X: nc.X * 2, Y: nc.Y * 2})*0.25

	mixAmount := temp + turbulence*0.3
	doppler := 1 + math.Sin(angle)*0.3

	out := Sample{Alpha: temp * (0.7 + turbulence*0.3)}
	out.R = lerp(d.CoolColor[0], d.HotColor[0], mixAmount) * doppler
	out.G = lerp(d.CoolColor[1], d.HotColor[1], mixAmount) * doppler
	out.B = lerp(d.CoolColor[2], d.HotColor[2], mixAmount) * doppler
	return out, true
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
