// Package optics is the CPU side of the two fragment shaders: the same
// radial lens deflection and procedural disk shading, in Go. The terminal
// preview renders through it, and it pins down the shader math where a GPU
// is not available to test.
package optics

import "math"

// Vec2 is a 2-component screen-space vector.
type Vec2 struct {
	X, Y float64
}

// Deflect bends a ray at screen radius r by strength/r and returns the new
// radius. Inverse-radius deflection: light passing close to the center
// bends hard, distant light barely. Not a geodesic, a post-process.
func Deflect(r, strength float64) float64 {
	return r - strength/r
}

// ImageRadius returns the screen radius at which a source feature at radius
// r appears once lensed: the positive root of out - strength/out = r, the
// inverse of Deflect along a fixed angle. Every image lands at or outside
// sqrt(strength), which is what leaves the central disk black.
func ImageRadius(r, strength float64) float64 {
	return (r + math.Sqrt(r*r+4*strength)) / 2
}

// Warp maps an output pixel p to the scene coordinate the lens samples.
// ok is false when the pixel shows the hole itself: at the exact center,
// when the deflected radius collapses to or past zero (the ray fell in),
// or when the source falls outside the rendered screen (the ray escaped
// the frame). All three render opaque black.
func Warp(p, center Vec2, strength float64, screen Vec2) (src Vec2, ok bool) {
	dx, dy := p.X-center.X, p.Y-center.Y
	r := math.Hypot(dx, dy)
	if r == 0 {
		return Vec2{}, false
	}

	newR := Deflect(r, strength)
	if newR <= 0 {
		return Vec2{}, false
	}

	src = Vec2{
		X: center.X + dx/r*newR,
		Y: center.Y + dy/r*newR,
	}
	u, v := src.X/screen.X, src.Y/screen.Y
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return Vec2{}, false
	}
	return src, true
}
