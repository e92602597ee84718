package viz

import (
	"math"

	"github.com/ashudevcodes/blackHole/internal/physics"
	"github.com/ashudevcodes/blackHole/internal/sim"
)

const nearPlane = 0.1

// Project maps a world point through the sim's look-at camera onto a
// sub-pixel grid of sw x sh. Returns false for points at or behind the
// near plane; on-screen clipping is the canvas's job.
func Project(cam sim.Camera, p physics.Vec3, sw, sh int) (x, y int, ok bool) {
	forward := cam.Forward()
	right := forward.Cross(cam.Up).Normalize()
	up := right.Cross(forward)

	rel := p.Sub(cam.Position)
	depth := rel.Dot(forward)
	if depth <= nearPlane {
		return 0, 0, false
	}

	// Vertical field of view fixes the focal length; braille cells are
	// half as wide as they are tall in sub-pixels, which roughly cancels
	// the glyph aspect ratio.
	f := float64(sh) / 2 / math.Tan(cam.FOVY/2*math.Pi/180)
	x = sw/2 + int(rel.Dot(right)/depth*f)
	y = sh/2 - int(rel.Dot(up)/depth*f)
	return x, y, true
}

// ProjectRadius converts a world-space radius at the given world point to
// sub-pixels, using the same focal length as Project.
func ProjectRadius(cam sim.Camera, at physics.Vec3, r float64, sh int) int {
	depth := at.Sub(cam.Position).Dot(cam.Forward())
	if depth <= nearPlane {
		return 0
	}
	f := float64(sh) / 2 / math.Tan(cam.FOVY/2*math.Pi/180)
	return int(r / depth * f)
}
