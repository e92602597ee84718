package physics

import "math"

// TimeDilation returns the gravitational time dilation factor sqrt(1 - rs/r)
// for an observer at distance r from a non-rotating mass with Schwarzschild
// radius rs. At or inside the horizon the factor clamps to 0 (frozen time)
// rather than going complex.
func TimeDilation(observer, center Vec3, schwarzschildRadius float64) float64 {
	d := observer.Distance(center)
	if d <= schwarzschildRadius {
		return 0
	}
	factor := 1 - schwarzschildRadius/d
	if factor <= 0 {
		return 0
	}
	return math.Sqrt(factor)
}

// CartesianToSpherical converts a position to (radius, azimuth, polar).
// Azimuth is measured in the XZ plane from +X, polar from +Y.
// Undefined for the zero vector; callers guard radius = 0.
func CartesianToSpherical(p Vec3) (radius, azimuth, polar float64) {
	radius = p.Length()
	azimuth = math.Atan2(p.Z, p.X)
	polar = math.Acos(p.Y / radius)
	return radius, azimuth, polar
}

// OrbitalRate is the Keplerian-like angular rate 1/sqrt(r) the accretion
// disk shader advances its angle by. It is a visual tuning, not a geodesic
// orbit; the same formula drives the terminal preview.
func OrbitalRate(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return 1 / math.Sqrt(r)
}
