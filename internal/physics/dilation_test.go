package physics

import (
	"math"
	"testing"
)

func TestTimeDilationAtHorizon(t *testing.T) {
	center := Vec3{}
	rs := 2.0

	tests := []struct {
		name string
		pos  Vec3
	}{
		{"inside", Vec3{X: 1}},
		{"at horizon", Vec3{X: 2}},
		{"at center", Vec3{}},
	}

	for _, tt := range tests {
		if got := TimeDilation(tt.pos, center, rs); got != 0 {
			t.Errorf("%s: expected 0, got %f", tt.name, got)
		}
	}
}

func TestTimeDilationKnownValue(t *testing.T) {
	// d = 2*rs with rs = 2 gives sqrt(1 - 2/4) = sqrt(0.5).
	got := TimeDilation(Vec3{X: 4}, Vec3{}, 2.0)
	want := math.Sqrt(0.5)

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %f, got %f", want, got)
	}
}

func TestTimeDilationMonotonic(t *testing.T) {
	center := Vec3{}
	rs := 2.0

	prev := 0.0
	for d := 2.5; d < 100; d += 0.5 {
		got := TimeDilation(Vec3{X: d}, center, rs)
		if got <= prev {
			t.Fatalf("dilation not strictly increasing at d=%f: %f <= %f", d, got, prev)
		}
		if got <= 0 || got > 1 {
			t.Fatalf("dilation out of (0,1] at d=%f: %f", d, got)
		}
		prev = got
	}
}

func TestTimeDilationFarField(t *testing.T) {
	got := TimeDilation(Vec3{X: 1e9}, Vec3{}, 2.0)
	if got < 0.999999 || got > 1 {
		t.Errorf("far-field dilation should approach 1, got %f", got)
	}
}

func TestCartesianToSpherical(t *testing.T) {
	tests := []struct {
		name              string
		pos               Vec3
		r, azimuth, polar float64
	}{
		{"+x axis", Vec3{X: 3}, 3, 0, math.Pi / 2},
		{"+z axis", Vec3{Z: 5}, 5, math.Pi / 2, math.Pi / 2},
		{"+y axis", Vec3{Y: 2}, 2, 0, 0},
		{"-y axis", Vec3{Y: -2}, 2, 0, math.Pi},
	}

	for _, tt := range tests {
		r, az, pol := CartesianToSpherical(tt.pos)
		if math.Abs(r-tt.r) > 1e-9 {
			t.Errorf("%s: radius %f, want %f", tt.name, r, tt.r)
		}
		if math.Abs(az-tt.azimuth) > 1e-9 {
			t.Errorf("%s: azimuth %f, want %f", tt.name, az, tt.azimuth)
		}
		if math.Abs(pol-tt.polar) > 1e-9 {
			t.Errorf("%s: polar %f, want %f", tt.name, pol, tt.polar)
		}
	}
}

func TestOrbitalRate(t *testing.T) {
	if got := OrbitalRate(4); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected 0.5, got %f", got)
	}
	if got := OrbitalRate(0); got != 0 {
		t.Errorf("expected 0 for degenerate radius, got %f", got)
	}
	// Inner orbits spin faster.
	if OrbitalRate(6) <= OrbitalRate(20) {
		t.Error("orbital rate should fall off with radius")
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{X: 1}.Cross(Vec3{Y: 1})
	if got != (Vec3{Z: 1}) {
		t.Errorf("x cross y should be z, got %+v", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("normalizing zero vector should stay zero, got %+v", got)
	}
}
