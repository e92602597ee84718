package sim

import (
	"math"
	"testing"

	"github.com/ashudevcodes/blackHole/internal/config"
	"github.com/ashudevcodes/blackHole/internal/physics"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Stars.Seed = 1
	st, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return st
}

func TestNewSeedsWorld(t *testing.T) {
	st := newTestState(t)

	if st.Camera.Position != (physics.Vec3{X: 0, Y: 5, Z: 30}) {
		t.Errorf("unexpected camera position %+v", st.Camera.Position)
	}
	if st.BlackHole.SchwarzschildRadius != 2 || st.BlackHole.ISCORadius != 6 {
		t.Errorf("unexpected black hole radii %+v", st.BlackHole)
	}
	if st.Disk.InnerRadius != st.BlackHole.ISCORadius {
		t.Error("disk inner radius must equal the isco radius")
	}
	if st.Disk.OuterRadius != 20 {
		t.Errorf("unexpected disk outer radius %f", st.Disk.OuterRadius)
	}
	if st.Time != 0 || st.TimeDilation != 1 {
		t.Errorf("clock should start at 0 with dilation 1, got %f/%f", st.Time, st.TimeDilation)
	}
	if !st.ShowLensing || !st.ShowDisk || !st.ShowTimeEffects {
		t.Error("all toggles should start on")
	}
}

func TestNewStarfield(t *testing.T) {
	st := newTestState(t)

	if len(st.Stars) != config.DefaultStarCount {
		t.Fatalf("expected %d stars, got %d", config.DefaultStarCount, len(st.Stars))
	}
	for i, star := range st.Stars {
		for _, c := range []float64{star.Position.X, star.Position.Y, star.Position.Z} {
			if c < -100 || c > 100 || c != math.Trunc(c) {
				t.Fatalf("star %d: coordinate %f outside integer [-100,100]", i, c)
			}
		}
		if star.Brightness < 50.0/255.0 || star.Brightness > 1 {
			t.Fatalf("star %d: brightness %f out of range", i, star.Brightness)
		}
		if star.Color.R != star.Color.G || star.Color.G != star.Color.B {
			t.Fatalf("star %d: color should be grayscale, got %+v", i, star.Color)
		}
	}
}

func TestNewStarfieldReproducible(t *testing.T) {
	a := newTestState(t)
	b := newTestState(t)

	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs between equally seeded runs", i)
		}
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.BlackHole.SchwarzschildRadius = 0

	if _, err := New(cfg); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestUpdateUnscaled(t *testing.T) {
	st := newTestState(t)
	st.ShowTimeEffects = false

	const delta = 1.0 / 64 // exact binary fraction
	for i := 0; i < 100; i++ {
		st.Update(delta)
	}

	if st.Time != 100*delta {
		t.Errorf("expected exactly %f, got %f", 100*delta, st.Time)
	}
	if st.TimeDilation != 1 {
		t.Errorf("dilation should not be recomputed when time effects are off, got %f", st.TimeDilation)
	}
}

func TestUpdateScaled(t *testing.T) {
	st := newTestState(t)

	st.Update(1.0)

	wantDilation := physics.TimeDilation(st.Camera.Position, st.BlackHole.Position, st.BlackHole.SchwarzschildRadius)
	if math.Abs(st.TimeDilation-wantDilation) > 1e-12 {
		t.Errorf("expected dilation %f, got %f", wantDilation, st.TimeDilation)
	}
	if math.Abs(st.Time-wantDilation) > 1e-12 {
		t.Errorf("first delta should accumulate scaled: want %f, got %f", wantDilation, st.Time)
	}
}

func TestUpdateNonDecreasing(t *testing.T) {
	for _, effects := range []bool{true, false} {
		st := newTestState(t)
		st.ShowTimeEffects = effects

		prev := st.Time
		for i := 0; i < 50; i++ {
			st.Update(0.016)
			if st.Time < prev {
				t.Fatalf("time went backwards with effects=%v", effects)
			}
			prev = st.Time
			st.Camera.Dolly(0.5) // keep falling in
		}
	}
}

func TestUpdateFrozenInsideHorizon(t *testing.T) {
	st := newTestState(t)
	st.Camera.Position = physics.Vec3{X: 1} // inside rs=2

	st.Update(1.0)

	if st.TimeDilation != 0 {
		t.Errorf("dilation should clamp to 0 inside horizon, got %f", st.TimeDilation)
	}
	if st.Time != 0 {
		t.Errorf("clock should freeze inside horizon, got %f", st.Time)
	}
}

func TestTogglesDoNotAffectPhysics(t *testing.T) {
	st := newTestState(t)

	st.Update(0.016)
	wantTime, wantDilation := st.Time, st.TimeDilation

	st.ShowLensing = false
	st.ShowDisk = false
	if st.Time != wantTime || st.TimeDilation != wantDilation {
		t.Error("render toggles must not touch physics values")
	}

	st.Update(0.016)
	st2 := newTestState(t)
	st2.Update(0.016)
	st2.Update(0.016)
	if math.Abs(st.Time-st2.Time) > 1e-12 {
		t.Errorf("lensing toggle changed the clock: %f vs %f", st.Time, st2.Time)
	}
}

func TestStarVisible(t *testing.T) {
	st := newTestState(t)

	tests := []struct {
		name string
		pos  physics.Vec3
		want bool
	}{
		{"at center", physics.Vec3{}, false},
		{"just inside cutoff", physics.Vec3{X: 3.9}, false},
		{"at cutoff", physics.Vec3{X: 4}, false},
		{"just outside", physics.Vec3{X: 4.1}, true},
		{"far away", physics.Vec3{X: 80, Y: -30, Z: 12}, true},
	}

	for _, tt := range tests {
		if got := st.StarVisible(Star{Position: tt.pos}); got != tt.want {
			t.Errorf("%s: visible=%v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCameraDolly(t *testing.T) {
	st := newTestState(t)
	before := st.CameraDistance()

	st.Camera.Dolly(0.5)

	if math.Abs(st.CameraDistance()-(before-0.5)) > 1e-9 {
		t.Errorf("dolly toward target should shrink distance by step: %f -> %f", before, st.CameraDistance())
	}

	st.Camera.Dolly(-0.5)
	if math.Abs(st.CameraDistance()-before) > 1e-9 {
		t.Errorf("dolly back should restore distance, got %f", st.CameraDistance())
	}
}

func TestCameraStrafe(t *testing.T) {
	st := newTestState(t)

	st.Camera.Strafe(0.5)

	// Strafe is perpendicular to the old view direction, so the distance to
	// the target grows slightly but stays close.
	d := st.CameraDistance()
	want := math.Sqrt(30.4138*30.4138 + 0.25) // |(0,5,30)| with 0.5 sideways
	if math.Abs(d-want) > 1e-3 {
		t.Errorf("strafe distance %f, want about %f", d, want)
	}
}
