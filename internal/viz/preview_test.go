package viz

import (
	"math"
	"testing"

	"github.com/ashudevcodes/blackHole/internal/config"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Stars.Seed = 1
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func TestWarpFuncDisplacesOutward(t *testing.T) {
	m := newTestModel(t)
	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	warp := m.warpFunc(sw, sh)
	cx, cy := float64(sw)/2, float64(sh)/2

	// A point near the hole must be plotted farther from the canvas center
	// than its straight-line projection, matching the light bending around
	// the silhouette rather than falling into it.
	x, y := sw/2+10, sh/2
	wx, wy, ok := warp(x, y)
	if !ok {
		t.Fatal("lensed point should stay on canvas")
	}
	before := math.Hypot(float64(x)-cx, float64(y)-cy)
	after := math.Hypot(float64(wx)-cx, float64(wy)-cy)
	if after <= before {
		t.Errorf("lensing must push the image outward: %f -> %f", before, after)
	}
}

func TestWarpFuncCenterAndEdges(t *testing.T) {
	m := newTestModel(t)
	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	warp := m.warpFunc(sw, sh)

	if _, _, ok := warp(sw/2, sh/2); ok {
		t.Error("point at the lens center has no image direction")
	}
	// A point already near the right edge gets pushed off the canvas.
	if _, _, ok := warp(sw-1, sh/2); ok {
		t.Error("image displaced past the canvas edge should be dropped")
	}
}

func TestWarpFuncIdentityWhenLensingOff(t *testing.T) {
	m := newTestModel(t)
	m.st.ShowLensing = false
	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	warp := m.warpFunc(sw, sh)

	x, y, ok := warp(30, 70)
	if !ok || x != 30 || y != 70 {
		t.Errorf("with lensing off points plot in place, got (%d,%d,%v)", x, y, ok)
	}
}
