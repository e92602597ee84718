// Package gui owns the raylib window and the frame loop: update the
// simulation, handle input, draw through the render pipeline, overlay the
// HUD. One thread, one frame at a time, 60 FPS target.
package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ashudevcodes/blackHole/internal/config"
	"github.com/ashudevcodes/blackHole/internal/render"
	"github.com/ashudevcodes/blackHole/internal/sim"
)

// Camera movement per held-key frame, in world units. Deliberately not
// scaled by time dilation: the observer's controls don't slow down.
const cameraStep = 0.5

// Theme colors.
var (
	colTitle = rl.White
	colHelp  = rl.Gray
	colStat  = rl.Yellow
	colFPS   = rl.Green
)

type App struct {
	state *sim.State
	pipe  *render.Pipeline
}

// Run opens the window, builds the world and the pipeline, and blocks in
// the frame loop until the window is closed. Fatal resource failures abort
// inside raylib; everything reachable from here returns an error instead.
func Run(cfg *config.Config) error {
	st, err := sim.New(cfg)
	if err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(cfg.Window.TargetFPS)

	pipe := render.NewPipeline(cfg.Window.Width, cfg.Window.Height)
	defer pipe.Close()

	app := &App{state: st, pipe: pipe}
	for !rl.WindowShouldClose() {
		app.Update()
		app.Draw()
	}
	return nil
}

// Update advances the simulated clock by the last real frame time, then
// applies input. D is taken by strafing, so the disk toggle lives on O.
func (a *App) Update() {
	a.state.Update(float64(rl.GetFrameTime()))

	if rl.IsKeyPressed(rl.KeyL) {
		a.state.ShowLensing = !a.state.ShowLensing
	}
	if rl.IsKeyPressed(rl.KeyO) {
		a.state.ShowDisk = !a.state.ShowDisk
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.state.ShowTimeEffects = !a.state.ShowTimeEffects
	}

	if rl.IsKeyDown(rl.KeyW) {
		a.state.Camera.Dolly(cameraStep)
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.state.Camera.Dolly(-cameraStep)
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.state.Camera.Strafe(-cameraStep)
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.state.Camera.Strafe(cameraStep)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	a.pipe.Draw(a.state)
	a.drawHUD()

	rl.EndDrawing()
}

func (a *App) drawHUD() {
	rl.DrawText("Black Hole Simulation", 10, 10, 20, colTitle)
	rl.DrawText("L - toggle lensing", 10, 40, 16, colHelp)
	rl.DrawText("O - toggle accretion disk", 10, 60, 16, colHelp)
	rl.DrawText("T - toggle time effects", 10, 80, 16, colHelp)
	rl.DrawText("WASD - move camera", 10, 100, 16, colHelp)

	if a.state.ShowTimeEffects {
		rl.DrawText(fmt.Sprintf("Time Dilation: %.3f", a.state.TimeDilation), 10, 140, 16, colStat)
	}

	rl.DrawText(fmt.Sprintf("FPS: %d", rl.GetFPS()), int32(rl.GetScreenWidth())-100, 10, 16, colFPS)
}
