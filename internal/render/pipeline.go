// Package render draws the scene with raylib: the starfield, the shader-lit
// accretion disk, the horizon sphere, and the optional full-screen lens pass
// through an offscreen target.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ashudevcodes/blackHole/internal/physics"
	"github.com/ashudevcodes/blackHole/internal/sim"
)

// Mode selects the per-frame render path.
type Mode int

const (
	// ModeDirect draws the scene straight into the framebuffer.
	ModeDirect Mode = iota
	// ModeLensed draws into the offscreen target and composites it through
	// the lens shader.
	ModeLensed
)

func (m Mode) String() string {
	if m == ModeLensed {
		return "lensed"
	}
	return "direct"
}

// ModeFor maps the lensing toggle to a render path.
func ModeFor(st *sim.State) Mode {
	if st.ShowLensing {
		return ModeLensed
	}
	return ModeDirect
}

// LensStrength is the lens shader's deflection scale for a hole with the
// given Schwarzschild radius. The 5000 is visually tuned for the default
// viewport, not physically derived.
func LensStrength(schwarzschildRadius float64) float32 {
	return float32(schwarzschildRadius * 5000)
}

// Pipeline owns the GPU resources: both shader programs, their uniform
// locations, and the offscreen color target. Allocated once at startup for
// a fixed viewport, released by Close.
type Pipeline struct {
	width, height int32

	disk rl.Shader
	lens rl.Shader

	target rl.RenderTexture2D

	diskTimeLoc   int32
	diskCenterLoc int32
	diskInnerLoc  int32
	diskOuterLoc  int32
	diskHotLoc    int32
	diskCoolLoc   int32

	lensCenterLoc   int32
	lensStrengthLoc int32
	lensScreenLoc   int32
}

// NewPipeline compiles the shaders and allocates the offscreen target.
// Raylib aborts on its own trace when a resource cannot be created; there
// is no graceful degradation below this layer.
func NewPipeline(width, height int32) *Pipeline {
	p := &Pipeline{
		width:  width,
		height: height,
		disk:   rl.LoadShaderFromMemory(diskVertexShader, diskFragmentShader),
		lens:   rl.LoadShaderFromMemory(lensVertexShader, lensFragmentShader),
		target: rl.LoadRenderTexture(width, height),
	}

	p.diskTimeLoc = rl.GetShaderLocation(p.disk, "time")
	p.diskCenterLoc = rl.GetShaderLocation(p.disk, "blackHolePos")
	p.diskInnerLoc = rl.GetShaderLocation(p.disk, "innerRadius")
	p.diskOuterLoc = rl.GetShaderLocation(p.disk, "outerRadius")
	p.diskHotLoc = rl.GetShaderLocation(p.disk, "hotColor")
	p.diskCoolLoc = rl.GetShaderLocation(p.disk, "coolColor")

	p.lensCenterLoc = rl.GetShaderLocation(p.lens, "lensCenter")
	p.lensStrengthLoc = rl.GetShaderLocation(p.lens, "lensStrength")
	p.lensScreenLoc = rl.GetShaderLocation(p.lens, "screenSize")

	return p
}

// Close releases the offscreen target and both shader programs.
func (p *Pipeline) Close() {
	rl.UnloadRenderTexture(p.target)
	rl.UnloadShader(p.disk)
	rl.UnloadShader(p.lens)
}

// Draw renders one frame of st into the framebuffer, routing through the
// offscreen target when lensing is on.
func (p *Pipeline) Draw(st *sim.State) {
	switch ModeFor(st) {
	case ModeLensed:
		rl.BeginTextureMode(p.target)
		rl.ClearBackground(rl.Black)
		rl.BeginMode3D(camera3D(st.Camera))
		p.drawScene(st)
		rl.EndMode3D()
		rl.EndTextureMode()

		p.setLensUniforms(st)
		rl.BeginShaderMode(p.lens)
		// Negative source height flips the texture: render textures store
		// rows bottom-up.
		src := rl.NewRectangle(0, 0, float32(p.width), -float32(p.height))
		rl.DrawTextureRec(p.target.Texture, src, rl.NewVector2(0, 0), rl.White)
		rl.EndShaderMode()
	default:
		rl.BeginMode3D(camera3D(st.Camera))
		p.drawScene(st)
		rl.EndMode3D()
	}
}

// drawScene draws into whatever target is currently bound, in fixed order:
// stars, disk, hole. The horizon sphere goes last so it occludes disk
// fragments behind it.
func (p *Pipeline) drawScene(st *sim.State) {
	p.drawStarfield(st)
	if st.ShowDisk {
		p.drawDisk(st)
	}
	p.drawBlackHole(st)
}

func (p *Pipeline) drawStarfield(st *sim.State) {
	for i := range st.Stars {
		if !st.StarVisible(st.Stars[i]) {
			continue
		}
		c := st.Stars[i].Color
		rl.DrawCube(vector3(st.Stars[i].Position), 0.2, 0.2, 0.2, rl.NewColor(c.R, c.G, c.B, c.A))
	}
}

func (p *Pipeline) drawDisk(st *sim.State) {
	// Uniforms go stale between binds, so set all six fresh every frame
	// on both render paths.
	p.setDiskUniforms(st)

	center := st.BlackHole.Position
	bottom := vector3(center)
	bottom.Y -= 0.1
	top := vector3(center)
	top.Y += 0.1

	rl.BeginShaderMode(p.disk)
	rl.DrawCylinderEx(bottom, top, float32(st.Disk.OuterRadius), float32(st.Disk.InnerRadius), 32, rl.Orange)
	rl.EndShaderMode()
}

func (p *Pipeline) drawBlackHole(st *sim.State) {
	center := vector3(st.BlackHole.Position)
	rl.DrawSphere(center, float32(st.BlackHole.SchwarzschildRadius), rl.Black)

	// ISCO marker: a flat ring in the disk plane, not geometry-true to
	// warped spacetime.
	rl.DrawCircle3D(center, float32(st.BlackHole.ISCORadius), rl.NewVector3(1, 0, 0), 90, rl.Fade(rl.Yellow, 0.3))
}

func (p *Pipeline) setDiskUniforms(st *sim.State) {
	bh := st.BlackHole.Position
	rl.SetShaderValue(p.disk, p.diskTimeLoc, []float32{float32(st.Time)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(p.disk, p.diskCenterLoc, []float32{float32(bh.X), float32(bh.Y), float32(bh.Z)}, rl.ShaderUniformVec3)
	rl.SetShaderValue(p.disk, p.diskInnerLoc, []float32{float32(st.Disk.InnerRadius)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(p.disk, p.diskOuterLoc, []float32{float32(st.Disk.OuterRadius)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(p.disk, p.diskHotLoc, colorTriple(st.Disk.HotColor), rl.ShaderUniformVec3)
	rl.SetShaderValue(p.disk, p.diskCoolLoc, colorTriple(st.Disk.CoolColor), rl.ShaderUniformVec3)
}

func (p *Pipeline) setLensUniforms(st *sim.State) {
	w, h := float32(p.width), float32(p.height)
	rl.SetShaderValue(p.lens, p.lensCenterLoc, []float32{w * 0.5, h * 0.5}, rl.ShaderUniformVec2)
	rl.SetShaderValue(p.lens, p.lensStrengthLoc, []float32{LensStrength(st.BlackHole.SchwarzschildRadius)}, rl.ShaderUniformFloat)
	rl.SetShaderValue(p.lens, p.lensScreenLoc, []float32{w, h}, rl.ShaderUniformVec2)
}

// colorTriple converts an 8-bit color to the [0,1] vec3 the disk shader
// expects.
func colorTriple(c sim.Color) []float32 {
	return []float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
}

func vector3(v physics.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

func camera3D(c sim.Camera) rl.Camera3D {
	return rl.NewCamera3D(vector3(c.Position), vector3(c.Target), vector3(c.Up), float32(c.FOVY), rl.CameraPerspective)
}
