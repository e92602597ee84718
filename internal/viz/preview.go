// Package viz renders the simulation into a terminal: the starfield and
// horizon on a braille canvas, the disk through the same shading math the
// GPU uses, and a dilation telemetry strip. It exists so the sim can run
// over SSH where raylib has no display.
package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/ashudevcodes/blackHole/internal/config"
	"github.com/ashudevcodes/blackHole/internal/optics"
	"github.com/ashudevcodes/blackHole/internal/physics"
	"github.com/ashudevcodes/blackHole/internal/render"
	"github.com/ashudevcodes/blackHole/internal/sim"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	previewDt       = 1.0 / 60
	historyCapacity = 240
	diskAngleSteps  = 96
	diskRadiusSteps = 10
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(40)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea state for the terminal preview. It steps the same
// sim.State as the GUI at a fixed 60 Hz tick.
type Model struct {
	st           *sim.State
	canvas       *Canvas
	dilationHist []float64
	running      bool
}

func NewModel(cfg *config.Config) (Model, error) {
	st, err := sim.New(cfg)
	if err != nil {
		return Model{}, err
	}
	return Model{
		st:           st,
		canvas:       NewCanvas(canvasWidth, canvasHeight),
		dilationHist: make([]float64, 0, historyCapacity),
		running:      true,
	}, nil
}

// Run blocks inside the bubbletea program until the user quits.
func Run(cfg *config.Config) error {
	m, err := NewModel(cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances the simulation on ticks. The key map
// mirrors the GUI: l/o/t toggles, w/s dolly, a/d strafe.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "l":
			m.st.ShowLensing = !m.st.ShowLensing
		case "o":
			m.st.ShowDisk = !m.st.ShowDisk
		case "t":
			m.st.ShowTimeEffects = !m.st.ShowTimeEffects
		case "w":
			m.st.Camera.Dolly(0.5)
		case "s":
			m.st.Camera.Dolly(-0.5)
		case "a":
			m.st.Camera.Strafe(-0.5)
		case "d":
			m.st.Camera.Strafe(0.5)
		}
	case TickMsg:
		if m.running {
			m.st.Update(previewDt)
			m.dilationHist = append(m.dilationHist, m.st.TimeDilation)
			if len(m.dilationHist) > historyCapacity {
				m.dilationHist = m.dilationHist[1:]
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m Model) View() string {
	m.draw()

	var s strings.Builder
	s.WriteString(headerStyle.Render("BLACK HOLE") + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.dilationHist) > 1 {
		chart := asciigraph.Plot(m.dilationHist,
			asciigraph.Height(4),
			asciigraph.Width(30),
			asciigraph.Caption("Time Dilation"),
		)
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Sim Time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.st.Time)) + "\n")
	s.WriteString(labelStyle.Render("Dilation") + valueStyle.Render(fmt.Sprintf("%.3f", m.st.TimeDilation)) + "\n")
	s.WriteString(labelStyle.Render("Distance") + valueStyle.Render(fmt.Sprintf("%.1f", m.st.CameraDistance())) + "\n")
	s.WriteString(labelStyle.Render("Lensing") + valueStyle.Render(onOff(m.st.ShowLensing)) + "\n")
	s.WriteString(labelStyle.Render("Disk") + valueStyle.Render(onOff(m.st.ShowDisk)) + "\n")
	s.WriteString(labelStyle.Render("Time FX") + valueStyle.Render(onOff(m.st.ShowTimeEffects)) + "\n")

	s.WriteString(helpStyle.Render("\nSP:Pause Q:Quit  L/O/T:Toggles\nW/S:Dolly A/D:Strafe"))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(s.String()),
	)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// draw rasterizes the scene: stars, disk samples, horizon, ISCO ring. When
// lensing is on, every projected point is displaced outward through the
// forward image of the lens field the shader samples backward.
func (m Model) draw() {
	m.canvas.Clear()
	sw, sh := m.canvas.Width*2, m.canvas.Height*4
	warp := m.warpFunc(sw, sh)

	for i := range m.st.Stars {
		if !m.st.StarVisible(m.st.Stars[i]) {
			continue
		}
		if x, y, ok := Project(m.st.Camera, m.st.Stars[i].Position, sw, sh); ok {
			m.plot(warp, x, y)
		}
	}

	if m.st.ShowDisk {
		m.drawDisk(warp, sw, sh)
	}
	m.drawHole(warp, sw, sh)
}

// warpFunc returns the screen-space lens displacement, or an in-place plot
// when lensing is off. The shader's strength constant is tuned for the GUI
// viewport; deflection scales with the square of the screen size, so the
// canvas gets it rescaled.
func (m Model) warpFunc(sw, sh int) func(x, y int) (int, int, bool) {
	if !m.st.ShowLensing {
		return func(x, y int) (int, int, bool) { return x, y, true }
	}
	scale := float64(sw) / float64(config.DefaultWidth)
	strength := float64(render.LensStrength(m.st.BlackHole.SchwarzschildRadius)) * scale * scale
	cx, cy := float64(sw)/2, float64(sh)/2

	return func(x, y int) (int, int, bool) {
		dx, dy := float64(x)-cx, float64(y)-cy
		r := math.Hypot(dx, dy)
		if r == 0 {
			return 0, 0, false
		}
		outR := optics.ImageRadius(r, strength)
		ox, oy := cx+dx/r*outR, cy+dy/r*outR
		if ox < 0 || ox >= float64(sw) || oy < 0 || oy >= float64(sh) {
			return 0, 0, false
		}
		return int(ox), int(oy), true
	}
}

// plot lights the lensed position of a projected point. The GPU samples the
// finished frame backward per output pixel; on a dot matrix the same image
// comes from pushing each source point forward through ImageRadius.
func (m Model) plot(warp func(int, int) (int, int, bool), x, y int) {
	if wx, wy, ok := warp(x, y); ok {
		m.canvas.Set(wx, wy)
	}
}

func (m Model) drawDisk(warp func(int, int) (int, int, bool), sw, sh int) {
	d := optics.DiskParams{
		InnerRadius: m.st.Disk.InnerRadius,
		OuterRadius: m.st.Disk.OuterRadius,
		HotColor:    colorTriple(m.st.Disk.HotColor),
		CoolColor:   colorTriple(m.st.Disk.CoolColor),
	}

	// Sample the annulus; keep the fragments the shader would keep and
	// whose alpha reads as lit on a binary dot matrix.
	for ri := 0; ri <= diskRadiusSteps; ri++ {
		r := d.InnerRadius + (d.OuterRadius-d.InnerRadius)*float64(ri)/diskRadiusSteps
		for ai := 0; ai < diskAngleSteps; ai++ {
			angle := float64(ai) / diskAngleSteps * 2 * math.Pi
			wx, wz := r*math.Cos(angle), r*math.Sin(angle)

			s, ok := optics.Shade(wx, wz, m.st.Time, d)
			if !ok || s.Alpha < 0.4 {
				continue
			}
			p := m.st.BlackHole.Position.Add(physics.Vec3{X: wx, Z: wz})
			if x, y, ok := Project(m.st.Camera, p, sw, sh); ok {
				m.plot(warp, x, y)
			}
		}
	}
}

func (m Model) drawHole(warp func(int, int) (int, int, bool), sw, sh int) {
	center := m.st.BlackHole.Position
	cx, cy, ok := Project(m.st.Camera, center, sw, sh)
	if !ok {
		return
	}

	// Horizon: filled silhouette. Rendered unwarped; the lens bends light
	// around the hole, not the hole itself.
	m.canvas.FillCircle(cx, cy, ProjectRadius(m.st.Camera, center, m.st.BlackHole.SchwarzschildRadius, sh))

	// ISCO ring in the disk plane.
	for ai := 0; ai < diskAngleSteps; ai++ {
		angle := float64(ai) / diskAngleSteps * 2 * math.Pi
		p := center.Add(physics.Vec3{
			X: m.st.BlackHole.ISCORadius * math.Cos(angle),
			Z: m.st.BlackHole.ISCORadius * math.Sin(angle),
		})
		if x, y, ok := Project(m.st.Camera, p, sw, sh); ok {
			m.plot(warp, x, y)
		}
	}
}

func colorTriple(c sim.Color) [3]float64 {
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}
