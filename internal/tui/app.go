// Package tui is the rendering/input collaborator: it drives the
// simulation once per frame, translates key presses into simulation
// commands, and draws the read-only snapshot onto a braille canvas.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/pendulab/internal/sim"
	"github.com/san-kum/pendulab/internal/trail"
	"github.com/san-kum/pendulab/internal/viz"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeLines   = 3 // header + blank + help
)

type tickMsg time.Time

// Model is the bubbletea model wrapping one Simulation. The simulation
// is ticked from the frame timer only, so update and render never
// overlap on a trail buffer.
type Model struct {
	sim       *sim.Simulation
	frameRate int
	frameDt   float64
	canvas    *viz.Canvas
	theme     viz.Theme

	titleStyle lipgloss.Style
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
	pauseStyle lipgloss.Style
	helpStyle  lipgloss.Style
	colorCache map[string]lipgloss.Style

	width, height int
	paused        bool
	lastFrame     time.Time
	fps           float64
}

func New(s *sim.Simulation, frameRate int, theme viz.Theme) Model {
	return Model{
		sim:        s,
		frameRate:  frameRate,
		frameDt:    1.0 / float64(frameRate),
		canvas:     viz.NewCanvas(defaultWidth, defaultHeight-chromeLines),
		theme:      theme,
		titleStyle: lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		labelStyle: lipgloss.NewStyle().Foreground(theme.Muted),
		valueStyle: lipgloss.NewStyle().Foreground(theme.Highlight),
		pauseStyle: lipgloss.NewStyle().Foreground(theme.Warning).Bold(true),
		helpStyle:  lipgloss.NewStyle().Foreground(theme.Muted),
		colorCache: make(map[string]lipgloss.Style),
		width:      defaultWidth,
		height:     defaultHeight,
	}
}

// Run starts the program in the alternate screen and blocks until the
// user quits.
func Run(s *sim.Simulation, frameRate int, theme viz.Theme) error {
	p := tea.NewProgram(New(s, frameRate, theme), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "Q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c", "C":
			m.sim.CreatePendulum()
		case "r", "R":
			m.sim.Reset()
		case "t", "T":
			m.sim.ToggleTrails()
		case " ":
			m.paused = !m.paused
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h := msg.Height - chromeLines
		if h < 4 {
			h = 4
		}
		w := msg.Width
		if w < 10 {
			w = 10
		}
		m.canvas = viz.NewCanvas(w, h)
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if dt := now.Sub(m.lastFrame).Seconds(); dt > 0 {
				// Exponential smoothing keeps the readout steady.
				m.fps = 0.9*m.fps + 0.1/dt
			}
		}
		m.lastFrame = now

		if !m.paused {
			// Fixed dt per frame keeps the trajectory deterministic
			// regardless of real frame jitter.
			m.sim.Tick(m.frameDt)
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) styleFor(hex string) lipgloss.Style {
	if s, ok := m.colorCache[hex]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	m.colorCache[hex] = s
	return s
}

// project maps a world point to sub-pixel canvas coordinates. World y
// points up; the pivot sits at the canvas center.
func (m Model) project(p trail.Point, scale float64) (int, int) {
	cx := float64(m.canvas.SubWidth()) / 2
	cy := float64(m.canvas.SubHeight()) / 2
	return int(cx + p.X*scale), int(cy - p.Y*scale)
}

func (m Model) View() string {
	snap := m.sim.Snapshot()
	m.canvas.Clear()

	reach := snap.Params.Length1 + snap.Params.Length2
	sub := m.canvas.SubWidth()
	if m.canvas.SubHeight() < sub {
		sub = m.canvas.SubHeight()
	}
	scale := 0.45 * float64(sub) / reach

	for i, pv := range snap.Pendulums {
		if snap.TrailsVisible {
			m.drawTrail(pv.Trail, i, scale)
		}
	}
	px, py := m.project(trail.Point{}, scale)
	for i, pv := range snap.Pendulums {
		b1x, b1y := m.project(pv.Bob1, scale)
		b2x, b2y := m.project(pv.Bob2, scale)
		m.canvas.DrawLine(px, py, b1x, b1y, i)
		m.canvas.DrawLine(b1x, b1y, b2x, b2y, i)
		m.canvas.DrawDot(b1x, b1y, i)
		m.canvas.DrawDot(b2x, b2y, i)
	}
	// Pivot on top, in the theme color.
	m.canvas.DrawDot(px, py, viz.NoColor)

	body := m.canvas.Render(func(color int, s string) string {
		if color == viz.NoColor || color >= len(snap.Pendulums) {
			return m.titleStyle.Render(s)
		}
		return m.styleFor(snap.Pendulums[color].Color).Render(s)
	})

	return m.header(snap) + "\n" + body + m.help()
}

func (m Model) drawTrail(points []trail.Point, color int, scale float64) {
	if len(points) < 2 {
		return
	}
	x0, y0 := m.project(points[0], scale)
	for _, p := range points[1:] {
		x1, y1 := m.project(p, scale)
		m.canvas.DrawLine(x0, y0, x1, y1, color)
		x0, y0 = x1, y1
	}
}

func (m Model) header(snap sim.Snapshot) string {
	trails := "on"
	if !snap.TrailsVisible {
		trails = "off"
	}
	var b strings.Builder
	b.WriteString(m.titleStyle.Render("pendulab"))
	b.WriteString(m.labelStyle.Render("  fps "))
	b.WriteString(m.valueStyle.Render(fmt.Sprintf("%.0f", m.fps)))
	b.WriteString(m.labelStyle.Render("  pendulums "))
	b.WriteString(m.valueStyle.Render(fmt.Sprintf("%d", len(snap.Pendulums))))
	b.WriteString(m.labelStyle.Render("  trails "))
	b.WriteString(m.valueStyle.Render(trails))
	if len(snap.Pendulums) > 0 {
		b.WriteString(m.labelStyle.Render("  energy "))
		b.WriteString(m.valueStyle.Render(fmt.Sprintf("%.2f", snap.Pendulums[0].Energy)))
	}
	if m.paused {
		b.WriteString("  ")
		b.WriteString(m.pauseStyle.Render("PAUSED"))
	}
	return b.String()
}

func (m Model) help() string {
	return m.helpStyle.Render("c create • r reset • t trails • space pause • q quit")
}
