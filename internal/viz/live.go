package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/orbitsim/internal/body"
	"github.com/san-kum/orbitsim/internal/config"
	"github.com/san-kum/orbitsim/internal/gravity"
	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/units"
	"github.com/san-kum/orbitsim/internal/vec"
)

const (
	width           = 80
	height          = 24
	trailCapacity   = 1500
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives the simulator from the rendering loop: each frame it
// feeds the elapsed wall time to the simulator and redraws whatever
// state comes out. Trails collect one point per sub-step through the
// simulator's hook, so fast bodies leave smooth curves even when a
// frame covers many integration steps.
type Model struct {
	sim      *sim.Simulator
	eval     *gravity.Evaluator
	initial  []body.Body
	name     string
	canvas   *Canvas
	trails   map[string][]vec.V3
	colors   []lipgloss.Style
	zoom     float64 // AU from center to the top edge
	running  bool
	showHelp bool
	lastTick time.Time
	e0       float64
	drift    []float64
	err      error
}

// NewModel builds the simulator for a scenario and wraps it for
// interactive display.
func NewModel(cfg *config.Config) (Model, error) {
	system, err := cfg.BuildSystem()
	if err != nil {
		return Model{}, err
	}
	policy, err := cfg.BuildPolicy()
	if err != nil {
		return Model{}, err
	}

	eval := gravity.NewEvaluator(units.Solar().G, cfg.Softening)

	trails := make(map[string][]vec.V3, len(system.Bodies))
	hook := func(s *body.System) {
		for i := range s.Bodies {
			name := s.Bodies[i].Name
			tr := append(trails[name], s.Bodies[i].Position)
			if len(tr) > trailCapacity {
				tr = tr[1:]
			}
			trails[name] = tr
		}
	}

	simulator := sim.New(system, eval, sim.WithPolicy(policy), sim.WithSubStepHook(hook))

	initial := make([]body.Body, len(system.Bodies))
	copy(initial, system.Bodies)

	zoom := 0.0
	for i := range system.Bodies {
		if r := system.Bodies[i].Position.Norm(); r > zoom {
			zoom = r
		}
	}
	zoom *= 1.3
	if zoom < 1e-3 {
		zoom = 1.0
	}

	return Model{
		sim:     simulator,
		eval:    eval,
		initial: initial,
		name:    cfg.Name,
		canvas:  NewCanvas(width, height),
		trails:  trails,
		colors:  Palette(len(system.Bodies)),
		zoom:    zoom,
		running: true,
		e0:      system.Energy(eval.G, eval.Softening),
		drift:   make([]float64, 0, historyCapacity),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.lastTick = time.Time{}
		case "r":
			m.reset()
		case "+", "=":
			m.zoom *= 0.8
		case "-", "_":
			m.zoom /= 0.8
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running && m.err == nil {
			elapsed := now.Sub(m.lastTick)
			if m.lastTick.IsZero() || elapsed > 250*time.Millisecond {
				elapsed = time.Second / 60
			}
			if err := m.sim.Tick(elapsed); err != nil {
				m.err = err
				m.running = false
			}
			m.recordDrift()
		}
		m.lastTick = now
		m.draw()
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) reset() {
	m.sim.Reset(m.initial)
	for name := range m.trails {
		m.trails[name] = m.trails[name][:0]
	}
	m.e0 = m.sim.System().Energy(m.eval.G, m.eval.Softening)
	m.drift = m.drift[:0]
	m.err = nil
	m.running = true
	m.lastTick = time.Time{}
}

func (m *Model) recordDrift() {
	if m.e0 == 0 {
		return
	}
	e := m.sim.System().Energy(m.eval.G, m.eval.Softening)
	m.drift = append(m.drift, (e-m.e0)/m.e0)
	if len(m.drift) > historyCapacity {
		m.drift = m.drift[1:]
	}
}

// project maps AU coordinates to sub-pixel canvas coordinates. The
// x axis is compressed by half so orbits look round on a terminal's
// tall character cells.
func (m *Model) project(p vec.V3) (int, int) {
	cw, ch := width*2, height*4
	scale := float64(ch) / (2 * m.zoom)
	px := cw/2 + int(p.X*scale)
	py := ch/2 - int(p.Y*scale)
	return px, py
}

func (m *Model) draw() {
	m.canvas.Clear()

	sys := m.sim.System()
	for i := range sys.Bodies {
		for _, p := range m.trails[sys.Bodies[i].Name] {
			x, y := m.project(p)
			m.canvas.Set(x, y)
		}
	}
	for i := range sys.Bodies {
		x, y := m.project(sys.Bodies[i].Position)
		radius := 1
		if i == 0 {
			radius = 2
		}
		m.canvas.Blob(x, y, radius)
	}
}

func (m Model) View() string {
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.name)) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(errorStyle.Render(fmt.Sprintf("DIVERGED: %v", m.err)) + "\n\n")
	case m.running:
		s.WriteString(runningStyle.Render("RUNNING") + "\n\n")
	default:
		s.WriteString(pausedStyle.Render("PAUSED") + "\n\n")
	}

	if len(m.drift) > 1 {
		chart := asciigraph.Plot(m.drift, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Energy drift"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	sys := m.sim.System()
	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(formatSimTime(sys.Time)) + "\n")
	s.WriteString(labelStyle.Render("Zoom") + valueStyle.Render(fmt.Sprintf("%.3g AU", m.zoom)) + "\n")
	if len(m.drift) > 0 {
		s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%.2e", m.drift[len(m.drift)-1])) + "\n")
	}

	s.WriteString("\nBODIES\n")
	for i := range sys.Bodies {
		b := &sys.Bodies[i]
		line := fmt.Sprintf("%-10s r=%.3f AU", b.Name, b.Position.Norm())
		s.WriteString("  " + m.colors[i].Render(line) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n+/-:Zoom ?:Help"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset to initial state   ║
║  +/-      - Zoom in / out            ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func formatSimTime(seconds float64) string {
	years := seconds / units.SecondsPerYear
	if years >= 0.1 {
		return fmt.Sprintf("%.2f yr", years)
	}
	return fmt.Sprintf("%.1f d", seconds/86400)
}
