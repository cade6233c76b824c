package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravsim/internal/world"
)

const (
	canvasWidth     = 80
	canvasHeight    = 24
	historyCapacity = 600
	frameRate       = 30
)

type TickMsg time.Time

// dot is one body's projected screen state, captured inside the read
// critical section and rendered afterwards.
type dot struct {
	name   string
	x, y   float64 // meters
	radius float64
}

// Model is the live orbit view. The physics runner ticks on its own
// goroutine; the UI reads drawable snapshots at the frame rate and never
// touches body state directly.
type Model struct {
	runner    *world.Runner
	scenario  string
	canvas    *Canvas
	scaleBase float64
	dots      []dot
	trails    map[string][]struct{ x, y int }
	sepHist   []float64
	paused    bool
	runErr    error
}

func NewModel(runner *world.Runner, scenario string) Model {
	base, _ := runner.ScaleBase().Float64()
	if base <= 0 {
		base = 1
	}
	return Model{
		runner:    runner,
		scenario:  scenario,
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		scaleBase: base,
		trails:    make(map[string][]struct{ x, y int }),
		sepHist:   make([]float64, 0, historyCapacity),
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.runner.Start()
	return frameTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.runner.Stop()
			return m, tea.Quit
		case " ":
			if m.paused {
				m.runner.Start()
			} else {
				m.runner.Stop()
			}
			m.paused = !m.paused
		case "up", "k":
			m.runner.SetTimeWarp(m.runner.TimeWarp() * 2)
		case "down", "j":
			m.runner.SetTimeWarp(m.runner.TimeWarp() / 2)
		case "r":
			if err := m.runner.Reset(); err == nil {
				m.trails = make(map[string][]struct{ x, y int })
				m.sepHist = m.sepHist[:0]
				m.runErr = nil
				if !m.paused && !m.runner.Running() {
					m.runner.Stop()
					m.runner.Start()
				}
			}
		}
	case TickMsg:
		m.capture()
		m.runErr = m.runner.Err()
		return m, frameTick()
	}
	return m, nil
}

// capture copies the current positions out of the read critical section.
// No drawing happens under the lock.
func (m *Model) capture() {
	m.dots = m.dots[:0]
	m.runner.Read(func(items []world.Drawable) {
		for _, it := range items {
			c := it.Center()
			x, _ := c.X.Float64()
			y, _ := c.Y.Float64()
			m.dots = append(m.dots, dot{
				name:   it.Name(),
				x:      x,
				y:      y,
				radius: it.Radius(),
			})
		}
	})

	if len(m.dots) >= 2 {
		dx := m.dots[0].x - m.dots[1].x
		dy := m.dots[0].y - m.dots[1].y
		m.sepHist = append(m.sepHist, math.Hypot(dx, dy))
		if len(m.sepHist) > historyCapacity {
			m.sepHist = m.sepHist[1:]
		}
	}
}

// project maps meters to sub-pixel canvas coordinates, scale base mapping
// to roughly half the shorter canvas axis.
func (m *Model) project(x, y float64) (int, int) {
	cw, ch := canvasWidth*2, canvasHeight*4
	unit := float64(ch) / 2
	px := cw/2 + int(x/m.scaleBase*unit)
	py := ch/2 - int(y/m.scaleBase*unit)
	return px, py
}

func (m *Model) draw() {
	m.canvas.Clear()
	for _, d := range m.dots {
		px, py := m.project(d.x, d.y)

		trail := append(m.trails[d.name], struct{ x, y int }{px, py})
		if len(trail) > 200 {
			trail = trail[1:]
		}
		m.trails[d.name] = trail
		for _, pt := range trail {
			m.canvas.Set(pt.x, pt.y)
		}

		m.canvas.FillCircle(px, py, int(d.radius*20))
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario)) + "\n")

	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}
	if m.runErr != nil {
		status = "FAULTED"
	}
	s.WriteString(status + "\n\n")

	if len(m.sepHist) > 1 {
		chart := asciigraph.Plot(m.sepHist,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Separation (m)"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time warp") + valueStyle.Render(fmt.Sprintf("x%g", m.runner.TimeWarp())) + "\n")
	if len(m.sepHist) > 0 {
		s.WriteString(labelStyle.Render("Separation") + valueStyle.Render(fmt.Sprintf("%.3e m", m.sepHist[len(m.sepHist)-1])) + "\n")
	}
	for _, d := range m.dots {
		s.WriteString(labelStyle.Render(d.name) + valueStyle.Render(fmt.Sprintf("(%.3e, %.3e)", d.x, d.y)) + "\n")
	}

	if m.runErr != nil {
		s.WriteString("\n" + errStyle.Render("physics fault: "+m.runErr.Error()) + "\n")
		s.WriteString(errStyle.Render("press R to rebuild the world") + "\n")
	}

	s.WriteString(helpStyle.Render("─────────────────────\n↑/↓: time warp  SP: pause\nR: reset  Q: quit"))

	return lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(s.String()))
}
