// Package term implements the interactive terminal viewer for knowledge
// graphs: a bubbletea model whose tick loop advances the force simulation
// one step per frame and repaints the layout on a character canvas.
//
// Interaction mirrors the browser dashboard: arrow keys or hjkl pan,
// +/- zooms around the center, f refits the view, and moving the mouse
// hovers nodes to surface their display names in the status line. q or
// Esc quits, which stops the frame loop and releases the model's state.
//
// An empty graph never starts the tick loop; the view shows a fallback
// message instead.
package term

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/graph"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/layout"
	"github.com/AmeyaGadhave/Misinfo-Detector/pkg/render/viewport"
)

// frameInterval is the tick cadence of the simulation/draw loop.
const frameInterval = time.Second / 30

// cellAspect compensates for terminal cells being roughly twice as tall
// as they are wide.
const cellAspect = 2.0

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("36"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	edgeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hoverStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
)

// tickMsg drives one simulation step and repaint.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model is the bubbletea model for the interactive graph viewer.
type Model struct {
	Graph graph.Graph

	eng    *layout.Engine
	vp     viewport.Viewport
	fitted bool

	width   int // canvas size in cells
	height  int
	hovered string
	done    bool
}

// New creates a viewer for an already-normalized graph.
func New(g graph.Graph, cfg layout.Config) Model {
	return Model{
		Graph:  g,
		eng:    layout.New(g, cfg),
		vp:     viewport.New(),
		width:  80,
		height: 24,
	}
}

// Init starts the frame loop, unless the graph is empty.
func (m Model) Init() tea.Cmd {
	if m.Graph.IsEmpty() {
		return nil
	}
	return tick()
}

// Update handles frame ticks, resize, and interaction.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.done {
			return m, nil
		}
		m.eng.Step() // no-op once settled, repaint still happens
		if !m.fitted {
			m.vp = m.fit()
			m.fitted = true
		}
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height-3, 5) // leave room for header and status
		m.fitted = false

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.hovered = m.vp.HitTest(m.eng.Positions(),
				float64(msg.X), float64(msg.Y)*cellAspect, 3*cellAspect)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	const panStep = 4
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.done = true
		return m, tea.Quit
	case "left", "h":
		m.vp = m.vp.Pan(-panStep, 0)
	case "right", "l":
		m.vp = m.vp.Pan(panStep, 0)
	case "up", "k":
		m.vp = m.vp.Pan(0, -panStep*cellAspect)
	case "down", "j":
		m.vp = m.vp.Pan(0, panStep*cellAspect)
	case "+", "=":
		m.vp = m.vp.ZoomAt(1.25, float64(m.width)/2, float64(m.height)*cellAspect/2)
	case "-", "_":
		m.vp = m.vp.ZoomAt(0.8, float64(m.width)/2, float64(m.height)*cellAspect/2)
	case "f":
		m.vp = m.fit()
	}
	return m, nil
}

// fit frames the whole layout on the current canvas.
func (m Model) fit() viewport.Viewport {
	return viewport.Fit(m.eng, float64(m.width), float64(m.height)*cellAspect, 2)
}

// Hovered returns the id of the node under the mouse cursor, if any.
func (m Model) Hovered() string { return m.hovered }

// Settled reports whether the underlying simulation has converged.
func (m Model) Settled() bool { return m.eng.Settled() }

// View paints the current frame.
func (m Model) View() string {
	if m.Graph.IsEmpty() {
		return dimStyle.Render("No entities extracted from this article.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Knowledge Graph"))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d nodes · %d links · %s",
		m.Graph.NodeCount(), m.Graph.EdgeCount(), m.simStatus())))
	b.WriteString("\n")
	b.WriteString(m.paint())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) simStatus() string {
	if m.eng.Settled() {
		return fmt.Sprintf("settled after %d steps", m.eng.Steps())
	}
	return fmt.Sprintf("step %d", m.eng.Steps())
}

func (m Model) statusLine() string {
	if m.hovered != "" {
		if n := m.Graph.Node(m.hovered); n != nil {
			label := n.DisplayLabel()
			if n.Group != "" {
				label += dimStyle.Render(" ("+n.Group+")")
			}
			return hoverStyle.Render("● ") + statusStyle.Render(label)
		}
	}
	return dimStyle.Render("←↑↓→ pan  +/- zoom  f fit  q quit")
}

// paint rasterizes edges and nodes onto a rune grid.
func (m Model) paint() string {
	grid := make([][]string, m.height)
	for y := range grid {
		grid[y] = make([]string, m.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}

	pos := m.eng.Positions()
	plot := func(px, py float64) (int, int, bool) {
		x := int(math.Round(px))
		y := int(math.Round(py / cellAspect))
		return x, y, x >= 0 && x < m.width && y >= 0 && y < m.height
	}

	edgeDot := edgeStyle.Render("·")
	for _, e := range m.Graph.Edges {
		x1, y1 := m.vp.ToScreen(pos[e.Source])
		x2, y2 := m.vp.ToScreen(pos[e.Target])
		drawLine(grid, x1, y1, x2, y2, plot, edgeDot)
	}

	for _, n := range m.Graph.Nodes {
		sx, sy := m.vp.ToScreen(pos[n.ID])
		x, y, ok := plot(sx, sy)
		if !ok {
			continue
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(viewport.GroupColor(n.Group)))
		marker := "●"
		if n.ID == m.hovered {
			marker = "◉"
			style = style.Bold(true)
		}
		grid[y][x] = style.Render(marker)
	}

	rows := make([]string, m.height)
	for y := range grid {
		rows[y] = strings.Join(grid[y], "")
	}
	return strings.Join(rows, "\n")
}

// drawLine samples along the segment rather than running a full Bresenham;
// at terminal resolution the difference is invisible.
func drawLine(grid [][]string, x1, y1, x2, y2 float64, plot func(float64, float64) (int, int, bool), dot string) {
	steps := int(math.Max(math.Abs(x2-x1), math.Abs(y2-y1)/cellAspect))
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if x, y, ok := plot(x1+(x2-x1)*t, y1+(y2-y1)*t); ok && grid[y][x] == " " {
			grid[y][x] = dot
		}
	}
}
