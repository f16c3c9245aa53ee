package ui

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-natal/internal/astro"
	"github.com/litescript/ls-natal/internal/chart"
	"github.com/litescript/ls-natal/internal/state"
)

const (
	glyphRing  = '·'
	glyphCusp  = '+'
	glyphAngle = '◆'
)

// WheelModel draws the chart as a wheel: the Ascendant on the left and
// the zodiac running counter-clockwise from it.
type WheelModel struct {
	width  int
	height int

	showCusps bool
	snapshot  state.Snapshot
}

// NewWheelModel creates a new wheel view.
func NewWheelModel() WheelModel {
	return WheelModel{showCusps: true}
}

// SetSize updates the viewport size.
func (m WheelModel) SetSize(width, height int) WheelModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new state snapshot.
func (m WheelModel) UpdateData(snapshot state.Snapshot) WheelModel {
	m.snapshot = snapshot
	return m
}

// Update handles keys for the wheel view.
func (m WheelModel) Update(msg tea.Msg) (WheelModel, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "x" {
		m.showCusps = !m.showCusps
	}
	return m, nil
}

// wheelPoint projects an ecliptic longitude onto the canvas. The y axis is
// halved to correct for the character aspect ratio.
func wheelPoint(lon, asc, r float64, cx, cy int) (int, int) {
	theta := (180 + astro.NormalizeDegrees(lon-asc)) * math.Pi / 180
	x := cx + int(math.Round(r*math.Cos(theta)))
	y := cy - int(math.Round(r*math.Sin(theta)*0.5))
	return x, y
}

// View renders the wheel.
func (m WheelModel) View() string {
	c := m.snapshot.Chart
	if c == nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("  No chart to draw")
	}
	return m.renderGrid(m.buildCanvas(c))
}

// canvasSize returns the grid dimensions, with a usable minimum.
func (m WheelModel) canvasSize() (int, int) {
	w, h := m.width, m.height
	if w < 40 {
		w = 40
	}
	if h < 20 {
		h = 20
	}
	return w, h
}

// buildCanvas draws the wheel into a character grid.
func (m WheelModel) buildCanvas(c *chart.NatalChart) [][]rune {
	w, h := m.canvasSize()
	grid := make([][]rune, h)
	for y := range grid {
		grid[y] = make([]rune, w)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	cx, cy := w/2, h/2
	// Outer radius in columns; rows are half as dense.
	r := math.Min(float64(w)/2-4, float64(h)-4)
	asc := c.Ascendant.TotalDegrees

	set := func(x, y int, ch rune) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return false
		}
		grid[y][x] = ch
		return true
	}

	// Zodiac ring
	for lon := 0.0; lon < 360; lon += 2 {
		x, y := wheelPoint(lon, asc, r, cx, cy)
		set(x, y, glyphRing)
	}

	// Sign glyphs at the middle of each sign, just outside the ring.
	for i, s := range chart.Signs {
		x, y := wheelPoint(float64(i)*30+15, asc, r+2, cx, cy)
		set(x, y, signGlyph(s))
	}

	if m.showCusps {
		for _, cusp := range c.HouseCusps {
			for _, frac := range []float64{0.55, 0.7, 0.85} {
				x, y := wheelPoint(cusp, asc, r*frac, cx, cy)
				set(x, y, glyphCusp)
			}
		}
	}

	// Angles on the ring
	for _, lon := range []float64{asc, c.Midheaven.TotalDegrees} {
		x, y := wheelPoint(lon, asc, r, cx, cy)
		set(x, y, glyphAngle)
	}

	// Bodies just inside the ring, stepping inward on collisions.
	for _, p := range c.Bodies() {
		for ring := r - 2; ring > 1; ring-- {
			x, y := wheelPoint(p.TotalDegrees, asc, ring, cx, cy)
			if x < 0 || x >= w || y < 0 || y >= h {
				break
			}
			if grid[y][x] == ' ' || grid[y][x] == glyphCusp {
				grid[y][x] = bodyGlyph(p.Planet)
				break
			}
		}
	}

	m.drawLegend(grid, c)
	return grid
}

// drawLegend writes the angles in the top-left corner.
func (m WheelModel) drawLegend(grid [][]rune, c *chart.NatalChart) {
	lines := []string{
		fmt.Sprintf("Asc %s", chart.FormatPosition(c.Ascendant)),
		fmt.Sprintf("MC  %s", chart.FormatPosition(c.Midheaven)),
	}
	for row, line := range lines {
		if row+1 >= len(grid) {
			return
		}
		for col, ch := range []rune(line) {
			if col+2 >= len(grid[row+1]) {
				break
			}
			grid[row+1][col+2] = ch
		}
	}
}

func (m WheelModel) renderGrid(grid [][]rune) string {
	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cuspStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	angleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	signStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD"))
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))

	var b strings.Builder
	for _, row := range grid {
		for _, ch := range row {
			var style lipgloss.Style
			switch {
			case ch == ' ':
				b.WriteRune(ch)
				continue
			case ch == glyphRing:
				style = ringStyle
			case ch == glyphCusp:
				style = cuspStyle
			case ch == glyphAngle:
				style = angleStyle
			case ch == '☉':
				style = sunStyle
			case ch >= '♈' && ch <= '♓':
				style = signStyle
			case ch >= '☽' && ch <= '♇':
				style = bodyStyle
			default:
				style = labelStyle
			}
			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}
	return b.String()
}
