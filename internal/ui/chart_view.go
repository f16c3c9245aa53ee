package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-natal/internal/chart"
	"github.com/litescript/ls-natal/internal/state"
)

// maxEventLines is how many recent events the chart view lists.
const maxEventLines = 6

// ChartViewModel shows the positions table, the reading panel and the
// event log for the selected profile.
type ChartViewModel struct {
	width  int
	height int

	snapshot state.Snapshot
}

// NewChartViewModel creates a new chart view.
func NewChartViewModel() ChartViewModel {
	return ChartViewModel{}
}

// SetSize updates the viewport size.
func (m ChartViewModel) SetSize(width, height int) ChartViewModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates with a new state snapshot.
func (m ChartViewModel) UpdateData(snapshot state.Snapshot) ChartViewModel {
	m.snapshot = snapshot
	return m
}

// Update handles messages for the chart view. It has no keys of its own.
func (m ChartViewModel) Update(msg tea.Msg) (ChartViewModel, tea.Cmd) {
	return m, nil
}

// View renders the chart view.
func (m ChartViewModel) View() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	if m.snapshot.Selected == "" {
		return dimStyle.Render("  No profiles. Add one with: ls-natal profiles add")
	}

	header := m.renderProfileLine()
	if m.snapshot.Chart == nil {
		msg := "chart unavailable"
		if m.snapshot.LastError != nil {
			msg = m.snapshot.LastError.Error()
		}
		return header + "\n\n" + dimStyle.Render("  "+msg)
	}

	left := m.renderPositions()
	right := lipgloss.JoinVertical(lipgloss.Left, m.renderReading(), "", m.renderEvents())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)

	return header + "\n\n" + body
}

func (m ChartViewModel) renderProfileLine() string {
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	idx := 0
	for i, n := range m.snapshot.Profiles {
		if n == m.snapshot.Selected {
			idx = i + 1
		}
	}
	line := "  " + nameStyle.Render(m.snapshot.Selected) +
		dimStyle.Render(fmt.Sprintf("  (%d/%d)  %s", idx, len(m.snapshot.Profiles), formatOffset(m.snapshot.Offset)))
	if c := m.snapshot.Chart; c != nil {
		line += dimStyle.Render(fmt.Sprintf("  JD %.5f", c.JulianDay))
	}
	return line
}

// renderPositions renders the bodies table followed by the angles.
func (m ChartViewModel) renderPositions() string {
	c := m.snapshot.Chart

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(10)
	glyphStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	retroStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(headerStyle.Render("  Body        Position          House"))
	b.WriteString("\n")

	for _, p := range c.Bodies() {
		retro := " "
		if p.Retrograde {
			retro = retroStyle.Render("℞")
		}
		fmt.Fprintf(&b, "  %s %s %s %s  %s %s\n",
			glyphStyle.Render(string(bodyGlyph(p.Planet))),
			nameStyle.Render(titleName(p.Planet)),
			glyphStyle.Render(string(signGlyph(p.Sign))),
			valueStyle.Render(fmt.Sprintf("%-15s", chart.FormatPosition(p.SignPosition))),
			valueStyle.Render(fmt.Sprintf("%2d", p.House)),
			retro,
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s %s\n", dimStyle.Render("Asc"),
		glyphStyle.Render(string(signGlyph(c.Ascendant.Sign))), valueStyle.Render(chart.FormatPosition(c.Ascendant)))
	fmt.Fprintf(&b, "  %s %s %s\n", dimStyle.Render("MC "),
		glyphStyle.Render(string(signGlyph(c.Midheaven.Sign))), valueStyle.Render(chart.FormatPosition(c.Midheaven)))

	if len(c.Aspects) > 0 {
		b.WriteString("\n")
		b.WriteString(headerStyle.Render(fmt.Sprintf("  Aspects (%d)", len(c.Aspects))))
		b.WriteString("\n")
		limit := len(c.Aspects)
		if m.height > 0 && limit > m.height-18 {
			limit = max(m.height-18, 3)
		}
		for _, a := range c.Aspects[:min(limit, len(c.Aspects))] {
			fmt.Fprintf(&b, "  %s %s %s %s\n",
				glyphStyle.Render(string(bodyGlyph(a.Planet1))),
				aspectStyle(a.Nature).Render(a.Symbol),
				glyphStyle.Render(string(bodyGlyph(a.Planet2))),
				dimStyle.Render(fmt.Sprintf("%-11s %.2f°", a.Name, a.Orb)),
			)
		}
	}

	return b.String()
}

func aspectStyle(n chart.Nature) lipgloss.Style {
	switch n {
	case chart.NatureHarmonious:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#3B82F6"))
	case chart.NatureChallenging:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	}
}

// renderReading lists revealed points and what comes next.
func (m ChartViewModel) renderReading() string {
	r := m.snapshot.Reading

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Reading %d/%d", len(r.Revealed), len(chart.RevealOrder))))
	b.WriteString("\n")

	for _, point := range r.Revealed {
		pos, ok := r.Position(point)
		if !ok {
			continue
		}
		b.WriteString(valueStyle.Render(fmt.Sprintf("%c %-10s %s  house %d",
			bodyGlyph(point), titleName(point), pos.Sign.Title(), pos.House)))
		b.WriteString("\n")
	}

	if next, ok := r.NextReveal(); ok {
		b.WriteString(dimStyle.Render(fmt.Sprintf("enter: reveal %s", next.Point)))
	} else if r.Chart != nil {
		s := r.Synthesis()
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s Sun, %s Moon, %s rising",
			s.SunSign.Title(), s.MoonSign.Title(), s.Ascendant.Title())))
	}
	return b.String()
}

// renderEvents lists the most recent state events, newest last.
func (m ChartViewModel) renderEvents() string {
	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	events := m.snapshot.Events
	if len(events) > maxEventLines {
		events = events[len(events)-maxEventLines:]
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Events"))
	for _, e := range events {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(e.Timestamp.Format("15:04:05") + " " + describeEvent(e)))
	}
	return b.String()
}

func describeEvent(e state.Event) string {
	switch e.Type {
	case state.EventIngress:
		return fmt.Sprintf("%s enters %s (from %s)", titleName(e.Body), e.NewSign.Title(), e.OldSign.Title())
	case state.EventStation:
		return fmt.Sprintf("%s stations %s", titleName(e.Body), e.Detail)
	case state.EventProfileSelected:
		return "selected " + e.Profile
	case state.EventProfilesReloaded:
		return "profiles reloaded, " + e.Detail
	case state.EventReveal:
		return fmt.Sprintf("revealed %s in %s", e.Body, e.NewSign.Title())
	case state.EventChartError:
		return "chart error: " + e.Detail
	}
	return string(e.Type)
}

func titleName(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
