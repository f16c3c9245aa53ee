// Package ui provides the terminal chart viewer using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-natal/internal/logging"
	"github.com/litescript/ls-natal/internal/profile"
	"github.com/litescript/ls-natal/internal/state"
	"github.com/litescript/ls-natal/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewChart ViewMode = iota
	ViewWheel
)

const viewCount = 2

// Msg types for Bubble Tea
type (
	// ProfilesReloadedMsg carries a reload from the profiles file watcher.
	ProfilesReloadedMsg profile.Reload

	// AnimTickMsg drives the status spinner.
	AnimTickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state   *state.Manager
	reloads <-chan profile.Reload
	log     *logging.Logger

	// UI state
	viewMode  ViewMode
	width     int
	height    int
	ready     bool
	statusMsg string
	animTick  int

	// Sub-models
	chartView ChartViewModel
	wheel     WheelModel

	snapshot state.Snapshot
}

// New creates a new root UI model. reloads may be nil when the profiles
// file is not watched.
func New(stateMgr *state.Manager, reloads <-chan profile.Reload, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	m := Model{
		state:     stateMgr,
		reloads:   reloads,
		log:       log.With("ui"),
		viewMode:  ViewChart,
		chartView: NewChartViewModel(),
		wheel:     NewWheelModel(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(animTickCmd(), waitForReload(m.reloads))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "c":
			m.viewMode = ViewChart
		case "2", "w":
			m.viewMode = ViewWheel
		case "tab":
			m.viewMode = (m.viewMode + 1) % viewCount

		case "right", "l":
			m.state.Step(1)
			m.refresh()
		case "left", "h":
			m.state.Step(-1)
			m.refresh()
		case "up", "k":
			m.state.Shift(24 * time.Hour)
			m.refresh()
		case "down", "j":
			m.state.Shift(-24 * time.Hour)
			m.refresh()
		case "0":
			m.state.ResetOffset()
			m.refresh()
		case "+", "=":
			m.setTimeStep(m.state.TimeStep() * 2)
		case "-":
			m.setTimeStep(m.state.TimeStep() / 2)

		case "n":
			m.state.Cycle(1)
			m.refresh()
		case "p":
			m.state.Cycle(-1)
			m.refresh()

		case "enter", " ":
			if r, ok := m.state.Reveal(); ok {
				m.statusMsg = fmt.Sprintf("Revealed %s", r.Point)
			} else {
				m.statusMsg = "Nothing left to reveal"
			}
			m.refresh()

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Title takes 3 lines, footer 2
		contentHeight := msg.Height - 5
		m.chartView = m.chartView.SetSize(msg.Width, contentHeight)
		m.wheel = m.wheel.SetSize(msg.Width, contentHeight)

	case AnimTickMsg:
		m.animTick++
		cmds = append(cmds, animTickCmd())

	case ProfilesReloadedMsg:
		if msg.Err != nil {
			m.statusMsg = "Profiles not reloaded: " + msg.Err.Error()
			m.log.Warn("profiles reload: %v", msg.Err)
		} else {
			m.state.SetProfiles(msg.Profiles)
			m.statusMsg = fmt.Sprintf("Reloaded %d profiles", len(msg.Profiles))
			m.refresh()
		}
		cmds = append(cmds, waitForReload(m.reloads))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewChart:
		m.chartView, cmd = m.chartView.Update(msg)
	case ViewWheel:
		m.wheel, cmd = m.wheel.Update(msg)
	}
	return cmd
}

// refresh pulls a new snapshot and hands it to the sub-models.
// Time step bounds for the +/- keys.
const (
	minTimeStep = time.Minute
	maxTimeStep = 32 * 24 * time.Hour
)

func (m *Model) setTimeStep(d time.Duration) {
	if d < minTimeStep {
		d = minTimeStep
	}
	if d > maxTimeStep {
		d = maxTimeStep
	}
	m.state.SetTimeStep(d)
	m.statusMsg = "Step " + d.String()
}

func (m *Model) refresh() {
	m.snapshot = m.state.Snapshot()
	m.chartView = m.chartView.UpdateData(m.snapshot)
	m.wheel = m.wheel.UpdateData(m.snapshot)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewChart:
		content = m.chartView.View()
	case ViewWheel:
		content = m.wheel.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := "  ✦ ls-natal ✦  natal chart viewer"
	runes := []rune(title)

	var b strings.Builder
	b.WriteString("\n")
	for col, r := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(gradientColor(col, len(runes)))).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render(fmt.Sprintf("  v%s", version.Version)))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	return b.String()
}

// gradientColor blends blue to violet to pink across a line of width cols.
func gradientColor(col, width int) string {
	x := 0.0
	if width > 1 {
		x = float64(col) / float64(width-1)
	}

	var r, g, b float64
	if x < 0.5 {
		t := x / 0.5
		r = 59 + t*(139-59)
		g = 130 + t*(92-130)
		b = 246
	} else {
		t := (x - 0.5) / 0.5
		r = 139 + t*(236-139)
		g = 92 + t*(72-92)
		b = 246 + t*(153-246)
	}

	return fmt.Sprintf("#%02X%02X%02X", clampByte(r), clampByte(g), clampByte(b))
}

func clampByte(v float64) int {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return int(v)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Chart", "[2] Wheel"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case m.snapshot.Chart != nil:
		status = accentStyle.Render(spinner) + dimStyle.Render(" "+formatOffset(m.snapshot.Offset))
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" no profiles loaded")
	}

	help := dimStyle.Render("←/→: step | +/-: step size | ↑↓: day | 0: reset | n/p: profile | enter: reveal | tab: view | q: quit")
	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help

	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}

// formatOffset renders a time offset like "birth +1d 02h30m".
func formatOffset(d time.Duration) string {
	if d == 0 {
		return "at birth"
	}
	sign := "+"
	if d < 0 {
		sign = "-"
		d = -d
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	mins := int((d % time.Hour) / time.Minute)
	if days > 0 {
		return fmt.Sprintf("birth %s%dd %02dh%02dm", sign, days, hours, mins)
	}
	return fmt.Sprintf("birth %s%02dh%02dm", sign, hours, mins)
}

func animTickCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// waitForReload blocks on the watcher channel and returns its next reload.
func waitForReload(ch <-chan profile.Reload) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}
		return ProfilesReloadedMsg(r)
	}
}
