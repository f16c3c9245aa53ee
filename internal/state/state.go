// Package state provides thread-safe state management for the chart viewer.
package state

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/litescript/ls-natal/internal/chart"
	"github.com/litescript/ls-natal/internal/profile"
)

// ErrNoProfile is returned when an operation needs a selected profile.
var ErrNoProfile = errors.New("no profile selected")

// EventType represents the type of state change event.
type EventType string

const (
	EventIngress          EventType = "INGRESS"           // body moved into a new sign
	EventStation          EventType = "STATION"           // body turned retrograde or direct
	EventProfileSelected  EventType = "PROFILE_SELECTED"
	EventProfilesReloaded EventType = "PROFILES_RELOADED"
	EventReveal           EventType = "REVEAL" // reading advanced
	EventChartError       EventType = "CHART_ERROR"
)

// Event represents a change in the displayed chart or its inputs.
type Event struct {
	Type      EventType  `json:"type"`
	Timestamp time.Time  `json:"timestamp"`
	Profile   string     `json:"profile,omitempty"`
	Body      string     `json:"body,omitempty"`
	OldSign   chart.Sign `json:"old_sign,omitempty"`
	NewSign   chart.Sign `json:"new_sign,omitempty"`
	Detail    string     `json:"detail,omitempty"`
}

// HistoryEntry records one chart computation.
type HistoryEntry struct {
	Timestamp time.Time
	Offset    time.Duration
	JulianDay float64
}

// Manager holds the profiles, the selected profile's chart and its time
// offset, and a log of events. All methods are safe for concurrent use.
type Manager struct {
	mu sync.RWMutex

	profiles []profile.Profile
	selected int // index into profiles, -1 when none

	offset   time.Duration // added to the selected profile's birth time
	current  *chart.NatalChart
	lastErr  error
	reading  chart.Reading
	computed time.Time

	history       []HistoryEntry
	maxHistoryLen int

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	timeStep time.Duration
	now      func() time.Time
}

// Config holds configuration for the state manager.
type Config struct {
	MaxHistoryLen int
	MaxEvents     int
	TimeStep      time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxHistoryLen: 60,
		MaxEvents:     50,
		TimeStep:      time.Hour,
	}
}

// NewManager creates a new state manager with no profiles.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	step := cfg.TimeStep
	if step <= 0 {
		step = time.Hour
	}
	return &Manager{
		selected:      -1,
		maxHistoryLen: cfg.MaxHistoryLen,
		maxEvents:     maxEvents,
		events:        make([]Event, 0, maxEvents),
		timeStep:      step,
		now:           time.Now,
	}
}

// SetProfiles replaces the profile list. The selection follows the
// previously selected name if it still exists, else falls back to the first
// profile. The chart is recomputed.
func (m *Manager) SetProfiles(profiles []profile.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prevName := m.selectedName()
	m.profiles = append([]profile.Profile(nil), profiles...)

	m.selected = -1
	for i, p := range m.profiles {
		if p.Name == prevName {
			m.selected = i
			break
		}
	}
	if m.selected < 0 && len(m.profiles) > 0 {
		m.selected = 0
	}

	if prevName != "" {
		m.addEvent(Event{
			Type:    EventProfilesReloaded,
			Profile: m.selectedName(),
			Detail:  fmt.Sprintf("%d profiles", len(m.profiles)),
		})
	}
	if m.selectedName() != prevName {
		m.resetSelection()
	} else if m.reading.Chart != nil && !reflect.DeepEqual(m.reading.Birth, m.profiles[m.selected].BirthData) {
		// Same profile, edited birth data: the reading no longer applies.
		m.reading = chart.Reading{}
	}
	m.recompute()
}

// Select makes the named profile current and clears the time offset.
func (m *Manager) Select(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, p := range m.profiles {
		if p.Name == name {
			m.selected = i
			m.resetSelection()
			m.recompute()
			return nil
		}
	}
	return fmt.Errorf("%w: %q", profile.ErrProfileNotFound, name)
}

// Cycle moves the selection by delta, wrapping around the list.
func (m *Manager) Cycle(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := len(m.profiles)
	if n == 0 {
		return
	}
	m.selected = ((m.selected+delta)%n + n) % n
	m.resetSelection()
	m.recompute()
}

// resetSelection starts over for a newly selected profile. Callers hold mu.
func (m *Manager) resetSelection() {
	m.offset = 0
	m.current = nil
	m.reading = chart.Reading{}
	if name := m.selectedName(); name != "" {
		m.addEvent(Event{Type: EventProfileSelected, Profile: name})
	}
}

// Step moves the chart time by n time steps (negative moves back).
func (m *Manager) Step(n int) {
	m.Shift(time.Duration(n) * m.TimeStep())
}

// Shift moves the chart time by d.
func (m *Manager) Shift(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offset += d
	m.recompute()
}

// ResetOffset returns the chart to the birth moment.
func (m *Manager) ResetOffset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offset = 0
	m.recompute()
}

// recompute rebuilds the chart for the selected profile at the current
// offset and records ingress and station events. Callers hold mu.
func (m *Manager) recompute() {
	if m.selected < 0 {
		m.current = nil
		m.lastErr = ErrNoProfile
		return
	}
	p := m.profiles[m.selected]

	b := p.BirthData.Shift(int(m.offset / time.Minute))
	c, err := chart.Calculate(b)
	m.computed = m.now()
	m.lastErr = err
	if err != nil {
		m.current = nil
		m.addEvent(Event{Type: EventChartError, Profile: p.Name, Detail: err.Error()})
		return
	}

	if m.current != nil {
		m.detectEvents(p.Name, m.current, c)
	}
	m.current = c

	if m.reading.Chart == nil {
		base := c
		if m.offset != 0 {
			base, _ = chart.Calculate(p.BirthData)
		}
		if base != nil {
			m.reading = chart.Reading{Birth: p.BirthData, Chart: base}
		}
	}

	m.history = append(m.history, HistoryEntry{Timestamp: m.computed, Offset: m.offset, JulianDay: c.JulianDay})
	if m.maxHistoryLen > 0 && len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}
}

// detectEvents compares consecutive charts body by body.
func (m *Manager) detectEvents(name string, prev, next *chart.NatalChart) {
	prevBodies := prev.Bodies()
	for i, nb := range next.Bodies() {
		pb := prevBodies[i]
		if pb.Sign != nb.Sign {
			m.addEvent(Event{
				Type:    EventIngress,
				Profile: name,
				Body:    nb.Planet,
				OldSign: pb.Sign,
				NewSign: nb.Sign,
			})
		}
		if pb.Retrograde != nb.Retrograde {
			detail := "direct"
			if nb.Retrograde {
				detail = "retrograde"
			}
			m.addEvent(Event{Type: EventStation, Profile: name, Body: nb.Planet, Detail: detail})
		}
	}
}

// Reveal advances the reading for the selected profile and returns the
// newly revealed point. The second result is false when there is no chart
// or the reading is complete.
func (m *Manager) Reveal() (chart.Reveal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.reading.Chart == nil {
		return chart.Reveal{}, false
	}
	next, ok := m.reading.NextReveal()
	if !ok {
		return chart.Reveal{}, false
	}
	m.reading = m.reading.RecordFeedback(next.Point, "", m.now())
	m.addEvent(Event{
		Type:    EventReveal,
		Profile: m.selectedName(),
		Body:    next.Point,
		NewSign: next.Position.Sign,
	})
	return next, true
}

// addEvent adds an event to the ring buffer. Callers hold mu.
func (m *Manager) addEvent(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = m.now()
	}
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

func (m *Manager) selectedName() string {
	if m.selected < 0 || m.selected >= len(m.profiles) {
		return ""
	}
	return m.profiles[m.selected].Name
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Profiles  []string
	Selected  string
	Offset    time.Duration
	Chart     *chart.NatalChart
	LastError error
	Computed  time.Time
	Reading   chart.Reading
	Events    []Event
}

// Snapshot returns a consistent snapshot of current state. The chart is
// shared; it is never modified after Calculate returns it.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Snapshot{
		Profiles:  profile.Names(m.profiles),
		Selected:  m.selectedName(),
		Offset:    m.offset,
		Chart:     m.current,
		LastError: m.lastErr,
		Computed:  m.computed,
		Reading:   m.reading,
		Events:    m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// History returns a copy of the computation history, oldest first.
func (m *Manager) History() []HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// TimeStep returns the configured time step.
func (m *Manager) TimeStep() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.timeStep
}

// SetTimeStep updates the time step.
func (m *Manager) SetTimeStep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.timeStep = d
}

// HasChart returns true if a chart is available for the selected profile.
func (m *Manager) HasChart() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
