package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/litescript/ls-natal/internal/chart"
	"github.com/litescript/ls-natal/internal/state"
)

func TestChartViewModel_View(t *testing.T) {
	snap := wheelSnapshot(t)
	snap.Profiles = []string{"nyc", "london"}
	snap.Reading = chart.Reading{Chart: snap.Chart}.RecordFeedback(chart.BodySun, "", time.Now())

	view := NewChartViewModel().SetSize(120, 40).UpdateData(snap).View()

	for _, want := range []string{"nyc", "(1/2)", "Sun", "Pluto", "Gemini", "Asc", "MC", "Reading 1/11", "enter: reveal moon"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestChartViewModel_EmptyStates(t *testing.T) {
	tests := []struct {
		name string
		snap state.Snapshot
		want string
	}{
		{"no profiles", state.Snapshot{}, "No profiles"},
		{"chart error", state.Snapshot{
			Selected:  "partial",
			Profiles:  []string{"partial"},
			LastError: &chart.MissingFieldError{Field: "hour"},
		}, "hour"},
		{"no chart, no error", state.Snapshot{Selected: "x", Profiles: []string{"x"}}, "chart unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewChartViewModel().UpdateData(tt.snap).View()
			if !strings.Contains(view, tt.want) {
				t.Errorf("View() = %q, want it to contain %q", view, tt.want)
			}
		})
	}
}

func TestDescribeEvent(t *testing.T) {
	tests := []struct {
		event state.Event
		want  string
	}{
		{state.Event{Type: state.EventIngress, Body: "moon", OldSign: chart.Aries, NewSign: chart.Taurus}, "Moon enters Taurus (from Aries)"},
		{state.Event{Type: state.EventStation, Body: "mercury", Detail: "retrograde"}, "Mercury stations retrograde"},
		{state.Event{Type: state.EventProfileSelected, Profile: "nyc"}, "selected nyc"},
		{state.Event{Type: state.EventReveal, Body: "sun", NewSign: chart.Gemini}, "revealed sun in Gemini"},
		{state.Event{Type: state.EventChartError, Detail: errors.New("boom").Error()}, "chart error: boom"},
	}

	for _, tt := range tests {
		if got := describeEvent(tt.event); got != tt.want {
			t.Errorf("describeEvent(%s) = %q, want %q", tt.event.Type, got, tt.want)
		}
	}
}

func TestGlyphs(t *testing.T) {
	if bodyGlyph(chart.BodySun) != '☉' || bodyGlyph("vesta") != '•' {
		t.Error("bodyGlyph mapping wrong")
	}
	if signGlyph(chart.Aries) != '♈' || signGlyph(chart.Pisces) != '♓' || signGlyph("ophiuchus") != '?' {
		t.Error("signGlyph mapping wrong")
	}
}
