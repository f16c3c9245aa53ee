package chart

import "time"

// Chart points that are not bodies but can be revealed in a reading.
const (
	PointAscendant = "ascendant"
	PointMidheaven = "midheaven"
)

// RevealOrder is the sequence in which a reading walks through the chart.
var RevealOrder = []string{
	BodySun, BodyMoon, PointAscendant,
	BodyMercury, BodyVenus, BodyMars,
	BodyJupiter, BodySaturn, BodyUranus, BodyNeptune, BodyPluto,
}

// Feedback is a note the querent left on one revealed point.
type Feedback struct {
	Point     string    `json:"point"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Reading walks a querent through their chart one point at a time.
// Methods never modify the receiver; updates return a new Reading.
type Reading struct {
	Birth    BirthData
	Chart    *NatalChart
	Revealed []string
	Feedback []Feedback
}

// NewReading computes the chart for b and starts an empty reading.
func NewReading(b BirthData) (Reading, error) {
	c, err := Calculate(b)
	if err != nil {
		return Reading{}, err
	}
	return Reading{Birth: b, Chart: c}, nil
}

// Reveal is the next point to present in a reading.
type Reveal struct {
	Point    string
	Position PlanetPosition
}

// NextReveal returns the first point in RevealOrder not yet revealed.
// The second result is false once the reading is complete.
func (r Reading) NextReveal() (Reveal, bool) {
	seen := make(map[string]bool, len(r.Revealed))
	for _, p := range r.Revealed {
		seen[p] = true
	}
	for _, point := range RevealOrder {
		if seen[point] {
			continue
		}
		pos, ok := r.Position(point)
		if !ok {
			continue
		}
		return Reveal{Point: point, Position: pos}, true
	}
	return Reveal{}, false
}

// Position returns the placement of a body or chart point. The Ascendant is
// reported in house 1 and the Midheaven in house 10.
func (r Reading) Position(point string) (PlanetPosition, bool) {
	if r.Chart == nil {
		return PlanetPosition{}, false
	}
	switch point {
	case PointAscendant:
		return PlanetPosition{Planet: point, SignPosition: r.Chart.Ascendant, House: 1}, true
	case PointMidheaven:
		return PlanetPosition{Planet: point, SignPosition: r.Chart.Midheaven, House: 10}, true
	}
	return r.Chart.Body(point)
}

// RecordFeedback marks point as revealed and stores the querent's note.
func (r Reading) RecordFeedback(point, text string, at time.Time) Reading {
	next := Reading{
		Birth:    r.Birth,
		Chart:    r.Chart,
		Revealed: append(append([]string(nil), r.Revealed...), point),
		Feedback: append(append([]Feedback(nil), r.Feedback...), Feedback{Point: point, Text: text, Timestamp: at}),
	}
	return next
}

// Complete reports whether every point in RevealOrder has been revealed.
func (r Reading) Complete() bool {
	return len(r.Revealed) >= len(RevealOrder)
}

// Placement is a condensed body placement used in a synthesis.
type Placement struct {
	Sign    Sign    `json:"sign"`
	Degrees float64 `json:"degrees"`
	House   int     `json:"house"`
}

// AspectSummary is a condensed aspect used in a synthesis.
type AspectSummary struct {
	Planet1 string  `json:"planet1"`
	Planet2 string  `json:"planet2"`
	Name    string  `json:"aspect_name"`
	Orb     float64 `json:"orb"`
}

// Synthesis summarises a reading's chart.
type Synthesis struct {
	SunSign   Sign                 `json:"sun_sign"`
	MoonSign  Sign                 `json:"moon_sign"`
	Ascendant Sign                 `json:"ascendant"`
	Planets   map[string]Placement `json:"planets"`
	Aspects   []AspectSummary      `json:"aspects"`
}

// Synthesis returns a summary of the chart behind the reading.
func (r Reading) Synthesis() Synthesis {
	if r.Chart == nil {
		return Synthesis{}
	}
	c := r.Chart
	s := Synthesis{
		SunSign:   c.Sun.Sign,
		MoonSign:  c.Moon.Sign,
		Ascendant: c.Ascendant.Sign,
		Planets:   make(map[string]Placement, 10),
		Aspects:   make([]AspectSummary, 0, len(c.Aspects)),
	}
	for _, p := range c.Bodies() {
		s.Planets[p.Planet] = Placement{Sign: p.Sign, Degrees: p.Degrees, House: p.House}
	}
	for _, a := range c.Aspects {
		s.Aspects = append(s.Aspects, AspectSummary{
			Planet1: a.Planet1,
			Planet2: a.Planet2,
			Name:    a.Name,
			Orb:     a.Orb,
		})
	}
	return s
}
