package chart

import (
	"math"
	"sort"

	"github.com/litescript/ls-natal/internal/astro"
)

// Nature is the traditional quality of an aspect.
type Nature string

const (
	NatureNeutral     Nature = "neutral"
	NatureHarmonious  Nature = "harmonious"
	NatureChallenging Nature = "challenging"
)

// AspectDef defines an aspect by its exact angle and allowed orb.
type AspectDef struct {
	Name    string
	Symbol  string
	Degrees float64
	Orb     float64
	Nature  Nature
}

// The major (Ptolemaic) aspects.
var aspectDefs = [...]AspectDef{
	{Name: "Conjunction", Symbol: "☌", Degrees: 0, Orb: 8, Nature: NatureNeutral},
	{Name: "Sextile", Symbol: "⚹", Degrees: 60, Orb: 6, Nature: NatureHarmonious},
	{Name: "Square", Symbol: "□", Degrees: 90, Orb: 8, Nature: NatureChallenging},
	{Name: "Trine", Symbol: "△", Degrees: 120, Orb: 8, Nature: NatureHarmonious},
	{Name: "Opposition", Symbol: "☍", Degrees: 180, Orb: 8, Nature: NatureChallenging},
}

// AspectDefs returns a copy of the aspect table.
func AspectDefs() []AspectDef {
	defs := make([]AspectDef, len(aspectDefs))
	copy(defs, aspectDefs[:])
	return defs
}

// Aspect is an angular relationship found between two bodies.
type Aspect struct {
	Planet1       string  `json:"planet1"`
	Planet2       string  `json:"planet2"`
	Name          string  `json:"aspect_name"`
	Symbol        string  `json:"aspect_symbol"`
	ExactDegrees  float64 `json:"exact_degrees"`
	ActualDegrees float64 `json:"actual_degrees"`
	Orb           float64 `json:"orb"` // deviation from exact, rounded to 0.01°
	Nature        Nature  `json:"nature"`
}

// FindAspects checks every unordered pair of positions against the aspect
// table and returns the matches sorted tightest first. A pair is reported once
// per matching definition.
func FindAspects(positions []PlanetPosition) []Aspect {
	var aspects []Aspect

	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			p1, p2 := positions[i], positions[j]
			sep := astro.Separation(p1.TotalDegrees, p2.TotalDegrees)

			for _, def := range aspectDefs {
				dev := math.Abs(sep - def.Degrees)
				if dev > def.Orb {
					continue
				}
				aspects = append(aspects, Aspect{
					Planet1:       p1.Planet,
					Planet2:       p2.Planet,
					Name:          def.Name,
					Symbol:        def.Symbol,
					ExactDegrees:  def.Degrees,
					ActualDegrees: sep,
					Orb:           round2(dev),
					Nature:        def.Nature,
				})
			}
		}
	}

	sort.SliceStable(aspects, func(a, b int) bool {
		return aspects[a].Orb < aspects[b].Orb
	})
	return aspects
}
