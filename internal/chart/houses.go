package chart

import "github.com/litescript/ls-natal/internal/astro"

// HouseCount is the number of houses in a chart.
const HouseCount = 12

// EqualHouseCusps returns the twelve equal-house cusps: the Ascendant and
// every 30° after it, each normalized to [0, 360).
func EqualHouseCusps(ascendant float64) []float64 {
	cusps := make([]float64, HouseCount)
	for i := range cusps {
		cusps[i] = astro.NormalizeDegrees(ascendant + float64(i)*30)
	}
	return cusps
}

// HouseForLongitude returns the house (1-12) containing an ecliptic longitude.
// House i+1 spans [cusps[i], cusps[i+1]); the house whose span crosses 0° is
// handled by wrapping. If no span matches, which cannot happen for a full set
// of equal cusps, house 1 is returned.
func HouseForLongitude(longitude float64, cusps []float64) int {
	lon := astro.NormalizeDegrees(longitude)
	n := len(cusps)
	for i := 0; i < n; i++ {
		cusp := cusps[i]
		next := cusps[(i+1)%n]

		if next > cusp {
			if lon >= cusp && lon < next {
				return i + 1
			}
		} else if lon >= cusp || lon < next {
			// Span wraps around 0°
			return i + 1
		}
	}
	return 1
}
