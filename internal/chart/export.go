package chart

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/litescript/ls-natal/internal/astro"
)

// WriteJSON writes the chart as indented JSON.
func WriteJSON(w io.Writer, c *NatalChart) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// FormatPosition renders a placement like "24°22' Gemini".
func FormatPosition(p SignPosition) string {
	deg := int(p.Degrees)
	mins := int((p.Degrees - float64(deg)) * 60)
	return fmt.Sprintf("%2d°%02d' %s", deg, mins, p.Sign.Title())
}

// WriteSummary writes a text table of the chart.
func WriteSummary(w io.Writer, title string, c *NatalChart) {
	fmt.Fprintf(w, "Natal chart: %s (JD %.5f)\n", title, c.JulianDay)
	fmt.Fprintln(w, strings.Repeat("─", 56))

	fmt.Fprintf(w, "%-10s %-18s %8s %6s %s\n", "Body", "Position", "Lon", "House", "")
	fmt.Fprintln(w, strings.Repeat("─", 56))
	for _, p := range c.Bodies() {
		retro := ""
		if p.Retrograde {
			retro = "℞"
		}
		fmt.Fprintf(w, "%-10s %-18s %7.2f° %6d %s\n",
			titleCase(p.Planet), FormatPosition(p.SignPosition), p.TotalDegrees, p.House, retro)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Ascendant  %s\n", FormatPosition(c.Ascendant))
	fmt.Fprintf(w, "Midheaven  %s\n", FormatPosition(c.Midheaven))

	ra, dec := astro.SunEquatorial(c.JulianDay)
	fmt.Fprintf(w, "Sun RA/Dec %.2f° / %+.2f°\n", ra, dec)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Heliocentric")
	for _, b := range planetBodies {
		fmt.Fprintf(w, "  %-8s %7.2f° %7.3f AU\n",
			titleCase(b.name), astro.HeliocentricLongitude(b.planet, c.JulianDay), astro.HeliocentricRadius(b.planet, c.JulianDay))
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, "Cusps     ")
	for i, cusp := range c.HouseCusps {
		fmt.Fprintf(w, " %d:%.0f°", i+1, cusp)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	if len(c.Aspects) == 0 {
		fmt.Fprintln(w, "No major aspects")
		return
	}
	fmt.Fprintf(w, "Aspects (%d, tightest first)\n", len(c.Aspects))
	for _, a := range c.Aspects {
		fmt.Fprintf(w, "  %-8s %s %-8s %-11s orb %.2f°\n", a.Planet1, a.Symbol, a.Planet2, a.Name, a.Orb)
	}
}
