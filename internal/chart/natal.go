package chart

import (
	"errors"
	"fmt"
	"math"

	"github.com/litescript/ls-natal/internal/astro"
)

// ErrMissingField is matched (via errors.Is) by every MissingFieldError.
var ErrMissingField = errors.New("missing required birth data field")

// ErrInvalidBirthData is returned for birth data that is present but unusable.
var ErrInvalidBirthData = errors.New("invalid birth data")

// MissingFieldError names the birth data field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// BirthData is the input to a chart. Year and month are always known; the
// rest may be unknown (nil), but a chart needs all of them.
type BirthData struct {
	Year      int      `json:"year" toml:"year"`
	Month     int      `json:"month" toml:"month"`
	Day       *int     `json:"day,omitempty" toml:"day,omitempty"`
	Hour      *int     `json:"hour,omitempty" toml:"hour,omitempty"`
	Minute    *int     `json:"minute,omitempty" toml:"minute,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" toml:"latitude,omitempty"`  // degrees, north positive
	Longitude *float64 `json:"longitude,omitempty" toml:"longitude,omitempty"` // degrees, east positive
	Timezone  *float64 `json:"timezone,omitempty" toml:"timezone,omitempty"`  // UTC offset in hours
}

// NewBirthData returns fully specified birth data.
func NewBirthData(year, month, day, hour, minute int, lat, lon, tz float64) BirthData {
	return BirthData{
		Year:      year,
		Month:     month,
		Day:       &day,
		Hour:      &hour,
		Minute:    &minute,
		Latitude:  &lat,
		Longitude: &lon,
		Timezone:  &tz,
	}
}

// Validate checks that every field a chart needs is present.
func (b BirthData) Validate() error {
	switch {
	case b.Day == nil:
		return &MissingFieldError{Field: "day"}
	case b.Hour == nil:
		return &MissingFieldError{Field: "hour"}
	case b.Minute == nil:
		return &MissingFieldError{Field: "minute"}
	case b.Latitude == nil:
		return &MissingFieldError{Field: "latitude"}
	case b.Longitude == nil:
		return &MissingFieldError{Field: "longitude"}
	case b.Timezone == nil:
		return &MissingFieldError{Field: "timezone"}
	}
	if b.Month < 1 || b.Month > 12 {
		return fmt.Errorf("%w: month %d out of range", ErrInvalidBirthData, b.Month)
	}
	return nil
}

// UT returns the birth hour and minute shifted from local time to UT.
// Whole hours of the offset come off the hour and any fraction comes off the
// minute. Nothing carries into the day; JulianDay absorbs out-of-range values.
func (b BirthData) UT() (hour, minute int) {
	tz := *b.Timezone
	whole := math.Trunc(tz)
	fracMin := int(math.Round((tz - whole) * 60))
	return *b.Hour - int(whole), *b.Minute - fracMin
}

// Shift returns a copy of b moved by the given number of minutes. The offset
// is applied to the minute field only and left for JulianDay to absorb.
func (b BirthData) Shift(minutes int) BirthData {
	out := b
	if b.Minute != nil {
		m := *b.Minute + minutes
		out.Minute = &m
	}
	return out
}

// Body names in chart order.
const (
	BodySun     = "sun"
	BodyMoon    = "moon"
	BodyMercury = "mercury"
	BodyVenus   = "venus"
	BodyMars    = "mars"
	BodyJupiter = "jupiter"
	BodySaturn  = "saturn"
	BodyUranus  = "uranus"
	BodyNeptune = "neptune"
	BodyPluto   = "pluto"
)

// PlanetPosition is a body's placement in the chart.
type PlanetPosition struct {
	Planet string `json:"planet"`
	SignPosition
	House      int  `json:"house"`
	Retrograde bool `json:"retrograde"`
}

// NatalChart is a complete chart. It is built in one piece by Calculate and
// not modified afterwards.
type NatalChart struct {
	JulianDay float64 `json:"julian_day"`

	Sun     PlanetPosition `json:"sun"`
	Moon    PlanetPosition `json:"moon"`
	Mercury PlanetPosition `json:"mercury"`
	Venus   PlanetPosition `json:"venus"`
	Mars    PlanetPosition `json:"mars"`
	Jupiter PlanetPosition `json:"jupiter"`
	Saturn  PlanetPosition `json:"saturn"`
	Uranus  PlanetPosition `json:"uranus"`
	Neptune PlanetPosition `json:"neptune"`
	Pluto   PlanetPosition `json:"pluto"`

	Ascendant  SignPosition `json:"ascendant"`
	Midheaven  SignPosition `json:"midheaven"`
	Aspects    []Aspect     `json:"aspects"`
	HouseCusps []float64    `json:"house_cusps"`
}

// Bodies returns the ten body positions in chart order (Sun through Pluto).
func (c *NatalChart) Bodies() []PlanetPosition {
	return []PlanetPosition{
		c.Sun, c.Moon, c.Mercury, c.Venus, c.Mars,
		c.Jupiter, c.Saturn, c.Uranus, c.Neptune, c.Pluto,
	}
}

// Body looks up a body position by name.
func (c *NatalChart) Body(name string) (PlanetPosition, bool) {
	for _, p := range c.Bodies() {
		if p.Planet == name {
			return p, true
		}
	}
	return PlanetPosition{}, false
}

// planetBodies maps the eight chart planets to their orbital-element entries.
var planetBodies = []struct {
	name   string
	planet astro.Planet
}{
	{BodyMercury, astro.Mercury},
	{BodyVenus, astro.Venus},
	{BodyMars, astro.Mars},
	{BodyJupiter, astro.Jupiter},
	{BodySaturn, astro.Saturn},
	{BodyUranus, astro.Uranus},
	{BodyNeptune, astro.Neptune},
	{BodyPluto, astro.Pluto},
}

// Calculate computes a natal chart from birth data.
//
// Planet positions come from mean Keplerian elements, so they are good to a
// degree or two; the Sun and Moon use closed-form series. The Ascendant,
// Midheaven and equal-house cusps follow from local sidereal time.
func Calculate(b BirthData) (*NatalChart, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}

	utHour, utMinute := b.UT()
	jd := astro.JulianDay(b.Year, b.Month, *b.Day, utHour, utMinute)

	obl := astro.Obliquity(jd)
	lst := astro.LocalSiderealTime(jd, *b.Longitude)
	asc := astro.Ascendant(lst, *b.Latitude, obl)
	mc := astro.Midheaven(lst, obl)
	cusps := EqualHouseCusps(asc)

	c := &NatalChart{
		JulianDay:  jd,
		Sun:        buildPosition(BodySun, astro.SunLongitude(jd), cusps, false),
		Moon:       buildPosition(BodyMoon, astro.MoonLongitude(jd), cusps, false),
		Ascendant:  DegreesToSign(asc),
		Midheaven:  DegreesToSign(mc),
		HouseCusps: cusps,
	}

	planets := make(map[string]PlanetPosition, len(planetBodies))
	for _, pb := range planetBodies {
		lon, err := astro.GeocentricLongitude(pb.planet, jd)
		if err != nil {
			return nil, fmt.Errorf("position of %s: %w", pb.name, err)
		}
		retro, err := astro.IsRetrograde(pb.planet, jd)
		if err != nil {
			return nil, fmt.Errorf("motion of %s: %w", pb.name, err)
		}
		planets[pb.name] = buildPosition(pb.name, lon, cusps, retro)
	}

	c.Mercury = planets[BodyMercury]
	c.Venus = planets[BodyVenus]
	c.Mars = planets[BodyMars]
	c.Jupiter = planets[BodyJupiter]
	c.Saturn = planets[BodySaturn]
	c.Uranus = planets[BodyUranus]
	c.Neptune = planets[BodyNeptune]
	c.Pluto = planets[BodyPluto]

	c.Aspects = FindAspects(c.Bodies())

	return c, nil
}

// buildPosition places a longitude in its sign and house. Degree fields are
// rounded to 0.01°; the house uses the unrounded longitude.
func buildPosition(name string, lon float64, cusps []float64, retrograde bool) PlanetPosition {
	pos := DegreesToSign(round2(lon))
	pos.Degrees = round2(pos.Degrees)
	return PlanetPosition{
		Planet:       name,
		SignPosition: pos,
		House:        HouseForLongitude(lon, cusps),
		Retrograde:   retrograde,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
