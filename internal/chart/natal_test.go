package chart

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/litescript/ls-natal/internal/astro"
)

func newYorkBirth() BirthData {
	return NewBirthData(1990, 6, 15, 14, 30, 40.7128, -74.0060, -4)
}

func TestCalculate_KnownBirth(t *testing.T) {
	c, err := Calculate(newYorkBirth())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if c.Sun.Sign != Gemini {
		t.Errorf("Sun sign = %q, want gemini", c.Sun.Sign)
	}
	if c.Sun.Degrees < 23.5 || c.Sun.Degrees > 25.5 {
		t.Errorf("Sun = %.2f° Gemini, want between 23.5° and 25.5°", c.Sun.Degrees)
	}
	if len(c.HouseCusps) != 12 {
		t.Errorf("len(HouseCusps) = %d, want 12", len(c.HouseCusps))
	}

	// 14:30 EDT is 18:30 UT
	if want := astro.JulianDay(1990, 6, 15, 18, 30); math.Abs(c.JulianDay-want) > 1e-9 {
		t.Errorf("JulianDay = %.5f, want %.5f", c.JulianDay, want)
	}
}

func TestCalculate_Invariants(t *testing.T) {
	births := []BirthData{
		newYorkBirth(),
		NewBirthData(2000, 1, 1, 12, 0, 51.4779, 0, 0),
		NewBirthData(1969, 7, 20, 20, 17, -33.8688, 151.2093, 10),
		NewBirthData(2024, 4, 8, 18, 21, 19.0760, 72.8777, 5.5),
	}

	for _, b := range births {
		c, err := Calculate(b)
		if err != nil {
			t.Fatalf("Calculate(%d-%02d) error = %v", b.Year, b.Month, err)
		}

		for i, cusp := range c.HouseCusps {
			want := astro.NormalizeDegrees(c.Ascendant.TotalDegrees + float64(i)*30)
			if math.Abs(cusp-want) > 1e-9 {
				t.Errorf("cusp %d = %v, want %v", i+1, cusp, want)
			}
		}

		bodies := c.Bodies()
		if len(bodies) != 10 {
			t.Fatalf("len(Bodies()) = %d, want 10", len(bodies))
		}
		for _, p := range bodies {
			if p.House < 1 || p.House > 12 {
				t.Errorf("%s house = %d, want 1..12", p.Planet, p.House)
			}
			if p.TotalDegrees < 0 || p.TotalDegrees >= 360 {
				t.Errorf("%s total = %v, want in [0, 360)", p.Planet, p.TotalDegrees)
			}
			if math.Abs(math.Mod(p.TotalDegrees, 30)-p.Degrees) > 0.011 {
				t.Errorf("%s degrees %v != total %v mod 30", p.Planet, p.Degrees, p.TotalDegrees)
			}
			if DegreesToSign(p.TotalDegrees).Sign != p.Sign {
				t.Errorf("%s sign %q inconsistent with total %v", p.Planet, p.Sign, p.TotalDegrees)
			}
		}

		if c.Sun.Retrograde || c.Moon.Retrograde {
			t.Error("Sun and Moon are never retrograde")
		}

		if !sort.SliceIsSorted(c.Aspects, func(i, j int) bool { return c.Aspects[i].Orb < c.Aspects[j].Orb }) {
			t.Errorf("aspects not sorted by orb")
		}
	}
}

func TestCalculate_MissingFields(t *testing.T) {
	tests := []struct {
		field string
		clear func(*BirthData)
	}{
		{"day", func(b *BirthData) { b.Day = nil }},
		{"hour", func(b *BirthData) { b.Hour = nil }},
		{"minute", func(b *BirthData) { b.Minute = nil }},
		{"latitude", func(b *BirthData) { b.Latitude = nil }},
		{"longitude", func(b *BirthData) { b.Longitude = nil }},
		{"timezone", func(b *BirthData) { b.Timezone = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			b := newYorkBirth()
			tt.clear(&b)

			c, err := Calculate(b)
			if c != nil {
				t.Error("Calculate() returned a chart despite missing data")
			}
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("error = %v, want ErrMissingField", err)
			}
			var mf *MissingFieldError
			if !errors.As(err, &mf) || mf.Field != tt.field {
				t.Errorf("missing field = %v, want %q", err, tt.field)
			}
		})
	}
}

func TestCalculate_InvalidMonth(t *testing.T) {
	b := newYorkBirth()
	b.Month = 13
	if _, err := Calculate(b); !errors.Is(err, ErrInvalidBirthData) {
		t.Errorf("Calculate(month 13) error = %v, want ErrInvalidBirthData", err)
	}
}

func TestBirthDataUT(t *testing.T) {
	tests := []struct {
		name           string
		hour, minute   int
		tz             float64
		wantH, wantMin int
	}{
		{"UTC", 14, 30, 0, 14, 30},
		{"New York daylight", 14, 30, -4, 18, 30},
		{"Tokyo, no day carry", 3, 0, 9, -6, 0},
		{"India half hour", 10, 15, 5.5, 5, -15},
		{"Newfoundland", 23, 0, -3.5, 26, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBirthData(2000, 1, 1, tt.hour, tt.minute, 0, 0, tt.tz)
			h, m := b.UT()
			if h != tt.wantH || m != tt.wantMin {
				t.Errorf("UT() = %d:%d, want %d:%d", h, m, tt.wantH, tt.wantMin)
			}
		})
	}
}

func TestBirthDataShift(t *testing.T) {
	b := newYorkBirth()
	shifted := b.Shift(90)
	if *shifted.Minute != 120 {
		t.Errorf("shifted minute = %d, want 120", *shifted.Minute)
	}
	if *b.Minute != 30 {
		t.Errorf("Shift modified the original: minute = %d", *b.Minute)
	}

	c1, _ := Calculate(shifted)
	c2, _ := Calculate(NewBirthData(1990, 6, 15, 16, 0, 40.7128, -74.0060, -4))
	if math.Abs(c1.JulianDay-c2.JulianDay) > 1e-9 {
		t.Errorf("shifted JD %.6f, want %.6f", c1.JulianDay, c2.JulianDay)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	want, err := Calculate(newYorkBirth())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	var wg sync.WaitGroup
	results := make([]*NatalChart, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Calculate(newYorkBirth())
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		if !reflect.DeepEqual(got, want) {
			t.Errorf("concurrent result %d differs from sequential result", i)
		}
	}
}

func TestNatalChartBody(t *testing.T) {
	c, err := Calculate(newYorkBirth())
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	mars, ok := c.Body(BodyMars)
	if !ok || mars.Planet != BodyMars {
		t.Errorf("Body(mars) = %+v, %v", mars, ok)
	}
	if _, ok := c.Body("earth"); ok {
		t.Error("Body(earth) should not be found")
	}
}
