package astro

import (
	"errors"
	"math"
	"testing"
)

func TestPlanetString(t *testing.T) {
	tests := []struct {
		p    Planet
		want string
	}{
		{Mercury, "mercury"},
		{Earth, "earth"},
		{Pluto, "pluto"},
		{Planet(-1), "unknown"},
		{Planet(42), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Planet(%d).String() = %q, want %q", int(tt.p), got, tt.want)
		}
	}
}

func TestElements(t *testing.T) {
	el, ok := Elements(Mars)
	if !ok {
		t.Fatal("Elements(Mars) not found")
	}
	if el.SemiMajorAxis.Value < 1.5 || el.SemiMajorAxis.Value > 1.55 {
		t.Errorf("Mars a = %v AU, want ~1.524", el.SemiMajorAxis.Value)
	}

	// Returned value is a copy; the table is immutable
	el.Eccentricity.Value = 0.9
	again, _ := Elements(Mars)
	if again.Eccentricity.Value == 0.9 {
		t.Error("Elements() exposed the shared table")
	}

	if _, ok := Elements(Planet(99)); ok {
		t.Error("Elements(99) should report not found")
	}
}

func TestElementAt(t *testing.T) {
	e := Element{Value: 10, Rate: 2}
	if got := e.At(0.5); got != 11 {
		t.Errorf("At(0.5) = %v, want 11", got)
	}
}

func TestHeliocentricRadius(t *testing.T) {
	jd := JulianDay(2024, 1, 1, 0, 0)
	for _, p := range Planets {
		el, _ := Elements(p)
		a := el.SemiMajorAxis.Value
		e := el.Eccentricity.Value
		r := HeliocentricRadius(p, jd)
		if r < a*(1-e)-0.01 || r > a*(1+e)+0.01 {
			t.Errorf("%s r = %.4f AU, want between %.4f and %.4f", p, r, a*(1-e), a*(1+e))
		}
	}
}

func TestHeliocentricLongitude_EarthOppositeSun(t *testing.T) {
	// The geocentric Sun is exactly opposite the heliocentric Earth.
	for jd := J2000; jd < J2000+400; jd += 23 {
		earth := HeliocentricLongitude(Earth, jd)
		sun := SunLongitude(jd)
		if sep := Separation(earth+180, sun); sep > 0.5 {
			t.Errorf("JD %.1f: Earth+180 = %.3f°, Sun = %.3f° (sep %.3f°)", jd, NormalizeDegrees(earth+180), sun, sep)
		}
	}
}

func TestHeliocentricLongitude_Range(t *testing.T) {
	jd := JulianDay(1990, 6, 15, 18, 30)
	for _, p := range Planets {
		got := HeliocentricLongitude(p, jd)
		if got < 0 || got >= 360 {
			t.Errorf("HeliocentricLongitude(%s) = %v, want in [0, 360)", p, got)
		}
		// Projection through small inclinations moves the longitude only slightly
		planar := EclipticLongitude(PlanarPosition(p, jd))
		if sep := Separation(got, planar); sep > 2.5 {
			t.Errorf("%s: projected %.3f° vs planar %.3f° differ by %.3f°", p, got, planar, sep)
		}
	}
}

func TestGeocentricLongitude_Earth(t *testing.T) {
	_, err := GeocentricLongitude(Earth, J2000)
	if !errors.Is(err, ErrInvalidPlanet) {
		t.Errorf("GeocentricLongitude(Earth) error = %v, want ErrInvalidPlanet", err)
	}

	_, err = GeocentricLongitude(Planet(9), J2000)
	if !errors.Is(err, ErrInvalidPlanet) {
		t.Errorf("GeocentricLongitude(9) error = %v, want ErrInvalidPlanet", err)
	}

	_, err = IsRetrograde(Earth, J2000)
	if !errors.Is(err, ErrInvalidPlanet) {
		t.Errorf("IsRetrograde(Earth) error = %v, want ErrInvalidPlanet", err)
	}
}

func TestGeocentricLongitude_InnerPlanetElongation(t *testing.T) {
	tests := []struct {
		planet     Planet
		maxElonDeg float64
	}{
		{Mercury, 29.5},
		{Venus, 48.5},
	}

	for _, tt := range tests {
		t.Run(tt.planet.String(), func(t *testing.T) {
			for jd := JulianDay(2020, 1, 1, 0, 0); jd < JulianDay(2025, 1, 1, 0, 0); jd += 37 {
				lon, err := GeocentricLongitude(tt.planet, jd)
				if err != nil {
					t.Fatalf("GeocentricLongitude() error = %v", err)
				}
				if elon := Separation(lon, SunLongitude(jd)); elon > tt.maxElonDeg {
					t.Errorf("JD %.1f: elongation %.2f°, want <= %.1f°", jd, elon, tt.maxElonDeg)
				}
			}
		})
	}
}

func TestGeocentricLongitude_KnownPositions(t *testing.T) {
	jd := JulianDay(2000, 1, 1, 0, 0)
	tests := []struct {
		planet Planet
		want   float64 // approximate geocentric longitude, degrees
		tol    float64
	}{
		{Jupiter, 25.3, 4}, // late Aries
		{Saturn, 40.1, 4},  // early Taurus
	}

	for _, tt := range tests {
		t.Run(tt.planet.String(), func(t *testing.T) {
			got, err := GeocentricLongitude(tt.planet, jd)
			if err != nil {
				t.Fatalf("GeocentricLongitude() error = %v", err)
			}
			if sep := Separation(got, tt.want); sep > tt.tol {
				t.Errorf("GeocentricLongitude(%s) = %.2f°, want %.1f° (±%.0f°)", tt.planet, got, tt.want, tt.tol)
			}
		})
	}
}

func TestIsRetrograde(t *testing.T) {
	tests := []struct {
		name   string
		planet Planet
		jd     float64
		want   bool
	}{
		{"Mercury retrograde April 2024", Mercury, JulianDay(2024, 4, 12, 0, 0), true},
		{"Mercury direct May 2024", Mercury, JulianDay(2024, 5, 20, 0, 0), false},
		{"Mars retrograde January 2025", Mars, JulianDay(2025, 1, 10, 0, 0), true},
		{"Jupiter direct March 2024", Jupiter, JulianDay(2024, 3, 1, 0, 0), false},
		{"Saturn retrograde September 2024", Saturn, JulianDay(2024, 9, 1, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsRetrograde(tt.planet, tt.jd)
			if err != nil {
				t.Fatalf("IsRetrograde() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsRetrograde(%s) = %v, want %v", tt.planet, got, tt.want)
			}
		})
	}
}

func TestPlanarPosition_EarthDistance(t *testing.T) {
	for jd := J2000; jd < J2000+365; jd += 30 {
		r := PlanarPosition(Earth, jd).Norm()
		if r < 0.983 || r > 1.017 {
			t.Errorf("Earth distance at JD %.1f = %.4f AU, want between 0.983 and 1.017", jd, r)
		}
	}
	if v := PlanarPosition(Planet(-3), J2000); v != (Vec3{}) {
		t.Errorf("PlanarPosition(invalid) = %+v, want zero", v)
	}
	if z := PlanarPosition(Pluto, J2000).Z; math.Abs(z) != 0 {
		t.Errorf("planar Z = %v, want 0", z)
	}
}
