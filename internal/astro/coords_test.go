package astro

import (
	"math"
	"testing"
)

func TestObliquity(t *testing.T) {
	if got := Obliquity(J2000); math.Abs(got-23.4392911) > 1e-9 {
		t.Errorf("Obliquity(J2000) = %.7f°, want 23.4392911°", got)
	}
	// Obliquity is slowly decreasing (~47" per century)
	if Obliquity(J2000+DaysPerCentury) >= Obliquity(J2000) {
		t.Error("Obliquity should decrease over the 21st century")
	}
}

func TestGreenwichSiderealTime(t *testing.T) {
	tests := []struct {
		name string
		jd   float64
		want float64
	}{
		{"J2000.0", J2000, 280.46061837},
		// Meeus example 12.a: 1987 April 10, 0h UT, GMST = 13h10m46.3668s
		{"Meeus 12.a", 2446895.5, 197.693195},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GreenwichSiderealTime(tt.jd)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("GreenwichSiderealTime() = %.6f°, want %.6f°", got, tt.want)
			}
		})
	}
}

func TestLocalSiderealTime(t *testing.T) {
	tests := []struct {
		name   string
		lonDeg float64
		want   float64
	}{
		{"Greenwich", 0, 280.46061837},
		{"New York", -74.0060, 206.45461837},
		{"wraps past 360", 100, 20.46061837},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocalSiderealTime(J2000, tt.lonDeg)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("LocalSiderealTime() = %.6f°, want %.6f°", got, tt.want)
			}
		})
	}
}

func TestMidheaven(t *testing.T) {
	const obl = 23.4392911
	tests := []struct {
		lst  float64
		want float64
	}{
		{0, 0},
		{90, 90},
		{180, 180},
		{270, 270},
	}

	for _, tt := range tests {
		got := Midheaven(tt.lst, obl)
		if Separation(got, tt.want) > 1e-6 {
			t.Errorf("Midheaven(%v) = %.6f°, want %.6f°", tt.lst, got, tt.want)
		}
	}

	// Between the cardinal points the MC leads or lags RAMC but stays in the same quadrant
	for lst := 5.0; lst < 360; lst += 10 {
		got := Midheaven(lst, obl)
		if math.Floor(got/90) != math.Floor(lst/90) {
			t.Errorf("Midheaven(%v) = %.3f°, want same quadrant as LST", lst, got)
		}
	}
}

func TestAscendant(t *testing.T) {
	const obl = 23.4392911

	tests := []struct {
		name     string
		lst, lat float64
		want     float64
	}{
		{"equator, LST 0", 0, 0, 270},
		{"equator, LST 180", 180, 0, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ascendant(tt.lst, tt.lat, obl)
			if Separation(got, tt.want) > 1e-6 {
				t.Errorf("Ascendant() = %.6f°, want %.6f°", got, tt.want)
			}
		})
	}
}

func TestAscendant_SatisfiesRisingEquation(t *testing.T) {
	const obl = 23.4392911
	oblRad := degToRad(obl)

	for _, lat := range []float64{-45, -10, 0, 20, 40.7128, 60} {
		for lst := 3.0; lst < 360; lst += 17 {
			asc := Ascendant(lst, lat, obl)
			if asc < 0 || asc >= 360 {
				t.Fatalf("Ascendant(%v, %v) = %v, want in [0, 360)", lst, lat, asc)
			}
			// tan(ASC) = -cos(LST) / (sin ε tan φ + cos ε sin LST)
			lstRad, latRad, ascRad := degToRad(lst), degToRad(lat), degToRad(asc)
			lhs := math.Sin(ascRad) * (math.Sin(oblRad)*math.Tan(latRad) + math.Cos(oblRad)*math.Sin(lstRad))
			rhs := -math.Cos(lstRad) * math.Cos(ascRad)
			if math.Abs(lhs-rhs) > 1e-9 {
				t.Errorf("Ascendant(%v, %v) = %.4f° does not satisfy the rising equation", lst, lat, asc)
			}
		}
	}
}
