// Package astro provides the ephemeris and sky geometry behind natal charts:
// Julian dates, a Kepler solver, planetary orbits, Sun and Moon series, and
// the local-sky angles (sidereal time, Ascendant, Midheaven).
package astro

import "math"

// NormalizeDegrees wraps an angle into [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod of a tiny negative value can round back up to exactly 360
	if a >= 360 {
		a -= 360
	}
	return a
}

// SignedDelta returns the shortest signed arc from a to b in degrees,
// in the range [-180, 180]. Positive means b lies ahead of a in zodiac order.
func SignedDelta(a, b float64) float64 {
	d := b - a
	if d > 180 {
		d -= 360
	}
	if d < -180 {
		d += 360
	}
	// Inputs outside [0, 360) can leave d more than one turn away
	for d > 180 {
		d -= 360
	}
	for d < -180 {
		d += 360
	}
	return d
}

// Separation returns the unsigned angular distance between two ecliptic
// longitudes, in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(NormalizeDegrees(a) - NormalizeDegrees(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
