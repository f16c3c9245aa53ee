package astro

import "math"

// SunLongitude returns the apparent geocentric ecliptic longitude of the Sun
// in degrees for Julian Day jd.
// Uses the Meeus low-precision solar theory; accuracy is about 0.01 degrees.
func SunLongitude(jd float64) float64 {
	// Julian centuries from J2000.0
	T := JulianCenturies(jd)

	// Mean longitude of the Sun (degrees)
	L0 := NormalizeDegrees(280.46646 + 36000.76983*T + 0.0003032*T*T)

	// Mean anomaly of the Sun (degrees)
	M := NormalizeDegrees(357.52911 + 35999.05029*T - 0.0001537*T*T)
	Mrad := degToRad(M)

	// Sun's equation of center (degrees)
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	// Sun's true longitude (degrees)
	sunLon := NormalizeDegrees(L0 + C)

	// Apparent longitude (correcting for aberration and nutation)
	omega := 125.04 - 1934.136*T
	return NormalizeDegrees(sunLon - 0.00569 - 0.00478*math.Sin(degToRad(omega)))
}

// SunEquatorial converts the Sun's apparent longitude at jd to right
// ascension and declination in degrees, using the mean obliquity.
func SunEquatorial(jd float64) (raDeg, decDeg float64) {
	lon := degToRad(SunLongitude(jd))
	eps := degToRad(Obliquity(jd))

	ra := math.Atan2(math.Cos(eps)*math.Sin(lon), math.Cos(lon))
	dec := math.Asin(math.Sin(eps) * math.Sin(lon))

	return NormalizeDegrees(radToDeg(ra)), radToDeg(dec)
}
