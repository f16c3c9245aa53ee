package astro

import "math"

// Obliquity returns the mean obliquity of the ecliptic in degrees at jd
// (IAU 1976 polynomial as given by Meeus).
func Obliquity(jd float64) float64 {
	T := JulianCenturies(jd)
	return 23.4392911 - 0.0130042*T - 1.64e-7*T*T + 5.036e-7*T*T*T
}

// GreenwichSiderealTime returns Greenwich Mean Sidereal Time in degrees at jd.
func GreenwichSiderealTime(jd float64) float64 {
	// Julian centuries since J2000.0
	T := JulianCenturies(jd)

	// GMST in degrees (IAU 1982 formula)
	// GMST = 280.46061837 + 360.98564736629*(JD-2451545) + 0.000387933*T^2 - T^3/38710000
	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return NormalizeDegrees(gmst)
}

// LocalSiderealTime returns the Local Sidereal Time in degrees for Julian
// Day jd and an observer longitude in degrees (east positive).
func LocalSiderealTime(jd, lonDeg float64) float64 {
	return NormalizeDegrees(GreenwichSiderealTime(jd) + lonDeg)
}

// Ascendant returns the ecliptic longitude rising on the eastern horizon,
// given local sidereal time, geographic latitude and obliquity (all degrees).
func Ascendant(lstDeg, latDeg, oblDeg float64) float64 {
	lst := degToRad(lstDeg)
	lat := degToRad(latDeg)
	obl := degToRad(oblDeg)

	y := -math.Cos(lst)
	x := math.Sin(obl)*math.Tan(lat) + math.Cos(obl)*math.Sin(lst)

	return NormalizeDegrees(radToDeg(math.Atan2(y, x)))
}

// Midheaven returns the ecliptic longitude culminating on the local meridian,
// given local sidereal time and obliquity in degrees.
func Midheaven(lstDeg, oblDeg float64) float64 {
	lst := degToRad(lstDeg)
	obl := degToRad(oblDeg)

	return NormalizeDegrees(radToDeg(math.Atan2(math.Sin(lst), math.Cos(lst)*math.Cos(obl))))
}
