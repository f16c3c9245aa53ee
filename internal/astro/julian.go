package astro

import "math"

// J2000 is the Julian Day of the J2000.0 epoch (2000-01-01 12:00 TT).
const J2000 = 2451545.0

// DaysPerCentury is the length of a Julian century in days.
const DaysPerCentury = 36525.0

// JulianDay converts a civil date and UT time of day to a Julian Day.
//
// The hour and minute are not required to lie in their usual ranges: the day
// fraction is plain arithmetic, so hour=-3 on the 15th is the same instant as
// hour=21 on the 14th. Callers converting local time to UT rely on this.
func JulianDay(year, month, day, hour, minute int) float64 {
	y := float64(year)
	m := float64(month)
	d := float64(day)

	dayFrac := (float64(hour) + float64(minute)/60) / 24.0

	// Adjust for January/February (treat as months 13/14 of previous year)
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// JulianCenturies returns the number of Julian centuries elapsed since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}
