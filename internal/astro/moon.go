package astro

import "math"

// lunarTerm is one periodic term of the Moon's longitude: coefficient (in
// millionths of a degree) times the sine of an integer combination of the
// fundamental arguments D, M, M' and F.
type lunarTerm struct {
	d, m, mp, f float64
	coeff       float64
}

// Principal longitude terms of Meeus Table 47.A.
var lunarLongitudeTerms = []lunarTerm{
	{0, 0, 1, 0, 6288774},
	{2, 0, -1, 0, 1274027},
	{2, 0, 0, 0, 658314},
	{0, 0, 2, 0, 213618},
	{0, 1, 0, 0, -185116},
	{0, 0, 0, 2, -114332},
	{2, 0, -2, 0, 58793},
	{2, -1, -1, 0, 57066},
	{2, 0, 1, 0, 53322},
	{2, -1, 0, 0, 45758},
	{0, 1, -1, 0, -40923},
	{1, 0, 0, 0, -34720},
	{0, 1, 1, 0, -30383},
	{2, 0, 0, -2, 15327},
	{0, 0, 1, 2, -12528},
	{0, 0, 1, -2, 10980},
	{4, 0, -1, 0, 10675},
	{0, 0, 3, 0, 10034},
	{4, 0, -2, 0, 8548},
	{2, 1, -1, 0, -7888},
	{2, 1, 0, 0, -6766},
	{1, 0, -1, 0, -5163},
	{1, 1, 0, 0, 4987},
	{2, -1, 1, 0, 4036},
}

// MoonLongitude returns the geocentric ecliptic longitude of the Moon in
// degrees for Julian Day jd. Only the principal periodic terms are summed,
// which keeps the error well under a degree.
func MoonLongitude(jd float64) float64 {
	T := JulianCenturies(jd)
	T2 := T * T
	T3 := T2 * T
	T4 := T3 * T

	// Moon's mean longitude
	Lp := NormalizeDegrees(218.3164477 + 481267.88123421*T - 0.0015786*T2 + T3/538841 - T4/65194000)

	// Moon's mean elongation
	D := NormalizeDegrees(297.8501921 + 445267.1114034*T - 0.0018819*T2 + T3/545868 - T4/113065000)

	// Sun's mean anomaly
	M := NormalizeDegrees(357.5291092 + 35999.0502909*T - 0.0001536*T2 + T3/24490000)

	// Moon's mean anomaly
	Mp := NormalizeDegrees(134.9633964 + 477198.8675055*T + 0.0087414*T2 + T3/69699 - T4/14712000)

	// Moon's argument of latitude
	F := NormalizeDegrees(93.2720950 + 483202.0175233*T - 0.0036539*T2 - T3/3526000 + T4/863310000)

	Drad, Mrad, Mprad, Frad := degToRad(D), degToRad(M), degToRad(Mp), degToRad(F)

	var sum float64
	for _, t := range lunarLongitudeTerms {
		arg := t.d*Drad + t.m*Mrad + t.mp*Mprad + t.f*Frad
		sum += t.coeff * math.Sin(arg)
	}

	return NormalizeDegrees(Lp + sum/1e6)
}
