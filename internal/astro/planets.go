package astro

import "math"

// Planet identifies a body with Keplerian orbital elements.
// Earth is included because it is the observer for geocentric positions.
type Planet int

const (
	Mercury Planet = iota
	Venus
	Earth
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	Pluto
)

// Planets lists every body in the orbital-elements table, in table order.
var Planets = []Planet{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}

var planetNames = [...]string{
	Mercury: "mercury",
	Venus:   "venus",
	Earth:   "earth",
	Mars:    "mars",
	Jupiter: "jupiter",
	Saturn:  "saturn",
	Uranus:  "uranus",
	Neptune: "neptune",
	Pluto:   "pluto",
}

// String returns the lower-case planet name.
func (p Planet) String() string {
	if !p.Valid() {
		return "unknown"
	}
	return planetNames[p]
}

// Valid reports whether p is one of the nine tabulated bodies.
func (p Planet) Valid() bool {
	return p >= Mercury && p <= Pluto
}

// Element is an orbital element at J2000.0 plus its linear rate per Julian century.
type Element struct {
	Value float64
	Rate  float64
}

// At evaluates the element T Julian centuries after J2000.0.
func (e Element) At(T float64) float64 {
	return e.Value + e.Rate*T
}

// OrbitalElements are the mean Keplerian elements of a planet.
// Angles are in degrees, the semi-major axis in AU.
type OrbitalElements struct {
	MeanLongitude Element // L
	SemiMajorAxis Element // a
	Eccentricity  Element // e
	Inclination   Element // i
	Node          Element // Ω, longitude of the ascending node
	Perihelion    Element // ϖ, longitude of perihelion
}

// Mean elements at J2000.0 (Standish 1992, as tabulated by Meeus).
var orbitalElements = [...]OrbitalElements{
	Mercury: {
		MeanLongitude: Element{252.25032350, 149472.67411175},
		SemiMajorAxis: Element{0.38709927, 0},
		Eccentricity:  Element{0.20563593, 0.00001906},
		Inclination:   Element{7.00497902, -0.00594749},
		Node:          Element{48.33076593, -0.12534081},
		Perihelion:    Element{77.45779628, 0.16047689},
	},
	Venus: {
		MeanLongitude: Element{181.97909950, 58517.81538729},
		SemiMajorAxis: Element{0.72333566, 0},
		Eccentricity:  Element{0.00677672, -0.00004107},
		Inclination:   Element{3.39467605, -0.00078890},
		Node:          Element{76.67984255, -0.27769418},
		Perihelion:    Element{131.60246718, 0.00268329},
	},
	Earth: {
		MeanLongitude: Element{100.46457166, 35999.37244981},
		SemiMajorAxis: Element{1.00000261, 0},
		Eccentricity:  Element{0.01671123, -0.00004392},
		Inclination:   Element{0.00001531, -0.01294668},
		Node:          Element{0, 0},
		Perihelion:    Element{102.93768193, 0.32327364},
	},
	Mars: {
		MeanLongitude: Element{355.44656299, 19140.30268499},
		SemiMajorAxis: Element{1.52371034, 0},
		Eccentricity:  Element{0.09339410, 0.00007882},
		Inclination:   Element{1.84969142, -0.00813131},
		Node:          Element{49.55953891, -0.29257343},
		Perihelion:    Element{336.05637041, 0.44441088},
	},
	Jupiter: {
		MeanLongitude: Element{34.39644051, 3034.74612775},
		SemiMajorAxis: Element{5.20288700, 0},
		Eccentricity:  Element{0.04838624, -0.00013253},
		Inclination:   Element{1.30439695, -0.00183714},
		Node:          Element{100.47390909, 0.20469106},
		Perihelion:    Element{14.72847983, 0.21252668},
	},
	Saturn: {
		MeanLongitude: Element{49.95424423, 1222.49362201},
		SemiMajorAxis: Element{9.53667594, 0},
		Eccentricity:  Element{0.05386179, -0.00050991},
		Inclination:   Element{2.48599187, 0.00193609},
		Node:          Element{113.66242448, -0.28867794},
		Perihelion:    Element{92.59887831, -0.41897216},
	},
	Uranus: {
		MeanLongitude: Element{313.23810451, 428.48202785},
		SemiMajorAxis: Element{19.18916464, 0},
		Eccentricity:  Element{0.04725744, -0.00004397},
		Inclination:   Element{0.77263783, -0.00242939},
		Node:          Element{74.01692503, 0.04240589},
		Perihelion:    Element{170.95427630, 0.40805281},
	},
	Neptune: {
		MeanLongitude: Element{304.87997031, 218.45945325},
		SemiMajorAxis: Element{30.06992276, 0},
		Eccentricity:  Element{0.00859048, 0.00005105},
		Inclination:   Element{1.77004347, 0.00035372},
		Node:          Element{131.78422574, -0.01299630},
		Perihelion:    Element{44.96476227, -0.32241464},
	},
	Pluto: {
		MeanLongitude: Element{238.92903833, 145.20780515},
		SemiMajorAxis: Element{39.48211675, 0},
		Eccentricity:  Element{0.24882730, 0.00005170},
		Inclination:   Element{17.14001206, 0.00004818},
		Node:          Element{110.30393684, -0.01183482},
		Perihelion:    Element{224.06891629, -0.04062942},
	},
}

// Elements returns a copy of the J2000.0 orbital elements for p.
func Elements(p Planet) (OrbitalElements, bool) {
	if !p.Valid() {
		return OrbitalElements{}, false
	}
	return orbitalElements[p], true
}

// orbitState is a planet's position in its orbit at one instant.
type orbitState struct {
	e          float64 // eccentricity
	node       float64 // Ω, degrees
	perihelion float64 // ϖ, degrees
	incl       float64 // i, degrees
	trueAnom   float64 // v, degrees
	radius     float64 // heliocentric distance, AU
}

// orbitAt propagates p's mean elements to jd and solves for its place in orbit.
func orbitAt(p Planet, jd float64) orbitState {
	el := orbitalElements[p]
	T := JulianCenturies(jd)

	L := NormalizeDegrees(el.MeanLongitude.At(T))
	e := el.Eccentricity.At(T)
	peri := NormalizeDegrees(el.Perihelion.At(T))

	// Mean anomaly
	M := degToRad(NormalizeDegrees(L - peri))
	E := SolveKepler(M, e)

	return orbitState{
		e:          e,
		node:       NormalizeDegrees(el.Node.At(T)),
		perihelion: peri,
		incl:       el.Inclination.At(T),
		trueAnom:   radToDeg(trueAnomaly(E, e)),
		radius:     el.SemiMajorAxis.At(T) * (1 - e*math.Cos(E)),
	}
}

// HeliocentricLongitude returns the heliocentric ecliptic longitude of p in
// degrees at Julian Day jd. The argument of latitude is projected from the
// orbital plane onto the ecliptic through the inclination.
func HeliocentricLongitude(p Planet, jd float64) float64 {
	if !p.Valid() {
		return 0
	}
	o := orbitAt(p, jd)

	// Argument of latitude, measured in the orbital plane from the node
	u := degToRad(NormalizeDegrees(o.trueAnom + o.perihelion - o.node))
	i := degToRad(o.incl)

	return NormalizeDegrees(radToDeg(math.Atan2(math.Sin(u)*math.Cos(i), math.Cos(u))) + o.node)
}

// HeliocentricRadius returns p's distance from the Sun in AU at jd.
func HeliocentricRadius(p Planet, jd float64) float64 {
	if !p.Valid() {
		return 0
	}
	return orbitAt(p, jd).radius
}
