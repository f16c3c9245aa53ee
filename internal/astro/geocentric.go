package astro

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPlanet is returned when a geocentric quantity is requested for
// Earth (the observer) or for a value outside the planet table.
var ErrInvalidPlanet = errors.New("invalid planet for geocentric position")

// Vec3 represents a 3D vector in the heliocentric ecliptic frame, in AU.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the magnitude of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(u Vec3) Vec3 {
	return Vec3{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z}
}

// EclipticLongitude returns the ecliptic longitude in degrees for a vector.
func EclipticLongitude(v Vec3) float64 {
	return NormalizeDegrees(radToDeg(math.Atan2(v.Y, v.X)))
}

// PlanarPosition returns p's heliocentric position projected into the
// ecliptic plane (Z is always zero). Inclination is ignored: the longitude is
// true anomaly plus longitude of perihelion.
func PlanarPosition(p Planet, jd float64) Vec3 {
	if !p.Valid() {
		return Vec3{}
	}
	o := orbitAt(p, jd)
	lon := degToRad(NormalizeDegrees(o.trueAnom + o.perihelion))
	return Vec3{
		X: o.radius * math.Cos(lon),
		Y: o.radius * math.Sin(lon),
	}
}

// GeocentricLongitude returns the ecliptic longitude of p as seen from Earth
// at Julian Day jd, in [0, 360).
//
// Both bodies are treated as coplanar: the geocentric vector is the planet's
// planar position minus Earth's. That is good to a degree or two, enough for
// sign and house placement.
func GeocentricLongitude(p Planet, jd float64) (float64, error) {
	if !p.Valid() || p == Earth {
		return 0, fmt.Errorf("geocentric longitude of %s: %w", p, ErrInvalidPlanet)
	}
	geo := PlanarPosition(p, jd).Sub(PlanarPosition(Earth, jd))
	return EclipticLongitude(geo), nil
}

// IsRetrograde reports whether p appears to move backwards through the zodiac
// at jd, by comparing its geocentric longitude one day before and one day after.
func IsRetrograde(p Planet, jd float64) (bool, error) {
	before, err := GeocentricLongitude(p, jd-1)
	if err != nil {
		return false, err
	}
	after, err := GeocentricLongitude(p, jd+1)
	if err != nil {
		return false, err
	}
	return SignedDelta(before, after) < 0, nil
}
