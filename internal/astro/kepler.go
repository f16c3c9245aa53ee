package astro

import "math"

const (
	// KeplerMaxIterations caps the Newton-Raphson loop in SolveKepler.
	KeplerMaxIterations = 50

	// KeplerTolerance is the correction size (radians) at which SolveKepler stops.
	KeplerTolerance = 1e-12
)

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly E, using Newton-Raphson from the initial guess E = M.
// Both anomalies are in radians.
//
// The loop is capped at KeplerMaxIterations. If it has not converged by then
// the last estimate is returned; for planetary eccentricities (< 0.25) it
// converges in a handful of steps.
func SolveKepler(meanAnomaly, eccentricity float64) float64 {
	E, _ := solveKepler(meanAnomaly, eccentricity)
	return E
}

// solveKepler is SolveKepler that also reports the iterations used.
func solveKepler(M, e float64) (float64, int) {
	E := M
	for i := 1; i <= KeplerMaxIterations; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < KeplerTolerance {
			return E, i
		}
	}
	return E, KeplerMaxIterations
}

// trueAnomaly converts an eccentric anomaly to the true anomaly (radians).
func trueAnomaly(E, e float64) float64 {
	den := 1 - e*math.Cos(E)
	sinV := math.Sqrt(1-e*e) * math.Sin(E) / den
	cosV := (math.Cos(E) - e) / den
	return math.Atan2(sinV, cosV)
}
