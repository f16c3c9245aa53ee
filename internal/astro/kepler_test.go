package astro

import (
	"math"
	"testing"
)

func TestSolveKepler_CircularOrbit(t *testing.T) {
	for _, M := range []float64{0, 0.5, 1.0, math.Pi / 2, math.Pi, 4.0, 2*math.Pi - 0.1} {
		got := SolveKepler(M, 0)
		if math.Abs(got-M) > 1e-12 {
			t.Errorf("SolveKepler(%v, 0) = %v, want %v", M, got, M)
		}
	}
}

func TestSolveKepler_SatisfiesEquation(t *testing.T) {
	tests := []struct {
		name string
		e    float64
	}{
		{"Venus-like", 0.0068},
		{"Earth-like", 0.0167},
		{"Mercury-like", 0.2056},
		{"Pluto-like", 0.2488},
		{"highly eccentric", 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for M := 0.0; M < 2*math.Pi; M += 0.37 {
				E, iters := solveKepler(M, tt.e)
				residual := E - tt.e*math.Sin(E) - M
				if math.Abs(residual) > 1e-10 {
					t.Errorf("M=%.2f: residual %.3e, want < 1e-10", M, residual)
				}
				if iters >= KeplerMaxIterations {
					t.Errorf("M=%.2f: hit iteration cap", M)
				}
			}
		})
	}
}

func TestSolveKepler_IterationCap(t *testing.T) {
	// e = 1 at M = 0 makes the derivative vanish; the estimate never settles,
	// so the loop must stop at the cap instead of spinning.
	_, iters := solveKepler(0, 1)
	if iters != KeplerMaxIterations {
		t.Errorf("iterations = %d, want %d", iters, KeplerMaxIterations)
	}
}

func TestTrueAnomaly(t *testing.T) {
	// Circular orbit: true anomaly equals eccentric anomaly
	if got := trueAnomaly(1.2, 0); math.Abs(got-1.2) > 1e-12 {
		t.Errorf("trueAnomaly(1.2, 0) = %v, want 1.2", got)
	}
	// At perihelion and aphelion all three anomalies coincide
	if got := trueAnomaly(0, 0.2); math.Abs(got) > 1e-12 {
		t.Errorf("trueAnomaly(0, 0.2) = %v, want 0", got)
	}
	if got := trueAnomaly(math.Pi, 0.2); math.Abs(math.Abs(got)-math.Pi) > 1e-12 {
		t.Errorf("trueAnomaly(pi, 0.2) = %v, want ±pi", got)
	}
	// Past perihelion the body runs ahead of its mean position
	if got := trueAnomaly(1.0, 0.2); got <= 1.0 {
		t.Errorf("trueAnomaly(1.0, 0.2) = %v, want > 1.0", got)
	}
}
