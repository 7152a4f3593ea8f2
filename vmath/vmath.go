package vmath

import "math"

const (
	// Tau is a full turn in radians
	Tau = 2 * math.Pi
)

// --- Scalars ---

// Abs returns absolute value
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp interpolates linearly from a to b; t outside [0,1] extrapolates
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Sanitizing ---

// Sanitize replaces NaN and ±Inf with fallback
// Gameplay inputs cross this before entering the simulation
func Sanitize(x, fallback float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fallback
	}
	return x
}

// SanitizeNonNeg replaces non-finite values with fallback and floors at zero
func SanitizeNonNeg(x, fallback float64) float64 {
	x = Sanitize(x, fallback)
	if x < 0 {
		return 0
	}
	return x
}

// IsFinite reports whether x is a usable number
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// --- Angles ---

// WrapAngle normalizes an angle to (-π, π]
func WrapAngle(a float64) float64 {
	a = math.Mod(a, Tau)
	if a > math.Pi {
		a -= Tau
	} else if a <= -math.Pi {
		a += Tau
	}
	return a
}

// AngleDelta returns the signed shortest rotation from angle a to angle b,
// normalized to (-π, π]
func AngleDelta(a, b float64) float64 {
	return WrapAngle(b - a)
}
