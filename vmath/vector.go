package vmath

import "math"

// Normalize2D returns the unit vector, zero-safe
func Normalize2D(x, y float64) (nx, ny float64) {
	mag := math.Hypot(x, y)
	if mag == 0 {
		return 0, 0
	}
	inv := 1.0 / mag
	return x * inv, y * inv
}

// Magnitude returns Euclidean vector length
func Magnitude(x, y float64) float64 {
	return math.Hypot(x, y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y float64) float64 {
	return x*x + y*y
}

// DistSq returns squared distance between two points
func DistSq(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Dist returns Euclidean distance between two points
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func ClampMagnitude(x, y, maxMag float64) (cx, cy float64) {
	magSq := x*x + y*y
	if magSq <= maxMag*maxMag || magSq == 0 {
		return x, y
	}
	scale := maxMag / math.Sqrt(magSq)
	return x * scale, y * scale
}

// ScaleToLength rescales vector to the given length, zero-safe
func ScaleToLength(x, y, length float64) (sx, sy float64) {
	nx, ny := Normalize2D(x, y)
	return nx * length, ny * length
}

// RotateVector rotates vector by angle in radians, counter-clockwise
func RotateVector(x, y, angle float64) (rx, ry float64) {
	sin, cos := math.Sincos(angle)
	rx = x*cos - y*sin
	ry = x*sin + y*cos
	return rx, ry
}

// DotProduct returns x1*x2 + y1*y2
func DotProduct(x1, y1, x2, y2 float64) float64 {
	return x1*x2 + y1*y2
}

// Heading returns the angle of the vector in radians, 0 along +X
func Heading(x, y float64) float64 {
	return math.Atan2(y, x)
}
