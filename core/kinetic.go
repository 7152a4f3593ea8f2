package core

import "math"

// Kinetic holds continuous-space position and velocity
type Kinetic struct {
	// X and Y are world coordinates in cells
	X, Y float64
	// VelX and VelY are velocity in cells per second
	VelX, VelY float64
}

// Speed returns the current velocity magnitude
func (k Kinetic) Speed() float64 {
	return math.Hypot(k.VelX, k.VelY)
}

// Advance integrates position by dt seconds
func (k *Kinetic) Advance(dt float64) {
	k.X += k.VelX * dt
	k.Y += k.VelY * dt
}
