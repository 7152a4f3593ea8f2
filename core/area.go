package core

// Area represents a rectangular world region
type Area struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Contains reports whether the point lies inside the area
func (a Area) Contains(x, y float64) bool {
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// Outside reports whether the point is past the area edge by more than margin
// Used for projectile culling: a margin keeps effects alive just off the edge
func (a Area) Outside(x, y, margin float64) bool {
	return x < a.X-margin || x >= a.X+a.Width+margin ||
		y < a.Y-margin || y >= a.Y+a.Height+margin
}

// Center returns the midpoint of the area
func (a Area) Center() (float64, float64) {
	return a.X + a.Width/2, a.Y + a.Height/2
}
