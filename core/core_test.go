package core

import (
	"math"
	"testing"
)

func TestIDSourceSequential(t *testing.T) {
	src := NewIDSource()
	for want := Entity(1); want <= 5; want++ {
		got := src.Next()
		if got != want {
			t.Errorf("Expected id %d, got %d", want, got)
		}
	}
}

func TestIDSourceNeverZero(t *testing.T) {
	src := NewIDSource()
	if src.Next() == NoEntity {
		t.Errorf("Expected first id to be nonzero")
	}
}

func TestKineticAdvance(t *testing.T) {
	tests := []struct {
		name  string
		k     Kinetic
		dt    float64
		wantX float64
		wantY float64
	}{
		{"At rest", Kinetic{X: 5, Y: 5}, 1.0, 5, 5},
		{"Straight right", Kinetic{VelX: 10}, 0.5, 5, 0},
		{"Diagonal", Kinetic{X: 1, Y: 2, VelX: 2, VelY: -4}, 0.25, 1.5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := tt.k
			k.Advance(tt.dt)
			if math.Abs(k.X-tt.wantX) > 1e-9 || math.Abs(k.Y-tt.wantY) > 1e-9 {
				t.Errorf("Expected position (%v, %v), got (%v, %v)", tt.wantX, tt.wantY, k.X, k.Y)
			}
		})
	}
}

func TestKineticSpeed(t *testing.T) {
	k := Kinetic{VelX: 3, VelY: 4}
	if got := k.Speed(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected speed 5, got %v", got)
	}
}

func TestAreaOutside(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 100, Height: 50}
	tests := []struct {
		name   string
		x, y   float64
		margin float64
		want   bool
	}{
		{"Center inside", 50, 25, 0, false},
		{"Just past right edge", 100, 25, 0, true},
		{"Past right edge within margin", 104, 25, 5, false},
		{"Past right edge beyond margin", 106, 25, 5, true},
		{"Above top beyond margin", 50, -6, 5, true},
		{"Negative inside margin", -3, 25, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Outside(tt.x, tt.y, tt.margin)
			if got != tt.want {
				t.Errorf("Expected Outside(%v, %v, %v) to be %v, got %v", tt.x, tt.y, tt.margin, tt.want, got)
			}
		})
	}
}
