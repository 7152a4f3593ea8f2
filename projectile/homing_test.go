package projectile

import (
	"math"
	"testing"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
)

func TestHomingTurnRateClamp(t *testing.T) {
	w := newStubWorld()
	w.addTarget(1, 0, 100) // 90 degrees off the current heading

	p := testProjectile(w.reg, Config{VelX: 60})

	b := NewHoming(1.0, 250)
	b.Update(p, w, 0.1)

	heading := math.Atan2(p.VelY, p.VelX)
	if math.Abs(heading-0.1) > 1e-9 {
		t.Errorf("Expected turn clamped to 0.1 rad, got %.4f", heading)
	}
	if math.Abs(p.Speed()-60) > 1e-9 {
		t.Errorf("Expected speed preserved at 60, got %.2f", p.Speed())
	}
}

func TestHomingSnapsWithinTurnBudget(t *testing.T) {
	w := newStubWorld()
	w.addTarget(1, 0, 100)

	p := testProjectile(w.reg, Config{VelX: 60})

	// Generous turn budget: one update reaches the bearing exactly
	b := NewHoming(100, 250)
	b.Update(p, w, 0.1)

	if math.Abs(p.VelX) > 1e-9 || math.Abs(p.VelY-60) > 1e-9 {
		t.Errorf("Expected velocity (0, 60) on the bearing, got (%.2f, %.2f)", p.VelX, p.VelY)
	}
}

func TestHomingAcquiresNearest(t *testing.T) {
	w := newStubWorld()
	w.addTarget(1, 0, 50)
	near := w.addTarget(2, 0, 20)

	p := testProjectile(w.reg, Config{VelX: 60})

	b := NewHoming(3.5, 250)
	b.Update(p, w, 0.1)

	if b.TargetID() != near.ID() {
		t.Errorf("Expected lock on nearest target %d, got %d", near.ID(), b.TargetID())
	}
}

func TestHomingClearsStaleLock(t *testing.T) {
	w := newStubWorld()
	tgt := w.addTarget(1, 100, 0) // Dead ahead: steering is a no-op

	p := testProjectile(w.reg, Config{VelX: 60})

	b := NewHoming(3.5, 250)
	b.Update(p, w, 0.1)
	if b.TargetID() != tgt.ID() {
		t.Fatalf("Expected initial lock, got %d", b.TargetID())
	}

	// Target dies between retarget windows: the lock clears without steering
	tgt.alive = false
	b.Update(p, w, 0.05)

	if b.TargetID() != core.NoEntity {
		t.Errorf("Expected stale lock cleared, got %d", b.TargetID())
	}
	if math.Abs(p.VelX-60) > 1e-9 || math.Abs(p.VelY) > 1e-9 {
		t.Errorf("Expected velocity unchanged, got (%.2f, %.2f)", p.VelX, p.VelY)
	}
}

func TestHomingRespectsAcquireRange(t *testing.T) {
	w := newStubWorld()
	w.addTarget(1, 0, 1000)

	p := testProjectile(w.reg, Config{VelX: 60})

	b := NewHoming(3.5, 250)
	b.Update(p, w, 0.1)

	if b.TargetID() != core.NoEntity {
		t.Errorf("Expected no lock beyond range, got %d", b.TargetID())
	}
	if math.Abs(p.VelX-60) > 1e-9 || math.Abs(p.VelY) > 1e-9 {
		t.Errorf("Expected velocity unchanged, got (%.2f, %.2f)", p.VelX, p.VelY)
	}
}

func TestHomingZeroSpeedNoSteer(t *testing.T) {
	w := newStubWorld()
	w.addTarget(1, 0, 50)

	p := testProjectile(w.reg, Config{})

	b := NewHoming(3.5, 250)
	b.Update(p, w, 0.1)

	if p.VelX != 0 || p.VelY != 0 {
		t.Errorf("Expected stationary projectile untouched, got (%.2f, %.2f)", p.VelX, p.VelY)
	}
}
