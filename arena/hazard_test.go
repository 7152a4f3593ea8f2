package arena

import (
	"testing"

	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
)

func TestHazardPulseCadence(t *testing.T) {
	a := testArena()
	tgt := a.AddTarget(TargetSpec{X: 52, Y: 50, HP: 100})
	a.SpawnHazard(projectile.HazardSpec{X: 50, Y: 50, Radius: 10, DamagePerSec: 8, Duration: 2.5})

	a.Update(0.25) // One pulse: 8 * 0.25 damage
	if tgt.hp != 98 {
		t.Errorf("Expected 98 HP after first pulse, got %v", tgt.hp)
	}
	a.Update(0.125) // Between pulses
	if tgt.hp != 98 {
		t.Errorf("Expected no damage between pulses, got %v", tgt.hp)
	}
	a.Update(0.125) // Second pulse
	if tgt.hp != 96 {
		t.Errorf("Expected 96 HP after second pulse, got %v", tgt.hp)
	}
	if a.HazardCount() != 1 {
		t.Errorf("Expected hazard still active, got %d", a.HazardCount())
	}
}

func TestHazardExpiry(t *testing.T) {
	a := testArena()
	tgt := a.AddTarget(TargetSpec{X: 52, Y: 50, HP: 100})
	a.SpawnHazard(projectile.HazardSpec{X: 50, Y: 50, Radius: 10, DamagePerSec: 8, Duration: 0.5})

	a.Update(0.25)
	a.Update(0.25) // Final pulse lands on the expiry tick
	if tgt.hp != 96 {
		t.Errorf("Expected 96 HP from two pulses, got %v", tgt.hp)
	}
	if a.HazardCount() != 0 {
		t.Errorf("Expected hazard expired, got %d", a.HazardCount())
	}
	a.Update(0.25)
	if tgt.hp != 96 {
		t.Errorf("Expected no damage after expiry, got %v", tgt.hp)
	}
}

func TestHazardSpecDefaults(t *testing.T) {
	a := testArena()
	a.SpawnHazard(projectile.HazardSpec{X: 10, Y: 10})

	var got *Hazard
	a.EachHazard(func(h *Hazard) bool {
		got = h
		return true
	})
	if got == nil {
		t.Fatal("Expected a spawned hazard")
	}
	if got.Radius != parameter.HazardDefaultRadius {
		t.Errorf("Expected default radius %v, got %v", parameter.HazardDefaultRadius, got.Radius)
	}
	if got.Remaining() != parameter.HazardDefaultDurationSec {
		t.Errorf("Expected default duration %v, got %v", parameter.HazardDefaultDurationSec, got.Remaining())
	}
	if got.damagePerSec != parameter.HazardDefaultDPS {
		t.Errorf("Expected default rate %v, got %v", parameter.HazardDefaultDPS, got.damagePerSec)
	}
}

func TestHazardRangeFilter(t *testing.T) {
	a := testArena()
	inside := a.AddTarget(TargetSpec{X: 53, Y: 50, HP: 100})
	edge := a.AddTarget(TargetSpec{X: 55, Y: 50, HP: 100}) // Distance exactly the radius
	outside := a.AddTarget(TargetSpec{X: 60, Y: 50, HP: 100})
	a.SpawnHazard(projectile.HazardSpec{X: 50, Y: 50, Radius: 5, DamagePerSec: 8, Duration: 2})

	a.Update(0.25)

	if inside.hp != 98 {
		t.Errorf("Expected inside target damaged, got HP %v", inside.hp)
	}
	if edge.hp != 98 {
		t.Errorf("Expected boundary target damaged, got HP %v", edge.hp)
	}
	if outside.hp != 100 {
		t.Errorf("Expected outside target untouched, got HP %v", outside.hp)
	}
}
