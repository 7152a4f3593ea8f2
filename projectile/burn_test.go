package projectile

import (
	"math"
	"testing"

	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
)

func TestBurnAppliesOnSuccessRoll(t *testing.T) {
	w := newStubWorld()
	tgt := w.addTarget(1, 0, 0)

	p := testProjectile(w.reg, Config{Damage: 10})

	b := NewBurn(1.0, 4, 3)
	b.OnHit(p, tgt, w)

	if len(tgt.burns) != 1 {
		t.Fatalf("Expected 1 burn applied, got %d", len(tgt.burns))
	}
	burn := tgt.burns[0]
	if burn.DamagePerTick != 4 || burn.Duration != 3 {
		t.Errorf("Expected burn (4, 3), got (%.1f, %.1f)", burn.DamagePerTick, burn.Duration)
	}
	if burn.TickInterval != parameter.BurnDefaultTickSec {
		t.Errorf("Expected default tick interval, got %.2f", burn.TickInterval)
	}

	if got := w.reg.Ints.Get("burn.ignited").Load(); got != 1 {
		t.Errorf("Expected 1 ignition stat, got %d", got)
	}
	for _, ev := range w.queue.Consume() {
		if ev.Type == event.EventBurnIgnited {
			payload := ev.Payload.(*event.BurnPayload)
			if payload.TargetID != tgt.ID() {
				t.Errorf("Expected ignition on target %d, got %d", tgt.ID(), payload.TargetID)
			}
		}
	}
}

func TestBurnZeroChanceNeverApplies(t *testing.T) {
	w := newStubWorld()
	tgt := w.addTarget(1, 0, 0)

	p := testProjectile(w.reg, Config{Damage: 10})

	b := NewBurn(0, 4, 3)
	for i := 0; i < 10; i++ {
		b.OnHit(p, tgt, w)
	}

	if len(tgt.burns) != 0 {
		t.Errorf("Expected no burns at zero chance, got %d", len(tgt.burns))
	}
}

// The chance is rolled per hit, so a guaranteed burn lands on every target
func TestBurnRollsPerHit(t *testing.T) {
	w := newStubWorld()
	first := w.addTarget(1, 0, 0)
	second := w.addTarget(2, 10, 0)

	p := testProjectile(w.reg, Config{Damage: 10})

	b := NewBurn(1.0, 4, 3)
	b.OnHit(p, first, w)
	b.OnHit(p, second, w)

	if len(first.burns) != 1 || len(second.burns) != 1 {
		t.Errorf("Expected a burn on each target, got %d and %d", len(first.burns), len(second.burns))
	}
}

func TestBurnSkipsTargetWithoutStatus(t *testing.T) {
	w := newStubWorld()
	bare := &bareTarget{id: 1, alive: true}
	w.targets = append(w.targets, bare)

	p := testProjectile(w.reg, Config{Damage: 10})

	b := NewBurn(1.0, 4, 3)
	b.OnHit(p, bare, w)

	if w.reg.Ints.Has("burn.ignited") {
		t.Errorf("Expected no ignition on a target without status support")
	}
}

func TestBurnSecondaryExplosionArming(t *testing.T) {
	b := NewBurn(0.5, 4, 3).WithSecondaryExplosion(40, 15)

	s := b.Status()
	if !s.CanExplode {
		t.Fatalf("Expected secondary ignition armed")
	}
	if s.ExplosionDamage != 40 || s.ExplosionRadius != 15 {
		t.Errorf("Expected blast (40, 15), got (%.1f, %.1f)", s.ExplosionDamage, s.ExplosionRadius)
	}
}

func TestBurnStatusScaled(t *testing.T) {
	s := BurnStatus{
		DamagePerTick: 8,
		TickInterval:  0.5,
		Duration:      3,
		CanExplode:    true,
	}

	scaled := s.Scaled(0.5)
	if math.Abs(scaled.DamagePerTick-4) > 1e-9 {
		t.Errorf("Expected tick damage 4, got %.2f", scaled.DamagePerTick)
	}
	if math.Abs(scaled.Duration-1.5) > 1e-9 {
		t.Errorf("Expected duration 1.5, got %.2f", scaled.Duration)
	}
	if scaled.TickInterval != 0.5 {
		t.Errorf("Expected tick interval preserved, got %.2f", scaled.TickInterval)
	}
	if !scaled.CanExplode {
		t.Errorf("Expected explosion flag preserved by scaling")
	}
}
