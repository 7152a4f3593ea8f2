package projectile

import (
	"math"
	"testing"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
)

func TestDeriveLifetime(t *testing.T) {
	tests := []struct {
		name   string
		travel float64
		speed  float64
		want   float64
	}{
		{"nominal", 800, 180, 800.0 / 180.0},
		{"short travel clamps to minimum", 100, 100, 2.0},
		{"long travel clamps to maximum", 10000, 100, 8.0},
		{"stationary gets full window", 800, 0, 8.0},
		{"zero travel uses default", 0, 200, 4.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveLifetime(tt.travel, tt.speed)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected lifetime %.4f, got %.4f", tt.want, got)
			}
		})
	}
}

func TestLifetimeExpiryDestroys(t *testing.T) {
	w := newStubWorld()
	p := testProjectile(w.reg, Config{}) // Stationary: full 8s window

	p.Update(w, 8.0)

	if p.Alive() {
		t.Fatalf("Expected projectile destroyed at lifetime")
	}

	var causes []event.DestroyCause
	for _, ev := range w.queue.Consume() {
		if ev.Type == event.EventProjectileDestroyed {
			causes = append(causes, ev.Payload.(*event.DestroyPayload).Cause)
		}
	}
	if len(causes) != 1 || causes[0] != event.CauseLifetime {
		t.Errorf("Expected one lifetime destruction, got %v", causes)
	}
}

func TestRangeLimitDestroys(t *testing.T) {
	w := newStubWorld()
	p := testProjectile(w.reg, Config{VelX: 100, RangeLimit: 10})

	p.Update(w, 0.05)
	if !p.Alive() {
		t.Fatalf("Expected projectile alive at 5 traveled")
	}

	p.Update(w, 0.05)
	if p.Alive() {
		t.Fatalf("Expected projectile destroyed at range limit")
	}

	for _, ev := range w.queue.Consume() {
		if ev.Type == event.EventProjectileDestroyed {
			cause := ev.Payload.(*event.DestroyPayload).Cause
			if cause != event.CauseRange {
				t.Errorf("Expected range cause, got %d", cause)
			}
		}
	}
}

func TestUpdateAfterDestroyIsNoop(t *testing.T) {
	w := newStubWorld()
	p := testProjectile(w.reg, Config{VelX: 10})

	p.Destroy(w, DestroyContext{Cause: event.CauseShutdown, X: p.X, Y: p.Y})
	w.queue.Consume()

	x := p.X
	p.Update(w, 1.0)

	if p.X != x {
		t.Errorf("Expected no movement after destroy, got %.2f", p.X)
	}
	if w.queue.Len() != 0 {
		t.Errorf("Expected no events from dead update, got %d", w.queue.Len())
	}
}

func TestTrailRingOldestFirst(t *testing.T) {
	p := testProjectile(nil, Config{})

	// Overfill the ring: capacity is 5, push 7
	for i := 1; i <= 7; i++ {
		p.pushTrail(float64(i), 0)
	}

	if p.TrailLen() != parameter.ProjectileTrailCapacity {
		t.Fatalf("Expected trail length %d, got %d", parameter.ProjectileTrailCapacity, p.TrailLen())
	}

	var xs []float64
	p.EachTrailPoint(func(pt TrailPoint, index, count int) {
		if count != parameter.ProjectileTrailCapacity {
			t.Errorf("Expected count %d, got %d", parameter.ProjectileTrailCapacity, count)
		}
		if index != len(xs) {
			t.Errorf("Expected index %d, got %d", len(xs), index)
		}
		xs = append(xs, pt.X)
	})

	want := []float64{3, 4, 5, 6, 7}
	for i, x := range want {
		if xs[i] != x {
			t.Errorf("Expected trail point %d to be %.0f, got %.0f", i, x, xs[i])
			break
		}
	}
}

func TestDestroyIsIdempotent(t *testing.T) {
	w := newStubWorld()
	w.owner = &stubOwner{id: 9, scorched: true}

	p := newProjectile(NewManager(w.reg))
	p.pooled = true
	p.Reset(1, 3, 4, Config{}, 9)

	ctx := DestroyContext{Cause: event.CauseCollision, X: 3, Y: 4}
	p.Destroy(w, ctx)
	p.Destroy(w, ctx)

	if p.Alive() {
		t.Fatalf("Expected projectile dead")
	}
	if len(w.hazards) != 1 {
		t.Errorf("Expected exactly 1 hazard spawn, got %d", len(w.hazards))
	}
	if got := w.reg.Ints.Get("hazard.spawned").Load(); got != 1 {
		t.Errorf("Expected hazard stat 1, got %d", got)
	}

	destroys, hazards := 0, 0
	for _, ev := range w.queue.Consume() {
		switch ev.Type {
		case event.EventProjectileDestroyed:
			destroys++
		case event.EventHazardSpawned:
			hazards++
		}
	}
	if destroys != 1 {
		t.Errorf("Expected 1 destroy event, got %d", destroys)
	}
	if hazards != 1 {
		t.Errorf("Expected 1 hazard event, got %d", hazards)
	}
}

func TestScorchedGroundRequiresCollisionCause(t *testing.T) {
	w := newStubWorld()
	w.owner = &stubOwner{id: 9, scorched: true}

	p := newProjectile(NewManager(w.reg))
	p.pooled = true
	p.Reset(1, 0, 0, Config{}, 9)

	p.Destroy(w, DestroyContext{Cause: event.CauseLifetime, X: 0, Y: 0})

	if len(w.hazards) != 0 {
		t.Errorf("Expected no hazard on expiry death, got %d", len(w.hazards))
	}
}

func TestScorchedGroundRequiresAbility(t *testing.T) {
	w := newStubWorld()
	w.owner = &stubOwner{id: 9}

	p := newProjectile(NewManager(w.reg))
	p.pooled = true
	p.Reset(1, 0, 0, Config{}, 9)

	p.Destroy(w, DestroyContext{Cause: event.CauseCollision, X: 0, Y: 0})

	if len(w.hazards) != 0 {
		t.Errorf("Expected no hazard without the ability, got %d", len(w.hazards))
	}
}

func TestLifeDrainHealsOwner(t *testing.T) {
	w := newStubWorld()
	w.owner = &stubOwner{id: 9}
	tgt := w.addTarget(1, 0, 0)

	p := newProjectile(NewManager(w.reg))
	p.pooled = true
	p.Reset(1, 0, 0, Config{Damage: 50, LifeDrainRate: 0.1}, 9)

	p.HandleCollision(tgt, w)

	if math.Abs(w.owner.healed-5) > 1e-9 {
		t.Errorf("Expected 5 healed, got %.2f", w.owner.healed)
	}
	if got := w.reg.Floats.Get("drain.healed").Get(); math.Abs(got-5) > 1e-9 {
		t.Errorf("Expected drain stat 5, got %.2f", got)
	}

	drains, impacts := 0, 0
	for _, ev := range w.queue.Consume() {
		switch ev.Type {
		case event.EventLifeDrained:
			drains++
		case event.EventImpact:
			impacts++
		}
	}
	if drains != 1 {
		t.Errorf("Expected 1 drain event, got %d", drains)
	}
	if impacts != 1 {
		t.Errorf("Expected 1 impact event, got %d", impacts)
	}
}

func TestNoDrainWithoutOwner(t *testing.T) {
	w := newStubWorld()
	tgt := w.addTarget(1, 0, 0)

	p := testProjectile(w.reg, Config{Damage: 50, LifeDrainRate: 0.1})
	p.HandleCollision(tgt, w)

	for _, ev := range w.queue.Consume() {
		if ev.Type == event.EventLifeDrained {
			t.Errorf("Expected no drain event without a registered owner")
		}
	}
}

func TestImpactReportsKill(t *testing.T) {
	w := newStubWorld()
	tgt := w.addTarget(1, 0, 0)
	tgt.hp = 30

	p := testProjectile(w.reg, Config{Damage: 50})
	p.HandleCollision(tgt, w)

	if tgt.Alive() {
		t.Fatalf("Expected target killed")
	}
	for _, ev := range w.queue.Consume() {
		if ev.Type != event.EventImpact {
			continue
		}
		impact := ev.Payload.(*event.ImpactPayload)
		if !impact.Killed {
			t.Errorf("Expected impact to report the kill")
		}
		if impact.Damage != 50 {
			t.Errorf("Expected impact damage 50, got %.1f", impact.Damage)
		}
	}
}

func TestResetClearsFlightState(t *testing.T) {
	p := testProjectile(nil, Config{Damage: 77, Crit: true})
	p.MarkHit(3)
	p.Manager().Attach(NewPiercing(1))
	p.pushTrail(1, 1)
	p.dead = true

	p.Reset(2, 5, 5, Config{Damage: 10}, 0)

	if p.ID() != 2 {
		t.Errorf("Expected id 2, got %d", p.ID())
	}
	if !p.Alive() {
		t.Errorf("Expected reset to revive the slot")
	}
	if p.HitCount() != 0 {
		t.Errorf("Expected empty hit-set, got %d", p.HitCount())
	}
	if p.Manager().Len() != 0 {
		t.Errorf("Expected no behaviors, got %d", p.Manager().Len())
	}
	if p.TrailLen() != 0 {
		t.Errorf("Expected empty trail, got %d", p.TrailLen())
	}
	if p.Damage != 10 || p.Crit {
		t.Errorf("Expected fresh config applied, got damage=%.1f crit=%v", p.Damage, p.Crit)
	}
	if p.Age() != 0 {
		t.Errorf("Expected age 0, got %.2f", p.Age())
	}
}

func TestIsOffScreen(t *testing.T) {
	bounds := core.Area{X: 0, Y: 0, Width: 100, Height: 100}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 50, 50, false},
		{"inside margin right", 110, 50, false},
		{"past margin right", 141, 50, true},
		{"past margin left", -41, 50, true},
		{"past margin below", 50, 141, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testProjectile(nil, Config{})
			p.X, p.Y = tt.x, tt.y
			if got := p.IsOffScreen(bounds); got != tt.want {
				t.Errorf("Expected off-screen %v at (%.0f, %.0f), got %v", tt.want, tt.x, tt.y, got)
			}
		})
	}
}
