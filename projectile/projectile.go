package projectile

import (
	"math"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// TrailPoint is one recent position in the trail ring buffer
type TrailPoint struct {
	X, Y float64
}

// Surface is the read-only draw target of the render contract
// Render never mutates projectile state
type Surface interface {
	// DrawTrailPoint receives trail positions oldest-first; index runs
	// 0..count-1 so the renderer can fade older points
	DrawTrailPoint(x, y float64, index, count int)
	DrawProjectile(x, y, radius float64, crit bool)
}

// Projectile is a pooled simulation entity owning one behavior manager
//
// Ownership: an instance lives in the pool free list XOR the active set
// XOR unmanaged overflow, never two at once. All mutable state is
// overwritten by Reset on acquisition; nothing survives recycling
type Projectile struct {
	core.Kinetic

	Damage float64
	Radius float64
	Crit   bool

	// PierceCharges mirrors the piercing behavior's live counter for
	// external readers; the behavior is authoritative
	PierceCharges int

	id      core.Entity
	ownerID core.Entity

	age      float64
	lifetime float64

	// rangeLimit of 0 means unlimited; traveled accumulates per tick
	rangeLimit float64
	traveled   float64

	drainRate float64

	trail     [parameter.ProjectileTrailCapacity]TrailPoint
	trailHead int
	trailLen  int

	hit map[core.Entity]struct{}

	dead   bool
	pooled bool
	inFree bool

	mgr *Manager
}

// newProjectile constructs a blank instance; the pool calls this once per
// slot and for overflow. Reset must run before first use
func newProjectile(mgr *Manager) *Projectile {
	if mgr == nil {
		mgr = NewNoopManager()
	}
	return &Projectile{
		hit: make(map[core.Entity]struct{}, 8),
		mgr: mgr,
	}
}

// --- Accessors ---

func (p *Projectile) ID() core.Entity { return p.id }

func (p *Projectile) OwnerID() core.Entity { return p.ownerID }

func (p *Projectile) Manager() *Manager { return p.mgr }

func (p *Projectile) Alive() bool { return !p.dead }

func (p *Projectile) Age() float64 { return p.age }

func (p *Projectile) Lifetime() float64 { return p.lifetime }

func (p *Projectile) DrainRate() float64 { return p.drainRate }

// Pooled reports whether this instance belongs to a pool slot
// Overflow instances return false and are never pushed to the free list
func (p *Projectile) Pooled() bool { return p.pooled }

// AlreadyHit reports whether the target was hit during this flight
func (p *Projectile) AlreadyHit(id core.Entity) bool {
	_, ok := p.hit[id]
	return ok
}

// MarkHit records the target in the hit-set
func (p *Projectile) MarkHit(id core.Entity) {
	p.hit[id] = struct{}{}
}

// HitCount returns the number of distinct targets hit this flight
func (p *Projectile) HitCount() int { return len(p.hit) }

// --- Lifecycle ---

// Reset overwrites every mutable field for a new flight
// The hit-set, behaviors, and trail are cleared; nothing is inherited
// from the prior occupant of this slot
func (p *Projectile) Reset(id core.Entity, x, y float64, cfg Config, owner core.Entity) {
	p.id = id
	p.ownerID = owner

	p.X = vmath.Sanitize(x, 0)
	p.Y = vmath.Sanitize(y, 0)
	p.VelX = vmath.Sanitize(cfg.VelX, 0)
	p.VelY = vmath.Sanitize(cfg.VelY, 0)

	p.Damage = vmath.SanitizeNonNeg(cfg.Damage, 0)
	p.Radius = vmath.SanitizeNonNeg(cfg.Radius, parameter.ProjectileDefaultRadius)
	p.Crit = cfg.Crit
	p.PierceCharges = 0

	p.age = 0
	p.lifetime = deriveLifetime(cfg.TravelEstimate, p.Speed())
	p.rangeLimit = vmath.SanitizeNonNeg(cfg.RangeLimit, 0)
	p.traveled = 0
	p.drainRate = vmath.SanitizeNonNeg(cfg.LifeDrainRate, 0)

	p.trailHead = 0
	p.trailLen = 0

	clear(p.hit)

	p.dead = false

	if p.mgr == nil {
		p.mgr = NewNoopManager()
	}
	p.mgr.Clear()
}

// deriveLifetime converts a bounded travel estimate and speed into
// seconds, clamped to the configured window. Stationary projectiles get
// the full window
func deriveLifetime(travel, speed float64) float64 {
	travel = vmath.SanitizeNonNeg(travel, parameter.ProjectileDefaultTravel)
	if travel == 0 {
		travel = parameter.ProjectileDefaultTravel
	}
	if speed <= 0 {
		return parameter.ProjectileLifetimeMaxSec
	}
	return vmath.Clamp(travel/speed, parameter.ProjectileLifetimeMinSec, parameter.ProjectileLifetimeMaxSec)
}

// Update advances one tick: aging, integration, range accounting, trail,
// then per-frame behavior logic
func (p *Projectile) Update(w World, dt float64) {
	if p.dead {
		return
	}

	p.age += dt
	if p.age >= p.lifetime {
		p.Destroy(w, DestroyContext{Cause: event.CauseLifetime, X: p.X, Y: p.Y})
		return
	}

	prevX, prevY := p.X, p.Y
	p.Advance(dt)

	if p.rangeLimit > 0 {
		p.traveled += math.Hypot(p.X-prevX, p.Y-prevY)
		if p.traveled >= p.rangeLimit {
			p.Destroy(w, DestroyContext{Cause: event.CauseRange, X: p.X, Y: p.Y})
			return
		}
	}

	p.pushTrail(p.X, p.Y)

	p.mgr.Update(p, w, dt)
}

// HandleCollision resolves a contact with one target
// Life drain is an always-on effect applied here, scaled by the damage
// actually dealt, then the death verdict is enacted
func (p *Projectile) HandleCollision(target Target, w World) {
	if p.dead {
		return
	}

	die, dealt := p.mgr.HandleCollision(p, target, w)

	if dealt > 0 && p.drainRate > 0 {
		if owner, ok := w.Owner(p.ownerID); ok {
			heal := p.drainRate * dealt
			owner.Heal(heal)
			w.Status().Floats.Get("drain.healed").Add(heal)
			w.Events().Emit(event.EventLifeDrained, &event.DrainPayload{Amount: heal})
		}
	}

	if dealt > 0 {
		impact := event.AcquireImpact()
		impact.ProjectileID = p.id
		impact.TargetID = target.ID()
		impact.X, impact.Y = p.X, p.Y
		impact.Damage = dealt
		impact.Crit = p.Crit
		impact.Killed = !target.Alive()
		w.Events().Emit(event.EventImpact, impact)
	}

	if die {
		p.Destroy(w, DestroyContext{
			Cause:  event.CauseCollision,
			Target: target,
			X:      p.X,
			Y:      p.Y,
		})
	}
}

// Destroy ends the flight; idempotent, a second call is a no-op
// Behaviors are notified first, then the scorched-ground hazard spawn
// runs if the owner has the ability and the death came from a collision
func (p *Projectile) Destroy(w World, ctx DestroyContext) {
	if p.dead {
		return
	}
	p.dead = true

	p.mgr.OnDestroy(p, w, ctx)

	if ctx.Cause == event.CauseCollision {
		if owner, ok := w.Owner(p.ownerID); ok && owner.HasScorchedGround() {
			spec := HazardSpec{
				X:            ctx.X,
				Y:            ctx.Y,
				Radius:       parameter.HazardDefaultRadius,
				DamagePerSec: parameter.HazardDefaultDPS,
				Duration:     parameter.HazardDefaultDurationSec,
			}
			w.SpawnHazard(spec)
			w.Status().Ints.Get("hazard.spawned").Add(1)
			w.Events().Emit(event.EventHazardSpawned, &event.HazardPayload{
				X: spec.X, Y: spec.Y, Radius: spec.Radius, Duration: spec.Duration,
			})
		}
	}

	w.Events().Emit(event.EventProjectileDestroyed, &event.DestroyPayload{
		ID: p.id, X: p.X, Y: p.Y, Cause: ctx.Cause,
	})
}

// IsOffScreen reports whether the projectile is past the world bounds by
// more than the culling margin
func (p *Projectile) IsOffScreen(bounds core.Area) bool {
	return bounds.Outside(p.X, p.Y, parameter.ProjectileOffscreenMargin)
}

// --- Trail ---

func (p *Projectile) pushTrail(x, y float64) {
	p.trail[p.trailHead] = TrailPoint{X: x, Y: y}
	p.trailHead = (p.trailHead + 1) % parameter.ProjectileTrailCapacity
	if p.trailLen < parameter.ProjectileTrailCapacity {
		p.trailLen++
	}
}

// TrailLen returns the number of recorded trail points
func (p *Projectile) TrailLen() int { return p.trailLen }

// EachTrailPoint visits trail points oldest-first
func (p *Projectile) EachTrailPoint(fn func(pt TrailPoint, index, count int)) {
	for i := 0; i < p.trailLen; i++ {
		idx := (p.trailHead - p.trailLen + i + parameter.ProjectileTrailCapacity) % parameter.ProjectileTrailCapacity
		fn(p.trail[idx], i, p.trailLen)
	}
}

// Render draws the trail then the head onto the surface; read-only
func (p *Projectile) Render(s Surface) {
	p.EachTrailPoint(func(pt TrailPoint, index, count int) {
		s.DrawTrailPoint(pt.X, pt.Y, index, count)
	})
	s.DrawProjectile(p.X, p.Y, p.Radius, p.Crit)
}
