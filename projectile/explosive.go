package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// ExplosiveBehavior detonates an area blast on contact, on collision
// death, or both. A debounce window stops a contact blast and a death
// blast from stacking inside one tick
type ExplosiveBehavior struct {
	behaviorBase

	radius     float64
	damageMult float64

	onContact bool
	// onTimeout opts the death blast into lifetime and range expiry;
	// by default only collision deaths detonate
	onTimeout bool

	// lastTrigger is simulation time of the previous blast; negative
	// means never fired
	lastTrigger float64
}

// NewExplosive creates the behavior with a blast radius and a damage
// multiplier over the projectile's current damage
func NewExplosive(radius, damageMult float64, onContact, onTimeout bool) *ExplosiveBehavior {
	return &ExplosiveBehavior{
		radius:      radius,
		damageMult:  damageMult,
		onContact:   onContact,
		onTimeout:   onTimeout,
		lastTrigger: -parameter.ExplosionDebounceSec,
	}
}

func (b *ExplosiveBehavior) Kind() Kind { return KindExplosive }

// OnHit detonates at the contact point when the contact variant is on
func (b *ExplosiveBehavior) OnHit(p *Projectile, _ Target, w World) {
	if b.onContact {
		b.detonate(p, w, p.X, p.Y)
	}
}

// OnDestroy detonates the terminal blast for collision deaths, and for
// expiry deaths when configured
func (b *ExplosiveBehavior) OnDestroy(p *Projectile, w World, ctx DestroyContext) {
	switch ctx.Cause {
	case event.CauseCollision:
	case event.CauseLifetime, event.CauseRange:
		if !b.onTimeout {
			return
		}
	default:
		return
	}
	b.detonate(p, w, ctx.X, ctx.Y)
}

// detonate applies linear-falloff damage to every live target inside the
// radius. Damage is floor-clamped at the edge; targets beyond the radius
// are untouched. A burn carried by the projectile lands on every victim
// at reduced potency with secondary ignition off
func (b *ExplosiveBehavior) detonate(p *Projectile, w World, x, y float64) {
	now := w.Now()
	if now-b.lastTrigger < parameter.ExplosionDebounceSec {
		return
	}
	b.lastTrigger = now

	base := p.Damage * b.damageMult

	var carry BurnStatus
	hasCarry := false
	if burn, ok := carriedBurn(p); ok {
		carry = burn.Scaled(parameter.ExplosionBurnCarryPotency)
		carry.CanExplode = false
		hasCarry = true
	}

	hits := 0
	w.EachTarget(func(t Target) bool {
		if !t.Alive() {
			return true
		}
		tx, ty := t.Position()
		dist := vmath.Dist(x, y, tx, ty)
		if dist > b.radius {
			return true
		}

		falloff := 1.0
		if b.radius > 0 {
			falloff = 1 - dist/b.radius
		}
		if falloff < parameter.ExplosionFalloffFloor {
			falloff = parameter.ExplosionFalloffFloor
		}

		if d, ok := t.(Damageable); ok {
			d.ApplyDamage(base*falloff, false)
		}
		if hasCarry {
			if sr, ok := t.(StatusReceiver); ok {
				sr.ApplyBurn(carry)
			}
		}
		hits++
		return true
	})

	w.Status().Ints.Get("explosion.triggered").Add(1)
	w.Events().Emit(event.EventExplosion, &event.ExplosionPayload{
		X: x, Y: y,
		Radius: b.radius,
		Damage: base,
		Hits:   hits,
	})
}
