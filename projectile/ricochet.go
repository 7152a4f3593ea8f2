package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// RicochetBehavior redirects the projectile to a fresh target on hit
// instead of dying, preserving speed and decaying damage per bounce
type RicochetBehavior struct {
	behaviorBase

	bounces       int // budget
	used          int
	searchRange   float64
	damageFalloff float64
}

// NewRicochet creates the behavior with a bounce budget, search range,
// and per-bounce damage multiplier
func NewRicochet(bounces int, searchRange, damageFalloff float64) *RicochetBehavior {
	if bounces < 0 {
		bounces = 0
	}
	return &RicochetBehavior{
		bounces:       bounces,
		searchRange:   searchRange,
		damageFalloff: damageFalloff,
	}
}

func (b *RicochetBehavior) Kind() Kind { return KindRicochet }

// Remaining returns unused bounces
func (b *RicochetBehavior) Remaining() int { return b.bounces - b.used }

// PreventsDeath attempts a bounce: find the nearest live, unhit target in
// range and redirect toward it at unchanged speed. Failure (budget spent
// or nobody in range) falls through to piercing
func (b *RicochetBehavior) PreventsDeath(p *Projectile, _ Target, w World) bool {
	if b.used >= b.bounces {
		return false
	}

	next := b.findBounceTarget(p, w)
	if next == nil {
		return false
	}

	speed := p.Speed()
	tx, ty := next.Position()
	dirX, dirY := vmath.Normalize2D(tx-p.X, ty-p.Y)
	p.VelX = dirX * speed
	p.VelY = dirY * speed

	p.Damage *= b.damageFalloff
	b.used++

	w.Status().Ints.Get("ricochet.bounced").Add(1)
	w.Events().Emit(event.EventRicochetBounce, &event.BouncePayload{
		ProjectileID: p.ID(),
		X:            p.X,
		Y:            p.Y,
		TargetID:     next.ID(),
		Remaining:    b.Remaining(),
	})
	return true
}

// findBounceTarget selects the nearest live target in range that the
// projectile has not yet hit. Distance ties keep the first candidate in
// scan order, so results are deterministic for a fixed world
func (b *RicochetBehavior) findBounceTarget(p *Projectile, w World) Target {
	var best Target
	bestDistSq := -1.0

	w.TargetsNear(p.X, p.Y, b.searchRange, func(t Target) bool {
		if !t.Alive() || p.AlreadyHit(t.ID()) {
			return true
		}
		tx, ty := t.Position()
		distSq := vmath.DistSq(p.X, p.Y, tx, ty)
		if bestDistSq < 0 || distSq < bestDistSq {
			bestDistSq = distSq
			best = t
		}
		return true
	})

	return best
}
