package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
)

// BurnBehavior rolls an application chance per hit and, on success,
// hands a timed burn to the target's status subsystem
// The projectile never ticks burn damage itself
type BurnBehavior struct {
	behaviorBase

	chance   float64
	damage   float64 // per tick
	duration float64

	canExplode      bool
	explosionDamage float64
	explosionRadius float64
}

// NewBurn creates the behavior; chance is rolled on every hit
func NewBurn(chance, damage, duration float64) *BurnBehavior {
	return &BurnBehavior{
		chance:   chance,
		damage:   damage,
		duration: duration,
	}
}

// WithSecondaryExplosion arms the applied burns to blast when their
// carrier dies
func (b *BurnBehavior) WithSecondaryExplosion(damage, radius float64) *BurnBehavior {
	b.canExplode = true
	b.explosionDamage = damage
	b.explosionRadius = radius
	return b
}

func (b *BurnBehavior) Kind() Kind { return KindBurn }

// Status returns the burn instance this behavior applies
func (b *BurnBehavior) Status() BurnStatus {
	return BurnStatus{
		DamagePerTick:   b.damage,
		TickInterval:    parameter.BurnDefaultTickSec,
		Duration:        b.duration,
		CanExplode:      b.canExplode,
		ExplosionDamage: b.explosionDamage,
		ExplosionRadius: b.explosionRadius,
	}
}

func (b *BurnBehavior) OnHit(p *Projectile, target Target, w World) {
	if !w.Rand().Chance(b.chance) {
		return
	}
	sr, ok := target.(StatusReceiver)
	if !ok {
		// Target has no status subsystem; skip, never fail
		return
	}
	sr.ApplyBurn(b.Status())

	tx, ty := target.Position()
	w.Status().Ints.Get("burn.ignited").Add(1)
	w.Events().Emit(event.EventBurnIgnited, &event.BurnPayload{
		TargetID: target.ID(),
		X:        tx,
		Y:        ty,
	})
}

// Scaled returns a copy of the status with damage and duration reduced
// to the given potency
func (s BurnStatus) Scaled(potency float64) BurnStatus {
	out := s
	out.DamagePerTick *= potency
	out.Duration *= potency
	return out
}
