package arena

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
)

// Hazard is a lingering ground zone that damages targets inside it on a
// fixed cadence until its duration runs out
type Hazard struct {
	X, Y   float64
	Radius float64

	damagePerSec float64
	remaining    float64
	tickTimer    float64
}

func newHazard(spec projectile.HazardSpec) *Hazard {
	if spec.Radius <= 0 {
		spec.Radius = parameter.HazardDefaultRadius
	}
	if spec.DamagePerSec <= 0 {
		spec.DamagePerSec = parameter.HazardDefaultDPS
	}
	if spec.Duration <= 0 {
		spec.Duration = parameter.HazardDefaultDurationSec
	}
	return &Hazard{
		X:            spec.X,
		Y:            spec.Y,
		Radius:       spec.Radius,
		damagePerSec: spec.DamagePerSec,
		remaining:    spec.Duration,
	}
}

// Remaining returns the zone's time left, for rendering fade-out
func (h *Hazard) Remaining() float64 { return h.remaining }

func (h *Hazard) expired() bool { return h.remaining <= 0 }

// tick burns down the duration and applies a damage pulse each time the
// cadence elapses. Damage per pulse is rate times cadence, so total
// damage is independent of the tick length
func (h *Hazard) tick(a *Arena, dt float64) {
	h.remaining -= dt
	h.tickTimer += dt
	for h.tickTimer >= parameter.HazardTickSec {
		h.tickTimer -= parameter.HazardTickSec
		h.pulse(a)
	}
}

func (h *Hazard) pulse(a *Arena) {
	damage := h.damagePerSec * parameter.HazardTickSec
	a.TargetsNear(h.X, h.Y, h.Radius, func(t projectile.Target) bool {
		if !t.Alive() {
			return true
		}
		if d, ok := t.(projectile.Damageable); ok {
			d.ApplyDamage(damage, false)
		}
		return true
	})
}
