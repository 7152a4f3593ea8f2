package arena

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// TargetSpec configures a spawned target; zero fields take defaults
type TargetSpec struct {
	X, Y       float64
	VelX, VelY float64
	Radius     float64
	HP         float64
}

// Target is a damageable arena entity. It satisfies the projectile
// layer's target contract plus the damage and status capabilities
type Target struct {
	core.Kinetic

	id     core.Entity
	radius float64

	hp    float64
	maxHP float64
	alive bool

	arena *Arena
}

func (t *Target) ID() core.Entity { return t.id }

func (t *Target) Position() (float64, float64) { return t.X, t.Y }

func (t *Target) Alive() bool { return t.alive }

// Radius is the collision radius used by the sweep
func (t *Target) Radius() float64 { return t.radius }

// HPFraction returns remaining health in [0, 1] for rendering
func (t *Target) HPFraction() float64 {
	if t.maxHP <= 0 {
		return 0
	}
	return vmath.Clamp(t.hp/t.maxHP, 0, 1)
}

// ApplyDamage reduces health and returns the damage actually dealt,
// clamped to the health remaining. The kill event fires at most once
func (t *Target) ApplyDamage(amount float64, crit bool) float64 {
	if !t.alive || amount <= 0 {
		return 0
	}

	dealt := amount
	if dealt > t.hp {
		dealt = t.hp
	}
	t.hp -= dealt
	t.arena.recordDamage(dealt, crit)

	if t.hp <= 0 {
		t.alive = false
		t.arena.recordKill(t)
	}
	return dealt
}

// ApplyBurn hands the burn to the arena's status store
func (t *Target) ApplyBurn(b projectile.BurnStatus) {
	t.arena.burns.Apply(t.id, b)
}

// recordDamage and recordKill live on Arena so target bookkeeping and
// telemetry stay in one place

func (a *Arena) recordDamage(amount float64, crit bool) {
	a.statDamage.Add(amount)
	if crit {
		a.statCritDamage.Add(amount)
	}
}

func (a *Arena) recordKill(t *Target) {
	a.liveCount--
	a.statKills.Add(1)
	a.queue.Emit(event.EventTargetKilled, &event.KillPayload{
		TargetID: t.id,
		X:        t.X,
		Y:        t.Y,
		ByOwner:  !a.inTick,
	})
}

func defaultTargetSpec(spec TargetSpec) TargetSpec {
	if spec.Radius <= 0 {
		spec.Radius = parameter.TargetDefaultRadius
	}
	if spec.HP <= 0 {
		spec.HP = parameter.TargetDefaultHP
	}
	return spec
}
