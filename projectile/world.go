package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// Target is the minimal view of anything a projectile can touch
type Target interface {
	ID() core.Entity
	Position() (x, y float64)
	Alive() bool
}

// Damageable is the capability to receive projectile damage
// ApplyDamage returns the damage actually dealt after the target's own
// modifiers; life drain scales by this value, never by a flat fraction
type Damageable interface {
	ApplyDamage(amount float64, crit bool) float64
}

// StatusReceiver is the capability to carry timed status effects
// Burn ticking belongs to the target's status subsystem, not to the projectile
type StatusReceiver interface {
	ApplyBurn(b BurnStatus)
}

// BurnStatus is a timed burn instance handed to a target's status subsystem
type BurnStatus struct {
	DamagePerTick float64
	TickInterval  float64
	Duration      float64

	// CanExplode marks the burn for a secondary blast when the carrier dies
	// Copies carried by an explosion have this forced off to stop loops
	CanExplode      bool
	ExplosionDamage float64
	ExplosionRadius float64
}

// HazardSpec describes an area-control zone spawned on projectile destruction
type HazardSpec struct {
	X, Y         float64
	Radius       float64
	DamagePerSec float64
	Duration     float64
}

// OwnerState is the firing agent as seen by the factory and life drain
type OwnerState interface {
	ID() core.Entity
	Position() (x, y float64)
	Heal(amount float64)
	KillStreak() int
	HasScorchedGround() bool
}

// World is the simulation collaborator threaded through every projectile
// operation. It is the resource hub: target queries plus the shared event
// queue, RNG, and telemetry registry
type World interface {
	// EachTarget visits every live target; return false to stop early
	EachTarget(fn func(Target) bool)
	// TargetsNear visits live targets within radius of (x, y) in a
	// deterministic scan order; return false to stop early
	TargetsNear(x, y, radius float64, fn func(Target) bool)
	// TargetByID resolves a still-live target by id
	TargetByID(id core.Entity) (Target, bool)
	// Owner resolves the firing agent for drain payouts and ability gates
	Owner(id core.Entity) (OwnerState, bool)
	// SpawnHazard adds an area-control zone to the simulation
	SpawnHazard(spec HazardSpec)

	Events() *event.Queue
	Rand() *vmath.FastRand
	Status() *status.Registry
	// Now is simulation time in seconds since start
	Now() float64
}

// DestroyContext tells behaviors why and where a projectile died
type DestroyContext struct {
	Cause event.DestroyCause
	// Target is the collision partner; nil for non-collision causes
	Target Target
	// X, Y anchor death-triggered effects (blast center, hazard zone)
	X, Y float64
}
