package event

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
)

// DestroyCause identifies why a projectile left play
type DestroyCause int

const (
	CauseCollision DestroyCause = iota
	CauseLifetime
	CauseRange
	CauseOffscreen
	CauseShutdown
)

// SpawnPayload contains the initial state of a fired projectile
type SpawnPayload struct {
	ID   core.Entity
	X, Y float64
	Crit bool
}

// DestroyPayload contains the final state of a destroyed projectile
type DestroyPayload struct {
	ID    core.Entity
	X, Y  float64
	Cause DestroyCause
}

// ImpactPayload captures a projectile-target hit
// High frequency; acquired from and released to the impact pool
type ImpactPayload struct {
	ProjectileID core.Entity
	TargetID     core.Entity
	X, Y         float64
	Damage       float64
	Crit         bool
	Killed       bool
}

// ExplosionPayload contains blast parameters for effects
type ExplosionPayload struct {
	X, Y   float64
	Radius float64
	Damage float64
	Hits   int
}

// BouncePayload describes a ricochet redirection
type BouncePayload struct {
	ProjectileID core.Entity
	X, Y         float64
	TargetID     core.Entity
	Remaining    int
}

// ChainArcPayload describes one lightning hop for the renderer
type ChainArcPayload struct {
	FromX, FromY float64
	ToX, ToY     float64
	Hop          int
}

// BurnPayload signals an ignition on a target
type BurnPayload struct {
	TargetID core.Entity
	X, Y     float64
}

// KillPayload signals a target death
type KillPayload struct {
	TargetID core.Entity
	X, Y     float64
	ByOwner  bool
}

// HazardPayload describes a spawned area-control zone
type HazardPayload struct {
	X, Y     float64
	Radius   float64
	Duration float64
}

// DrainPayload carries healing paid to the projectile owner
type DrainPayload struct {
	Amount float64
}
