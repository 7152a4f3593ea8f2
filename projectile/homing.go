package projectile

import (
	"math"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// HomingBehavior steers the projectile toward the nearest live target
// Steering rotates velocity under a turn-rate clamp; speed is never
// altered. Target lock refreshes on a fixed retarget interval
type HomingBehavior struct {
	behaviorBase

	turnRate     float64 // radians per second
	acquireRange float64

	retargetTimer float64
	targetID      core.Entity
}

// NewHoming creates the behavior with a per-second turn-rate limit and
// an acquisition range
func NewHoming(turnRate, acquireRange float64) *HomingBehavior {
	return &HomingBehavior{
		turnRate:     turnRate,
		acquireRange: acquireRange,
		// Pre-elapsed so the first update acquires immediately
		retargetTimer: parameter.HomingRetargetSec,
	}
}

func (b *HomingBehavior) Kind() Kind { return KindHoming }

// TargetID returns the current lock, 0 when none
func (b *HomingBehavior) TargetID() core.Entity { return b.targetID }

func (b *HomingBehavior) Update(p *Projectile, w World, dt float64) {
	b.retargetTimer += dt
	if b.retargetTimer >= parameter.HomingRetargetSec {
		b.retargetTimer = 0
		b.acquire(p, w)
	}

	if b.targetID == core.NoEntity {
		return
	}
	target, ok := w.TargetByID(b.targetID)
	if !ok || !target.Alive() {
		b.targetID = core.NoEntity // Clear stale lock
		return
	}

	speed := p.Speed()
	if speed == 0 {
		return
	}

	tx, ty := target.Position()
	bearing := math.Atan2(ty-p.Y, tx-p.X)
	heading := math.Atan2(p.VelY, p.VelX)

	delta := vmath.AngleDelta(heading, bearing)
	maxTurn := b.turnRate * dt
	delta = vmath.Clamp(delta, -maxTurn, maxTurn)

	p.VelX, p.VelY = vmath.RotateVector(p.VelX, p.VelY, delta)
}

// acquire locks the nearest live target within range, or clears the lock
func (b *HomingBehavior) acquire(p *Projectile, w World) {
	var best Target
	bestDistSq := -1.0

	w.TargetsNear(p.X, p.Y, b.acquireRange, func(t Target) bool {
		if !t.Alive() {
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

	if best != nil {
		b.targetID = best.ID()
	} else {
		b.targetID = core.NoEntity
	}
}
