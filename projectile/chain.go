package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// ChainBehavior propagates damage through nearby targets on hit
// The budget counts total targets including the initial hit: a budget of
// 2 means one extra jump after the first target
type ChainBehavior struct {
	behaviorBase

	maxTargets  int // total budget, initial hit included
	used        int
	searchRange float64
	damageMult  float64

	chained map[core.Entity]struct{}
}

// NewChain creates the behavior with a total-target budget, per-hop
// search range, and hop damage multiplier
func NewChain(maxTargets int, searchRange, damageMult float64) *ChainBehavior {
	if maxTargets < 0 {
		maxTargets = 0
	}
	return &ChainBehavior{
		maxTargets:  maxTargets,
		searchRange: searchRange,
		damageMult:  damageMult,
		chained:     make(map[core.Entity]struct{}, 8),
	}
}

func (b *ChainBehavior) Kind() Kind { return KindChain }

// ChainedCount returns the number of targets the chain has touched
func (b *ChainBehavior) ChainedCount() int { return len(b.chained) }

// OnHit starts the greedy nearest-neighbor walk from the struck target
// Each hop deals falloff-free chain damage, optionally carries the
// projectile's burn, and advances the source to the new target. A hard
// iteration cap bounds the walk independent of the budget
func (b *ChainBehavior) OnHit(p *Projectile, target Target, w World) {
	if b.used >= b.maxTargets {
		return
	}
	id := target.ID()
	if _, ok := b.chained[id]; ok {
		return
	}

	// The initial hit consumes one unit of budget
	b.chained[id] = struct{}{}
	b.used++

	hopDamage := p.Damage * b.damageMult
	burn, hasBurn := carriedBurn(p)

	srcX, srcY := target.Position()
	hop := 0
	iterations := 0

	for b.used < b.maxTargets && iterations < parameter.ChainIterationCap {
		iterations++

		next := b.findHopTarget(srcX, srcY, w)
		if next == nil {
			break
		}

		b.chained[next.ID()] = struct{}{}
		b.used++
		hop++

		if d, ok := next.(Damageable); ok {
			d.ApplyDamage(hopDamage, false)
		}
		if hasBurn {
			if sr, ok := next.(StatusReceiver); ok {
				sr.ApplyBurn(burn)
			}
		}

		nx, ny := next.Position()
		w.Events().Emit(event.EventChainArc, &event.ChainArcPayload{
			FromX: srcX, FromY: srcY,
			ToX: nx, ToY: ny,
			Hop: hop,
		})
		srcX, srcY = nx, ny
	}

	if hop > 0 {
		w.Status().Ints.Get("chain.arcs").Add(int64(hop))
		w.Status().Floats.Get("chain.longest").Max(float64(b.used))
	}
}

// findHopTarget returns the nearest live, not-yet-chained target within
// range of the current chain source; ties keep the first in scan order
func (b *ChainBehavior) findHopTarget(srcX, srcY float64, w World) Target {
	var best Target
	bestDistSq := -1.0

	w.TargetsNear(srcX, srcY, b.searchRange, func(t Target) bool {
		if !t.Alive() {
			return true
		}
		if _, ok := b.chained[t.ID()]; ok {
			return true
		}
		tx, ty := t.Position()
		distSq := vmath.DistSq(srcX, srcY, tx, ty)
		if bestDistSq < 0 || distSq < bestDistSq {
			bestDistSq = distSq
			best = t
		}
		return true
	})

	return best
}

// carriedBurn returns the full-potency burn status when the projectile
// has an enabled burn behavior
func carriedBurn(p *Projectile) (BurnStatus, bool) {
	bb := p.Manager().Get(KindBurn)
	if bb == nil || !bb.Enabled() {
		return BurnStatus{}, false
	}
	burn, ok := bb.(*BurnBehavior)
	if !ok {
		return BurnStatus{}, false
	}
	return burn.Status(), true
}
