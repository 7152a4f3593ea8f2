package arena

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
)

// burnInstance is one active burn on one target
type burnInstance struct {
	status    projectile.BurnStatus
	remaining float64
	tickTimer float64
}

// BurnStore tracks active burns in application order
//
// One burn per target: a fresh application replaces the current one
// unless it is weaker per tick, in which case it is ignored. Ticking
// iterates in application order, so damage and expiry are
// deterministic for a fixed world
type BurnStore struct {
	byTarget map[core.Entity]*burnInstance
	order    []core.Entity
}

func newBurnStore() *BurnStore {
	return &BurnStore{
		byTarget: make(map[core.Entity]*burnInstance, 32),
	}
}

// Apply attaches or refreshes a burn on the target
func (s *BurnStore) Apply(id core.Entity, b projectile.BurnStatus) {
	if b.DamagePerTick <= 0 || b.Duration <= 0 {
		return
	}
	if inst, ok := s.byTarget[id]; ok {
		if b.DamagePerTick < inst.status.DamagePerTick {
			return
		}
		inst.status = b
		inst.remaining = b.Duration
		return
	}
	s.byTarget[id] = &burnInstance{status: b, remaining: b.Duration}
	s.order = append(s.order, id)
}

// Burning reports whether the target carries an active burn
func (s *BurnStore) Burning(id core.Entity) bool {
	_, ok := s.byTarget[id]
	return ok
}

// Count returns the number of active burns
func (s *BurnStore) Count() int { return len(s.order) }

// Tick advances every burn: damage on tick boundaries, expiry, and the
// secondary blast when an armed carrier dies. Dead carriers are dropped
// after their blast so a corpse never burns twice
func (s *BurnStore) Tick(a *Arena, dt float64) {
	if len(s.order) == 0 {
		return
	}

	kept := s.order[:0]
	for _, id := range s.order {
		inst := s.byTarget[id]

		tgt, ok := a.targetRaw(id)
		if !ok || !tgt.alive {
			if ok && inst.status.CanExplode {
				s.blast(a, tgt, inst.status)
			}
			delete(s.byTarget, id)
			continue
		}

		interval := inst.status.TickInterval
		if interval <= 0 {
			interval = parameter.BurnDefaultTickSec
		}
		inst.tickTimer += dt
		for inst.tickTimer >= interval && tgt.alive {
			inst.tickTimer -= interval
			tgt.ApplyDamage(inst.status.DamagePerTick, false)
			a.statBurnTicks.Add(1)
		}

		if !tgt.alive {
			if inst.status.CanExplode {
				s.blast(a, tgt, inst.status)
			}
			delete(s.byTarget, id)
			continue
		}

		inst.remaining -= dt
		if inst.remaining <= 0 {
			a.statBurnExpired.Add(1)
			delete(s.byTarget, id)
			continue
		}
		kept = append(kept, id)
	}

	// Nil out the dropped tail before truncating
	for i := len(kept); i < len(s.order); i++ {
		s.order[i] = 0
	}
	s.order = kept
}

// flushDead fires the pending blast of any armed carrier that died
// after Tick already passed it this phase, then drops the corpse's
// burn. Runs before dead-target compaction, while the corpse still
// anchors a position. A blast here can kill another armed carrier, so
// it sweeps again until nothing fires
func (s *BurnStore) flushDead(a *Arena) {
	for len(s.order) > 0 {
		fired := false
		kept := s.order[:0]
		for _, id := range s.order {
			inst := s.byTarget[id]
			tgt, ok := a.targetRaw(id)
			if ok && tgt.alive {
				kept = append(kept, id)
				continue
			}
			if ok && inst.status.CanExplode {
				s.blast(a, tgt, inst.status)
				fired = true
			}
			delete(s.byTarget, id)
		}
		for i := len(kept); i < len(s.order); i++ {
			s.order[i] = 0
		}
		s.order = kept
		if !fired {
			return
		}
	}
}

// blast is the secondary explosion of a dying armed carrier: flat
// damage inside the radius, no further burns, never recursive
func (s *BurnStore) blast(a *Arena, tgt *Target, b projectile.BurnStatus) {
	if b.ExplosionRadius <= 0 || b.ExplosionDamage <= 0 {
		return
	}

	hits := 0
	a.TargetsNear(tgt.X, tgt.Y, b.ExplosionRadius, func(t projectile.Target) bool {
		if !t.Alive() || t.ID() == tgt.id {
			return true
		}
		if d, ok := t.(projectile.Damageable); ok {
			d.ApplyDamage(b.ExplosionDamage, false)
			hits++
		}
		return true
	})

	a.statBurnBlasts.Add(1)
	a.queue.Emit(event.EventExplosion, &event.ExplosionPayload{
		X:      tgt.X,
		Y:      tgt.Y,
		Radius: b.ExplosionRadius,
		Damage: b.ExplosionDamage,
		Hits:   hits,
	})
}
