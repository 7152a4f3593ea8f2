package projectile

import (
	"sync/atomic"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
)

// Factory turns firing requests into ready projectiles: normalize the
// request, acquire from the pool, compute the life-drain rate, and
// attach behaviors by rolling their configured chances
//
// Dependencies are explicit; the factory reaches for no globals
type Factory struct {
	pool  *Pool
	world World

	statFired *atomic.Int64
	statCrit  *atomic.Int64
}

// NewFactory wires the factory to its pool and world collaborator
func NewFactory(pool *Pool, w World) *Factory {
	f := &Factory{
		pool:  pool,
		world: w,
	}
	if w != nil {
		f.statFired = w.Status().Ints.Get("factory.fired")
		f.statCrit = w.Status().Ints.Get("factory.crit")
	}
	return f
}

// Fire creates a projectile for the request, owned by the given agent
// Never fails: malformed numerics are sanitized and a missing owner just
// skips the streak bonus
func (f *Factory) Fire(req FireRequest, owner core.Entity) *Projectile {
	cfg := Normalize(req)
	cfg.LifeDrainRate = f.drainRate(cfg, owner)

	p := f.pool.Acquire(req.X, req.Y, cfg, owner)
	f.attachFromConfig(p, cfg)

	if f.statFired != nil {
		f.statFired.Add(1)
		if cfg.Crit {
			f.statCrit.Add(1)
		}
	}
	f.world.Events().Emit(event.EventProjectileSpawned, &event.SpawnPayload{
		ID: p.ID(), X: p.X, Y: p.Y, Crit: p.Crit,
	})
	return p
}

// drainRate sums the base rate, the owner's kill-streak bonus, and the
// crit multiplier. Computed once at fire time so later damage changes
// from ricochet or explosive never double-count into healing
func (f *Factory) drainRate(cfg Config, owner core.Entity) float64 {
	rate := cfg.LifeDrainRate

	if o, ok := f.world.Owner(owner); ok {
		bonus := float64(o.KillStreak()) * parameter.DrainStreakBonusPerKill
		if bonus > parameter.DrainStreakBonusCap {
			bonus = parameter.DrainStreakBonusCap
		}
		rate += bonus
	}

	if cfg.Crit {
		rate *= parameter.DrainCritMultiplier
	}
	return rate
}

// attachFromConfig rolls each effect chance independently and attaches
// winners in a fixed order. Every attach passes through the manager's
// duplicate check, so recycled slots can never double-attach
func (f *Factory) attachFromConfig(p *Projectile, cfg Config) {
	mgr := p.Manager()
	rand := f.world.Rand()

	if cfg.PiercingCharges > 0 {
		if mgr.Attach(NewPiercing(cfg.PiercingCharges)) {
			p.PierceCharges = cfg.PiercingCharges
		}
	}

	if cfg.MaxChains > 0 && rand.Chance(cfg.ChainChance) {
		mgr.Attach(NewChain(cfg.MaxChains, cfg.ChainRange, cfg.ChainDamageMult))
	}

	if cfg.ExplosionRadius > 0 && rand.Chance(cfg.ExplosiveChance) {
		mgr.Attach(NewExplosive(cfg.ExplosionRadius, cfg.ExplosionDamageMult, cfg.ExplodeOnContact, cfg.ExplodeOnTimeout))
	}

	if cfg.RicochetBounces > 0 && rand.Chance(cfg.RicochetChance) {
		mgr.Attach(NewRicochet(cfg.RicochetBounces, cfg.RicochetRange, cfg.RicochetDamageMult))
	}

	if rand.Chance(cfg.HomingChance) {
		mgr.Attach(NewHoming(cfg.HomingTurnRate, cfg.HomingRange))
	}

	if cfg.BurnChance > 0 {
		// The burn chance is rolled per hit, not at attach time
		burn := NewBurn(cfg.BurnChance, cfg.BurnDamage, cfg.BurnDuration)
		if cfg.BurnCanExplode {
			burn.WithSecondaryExplosion(cfg.BurnExplosionDamage, cfg.BurnExplosionRadius)
		}
		mgr.Attach(burn)
	}
}
