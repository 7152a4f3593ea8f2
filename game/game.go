// Package game couples the arena and the projectile layer into one
// cooperative fixed-tick driver: arena tick, projectile flight,
// collision sweep, pool recycling, in that order every frame
package game

import (
	"sync/atomic"

	"github.com/mcjdh/galactic-ring-cannon-sub002/arena"
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
)

// Config assembles a game. Zero values take defaults; a nil registry
// gets a private one
type Config struct {
	Bounds   core.Area
	PoolSize int
	Seed     uint64
	Owner    arena.OwnerSpec
	// Registry is shared with the shell for HUD readouts
	Registry *status.Registry
}

// Game owns the simulation halves and runs them in lockstep
type Game struct {
	arena   *arena.Arena
	pool    *projectile.Pool
	factory *projectile.Factory
	owner   *arena.Owner

	// snapshot is reused across ticks so the sweep never iterates a
	// collection the pool mutates; renderBuf keeps draw iteration off
	// the sweep buffer
	snapshot  []*projectile.Projectile
	renderBuf []*projectile.Projectile

	statTicks *atomic.Int64
}

func New(cfg Config) *Game {
	if cfg.PoolSize <= 0 {
		cfg.PoolSize = parameter.PoolDefaultCapacity
	}
	reg := cfg.Registry
	if reg == nil {
		reg = status.NewRegistry()
	}

	// One id source across both layers keeps entity ids unique
	ids := core.NewIDSource()
	a := arena.New(cfg.Bounds, ids, cfg.Seed, reg)
	pool := projectile.NewPool(cfg.PoolSize, ids, reg)

	return &Game{
		arena:     a,
		pool:      pool,
		factory:   projectile.NewFactory(pool, a),
		owner:     a.AddOwner(cfg.Owner),
		snapshot:  make([]*projectile.Projectile, 0, cfg.PoolSize),
		renderBuf: make([]*projectile.Projectile, 0, cfg.PoolSize),
		statTicks: reg.Ints.Get("game.ticks"),
	}
}

// Fire launches a projectile owned by the game's firing agent
func (g *Game) Fire(req projectile.FireRequest) *projectile.Projectile {
	return g.factory.Fire(req, g.owner.ID())
}

// Update advances the whole simulation by dt seconds
func (g *Game) Update(dt float64) {
	if dt <= 0 {
		return
	}
	g.statTicks.Add(1)

	g.arena.Update(dt)

	g.snapshot = g.pool.ActiveSnapshot(g.snapshot)
	for _, p := range g.snapshot {
		if p.Alive() {
			p.Update(g.arena, dt)
		}
	}

	bounds := g.arena.Bounds()
	for _, p := range g.snapshot {
		if !p.Alive() {
			continue
		}
		g.collide(p)
		if p.Alive() && p.IsOffScreen(bounds) {
			p.Destroy(g.arena, projectile.DestroyContext{
				Cause: event.CauseOffscreen,
				X:     p.X,
				Y:     p.Y,
			})
		}
	}

	for _, p := range g.snapshot {
		if !p.Alive() {
			g.pool.Release(p)
		}
	}
}

// collide hands the first overlapping fresh target to the projectile.
// The candidate is alive going in, so a dead target coming out means
// this impact was lethal and feeds the owner's kill streak; chain and
// blast casualties do not
func (g *Game) collide(p *projectile.Projectile) {
	tgt := g.arena.FirstOverlap(p.X, p.Y, p.Radius, p.AlreadyHit)
	if tgt == nil {
		return
	}
	p.HandleCollision(tgt, g.arena)
	if !tgt.Alive() {
		g.arena.CreditKill(p.OwnerID())
	}
}

// Shutdown destroys every projectile still in flight and recycles it.
// Shutdown deaths trigger no behavior effects
func (g *Game) Shutdown() {
	g.snapshot = g.pool.ActiveSnapshot(g.snapshot)
	for _, p := range g.snapshot {
		if p.Alive() {
			p.Destroy(g.arena, projectile.DestroyContext{
				Cause: event.CauseShutdown,
				X:     p.X,
				Y:     p.Y,
			})
		}
		g.pool.Release(p)
	}
}

// EachProjectile visits in-flight projectiles in active order, for
// rendering
func (g *Game) EachProjectile(fn func(*projectile.Projectile) bool) {
	g.renderBuf = g.pool.ActiveSnapshot(g.renderBuf)
	for _, p := range g.renderBuf {
		if !fn(p) {
			return
		}
	}
}

// --- Accessors ---

func (g *Game) Arena() *arena.Arena      { return g.arena }
func (g *Game) Owner() *arena.Owner      { return g.owner }
func (g *Game) Pool() *projectile.Pool   { return g.pool }
func (g *Game) Events() *event.Queue     { return g.arena.Events() }
func (g *Game) Status() *status.Registry { return g.arena.Status() }
