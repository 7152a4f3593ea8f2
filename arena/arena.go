// Package arena owns the target-side simulation: the entities
// projectiles collide with, their spatial index, timed status effects,
// and lingering hazard zones. It implements the world interface the
// projectile layer is written against
package arena

import (
	"sync/atomic"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// Arena is the single-threaded simulation container
//
// Targets live in a slice for stable iteration order plus an id index
// for O(1) lookup. The grid is a coarse snapshot rebuilt at the end of
// every tick; queries combine it with an exact distance check against
// current positions
type Arena struct {
	bounds core.Area

	targets     []*Target
	targetIndex map[core.Entity]*Target
	owners      map[core.Entity]*Owner

	grid    *Grid
	burns   *BurnStore
	hazards []*Hazard

	queue *event.Queue
	rand  *vmath.FastRand
	reg   *status.Registry
	ids   *core.IDSource

	now       float64
	liveCount int
	// inTick marks the burn/hazard phase so kills there are not
	// attributed to the owner
	inTick bool
	// maxTargetRadius widens overlap probes; never shrinks, which only
	// costs a few extra candidates
	maxTargetRadius float64

	statKills         *atomic.Int64
	statLive          *atomic.Int64
	statHazardsActive *atomic.Int64
	statBurnTicks     *atomic.Int64
	statBurnExpired   *atomic.Int64
	statBurnBlasts    *atomic.Int64
	statDamage        *status.AtomicFloat
	statCritDamage    *status.AtomicFloat
	statBestStreak    *status.AtomicFloat
}

// New creates an arena over the given rectangle. A nil id source or
// registry is replaced with a fresh one; sharing the id source with the
// projectile pool keeps entity ids unique across both layers
func New(bounds core.Area, ids *core.IDSource, seed uint64, reg *status.Registry) *Arena {
	if ids == nil {
		ids = core.NewIDSource()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}

	a := &Arena{
		bounds:      bounds,
		targetIndex: make(map[core.Entity]*Target, 64),
		owners:      make(map[core.Entity]*Owner, 4),
		grid:        NewGrid(bounds, parameter.GridCellSize),
		burns:       newBurnStore(),
		queue:       event.NewQueue(),
		rand:        vmath.NewFastRand(seed),
		reg:         reg,
		ids:         ids,
	}

	a.statKills = reg.Ints.Get("arena.kills")
	a.statLive = reg.Ints.Get("arena.targets_live")
	a.statHazardsActive = reg.Ints.Get("arena.hazards_active")
	a.statBurnTicks = reg.Ints.Get("burn.ticks")
	a.statBurnExpired = reg.Ints.Get("burn.expired")
	a.statBurnBlasts = reg.Ints.Get("burn.blasts")
	a.statDamage = reg.Floats.Get("arena.damage_dealt")
	a.statCritDamage = reg.Floats.Get("arena.crit_damage")
	a.statBestStreak = reg.Floats.Get("owner.best_streak")
	return a
}

// --- Population ---

// AddTarget spawns a target and indexes it immediately, so spatial
// queries see it before the first tick
func (a *Arena) AddTarget(spec TargetSpec) *Target {
	spec = defaultTargetSpec(spec)
	t := &Target{
		Kinetic: core.Kinetic{X: spec.X, Y: spec.Y, VelX: spec.VelX, VelY: spec.VelY},
		id:      a.ids.Next(),
		radius:  spec.Radius,
		hp:      spec.HP,
		maxHP:   spec.HP,
		alive:   true,
		arena:   a,
	}
	a.targets = append(a.targets, t)
	a.targetIndex[t.id] = t
	a.grid.Insert(t.id, t.X, t.Y)
	a.liveCount++
	if t.radius > a.maxTargetRadius {
		a.maxTargetRadius = t.radius
	}
	return t
}

// AddOwner registers a firing agent
func (a *Arena) AddOwner(spec OwnerSpec) *Owner {
	spec = defaultOwnerSpec(spec)
	o := &Owner{
		id:             a.ids.Next(),
		x:              spec.X,
		y:              spec.Y,
		hp:             spec.HP,
		maxHP:          spec.HP,
		scorchedGround: spec.ScorchedGround,
	}
	a.owners[o.id] = o
	return o
}

// CreditKill extends the owner's kill streak. The shell calls this when
// a projectile impact killed its target; burn and hazard kills never
// feed the streak
func (a *Arena) CreditKill(owner core.Entity) {
	o, ok := a.owners[owner]
	if !ok {
		return
	}
	o.killStreak++
	a.statBestStreak.Max(float64(o.killStreak))
}

// --- Tick ---

// Update advances one simulation tick. Status effects run before
// dead-target compaction so corpses from the last collision pass can
// still anchor their secondary blasts; movement and the grid rebuild
// come last so queries in the following collision pass see fresh
// positions
func (a *Arena) Update(dt float64) {
	if dt <= 0 {
		return
	}
	a.now += dt

	a.inTick = true
	a.burns.Tick(a, dt)
	a.tickHazards(dt)
	// Hazard pulses and other blasts can kill a carrier the burn pass
	// already kept this phase; its armed blast must fire before
	// compaction forgets the corpse
	a.burns.flushDead(a)
	a.inTick = false

	a.compactDead()
	a.moveTargets(dt)
	a.rebuildGrid()

	a.statLive.Store(int64(a.liveCount))
	a.statHazardsActive.Store(int64(len(a.hazards)))
}

func (a *Arena) tickHazards(dt float64) {
	if len(a.hazards) == 0 {
		return
	}
	kept := a.hazards[:0]
	for _, h := range a.hazards {
		h.tick(a, dt)
		if h.expired() {
			continue
		}
		kept = append(kept, h)
	}
	for i := len(kept); i < len(a.hazards); i++ {
		a.hazards[i] = nil
	}
	a.hazards = kept
}

// compactDead drops dead targets while preserving the order of the
// survivors, keeping every iteration deterministic
func (a *Arena) compactDead() {
	kept := a.targets[:0]
	for _, t := range a.targets {
		if t.alive {
			kept = append(kept, t)
			continue
		}
		delete(a.targetIndex, t.id)
	}
	for i := len(kept); i < len(a.targets); i++ {
		a.targets[i] = nil
	}
	a.targets = kept
}

// moveTargets integrates positions and reflects off the arena walls
func (a *Arena) moveTargets(dt float64) {
	minX := a.bounds.X
	minY := a.bounds.Y
	maxX := a.bounds.X + a.bounds.Width
	maxY := a.bounds.Y + a.bounds.Height

	for _, t := range a.targets {
		t.Advance(dt)

		if t.X < minX+t.radius {
			t.X = minX + t.radius
			if t.VelX < 0 {
				t.VelX = -t.VelX
			}
		} else if t.X > maxX-t.radius {
			t.X = maxX - t.radius
			if t.VelX > 0 {
				t.VelX = -t.VelX
			}
		}
		if t.Y < minY+t.radius {
			t.Y = minY + t.radius
			if t.VelY < 0 {
				t.VelY = -t.VelY
			}
		} else if t.Y > maxY-t.radius {
			t.Y = maxY - t.radius
			if t.VelY > 0 {
				t.VelY = -t.VelY
			}
		}
	}
}

func (a *Arena) rebuildGrid() {
	a.grid.Clear()
	for _, t := range a.targets {
		a.grid.Insert(t.id, t.X, t.Y)
	}
}

// --- World interface ---

// EachTarget visits live targets in spawn order
func (a *Arena) EachTarget(fn func(projectile.Target) bool) {
	for _, t := range a.targets {
		if !t.alive {
			continue
		}
		if !fn(t) {
			return
		}
	}
}

// TargetsNear visits live targets within radius of (x, y). The grid
// provides candidates in row-major cell order; the exact distance check
// runs against current positions, so stale grid entries are harmless
func (a *Arena) TargetsNear(x, y, radius float64, fn func(projectile.Target) bool) {
	rSq := radius * radius
	a.grid.QueryCircle(x, y, radius, func(id core.Entity) bool {
		t, ok := a.targetIndex[id]
		if !ok || !t.alive {
			return true
		}
		if vmath.DistSq(x, y, t.X, t.Y) > rSq {
			return true
		}
		return fn(t)
	})
}

// FirstOverlap returns the first live target whose disc overlaps the
// probe disc, in grid query order, skipping ids the caller rejects.
// Nil when nothing overlaps
func (a *Arena) FirstOverlap(x, y, radius float64, skip func(core.Entity) bool) *Target {
	var found *Target
	a.grid.QueryCircle(x, y, radius+a.maxTargetRadius, func(id core.Entity) bool {
		t, ok := a.targetIndex[id]
		if !ok || !t.alive {
			return true
		}
		if skip != nil && skip(t.id) {
			return true
		}
		reach := radius + t.radius
		if vmath.DistSq(x, y, t.X, t.Y) > reach*reach {
			return true
		}
		found = t
		return false
	})
	return found
}

// TargetByID resolves a still-live target
func (a *Arena) TargetByID(id core.Entity) (projectile.Target, bool) {
	t, ok := a.targetIndex[id]
	if !ok || !t.alive {
		return nil, false
	}
	return t, true
}

// targetRaw resolves a target even after death, for corpse-anchored
// effects before compaction removes it
func (a *Arena) targetRaw(id core.Entity) (*Target, bool) {
	t, ok := a.targetIndex[id]
	return t, ok
}

// Owner resolves a firing agent
func (a *Arena) Owner(id core.Entity) (projectile.OwnerState, bool) {
	o, ok := a.owners[id]
	if !ok {
		return nil, false
	}
	return o, true
}

// SpawnHazard adds a lingering zone; zero fields take defaults
func (a *Arena) SpawnHazard(spec projectile.HazardSpec) {
	a.hazards = append(a.hazards, newHazard(spec))
}

func (a *Arena) Events() *event.Queue     { return a.queue }
func (a *Arena) Rand() *vmath.FastRand    { return a.rand }
func (a *Arena) Status() *status.Registry { return a.reg }
func (a *Arena) Now() float64             { return a.now }

// --- Observation ---

func (a *Arena) Bounds() core.Area { return a.bounds }

// TargetCount returns the number of live targets
func (a *Arena) TargetCount() int { return a.liveCount }

// HazardCount returns the number of active hazard zones
func (a *Arena) HazardCount() int { return len(a.hazards) }

// IsBurning reports whether the target carries an active burn, for
// render tinting
func (a *Arena) IsBurning(id core.Entity) bool { return a.burns.Burning(id) }

// EachLiveTarget visits live targets with their concrete type, for
// rendering
func (a *Arena) EachLiveTarget(fn func(*Target) bool) {
	for _, t := range a.targets {
		if !t.alive {
			continue
		}
		if !fn(t) {
			return
		}
	}
}

// EachHazard visits active hazard zones
func (a *Arena) EachHazard(fn func(*Hazard) bool) {
	for _, h := range a.hazards {
		if !fn(h) {
			return
		}
	}
}
