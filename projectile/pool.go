package projectile

import (
	"sync/atomic"

	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
)

// Pool recycles projectile instances to keep the firing path free of
// per-frame allocation
//
// Slots are constructed once up front. Acquire pops the free list when it
// can; when exhausted it constructs an unmanaged overflow instance that
// is never pushed back and dies to the garbage collector. Membership is
// exclusive: free list XOR active set XOR unmanaged
//
// The active set is an ordered slice with an id index and swap-remove,
// so update sweeps iterate in a deterministic order
type Pool struct {
	free []*Projectile

	activeList  []*Projectile
	activeIndex map[core.Entity]int

	ids *core.IDSource
	reg *status.Registry

	capacity int

	statReused   *atomic.Int64
	statOverflow *atomic.Int64
	statReleased *atomic.Int64
}

// NewPool pre-constructs capacity slots into the free list
func NewPool(capacity int, ids *core.IDSource, reg *status.Registry) *Pool {
	if capacity < 1 {
		capacity = 1
	}
	if ids == nil {
		ids = core.NewIDSource()
	}

	p := &Pool{
		free:        make([]*Projectile, 0, capacity),
		activeList:  make([]*Projectile, 0, capacity),
		activeIndex: make(map[core.Entity]int, capacity),
		ids:         ids,
		reg:         reg,
		capacity:    capacity,
	}
	for i := 0; i < capacity; i++ {
		inst := newProjectile(NewManager(reg))
		inst.pooled = true
		inst.inFree = true
		p.free = append(p.free, inst)
	}

	if reg != nil {
		p.statReused = reg.Ints.Get("pool.reused")
		p.statOverflow = reg.Ints.Get("pool.overflow")
		p.statReleased = reg.Ints.Get("pool.released")
	}

	return p
}

// Acquire returns a reset instance at the given position, configured and
// owned. Pool slots are recycled; overflow constructs fresh
func (p *Pool) Acquire(x, y float64, cfg Config, owner core.Entity) *Projectile {
	var inst *Projectile
	if n := len(p.free); n > 0 {
		inst = p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		inst.inFree = false
		if p.statReused != nil {
			p.statReused.Add(1)
		}
	} else {
		inst = newProjectile(NewManager(p.reg))
		if p.statOverflow != nil {
			p.statOverflow.Add(1)
		}
	}

	id := p.ids.Next()
	inst.Reset(id, x, y, cfg, owner)

	p.activeIndex[id] = len(p.activeList)
	p.activeList = append(p.activeList, inst)
	return inst
}

// Release returns an instance to the free list
// Double release is a silent no-op. Overflow instances are removed from
// the active set but never pushed back
func (p *Pool) Release(inst *Projectile) {
	if inst == nil || inst.inFree {
		return
	}

	inst.dead = true
	p.removeActive(inst.id)

	if !inst.pooled {
		return
	}

	inst.inFree = true
	p.free = append(p.free, inst)
	if p.statReleased != nil {
		p.statReleased.Add(1)
	}
}

// removeActive swap-removes the id from the ordered active set
func (p *Pool) removeActive(id core.Entity) {
	idx, ok := p.activeIndex[id]
	if !ok {
		return
	}
	last := len(p.activeList) - 1
	if idx != last {
		moved := p.activeList[last]
		p.activeList[idx] = moved
		p.activeIndex[moved.id] = idx
	}
	p.activeList[last] = nil
	p.activeList = p.activeList[:last]
	delete(p.activeIndex, id)
}

// ActiveCount returns the number of in-flight projectiles
func (p *Pool) ActiveCount() int { return len(p.activeList) }

// FreeCount returns the number of idle pool slots
func (p *Pool) FreeCount() int { return len(p.free) }

// Capacity returns the fixed free-list size
func (p *Pool) Capacity() int { return p.capacity }

// ActiveSnapshot appends the active set to buf in order and returns it
// The driver iterates the snapshot so releases during the sweep never
// mutate a collection mid-iteration
func (p *Pool) ActiveSnapshot(buf []*Projectile) []*Projectile {
	buf = buf[:0]
	return append(buf, p.activeList...)
}

// Get returns the active instance by id
func (p *Pool) Get(id core.Entity) (*Projectile, bool) {
	idx, ok := p.activeIndex[id]
	if !ok {
		return nil, false
	}
	return p.activeList[idx], true
}
