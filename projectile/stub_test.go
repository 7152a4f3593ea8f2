package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// stubTarget implements Target, Damageable, and StatusReceiver
type stubTarget struct {
	id    core.Entity
	x, y  float64
	alive bool
	hp    float64

	received []float64
	burns    []BurnStatus
}

func (t *stubTarget) ID() core.Entity              { return t.id }
func (t *stubTarget) Position() (float64, float64) { return t.x, t.y }
func (t *stubTarget) Alive() bool                  { return t.alive }

func (t *stubTarget) ApplyDamage(amount float64, _ bool) float64 {
	t.received = append(t.received, amount)
	t.hp -= amount
	if t.hp <= 0 {
		t.alive = false
	}
	return amount
}

func (t *stubTarget) ApplyBurn(b BurnStatus) {
	t.burns = append(t.burns, b)
}

func (t *stubTarget) totalDamage() float64 {
	sum := 0.0
	for _, d := range t.received {
		sum += d
	}
	return sum
}

// bareTarget implements only Target, for capability degradation tests
type bareTarget struct {
	id    core.Entity
	x, y  float64
	alive bool
}

func (t *bareTarget) ID() core.Entity              { return t.id }
func (t *bareTarget) Position() (float64, float64) { return t.x, t.y }
func (t *bareTarget) Alive() bool                  { return t.alive }

// stubOwner implements OwnerState
type stubOwner struct {
	id       core.Entity
	x, y     float64
	healed   float64
	streak   int
	scorched bool
}

func (o *stubOwner) ID() core.Entity              { return o.id }
func (o *stubOwner) Position() (float64, float64) { return o.x, o.y }
func (o *stubOwner) Heal(amount float64)          { o.healed += amount }
func (o *stubOwner) KillStreak() int              { return o.streak }
func (o *stubOwner) HasScorchedGround() bool      { return o.scorched }

// stubWorld implements World over a plain target slice
// Scan order is insertion order, which makes tie-breaks testable
type stubWorld struct {
	targets []Target
	owner   *stubOwner

	queue *event.Queue
	rand  *vmath.FastRand
	reg   *status.Registry

	hazards []HazardSpec
	now     float64
}

func newStubWorld() *stubWorld {
	return &stubWorld{
		queue: event.NewQueue(),
		rand:  vmath.NewFastRand(1),
		reg:   status.NewRegistry(),
	}
}

func (w *stubWorld) addTarget(id core.Entity, x, y float64) *stubTarget {
	t := &stubTarget{id: id, x: x, y: y, alive: true, hp: 1e9}
	w.targets = append(w.targets, t)
	return t
}

func (w *stubWorld) EachTarget(fn func(Target) bool) {
	for _, t := range w.targets {
		if !fn(t) {
			return
		}
	}
}

func (w *stubWorld) TargetsNear(x, y, radius float64, fn func(Target) bool) {
	rSq := radius * radius
	for _, t := range w.targets {
		tx, ty := t.Position()
		if vmath.DistSq(x, y, tx, ty) > rSq {
			continue
		}
		if !fn(t) {
			return
		}
	}
}

func (w *stubWorld) TargetByID(id core.Entity) (Target, bool) {
	for _, t := range w.targets {
		if t.ID() == id && t.Alive() {
			return t, true
		}
	}
	return nil, false
}

func (w *stubWorld) Owner(id core.Entity) (OwnerState, bool) {
	if w.owner != nil && w.owner.id == id {
		return w.owner, true
	}
	return nil, false
}

func (w *stubWorld) SpawnHazard(spec HazardSpec) {
	w.hazards = append(w.hazards, spec)
}

func (w *stubWorld) Events() *event.Queue     { return w.queue }
func (w *stubWorld) Rand() *vmath.FastRand    { return w.rand }
func (w *stubWorld) Status() *status.Registry { return w.reg }
func (w *stubWorld) Now() float64             { return w.now }

// countEvents drains the queue and tallies events of the given type
func (w *stubWorld) countEvents(t event.EventType) int {
	n := 0
	for _, ev := range w.queue.Consume() {
		if ev.Type == t {
			n++
		}
	}
	return n
}

// testProjectile builds a reset projectile with a live manager
func testProjectile(reg *status.Registry, cfg Config) *Projectile {
	p := newProjectile(NewManager(reg))
	p.pooled = true
	p.Reset(1, 0, 0, cfg, 0)
	return p
}
