package projectile

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
)

// Manager owns the ordered behavior list of one projectile and is the
// single authority for collision resolution order
//
// Attachment order is resolution order for OnHit hooks. Death prevention
// runs ricochet-first with piercing as fallback, then the generic
// PreventsDeath seam over the remaining behaviors in attachment order.
// A successful ricochet never touches piercing charges; the two budgets
// are independent
type Manager struct {
	behaviors []Behavior

	// noop marks the fallback manager: attaches are accepted and dropped,
	// no behavior is ever reported present, every collision is lethal
	noop bool

	reg *status.Registry
}

// NewManager creates a manager backed by the given telemetry registry
// A nil registry is tolerated; duplicate-rejection counting is skipped
func NewManager(reg *status.Registry) *Manager {
	return &Manager{
		behaviors: make([]Behavior, 0, 4),
		reg:       reg,
	}
}

// NewNoopManager creates the minimal-but-safe fallback manager used when
// behavior subsystem construction fails
func NewNoopManager() *Manager {
	return &Manager{noop: true}
}

// Noop reports whether this is the fallback manager
func (m *Manager) Noop() bool { return m.noop }

// Attach adds a behavior, rejecting duplicates of an already-present kind
// Returns whether the behavior is now part of the projectile
func (m *Manager) Attach(b Behavior) bool {
	if b == nil {
		return false
	}
	if m.noop {
		// Accepted silently, never stored
		return true
	}
	if m.Has(b.Kind()) {
		if m.reg != nil {
			m.reg.Ints.Get("behavior.duplicate_rejected").Add(1)
		}
		return false
	}
	m.behaviors = append(m.behaviors, b)
	return true
}

// Has reports whether a behavior of the given kind is attached
func (m *Manager) Has(k Kind) bool {
	return m.Get(k) != nil
}

// Get returns the attached behavior of the given kind, or nil
func (m *Manager) Get(k Kind) Behavior {
	if m.noop {
		return nil
	}
	for _, b := range m.behaviors {
		if b.Kind() == k {
			return b
		}
	}
	return nil
}

// Len returns the number of attached behaviors
func (m *Manager) Len() int {
	if m.noop {
		return 0
	}
	return len(m.behaviors)
}

// Each visits behaviors in attachment order
func (m *Manager) Each(fn func(Behavior)) {
	for _, b := range m.behaviors {
		fn(b)
	}
}

// Clear empties the behavior list, keeping capacity for reuse
// Pool reset depends on this being exact: no survivor may remain
func (m *Manager) Clear() {
	for i := range m.behaviors {
		m.behaviors[i] = nil
	}
	m.behaviors = m.behaviors[:0]
}

// Update forwards per-frame logic to enabled behaviors
func (m *Manager) Update(p *Projectile, w World, dt float64) {
	for _, b := range m.behaviors {
		if b.Enabled() {
			b.Update(p, w, dt)
		}
	}
}

// HandleCollision resolves one projectile-target contact and returns the
// death verdict plus the damage actually dealt to the target
//
// Order: hit-set guard, damage application, OnHit hooks in attachment
// order, then death resolution (ricochet, piercing, generic seam)
func (m *Manager) HandleCollision(p *Projectile, target Target, w World) (die bool, dealt float64) {
	if target == nil || !target.Alive() {
		return false, 0
	}
	id := target.ID()
	if p.AlreadyHit(id) {
		return false, 0
	}
	p.MarkHit(id)

	if d, ok := target.(Damageable); ok {
		dealt = d.ApplyDamage(p.Damage, p.Crit)
	}

	if m.noop {
		return true, dealt
	}

	for _, b := range m.behaviors {
		if b.Enabled() {
			b.OnHit(p, target, w)
		}
	}

	// Ricochet first: a successful bounce ends resolution immediately
	if r := m.Get(KindRicochet); r != nil && r.Enabled() {
		if r.PreventsDeath(p, target, w) {
			return false, dealt
		}
	}

	// Piercing fallback: charges are spent only when no bounce happened
	if pc := m.Get(KindPiercing); pc != nil && pc.Enabled() {
		if pc.PreventsDeath(p, target, w) {
			return false, dealt
		}
	}

	// Generic seam for future death-preventing effects
	for _, b := range m.behaviors {
		k := b.Kind()
		if k == KindRicochet || k == KindPiercing {
			continue
		}
		if b.Enabled() && b.PreventsDeath(p, target, w) {
			return false, dealt
		}
	}

	return true, dealt
}

// OnDestroy notifies behaviors of the projectile leaving play
// Death-triggered effects (explosive detonation) run here, never inside
// collision resolution
func (m *Manager) OnDestroy(p *Projectile, w World, ctx DestroyContext) {
	for _, b := range m.behaviors {
		if b.Enabled() {
			b.OnDestroy(p, w, ctx)
		}
	}
}
