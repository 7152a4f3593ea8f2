package render

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
)

// --- Effect Lifetimes ---

// Lifetimes in seconds for each transient kind
const (
	ringLifetime   = 0.40
	arcLifetime    = 0.18
	flashLifetime  = 0.25
	igniteLifetime = 0.30
	killLifetime   = 0.35
	sparkLifetime  = 0.12
)

// maxEffects bounds the store during event bursts
const maxEffects = 256

// --- Effect Store ---

type effectKind int

const (
	effectRing effectKind = iota
	effectArc
	effectFlash
	effectIgnite
	effectKillPop
	effectSpark
)

// effect is one short-lived visual anchored in arena space
type effect struct {
	kind     effectKind
	x, y     float64
	x2, y2   float64 // arc endpoint
	radius   float64
	age      float64
	lifetime float64
}

func (fx *effect) progress() float64 {
	return fx.age / fx.lifetime
}

// Effects accumulates transient visuals from drained game events and
// ages them out. It holds plain arena-space data with no screen
// dependency.
type Effects struct {
	active []effect
}

func NewEffects() *Effects {
	return &Effects{
		active: make([]effect, 0, 64),
	}
}

// HandleEvent converts one game event into a transient effect.
// Pooled payload fields are copied; the pointer is never retained.
func (e *Effects) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventExplosion:
		p, ok := ev.Payload.(*event.ExplosionPayload)
		if !ok {
			return
		}
		e.add(effect{kind: effectRing, x: p.X, y: p.Y, radius: p.Radius, lifetime: ringLifetime})

	case event.EventChainArc:
		p, ok := ev.Payload.(*event.ChainArcPayload)
		if !ok {
			return
		}
		e.add(effect{kind: effectArc, x: p.FromX, y: p.FromY, x2: p.ToX, y2: p.ToY, lifetime: arcLifetime})

	case event.EventRicochetBounce:
		p, ok := ev.Payload.(*event.BouncePayload)
		if !ok {
			return
		}
		e.add(effect{kind: effectFlash, x: p.X, y: p.Y, lifetime: flashLifetime})

	case event.EventBurnIgnited:
		p, ok := ev.Payload.(*event.BurnPayload)
		if !ok {
			return
		}
		e.add(effect{kind: effectIgnite, x: p.X, y: p.Y, lifetime: igniteLifetime})

	case event.EventTargetKilled:
		p, ok := ev.Payload.(*event.KillPayload)
		if !ok {
			return
		}
		e.add(effect{kind: effectKillPop, x: p.X, y: p.Y, lifetime: killLifetime})

	case event.EventImpact:
		p, ok := ev.Payload.(*event.ImpactPayload)
		if !ok {
			return
		}
		e.add(effect{kind: effectSpark, x: p.X, y: p.Y, lifetime: sparkLifetime})
	}
}

// Update ages active effects and drops the expired ones in place
func (e *Effects) Update(dt float64) {
	if dt <= 0 {
		return
	}
	kept := e.active[:0]
	for i := range e.active {
		e.active[i].age += dt
		if e.active[i].age < e.active[i].lifetime {
			kept = append(kept, e.active[i])
		}
	}
	e.active = kept
}

// Count returns the number of live effects
func (e *Effects) Count() int {
	return len(e.active)
}

func (e *Effects) add(fx effect) {
	if len(e.active) >= maxEffects {
		copy(e.active, e.active[1:])
		e.active = e.active[:maxEffects-1]
	}
	e.active = append(e.active, fx)
}
