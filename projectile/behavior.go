package projectile

// Kind is the closed set of behavior types
// Membership checks and resolution order dispatch on this tag, never on
// strings or runtime type probing
type Kind uint8

const (
	KindPiercing Kind = iota
	KindRicochet
	KindChain
	KindExplosive
	KindHoming
	KindBurn

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindPiercing:
		return "piercing"
	case KindRicochet:
		return "ricochet"
	case KindChain:
		return "chain"
	case KindExplosive:
		return "explosive"
	case KindHoming:
		return "homing"
	case KindBurn:
		return "burn"
	}
	return "unknown"
}

// Behavior is one effect unit attached to a projectile
// A projectile holds at most one behavior per kind; instances carry their
// own mutable state and are rebuilt from config on every pool acquisition
type Behavior interface {
	Kind() Kind
	Enabled() bool

	// Update advances per-frame logic; only homing uses it in the current set
	Update(p *Projectile, w World, dt float64)

	// OnHit reacts to a confirmed hit, after damage application,
	// in attachment order across behaviors
	OnHit(p *Projectile, target Target, w World)

	// PreventsDeath reports whether this behavior keeps the projectile
	// alive after the hit, consuming its own budget on success
	PreventsDeath(p *Projectile, target Target, w World) bool

	// OnDestroy reacts to the projectile leaving play
	OnDestroy(p *Projectile, w World, ctx DestroyContext)
}

// behaviorBase supplies enabled-flag handling and no-op hooks
// Concrete behaviors embed it and override what they need
type behaviorBase struct {
	disabled bool
}

func (b *behaviorBase) Enabled() bool { return !b.disabled }

func (b *behaviorBase) SetEnabled(on bool) { b.disabled = !on }

func (b *behaviorBase) Update(*Projectile, World, float64) {}

func (b *behaviorBase) OnHit(*Projectile, Target, World) {}

func (b *behaviorBase) PreventsDeath(*Projectile, Target, World) bool { return false }

func (b *behaviorBase) OnDestroy(*Projectile, World, DestroyContext) {}
