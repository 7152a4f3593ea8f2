package projectile

// PiercingBehavior lets a projectile survive hits while charges remain
// Charges never regenerate; ricochet bounces leave them untouched
type PiercingBehavior struct {
	behaviorBase

	charges int
}

// NewPiercing creates the behavior with the given charge budget
func NewPiercing(charges int) *PiercingBehavior {
	if charges < 0 {
		charges = 0
	}
	return &PiercingBehavior{charges: charges}
}

func (b *PiercingBehavior) Kind() Kind { return KindPiercing }

// Charges returns the remaining budget
func (b *PiercingBehavior) Charges() int { return b.charges }

// PreventsDeath consumes one charge per survived hit
func (b *PiercingBehavior) PreventsDeath(p *Projectile, _ Target, w World) bool {
	if b.charges <= 0 {
		return false
	}
	b.charges--
	p.PierceCharges = b.charges
	w.Status().Ints.Get("piercing.spent").Add(1)
	return true
}
