package arena

import (
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
)

// OwnerSpec configures a projectile owner; zero HP takes the default
type OwnerSpec struct {
	X, Y           float64
	HP             float64
	ScorchedGround bool
}

// Owner is the firing agent: it receives life-drain healing, carries
// the kill streak, and gates the scorched-ground ability
type Owner struct {
	id   core.Entity
	x, y float64

	hp    float64
	maxHP float64

	killStreak     int
	scorchedGround bool
}

func (o *Owner) ID() core.Entity { return o.id }

func (o *Owner) Position() (float64, float64) { return o.x, o.y }

// SetPosition moves the owner; the shell drives this from input
func (o *Owner) SetPosition(x, y float64) {
	o.x, o.y = x, y
}

// Heal raises health, clamped to the maximum
func (o *Owner) Heal(amount float64) {
	if amount <= 0 {
		return
	}
	o.hp += amount
	if o.hp > o.maxHP {
		o.hp = o.maxHP
	}
}

// Damage lowers health and breaks the active kill streak
func (o *Owner) Damage(amount float64) {
	if amount <= 0 {
		return
	}
	o.hp -= amount
	if o.hp < 0 {
		o.hp = 0
	}
	o.killStreak = 0
}

func (o *Owner) HP() (current, max float64) { return o.hp, o.maxHP }

func (o *Owner) KillStreak() int { return o.killStreak }

func (o *Owner) HasScorchedGround() bool { return o.scorchedGround }

// SetScorchedGround toggles the on-death hazard ability
func (o *Owner) SetScorchedGround(on bool) { o.scorchedGround = on }

func defaultOwnerSpec(spec OwnerSpec) OwnerSpec {
	if spec.HP <= 0 {
		spec.HP = parameter.OwnerDefaultHP
	}
	return spec
}
