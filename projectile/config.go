package projectile

import (
	"math"

	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

// FireRequest is the raw firing call accepted by the factory
//
// Two call shapes are recognized: structured callers set VelX/VelY;
// legacy callers set Angle and Speed and leave the velocity zero. The
// factory normalizes both into one canonical Config
type FireRequest struct {
	X, Y float64

	// Structured form: explicit velocity vector, wins when nonzero
	VelX, VelY float64

	// Legacy form: heading in radians plus speed in cells/sec
	Angle float64
	Speed float64

	Damage float64
	Radius float64
	Crit   bool

	// TravelEstimate bounds the lifetime derivation; 0 uses the default
	TravelEstimate float64
	// RangeLimit destroys the projectile after this distance; 0 disables
	RangeLimit float64

	PiercingCharges int

	ChainChance     float64
	MaxChains       int
	ChainRange      float64
	ChainDamageMult float64

	ExplosiveChance     float64
	ExplosionRadius     float64
	ExplosionDamageMult float64
	ExplodeOnContact    bool
	ExplodeOnTimeout    bool

	RicochetChance     float64
	RicochetBounces    int
	RicochetRange      float64
	RicochetDamageMult float64

	HomingChance   float64
	HomingTurnRate float64
	HomingRange    float64

	BurnChance          float64
	BurnDamage          float64
	BurnDuration        float64
	BurnCanExplode      bool
	BurnExplosionDamage float64
	BurnExplosionRadius float64

	// LifeDrainRate is the base rate; the factory adds the streak bonus
	// and the crit multiplier on top
	LifeDrainRate float64
}

// Config is the canonical, sanitized firing configuration
// Reset consumes the kinematic fields; attachment consumes the rest
type Config struct {
	VelX, VelY float64
	Damage     float64
	Radius     float64
	Crit       bool

	TravelEstimate float64
	RangeLimit     float64

	PiercingCharges int

	ChainChance     float64
	MaxChains       int
	ChainRange      float64
	ChainDamageMult float64

	ExplosiveChance     float64
	ExplosionRadius     float64
	ExplosionDamageMult float64
	ExplodeOnContact    bool
	ExplodeOnTimeout    bool

	RicochetChance     float64
	RicochetBounces    int
	RicochetRange      float64
	RicochetDamageMult float64

	HomingChance   float64
	HomingTurnRate float64
	HomingRange    float64

	BurnChance          float64
	BurnDamage          float64
	BurnDuration        float64
	BurnCanExplode      bool
	BurnExplosionDamage float64
	BurnExplosionRadius float64

	LifeDrainRate float64
}

// Normalize converts a firing request into the canonical configuration:
// one velocity form, finite non-negative numerics, defaults filled in,
// and crit physical modifiers applied
func Normalize(req FireRequest) Config {
	cfg := Config{
		Crit: req.Crit,

		Damage: vmath.SanitizeNonNeg(req.Damage, 0),
		Radius: vmath.SanitizeNonNeg(req.Radius, 0),

		TravelEstimate: vmath.SanitizeNonNeg(req.TravelEstimate, 0),
		RangeLimit:     vmath.SanitizeNonNeg(req.RangeLimit, 0),

		PiercingCharges: clampCount(req.PiercingCharges),

		ChainChance:     vmath.SanitizeNonNeg(req.ChainChance, 0),
		MaxChains:       clampCount(req.MaxChains),
		ChainRange:      vmath.SanitizeNonNeg(req.ChainRange, 0),
		ChainDamageMult: vmath.SanitizeNonNeg(req.ChainDamageMult, 0),

		ExplosiveChance:     vmath.SanitizeNonNeg(req.ExplosiveChance, 0),
		ExplosionRadius:     vmath.SanitizeNonNeg(req.ExplosionRadius, 0),
		ExplosionDamageMult: vmath.SanitizeNonNeg(req.ExplosionDamageMult, 0),
		ExplodeOnContact:    req.ExplodeOnContact,
		ExplodeOnTimeout:    req.ExplodeOnTimeout,

		RicochetChance:     vmath.SanitizeNonNeg(req.RicochetChance, 0),
		RicochetBounces:    clampCount(req.RicochetBounces),
		RicochetRange:      vmath.SanitizeNonNeg(req.RicochetRange, 0),
		RicochetDamageMult: vmath.SanitizeNonNeg(req.RicochetDamageMult, 0),

		HomingChance:   vmath.SanitizeNonNeg(req.HomingChance, 0),
		HomingTurnRate: vmath.SanitizeNonNeg(req.HomingTurnRate, 0),
		HomingRange:    vmath.SanitizeNonNeg(req.HomingRange, 0),

		BurnChance:          vmath.SanitizeNonNeg(req.BurnChance, 0),
		BurnDamage:          vmath.SanitizeNonNeg(req.BurnDamage, 0),
		BurnDuration:        vmath.SanitizeNonNeg(req.BurnDuration, 0),
		BurnCanExplode:      req.BurnCanExplode,
		BurnExplosionDamage: vmath.SanitizeNonNeg(req.BurnExplosionDamage, 0),
		BurnExplosionRadius: vmath.SanitizeNonNeg(req.BurnExplosionRadius, 0),

		LifeDrainRate: vmath.SanitizeNonNeg(req.LifeDrainRate, 0),
	}

	// Velocity: structured form wins when nonzero, else legacy angle+speed
	vx := vmath.Sanitize(req.VelX, 0)
	vy := vmath.Sanitize(req.VelY, 0)
	if vx == 0 && vy == 0 {
		speed := vmath.SanitizeNonNeg(req.Speed, 0)
		angle := vmath.Sanitize(req.Angle, 0)
		if speed > 0 {
			sin, cos := math.Sincos(angle)
			vx = cos * speed
			vy = sin * speed
		}
	}
	cfg.VelX, cfg.VelY = vx, vy

	// Fill defaults for unset geometry
	if cfg.Radius == 0 {
		cfg.Radius = parameter.ProjectileDefaultRadius
	}
	if cfg.TravelEstimate == 0 {
		cfg.TravelEstimate = parameter.ProjectileDefaultTravel
	}
	if cfg.ChainRange == 0 {
		cfg.ChainRange = parameter.ChainDefaultRange
	}
	if cfg.ChainDamageMult == 0 {
		cfg.ChainDamageMult = parameter.ChainDefaultFalloff
	}
	if cfg.ExplosionDamageMult == 0 {
		cfg.ExplosionDamageMult = 1.0
	}
	if cfg.RicochetRange == 0 {
		cfg.RicochetRange = parameter.RicochetDefaultRange
	}
	if cfg.RicochetDamageMult == 0 {
		cfg.RicochetDamageMult = parameter.RicochetDefaultDamageFalloff
	}
	if cfg.HomingTurnRate == 0 {
		cfg.HomingTurnRate = parameter.HomingDefaultTurnRate
	}
	if cfg.HomingRange == 0 {
		cfg.HomingRange = parameter.HomingDefaultRange
	}
	if cfg.BurnDuration == 0 {
		cfg.BurnDuration = parameter.BurnDefaultDurationSec
	}

	// Crit physical modifiers
	if cfg.Crit {
		cfg.VelX *= parameter.ProjectileCritSpeedBonus
		cfg.VelY *= parameter.ProjectileCritSpeedBonus
		cfg.Radius *= parameter.ProjectileCritRadiusBonus
	}

	return cfg
}

// clampCount floors integer budgets at zero
func clampCount(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
