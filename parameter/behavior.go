package parameter

// Chain
const (
	// ChainIterationCap bounds the chain walk regardless of configured budget
	ChainIterationCap = 50

	// ChainDefaultRange is the hop search radius when the config leaves it unset (cells)
	ChainDefaultRange = 120.0

	// ChainDefaultFalloff is the per-hop damage multiplier when unset
	ChainDefaultFalloff = 0.75
)

// Explosive
const (
	// ExplosionFalloffFloor is the minimum damage fraction inside the blast radius
	ExplosionFalloffFloor = 0.3

	// ExplosionDebounceSec is the minimum interval between two blasts of one projectile
	ExplosionDebounceSec = 0.1

	// ExplosionBurnCarryPotency scales a carried burn applied to blast victims
	ExplosionBurnCarryPotency = 0.8
)

// Homing
const (
	// HomingRetargetSec is how often a homing projectile re-picks its target
	HomingRetargetSec = 0.1

	// HomingDefaultTurnRate is radians per second of steering when unset
	HomingDefaultTurnRate = 3.5

	// HomingDefaultRange is the acquisition radius when unset (cells)
	HomingDefaultRange = 250.0
)

// Ricochet
const (
	// RicochetDefaultRange is the bounce target search radius when unset (cells)
	RicochetDefaultRange = 160.0

	// RicochetDefaultDamageFalloff is the per-bounce damage multiplier when unset
	RicochetDefaultDamageFalloff = 0.9
)

// Burn
const (
	// BurnDefaultDurationSec is the burn length when the config leaves it unset
	BurnDefaultDurationSec = 3.0

	// BurnDefaultTickSec is the interval between burn damage ticks
	BurnDefaultTickSec = 0.5
)
