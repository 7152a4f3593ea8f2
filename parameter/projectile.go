package parameter

// Projectile Lifetime
const (
	// ProjectileLifetimeMinSec is the lower clamp on derived projectile lifetime
	ProjectileLifetimeMinSec = 2.0

	// ProjectileLifetimeMaxSec is the upper clamp on derived projectile lifetime
	ProjectileLifetimeMaxSec = 8.0

	// ProjectileDefaultTravel is the travel distance used to derive lifetime when unset (cells)
	ProjectileDefaultTravel = 800.0
)

// Projectile Geometry
const (
	// ProjectileDefaultRadius is the collision radius when the firing request leaves it unset (cells)
	ProjectileDefaultRadius = 1.5

	// ProjectileDefaultSpeed is the muzzle speed when the firing request leaves it unset (cells/sec)
	ProjectileDefaultSpeed = 180.0

	// ProjectileOffscreenMargin is how far past the world edge a projectile survives culling (cells)
	ProjectileOffscreenMargin = 40.0

	// ProjectileTrailCapacity is the number of recent positions kept for trail rendering
	ProjectileTrailCapacity = 5
)

// Crit
const (
	// ProjectileCritSpeedBonus multiplies speed on critical shots
	ProjectileCritSpeedBonus = 1.15

	// ProjectileCritRadiusBonus multiplies collision radius on critical shots
	ProjectileCritRadiusBonus = 1.2
)

// Pool
const (
	// PoolDefaultCapacity is the free-list size of the projectile pool
	PoolDefaultCapacity = 128
)
