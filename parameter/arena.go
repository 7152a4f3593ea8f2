package parameter

// Spatial Grid
const (
	// GridCellSize is the bucket edge length of the arena spatial grid (cells)
	GridCellSize = 32.0
)

// Hazard Zones
const (
	// HazardDefaultRadius is the scorched-ground zone radius (cells)
	HazardDefaultRadius = 18.0

	// HazardDefaultDPS is damage per second dealt inside a hazard zone
	HazardDefaultDPS = 8.0

	// HazardDefaultDurationSec is how long a spawned hazard zone persists
	HazardDefaultDurationSec = 2.5

	// HazardTickSec is the interval between hazard damage applications
	HazardTickSec = 0.25
)

// Life Drain
const (
	// DrainStreakBonusPerKill is added to the drain rate per kill in the active streak
	DrainStreakBonusPerKill = 0.002

	// DrainStreakBonusCap limits the streak contribution to the drain rate
	DrainStreakBonusCap = 0.05

	// DrainCritMultiplier scales the whole drain rate on critical shots
	DrainCritMultiplier = 1.5
)

// Targets
const (
	// TargetDefaultRadius is the collision radius of a standard target (cells)
	TargetDefaultRadius = 2.0

	// TargetDefaultHP is the hit-point pool of a standard target
	TargetDefaultHP = 100.0
)

// Owner
const (
	// OwnerDefaultHP caps owner health and life-drain healing
	OwnerDefaultHP = 100.0
)
