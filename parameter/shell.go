package parameter

import "time"

// Simulation Tick
const (
	// TickRate is simulation updates per second
	TickRate = 60

	// TickInterval is the wall-clock duration of one tick
	TickInterval = time.Second / TickRate

	// TickSeconds is the fixed dt handed to the simulation each tick
	TickSeconds = 1.0 / float64(TickRate)
)
