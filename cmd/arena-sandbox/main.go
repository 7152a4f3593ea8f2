// Command arena-sandbox runs the engine headless for a fixed number of
// ticks and dumps the event tallies and the status registry. Same seed,
// same output; useful for soak runs and regression diffing.
package main

import (
	"flag"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/mcjdh/galactic-ring-cannon-sub002/arena"
	"github.com/mcjdh/galactic-ring-cannon-sub002/core"
	"github.com/mcjdh/galactic-ring-cannon-sub002/event"
	"github.com/mcjdh/galactic-ring-cannon-sub002/game"
	"github.com/mcjdh/galactic-ring-cannon-sub002/parameter"
	"github.com/mcjdh/galactic-ring-cannon-sub002/projectile"
	"github.com/mcjdh/galactic-ring-cannon-sub002/status"
	"github.com/mcjdh/galactic-ring-cannon-sub002/vmath"
)

const (
	arenaWidth  = 200.0
	arenaHeight = 120.0

	fireEveryTicks = 9
	goldenAngle    = 2.3999632297286533
)

var (
	seedFlag    = flag.Uint64("seed", 42, "RNG seed")
	ticksFlag   = flag.Int("ticks", 3600, "Simulation ticks to run")
	targetsFlag = flag.Int("targets", 24, "Target population to maintain")
)

// volleys cycle through the behavior set; even shots use the legacy
// angle call shape, odd shots the velocity shape
var volleys = []projectile.FireRequest{
	{Damage: 14},
	{Damage: 9, PiercingCharges: 3},
	{Damage: 10, RicochetChance: 1, RicochetBounces: 2, RicochetRange: 45, RicochetDamageMult: 0.85},
	{Damage: 8, ChainChance: 0.8, MaxChains: 3, ChainRange: 28, ChainDamageMult: 0.7},
	{Damage: 12, ExplosiveChance: 1, ExplosionRadius: 9, ExplosionDamageMult: 0.8, ExplodeOnContact: true, ExplodeOnTimeout: true},
	{Damage: 6, BurnChance: 0.9, BurnDamage: 4, BurnDuration: 3, BurnCanExplode: true, BurnExplosionDamage: 20, BurnExplosionRadius: 7},
	{Damage: 10, HomingChance: 1, HomingTurnRate: 6, HomingRange: 40},
	{Damage: 10, LifeDrainRate: 0.35},
}

var eventNames = []struct {
	t    event.EventType
	name string
}{
	{event.EventProjectileSpawned, "projectile_spawned"},
	{event.EventProjectileDestroyed, "projectile_destroyed"},
	{event.EventImpact, "impact"},
	{event.EventExplosion, "explosion"},
	{event.EventRicochetBounce, "ricochet_bounce"},
	{event.EventChainArc, "chain_arc"},
	{event.EventBurnIgnited, "burn_ignited"},
	{event.EventTargetKilled, "target_killed"},
	{event.EventHazardSpawned, "hazard_spawned"},
	{event.EventLifeDrained, "life_drained"},
}

func spawnTarget(g *game.Game, rng *vmath.FastRand) {
	g.Arena().AddTarget(arena.TargetSpec{
		X:      rng.Range(10, arenaWidth-10),
		Y:      rng.Range(10, arenaHeight-10),
		VelX:   rng.Range(-12, 12),
		VelY:   rng.Range(-12, 12),
		Radius: rng.Range(1, 3),
		HP:     rng.Range(20, 80),
	})
}

func fire(g *game.Game, rng *vmath.FastRand, shot int) {
	req := volleys[shot%len(volleys)]
	req.X, req.Y = g.Owner().Position()
	req.Crit = rng.Chance(0.15)

	angle := float64(shot) * goldenAngle
	if shot%2 == 0 {
		req.Angle = angle
		req.Speed = parameter.ProjectileDefaultSpeed
	} else {
		req.VelX = math.Cos(angle) * parameter.ProjectileDefaultSpeed
		req.VelY = math.Sin(angle) * parameter.ProjectileDefaultSpeed
	}
	g.Fire(req)
}

// drain counts one batch of events, releasing pooled payloads and
// respawning a target per kill
func drain(g *game.Game, rng *vmath.FastRand, counts map[event.EventType]int, respawn bool) {
	for _, ev := range g.Events().Consume() {
		counts[ev.Type]++
		switch ev.Type {
		case event.EventImpact:
			if p, ok := ev.Payload.(*event.ImpactPayload); ok {
				event.ReleaseImpact(p)
			}
		case event.EventTargetKilled:
			if respawn {
				spawnTarget(g, rng)
			}
		}
	}
}

func main() {
	flag.Parse()

	g := game.New(game.Config{
		Bounds: core.Area{X: 0, Y: 0, Width: arenaWidth, Height: arenaHeight},
		Seed:   *seedFlag,
		Owner: arena.OwnerSpec{
			X: arenaWidth / 2, Y: arenaHeight / 2,
			HP:             1000,
			ScorchedGround: true,
		},
	})
	rng := vmath.NewFastRand(*seedFlag ^ 0x6a09e667f3bcc909)

	for i := 0; i < *targetsFlag; i++ {
		spawnTarget(g, rng)
	}

	counts := make(map[event.EventType]int)
	shot := 0
	for tick := 0; tick < *ticksFlag; tick++ {
		if tick%fireEveryTicks == 0 {
			fire(g, rng, shot)
			shot++
		}
		g.Update(parameter.TickSeconds)
		drain(g, rng, counts, true)
	}

	g.Shutdown()
	drain(g, rng, counts, false)

	fmt.Printf("simulated %d ticks (%.1fs game time), %d shots\n",
		*ticksFlag, float64(*ticksFlag)*parameter.TickSeconds, shot)

	fmt.Println("--- events ---")
	for _, en := range eventNames {
		fmt.Printf("%-24s %d\n", en.name, counts[en.t])
	}

	fmt.Println("--- status ---")
	reg := g.Status()
	reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		fmt.Printf("%-24s %d\n", key, ptr.Load())
	})
	reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		fmt.Printf("%-24s %.2f\n", key, ptr.Get())
	})
}
