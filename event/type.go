package event

// EventType represents the type of game event
type EventType int

const (
	// === Projectile Event ===

	// EventProjectileSpawned signals a projectile entering play
	// Trigger: Factory on fire
	// Consumer: RenderSystem (muzzle flash), AudioSystem | Payload: *SpawnPayload
	EventProjectileSpawned EventType = iota

	// EventProjectileDestroyed signals a projectile leaving play
	// Trigger: Projectile.Destroy
	// Consumer: RenderSystem (fade), AudioSystem | Payload: *DestroyPayload
	EventProjectileDestroyed

	// EventImpact signals a projectile hitting a target
	// Trigger: Collision resolution after damage application
	// Consumer: RenderSystem (hit flash), AudioSystem | Payload: *ImpactPayload (pooled)
	EventImpact

	// === Effect Event ===

	// EventExplosion signals an area blast
	// Trigger: Explosive behavior on contact or destroy
	// Consumer: RenderSystem (blast ring), AudioSystem | Payload: *ExplosionPayload
	EventExplosion

	// EventRicochetBounce signals a projectile redirecting to a new target
	// Trigger: Ricochet behavior on prevented death
	// Consumer: RenderSystem, AudioSystem | Payload: *BouncePayload
	EventRicochetBounce

	// EventChainArc signals one hop of chain lightning
	// Trigger: Chain behavior during the hop walk
	// Consumer: RenderSystem (arc segment), AudioSystem | Payload: *ChainArcPayload
	EventChainArc

	// EventBurnIgnited signals a burn landing on a target
	// Trigger: Burn behavior on a successful application roll
	// Consumer: RenderSystem (ember tint), AudioSystem | Payload: *BurnPayload
	EventBurnIgnited

	// === Arena Event ===

	// EventTargetKilled signals a target dying to any source
	// Trigger: Arena damage application
	// Consumer: Demo spawner, AudioSystem | Payload: *KillPayload
	EventTargetKilled

	// EventHazardSpawned signals a scorched-ground zone appearing
	// Trigger: Projectile destruction with the owner ability set
	// Consumer: RenderSystem | Payload: *HazardPayload
	EventHazardSpawned

	// EventLifeDrained signals healing paid to the owner from a hit
	// Trigger: Collision resolution when the drain rate is nonzero
	// Consumer: RenderSystem (heal tick), demo HUD | Payload: *DrainPayload
	EventLifeDrained
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
}
