package parameter

import "time"

// Grenade flight
const (
	GrenadeThrowSpeed   = 8.0
	GrenadeMaxDistance  = 400.0
	GrenadeGravity      = 0.3
	GrenadeRadius       = 6.0
	GrenadeSpinDegrees  = 5.0
	GrenadeGroundMargin = 10.0

	// GrenadeTimeStep is elapsed flight time per tick, in the same unit as the budget (distance/speed)
	// One unit per tick, so a grenade detonates on time after covering its throw distance
	GrenadeTimeStep = 1.0
)

// Explosion
const (
	ExplosionRadius   = 80.0
	ExplosionMaxKills = 4

	// ExplosionDuration is how long the blast effect stays visible
	ExplosionDuration = 500 * time.Millisecond
)

// Pickups
const (
	MaxGrenades         = 5
	PickupRadius        = 12.0
	PickupLifetime      = 30 * time.Second
	PickupSpawnInterval = 10 * time.Second
)
