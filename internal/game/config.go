package game

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
)

// Bullet.
const (
	BulletRadius   = 0.0
	BulletLifespan = 3.0
	BulletSpeed    = 1500.0
	BulletDamage   = 1.0
)

// Explosion store.
const (
	ExplosionCountMax = 256
	ExplosionLifespan = 0.75
	explosionFrameCount = 8
)

// Ship.
const (
	ShipRadius      = 10.0
	ShipReloadTime  = 0.25
	ShipHealthDeadAt = 0.001
	// Open Question (spec §9): the source toggles between two bullet
	// death-explosion sizes (10 and EXPLOSION_SIZE); 10 is the canonical
	// value used here.
	BulletDeathExplosionSize = 10.0
	ShipDeathExplosionSize   = 50.0
)

// Steering.
const (
	SteeringSlowDistancePaddingFactor = 2.0
	SteeringExploreDistanceNewPos     = 100.0
	SteeringAvoidSpeedFactorMin       = 0.1
	SteeringAvoidSidewaysNormMin      = 0.01
	exploreRetryLimit                 = 100
)

// Ring shaping.
const RingNoiseFactor = 0.2

// Moon-guard unit AI scan cadence and ranges. Not given exact numeric values
// by the distilled spec; the orders of magnitude (sector-scale distances,
// a scan window on the order of tens of ticks) are carried over from
// original_source/cs409a5/cs409a5/SpaceMongolsUnitAi.{h,cpp} and its sibling
// constants header.
const (
	ScanCountMax             = 30
	ScanDistanceShip         = 2000.0
	ScanDistanceRingParticle = 2000.0
	ShootAngleRadiansMax     = 0.08
)

// Avoid-filter clearance and avoid-distance constants per obstacle kind.
const (
	ShipClearance      = 20.0
	ShipAvoidDistance  = 400.0
	RingParticleClearance     = 5.0
	RingParticleAvoidDistance = 300.0
	PlanetoidClearance        = 50.0
	PlanetoidAvoidDistance    = 500.0
)
