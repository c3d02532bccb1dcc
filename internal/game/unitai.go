package game

import "math"

// WorldQuery is the read-only slice of world state a unit AI needs to scan
// its surroundings, satisfied by *World (component M).
type WorldQuery interface {
	ShipsWithin(pos Vector3, radius float64) []*Ship
	RingParticlesWithin(pos Vector3, radius float64) []ParticleSummary
	NearestPlanetoid(pos Vector3) *Planetoid
}

// UnitAIMoonGuard patrols a single moon's sphere, periodically rescanning
// its surroundings and, between rescans, reusing the last scan results to
// shoot and steer. Grounded on the moon-guard unit AI: a ping-timer scan
// cadence, then fire-if-aimed, then patrol, then a fixed sequence of avoid
// passes applied to the patrol velocity
// (original_source/cs409a5/cs409a5/SpaceMongolsUnitAi.cpp, §4.L).
type UnitAIMoonGuard struct {
	pingTimer int
	rng       *Rand

	nearbyShips         []*Ship
	nearbyRingParticles []ParticleSummary
	nearestPlanetoid    *Planetoid

	steering *SteeringKernel
}

func NewUnitAIMoonGuard(agentID ID, rng *Rand) *UnitAIMoonGuard {
	return &UnitAIMoonGuard{
		pingTimer: rng.Intn(ScanCountMax),
		rng:       rng,
		steering:  NewSteeringKernel(agentID, rng),
	}
}

// scan increments the ping timer and, once it reaches ScanCountMax, refreshes
// the cached nearby-ships/nearby-ring-particles/nearest-planetoid results and
// resets the timer to zero.
func (ai *UnitAIMoonGuard) scan(world WorldQuery, self *Ship) {
	ai.pingTimer++
	if ai.pingTimer < ScanCountMax {
		return
	}
	ai.pingTimer = 0
	ai.nearbyShips = world.ShipsWithin(self.Position(), ScanDistanceShip)
	ai.nearbyRingParticles = world.RingParticlesWithin(self.Position(), ScanDistanceRingParticle)
	ai.nearestPlanetoid = world.NearestPlanetoid(self.Position())
}

// closestShip returns the nearest cached ship that is not a member of self's
// own faction, or nil if none qualify.
func (ai *UnitAIMoonGuard) closestShip(self *Ship) *Ship {
	var best *Ship
	bestDist := 0.0
	for _, s := range ai.nearbyShips {
		if s == self || s.Faction == self.Faction || !s.IsAlive() {
			continue
		}
		d := s.Position().DistSquared(self.Position())
		if best == nil || d < bestDist {
			best, bestDist = s, d
		}
	}
	return best
}

// shootAt aims at target's predicted position and, if the required turn is
// within ShootAngleRadiansMax of the ship's current heading, marks a bullet
// fire desired.
func (ai *UnitAIMoonGuard) shootAt(self *Ship, target *Ship) {
	aimDir := aimDirection(self.Position(), BulletSpeed, target.Position(), target.Velocity())
	if aimDir.IsZero() {
		return
	}
	angle := angleBetween(self.Forward(), aimDir)
	if angle <= ShootAngleRadiansMax {
		self.MarkFireBulletDesired()
	}
}

func angleBetween(a, b Vector3) float64 {
	an, bn := a.Normalized(), b.Normalized()
	if an.IsZero() || bn.IsZero() {
		return 0
	}
	d := an.Dot(bn)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}

// Run executes one tick of moon-guard behaviour for self, orbiting the
// guarded moon sphere (moonPos, moonRadius).
func (ai *UnitAIMoonGuard) Run(world WorldQuery, self *Ship, moonPos Vector3, moonRadius float64) Vector3 {
	if !self.IsAlive() {
		return Vector3{}
	}
	ai.scan(world, self)

	if closest := ai.closestShip(self); closest != nil {
		ai.shootAt(self, closest)
	}

	desired := ai.steering.PatrolSphere(self, moonPos, moonRadius, PlanetoidAvoidDistance)

	for _, pt := range ai.nearbyRingParticles {
		desired = ai.steering.Avoid(self, desired, pt.Position, pt.Radius, RingParticleClearance, RingParticleAvoidDistance)
	}
	for _, s := range ai.nearbyShips {
		if s == self || !s.IsAlive() {
			continue
		}
		desired = ai.steering.Avoid(self, desired, s.Position(), s.Radius, ShipClearance, ShipAvoidDistance)
	}
	if ai.nearestPlanetoid != nil {
		desired = ai.steering.Avoid(self, desired, ai.nearestPlanetoid.Position, ai.nearestPlanetoid.Radius, PlanetoidClearance, PlanetoidAvoidDistance)
	}

	return desired
}
