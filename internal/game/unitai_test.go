package game

import "testing"

// stubWorldQuery lets unit-AI scan behaviour be tested without a full World.
type stubWorldQuery struct {
	ships      []*Ship
	particles  []ParticleSummary
	planetoid  *Planetoid
	scanCalls  int
}

func (s *stubWorldQuery) ShipsWithin(pos Vector3, radius float64) []*Ship {
	s.scanCalls++
	return s.ships
}
func (s *stubWorldQuery) RingParticlesWithin(pos Vector3, radius float64) []ParticleSummary {
	return s.particles
}
func (s *stubWorldQuery) NearestPlanetoid(pos Vector3) *Planetoid { return s.planetoid }

func TestUnitAIScanCadenceFiresAtScanCountMax(t *testing.T) {
	ai := &UnitAIMoonGuard{pingTimer: ScanCountMax - 1, rng: NewRand(1), steering: NewSteeringKernel(IDDefault, NewRand(1))}
	self := NewShip(MakeID(KindShip, FactionEnemyFirst, 0), FactionEnemyFirst, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	world := &stubWorldQuery{}

	ai.scan(world, self)
	if world.scanCalls != 1 {
		t.Fatalf("expected scan to refresh caches exactly when pingTimer reaches ScanCountMax")
	}
	if ai.pingTimer != 0 {
		t.Fatalf("pingTimer should reset to 0 after a refresh, got %d", ai.pingTimer)
	}
}

func TestUnitAIScanDoesNotRefreshBeforeCadence(t *testing.T) {
	ai := &UnitAIMoonGuard{pingTimer: 0, rng: NewRand(1), steering: NewSteeringKernel(IDDefault, NewRand(1))}
	self := NewShip(MakeID(KindShip, FactionEnemyFirst, 0), FactionEnemyFirst, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	world := &stubWorldQuery{}

	ai.scan(world, self)
	if world.scanCalls != 0 {
		t.Fatalf("scan should not refresh caches before reaching ScanCountMax")
	}
}

func TestClosestShipIgnoresOwnFactionAndSelf(t *testing.T) {
	self := NewShip(MakeID(KindShip, FactionEnemyFirst, 0), FactionEnemyFirst, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	sameFaction := NewShip(MakeID(KindShip, FactionEnemyFirst, 1), FactionEnemyFirst, Vector3{X: 10}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	enemy := NewShip(MakeID(KindShip, FactionPlayer, 2), FactionPlayer, Vector3{X: 50}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	dead := NewShip(MakeID(KindShip, FactionPlayer, 3), FactionPlayer, Vector3{X: 5}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	dead.ApplyDamage(1000)

	ai := &UnitAIMoonGuard{nearbyShips: []*Ship{self, sameFaction, enemy, dead}}
	got := ai.closestShip(self)
	if got != enemy {
		t.Fatalf("expected closestShip to return the only live, opposing-faction ship, got %+v", got)
	}
}

func TestShootAtMarksFireOnlyWithinAngleTolerance(t *testing.T) {
	self := NewShip(MakeID(KindShip, FactionEnemyFirst, 0), FactionEnemyFirst, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	ai := &UnitAIMoonGuard{}

	directTarget := NewShip(MakeID(KindShip, FactionPlayer, 1), FactionPlayer, Vector3{X: 0, Y: 0, Z: 500}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	ai.shootAt(self, directTarget)
	if !self.ConsumeFireDesired() {
		t.Fatalf("expected to fire at a stationary target directly ahead")
	}

	offAxisTarget := NewShip(MakeID(KindShip, FactionPlayer, 2), FactionPlayer, Vector3{X: 500, Y: 500, Z: 0}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	ai.shootAt(self, offAxisTarget)
	if self.ConsumeFireDesired() {
		t.Fatalf("should not fire at a target far outside ShootAngleRadiansMax")
	}
}
