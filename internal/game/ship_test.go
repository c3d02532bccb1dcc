package game

import "testing"

func TestShipDamageTransitionsToDyingAtThreshold(t *testing.T) {
	s := NewShip(MakeID(KindShip, FactionPlayer, 0), FactionPlayer, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	s.ApplyDamage(99.999)
	if s.State != ShipAlive {
		t.Fatalf("ship should still be alive just above the death threshold, got %v", s.State)
	}
	s.ApplyDamage(ShipHealthDeadAt)
	if s.State != ShipDying {
		t.Fatalf("ship should be Dying once Health.Current <= ShipHealthDeadAt, got %v", s.State)
	}
}

func TestShipAdvanceDeathStateOnlyFromDying(t *testing.T) {
	s := NewShip(MakeID(KindShip, FactionPlayer, 0), FactionPlayer, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	s.AdvanceDeathState()
	if s.State != ShipAlive {
		t.Fatalf("AdvanceDeathState should be a no-op from Alive, got %v", s.State)
	}
	s.ApplyDamage(1000)
	s.AdvanceDeathState()
	if s.State != ShipDead {
		t.Fatalf("expected Dead after AdvanceDeathState from Dying, got %v", s.State)
	}
}

func TestShipApplyDamageIgnoredOnceDead(t *testing.T) {
	s := NewShip(MakeID(KindShip, FactionPlayer, 0), FactionPlayer, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	s.ApplyDamage(1000)
	s.AdvanceDeathState()
	healthBefore := s.Health.Current
	s.ApplyDamage(50)
	if s.Health.Current != healthBefore {
		t.Fatalf("damage should be ignored once a ship is dead: %v -> %v", healthBefore, s.Health.Current)
	}
}

func TestShipReloadGatesFireDesired(t *testing.T) {
	s := NewShip(MakeID(KindShip, FactionPlayer, 0), FactionPlayer, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	s.MarkFireBulletDesired()
	if !s.ConsumeFireDesired() {
		t.Fatalf("expected fire desired to be reported when not reloading")
	}
	if s.ConsumeFireDesired() {
		t.Fatalf("ConsumeFireDesired should clear itself")
	}

	s.MarkReloading()
	s.MarkFireBulletDesired()
	if s.ConsumeFireDesired() {
		t.Fatalf("fire should not be desired while reloading")
	}

	for elapsed := 0.0; elapsed < ShipReloadTime+0.01; elapsed += 0.05 {
		s.TickReload(0.05)
	}
	if s.IsReloading() {
		t.Fatalf("reload should have finished after ShipReloadTime elapsed")
	}
	s.MarkFireBulletDesired()
	if !s.ConsumeFireDesired() {
		t.Fatalf("expected fire desired to be available again once reload completes")
	}
}

func TestShipIsAliveReflectsState(t *testing.T) {
	s := NewShip(MakeID(KindShip, FactionPlayer, 0), FactionPlayer, Vector3{}, Vector3{X: 0, Y: 0, Z: 1}, 100)
	if !s.IsAlive() {
		t.Fatalf("freshly spawned ship should be alive")
	}
	s.ApplyDamage(1000)
	if s.IsAlive() {
		t.Fatalf("a Dying ship should not report alive")
	}
}
