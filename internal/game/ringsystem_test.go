package game

import "testing"

// denseRingParams makes a ring thick enough that sector centres (|y| = 250
// for the two layers straddling the ring plane) lie inside it, since a
// sector's particle count comes from the density at its centre.
func denseRingParams() RingParams {
	return RingParams{
		HalfThickness:   1000,
		InnerRadius:     2000,
		OuterRadiusBase: 6000,
		DensityMax:      2000,
		DensityFactor:   0.05,
	}
}

func TestRingSystemParticlesInFindsParticlesInsideDenseShell(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	center := Vector3{X: 4000, Y: 0, Z: 0}
	found := rs.ParticlesIn(center, 60)
	if len(found) == 0 {
		t.Fatalf("expected at least one particle near the densest part of the ring")
	}
	for _, p := range found {
		if p.Position.DistanceTo(center) > 60+p.Radius {
			t.Fatalf("ParticlesIn returned a particle outside the query sphere: %+v", p)
		}
	}
}

func TestRingSystemParticlesInEmptyFarFromRing(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	found := rs.ParticlesIn(Vector3{X: 1_000_000, Y: 0, Z: 0}, 50)
	if len(found) != 0 {
		t.Fatalf("expected no particles far outside the ring, got %d", len(found))
	}
}

func TestRingSystemCollidesMatchesParticlesIn(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	center := Vector3{X: 4000, Y: 0, Z: 0}
	gotCollides := rs.Collides(center, 60)
	gotParticles := len(rs.ParticlesIn(center, 60)) > 0
	if gotCollides != gotParticles {
		t.Fatalf("Collides (%v) disagrees with ParticlesIn (%v)", gotCollides, gotParticles)
	}
}

func TestRingSystemAddHoleRemovesCollisionsAtCentre(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	center := Vector3{X: 4000, Y: 0, Z: 0}
	if !rs.Collides(center, 5) {
		t.Skip("no particle generated near centre for this seed; hole behaviour covered by density_test.go instead")
	}
	rs.AddHole(center, 500)
	if rs.Collides(center, 5) {
		t.Fatalf("expected a hole to clear collisions at its centre")
	}
	rs.RemoveAllHoles()
	if !rs.Collides(center, 5) {
		t.Fatalf("RemoveAllHoles should restore the original density field")
	}
}

func TestRingSystemConfigureAppliesNewParams(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	rs.Configure(20, 2000, 6000, 0, 0.05)
	if rs.DensityAt(Vector3{X: 4000, Y: 0, Z: 0}) != 0 {
		t.Fatalf("expected zero density everywhere after configuring DensityMax to 0")
	}
}

func TestRingSystemConfigurePanicsOnInvalidParams(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	defer func() {
		if recover() == nil {
			t.Fatalf("expected Configure to panic on an invalid parameter set")
		}
	}()
	rs.Configure(20, 6000, 2000, 30, 0.05) // inner > outer
}

func TestRingSystemDrawOnlyVisitsParticlesWithinRenderDistance(t *testing.T) {
	rs := NewRingSystem(1, denseRingParams())
	camera := Vector3{X: 4000, Y: 0, Z: 0}
	var count int
	rs.Draw(camera, 1, 200, func(p RingParticle) {
		count++
		if p.Position.DistanceTo(camera) > 200 {
			t.Fatalf("Draw yielded a particle beyond renderDistance: %+v", p)
		}
	})
}
