package game

import (
	"math"
	"testing"
)

func TestOrreryRootPositionIsOrigin(t *testing.T) {
	o := NewOrrery()
	if got := o.PositionAt(-1, 5); got != (Vector3{}) {
		t.Fatalf("root position = %+v, want origin", got)
	}
}

func TestOrreryBodyStaysAtFixedRadiusFromParent(t *testing.T) {
	o := NewOrrery()
	moon := o.Add(-1, 1000, Vector3{X: 0, Y: 1, Z: 0}, 0.5, 0)
	for _, tm := range []float64{0, 1, 10, 100} {
		pos := o.PositionAt(moon, tm)
		if math.Abs(pos.Norm()-1000) > 1e-6 {
			t.Fatalf("at t=%v body drifted off its orbital radius: |pos|=%v", tm, pos.Norm())
		}
	}
}

func TestOrreryChainedEpicyclesOrbitMovingParent(t *testing.T) {
	o := NewOrrery()
	planet := o.Add(-1, 0, Vector3{X: 0, Y: 1, Z: 0}, 0, 0) // stationary at origin
	moon := o.Add(planet, 500, Vector3{X: 0, Y: 1, Z: 0}, 1, 0)
	station := o.Add(moon, 50, Vector3{X: 0, Y: 1, Z: 0}, 2, 0)

	moonPos := o.PositionAt(moon, 3)
	stationPos := o.PositionAt(station, 3)
	if math.Abs(stationPos.DistanceTo(moonPos)-50) > 1e-6 {
		t.Fatalf("station should stay 50 units from its moving parent, got distance %v", stationPos.DistanceTo(moonPos))
	}
}

func TestOrreryOutOfRangeIndexReturnsOrigin(t *testing.T) {
	o := NewOrrery()
	if got := o.PositionAt(99, 1); got != (Vector3{}) {
		t.Fatalf("out-of-range index should return origin, got %+v", got)
	}
}
