package game

import "testing"

func midRingParams() RingParams {
	return RingParams{
		HalfThickness:   20,
		InnerRadius:     2000,
		OuterRadiusBase: 6000,
		DensityMax:      30,
		DensityFactor:   0.05,
	}
}

func TestDensityZeroFarOutsideRing(t *testing.T) {
	p := midRingParams()
	d := densityAt(Vector3{X: 100000, Y: 0, Z: 0}, p, nil)
	if d != 0 {
		t.Fatalf("expected zero density far outside the ring, got %v", d)
	}
}

func TestDensityZeroAboveThickness(t *testing.T) {
	p := midRingParams()
	d := densityAt(Vector3{X: 3000, Y: 1000, Z: 0}, p, nil)
	if d != 0 {
		t.Fatalf("expected zero density far above the ring plane, got %v", d)
	}
}

func TestDensityNonNegative(t *testing.T) {
	p := midRingParams()
	pts := []Vector3{
		{X: 0, Y: 0, Z: 0},
		{X: 2000, Y: 0, Z: 0},
		{X: 4000, Y: 0, Z: 0},
		{X: 6500, Y: 0, Z: 0},
		{X: 3000, Y: 15, Z: 1000},
	}
	for _, pt := range pts {
		if densityAt(pt, p, nil) < 0 {
			t.Fatalf("density went negative at %+v", pt)
		}
	}
}

func TestDensityHoleSubtractsMass(t *testing.T) {
	p := midRingParams()
	at := Vector3{X: 4000, Y: 0, Z: 0}
	withoutHole := densityAt(at, p, nil)
	holes := []RingHole{{Center: at, Radius: 500}}
	withHole := densityAt(at, p, holes)
	if withHole > withoutHole {
		t.Fatalf("hole increased density: %v > %v", withHole, withoutHole)
	}
	if withHole != 0 {
		t.Fatalf("expected zero density at the centre of a hole, got %v", withHole)
	}
}

func TestRingParamsValidatePanicsOnBadInput(t *testing.T) {
	cases := []RingParams{
		{HalfThickness: -1, InnerRadius: 10, OuterRadiusBase: 20, DensityMax: 1, DensityFactor: 1},
		{HalfThickness: 1, InnerRadius: -10, OuterRadiusBase: 20, DensityMax: 1, DensityFactor: 1},
		{HalfThickness: 1, InnerRadius: 30, OuterRadiusBase: 20, DensityMax: 1, DensityFactor: 1},
		{HalfThickness: 1, InnerRadius: 10, OuterRadiusBase: 20, DensityMax: -1, DensityFactor: 1},
		{HalfThickness: 1, InnerRadius: 10, OuterRadiusBase: 20, DensityMax: 1, DensityFactor: -1},
	}
	for i, c := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("case %d: expected validate() to panic", i)
				}
			}()
			c.validate()
		}()
	}
}
