package game

import "math"

// RingHole is a spherical exclusion zone carved out of the ring, typically
// around a moon so ships can patrol without flying through particles.
type RingHole struct {
	Center Vector3
	Radius float64
}

// RingParams are the ring's shaping parameters (§4.E). Invariants: halfThickness
// ≥ 0, innerRadius ≥ 0, outerRadiusBase ≥ innerRadius, densityMax ≥ 0,
// densityFactor ∈ [0, 1].
type RingParams struct {
	HalfThickness   float64
	InnerRadius     float64
	OuterRadiusBase float64
	DensityMax      float64
	DensityFactor   float64
}

func (p RingParams) validate() {
	if p.HalfThickness < 0 {
		panic("game: ring half-thickness must be non-negative")
	}
	if p.InnerRadius < 0 {
		panic("game: ring inner radius must be non-negative")
	}
	if p.OuterRadiusBase < p.InnerRadius {
		panic("game: ring outer radius must be >= inner radius")
	}
	if p.DensityMax < 0 {
		panic("game: ring density max must be non-negative")
	}
	if p.DensityFactor < 0 || p.DensityFactor > 1 {
		panic("game: ring density factor must be in [0, 1]")
	}
}

// densityAt computes the expected particle density at p per §4.E: signed
// distances to the ring's edges, minus any configured holes, shaped by an
// atan saturation curve, perturbed by fractal noise, then clamped.
func densityAt(p Vector3, params RingParams, holes []RingHole) float64 {
	absXZ := math.Hypot(p.X, p.Z)

	dThickness := params.HalfThickness - math.Abs(p.Y)
	dInnerEdge := p.Norm() - params.InnerRadius

	d := math.Min(dThickness, dInnerEdge)
	if absXZ > params.OuterRadiusBase {
		outerExcess := absXZ - params.OuterRadiusBase
		dOuterEdge := params.HalfThickness - math.Sqrt(outerExcess*outerExcess+p.Y*p.Y)
		d = math.Min(d, dOuterEdge)
	}

	for _, h := range holes {
		dHole := p.DistanceTo(h.Center) - h.Radius
		if dHole < d {
			d = dHole
		}
	}

	s := math.Atan(d*params.DensityFactor) * (2.0 / math.Pi)
	sPrime := s + noise3(p.Scale(1.0/SectorEdge))*RingNoiseFactor

	if sPrime <= 0 {
		return 0
	}
	return sPrime * params.DensityMax
}
