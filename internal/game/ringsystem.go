package game

import "math"

// DrawHaloRadius is the default ±N sector halo iterated by draw (§4.F, §6).
const DrawHaloRadius = 4

// RingParticle is fully derived from (position, seed): radius, material, and
// orientation are all deterministic functions of the Worley point that
// produced it.
type RingParticle struct {
	Position     Vector3
	Radius       float64
	MaterialIdx  int
	OrientAxis   Vector3
	OrientAngle  float64
}

// ParticleSummary is the data exposed to collision and AI queries.
type ParticleSummary struct {
	Position Vector3
	Radius   float64
}

// RingSystem composes the sector geometry (D), density field (E), Worley
// sampler (B), and noise (C) into a deterministic, infinite, query-on-demand
// particle generator. It owns its seed state and generators; it owns no
// particles (§3 Ownership).
type RingSystem struct {
	sampler WorleySampler3
	params  RingParams
	holes   []RingHole
}

func NewRingSystem(runSeed uint64, params RingParams) *RingSystem {
	params.validate()
	return &RingSystem{
		sampler: NewWorleySampler3(NewPseudorandomGrid3Seeded(runSeed)),
		params:  params,
	}
}

// DensityAt returns the analytic density at p (particles expected per sector
// volume containing p).
func (rs *RingSystem) DensityAt(p Vector3) float64 {
	return densityAt(p, rs.params, rs.holes)
}

// Configure replaces the ring's shaping parameters. Per §5, this is a
// between-tick mutation only; it never runs mid-tick.
func (rs *RingSystem) Configure(halfThickness, innerRadius, outerRadiusBase, densityMax, densityFactor float64) {
	params := RingParams{
		HalfThickness:   halfThickness,
		InnerRadius:     innerRadius,
		OuterRadiusBase: outerRadiusBase,
		DensityMax:      densityMax,
		DensityFactor:   densityFactor,
	}
	params.validate()
	rs.params = params
}

func (rs *RingSystem) AddHole(center Vector3, radius float64) {
	if radius < 0 {
		panic("game: ring hole radius must be non-negative")
	}
	rs.holes = append(rs.holes, RingHole{Center: center, Radius: radius})
}

func (rs *RingSystem) RemoveAllHoles() {
	rs.holes = rs.holes[:0]
}

// particlesInSector regenerates the particles belonging to sector idx. Pure:
// two calls with identical idx and parameters are bit-identical (§4.F, §8).
func (rs *RingSystem) particlesInSector(idx SectorIndex) []RingParticle {
	if !idx.InRange() {
		panic("game: sector index out of ±32,767 range")
	}
	center := idx.CenterOf()
	density := rs.DensityAt(center)
	n := int(math.Round(density))
	if n <= 0 {
		return nil
	}
	points := rs.sampler.GetPoints(n, idx.X, idx.Y, idx.Z)
	particles := make([]RingParticle, len(points))
	for i, pt := range points {
		pos := Vector3{X: pt.X * SectorEdge, Y: pt.Y * SectorEdge, Z: pt.Z * SectorEdge}
		particles[i] = particleFromSeed(pos, pt.Seed)
	}
	return particles
}

// particleFromSeed derives a particle's visual properties deterministically
// from its per-point seed, advancing the xorshift stepper for each field.
func particleFromSeed(pos Vector3, seed uint32) RingParticle {
	a := seed
	a = nextPseudorandom(a)
	radiusFrac := float64(a) * scaleTo01
	radius := 0.5 + radiusFrac*4.5 // monotonic function of the hash-derived value

	a = nextPseudorandom(a)
	material := int(a % 20)

	a = nextPseudorandom(a)
	ax := float64(a)*scaleTo01*2 - 1
	a = nextPseudorandom(a)
	ay := float64(a)*scaleTo01*2 - 1
	a = nextPseudorandom(a)
	az := float64(a)*scaleTo01*2 - 1
	axis := Vector3{ax, ay, az}.Normalized()
	if axis.IsZero() {
		axis = Vector3{X: 0, Y: 1, Z: 0}
	}

	a = nextPseudorandom(a)
	angle := float64(a) * scaleTo01 * 2 * math.Pi

	return RingParticle{
		Position:    pos,
		Radius:      radius,
		MaterialIdx: material,
		OrientAxis:  axis,
		OrientAngle: angle,
	}
}

// forEachSectorInSphere iterates every sector overlapped by the query
// sphere's axis-aligned bounding box (a single sector for a small sphere
// well inside one).
func forEachSectorInSphere(center Vector3, radius float64, fn func(SectorIndex)) {
	minIdx := SectorOf(center.Sub(Vector3{radius, radius, radius}))
	maxIdx := SectorOf(center.Add(Vector3{radius, radius, radius}))
	for x := minIdx.X; x <= maxIdx.X; x++ {
		for y := minIdx.Y; y <= maxIdx.Y; y++ {
			for z := minIdx.Z; z <= maxIdx.Z; z++ {
				fn(SectorIndex{x, y, z})
			}
		}
	}
}

// ParticlesIn returns exact particle data for every particle whose bounding
// sphere intersects the query sphere, pruning first by sector then by
// sphere-vs-sphere (§4.F).
func (rs *RingSystem) ParticlesIn(sphereCenter Vector3, sphereRadius float64) []ParticleSummary {
	if sphereRadius < 0 {
		panic("game: negative query radius")
	}
	var out []ParticleSummary
	half := Vector3{SectorEdge / 2, SectorEdge / 2, SectorEdge / 2}
	forEachSectorInSphere(sphereCenter, sphereRadius, func(idx SectorIndex) {
		if !sphereVsCuboid(sphereCenter, sphereRadius, idx.CenterOf(), half) {
			return
		}
		for _, pt := range rs.particlesInSector(idx) {
			if sphereVsSphere(sphereCenter, sphereRadius, pt.Position, pt.Radius) {
				out = append(out, ParticleSummary{Position: pt.Position, Radius: pt.Radius})
			}
		}
	})
	return out
}

// Collides is the short-circuit variant of ParticlesIn.
func (rs *RingSystem) Collides(sphereCenter Vector3, sphereRadius float64) bool {
	if sphereRadius < 0 {
		panic("game: negative query radius")
	}
	found := false
	half := Vector3{SectorEdge / 2, SectorEdge / 2, SectorEdge / 2}
	forEachSectorInSphere(sphereCenter, sphereRadius, func(idx SectorIndex) {
		if found || !sphereVsCuboid(sphereCenter, sphereRadius, idx.CenterOf(), half) {
			return
		}
		for _, pt := range rs.particlesInSector(idx) {
			if sphereVsSphere(sphereCenter, sphereRadius, pt.Position, pt.Radius) {
				found = true
				return
			}
		}
	})
	return found
}

// Draw iterates a ±haloSectors sector halo around the camera's sector,
// regenerating sector particles on the fly, and invokes fn for each particle
// within renderDistance of cameraCoords. It never mutates ring state.
func (rs *RingSystem) Draw(cameraCoords Vector3, haloSectors int, renderDistance float64, fn func(RingParticle)) {
	center := SectorOf(cameraCoords)
	r2 := renderDistance * renderDistance
	for dx := -haloSectors; dx <= haloSectors; dx++ {
		for dy := -haloSectors; dy <= haloSectors; dy++ {
			for dz := -haloSectors; dz <= haloSectors; dz++ {
				idx := SectorIndex{center.X + int32(dx), center.Y + int32(dy), center.Z + int32(dz)}
				for _, pt := range rs.particlesInSector(idx) {
					if pt.Position.DistSquared(cameraCoords) <= r2 {
						fn(pt)
					}
				}
			}
		}
	}
}
