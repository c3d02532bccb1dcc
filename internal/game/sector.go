package game

import "math"

// SectorEdge is the module constant S: the edge length of a ring sector.
const SectorEdge = 500.0

// SectorIndex identifies a ring sector by its integer coordinates. Indices
// must fit in 16-bit signed integers per axis; worlds at scales exceeding
// ±32,767 sectors must refuse with a range error rather than wrap silently.
type SectorIndex struct {
	X, Y, Z int32
}

// SectorOf maps a world position to the sector index containing it.
func SectorOf(p Vector3) SectorIndex {
	return SectorIndex{
		X: int32(floorDiv64(p.X, SectorEdge)),
		Y: int32(floorDiv64(p.Y, SectorEdge)),
		Z: int32(floorDiv64(p.Z, SectorEdge)),
	}
}

func floorDiv64(v, edge float64) int64 {
	return int64(math.Floor(v / edge))
}

// CenterOf returns the world-space centre of a sector.
func (s SectorIndex) CenterOf() Vector3 {
	return Vector3{
		X: (float64(s.X) + 0.5) * SectorEdge,
		Y: (float64(s.Y) + 0.5) * SectorEdge,
		Z: (float64(s.Z) + 0.5) * SectorEdge,
	}
}

// InRange reports whether the index fits in a signed 16-bit value per axis.
func (s SectorIndex) InRange() bool {
	const lo, hi = -32768, 32767
	return s.X >= lo && s.X <= hi && s.Y >= lo && s.Y <= hi && s.Z >= lo && s.Z <= hi
}

// sphereVsCuboid is the standard axis-separating test: clamp the sphere's
// centre into the cuboid, then compare squared distance against radius².
func sphereVsCuboid(center Vector3, radius float64, cuboidCenter, cuboidHalfSize Vector3) bool {
	cx := clampF(center.X, cuboidCenter.X-cuboidHalfSize.X, cuboidCenter.X+cuboidHalfSize.X)
	cy := clampF(center.Y, cuboidCenter.Y-cuboidHalfSize.Y, cuboidCenter.Y+cuboidHalfSize.Y)
	cz := clampF(center.Z, cuboidCenter.Z-cuboidHalfSize.Z, cuboidCenter.Z+cuboidHalfSize.Z)
	closest := Vector3{cx, cy, cz}
	return closest.DistSquared(center) <= radius*radius
}

// sphereVsSphere is a pure squared-distance comparison, used throughout
// collision resolution (§4.M).
func sphereVsSphere(aCenter Vector3, aRadius float64, bCenter Vector3, bRadius float64) bool {
	rr := aRadius + bRadius
	return aCenter.DistSquared(bCenter) <= rr*rr
}
