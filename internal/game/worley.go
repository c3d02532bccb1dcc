package game

// scaleTo01 maps a full-range uint32 to [0, 1), matching the source's
// 1/(2^32) scale constant exactly.
const scaleTo01 = 1.0 / 4294967296.0

// WorleyPoint3 is a point produced inside a ring sector's cell: its
// coordinates are in cell units (the cell's integer origin plus a fractional
// offset in [0, 1)), plus a per-point seed usable to derive further properties
// deterministically (radius, material, orientation).
type WorleyPoint3 struct {
	X, Y, Z float64
	Seed    uint32
}

// WorleySampler3 is a lazy enumerator of Worley points seeded from the
// pseudorandom grid (A). It owns no state beyond its seed configuration.
type WorleySampler3 struct {
	grid PseudorandomGrid3
}

func NewWorleySampler3(grid PseudorandomGrid3) WorleySampler3 {
	return WorleySampler3{grid: grid}
}

// GetPoints returns exactly count points seeded from cell (cx, cy, cz), with
// coordinates in global space (cell origin + fractional offset). Generation
// seeds the xorshift stepper from the cell's hash, then for each point draws
// one word per axis plus a trailing per-point seed word, in that order.
func (s WorleySampler3) GetPoints(count int, cx, cy, cz int32) []WorleyPoint3 {
	if count <= 0 {
		return nil
	}
	a := s.grid.Hash(cx, cy, cz)
	points := make([]WorleyPoint3, count)
	ox, oy, oz := float64(cx), float64(cy), float64(cz)
	for i := 0; i < count; i++ {
		a = nextPseudorandom(a)
		fx := float64(a) * scaleTo01
		a = nextPseudorandom(a)
		fy := float64(a) * scaleTo01
		a = nextPseudorandom(a)
		fz := float64(a) * scaleTo01
		a = nextPseudorandom(a)
		points[i] = WorleyPoint3{X: ox + fx, Y: oy + fy, Z: oz + fz, Seed: a}
	}
	return points
}
