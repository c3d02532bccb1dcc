package game

// Default seed constants for the pseudorandom grid, carried over unchanged
// from the source so that worlds generated under the default seed set match
// bit-for-bit across implementations.
const (
	seedQuad0Default uint32 = 0xf1fbc75f
	seedQuad1Default uint32 = 0xd8ba099c
	seedQuad2Default uint32 = 0xaddf0d81

	seedX1Default uint32 = 0x89705ede
	seedX2Default uint32 = 0xddc2c9ad
	seedY1Default uint32 = 0x4aa37110
	seedY2Default uint32 = 0x50b5ca14
	seedZ1Default uint32 = 0x3e053df9
	seedZ2Default uint32 = 0xda74198f
)

// PseudorandomGrid3 produces a uniform 32-bit hash for every point on the
// integer 3D lattice. All arithmetic wraps at 32 bits; the hash is pure,
// constant-time, and reproducible between runs given equal seeds (§4.A).
type PseudorandomGrid3 struct {
	seed0, seed1, seed2    uint32
	seedX1, seedX2         uint32
	seedY1, seedY2         uint32
	seedZ1, seedZ2         uint32
}

// NewPseudorandomGrid3 returns a grid seeded with the default constants.
func NewPseudorandomGrid3() PseudorandomGrid3 {
	return PseudorandomGrid3{
		seed0: seedQuad0Default, seed1: seedQuad1Default, seed2: seedQuad2Default,
		seedX1: seedX1Default, seedX2: seedX2Default,
		seedY1: seedY1Default, seedY2: seedY2Default,
		seedZ1: seedZ1Default, seedZ2: seedZ2Default,
	}
}

// NewPseudorandomGrid3Seeded derives a full seed set from a single run seed,
// so a whole simulation reproduces from one number while each axis still
// carries distinct seed material.
func NewPseudorandomGrid3Seeded(runSeed uint64) PseudorandomGrid3 {
	r := NewRand(runSeed)
	return PseudorandomGrid3{
		seed0: uint32(r.NextU64()), seed1: uint32(r.NextU64()), seed2: uint32(r.NextU64()),
		seedX1: uint32(r.NextU64()), seedX2: uint32(r.NextU64()),
		seedY1: uint32(r.NextU64()), seedY2: uint32(r.NextU64()),
		seedZ1: uint32(r.NextU64()), seedZ2: uint32(r.NextU64()),
	}
}

// Hash returns the pseudorandom value at lattice point (x, y, z).
func (g PseudorandomGrid3) Hash(x, y, z int32) uint32 {
	ux, uy, uz := uint32(x), uint32(y), uint32(z)
	n := (g.seedX1 * ux) ^ (g.seedY1 * uy) ^ (g.seedZ1 * uz)
	return (((g.seed2*n)^g.seed1)*n)^g.seed0 ^
		(ux * g.seedX2) ^
		(uy * g.seedY2) ^
		(uz * g.seedZ2)
}

// nextPseudorandom advances an in-hand seed with the xorshift-13/17/5
// stepper and returns the new value. The constants are fixed by the spec for
// bit-exact reproducibility.
func nextPseudorandom(a uint32) uint32 {
	a ^= a << 13
	a ^= a >> 17
	a ^= a << 5
	return a
}
