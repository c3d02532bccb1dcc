package game

import "math"

// noise periods in incommensurate ratios 1 : sqrt(2) : sqrt(3), per §4.C.
const (
	noisePeriodX = 1.0
	noisePeriodY = math.Sqrt2
	noisePeriodZ = 1.7320508075688772 // sqrt(3)
)

// noise3 is the reference fractal-noise stand-in: a position-to-scalar
// function in [-1, 1] with zero mean and reproducible values, built from
// three incommensurate sine waves. A true Perlin implementation with the
// same range, mean, and stability may be substituted without changing any
// caller's behaviour.
func noise3(p Vector3) float64 {
	a := math.Sin(p.X * 2 * math.Pi / noisePeriodX)
	b := math.Sin(p.Y * 2 * math.Pi / noisePeriodY)
	c := math.Sin(p.Z * 2 * math.Pi / noisePeriodZ)
	// Cross terms keep the three axes from decoupling into independent 1D
	// ripples; the average of the four bounded sinusoids stays in [-1, 1].
	return (a + b + c + math.Sin((p.X+p.Y+p.Z)*2*math.Pi/(noisePeriodX+noisePeriodY+noisePeriodZ))) / 4
}
