package game

// Body is the kinematic state shared by every physical entity in the
// simulation: position, an orthonormal basis (forward/up/right), velocity,
// a collision radius, and the previous tick's position for sweep tests and
// death-explosion placement (§3 Kinematic body).
//
// Invariants (§8): Forward/Up/Right stay unit length and mutually
// orthogonal; Radius is never negative; whenever Velocity is non-zero its
// direction matches Forward.
type Body struct {
	Position     Vector3
	PrevPosition Vector3
	Forward      Vector3
	Up           Vector3
	Right        Vector3
	Velocity     Vector3
	Radius       float64

	DisplayHandle int
	DisplayScale  float64
}

// NewBody constructs a body at pos facing forward, deriving an orthonormal
// up/right pair from a world-up hint.
func NewBody(pos Vector3, forward Vector3, radius float64) Body {
	f := forward.Normalized()
	if f.IsZero() {
		f = Vector3{X: 0, Y: 0, Z: 1}
	}
	worldUp := Vector3{X: 0, Y: 1, Z: 0}
	right := f.Cross(worldUp)
	if right.IsZero() {
		worldUp = Vector3{X: 1, Y: 0, Z: 0}
		right = f.Cross(worldUp)
	}
	right = right.Normalized()
	up := right.Cross(f).Normalized()
	return Body{
		Position:     pos,
		PrevPosition: pos,
		Forward:      f,
		Up:           up,
		Right:        right,
		Radius:       radius,
		DisplayScale: 1.0,
	}
}

// SetSpeed rescales Velocity to the given magnitude along the current
// Forward direction, preserving heading (§3).
func (b *Body) SetSpeed(speed float64) {
	b.Velocity = b.Forward.Scale(speed)
}

// Speed returns the current velocity magnitude.
func (b *Body) Speed() float64 {
	return b.Velocity.Norm()
}

// Face reorients the basis so Forward points toward dir, re-deriving an
// orthonormal up/right pair. A zero dir is a no-op.
func (b *Body) Face(dir Vector3) {
	f := dir.Normalized()
	if f.IsZero() {
		return
	}
	right := f.Cross(b.Up)
	if right.IsZero() {
		right = f.Cross(b.Right)
	}
	if right.IsZero() {
		return
	}
	right = right.Normalized()
	up := right.Cross(f).Normalized()
	b.Forward, b.Up, b.Right = f, up, right
}

// Integrate advances Position by Velocity*dt, recording the pre-step
// position as PrevPosition (§4.M step 1).
func (b *Body) Integrate(dt float64) {
	b.PrevPosition = b.Position
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
}
