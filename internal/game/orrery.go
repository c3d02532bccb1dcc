package game

// OrreryBody is one term of the epicycle sum: it orbits Parent at Radius
// about Axis with angular speed Speed, phase-offset by Phase.
type OrreryBody struct {
	Parent int // index into Orrery.Bodies, or -1 for the root (the planet)
	Radius float64
	Axis   Vector3
	Speed  float64
	Phase  float64
}

// Orrery is the deterministic sum-of-epicycles clock that gives each of its
// bodies a position at simulation time t: each body orbits its parent
// body's *current* position, so a chain of bodies composes into nested
// circular motion (§3 Orrery).
type Orrery struct {
	Bodies []OrreryBody
}

func NewOrrery() *Orrery {
	return &Orrery{}
}

// Add appends a body orbiting parent (-1 for the root) and returns its index.
func (o *Orrery) Add(parent int, radius float64, axis Vector3, speed, phase float64) int {
	axis = axis.Normalized()
	if axis.IsZero() {
		axis = Vector3{X: 0, Y: 1, Z: 0}
	}
	o.Bodies = append(o.Bodies, OrreryBody{
		Parent: parent,
		Radius: radius,
		Axis:   axis,
		Speed:  speed,
		Phase:  phase,
	})
	return len(o.Bodies) - 1
}

// PositionAt returns body i's world position at time t, recursively summing
// its ancestors' positions via Rodrigues rotation about each body's own
// axis (§4 Data Model: Orrery).
func (o *Orrery) PositionAt(i int, t float64) Vector3 {
	if i < 0 || i >= len(o.Bodies) {
		return Vector3{}
	}
	b := o.Bodies[i]
	center := o.PositionAt(b.Parent, t)
	angle := b.Speed*t + b.Phase

	reference := orthogonalTo(b.Axis).Scale(b.Radius)
	offset := reference.RotatedAbout(b.Axis, angle)
	return center.Add(offset)
}

// orthogonalTo returns an arbitrary unit vector orthogonal to axis, used as
// the zero-phase reference radius for an orbit.
func orthogonalTo(axis Vector3) Vector3 {
	hint := Vector3{X: 0, Y: 1, Z: 0}
	perp := axis.Cross(hint)
	if perp.IsZero() {
		hint = Vector3{X: 1, Y: 0, Z: 0}
		perp = axis.Cross(hint)
	}
	return perp.Normalized()
}
