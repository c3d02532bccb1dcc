package game

import "math"

// NoIntersection is the sentinel negative value intercept solvers return
// when no non-negative root exists.
const NoIntersection = -1.0e40

// BehaviourTag identifies the most recently invoked steering behaviour. A
// change of tag (or of explore/patrolSphere parameters) invalidates any
// stored goal; other transitions preserve it.
type BehaviourTag uint8

const (
	BehaviourNone BehaviourTag = iota
	BehaviourStop
	BehaviourArrive
	BehaviourSeek
	BehaviourFlee
	BehaviourPursue
	BehaviourEvade
	BehaviourAim
	BehaviourExplore
	BehaviourEscort
	BehaviourPatrolSphere
)

// agentView is the narrow slice of world state a steering kernel needs about
// the agent it controls, satisfied by *Ship (component J).
type agentView interface {
	IsAlive() bool
	Position() Vector3
	Forward() Vector3
	Up() Vector3
	Right() Vector3
	Velocity() Vector3
	SpeedMax() float64
	Acceleration() float64
}

// SteeringKernel is one instance per agent: an agent id, a last-behaviour
// tag, and auxiliary fields reused across ticks (§4.G).
type SteeringKernel struct {
	agentID ID
	tag     BehaviourTag
	rng     *Rand

	exploreGoal    Vector3
	exploreHasGoal bool
	exploreDMin    float64
	exploreDMax    float64

	patrolGoal      Vector3
	patrolHasGoal   bool
	patrolCenter    Vector3
	patrolRadius    float64
	patrolTolerance float64
}

func NewSteeringKernel(agentID ID, rng *Rand) *SteeringKernel {
	return &SteeringKernel{agentID: agentID, rng: rng}
}

func (k *SteeringKernel) setTag(tag BehaviourTag) {
	if k.tag != tag {
		k.exploreHasGoal = false
		k.patrolHasGoal = false
	}
	k.tag = tag
}

// Stop always returns zero.
func (k *SteeringKernel) Stop(agent agentView) Vector3 {
	k.setTag(BehaviourStop)
	return Vector3{}
}

// Seek returns the unit vector toward target scaled to the agent's max speed.
func (k *SteeringKernel) Seek(agent agentView, target Vector3) Vector3 {
	k.setTag(BehaviourSeek)
	if !agent.IsAlive() {
		return Vector3{}
	}
	return target.Sub(agent.Position()).Normalized().Scale(agent.SpeedMax())
}

// Flee is seek with the direction inverted.
func (k *SteeringKernel) Flee(agent agentView, target Vector3) Vector3 {
	k.setTag(BehaviourFlee)
	if !agent.IsAlive() {
		return Vector3{}
	}
	return target.Sub(agent.Position()).Normalized().Scale(-agent.SpeedMax())
}

// maxSafeSpeed returns the speed at which the agent can still stop within
// distance d given acceleration a, padded so discrete-time integration
// doesn't overshoot.
func maxSafeSpeed(d, a float64) float64 {
	if d <= 0 || a <= 0 {
		return 0
	}
	return math.Sqrt(2*d*a) / SteeringSlowDistancePaddingFactor
}

// Arrive decelerates toward target so as not to overshoot it.
func (k *SteeringKernel) Arrive(agent agentView, target Vector3) Vector3 {
	k.setTag(BehaviourArrive)
	if !agent.IsAlive() {
		return Vector3{}
	}
	dir := target.Sub(agent.Position())
	dist := dir.Norm()
	speed := math.Min(agent.SpeedMax(), maxSafeSpeed(dist, agent.Acceleration()))
	if dist < 1e-9 {
		return Vector3{}
	}
	return dir.Scale(speed / dist)
}

// interceptTimeStationary solves for a stationary target.
func interceptTimeStationary(agentPos Vector3, agentSpeed float64, targetPos Vector3) float64 {
	if agentSpeed <= 0 {
		return NoIntersection
	}
	return targetPos.DistanceTo(agentPos) / agentSpeed
}

// interceptTime solves |(target + targetVel*t) - agent| = agentSpeed*t for
// the smallest non-negative root, returning NoIntersection if none exists
// (§4.G intercept math).
func interceptTime(agentPos Vector3, agentSpeed float64, targetPos, targetVel Vector3) float64 {
	rel := targetPos.Sub(agentPos)
	a := targetVel.NormSquared() - agentSpeed*agentSpeed
	b := 2 * targetVel.Dot(rel)
	c := rel.NormSquared()

	if a == 0 {
		if b == 0 {
			return NoIntersection
		}
		t := -c / b
		if t >= 0 {
			return t
		}
		return NoIntersection
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return NoIntersection
	}
	sq := math.Sqrt(disc)
	t1 := (-b - sq) / (2 * a)
	t2 := (-b + sq) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	if t1 >= 0 {
		return t1
	}
	if t2 >= 0 {
		return t2
	}
	return NoIntersection
}

// aimDirection returns the normalised direction from start needed to launch
// a projectile of speed shotSpeed so it intercepts the moving target, or the
// zero vector if no solution exists.
func aimDirection(start Vector3, shotSpeed float64, targetPos, targetVel Vector3) Vector3 {
	t := interceptTime(start, shotSpeed, targetPos, targetVel)
	if t == NoIntersection {
		return Vector3{}
	}
	future := targetPos.Add(targetVel.Scale(t))
	return future.Sub(start).Normalized()
}

// Pursue computes the intercept direction toward a moving target; if no
// solution exists, it falls back to the target's own heading.
func (k *SteeringKernel) Pursue(agent agentView, targetPos, targetVel Vector3) Vector3 {
	k.setTag(BehaviourPursue)
	if !agent.IsAlive() {
		return Vector3{}
	}
	dir := aimDirection(agent.Position(), agent.SpeedMax(), targetPos, targetVel)
	if dir.IsZero() {
		fallback := targetVel.Normalized()
		if fallback.IsZero() {
			return Vector3{}
		}
		return fallback.Scale(agent.SpeedMax())
	}
	return dir.Scale(agent.SpeedMax())
}

// Evade is pursue with the sign inverted.
func (k *SteeringKernel) Evade(agent agentView, targetPos, targetVel Vector3) Vector3 {
	v := k.Pursue(agent, targetPos, targetVel)
	k.tag = BehaviourEvade
	return v.Neg()
}

// Aim returns a desired velocity aligned with the direction needed to launch
// a projectile of shotSpeed so it intercepts the target.
func (k *SteeringKernel) Aim(agent agentView, shotSpeed float64, targetPos, targetVel Vector3) Vector3 {
	k.setTag(BehaviourAim)
	if !agent.IsAlive() {
		return Vector3{}
	}
	dir := aimDirection(agent.Position(), shotSpeed, targetPos, targetVel)
	return dir.Scale(agent.SpeedMax())
}

// Explore maintains a wander goal on a spherical shell of radius in
// [dMin, dMax] around the agent, reselecting it once reached.
func (k *SteeringKernel) Explore(agent agentView, dMin, dMax float64) Vector3 {
	if k.tag != BehaviourExplore || k.exploreDMin != dMin || k.exploreDMax != dMax {
		k.exploreHasGoal = false
	}
	k.tag = BehaviourExplore
	k.exploreDMin, k.exploreDMax = dMin, dMax
	if !agent.IsAlive() {
		return Vector3{}
	}

	pos := agent.Position()
	if !k.exploreHasGoal || k.exploreGoal.DistanceTo(pos) < SteeringExploreDistanceNewPos {
		k.exploreGoal = k.pickExploreGoal(pos, dMin, dMax)
		k.exploreHasGoal = true
	}
	// Seek inline: calling k.Seek would switch the tag and drop the goal.
	return k.exploreGoal.Sub(pos).Normalized().Scale(agent.SpeedMax())
}

func (k *SteeringKernel) pickExploreGoal(pos Vector3, dMin, dMax float64) Vector3 {
	for i := 0; i < exploreRetryLimit; i++ {
		radius := k.rng.RangeF(dMin, dMax)
		candidate := pos.Add(k.rng.RandomPointOnSphere(radius))
		if candidate.DistanceTo(pos) > SteeringExploreDistanceNewPos {
			return candidate
		}
	}
	mid := (dMin + dMax) / 2
	return pos.Add(k.rng.RandomPointOnSphere(mid))
}

// Escort computes a target-relative escort point and arrives at it, then
// adds the target's own velocity and truncates to the agent's max speed.
func (k *SteeringKernel) Escort(agent agentView, targetPos, targetVel, targetForward, targetUp, targetRight Vector3, offset Vector3) Vector3 {
	k.setTag(BehaviourEscort)
	if !agent.IsAlive() {
		return Vector3{}
	}
	escortPoint := targetPos.
		Add(targetForward.Scale(offset.X)).
		Add(targetUp.Scale(offset.Y)).
		Add(targetRight.Scale(offset.Z))
	v := k.Arrive(agent, escortPoint)
	k.tag = BehaviourEscort
	return v.Add(targetVel).Truncate(agent.SpeedMax())
}

// PatrolSphere maintains a goal on a sphere of the given radius about centre,
// blending a radial correction with tangential movement toward the goal.
func (k *SteeringKernel) PatrolSphere(agent agentView, centre Vector3, radius, tolerance float64) Vector3 {
	if k.tag != BehaviourPatrolSphere || !veq(k.patrolCenter, centre) || k.patrolRadius != radius || k.patrolTolerance != tolerance {
		k.patrolHasGoal = false
	}
	k.tag = BehaviourPatrolSphere
	k.patrolCenter, k.patrolRadius, k.patrolTolerance = centre, radius, tolerance
	if !agent.IsAlive() {
		return Vector3{}
	}

	pos := agent.Position()
	rel := pos.Sub(centre)
	distFromCentre := rel.Norm()

	if !k.patrolHasGoal {
		k.patrolGoal = centre.Add(k.rng.RandomPointOnSphere(radius))
		k.patrolHasGoal = true
	} else {
		var onSphere Vector3
		if distFromCentre > 1e-9 {
			onSphere = centre.Add(rel.Scale(radius / distFromCentre))
		} else {
			onSphere = centre.Add(Vector3{X: radius})
		}
		if onSphere.DistanceTo(k.patrolGoal) < SteeringExploreDistanceNewPos {
			k.patrolGoal = centre.Add(k.rng.RandomPointOnSphere(radius))
		}
	}

	radialErr := clampF((distFromCentre-radius)/tolerance, -1, 1)
	radialWeight := radialErr * math.Abs(radialErr)

	var radialDir Vector3
	if distFromCentre > 1e-9 {
		radialDir = rel.Scale(-1.0 / distFromCentre) // toward centre when too far out
	}
	tangential := k.patrolGoal.Sub(pos).Normalized()

	composite := radialDir.Scale(radialWeight).Add(tangential.Scale(1 - math.Abs(radialWeight)))
	return composite.Normalized().Scale(agent.SpeedMax())
}

func veq(a, b Vector3) bool { return a.X == b.X && a.Y == b.Y && a.Z == b.Z }

// Avoid is the obstacle-avoidance filter described in §4.G. It is composable:
// a tick typically computes a base desired velocity, then applies Avoid
// against several obstacles in sequence.
func (k *SteeringKernel) Avoid(agent agentView, original Vector3, sphereCenter Vector3, sphereRadius, clearance, avoidDistance float64) Vector3 {
	if !agent.IsAlive() || original.IsZero() {
		return Vector3{}
	}
	pos := agent.Position()
	toObstacle := sphereCenter.Sub(pos)
	agentRadius := ShipRadius
	dist := toObstacle.Norm()

	if dist > agentRadius+sphereRadius+avoidDistance {
		return original.Truncate(agent.SpeedMax())
	}

	forward := agent.Forward()
	if toObstacle.Dot(forward) < 0 {
		// Obstacle is behind: the agent is departing.
		if dist < agentRadius+sphereRadius+clearance {
			fleeDir := pos.Sub(sphereCenter).Normalized()
			origDir := original.Normalized()
			proximity := 1 - clampF((dist-(agentRadius+sphereRadius))/clearance, 0, 1)
			blended := fleeDir.Scale(proximity).Add(origDir.Scale(1 - proximity)).Normalized()
			speedFactor := math.Max(SteeringAvoidSpeedFactorMin, 1-proximity)
			return blended.Scale(agent.SpeedMax() * speedFactor)
		}
		return original.Truncate(agent.SpeedMax())
	}

	// Obstacle is ahead: measure the forward-perpendicular (cylinder) distance.
	alongForward := toObstacle.Dot(forward)
	lateral := toObstacle.Sub(forward.Scale(alongForward))
	lateralDist := lateral.Norm()
	clearanceNeeded := agentRadius + sphereRadius + clearance
	if lateralDist > clearanceNeeded {
		return original.Truncate(agent.SpeedMax())
	}

	var sideways Vector3
	if lateralDist > SteeringAvoidSidewaysNormMin {
		sideways = lateral.Scale(-1.0 / lateralDist)
	} else {
		sideways = k.rng.RandomUnitVector()
	}

	fraction := clampF(1-lateralDist/clearanceNeeded, 0, 1)
	origDir := original.Normalized()
	blended := origDir.Scale(1 - fraction).Add(sideways.Scale(fraction)).Normalized()
	return blended.Scale(agent.SpeedMax())
}
