package game

import (
	"math"
	"testing"
)

// testAgent is a minimal agentView stand-in so steering behaviours can be
// tested without constructing a full Ship.
type testAgent struct {
	alive    bool
	pos      Vector3
	forward  Vector3
	up       Vector3
	right    Vector3
	velocity Vector3
	speedMax float64
	accel    float64
}

func (a *testAgent) IsAlive() bool        { return a.alive }
func (a *testAgent) Position() Vector3    { return a.pos }
func (a *testAgent) Forward() Vector3     { return a.forward }
func (a *testAgent) Up() Vector3          { return a.up }
func (a *testAgent) Right() Vector3       { return a.right }
func (a *testAgent) Velocity() Vector3    { return a.velocity }
func (a *testAgent) SpeedMax() float64    { return a.speedMax }
func (a *testAgent) Acceleration() float64 { return a.accel }

func newTestAgent() *testAgent {
	return &testAgent{
		alive:    true,
		forward:  Vector3{X: 0, Y: 0, Z: 1},
		up:       Vector3{X: 0, Y: 1, Z: 0},
		right:    Vector3{X: 1, Y: 0, Z: 0},
		speedMax: 100,
		accel:    50,
	}
}

func TestStopIsAlwaysZero(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(1))
	a := newTestAgent()
	v := k.Stop(a)
	if !v.IsZero() {
		t.Fatalf("Stop returned %+v, want zero", v)
	}
}

func TestSeekPointsTowardTargetAtMaxSpeed(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(1))
	a := newTestAgent()
	v := k.Seek(a, Vector3{X: 0, Y: 0, Z: 50})
	if math.Abs(v.Norm()-a.speedMax) > 1e-9 {
		t.Fatalf("seek speed = %v, want %v", v.Norm(), a.speedMax)
	}
	if v.X != 0 || v.Y != 0 || v.Z <= 0 {
		t.Fatalf("seek direction wrong: %+v", v)
	}
}

func TestFleeIsOppositeOfSeek(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(1))
	a := newTestAgent()
	target := Vector3{X: 0, Y: 0, Z: 50}
	seek := k.Seek(a, target)
	flee := k.Flee(a, target)
	sum := seek.Add(flee)
	if sum.Norm() > 1e-9 {
		t.Fatalf("seek + flee should cancel, got %+v", sum)
	}
}

func TestArriveSlowsNearTarget(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(1))
	a := newTestAgent()
	far := k.Arrive(a, Vector3{X: 0, Y: 0, Z: 10000})
	near := k.Arrive(a, Vector3{X: 0, Y: 0, Z: 1})
	if near.Norm() >= far.Norm() {
		t.Fatalf("arrive should slow down close to the target: near=%v far=%v", near.Norm(), far.Norm())
	}
}

func TestInterceptTimeStationaryMatchesDistanceOverSpeed(t *testing.T) {
	agentPos := Vector3{}
	targetPos := Vector3{X: 0, Y: 0, Z: 100}
	got := interceptTime(agentPos, 10, targetPos, Vector3{})
	want := 10.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("interceptTime (stationary) = %v, want %v", got, want)
	}
}

func TestInterceptTimeClosingTarget(t *testing.T) {
	// Target closing on the agent head-on: agent at origin, speed 10;
	// target at (100,0,0) moving at (-5,0,0).
	agentPos := Vector3{}
	targetPos := Vector3{X: 100, Y: 0, Z: 0}
	targetVel := Vector3{X: -5, Y: 0, Z: 0}
	got := interceptTime(agentPos, 10, targetPos, targetVel)
	want := 100.0 / 15.0 // 6.6667
	if math.Abs(got-want) > 1e-3 {
		t.Fatalf("interceptTime (closing target) = %v, want %v", got, want)
	}
}

func TestInterceptTimeUnreachableTarget(t *testing.T) {
	// Target outruns a slower agent directly away: no solution exists.
	agentPos := Vector3{}
	targetPos := Vector3{X: 0, Y: 0, Z: 100}
	targetVel := Vector3{X: 0, Y: 0, Z: 50}
	got := interceptTime(agentPos, 10, targetPos, targetVel)
	if got != NoIntersection {
		t.Fatalf("expected no intersection, got %v", got)
	}
}

func TestAimDirectionIntercepts(t *testing.T) {
	agentPos := Vector3{}
	targetPos := Vector3{X: 100, Y: 0, Z: 0}
	targetVel := Vector3{X: 0, Y: 0, Z: 20}
	shotSpeed := 50.0
	dir := aimDirection(agentPos, shotSpeed, targetPos, targetVel)
	if dir.IsZero() {
		t.Fatalf("expected a solution")
	}
	t_ := interceptTime(agentPos, shotSpeed, targetPos, targetVel)
	future := targetPos.Add(targetVel.Scale(t_))
	gotDir := future.Normalized()
	if future.Norm() > 1e-9 && dir.DistanceTo(gotDir) > 1e-6 {
		t.Fatalf("aim direction %+v does not match predicted intercept point direction %+v", dir, gotDir)
	}
}

func TestAvoidSteersAroundObstacleAhead(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(7))
	a := newTestAgent()
	original := Vector3{X: 0, Y: 0, Z: 1}.Scale(a.speedMax)
	obstacle := Vector3{X: 0, Y: 0, Z: 50}
	v := k.Avoid(a, original, obstacle, 20, ShipClearance, ShipAvoidDistance)
	if v.IsZero() {
		t.Fatalf("avoid should not zero out a valid desired velocity")
	}
	if v.Norm() > a.speedMax+1e-6 {
		t.Fatalf("avoid exceeded max speed: %v", v.Norm())
	}
}

func TestAvoidNoOpWhenObstacleFar(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(7))
	a := newTestAgent()
	original := Vector3{X: 0, Y: 0, Z: 1}.Scale(a.speedMax)
	farObstacle := Vector3{X: 0, Y: 0, Z: 100000}
	v := k.Avoid(a, original, farObstacle, 20, ShipClearance, ShipAvoidDistance)
	if v.DistanceTo(original) > 1e-6 {
		t.Fatalf("avoid should pass through desired velocity unchanged when obstacle is out of range, got %+v want %+v", v, original)
	}
}

func TestExploreProducesNonZeroDesiredVelocity(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(3))
	a := newTestAgent()
	v := k.Explore(a, 50, 150)
	if v.IsZero() {
		t.Fatalf("explore should produce a heading")
	}
}

func TestPatrolSphereProducesHeadingOnSphere(t *testing.T) {
	k := NewSteeringKernel(IDDefault, NewRand(5))
	a := newTestAgent()
	a.pos = Vector3{X: 0, Y: 0, Z: 200}
	centre := Vector3{}
	v := k.PatrolSphere(a, centre, 200, 500)
	if v.IsZero() {
		t.Fatalf("patrolSphere should produce a heading")
	}
}
