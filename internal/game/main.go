//go:build !android

package game

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// cubeMesh returns interleaved position+normal vertices and indices for a
// unit cube, the stand-in geometry every ship and planetoid is drawn with
// until real assets are loaded by filename (§6 External Interfaces).
func cubeMesh() (verts []float32, indices []uint32) {
	type face struct {
		normal Vector3
		verts  [4]Vector3
	}
	faces := []face{
		{Vector3{0, 0, 1}, [4]Vector3{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},
		{Vector3{0, 0, -1}, [4]Vector3{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}},
		{Vector3{1, 0, 0}, [4]Vector3{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}}},
		{Vector3{-1, 0, 0}, [4]Vector3{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}}},
		{Vector3{0, 1, 0}, [4]Vector3{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}}},
		{Vector3{0, -1, 0}, [4]Vector3{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}},
	}
	for _, f := range faces {
		base := uint32(len(verts) / 6)
		for _, v := range f.verts {
			verts = append(verts, float32(v.X), float32(v.Y), float32(v.Z), float32(f.normal.X), float32(f.normal.Y), float32(f.normal.Z))
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}
	return
}

// setupScenario populates a small patrol scenario: a ring system, two
// guarded moons, and one player-controlled ship.
func setupScenario(seed uint64) (*World, *Ship) {
	params := RingParams{
		HalfThickness:   20,
		InnerRadius:     2000,
		OuterRadiusBase: 6000,
		DensityMax:      30,
		DensityFactor:   0.02,
	}
	w := NewWorld(seed, params)

	moonA := w.AddPlanetoid(Vector3{X: 3500, Y: 0, Z: 0}, 150)
	moonB := w.AddPlanetoid(Vector3{X: -3200, Y: 400, Z: 1800}, 120)
	_ = moonB

	w.AddShip(FactionEnemyFirst, moonA.Position.Add(Vector3{X: moonA.Radius + PlanetoidAvoidDistance}), Vector3{X: -1, Y: 0, Z: 0}, 100, 0)
	w.AddShip(FactionEnemyFirst, moonA.Position.Sub(Vector3{X: moonA.Radius + PlanetoidAvoidDistance}), Vector3{X: 1, Y: 0, Z: 0}, 100, 0)
	w.AddShip(FactionEnemyFirst, Vector3{X: -3200, Y: 400, Z: 1800 + 300}, Vector3{X: 0, Y: 0, Z: -1}, 100, 1)

	player := w.AddShip(FactionPlayer, Vector3{X: 0, Y: 0, Z: -1000}, Vector3{X: 0, Y: 0, Z: 1}, 150, -1)
	return w, player
}

// applyPlayerControl turns a raw key snapshot into ship orientation changes
// and a desired speed, the player-controlled equivalent of a unit AI's
// steering decision.
func applyPlayerControl(ship *Ship, keys KeySnapshot, dt float64) {
	const turnRate = 1.2 // radians/second
	angle := turnRate * dt

	if keys.YawLeft {
		ship.Face(ship.Forward().RotatedAbout(ship.Up(), angle))
	}
	if keys.YawRight {
		ship.Face(ship.Forward().RotatedAbout(ship.Up(), -angle))
	}
	if keys.PitchUp {
		ship.Face(ship.Forward().RotatedAbout(ship.Right(), angle))
	}
	if keys.PitchDown {
		ship.Face(ship.Forward().RotatedAbout(ship.Right(), -angle))
	}
	if keys.RollLeft {
		newUp := ship.Up().RotatedAbout(ship.Forward(), angle)
		ship.Body.Up = newUp
		ship.Body.Right = ship.Forward().Cross(newUp).Normalized()
	}
	if keys.RollRight {
		newUp := ship.Up().RotatedAbout(ship.Forward(), -angle)
		ship.Body.Up = newUp
		ship.Body.Right = ship.Forward().Cross(newUp).Normalized()
	}

	targetSpeed := ship.Speed()
	if keys.Thrust {
		targetSpeed = shipSpeedMax
	} else if keys.Brake {
		targetSpeed = 0
	}
	ship.Body.SetSpeed(approach(ship.Speed(), targetSpeed, ship.Acceleration()*dt))

	if keys.Fire {
		ship.MarkFireBulletDesired()
	}
}

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SPACESIM_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}
	logStartup("starting with seed %d", seed)

	world, player := setupScenario(seed)

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	cubeVerts, cubeIndices := cubeMesh()
	rend.LoadMesh("ship", cubeVerts, cubeIndices)
	rend.LoadMesh("planetoid", cubeVerts, cubeIndices)

	clock := NewTimeSystem(1.0/60.0, 0.1)

	gl.ClearColor(0.01, 0.01, 0.03, 1.0)

	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		rawDt := now - last
		last = now

		glfw.PollEvents()
		keys := ReadKeys(window)
		if keys.Quit {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		dt := clock.Advance(rawDt)

		applyPlayerControl(player, keys, dt)
		world.Step(dt)

		camPos := player.Position().Sub(player.Forward().Scale(80)).Add(player.Up().Scale(25))
		camLookAt := player.Position().Add(player.Forward().Scale(200))

		viewProj := Perspective(60*math.Pi/180, float64(fbW)/float64(fbH), 1, 200000).
			Mul(LookAt(camPos, camLookAt, player.Up()))

		rend.BeginFrame(fbW, fbH, viewProj, Vector3{X: 0.3, Y: -0.6, Z: 0.4})

		for i := range world.Planetoids {
			p := &world.Planetoids[i]
			model := ModelFromBasis(p.Position, Vector3{X: 0, Y: 0, Z: 1}, Vector3{X: 0, Y: 1, Z: 0}, Vector3{X: 1, Y: 0, Z: 0}, p.Radius)
			rend.DrawModel("planetoid", model, RGB{R: 120, G: 110, B: 100})
		}
		for _, s := range world.Ships {
			if s.State == ShipDead {
				continue
			}
			model := ModelFromBasis(s.Position(), s.Forward(), s.Up(), s.Right(), s.Radius)
			tint := RGB{R: 90, G: 160, B: 220}
			if s.Faction != FactionPlayer {
				tint = RGB{R: 200, G: 70, B: 60}
			}
			rend.DrawModel("ship", model, tint)
		}
		for _, b := range world.Bullets {
			model := ModelFromBasis(b.Body.Position, b.Body.Forward, b.Body.Up, b.Body.Right, 2)
			rend.DrawModel("ship", model, RGB{R: 250, G: 230, B: 160})
		}

		var billboards []BillboardVertex
		world.Ring.Draw(camPos, DrawHaloRadius, ScanDistanceRingParticle, func(p RingParticle) {
			c := MaterialColor(p.MaterialIdx)
			billboards = append(billboards, BillboardVertex{
				Position: p.Position, Radius: p.Radius,
				R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: 1,
			})
		})
		world.Explosions.ForEachLive(world.Now(), func(r ExplosionRecord) {
			c := r.ColorAt(world.Now())
			billboards = append(billboards, BillboardVertex{
				Position: r.Position, Radius: r.Size,
				R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255, A: 0.85,
			})
		})
		rend.DrawBillboards(billboards, viewProj, float32(fbH))

		window.SwapBuffers()
	}
}
