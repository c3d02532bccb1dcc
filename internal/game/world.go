package game

// World owns every entity in the simulation: the ring system, the fixed
// planetoids, the mutable ship and bullet collections, and the bounded
// explosion store. It exposes a read-only query surface to AI and rendering
// and a small set of write-mutation methods used only from within Step
// (§3 Ownership, §5 Concurrency & Resource Model: single-threaded tick).
type World struct {
	Ring       *RingSystem
	Planetoids []Planetoid
	Ships      []*Ship
	Bullets    []*Bullet
	Explosions *ExplosionStore

	guards  map[ID]*UnitAIMoonGuard
	guardOf map[ID]int // ship ID -> index into Planetoids it patrols

	rng *Rand
	now float64

	nextShipIdx   uint16
	nextBulletIdx uint16
}

func NewWorld(runSeed uint64, ringParams RingParams) *World {
	return &World{
		Ring:       NewRingSystem(runSeed, ringParams),
		Explosions: NewExplosionStore(),
		guards:     make(map[ID]*UnitAIMoonGuard),
		guardOf:    make(map[ID]int),
		rng:        NewRand(runSeed ^ 0x5ea1ed),
	}
}

func (w *World) AddPlanetoid(pos Vector3, radius float64) Planetoid {
	idx := uint16(len(w.Planetoids))
	p := NewPlanetoid(MakeID(KindPlanetoid, FactionNature, idx), pos, radius)
	w.Planetoids = append(w.Planetoids, p)
	return p
}

// AddShip registers a new ship; guardedMoon, if >= 0, attaches a moon-guard
// AI patrolling Planetoids[guardedMoon].
func (w *World) AddShip(faction Faction, pos, forward Vector3, maxHealth float64, guardedMoon int) *Ship {
	id := MakeID(KindShip, faction, w.nextShipIdx)
	w.nextShipIdx++
	s := NewShip(id, faction, pos, forward, maxHealth)
	w.Ships = append(w.Ships, s)
	if guardedMoon >= 0 {
		s.SetAI()
		w.guards[id] = NewUnitAIMoonGuard(id, w.rng)
		w.guardOf[id] = guardedMoon
	}
	return s
}

// addBullet spawns a bullet fired by source. addMissile is its alias and
// also produces a KindBullet id, so missiles are not told apart from
// bullets (§3 Object identity).
func (w *World) addBullet(source *Ship) *Bullet {
	id := MakeID(KindBullet, source.Faction, w.nextBulletIdx)
	w.nextBulletIdx++
	spawnPos := source.Position().Add(source.Forward().Scale(source.Radius + 1))
	b := NewBullet(id, source.ID, spawnPos, source.Forward())
	w.Bullets = append(w.Bullets, b)
	return b
}

func (w *World) addMissile(source *Ship) *Bullet {
	return w.addBullet(source)
}

func (w *World) addExplosion(pos Vector3, size float64, kind int) {
	w.Explosions.Add(pos, size, kind, w.now)
}

// Now returns the cumulative simulation time, for use by renderers that
// need to compute explosion age/frame outside of World.Step.
func (w *World) Now() float64 { return w.now }

// ShipsWithin implements WorldQuery.
func (w *World) ShipsWithin(pos Vector3, radius float64) []*Ship {
	var out []*Ship
	r2 := radius * radius
	for _, s := range w.Ships {
		if s.IsAlive() && s.Position().DistSquared(pos) <= r2 {
			out = append(out, s)
		}
	}
	return out
}

// RingParticlesWithin implements WorldQuery.
func (w *World) RingParticlesWithin(pos Vector3, radius float64) []ParticleSummary {
	return w.Ring.ParticlesIn(pos, radius)
}

// NearestPlanetoid implements WorldQuery.
func (w *World) NearestPlanetoid(pos Vector3) *Planetoid {
	if len(w.Planetoids) == 0 {
		return nil
	}
	best := 0
	bestDist := w.Planetoids[0].DistanceTo(pos)
	for i := 1; i < len(w.Planetoids); i++ {
		d := w.Planetoids[i].DistanceTo(pos)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return &w.Planetoids[best]
}

// Step advances the simulation by dt, in the fixed five-stage order laid
// out in §4.M: AI/steering decisions, kinematic integration, collision
// resolution, weapons fire, and lifecycle bookkeeping.
func (w *World) Step(dt float64) {
	w.now += dt

	w.runAI(dt)
	w.integrate(dt)
	w.resolveCollisions()
	w.processFire()
	w.tickLifecycles()
}

// runAI lets every AI-driven alive ship compute and apply a desired
// velocity for this tick.
func (w *World) runAI(dt float64) {
	for _, s := range w.Ships {
		if !s.IsAlive() || s.AI != AIKindMoonGuard {
			continue
		}
		guard := w.guards[s.ID]
		moonIdx := w.guardOf[s.ID]
		if guard == nil || moonIdx >= len(w.Planetoids) {
			continue
		}
		moon := w.Planetoids[moonIdx]
		desired := guard.Run(w, s, moon.Position, moon.Radius)
		s.Face(desired)
		newSpeed := approach(s.Body.Speed(), desired.Norm(), s.Acceleration()*dt)
		s.Body.SetSpeed(newSpeed)
	}
}

func (w *World) integrate(dt float64) {
	for _, s := range w.Ships {
		if s.IsAlive() {
			s.Body.Integrate(dt)
		}
		s.TickReload(dt)
	}
	for _, b := range w.Bullets {
		if b.IsAlive() {
			b.Tick(dt)
		}
	}
}

// resolveCollisions applies the fixed collision order: ships vs ring
// particles, ships vs planetoids, ships vs ships (j>i), bullets vs ring
// particles/planetoids, bullets vs ships (skipping each bullet's own
// source) (§4.M).
func (w *World) resolveCollisions() {
	for _, s := range w.Ships {
		if !s.IsAlive() {
			continue
		}
		if w.Ring.Collides(s.Position(), s.Radius) {
			s.ApplyDamage(s.Health.Max)
		}
	}
	for _, s := range w.Ships {
		if !s.IsAlive() {
			continue
		}
		for i := range w.Planetoids {
			p := &w.Planetoids[i]
			if sphereVsSphere(s.Position(), s.Radius, p.Position, p.Radius) {
				s.ApplyDamage(s.Health.Max)
			}
		}
	}
	for i := 0; i < len(w.Ships); i++ {
		si := w.Ships[i]
		if !si.IsAlive() {
			continue
		}
		for j := i + 1; j < len(w.Ships); j++ {
			sj := w.Ships[j]
			if !sj.IsAlive() {
				continue
			}
			if sphereVsSphere(si.Position(), si.Radius, sj.Position(), sj.Radius) {
				si.ApplyDamage(si.Health.Max)
				sj.ApplyDamage(sj.Health.Max)
			}
		}
	}

	for _, b := range w.Bullets {
		if !b.IsAlive() {
			continue
		}
		if w.Ring.Collides(b.Position, b.Radius) {
			b.Kill()
			continue
		}
		for i := range w.Planetoids {
			p := &w.Planetoids[i]
			if sphereVsSphere(b.Position, b.Radius, p.Position, p.Radius) {
				b.Kill()
				break
			}
		}
	}
	for _, b := range w.Bullets {
		if !b.IsAlive() {
			continue
		}
		for _, s := range w.Ships {
			if !s.IsAlive() || b.CollidesWithSource(s.ID) {
				continue
			}
			if sphereVsSphere(b.Position, b.Radius, s.Position(), s.Radius) {
				s.ApplyDamage(BulletDamage)
				b.Kill()
				break
			}
		}
	}
}

// processFire converts each ship's fire-desired flag into a spawned bullet
// and starts the reload timer.
func (w *World) processFire() {
	for _, s := range w.Ships {
		if !s.IsAlive() {
			continue
		}
		if s.ConsumeFireDesired() {
			w.addBullet(s)
			s.MarkReloading()
		}
	}
}

// tickLifecycles emits death explosions for bullets and ships that crossed
// into death this tick, advances Dying ships to Dead, and ages the
// explosion store, then compacts dead bullets out of the slice.
func (w *World) tickLifecycles() {
	for _, b := range w.Bullets {
		if b.dead && !b.explosionEmitted {
			w.addExplosion(b.Body.PrevPosition, BulletDeathExplosionSize, 0)
			b.explosionEmitted = true
		}
	}
	for _, s := range w.Ships {
		if s.State == ShipDying {
			w.addExplosion(s.Position(), ShipDeathExplosionSize, 0)
			s.AdvanceDeathState()
		}
	}
	w.Explosions.Tick(w.now)
	w.compact()
}

// compact drops dead bullets from the slice; dead ships are retained (their
// wrecks remain queryable) per the data model's silence on ship removal.
func (w *World) compact() {
	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.IsAlive() {
			live = append(live, b)
		}
	}
	w.Bullets = live
}
