package game

// AIKind tags which AI behaviour, if any, drives a ship each tick. Ships
// under direct player control (or with no behaviour at all) carry AIKindNone
// and are simply integrated and collided (§3 Ship, AI hook).
type AIKind uint8

const (
	AIKindNone AIKind = iota
	AIKindMoonGuard
)

// ShipState distinguishes the three lifecycle stages a ship passes through
// (§3, §4.J): alive while Health.Current stays above ShipHealthDeadAt, dying
// for exactly the tick the death transition fires (to let the death
// explosion and any cleanup observe it once), dead thereafter.
type ShipState uint8

const (
	ShipAlive ShipState = iota
	ShipDying
	ShipDead
)

// Ship is a kinematic body with health, a reload timer, and an optional AI
// hook. It carries no ammunition count: firing is limited only by reloading.
type Ship struct {
	Body

	ID      ID
	Faction Faction
	Health  Health
	State   ShipState

	reloadTimer     float64
	reloading       bool
	fireDesired     bool

	AI AIKind
}

func NewShip(id ID, faction Faction, pos, forward Vector3, maxHealth float64) *Ship {
	return &Ship{
		Body:    NewBody(pos, forward, ShipRadius),
		ID:      id,
		Faction: faction,
		Health:  NewHealth(maxHealth),
	}
}

func (s *Ship) IsAlive() bool { return s.State == ShipAlive }

func (s *Ship) SpeedMax() float64    { return shipSpeedMax }
func (s *Ship) Acceleration() float64 { return shipAcceleration }

// These two are tunable per-ship in a fuller fit-out; fixed here since the
// spec's data model does not carry per-ship propulsion stats.
const (
	shipSpeedMax      = 200.0
	shipAcceleration  = 80.0
)

func (s *Ship) Position() Vector3 { return s.Body.Position }
func (s *Ship) Forward() Vector3  { return s.Body.Forward }
func (s *Ship) Up() Vector3       { return s.Body.Up }
func (s *Ship) Right() Vector3    { return s.Body.Right }
func (s *Ship) Velocity() Vector3 { return s.Body.Velocity }

// SetAI tags the ship as moon-guard driven; the guard itself is owned and
// run by World, keyed by ship id.
func (s *Ship) SetAI() {
	s.AI = AIKindMoonGuard
}

// MarkReloading starts (or restarts) the reload timer. While reloading,
// ConsumeFireDesired never reports true.
func (s *Ship) MarkReloading() {
	s.reloading = true
	s.reloadTimer = ShipReloadTime
	s.fireDesired = false
}

// TickReload advances the reload timer, clearing the reloading flag once it
// elapses (§4.J).
func (s *Ship) TickReload(dt float64) {
	if !s.reloading {
		return
	}
	s.reloadTimer -= dt
	if s.reloadTimer <= 0 {
		s.reloading = false
		s.reloadTimer = 0
	}
}

func (s *Ship) IsReloading() bool { return s.reloading }

// MarkFireBulletDesired records that the AI or player wants to fire this
// tick; the world tick consults and clears it.
func (s *Ship) MarkFireBulletDesired() {
	if !s.reloading {
		s.fireDesired = true
	}
}

func (s *Ship) ConsumeFireDesired() bool {
	v := s.fireDesired
	s.fireDesired = false
	return v
}

// ApplyDamage reduces health and, the instant it crosses the death
// threshold, transitions Alive -> Dying. The caller (world tick) is
// responsible for spawning the death explosion at Body.Position and then
// advancing Dying -> Dead on the following tick (§4.J, §4.M).
func (s *Ship) ApplyDamage(amount float64) {
	if s.State != ShipAlive {
		return
	}
	s.Health.Damage(amount)
	if s.Health.Current <= ShipHealthDeadAt {
		s.State = ShipDying
	}
}

// AdvanceDeathState moves a Dying ship to Dead, called once per tick after
// the death explosion has been emitted.
func (s *Ship) AdvanceDeathState() {
	if s.State == ShipDying {
		s.State = ShipDead
	}
}
