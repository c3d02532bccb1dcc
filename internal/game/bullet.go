package game

// Bullet is a straight-line projectile fired by a ship. It carries the id
// of its source so it never collides with the ship that fired it, and it
// ages out after BulletLifespan seconds (§3, §4.I).
type Bullet struct {
	Body

	ID       ID
	SourceID ID
	age      float64
	dead     bool

	explosionEmitted bool
}

func NewBullet(id, sourceID ID, pos, forward Vector3) *Bullet {
	b := &Bullet{
		Body:     NewBody(pos, forward, BulletRadius),
		ID:       id,
		SourceID: sourceID,
	}
	b.Body.SetSpeed(BulletSpeed)
	return b
}

func (b *Bullet) IsAlive() bool { return !b.dead }

// Tick advances the bullet's age and kinematics, returning true once age
// passes BulletLifespan.
func (b *Bullet) Tick(dt float64) bool {
	if b.dead {
		return true
	}
	b.Body.Integrate(dt)
	b.age += dt
	if b.age > BulletLifespan {
		b.dead = true
	}
	return b.dead
}

// Kill marks the bullet dead; callers are expected to spawn a death
// explosion at Body.PrevPosition sized BulletDeathExplosionSize (§4.I, §4.M).
func (b *Bullet) Kill() {
	b.dead = true
}

// CollidesWithSource reports whether other is this bullet's own source,
// which must never register as a collision target (§3 invariant).
func (b *Bullet) CollidesWithSource(other ID) bool {
	return other == b.SourceID
}
