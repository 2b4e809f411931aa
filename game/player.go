package game

// Player body dimensions in world units (full size 0.8 x 1.0 x 0.5).
var playerHalfExtents = Vec3{X: 0.4, Y: 0.5, Z: 0.25}

// playerSpawn is the recovery position used at session start and after a
// fall-through.
var playerSpawn = Vec3{X: 0, Y: 2, Z: 0}

// Player is the single player-controlled rigid body. It is created once per
// session and mutated in place every frame by the physics engine.
type Player struct {
	// Pos is the body center in world coordinates
	Pos Vec3

	// Vel is the velocity in units per second; only X and Y are integrated
	Vel Vec3

	// Half is the fixed collider half extents
	Half Vec3

	// Collider is the body's AABB, derived from Pos and Half
	Collider AABB

	// OnGround is true only when a downward collision resolved this frame
	OnGround bool
}

// NewPlayer creates the player at the spawn position.
func NewPlayer() *Player {
	p := &Player{
		Pos:  playerSpawn,
		Half: playerHalfExtents,
	}
	p.RefreshCollider()
	return p
}

// RefreshCollider recomputes the collider from the current position. Must be
// called after every position mutation before the collider is read.
func (p *Player) RefreshCollider() {
	p.Collider.SetFromCenter(p.Pos, p.Half)
}

// Respawn teleports the player back to the spawn position with zero velocity.
func (p *Player) Respawn() {
	p.Pos = playerSpawn
	p.Vel = Vec3{}
	p.OnGround = false
	p.RefreshCollider()
}
