package game

import (
	"go.uber.org/zap"
)

// Physics integrates player motion and resolves collisions against the
// platform registry. The solver is a two-pass axis-separated pushout: the
// horizontal displacement is applied and corrected first, then the vertical.
// Corner overlaps are classified by comparing penetration extents; ties go
// to the vertical pass. This is a deliberate approximation, not a separating
// axis solver — fast diagonal motion can resolve on the wrong axis, and the
// behavior is kept as-is because gameplay is tuned around it.
type Physics struct {
	cfg Config
	log *zap.Logger
}

// NewPhysics creates a physics engine for the given configuration.
func NewPhysics(cfg Config, log *zap.Logger) *Physics {
	return &Physics{cfg: cfg, log: log}
}

// Step advances the player by dt seconds. dt must already be clamped by the
// caller. Platform colliders are refreshed as a side effect.
func (ph *Physics) Step(dt float64, in InputState, pl *Player, reg *Registry) {
	// Horizontal velocity is rebuilt from intent every frame; holding both
	// directions moves right because Right is applied last.
	pl.Vel.X = 0
	if in.Left {
		pl.Vel.X = -ph.cfg.MoveSpeed
	}
	if in.Right {
		pl.Vel.X = ph.cfg.MoveSpeed
	}

	// Jump only from the ground. The flag is level-triggered, so holding
	// jump re-triggers on every grounded frame and does nothing airborne.
	if in.Jump && pl.OnGround {
		pl.Vel.Y = ph.cfg.JumpVelocity
		pl.OnGround = false
	}

	// Gravity applies unconditionally; resting contact is re-established by
	// the vertical pass below.
	pl.Vel.Y += ph.cfg.Gravity * dt

	delta := pl.Vel.Scale(dt)

	// Horizontal pass.
	pl.Pos.X += delta.X
	pl.RefreshCollider()
	for _, plat := range reg.All() {
		plat.RefreshCollider()
		if !pl.Collider.Intersects(plat.Collider) {
			continue
		}
		ov := pl.Collider.Overlap(plat.Collider)
		if ov.X < ov.Y {
			if delta.X > 0 {
				pl.Pos.X -= ov.X
			} else if delta.X < 0 {
				pl.Pos.X += ov.X
			}
			pl.Vel.X = 0
			// Later platforms in this pass must see the corrected position.
			pl.RefreshCollider()
		}
	}

	// Vertical pass. Ground state is re-derived from actual contact: it is
	// false unless a downward collision resolves this frame.
	pl.OnGround = false
	pl.Pos.Y += delta.Y
	pl.RefreshCollider()
	for _, plat := range reg.All() {
		if !pl.Collider.Intersects(plat.Collider) {
			continue
		}
		ov := pl.Collider.Overlap(plat.Collider)
		if ov.Y <= ov.X {
			if delta.Y > 0 {
				// Head bump.
				pl.Pos.Y -= ov.Y
				pl.Vel.Y = 0
				pl.RefreshCollider()
			} else if delta.Y < 0 {
				// Landing.
				pl.Pos.Y += ov.Y
				pl.Vel.Y = 0
				pl.OnGround = true
				pl.RefreshCollider()
			}
		}
	}

	// Fail-safe floor: falling far below the view teleports the player back
	// to the spawn point. There is no life or score tracking.
	if pl.Pos.Y < -2*ph.cfg.ViewHeight {
		ph.log.Info("player fell out of the world, respawning",
			zap.Float64("y", pl.Pos.Y))
		pl.Respawn()
	}
}
