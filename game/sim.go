package game

import (
	"go.uber.org/zap"
)

// Simulation is the explicit context for one session: it owns the player,
// the platform registry, the camera and the per-frame systems, and advances
// them with a single Advance call per tick. It has no dependency on the
// display, which is what makes the frame logic testable headlessly.
//
// All state is mutated only inside Advance; the host calls it exactly once
// per frame from a single goroutine.
type Simulation struct {
	cfg Config

	Player    *Player
	Platforms *Registry
	Camera    *Camera
	Input     InputState

	physics  *Physics
	scroller *Scroller

	// Distance is the total world scroll since session start; the renderer
	// derives the parallax backdrop offset from it.
	Distance float64
}

// NewSimulation builds a session: player at spawn, initial level generated,
// camera centered on the origin.
func NewSimulation(cfg Config, seed int64, log *zap.Logger) *Simulation {
	s := &Simulation{
		cfg:       cfg,
		Player:    NewPlayer(),
		Platforms: NewRegistry(),
		Camera:    NewCamera(cfg.ScreenWidth, cfg.ScreenHeight, cfg.ViewHeight),
		physics:   NewPhysics(cfg, log),
		scroller:  NewScroller(cfg, seed, log),
	}
	s.scroller.BuildInitialLevel(s.Platforms)
	return s
}

// Advance runs one frame: clamp the timestep, integrate and resolve the
// player against the platforms, scroll/retire/generate, then ease the
// camera. dt is elapsed seconds since the previous frame.
func (s *Simulation) Advance(dt float64) {
	if dt > s.cfg.MaxDelta {
		dt = s.cfg.MaxDelta
	}

	s.physics.Step(dt, s.Input, s.Player, s.Platforms)
	s.Distance += s.scroller.Step(dt, s.Player, s.Platforms, s.Camera.CurrentView())
	s.Camera.Follow(s.cfg.CameraTargetX, s.cfg.CameraLerp)
}

// RightEdge exposes the generator's tracked level extent.
func (s *Simulation) RightEdge() float64 {
	return s.scroller.RightEdge()
}
