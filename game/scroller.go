package game

import (
	"math/rand"

	"go.uber.org/zap"
)

// Scroller shifts the world leftward at a constant rate to simulate forward
// travel, retires platforms that fall behind the camera and extends the
// level procedurally ahead of it. It owns the generator's continuity state:
// the right edge of the furthest platform ever placed and the top of the
// most recently placed one.
//
// The random source is injected so procedural sequences are reproducible.
type Scroller struct {
	cfg Config
	log *zap.Logger
	rng *rand.Rand

	// rightEdge is the max right edge over all platforms ever created,
	// shifted with the world each frame
	rightEdge float64

	// lastTop is the top edge of the most recently generated platform,
	// anchoring the next platform's height
	lastTop float64
}

// NewScroller creates a scroller with a seeded random source.
func NewScroller(cfg Config, seed int64, log *zap.Logger) *Scroller {
	return &Scroller{
		cfg: cfg,
		log: log,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// RightEdge returns the tracked right edge of the generated level.
func (s *Scroller) RightEdge() float64 {
	return s.rightEdge
}

// BuildInitialLevel seeds the registry with a wide starting ground and a run
// of procedural platforms, establishing the generator's continuity state.
// Called once before the frame loop.
func (s *Scroller) BuildInitialLevel(reg *Registry) {
	ground := NewPlatform(-7.5, 0, 15, s.cfg.PlatformHeight, s.cfg.PlatformDepth)
	reg.Add(ground)
	s.rightEdge = ground.RightEdge()
	s.lastTop = ground.Top()

	for i := 0; i < s.cfg.InitialPlatforms; i++ {
		s.generate(reg)
	}
	s.log.Info("initial level built",
		zap.Int("platforms", reg.Len()),
		zap.Float64("right_edge", s.rightEdge))
}

// Step shifts all platforms and the player left by scrollSpeed*dt, retires
// platforms whose right edge trails the view by more than the retire buffer,
// and generates at most one platform when the level runs low ahead of the
// camera. Returns the scroll amount so the caller can drive parallax.
func (s *Scroller) Step(dt float64, pl *Player, reg *Registry, view View) float64 {
	amount := s.cfg.ScrollSpeed * dt

	// Reverse index order so removal does not skip elements.
	for i := reg.Len() - 1; i >= 0; i-- {
		p := reg.At(i)
		p.Pos.X -= amount
		p.RefreshCollider()
		if p.RightEdge() < view.Left-s.cfg.RetireBuffer {
			reg.RemoveAt(i)
			s.log.Debug("platform retired", zap.Int("index", i), zap.Int("remaining", reg.Len()))
		}
	}

	// Compensate the player so its on-screen position is unaffected by the
	// world shift.
	pl.Pos.X -= amount
	pl.RefreshCollider()

	s.rightEdge -= amount

	// One generation check per frame, at most one platform created. A large
	// dt can leave the level briefly under-populated; the timestep clamp
	// bounds how far behind it can get.
	if s.rightEdge < view.Right+s.cfg.Lookahead {
		s.generate(reg)
	}

	return amount
}

// generate appends one platform after a random gap, with its top edge offset
// from the previous platform's by a bounded random delta so it stays
// reachable, clamped into the visible band.
func (s *Scroller) generate(reg *Registry) {
	gap := s.uniform(s.cfg.MinGap, s.cfg.MaxGap)
	width := s.uniform(s.cfg.MinWidth, s.cfg.MaxWidth)

	top := s.lastTop + s.uniform(-s.cfg.MaxHeightDelta, s.cfg.MaxHeightDelta)
	limit := s.cfg.ViewHeight/2 - 1
	if top > limit {
		top = limit
	}
	if top < -limit {
		top = -limit
	}

	p := NewPlatform(s.rightEdge+gap, top, width, s.cfg.PlatformHeight, s.cfg.PlatformDepth)
	reg.Add(p)

	if p.RightEdge() > s.rightEdge {
		s.rightEdge = p.RightEdge()
	}
	s.lastTop = p.Top()

	s.log.Debug("platform generated",
		zap.Float64("left", p.LeftEdge()),
		zap.Float64("top", p.Top()),
		zap.Float64("width", width))
}

func (s *Scroller) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
