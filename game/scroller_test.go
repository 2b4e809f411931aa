package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testView(cfg Config) View {
	halfH := cfg.ViewHeight / 2
	halfW := halfH * float64(cfg.ScreenWidth) / float64(cfg.ScreenHeight)
	return View{Left: -halfW, Right: halfW, Top: halfH, Bottom: -halfH}
}

func TestInitialLevel(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScroller(cfg, 1, zap.NewNop())
	reg := NewRegistry()

	s.BuildInitialLevel(reg)

	require.Equal(t, 1+cfg.InitialPlatforms, reg.Len())

	ground := reg.At(0)
	require.InDelta(t, -7.5, ground.LeftEdge(), 1e-12)
	require.InDelta(t, 7.5, ground.RightEdge(), 1e-12)
	require.InDelta(t, 0.0, ground.Top(), 1e-12)

	// The tracked right edge is the furthest platform edge.
	maxRight := ground.RightEdge()
	for _, p := range reg.All() {
		if p.RightEdge() > maxRight {
			maxRight = p.RightEdge()
		}
	}
	require.InDelta(t, maxRight, s.RightEdge(), 1e-12)
}

func TestGenerationBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialPlatforms = 500
	s := NewScroller(cfg, 99, zap.NewNop())
	reg := NewRegistry()

	s.BuildInitialLevel(reg)

	limit := cfg.ViewHeight/2 - 1
	for i := 1; i < reg.Len(); i++ {
		p := reg.At(i)

		require.GreaterOrEqual(t, p.Width, cfg.MinWidth)
		require.LessOrEqual(t, p.Width, cfg.MaxWidth)

		require.GreaterOrEqual(t, p.Top(), -limit-1e-9, "platform %d below the reachable band", i)
		require.LessOrEqual(t, p.Top(), limit+1e-9, "platform %d above the reachable band", i)

		gap := p.LeftEdge() - reg.At(i-1).RightEdge()
		require.GreaterOrEqual(t, gap, cfg.MinGap-1e-9, "platform %d gap too small", i)
		require.LessOrEqual(t, gap, cfg.MaxGap+1e-9, "platform %d gap too large", i)
	}
}

func TestScrollConservation(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScroller(cfg, 7, zap.NewNop())
	reg := NewRegistry()
	s.BuildInitialLevel(reg)

	pl := NewPlayer()
	view := testView(cfg)

	const frames = 100
	const dt = 1.0 / 60.0
	startX := pl.Pos.X
	platformStart := reg.At(0).Pos.X

	for i := 0; i < frames; i++ {
		s.Step(dt, pl, reg, view)
	}

	shift := cfg.ScrollSpeed * dt * frames
	require.InDelta(t, startX-shift, pl.Pos.X, 1e-9)
	// Surviving platforms shifted by exactly the same amount, so the
	// player's position relative to the world is conserved.
	require.InDelta(t, platformStart-shift, reg.At(0).Pos.X, 1e-9)
}

func TestRetirement(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScroller(cfg, 3, zap.NewNop())
	reg := NewRegistry()
	s.BuildInitialLevel(reg)
	view := testView(cfg)

	stale := NewPlatform(-40, 0, 2, cfg.PlatformHeight, cfg.PlatformDepth)
	reg.Add(stale)

	s.Step(1.0/60.0, NewPlayer(), reg, view)

	for _, p := range reg.All() {
		require.NotSame(t, stale, p, "retired platform still registered")
	}

	// Nothing in the registry trails the retirement line.
	for i := 0; i < 2000; i++ {
		s.Step(1.0/60.0, NewPlayer(), reg, view)
		for _, p := range reg.All() {
			require.GreaterOrEqual(t, p.RightEdge(), view.Left-cfg.RetireBuffer-1e-9)
		}
	}
}

func TestGenerationNeverStalls(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScroller(cfg, 5, zap.NewNop())
	reg := NewRegistry()
	s.BuildInitialLevel(reg)

	pl := NewPlayer()
	view := testView(cfg)

	// Worst case: every frame at the clamped maximum timestep.
	for i := 0; i < 5000; i++ {
		s.Step(cfg.MaxDelta, pl, reg, view)
		require.GreaterOrEqual(t, s.RightEdge(), view.Right, "level fell behind the camera at frame %d", i)
	}
}

func TestAtMostOnePlatformPerFrame(t *testing.T) {
	cfg := DefaultConfig()
	s := NewScroller(cfg, 11, zap.NewNop())
	reg := NewRegistry()
	s.BuildInitialLevel(reg)

	pl := NewPlayer()
	view := testView(cfg)

	for i := 0; i < 1000; i++ {
		before := reg.Len()
		s.Step(cfg.MaxDelta, pl, reg, view)
		require.LessOrEqual(t, reg.Len(), before+1, "more than one platform created in frame %d", i)
	}
}

func TestSeededReproducibility(t *testing.T) {
	cfg := DefaultConfig()
	view := testView(cfg)

	run := func(seed int64) []Vec3 {
		s := NewScroller(cfg, seed, zap.NewNop())
		reg := NewRegistry()
		s.BuildInitialLevel(reg)
		pl := NewPlayer()
		for i := 0; i < 500; i++ {
			s.Step(1.0/60.0, pl, reg, view)
		}
		positions := make([]Vec3, reg.Len())
		for i, p := range reg.All() {
			positions[i] = p.Pos
		}
		return positions
	}

	require.Equal(t, run(42), run(42))
	require.NotEqual(t, run(42), run(43))
}
