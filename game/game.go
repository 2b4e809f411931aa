package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// Game is the ebiten.Game adapter around the simulation: it supplies the
// clamped timestep from the wall clock, polls the keyboard, and hands the
// state to the renderer. All simulation behavior lives in Simulation so it
// can run without a display.
type Game struct {
	sim      *Simulation
	renderer *Renderer
	cfg      Config
	log      *zap.Logger

	lastUpdateTime time.Time
	paused         bool

	// FPS tracking over a half-second window
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
}

// NewGame creates the game with a fresh simulation session.
func NewGame(cfg Config, log *zap.Logger) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("session starting", zap.Int64("seed", seed))

	sim := NewSimulation(cfg, seed, log)
	return &Game{
		sim:            sim,
		renderer:       NewRenderer(sim.Camera),
		cfg:            cfg,
		log:            log,
		lastUpdateTime: time.Now(),
		fps:            60.0,
	}
}

// Update advances the simulation by the elapsed wall-clock time. A panic in
// frame logic is converted into a returned error so ebiten stops the loop
// instead of running on with half-updated state.
func (g *Game) Update() (err error) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Error("frame fault", zap.Any("panic", r))
			err = fmt.Errorf("frame fault: %v", r)
		}
	}()

	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent tunneling after a stalled frame.
	if deltaTime > g.cfg.MaxDelta {
		deltaTime = g.cfg.MaxDelta
	}

	// Update FPS calculation (update every 0.5 seconds)
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer >= 0.5 {
		if g.fpsUpdateCounter > 0 {
			g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
		}
		g.fpsUpdateCounter = 0
		g.fpsUpdateTimer = 0.0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		return nil
	}

	g.sim.Input.Poll()
	g.sim.Advance(deltaTime)
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.sim, g.fps, g.paused)
}

// Layout adopts the window size and reconfigures the camera bounds; the
// simulation itself is unaffected by a resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.sim.Camera.ScreenW || outsideHeight != g.sim.Camera.ScreenH {
		g.sim.Camera.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
