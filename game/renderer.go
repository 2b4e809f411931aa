package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Color constants
var (
	colorBackground = color.NRGBA{R: 16, G: 20, B: 38, A: 255}
	colorBackdrop   = color.NRGBA{R: 30, G: 38, B: 66, A: 255}
	colorPlatform   = color.NRGBA{R: 72, G: 160, B: 96, A: 255}
	colorPlayer     = color.NRGBA{R: 230, G: 180, B: 60, A: 255}
	colorPlayerAir  = color.NRGBA{R: 240, G: 210, B: 120, A: 255}
	colorHUD        = color.NRGBA{R: 200, G: 210, B: 230, A: 255}
)

// Backdrop geometry constants
const (
	parallaxFactor  = 0.2  // backdrop scrolls at this fraction of the world
	backdropSpacing = 6.0  // world units between backdrop columns
	backdropWidth   = 3.2  // world units
	backdropBaseY   = -2.0 // world Y of the tallest column tops
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Renderer draws the simulation through the camera transform. Drawing is
// immediate mode: every frame it walks the registry and the player, so
// there is no retained scene graph to keep in sync with retirement.
type Renderer struct {
	camera *Camera
}

// NewRenderer creates a renderer for the given camera.
func NewRenderer(camera *Camera) *Renderer {
	return &Renderer{camera: camera}
}

// Render draws the backdrop, platforms, player and HUD.
func (r *Renderer) Render(screen *ebiten.Image, sim *Simulation, fps float64, paused bool) {
	screen.Fill(colorBackground)

	r.renderBackdrop(screen, sim.Distance)

	for _, p := range sim.Platforms.All() {
		r.renderBox(screen, p.LeftEdge(), p.Top(), p.Width, p.Height, colorPlatform)
	}

	pl := sim.Player
	clr := colorPlayer
	if !pl.OnGround {
		clr = colorPlayerAir
	}
	r.renderBox(screen, pl.Pos.X-pl.Half.X, pl.Pos.Y+pl.Half.Y, pl.Half.X*2, pl.Half.Y*2, clr)

	hud := fmt.Sprintf("FPS: %.0f  Platforms: %d", fps, sim.Platforms.Len())
	if paused {
		hud += "  [PAUSED]"
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colorHUD)
	text.Draw(screen, hud, hudFace, op)
}

// renderBox draws a world-space rectangle given its left/top corner.
func (r *Renderer) renderBox(screen *ebiten.Image, left, top, width, height float64, clr color.NRGBA) {
	sx, sy := r.camera.WorldToScreen(left, top)
	w := width * r.camera.PixelsPerUnit
	h := height * r.camera.PixelsPerUnit
	vector.DrawFilledRect(screen, float32(sx), float32(sy), float32(w), float32(h), clr, true)
}

// renderBackdrop draws a row of distant columns scrolling at a fraction of
// the world speed, wrapped by their spacing so the band is seamless.
func (r *Renderer) renderBackdrop(screen *ebiten.Image, distance float64) {
	view := r.camera.CurrentView()
	offset := distance * parallaxFactor

	// Index of the first column whose right side could still be visible.
	first := int(math.Floor((view.Left + offset) / backdropSpacing))
	last := int(math.Ceil((view.Right + offset) / backdropSpacing))

	for k := first; k <= last; k++ {
		left := float64(k)*backdropSpacing - offset
		// Vary column height with a cheap integer hash so the band does not
		// look periodic.
		hash := uint64(k) * 2654435761
		top := backdropBaseY + float64(hash%5)*0.9
		bottom := view.Bottom
		r.renderBox(screen, left, top, backdropWidth, top-bottom, colorBackdrop)
	}
}
