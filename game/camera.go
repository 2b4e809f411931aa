package game

// View is the camera's visible window in world coordinates.
type View struct {
	Left, Right, Top, Bottom float64
}

// Camera maps between world units and screen pixels. The vertical view
// extent is fixed in world units; the horizontal extent follows the window's
// aspect ratio, so resizing widens or narrows the view without rescaling the
// world.
type Camera struct {
	// X, Y is the camera center in world coordinates
	X, Y float64

	// HalfW, HalfH are the view half extents in world units
	HalfW, HalfH float64

	// PixelsPerUnit is the world-to-screen scale
	PixelsPerUnit float64

	// ScreenW, ScreenH is the window size in pixels
	ScreenW, ScreenH int
}

// NewCamera creates a camera showing viewHeight world units vertically.
func NewCamera(screenW, screenH int, viewHeight float64) *Camera {
	c := &Camera{}
	c.resize(screenW, screenH, viewHeight)
	return c
}

// Resize reconfigures the view for a new window size, keeping the vertical
// world extent constant. Safe to call mid-session; simulation state is
// untouched.
func (c *Camera) Resize(screenW, screenH int) {
	c.resize(screenW, screenH, c.HalfH*2)
}

func (c *Camera) resize(screenW, screenH int, viewHeight float64) {
	c.ScreenW = screenW
	c.ScreenH = screenH
	c.PixelsPerUnit = float64(screenH) / viewHeight
	c.HalfH = viewHeight / 2
	c.HalfW = float64(screenW) / c.PixelsPerUnit / 2
}

// Follow eases the camera toward the target X by the given per-frame factor.
func (c *Camera) Follow(targetX, factor float64) {
	c.X += (targetX - c.X) * factor
}

// CurrentView returns the visible world-space window.
func (c *Camera) CurrentView() View {
	return View{
		Left:   c.X - c.HalfW,
		Right:  c.X + c.HalfW,
		Top:    c.Y + c.HalfH,
		Bottom: c.Y - c.HalfH,
	}
}

// WorldToScreen converts a world position to screen pixels. World Y points
// up; screen Y points down.
func (c *Camera) WorldToScreen(wx, wy float64) (float64, float64) {
	sx := (wx-c.X)*c.PixelsPerUnit + float64(c.ScreenW)/2
	sy := float64(c.ScreenH)/2 - (wy-c.Y)*c.PixelsPerUnit
	return sx, sy
}
