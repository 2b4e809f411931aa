package game

// Platform is a static collidable slab. Platforms never move on their own,
// but the scroller shifts them left every frame, so the collider is
// recomputed after every position change.
type Platform struct {
	// Pos is the platform center in world coordinates
	Pos Vec3

	// Width and Height are the collidable extents; Depth is cosmetic
	Width, Height, Depth float64

	// Collider is the platform's AABB, derived from Pos
	Collider AABB
}

// NewPlatform creates a platform from its left edge x and top edge y.
// Generation works in left/top coordinates; placement converts to the
// center-based convention the colliders use.
func NewPlatform(x, y, width, height, depth float64) *Platform {
	p := &Platform{
		Pos:    Vec3{X: x + width/2, Y: y - height/2, Z: 0},
		Width:  width,
		Height: height,
		Depth:  depth,
	}
	p.RefreshCollider()
	return p
}

// RefreshCollider recomputes the collider from the current position.
func (p *Platform) RefreshCollider() {
	p.Collider.SetFromCenter(p.Pos, Vec3{X: p.Width / 2, Y: p.Height / 2, Z: p.Depth / 2})
}

// LeftEdge returns the world X of the platform's left face.
func (p *Platform) LeftEdge() float64 {
	return p.Pos.X - p.Width/2
}

// RightEdge returns the world X of the platform's right face.
func (p *Platform) RightEdge() float64 {
	return p.Pos.X + p.Width/2
}

// Top returns the world Y of the platform's upper face.
func (p *Platform) Top() float64 {
	return p.Pos.Y + p.Height/2
}

// Registry is the ordered collection of live platforms. Order is creation
// order; retirement scans in reverse index order so removal is safe while
// iterating.
type Registry struct {
	platforms []*Platform
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{platforms: make([]*Platform, 0, 64)}
}

// Add appends a platform.
func (r *Registry) Add(p *Platform) {
	r.platforms = append(r.platforms, p)
}

// RemoveAt deletes the platform at index i, preserving the order of the rest.
func (r *Registry) RemoveAt(i int) {
	r.platforms = append(r.platforms[:i], r.platforms[i+1:]...)
}

// Len returns the number of live platforms.
func (r *Registry) Len() int {
	return len(r.platforms)
}

// At returns the platform at index i.
func (r *Registry) At(i int) *Platform {
	return r.platforms[i]
}

// All returns the underlying slice for iteration. Callers must not retain it
// across frames.
func (r *Registry) All() []*Platform {
	return r.platforms
}
