package game

// AABB is an axis-aligned bounding box in world space.
// Invariant: Min <= Max component-wise.
type AABB struct {
	Min, Max Vec3
}

// NewAABBFromCenter creates an AABB from a center point and half extents.
func NewAABBFromCenter(center, half Vec3) AABB {
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// SetFromCenter repositions the box around center with the given half extents.
func (a *AABB) SetFromCenter(center, half Vec3) {
	a.Min = center.Sub(half)
	a.Max = center.Add(half)
}

// Intersects reports whether the boxes overlap or touch.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Overlap returns the component-wise size of the intersection region.
// Components are clamped to zero when the boxes are disjoint on that axis.
func (a AABB) Overlap(b AABB) Vec3 {
	return Vec3{
		X: overlapExtent(a.Min.X, a.Max.X, b.Min.X, b.Max.X),
		Y: overlapExtent(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y),
		Z: overlapExtent(a.Min.Z, a.Max.Z, b.Min.Z, b.Max.Z),
	}
}

func overlapExtent(aMin, aMax, bMin, bMax float64) float64 {
	lo := aMin
	if bMin > lo {
		lo = bMin
	}
	hi := aMax
	if bMax < hi {
		hi = bMax
	}
	if hi < lo {
		return 0
	}
	return hi - lo
}
