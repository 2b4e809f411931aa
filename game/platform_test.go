package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPlatformPlacement(t *testing.T) {
	// Left/top origin converts to center placement.
	p := NewPlatform(-7.5, 0, 15, 0.5, 2)

	require.InDelta(t, 0.0, p.Pos.X, 1e-12)
	require.InDelta(t, -0.25, p.Pos.Y, 1e-12)
	require.InDelta(t, -7.5, p.LeftEdge(), 1e-12)
	require.InDelta(t, 7.5, p.RightEdge(), 1e-12)
	require.InDelta(t, 0.0, p.Top(), 1e-12)

	// Collider tracks the position.
	require.InDelta(t, -0.5, p.Collider.Min.Y, 1e-12)
	require.InDelta(t, 0.0, p.Collider.Max.Y, 1e-12)
}

func TestPlatformColliderRefreshAfterShift(t *testing.T) {
	p := NewPlatform(0, 1, 2, 0.5, 2)
	before := p.Collider

	p.Pos.X -= 3
	p.RefreshCollider()

	require.InDelta(t, before.Min.X-3, p.Collider.Min.X, 1e-12)
	require.InDelta(t, before.Max.X-3, p.Collider.Max.X, 1e-12)
	require.Equal(t, before.Min.Y, p.Collider.Min.Y)
}

func TestRegistryRemoveAt(t *testing.T) {
	reg := NewRegistry()
	a := NewPlatform(0, 0, 1, 0.5, 2)
	b := NewPlatform(2, 0, 1, 0.5, 2)
	c := NewPlatform(4, 0, 1, 0.5, 2)
	reg.Add(a)
	reg.Add(b)
	reg.Add(c)

	reg.RemoveAt(1)

	require.Equal(t, 2, reg.Len())
	require.Same(t, a, reg.At(0))
	require.Same(t, c, reg.At(1))
}

func TestRegistryReverseRemovalIsSafe(t *testing.T) {
	reg := NewRegistry()
	for i := 0; i < 5; i++ {
		reg.Add(NewPlatform(float64(i*2), 0, 1, 0.5, 2))
	}

	// Remove every other platform scanning in reverse, the way retirement does.
	for i := reg.Len() - 1; i >= 0; i-- {
		if i%2 == 0 {
			reg.RemoveAt(i)
		}
	}

	require.Equal(t, 2, reg.Len())
	require.InDelta(t, 2.0, reg.At(0).LeftEdge(), 1e-12)
	require.InDelta(t, 6.0, reg.At(1).LeftEdge(), 1e-12)
}
