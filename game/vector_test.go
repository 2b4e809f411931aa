package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, -2, 3}
	b := Vec3{0.5, 4, -1}

	require.Equal(t, Vec3{1.5, 2, 2}, a.Add(b))
	require.Equal(t, Vec3{0.5, -6, 4}, a.Sub(b))
	require.Equal(t, Vec3{2, -4, 6}, a.Scale(2))
	require.Equal(t, Vec3{}, a.Scale(0))
}

func TestVec3ScaleIsDisplacement(t *testing.T) {
	// Velocity times a timestep yields the per-frame displacement the
	// physics pass applies.
	vel := Vec3{X: 5, Y: -25, Z: 0}
	const dt = 1.0 / 60.0
	delta := vel.Scale(dt)

	require.InDelta(t, 5.0/60.0, delta.X, 1e-12)
	require.InDelta(t, -25.0/60.0, delta.Y, 1e-12)
	require.Zero(t, delta.Z)
}
