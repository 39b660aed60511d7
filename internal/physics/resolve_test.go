package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/internal/components"
	"kinetic/internal/vmath"
)

func TestResolveCollision2DSeparatesPair(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1.5, 0, 2, 2)
	rbA := components.NewRigidbody2D(a.Position2D(), 1, true)
	rbB := components.NewRigidbody2D(b.Position2D(), 1, true)

	info := CheckCollision2D(a, b)
	require.True(t, info.Collided)
	require.True(t, ResolveCollision2D(info, rbA, rbB))

	// Equal masses split the correction evenly along -x for A, +x for B.
	assert.Less(t, rbA.Position.X, float32(0))
	assert.Greater(t, rbB.Position.X, float32(1.5))
	assert.InDelta(t, float64(rbB.Position.X-1.5), float64(-rbA.Position.X), 1e-5)

	// Corrections propagate to the scene transforms.
	assert.Equal(t, rbA.Position, a.Position2D())
	assert.Equal(t, rbB.Position, b.Position2D())
}

func TestResolveCollision2DAgainstStatic(t *testing.T) {
	// Falling crate on a static floor; Y-down, so the crate sits above
	// at smaller y and the separation normal on A points up (-y).
	crate := box2DAt("crate", 0, 8.5, 2, 2)
	floor := box2DAt("floor", 0, 10, 20, 2)
	rb := components.NewRigidbody2D(crate.Position2D(), 1, true)
	rb.Velocity = vmath.Vector2{Y: 10}
	rb.Restitution = 0.5

	info := CheckCollision2D(crate, floor)
	require.True(t, info.Collided)
	assert.Equal(t, vmath.Vector2{Y: -1}, info.Normal)

	require.True(t, ResolveCollision2D(info, rb, nil))

	// The static side absorbs nothing: the crate takes the full
	// correction and bounces with half its approach speed.
	assert.Less(t, rb.Position.Y, float32(8.5))
	assert.InDelta(t, -5, rb.Velocity.Y, 1e-4)
	assert.True(t, rb.IsGrounded)
}

func TestResolveCollision2DSkipsSeparatingVelocity(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1.5, 0, 2, 2)
	rbA := components.NewRigidbody2D(a.Position2D(), 1, true)
	rbB := components.NewRigidbody2D(b.Position2D(), 1, true)

	// Already flying apart: A along the normal (-x), B the other way.
	rbA.Velocity = vmath.Vector2{X: -3}
	rbB.Velocity = vmath.Vector2{X: 3}

	info := CheckCollision2D(a, b)
	require.True(t, ResolveCollision2D(info, rbA, rbB))

	// Positions still correct but velocities stay untouched.
	assert.Equal(t, vmath.Vector2{X: -3}, rbA.Velocity)
	assert.Equal(t, vmath.Vector2{X: 3}, rbB.Velocity)
}

func TestResolveCollision2DRestitutionIsMinimum(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1.5, 0, 2, 2)
	rbA := components.NewRigidbody2D(a.Position2D(), 1, true)
	rbB := components.NewRigidbody2D(b.Position2D(), 1, true)
	rbA.Restitution = 1.0
	rbB.Restitution = 0.0

	// A drives into B along +x; the contact normal on A is -x.
	rbA.Velocity = vmath.Vector2{X: 4}

	info := CheckCollision2D(a, b)
	require.True(t, ResolveCollision2D(info, rbA, rbB))

	// e = min(1, 0) = 0: the pair shares momentum without bounce.
	assert.InDelta(t, 2, rbA.Velocity.X, 1e-4)
	assert.InDelta(t, 2, rbB.Velocity.X, 1e-4)
}

func TestResolveCollision2DBothStatic(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1, 0, 2, 2)

	info := CheckCollision2D(a, b)
	require.True(t, info.Collided)
	assert.False(t, ResolveCollision2D(info, nil, nil))
}

func TestResolveCollision2DNoCollision(t *testing.T) {
	rb := components.NewRigidbody2D(vmath.Vector2{}, 1, true)
	assert.False(t, ResolveCollision2D(CollisionInfo2D{}, rb, nil))
}

func TestResolveCollision3DGrounded(t *testing.T) {
	// Y-up: a box resting on a floor below gets a +y normal and the
	// grounded flag.
	box := box3DAt("box", vmath.Vector3{Y: 0.8}, vmath.Vector3One())
	floor := box3DAt("floor", vmath.Vector3{Y: -1}, vmath.Vector3{X: 10, Y: 1, Z: 10})
	rb := components.NewRigidbody3D(box.Position, box.Rotation, 1, true)
	rb.Velocity = vmath.Vector3{Y: -4}
	rb.Restitution = 0

	info := CheckCollision3D(box, floor)
	require.True(t, info.Collided)
	assert.Equal(t, vmath.Vector3{Y: 1}, info.Normal)

	require.True(t, ResolveCollision3D(info, rb, nil))
	assert.True(t, rb.IsGrounded)
	assert.InDelta(t, 0, rb.Velocity.Y, 1e-4)
	assert.Greater(t, rb.Position.Y, float32(0.8))
	assert.Equal(t, rb.Position, box.Position)
}

func TestResolveCollision3DMassWeightedCorrection(t *testing.T) {
	a := box3DAt("a", vmath.Vector3{}, vmath.Vector3One())
	b := box3DAt("b", vmath.Vector3{X: 1.5}, vmath.Vector3One())
	light := components.NewRigidbody3D(a.Position, a.Rotation, 1, true)
	heavy := components.NewRigidbody3D(b.Position, b.Rotation, 9, true)

	info := CheckCollision3D(a, b)
	require.True(t, ResolveCollision3D(info, light, heavy))

	// The light body takes nine tenths of the correction.
	lightShift := -light.Position.X
	heavyShift := heavy.Position.X - 1.5
	require.Greater(t, lightShift, float32(0))
	require.Greater(t, heavyShift, float32(0))
	assert.InDelta(t, 9, lightShift/heavyShift, 1e-3)
}

func nilObjectInfo() CollisionInfo2D {
	return CollisionInfo2D{
		Collided:    true,
		Normal:      vmath.Vector2{X: -1},
		Penetration: 0.5,
	}
}

func TestResolveCollision2DWithoutSceneObjects(t *testing.T) {
	// Raw infos without scene objects still resolve body state.
	rb := components.NewRigidbody2D(vmath.Vector2{}, 1, true)
	require.True(t, ResolveCollision2D(nilObjectInfo(), rb, nil))
	assert.Less(t, rb.Position.X, float32(0))
}
