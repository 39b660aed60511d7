package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/internal/components"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

func box2DAt(name string, x, y, width, height float32) *scene.Object {
	o := scene.NewObject2D(name)
	o.SetPosition2D(vmath.Vector2{X: x, Y: y})
	o.AddComponent(components.NewBoxCollider2D(width, height))
	return o
}

func TestCheckCollision2DOverlap(t *testing.T) {
	// Two 2x2 boxes, centers 1.5 apart on x: overlap = 1+1-1.5 = 0.5.
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1.5, 0, 2, 2)

	info := CheckCollision2D(a, b)
	require.True(t, info.Collided)
	assert.InDelta(t, 0.5, info.Penetration, 1e-6)
	// B is on A's positive x side, so A separates along -x.
	assert.Equal(t, vmath.Vector2{X: -1}, info.Normal)
	assert.Same(t, a, info.A)
	assert.Same(t, b, info.B)
}

func TestCheckCollision2DNormalFlipsWithSide(t *testing.T) {
	a := box2DAt("a", 1.5, 0, 2, 2)
	b := box2DAt("b", 0, 0, 2, 2)

	info := CheckCollision2D(a, b)
	require.True(t, info.Collided)
	assert.Equal(t, vmath.Vector2{X: 1}, info.Normal)
}

func TestCheckCollision2DSeparated(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 3, 0, 2, 2)

	assert.False(t, CheckCollision2D(a, b).Collided)

	// Exact touch counts as no collision.
	c := box2DAt("c", 2, 0, 2, 2)
	assert.False(t, CheckCollision2D(a, c).Collided)
}

func TestCheckCollision2DSymmetric(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1, 0.5, 2, 2)

	ab := CheckCollision2D(a, b)
	ba := CheckCollision2D(b, a)
	require.True(t, ab.Collided)
	require.True(t, ba.Collided)
	assert.InDelta(t, ab.Penetration, ba.Penetration, 1e-6)
	assert.Equal(t, ab.Normal, ba.Normal.Neg())
}

func TestCheckCollision2DMinAxisWins(t *testing.T) {
	// Deep x overlap, shallow y overlap: separation goes along y.
	a := box2DAt("a", 0, 0, 4, 2)
	b := box2DAt("b", 0.5, 1.8, 4, 2)

	info := CheckCollision2D(a, b)
	require.True(t, info.Collided)
	assert.Equal(t, float32(0), info.Normal.X)
	assert.Equal(t, float32(-1), info.Normal.Y)
	assert.InDelta(t, 0.2, info.Penetration, 1e-5)
}

func TestCheckCollision2DTieBreaksToX(t *testing.T) {
	// Equal overlap on both axes.
	a := box2DAt("a", 0, 0, 2, 2)
	b := box2DAt("b", 1, 1, 2, 2)

	info := CheckCollision2D(a, b)
	require.True(t, info.Collided)
	assert.Equal(t, vmath.Vector2{X: -1}, info.Normal)
}

func TestCheckCollision2DScaleAndOffset(t *testing.T) {
	// Unit box scaled 4x on x: world half-extent 2. An offset shifts the
	// collider center away from the object position.
	a := box2DAt("a", 0, 0, 1, 1)
	a.Scale = vmath.Vector3{X: 4, Y: 1, Z: 1}

	b := box2DAt("b", 2.2, 0, 1, 1)
	assert.True(t, CheckCollision2D(a, b).Collided)

	collider := scene.GetComponent[*components.BoxCollider2D](b)
	collider.Offset = vmath.Vector2{X: 5}
	assert.False(t, CheckCollision2D(a, b).Collided)
}

func TestCheckCollision2DUnsupportedCollider(t *testing.T) {
	a := box2DAt("a", 0, 0, 2, 2)

	circle := scene.NewObject2D("circle")
	circle.AddComponent(components.NewCircleCollider2D(1))

	assert.False(t, CheckCollision2D(a, circle).Collided)
	assert.False(t, CheckCollision2D(circle, a).Collided)

	bare := scene.NewObject2D("bare")
	assert.False(t, CheckCollision2D(a, bare).Collided)
}
