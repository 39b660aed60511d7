package physics

import (
	"kinetic/internal/components"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

// CollisionInfo2D is the transient result of one pairwise check. Normal
// is the MTV direction pointing from B toward A (the direction A moves to
// separate); Penetration is the overlap depth along it.
type CollisionInfo2D struct {
	Collided    bool
	Normal      vmath.Vector2
	Penetration float32
	A, B        *scene.Object
}

// box2D is the standardized collider data extracted per check: world
// half-extents (local size scaled by the object scale) and world center
// (object position plus local offset). Never cached.
type box2D struct {
	halfExtents vmath.Vector2
	center      vmath.Vector2
}

func boxData2D(o *scene.Object) (box2D, bool) {
	box := scene.GetComponent[*components.BoxCollider2D](o)
	if box == nil {
		return box2D{}, false
	}
	scale := o.Scale2D()
	return box2D{
		halfExtents: vmath.Vector2{X: box.Width * scale.X / 2, Y: box.Height * scale.Y / 2},
		center:      o.Position2D().Add(box.Offset),
	}, true
}

// CheckCollision2D tests two scene objects for overlap. Only box-vs-box
// is implemented; any pairing involving an unsupported collider reports
// no collision. Rotation is ignored: boxes are tested axis-aligned.
func CheckCollision2D(a, b *scene.Object) CollisionInfo2D {
	colA, okA := boxData2D(a)
	colB, okB := boxData2D(b)
	if !okA || !okB {
		return CollisionInfo2D{}
	}

	delta := colB.center.Sub(colA.center)

	xOverlap := colA.halfExtents.X + colB.halfExtents.X - abs(delta.X)
	yOverlap := colA.halfExtents.Y + colB.halfExtents.Y - abs(delta.Y)

	if xOverlap <= 0 || yOverlap <= 0 {
		return CollisionInfo2D{}
	}

	// Separate along the minimum-overlap axis; ties go to x.
	penetration := xOverlap
	normal := vmath.Vector2{X: mtvSign(delta.X)}
	if yOverlap < penetration {
		penetration = yOverlap
		normal = vmath.Vector2{Y: mtvSign(delta.Y)}
	}

	return CollisionInfo2D{
		Collided:    true,
		Normal:      normal,
		Penetration: penetration,
		A:           a,
		B:           b,
	}
}

// mtvSign orients the MTV normal away from B: positive along the axis
// when B's center sits on the negative side of A's.
func mtvSign(delta float32) float32 {
	if delta < 0 {
		return 1
	}
	return -1
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
