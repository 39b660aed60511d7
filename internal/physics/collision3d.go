package physics

import (
	"kinetic/internal/components"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

// CollisionInfo3D is the transient result of one pairwise 3D check.
// Contacts may be empty: the AABB path produces normal and depth only.
type CollisionInfo3D struct {
	Collided    bool
	Normal      vmath.Vector3
	Penetration float32
	A, B        *scene.Object
	Contacts    []vmath.Vector3
}

type box3D struct {
	halfExtents vmath.Vector3
	center      vmath.Vector3
}

func boxData3D(o *scene.Object) (box3D, bool) {
	box := scene.GetComponent[*components.BoxCollider3D](o)
	if box == nil {
		return box3D{}, false
	}
	return box3D{
		halfExtents: box.HalfExtents.Mul(o.Scale),
		center:      o.Position.Add(box.Offset),
	}, true
}

// CheckCollision3D tests two scene objects for overlap. Only box-vs-box
// is implemented; sphere pairings are an extension point and report no
// collision. Rotation is ignored: a rotated box is tested as if it were
// axis-aligned.
func CheckCollision3D(a, b *scene.Object) CollisionInfo3D {
	colA, okA := boxData3D(a)
	colB, okB := boxData3D(b)
	if !okA || !okB {
		return CollisionInfo3D{}
	}

	delta := colB.center.Sub(colA.center)

	xOverlap := colA.halfExtents.X + colB.halfExtents.X - abs(delta.X)
	yOverlap := colA.halfExtents.Y + colB.halfExtents.Y - abs(delta.Y)
	zOverlap := colA.halfExtents.Z + colB.halfExtents.Z - abs(delta.Z)

	if xOverlap <= 0 || yOverlap <= 0 || zOverlap <= 0 {
		return CollisionInfo3D{}
	}

	// Separate along the minimum-overlap axis; ties resolve in x, y, z order.
	penetration := xOverlap
	normal := vmath.Vector3{X: mtvSign(delta.X)}
	if yOverlap < penetration {
		penetration = yOverlap
		normal = vmath.Vector3{Y: mtvSign(delta.Y)}
	}
	if zOverlap < penetration {
		penetration = zOverlap
		normal = vmath.Vector3{Z: mtvSign(delta.Z)}
	}

	return CollisionInfo3D{
		Collided:    true,
		Normal:      normal,
		Penetration: penetration,
		A:           a,
		B:           b,
	}
}
