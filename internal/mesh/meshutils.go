// Package mesh provides geometry helpers for triangle meshes: face and
// smooth vertex normals, bounding boxes, per-vertex transforms, and fan
// triangulation. Everything here is pure; no mesh type is imposed, the
// helpers work on vertex and index slices.
package mesh

import (
	"math"

	"kinetic/internal/vmath"
)

// CalculateFaceNormal returns the unit normal of the triangle (v1, v2, v3),
// taken as the cross product of the edges v2-v1 and v3-v1 (right-handed,
// counter-clockwise winding faces the viewer). Degenerate triangles yield
// the up vector.
func CalculateFaceNormal(v1, v2, v3 vmath.Vector3) vmath.Vector3 {
	edge1 := v2.Sub(v1)
	edge2 := v3.Sub(v1)
	normal := edge1.Cross(edge2)
	if normal.MagnitudeSqr() == 0 {
		return vmath.Vector3Up()
	}
	return normal.Normalize()
}

// CalculateSmoothNormals averages the face normals of every triangle
// sharing a vertex. Vertices referenced by no triangle, or whose incident
// normals cancel out, get a zero normal. Triangle indices outside the
// vertex slice are skipped.
func CalculateSmoothNormals(vertices []vmath.Vector3, triangles [][3]int) []vmath.Vector3 {
	normals := make([]vmath.Vector3, len(vertices))
	for _, tri := range triangles {
		i1, i2, i3 := tri[0], tri[1], tri[2]
		if i1 < 0 || i2 < 0 || i3 < 0 ||
			i1 >= len(vertices) || i2 >= len(vertices) || i3 >= len(vertices) {
			continue
		}
		n := CalculateFaceNormal(vertices[i1], vertices[i2], vertices[i3])
		normals[i1] = normals[i1].Add(n)
		normals[i2] = normals[i2].Add(n)
		normals[i3] = normals[i3].Add(n)
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

// GetAABB returns the axis-aligned bounding box of a vertex cloud.
// ok is false for an empty slice, in which case min and max are zero.
func GetAABB(vertices []vmath.Vector3) (min, max vmath.Vector3, ok bool) {
	if len(vertices) == 0 {
		return vmath.Vector3{}, vmath.Vector3{}, false
	}
	min, max = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		if v.X < min.X {
			min.X = v.X
		}
		if v.X > max.X {
			max.X = v.X
		}
		if v.Y < min.Y {
			min.Y = v.Y
		}
		if v.Y > max.Y {
			max.Y = v.Y
		}
		if v.Z < min.Z {
			min.Z = v.Z
		}
		if v.Z > max.Z {
			max.Z = v.Z
		}
	}
	return min, max, true
}

// TransformVertex applies scale, then Euler rotation in Z, Y, X order
// (degrees), then translation. A stand-in for a full 4x4 matrix pipeline;
// adequate for editor gizmos and collider fitting.
func TransformVertex(vertex, position, rotation, scale vmath.Vector3) vmath.Vector3 {
	v := vertex.Mul(scale)

	if rotation.Z != 0 {
		rad := float64(vmath.DegToRad(rotation.Z))
		cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
		v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	}
	if rotation.Y != 0 {
		rad := float64(vmath.DegToRad(rotation.Y))
		cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
		v.X, v.Z = v.X*cos+v.Z*sin, v.Z*cos-v.X*sin
	}
	if rotation.X != 0 {
		rad := float64(vmath.DegToRad(rotation.X))
		cos, sin := float32(math.Cos(rad)), float32(math.Sin(rad))
		v.Y, v.Z = v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos
	}

	return v.Add(position)
}

// TriangulatePolygon fans a convex polygon's index loop into triangles
// anchored at the first index. Fewer than three indices yields nil.
func TriangulatePolygon(indices []int) [][3]int {
	if len(indices) < 3 {
		return nil
	}
	triangles := make([][3]int, 0, len(indices)-2)
	for i := 1; i < len(indices)-1; i++ {
		triangles = append(triangles, [3]int{indices[0], indices[i], indices[i+1]})
	}
	return triangles
}
