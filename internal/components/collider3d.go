package components

import (
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

func init() {
	scene.RegisterComponent("BoxCollider3D", func() scene.Component {
		return NewBoxCollider3D(vmath.Vector3One())
	})
	scene.RegisterComponent("SphereCollider3D", func() scene.Component {
		return NewSphereCollider3D(0.5)
	})
}

// BoxCollider3D is an axis-aligned box described by local half-extents;
// the world half-extents are scaled componentwise by the owning object's
// scale, recomputed per check.
type BoxCollider3D struct {
	HalfExtents vmath.Vector3
	Offset      vmath.Vector3
}

func NewBoxCollider3D(halfExtents vmath.Vector3) *BoxCollider3D {
	return &BoxCollider3D{HalfExtents: halfExtents}
}

func (b *BoxCollider3D) TypeName() string {
	return "BoxCollider3D"
}

func (b *BoxCollider3D) Serialize() map[string]any {
	return map[string]any{
		"type":         "BoxCollider3D",
		"half_extents": []float32{b.HalfExtents.X, b.HalfExtents.Y, b.HalfExtents.Z},
		"offset":       []float32{b.Offset.X, b.Offset.Y, b.Offset.Z},
	}
}

func (b *BoxCollider3D) Deserialize(data map[string]any) {
	b.HalfExtents = recordVec3(data, "half_extents", b.HalfExtents)
	b.Offset = recordVec3(data, "offset", b.Offset)
}

func (b *BoxCollider3D) GetSchema() Schema {
	return Schema{
		"half_extents": {Type: "vector3", Label: "Half Extents"},
		"offset":       {Type: "vector3", Label: "Center Offset"},
	}
}

// SphereCollider3D is a declared extension point: the detector does not
// test spheres yet and reports no collision for pairings that involve one.
type SphereCollider3D struct {
	Radius float32
	Offset vmath.Vector3
}

func NewSphereCollider3D(radius float32) *SphereCollider3D {
	return &SphereCollider3D{Radius: radius}
}

func (s *SphereCollider3D) TypeName() string {
	return "SphereCollider3D"
}

func (s *SphereCollider3D) Serialize() map[string]any {
	return map[string]any{
		"type":   "SphereCollider3D",
		"radius": s.Radius,
		"offset": []float32{s.Offset.X, s.Offset.Y, s.Offset.Z},
	}
}

func (s *SphereCollider3D) Deserialize(data map[string]any) {
	s.Radius = recordFloat(data, "radius", s.Radius)
	s.Offset = recordVec3(data, "offset", s.Offset)
}

func (s *SphereCollider3D) GetSchema() Schema {
	return Schema{
		"radius": {Type: "float", Label: "Radius", Min: 0.01, Max: 10000.0},
		"offset": {Type: "vector3", Label: "Center Offset"},
	}
}
