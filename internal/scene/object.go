// Package scene holds the minimal scene-object model the physics core
// operates on: a transform, an identity, and a typed component list.
package scene

import (
	"github.com/google/uuid"

	"kinetic/internal/vmath"
)

// Object is a scene entity. 2D objects share the type: they use the X/Y
// plane of the transform and the Z Euler angle, read through the 2D
// accessors.
type Object struct {
	ID   uuid.UUID
	Name string
	Is3D bool

	Position vmath.Vector3
	Rotation vmath.Vector3 // Euler angles in degrees
	Scale    vmath.Vector3

	components []Component
}

func NewObject(name string) *Object {
	return &Object{
		ID:    uuid.New(),
		Name:  name,
		Is3D:  true,
		Scale: vmath.Vector3One(),
	}
}

// NewObject2D builds a flat object addressed through the 2D accessors.
func NewObject2D(name string) *Object {
	o := NewObject(name)
	o.Is3D = false
	return o
}

func (o *Object) AddComponent(c Component) {
	o.components = append(o.components, c)
}

func (o *Object) Components() []Component {
	return o.components
}

// Position2D reads the X/Y plane of the transform.
func (o *Object) Position2D() vmath.Vector2 {
	return vmath.Vector2{X: o.Position.X, Y: o.Position.Y}
}

func (o *Object) SetPosition2D(p vmath.Vector2) {
	o.Position.X = p.X
	o.Position.Y = p.Y
}

func (o *Object) Scale2D() vmath.Vector2 {
	return vmath.Vector2{X: o.Scale.X, Y: o.Scale.Y}
}

// Rotation2D is the Z Euler angle, the only one meaningful in 2D.
func (o *Object) Rotation2D() float32 {
	return o.Rotation.Z
}

func (o *Object) SetRotation2D(deg float32) {
	o.Rotation.Z = deg
}
