package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/internal/vmath"
)

type stubComponent struct {
	tag string
}

func (s *stubComponent) TypeName() string { return "Stub" }
func (s *stubComponent) Serialize() map[string]any {
	return map[string]any{"type": "Stub", "tag": s.tag}
}
func (s *stubComponent) Deserialize(d map[string]any) { s.tag, _ = d["tag"].(string) }

type otherComponent struct{}

func (o *otherComponent) TypeName() string           { return "Other" }
func (o *otherComponent) Serialize() map[string]any  { return map[string]any{"type": "Other"} }
func (o *otherComponent) Deserialize(map[string]any) {}

func TestNewObject(t *testing.T) {
	o := NewObject("crate")

	assert.Equal(t, "crate", o.Name)
	assert.True(t, o.Is3D)
	assert.Equal(t, vmath.Vector3One(), o.Scale)
	assert.NotEqual(t, NewObject("crate").ID, o.ID)
}

func TestGetComponent(t *testing.T) {
	o := NewObject("player")
	first := &stubComponent{tag: "first"}
	o.AddComponent(first)
	o.AddComponent(&otherComponent{})
	o.AddComponent(&stubComponent{tag: "second"})

	got := GetComponent[*stubComponent](o)
	require.NotNil(t, got)
	assert.Equal(t, "first", got.tag, "first match wins")

	assert.Nil(t, GetComponent[*stubComponent](NewObject("empty")))
	assert.Len(t, o.Components(), 3)
}

func Test2DAccessors(t *testing.T) {
	o := NewObject2D("sprite")
	assert.False(t, o.Is3D)

	o.SetPosition2D(vmath.Vector2{X: 10, Y: 20})
	assert.Equal(t, vmath.Vector2{X: 10, Y: 20}, o.Position2D())
	assert.Equal(t, float32(0), o.Position.Z)

	o.SetRotation2D(45)
	assert.Equal(t, float32(45), o.Rotation2D())
	assert.Equal(t, float32(45), o.Rotation.Z)

	o.Scale = vmath.Vector3{X: 2, Y: 3, Z: 1}
	assert.Equal(t, vmath.Vector2{X: 2, Y: 3}, o.Scale2D())
}

func TestRegistryUnknownType(t *testing.T) {
	_, err := NewComponent("NeverRegistered")
	assert.ErrorIs(t, err, ErrUnknownComponent)
}
