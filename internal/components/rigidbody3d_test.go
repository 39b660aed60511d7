package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinetic/internal/vmath"
)

func TestNewRigidbody3DDefaults(t *testing.T) {
	rb := NewRigidbody3D(vmath.Vector3{X: 1, Y: 2, Z: 3}, vmath.Vector3{Y: 90}, 2, true)

	assert.Equal(t, vmath.Vector3{X: 1, Y: 2, Z: 3}, rb.Position)
	assert.Equal(t, vmath.Vector3{Y: 90}, rb.Rotation)
	assert.Equal(t, float32(0.5), rb.InvMass)
	assert.Equal(t, vmath.Vector3One(), rb.Inertia)
	assert.Equal(t, vmath.Vector3One(), rb.InvInertia)
}

func TestRigidbody3DSetInertia(t *testing.T) {
	rb := NewRigidbody3D(vmath.Vector3{}, vmath.Vector3{}, 1, true)

	rb.SetInertia(vmath.Vector3{X: 2, Y: 4, Z: 0})
	assert.Equal(t, float32(0.5), rb.InvInertia.X)
	assert.Equal(t, float32(0.25), rb.InvInertia.Y)
	// Zero inertia locks the axis instead of dividing by zero.
	assert.Equal(t, float32(0), rb.InvInertia.Z)
}

func TestRigidbody3DInertiaFromBox(t *testing.T) {
	rb := NewRigidbody3D(vmath.Vector3{}, vmath.Vector3{}, 12, true)

	// Half-extents (0.5, 1, 1.5) give full extents w=1, h=2, d=3.
	rb.SetInertiaFromBox(vmath.Vector3{X: 0.5, Y: 1, Z: 1.5})

	// I = m/12 * (sum of squared perpendicular extents), m/12 = 1.
	assert.InDelta(t, 13, rb.Inertia.X, 1e-4) // h^2+d^2 = 4+9
	assert.InDelta(t, 10, rb.Inertia.Y, 1e-4) // w^2+d^2 = 1+9
	assert.InDelta(t, 5, rb.Inertia.Z, 1e-4)  // w^2+h^2 = 1+4
}

func TestRigidbody3DAddForceAtPoint(t *testing.T) {
	rb := NewRigidbody3D(vmath.Vector3{}, vmath.Vector3{}, 1, true)

	// Force +Y at a point one unit along +X: torque = x cross y = +Z.
	rb.AddForceAtPoint(vmath.Vector3{Y: 10}, vmath.Vector3{X: 1})

	assert.Equal(t, vmath.Vector3{Y: 10}, rb.ForceAccumulator)
	assert.Equal(t, vmath.Vector3{Z: 10}, rb.TorqueAccumulator)

	// Force through the center of mass adds no torque.
	rb.ClearAccumulators()
	rb.AddForceAtPoint(vmath.Vector3{Y: 10}, rb.Position)
	assert.Equal(t, vmath.Vector3{}, rb.TorqueAccumulator)
}

func TestRigidbody3DSerializeRoundTrip(t *testing.T) {
	rb := NewRigidbody3D(vmath.Vector3{X: 5}, vmath.Vector3{}, 2.5, false)
	rb.Velocity = vmath.Vector3{X: 1, Y: 2, Z: 3}
	rb.AngularVelocity = vmath.Vector3{Z: 180}

	record := rb.Serialize()
	assert.Equal(t, "Rigidbody3D", record["type"])
	assert.NotContains(t, record, "position")
	assert.NotContains(t, record, "inertia")

	restored := NewRigidbody3D(vmath.Vector3{}, vmath.Vector3{}, 1, true)
	restored.Deserialize(record)

	assert.Equal(t, rb.Mass, restored.Mass)
	assert.False(t, restored.IsDynamic)
	assert.True(t, restored.IsKinematic)
	assert.Equal(t, rb.Velocity, restored.Velocity)
	assert.Equal(t, rb.AngularVelocity, restored.AngularVelocity)
}

func TestNewRigidbody3DFromRecordDerivesInertia(t *testing.T) {
	record := map[string]any{
		"mass":       float64(12),
		"is_dynamic": true,
		"collider_data": map[string]any{
			"type":         "BoxCollider3D",
			"half_extents": []any{float64(0.5), float64(1), float64(1.5)},
		},
	}

	rb := NewRigidbody3DFromRecord(record, vmath.Vector3{}, vmath.Vector3{})
	require.NotNil(t, rb)
	assert.InDelta(t, 13, rb.Inertia.X, 1e-4)
	assert.InDelta(t, 10, rb.Inertia.Y, 1e-4)
	assert.InDelta(t, 5, rb.Inertia.Z, 1e-4)
}

func TestNewRigidbody3DFromRecordNoColliderKeepsUnitInertia(t *testing.T) {
	rb := NewRigidbody3DFromRecord(map[string]any{"mass": float64(3)},
		vmath.Vector3{}, vmath.Vector3{})
	assert.Equal(t, vmath.Vector3One(), rb.Inertia)
}
