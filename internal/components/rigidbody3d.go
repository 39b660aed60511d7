package components

import (
	"go.uber.org/zap"

	"kinetic/internal/log"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

func init() {
	scene.RegisterComponent("Rigidbody3D", func() scene.Component {
		return NewRigidbody3D(vmath.Vector3{}, vmath.Vector3{}, 1.0, true)
	})
}

// Rigidbody3D is the physical state of a 3D scene object. Rotation is
// stored as Euler angles, which is gimbal-prone; acceptable for the simple
// integration done here but not for arbitrary orientation work.
type Rigidbody3D struct {
	Position        vmath.Vector3
	Velocity        vmath.Vector3
	Rotation        vmath.Vector3 // Euler angles in degrees
	AngularVelocity vmath.Vector3

	// Per-frame accumulators, cleared after each integration step.
	ForceAccumulator  vmath.Vector3
	TorqueAccumulator vmath.Vector3

	Mass    float32
	InvMass float32
	// Diagonal approximation of the inertia tensor.
	Inertia    vmath.Vector3
	InvInertia vmath.Vector3

	IsDynamic   bool
	IsKinematic bool

	Restitution    float32
	LinearDamping  float32
	AngularDamping float32

	IsGrounded bool
}

func NewRigidbody3D(position, rotation vmath.Vector3, mass float32, isDynamic bool) *Rigidbody3D {
	rb := &Rigidbody3D{
		Position:       position,
		Rotation:       rotation,
		IsDynamic:      isDynamic,
		IsKinematic:    !isDynamic && mass > 0,
		Restitution:    DefaultRestitution,
		LinearDamping:  DefaultLinearDamping,
		AngularDamping: DefaultAngularDamping,
	}
	rb.SetMass(mass)
	rb.SetInertia(vmath.Vector3One())
	return rb
}

// NewRigidbody3DFromRecord builds a body from a component record plus the
// owning object's initial transform. When the record carries a
// BoxCollider3D under "collider_data", the inertia tensor diagonal is
// derived from it; otherwise the unit tensor stands.
func NewRigidbody3DFromRecord(data map[string]any, position, rotation vmath.Vector3) *Rigidbody3D {
	mass := recordFloat(data, "mass", 1.0)
	isDynamic := recordBool(data, "is_dynamic", true)

	rb := NewRigidbody3D(position, rotation, mass, isDynamic)
	rb.Velocity = recordVec3(data, "initial_velocity", vmath.Vector3{})
	rb.AngularVelocity = recordVec3(data, "initial_angular_velocity", vmath.Vector3{})
	rb.Restitution = recordFloat(data, "restitution", rb.Restitution)
	rb.LinearDamping = recordFloat(data, "linear_damping", rb.LinearDamping)
	rb.AngularDamping = recordFloat(data, "angular_damping", rb.AngularDamping)

	if collider := recordSubRecord(data, "collider_data"); collider != nil {
		if typeName, _ := collider["type"].(string); typeName == "BoxCollider3D" {
			halfExtents := recordVec3(collider, "half_extents", vmath.Vector3One())
			rb.SetInertiaFromBox(halfExtents)
		}
	}
	return rb
}

// SetMass clamps non-positive masses to MassEpsilon and keeps the inverse
// in sync. The clamp is surfaced as a warning rather than failing.
func (r *Rigidbody3D) SetMass(mass float32) {
	if mass < MassEpsilon {
		log.Provide().Warn("rigidbody mass clamped",
			zap.Float32("requested", mass),
			zap.Float32("clamped", MassEpsilon))
		mass = MassEpsilon
	}
	r.Mass = mass
	r.InvMass = 1.0 / mass
}

// SetInertia sets the diagonal inertia tensor and its inverse. Zero
// components invert to zero (no rotation on that axis).
func (r *Rigidbody3D) SetInertia(diag vmath.Vector3) {
	r.Inertia = diag
	r.InvInertia = vmath.Vector3{
		X: safeInv(diag.X),
		Y: safeInv(diag.Y),
		Z: safeInv(diag.Z),
	}
}

// SetInertiaFromBox derives the tensor diagonal from a box collider's
// half-extents using the solid-cuboid formula, I_xx = m/12 * (h^2 + d^2)
// with w, h, d the full extents.
func (r *Rigidbody3D) SetInertiaFromBox(halfExtents vmath.Vector3) {
	w := halfExtents.X * 2
	h := halfExtents.Y * 2
	d := halfExtents.Z * 2
	m := r.Mass / 12.0
	r.SetInertia(vmath.Vector3{
		X: m * (h*h + d*d),
		Y: m * (w*w + d*d),
		Z: m * (w*w + h*h),
	})
}

func safeInv(v float32) float32 {
	if v > 0 {
		return 1.0 / v
	}
	return 0
}

// AddForce accumulates a linear force. Non-dynamic bodies ignore it.
func (r *Rigidbody3D) AddForce(force vmath.Vector3) {
	if !r.IsDynamic {
		return
	}
	r.ForceAccumulator = r.ForceAccumulator.Add(force)
}

// AddForceAtPoint accumulates a force applied at a world-space point,
// contributing torque = (point - position) x force.
func (r *Rigidbody3D) AddForceAtPoint(force, point vmath.Vector3) {
	if !r.IsDynamic {
		return
	}
	r.ForceAccumulator = r.ForceAccumulator.Add(force)
	arm := point.Sub(r.Position)
	r.TorqueAccumulator = r.TorqueAccumulator.Add(arm.Cross(force))
}

// AddTorque accumulates rotational force. Non-dynamic bodies ignore it.
func (r *Rigidbody3D) AddTorque(torque vmath.Vector3) {
	if !r.IsDynamic {
		return
	}
	r.TorqueAccumulator = r.TorqueAccumulator.Add(torque)
}

func (r *Rigidbody3D) SetPosition(p vmath.Vector3) {
	r.Position = p
}

func (r *Rigidbody3D) SetRotation(euler vmath.Vector3) {
	r.Rotation = euler
}

// ClearAccumulators resets the per-frame force and torque sums.
func (r *Rigidbody3D) ClearAccumulators() {
	r.ForceAccumulator = vmath.Vector3{}
	r.TorqueAccumulator = vmath.Vector3{}
}

// TypeName implements scene.Component.
func (r *Rigidbody3D) TypeName() string {
	return "Rigidbody3D"
}

// Serialize writes the persisted component config. Inertia and inverse
// mass are derived from mass and collider, so only their inputs persist;
// position, rotation, accumulators and the grounded flag never do.
func (r *Rigidbody3D) Serialize() map[string]any {
	return map[string]any{
		"type":                     "Rigidbody3D",
		"mass":                     r.Mass,
		"is_dynamic":               r.IsDynamic,
		"restitution":              r.Restitution,
		"linear_damping":           r.LinearDamping,
		"angular_damping":          r.AngularDamping,
		"initial_velocity":         []float32{r.Velocity.X, r.Velocity.Y, r.Velocity.Z},
		"initial_angular_velocity": []float32{r.AngularVelocity.X, r.AngularVelocity.Y, r.AngularVelocity.Z},
	}
}

// Deserialize implements scene.Component.
func (r *Rigidbody3D) Deserialize(data map[string]any) {
	r.SetMass(recordFloat(data, "mass", r.Mass))
	r.IsDynamic = recordBool(data, "is_dynamic", r.IsDynamic)
	r.IsKinematic = !r.IsDynamic && r.Mass > 0
	r.Restitution = recordFloat(data, "restitution", r.Restitution)
	r.LinearDamping = recordFloat(data, "linear_damping", r.LinearDamping)
	r.AngularDamping = recordFloat(data, "angular_damping", r.AngularDamping)
	r.Velocity = recordVec3(data, "initial_velocity", r.Velocity)
	r.AngularVelocity = recordVec3(data, "initial_angular_velocity", r.AngularVelocity)
}

// GetSchema returns the inspector descriptors for the component.
func (r *Rigidbody3D) GetSchema() Schema {
	return Schema{
		"mass":                     {Type: "float", Label: "Mass (kg)", Min: 0.01, Max: 1000.0},
		"is_dynamic":               {Type: "boolean", Label: "Is Dynamic"},
		"restitution":              {Type: "float", Label: "Restitution (Bounciness)", Min: 0.0, Max: 1.0},
		"linear_damping":           {Type: "float", Label: "Linear Damping", Min: 0.0, Max: 1.0},
		"angular_damping":          {Type: "float", Label: "Angular Damping", Min: 0.0, Max: 1.0},
		"initial_velocity":         {Type: "vector3", Label: "Initial Velocity"},
		"initial_angular_velocity": {Type: "vector3", Label: "Initial Angular Velocity (Euler)"},
	}
}
