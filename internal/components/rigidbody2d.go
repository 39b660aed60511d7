package components

import (
	"go.uber.org/zap"

	"kinetic/internal/log"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

func init() {
	scene.RegisterComponent("Rigidbody2D", func() scene.Component {
		return NewRigidbody2D(vmath.Vector2{}, 1.0, true)
	})
}

// MassEpsilon is the floor a non-positive mass is clamped to so the
// inverse mass stays finite.
const MassEpsilon = 0.001

// Default material properties shared by both body dimensions.
const (
	DefaultRestitution    = 0.3
	DefaultLinearDamping  = 0.01
	DefaultAngularDamping = 0.05
)

// Rigidbody2D is the physical state of a 2D scene object: integrated by
// the physics world every step, persisted through the component record.
type Rigidbody2D struct {
	Position        vmath.Vector2
	Velocity        vmath.Vector2
	Rotation        float32 // Z-axis angle in degrees
	AngularVelocity float32

	// Per-frame accumulators, cleared after each integration step.
	ForceAccumulator  vmath.Vector2
	TorqueAccumulator float32

	Mass       float32
	InvMass    float32
	Inertia    float32
	InvInertia float32

	IsDynamic   bool // forces and gravity apply
	IsKinematic bool // externally driven: not dynamic, but has mass

	Restitution    float32 // 0 = no bounce, 1 = perfect bounce
	LinearDamping  float32
	AngularDamping float32

	// IsGrounded is set by collision resolution and read by gameplay logic.
	IsGrounded bool
}

func NewRigidbody2D(position vmath.Vector2, mass float32, isDynamic bool) *Rigidbody2D {
	rb := &Rigidbody2D{
		Position:       position,
		Inertia:        1.0,
		InvInertia:     1.0,
		IsDynamic:      isDynamic,
		IsKinematic:    !isDynamic && mass > 0,
		Restitution:    DefaultRestitution,
		LinearDamping:  DefaultLinearDamping,
		AngularDamping: DefaultAngularDamping,
	}
	rb.SetMass(mass)
	return rb
}

// NewRigidbody2DFromRecord builds a body from a component record plus the
// owning object's initial position.
func NewRigidbody2DFromRecord(data map[string]any, position vmath.Vector2) *Rigidbody2D {
	mass := recordFloat(data, "mass", 1.0)
	isDynamic := recordBool(data, "is_dynamic", true)

	rb := NewRigidbody2D(position, mass, isDynamic)
	rb.Velocity = recordVec2(data, "initial_velocity", vmath.Vector2{})
	rb.AngularVelocity = recordFloat(data, "initial_angular_velocity", 0)
	rb.Restitution = recordFloat(data, "restitution", rb.Restitution)
	rb.LinearDamping = recordFloat(data, "linear_damping", rb.LinearDamping)
	rb.AngularDamping = recordFloat(data, "angular_damping", rb.AngularDamping)
	return rb
}

// SetMass clamps non-positive masses to MassEpsilon and keeps the inverse
// in sync. The clamp is surfaced as a warning rather than failing.
func (r *Rigidbody2D) SetMass(mass float32) {
	if mass < MassEpsilon {
		log.Provide().Warn("rigidbody mass clamped",
			zap.Float32("requested", mass),
			zap.Float32("clamped", MassEpsilon))
		mass = MassEpsilon
	}
	r.Mass = mass
	r.InvMass = 1.0 / mass
}

// AddForce accumulates a force for the current frame. Non-dynamic bodies
// ignore it.
func (r *Rigidbody2D) AddForce(force vmath.Vector2) {
	if !r.IsDynamic {
		return
	}
	r.ForceAccumulator = r.ForceAccumulator.Add(force)
}

// AddTorque accumulates rotational force. Non-dynamic bodies ignore it.
func (r *Rigidbody2D) AddTorque(torque float32) {
	if !r.IsDynamic {
		return
	}
	r.TorqueAccumulator += torque
}

// SetPosition overrides the position directly (teleport or kinematic
// control).
func (r *Rigidbody2D) SetPosition(p vmath.Vector2) {
	r.Position = p
}

func (r *Rigidbody2D) SetRotation(deg float32) {
	r.Rotation = deg
}

// ClearAccumulators resets the per-frame force and torque sums. Called by
// the integrator at the end of each step.
func (r *Rigidbody2D) ClearAccumulators() {
	r.ForceAccumulator = vmath.Vector2{}
	r.TorqueAccumulator = 0
}

// TypeName implements scene.Component.
func (r *Rigidbody2D) TypeName() string {
	return "Rigidbody2D"
}

// Serialize writes the persisted component config. Position, rotation,
// accumulators and the grounded flag are runtime scene state and are
// deliberately absent; the current velocities persist as the initial ones.
func (r *Rigidbody2D) Serialize() map[string]any {
	return map[string]any{
		"type":                     "Rigidbody2D",
		"mass":                     r.Mass,
		"is_dynamic":               r.IsDynamic,
		"restitution":              r.Restitution,
		"linear_damping":           r.LinearDamping,
		"angular_damping":          r.AngularDamping,
		"initial_velocity":         []float32{r.Velocity.X, r.Velocity.Y},
		"initial_angular_velocity": r.AngularVelocity,
	}
}

// Deserialize implements scene.Component.
func (r *Rigidbody2D) Deserialize(data map[string]any) {
	r.SetMass(recordFloat(data, "mass", r.Mass))
	r.IsDynamic = recordBool(data, "is_dynamic", r.IsDynamic)
	r.IsKinematic = !r.IsDynamic && r.Mass > 0
	r.Restitution = recordFloat(data, "restitution", r.Restitution)
	r.LinearDamping = recordFloat(data, "linear_damping", r.LinearDamping)
	r.AngularDamping = recordFloat(data, "angular_damping", r.AngularDamping)
	r.Velocity = recordVec2(data, "initial_velocity", r.Velocity)
	r.AngularVelocity = recordFloat(data, "initial_angular_velocity", r.AngularVelocity)
}

// GetSchema returns the inspector descriptors for the component.
func (r *Rigidbody2D) GetSchema() Schema {
	return Schema{
		"mass":                     {Type: "float", Label: "Mass (kg)", Min: 0.01, Max: 1000.0},
		"is_dynamic":               {Type: "boolean", Label: "Is Dynamic"},
		"restitution":              {Type: "float", Label: "Restitution (Bounciness)", Min: 0.0, Max: 1.0},
		"linear_damping":           {Type: "float", Label: "Linear Damping", Min: 0.0, Max: 1.0},
		"angular_damping":          {Type: "float", Label: "Angular Damping", Min: 0.0, Max: 1.0},
		"initial_velocity":         {Type: "vector2", Label: "Initial Velocity"},
		"initial_angular_velocity": {Type: "float", Label: "Initial Angular Velocity"},
	}
}
