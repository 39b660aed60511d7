package physics

import (
	"kinetic/internal/components"
	"kinetic/internal/vmath"
)

// Integrate2D advances one body by dt seconds of semi-implicit Euler:
// gravity enters through the force accumulator (so non-dynamic bodies
// ignore it), damping shaves velocity, velocity integrates from the
// accumulated force, position from the updated velocity. Accumulators are
// cleared at the end of the step.
func Integrate2D(rb *components.Rigidbody2D, gravity vmath.Vector2, dt float32) {
	rb.AddForce(gravity.Scale(rb.Mass))

	rb.Velocity = rb.Velocity.Scale(1 - rb.LinearDamping*dt)
	rb.Velocity = rb.Velocity.Add(rb.ForceAccumulator.Scale(rb.InvMass * dt))
	rb.Position = rb.Position.Add(rb.Velocity.Scale(dt))

	rb.AngularVelocity *= 1 - rb.AngularDamping*dt
	rb.AngularVelocity += rb.TorqueAccumulator * rb.InvInertia * dt
	rb.Rotation += rb.AngularVelocity * dt

	rb.ClearAccumulators()
}

// Integrate3D is the 3D analogue; angular velocity integrates through the
// diagonal inverse inertia tensor componentwise.
func Integrate3D(rb *components.Rigidbody3D, gravity vmath.Vector3, dt float32) {
	rb.AddForce(gravity.Scale(rb.Mass))

	rb.Velocity = rb.Velocity.Scale(1 - rb.LinearDamping*dt)
	rb.Velocity = rb.Velocity.Add(rb.ForceAccumulator.Scale(rb.InvMass * dt))
	rb.Position = rb.Position.Add(rb.Velocity.Scale(dt))

	rb.AngularVelocity = rb.AngularVelocity.Scale(1 - rb.AngularDamping*dt)
	rb.AngularVelocity = rb.AngularVelocity.Add(rb.TorqueAccumulator.Mul(rb.InvInertia).Scale(dt))
	rb.Rotation = rb.Rotation.Add(rb.AngularVelocity.Scale(dt))

	rb.ClearAccumulators()
}
