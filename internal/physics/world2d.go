// Package physics implements the rigid-body core: pairwise AABB collision
// detection, semi-implicit Euler integration, impulse resolution, and the
// frame-stepped worlds that drive them. All state is single-threaded; dt
// is an opaque elapsed-seconds value supplied by the caller.
package physics

import (
	"go.uber.org/zap"

	"kinetic/internal/components"
	"kinetic/internal/log"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

// World2D steps a set of 2D scene objects: integration first, then an N^2
// pairwise detect/resolve pass. Objects without a rigidbody participate
// as static colliders.
type World2D struct {
	Gravity vmath.Vector2

	objects []*scene.Object
	bodies  map[*scene.Object]*components.Rigidbody2D
	logger  *zap.Logger
}

func NewWorld2D() *World2D {
	w := &World2D{
		// Pixels per second squared, Y-down.
		Gravity: vmath.Vector2{Y: 980},
		bodies:  make(map[*scene.Object]*components.Rigidbody2D),
		logger:  log.Provide(),
	}
	w.logger.Info("physics world ready", zap.String("world", "2d"))
	return w
}

// AddObject registers an object with the world. If it carries a
// Rigidbody2D component the body state is seeded from the object's
// transform.
func (w *World2D) AddObject(o *scene.Object) {
	w.objects = append(w.objects, o)
	if rb := scene.GetComponent[*components.Rigidbody2D](o); rb != nil {
		rb.Position = o.Position2D()
		rb.Rotation = o.Rotation2D()
		w.bodies[o] = rb
	}
}

func (w *World2D) RemoveObject(o *scene.Object) {
	for i, obj := range w.objects {
		if obj == o {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
	delete(w.bodies, o)
}

// Body returns the rigidbody bound to an object, or nil for statics.
func (w *World2D) Body(o *scene.Object) *components.Rigidbody2D {
	return w.bodies[o]
}

// Update advances the world by dt seconds and returns the number of
// contacts resolved this step.
func (w *World2D) Update(dt float32) int {
	// Pass 1: integration. Grounded flags are re-derived every step.
	for _, o := range w.objects {
		rb := w.bodies[o]
		if rb == nil {
			continue
		}
		rb.IsGrounded = false
		Integrate2D(rb, w.Gravity, dt)
		o.SetPosition2D(rb.Position)
		o.SetRotation2D(rb.Rotation)
	}

	// Pass 2: pairwise detection and resolution. Pair selection is the
	// world's job, not the detector's; no broad phase here.
	contacts := 0
	for i := 0; i < len(w.objects); i++ {
		a := w.objects[i]
		rbA := w.bodies[a]
		for j := i + 1; j < len(w.objects); j++ {
			b := w.objects[j]
			rbB := w.bodies[b]
			if rbA == nil && rbB == nil {
				continue
			}
			info := CheckCollision2D(a, b)
			if ResolveCollision2D(info, rbA, rbB) {
				contacts++
			}
		}
	}
	return contacts
}
