package physics

import (
	"go.uber.org/zap"

	"kinetic/internal/components"
	"kinetic/internal/log"
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

// World3D is the 3D counterpart of World2D: Y-up, gravity in meters per
// second squared.
type World3D struct {
	Gravity vmath.Vector3

	objects []*scene.Object
	bodies  map[*scene.Object]*components.Rigidbody3D
	logger  *zap.Logger
}

func NewWorld3D() *World3D {
	w := &World3D{
		Gravity: vmath.Vector3{Y: -9.8},
		bodies:  make(map[*scene.Object]*components.Rigidbody3D),
		logger:  log.Provide(),
	}
	w.logger.Info("physics world ready", zap.String("world", "3d"))
	return w
}

func (w *World3D) AddObject(o *scene.Object) {
	w.objects = append(w.objects, o)
	if rb := scene.GetComponent[*components.Rigidbody3D](o); rb != nil {
		rb.Position = o.Position
		rb.Rotation = o.Rotation
		w.bodies[o] = rb
	}
}

func (w *World3D) RemoveObject(o *scene.Object) {
	for i, obj := range w.objects {
		if obj == o {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			break
		}
	}
	delete(w.bodies, o)
}

func (w *World3D) Body(o *scene.Object) *components.Rigidbody3D {
	return w.bodies[o]
}

// Update advances the world by dt seconds and returns the number of
// contacts resolved this step.
func (w *World3D) Update(dt float32) int {
	for _, o := range w.objects {
		rb := w.bodies[o]
		if rb == nil {
			continue
		}
		rb.IsGrounded = false
		Integrate3D(rb, w.Gravity, dt)
		o.Position = rb.Position
		o.Rotation = rb.Rotation
	}

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
			info := CheckCollision3D(a, b)
			if ResolveCollision3D(info, rbA, rbB) {
				contacts++
			}
		}
	}
	return contacts
}
