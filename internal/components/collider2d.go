package components

import (
	"kinetic/internal/scene"
	"kinetic/internal/vmath"
)

func init() {
	scene.RegisterComponent("BoxCollider2D", func() scene.Component {
		return NewBoxCollider2D(1, 1)
	})
	scene.RegisterComponent("CircleCollider2D", func() scene.Component {
		return NewCircleCollider2D(0.5)
	})
}

// BoxCollider2D is an axis-aligned box in local units; the world size is
// the size scaled by the owning object's scale, recomputed per check.
type BoxCollider2D struct {
	Width  float32
	Height float32
	Offset vmath.Vector2
}

func NewBoxCollider2D(width, height float32) *BoxCollider2D {
	return &BoxCollider2D{Width: width, Height: height}
}

func (b *BoxCollider2D) TypeName() string {
	return "BoxCollider2D"
}

func (b *BoxCollider2D) Serialize() map[string]any {
	return map[string]any{
		"type":   "BoxCollider2D",
		"width":  b.Width,
		"height": b.Height,
		"offset": []float32{b.Offset.X, b.Offset.Y},
	}
}

func (b *BoxCollider2D) Deserialize(data map[string]any) {
	b.Width = recordFloat(data, "width", b.Width)
	b.Height = recordFloat(data, "height", b.Height)
	b.Offset = recordVec2(data, "offset", b.Offset)
}

func (b *BoxCollider2D) GetSchema() Schema {
	return Schema{
		"width":  {Type: "float", Label: "Width", Min: 0.01, Max: 10000.0},
		"height": {Type: "float", Label: "Height", Min: 0.01, Max: 10000.0},
		"offset": {Type: "vector2", Label: "Center Offset"},
	}
}

// CircleCollider2D is a declared extension point: the detector does not
// test circles yet and reports no collision for pairings that involve one.
type CircleCollider2D struct {
	Radius float32
	Offset vmath.Vector2
}

func NewCircleCollider2D(radius float32) *CircleCollider2D {
	return &CircleCollider2D{Radius: radius}
}

func (c *CircleCollider2D) TypeName() string {
	return "CircleCollider2D"
}

func (c *CircleCollider2D) Serialize() map[string]any {
	return map[string]any{
		"type":   "CircleCollider2D",
		"radius": c.Radius,
		"offset": []float32{c.Offset.X, c.Offset.Y},
	}
}

func (c *CircleCollider2D) Deserialize(data map[string]any) {
	c.Radius = recordFloat(data, "radius", c.Radius)
	c.Offset = recordVec2(data, "offset", c.Offset)
}

func (c *CircleCollider2D) GetSchema() Schema {
	return Schema{
		"radius": {Type: "float", Label: "Radius", Min: 0.01, Max: 10000.0},
		"offset": {Type: "vector2", Label: "Center Offset"},
	}
}
