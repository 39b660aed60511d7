// Package components defines the physics-facing components: rigid bodies
// and colliders, their record (de)serialization, and the property schemas
// consumed by the inspector UI.
package components

// PropertySpec describes one editable property for the inspector panel.
// Min/Max only apply to numeric types.
type PropertySpec struct {
	Type  string
	Label string
	Min   float32
	Max   float32
}

// Schema maps field names to their inspector descriptors.
type Schema map[string]PropertySpec

// SchemaProvider is implemented by every component that exposes an
// inspector schema.
type SchemaProvider interface {
	GetSchema() Schema
}
