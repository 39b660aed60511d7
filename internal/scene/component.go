package scene

import (
	"errors"
	"fmt"
)

// Component is the contract every attachable component fulfils: a type
// discriminator plus a round-trip to the record form used by scene files
// and the inspector UI.
type Component interface {
	TypeName() string
	Serialize() map[string]any
	Deserialize(data map[string]any)
}

// ErrUnknownComponent is returned when a record names a type that was
// never registered.
var ErrUnknownComponent = errors.New("scene: unknown component type")

var componentRegistry = map[string]func() Component{}

// RegisterComponent registers a factory for a component type name.
// Components register themselves in their package init.
func RegisterComponent(name string, factory func() Component) {
	componentRegistry[name] = factory
}

// NewComponent builds a registered component by type name.
func NewComponent(name string) (Component, error) {
	factory, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return factory(), nil
}

// GetComponent returns the first component of type T on the object, or
// the zero value when none is attached.
func GetComponent[T Component](o *Object) T {
	var zero T
	for _, c := range o.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}
