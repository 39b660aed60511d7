// Package vmath provides the value-type vector algebra and scalar helpers
// used by the physics and mesh subsystems. Operations return new values;
// the only mutating forms are the NormalizeInPlace variants.
package vmath

import "errors"

var (
	// ErrDivideByZero is returned by the scalar division operations.
	ErrDivideByZero = errors.New("vmath: division by zero")

	// ErrDimensionMismatch is returned by Distance when the two points
	// have a different number of coordinates.
	ErrDimensionMismatch = errors.New("vmath: points must have the same dimension")
)
