package vmath

import "math"

// Vector2 is a 2D vector. The world is screen-oriented: +Y points down,
// so Vector2Up is (0, -1).
type Vector2 struct {
	X, Y float32
}

func Vector2Zero() Vector2 { return Vector2{} }

func Vector2One() Vector2 { return Vector2{X: 1, Y: 1} }

// Vector2Up is (0, -1) in the Y-down screen convention.
func Vector2Up() Vector2 { return Vector2{Y: -1} }

func Vector2Down() Vector2 { return Vector2{Y: 1} }

func Vector2Left() Vector2 { return Vector2{X: -1} }

func Vector2Right() Vector2 { return Vector2{X: 1} }

func (v Vector2) Add(other Vector2) Vector2 {
	return Vector2{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector2) Sub(other Vector2) Vector2 {
	return Vector2{X: v.X - other.X, Y: v.Y - other.Y}
}

// AddScalar adds s to every component.
func (v Vector2) AddScalar(s float32) Vector2 {
	return Vector2{X: v.X + s, Y: v.Y + s}
}

func (v Vector2) SubScalar(s float32) Vector2 {
	return Vector2{X: v.X - s, Y: v.Y - s}
}

func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Mul is the componentwise (Hadamard) product.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vector2{X: v.X * other.X, Y: v.Y * other.Y}
}

// Div divides every component by s. Dividing by zero is a caller error.
func (v Vector2) Div(s float32) (Vector2, error) {
	if s == 0 {
		return Vector2{}, ErrDivideByZero
	}
	return Vector2{X: v.X / s, Y: v.Y / s}, nil
}

func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// MagnitudeSqr is the squared length, cheaper than Magnitude when only
// comparing distances.
func (v Vector2) MagnitudeSqr() float32 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vector2) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.MagnitudeSqr())))
}

// Normalize returns a unit-length copy. The zero vector normalizes to
// itself rather than failing.
func (v Vector2) Normalize() Vector2 {
	m := v.Magnitude()
	if m > 0 {
		return Vector2{X: v.X / m, Y: v.Y / m}
	}
	return Vector2{}
}

// NormalizeInPlace is the designated mutating form of Normalize.
func (v *Vector2) NormalizeInPlace() {
	m := v.Magnitude()
	if m > 0 {
		v.X /= m
		v.Y /= m
	}
}

func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Magnitude()
}

// Lerp interpolates toward other; t is clamped to [0, 1].
func (v Vector2) Lerp(other Vector2, t float32) Vector2 {
	t = Clamp(t, 0, 1)
	return v.Add(other.Sub(v).Scale(t))
}

// XY returns the components as a tuple.
func (v Vector2) XY() (x, y float32) {
	return v.X, v.Y
}
