package vmath

import "math"

// Vector3 is a 3D vector in the Y-up, Z-forward world convention.
type Vector3 struct {
	X, Y, Z float32
}

func Vector3Zero() Vector3 { return Vector3{} }

func Vector3One() Vector3 { return Vector3{X: 1, Y: 1, Z: 1} }

func Vector3Up() Vector3 { return Vector3{Y: 1} }

func Vector3Down() Vector3 { return Vector3{Y: -1} }

func Vector3Forward() Vector3 { return Vector3{Z: 1} }

func Vector3Back() Vector3 { return Vector3{Z: -1} }

func Vector3Left() Vector3 { return Vector3{X: -1} }

func Vector3Right() Vector3 { return Vector3{X: 1} }

func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{X: v.X + s, Y: v.Y + s, Z: v.Z + s}
}

func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{X: v.X - s, Y: v.Y - s, Z: v.Z - s}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Mul is the componentwise (Hadamard) product.
func (v Vector3) Mul(other Vector3) Vector3 {
	return Vector3{X: v.X * other.X, Y: v.Y * other.Y, Z: v.Z * other.Z}
}

// Div divides every component by s. Dividing by zero is a caller error.
func (v Vector3) Div(s float32) (Vector3, error) {
	if s == 0 {
		return Vector3{}, ErrDivideByZero
	}
	return Vector3{X: v.X / s, Y: v.Y / s, Z: v.Z / s}, nil
}

func (v Vector3) Neg() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v x other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3) MagnitudeSqr() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Magnitude() float32 {
	return float32(math.Sqrt(float64(v.MagnitudeSqr())))
}

// Normalize returns a unit-length copy. The zero vector normalizes to
// itself rather than failing.
func (v Vector3) Normalize() Vector3 {
	m := v.Magnitude()
	if m > 0 {
		return Vector3{X: v.X / m, Y: v.Y / m, Z: v.Z / m}
	}
	return Vector3{}
}

// NormalizeInPlace is the designated mutating form of Normalize.
func (v *Vector3) NormalizeInPlace() {
	m := v.Magnitude()
	if m > 0 {
		v.X /= m
		v.Y /= m
		v.Z /= m
	}
}

func (v Vector3) DistanceTo(other Vector3) float32 {
	return v.Sub(other).Magnitude()
}

// Lerp interpolates toward other; t is clamped to [0, 1].
func (v Vector3) Lerp(other Vector3, t float32) Vector3 {
	t = Clamp(t, 0, 1)
	return v.Add(other.Sub(v).Scale(t))
}

// XYZ returns the components as a tuple.
func (v Vector3) XYZ() (x, y, z float32) {
	return v.X, v.Y, v.Z
}
