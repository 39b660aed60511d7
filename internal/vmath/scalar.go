package vmath

import "math"

// Clamp restricts v to [min, max].
func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp interpolates between a and b; t is clamped to [0, 1].
func Lerp(a, b, t float32) float32 {
	t = Clamp(t, 0, 1)
	return a + (b-a)*t
}

// InvLerp returns the t for which Lerp(a, b, t) == v, clamped to [0, 1].
// Returns 0 when a == b.
func InvLerp(a, b, v float32) float32 {
	if a == b {
		return 0
	}
	return Clamp((v-a)/(b-a), 0, 1)
}

// Smoothstep is the cubic Hermite step: 0 below edge0, 1 above edge1,
// smooth in between.
func Smoothstep(edge0, edge1, x float32) float32 {
	x = Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return x * x * (3 - 2*x)
}

func DegToRad(degrees float32) float32 {
	return degrees * (math.Pi / 180)
}

func RadToDeg(radians float32) float32 {
	return radians * (180 / math.Pi)
}

// Distance is the Euclidean distance between two points of equal
// dimension, given as coordinate slices.
func Distance(p, q []float32) (float32, error) {
	if len(p) != len(q) {
		return 0, ErrDimensionMismatch
	}
	var sumSq float64
	for i := range p {
		d := float64(p[i] - q[i])
		sumSq += d * d
	}
	return float32(math.Sqrt(sumSq)), nil
}
