package vmath

import (
	"math"
	"math/rand"
)

// gradients is the reduced 12-vector set used by the classic Perlin
// formulation (edge midpoints of a cube).
var gradients = [12]Vector3{
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
	{X: 1, Z: 1}, {X: -1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: -1},
	{Y: 1, Z: 1}, {Y: -1, Z: 1}, {Y: 1, Z: -1}, {Y: -1, Z: -1},
}

// Noise is a seeded 3D gradient-noise generator. The permutation table
// is fixed at construction, so a generator is deterministic for its seed
// and safe for concurrent readers once built.
type Noise struct {
	perm [512]int
}

// NewNoise builds a generator whose permutation table is drawn from a
// source seeded with seed. Equal seeds produce equal noise fields.
func NewNoise(seed int64) *Noise {
	rng := rand.New(rand.NewSource(seed))
	n := &Noise{}
	for i := 0; i < 256; i++ {
		n.perm[i] = rng.Intn(256)
		n.perm[i+256] = n.perm[i]
	}
	return n
}

// Noise3D returns gradient noise for (x, y, z), approximately in [-1, 1].
func (n *Noise) Noise3D(x, y, z float32) float32 {
	// Unit cube containing the point, and the position inside it.
	xi := int(math.Floor(float64(x))) & 255
	yi := int(math.Floor(float64(y))) & 255
	zi := int(math.Floor(float64(z))) & 255

	x -= float32(math.Floor(float64(x)))
	y -= float32(math.Floor(float64(y)))
	z -= float32(math.Floor(float64(z)))

	u := fade(x)
	v := fade(y)
	w := fade(z)

	// Hash the 8 cube corners.
	a := n.perm[xi] + yi
	aa := n.perm[a] + zi
	ab := n.perm[a+1] + zi
	b := n.perm[xi+1] + yi
	ba := n.perm[b] + zi
	bb := n.perm[b+1] + zi

	l1 := Lerp(grad(n.perm[aa], x, y, z), grad(n.perm[ba], x-1, y, z), u)
	l2 := Lerp(grad(n.perm[ab], x, y-1, z), grad(n.perm[bb], x-1, y-1, z), u)
	l3 := Lerp(grad(n.perm[aa+1], x, y, z-1), grad(n.perm[ba+1], x-1, y, z-1), u)
	l4 := Lerp(grad(n.perm[ab+1], x, y-1, z-1), grad(n.perm[bb+1], x-1, y-1, z-1), u)

	m1 := Lerp(l1, l2, v)
	m2 := Lerp(l3, l4, v)

	return Lerp(m1, m2, w)
}

// fade is the Perlin quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

// grad dots the hashed gradient vector with the corner-to-point offset.
func grad(hash int, x, y, z float32) float32 {
	g := gradients[(hash&15)%12]
	return g.Dot(Vector3{X: x, Y: y, Z: z})
}
