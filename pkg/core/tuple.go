package core

import "github.com/go-gl/mathgl/mgl64"

// Epsilon is the tolerance used for intersection ordering, colour comparison
// and the over/under surface offsets. The same value must be used everywhere
// or shadow and refraction behaviour diverges at shared boundaries.
const Epsilon = 1e-5

// Points and directions share mgl64.Vec4 as their representation. The w
// component distinguishes them: w=1 marks a point, w=0 marks a direction,
// which nullifies the translation column of any affine transform.

// NewPoint creates a homogeneous point (w=1)
func NewPoint(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 1}
}

// NewVector creates a homogeneous direction (w=0)
func NewVector(x, y, z float64) mgl64.Vec4 {
	return mgl64.Vec4{x, y, z, 0}
}

// IsPoint reports whether v is a point (w=1)
func IsPoint(v mgl64.Vec4) bool {
	return v.W() == 1
}

// IsVector reports whether v is a direction (w=0)
func IsVector(v mgl64.Vec4) bool {
	return v.W() == 0
}

// Reflect reflects the vector v about the normal n
func Reflect(v, n mgl64.Vec4) mgl64.Vec4 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}
