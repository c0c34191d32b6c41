package core

import "github.com/go-gl/mathgl/mgl64"

// Ray represents a ray with a point origin and a direction vector
type Ray struct {
	Origin    mgl64.Vec4
	Direction mgl64.Vec4
}

// NewRay creates a new ray. Passing a non-point origin or a non-vector
// direction is a programmer error and panics.
func NewRay(origin, direction mgl64.Vec4) Ray {
	if !IsPoint(origin) {
		panic("ray origin must be a point (w=1)")
	}
	if !IsVector(direction) {
		panic("ray direction must be a vector (w=0)")
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) mgl64.Vec4 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform returns the ray mapped through the matrix m. Directions keep
// w=0, so translation never applies to them.
func (r Ray) Transform(m mgl64.Mat4) Ray {
	return Ray{
		Origin:    m.Mul4x1(r.Origin),
		Direction: m.Mul4x1(r.Direction),
	}
}
