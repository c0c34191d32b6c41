package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform pairs an affine matrix with its cached inverse. The two are
// always computed together: normal transformation needs the inverse
// transpose, and ray-to-local mapping needs the inverse, so storing one
// without the other is a bug waiting to happen.
type Transform struct {
	Mat mgl64.Mat4
	Inv mgl64.Mat4
}

// NewTransform creates a transform from m and caches its inverse. A
// non-invertible matrix is a construction-time programmer error and panics.
func NewTransform(m mgl64.Mat4) Transform {
	if math.Abs(m.Det()) < Epsilon {
		panic("transform matrix is not invertible")
	}
	return Transform{Mat: m, Inv: m.Inv()}
}

// Identity returns the identity transform
func Identity() Transform {
	return Transform{Mat: mgl64.Ident4(), Inv: mgl64.Ident4()}
}

// Translate returns a translation transform
func Translate(x, y, z float64) Transform {
	return NewTransform(mgl64.Translate3D(x, y, z))
}

// Scale returns a non-uniform scaling transform
func Scale(x, y, z float64) Transform {
	return NewTransform(mgl64.Scale3D(x, y, z))
}

// UniformScale returns a uniform scaling transform
func UniformScale(s float64) Transform {
	return NewTransform(mgl64.Scale3D(s, s, s))
}

// RotateX returns a rotation about the x axis by rad radians
func RotateX(rad float64) Transform {
	return NewTransform(mgl64.HomogRotate3DX(rad))
}

// RotateY returns a rotation about the y axis by rad radians
func RotateY(rad float64) Transform {
	return NewTransform(mgl64.HomogRotate3DY(rad))
}

// RotateZ returns a rotation about the z axis by rad radians
func RotateZ(rad float64) Transform {
	return NewTransform(mgl64.HomogRotate3DZ(rad))
}

// Shear returns a shearing transform where each parameter moves one
// coordinate in proportion to another, e.g. xy shears x in proportion to y.
func Shear(xy, xz, yx, yz, zx, zy float64) Transform {
	m := mgl64.Ident4()
	m.Set(0, 1, xy)
	m.Set(0, 2, xz)
	m.Set(1, 0, yx)
	m.Set(1, 2, yz)
	m.Set(2, 0, zx)
	m.Set(2, 1, zy)
	return NewTransform(m)
}

// ViewTransform returns the world-to-camera transform for a camera at from,
// looking at to, with the given up direction.
func ViewTransform(from, to, up mgl64.Vec4) Transform {
	return NewTransform(mgl64.LookAtV(from.Vec3(), to.Vec3(), up.Vec3()))
}

// Chain composes transforms so they apply in the order given:
// Chain(a, b, c) applies a first, then b, then c.
func Chain(ts ...Transform) Transform {
	m := mgl64.Ident4()
	for _, t := range ts {
		m = t.Mat.Mul4(m)
	}
	return NewTransform(m)
}
