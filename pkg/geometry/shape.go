package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// ShapeKind enumerates the closed set of analytic primitives. Each kind
// defines its canonical geometry in local space; an Object places it in the
// world via a transform. Keeping shapes as a kind tag rather than an
// interface keeps Object a comparable value, which the refraction
// bookkeeping relies on.
type ShapeKind int

const (
	// SphereShape is the unit sphere centred at the local origin
	SphereShape ShapeKind = iota
	// PlaneShape is the x-z plane at y=0, infinite in extent
	PlaneShape
)

// String returns the name of the shape kind
func (k ShapeKind) String() string {
	switch k {
	case SphereShape:
		return "sphere"
	case PlaneShape:
		return "plane"
	default:
		return "unknown"
	}
}

// LocalIntersect returns the t values where a local-space ray crosses the
// canonical shape, in ascending order. An empty result is the normal
// outcome for a miss, never an error.
func (k ShapeKind) LocalIntersect(ray core.Ray) []float64 {
	switch k {
	case SphereShape:
		return sphereIntersect(ray)
	case PlaneShape:
		return planeIntersect(ray)
	default:
		return nil
	}
}

// LocalNormalAt returns the local-space surface normal at a local point
func (k ShapeKind) LocalNormalAt(point mgl64.Vec4) mgl64.Vec4 {
	switch k {
	case SphereShape:
		return sphereNormalAt(point)
	case PlaneShape:
		return planeNormalAt(point)
	default:
		return core.NewVector(0, 0, 0)
	}
}
