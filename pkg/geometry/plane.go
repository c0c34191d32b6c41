package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// planeIntersect intersects a local-space ray with the x-z plane at y=0. A
// ray with no y component is parallel (coplanar or not), which counts as no
// intersection.
func planeIntersect(ray core.Ray) []float64 {
	if math.Abs(ray.Direction.Y()) < core.Epsilon {
		return nil
	}
	return []float64{-ray.Origin.Y() / ray.Direction.Y()}
}

// planeNormalAt returns the constant plane normal, regardless of the point
func planeNormalAt(_ mgl64.Vec4) mgl64.Vec4 {
	return core.NewVector(0, 1, 0)
}
