package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// sphereIntersect solves the quadratic for a ray against the unit sphere at
// the local origin. A negative discriminant is a miss; otherwise both roots
// are returned ascending, equal roots marking a tangent hit. A ray starting
// inside the sphere yields one negative and one positive root.
func sphereIntersect(ray core.Ray) []float64 {
	sphereToRay := ray.Origin.Sub(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * sphereToRay.Dot(ray.Direction)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	return []float64{
		(-b - sqrtD) / (2 * a),
		(-b + sqrtD) / (2 * a),
	}
}

// sphereNormalAt returns the normal of the unit sphere at a local point
func sphereNormalAt(point mgl64.Vec4) mgl64.Vec4 {
	n := point.Sub(core.NewPoint(0, 0, 0))
	return n.Normalize()
}
