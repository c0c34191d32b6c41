package geometry

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// ShadingData carries everything the shading pipeline needs about a hit,
// precomputed once: the hit point with its epsilon offsets, eye and normal
// vectors, the reflection vector, and the refractive indices on either side
// of the surface.
type ShadingData struct {
	T          float64
	Object     Object
	Point      mgl64.Vec4
	OverPoint  mgl64.Vec4 // offset along the normal, shadow-ray origin
	UnderPoint mgl64.Vec4 // offset against the normal, refraction-ray origin
	EyeV       mgl64.Vec4
	NormalV    mgl64.Vec4
	ReflectV   mgl64.Vec4
	N1         float64 // refractive index of the medium being exited
	N2         float64 // refractive index of the medium being entered
	Inside     bool
}

// PrepareComputations derives the shading data for the intersection at
// index. It needs the full sorted set, not just the winner: n1 and n2 come
// from walking the set up to the hit while tracking which objects the ray
// is currently inside.
func PrepareComputations(xs Intersections, index int, ray core.Ray) ShadingData {
	n1, n2 := refractiveIndices(xs, index)

	hit := xs[index]
	point := ray.Position(hit.T)
	eyev := ray.Direction.Mul(-1)

	normalv := hit.Object.NormalAt(point)
	inside := false
	if normalv.Dot(eyev) < 0 {
		// The hit is on the inside of the surface; flip the normal so the
		// diffuse and specular terms stay sensible when viewed from within.
		normalv = normalv.Mul(-1)
		inside = true
	}

	return ShadingData{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  point.Add(normalv.Mul(core.Epsilon)),
		UnderPoint: point.Sub(normalv.Mul(core.Epsilon)),
		EyeV:       eyev,
		NormalV:    normalv,
		ReflectV:   core.Reflect(ray.Direction, normalv),
		N1:         n1,
		N2:         n2,
		Inside:     inside,
	}
}

// refractiveIndices walks the sorted set from the nearest intersection to
// the target, maintaining the stack of objects the ray is currently inside:
// an object already on the stack is being exited (remove it), otherwise it
// is being entered (push it). n1 is the index of the innermost container
// just before the target hit, n2 just after, with 1.0 (vacuum) for an empty
// stack. This handles nested and overlapping transparent objects without an
// interval tree.
func refractiveIndices(xs Intersections, index int) (n1, n2 float64) {
	n1, n2 = 1.0, 1.0
	containers := make([]Object, 0, len(xs))

	for i := range xs {
		isHit := i == index

		if isHit {
			if len(containers) > 0 {
				n1 = containers[len(containers)-1].Material.IOR
			}
		}

		if pos := containerIndex(containers, xs[i].Object); pos >= 0 {
			containers = append(containers[:pos], containers[pos+1:]...)
		} else {
			containers = append(containers, xs[i].Object)
		}

		if isHit {
			if len(containers) > 0 {
				n2 = containers[len(containers)-1].Material.IOR
			}
			return n1, n2
		}
	}
	return n1, n2
}

// containerIndex finds an object in the container stack by structural
// equality, or -1 if the ray is not currently inside it.
func containerIndex(containers []Object, o Object) int {
	for i, c := range containers {
		if c == o {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at this hit: the fraction of
// light that reflects rather than refracts. Returns 1.0 under total
// internal reflection, where no refracted contribution exists at all.
func (sd ShadingData) Schlick() float64 {
	cos := sd.EyeV.Dot(sd.NormalV)

	if sd.N1 > sd.N2 {
		// Exiting into a less dense medium; check for total internal reflection
		nRatio := sd.N1 / sd.N2
		sin2T := nRatio * nRatio * (1 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}
		cos = math.Sqrt(1 - sin2T)
	}

	r0 := (sd.N1 - sd.N2) / (sd.N1 + sd.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
