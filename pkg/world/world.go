package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
	"github.com/calebmartin/go-whitted-raytracer/pkg/geometry"
	"github.com/calebmartin/go-whitted-raytracer/pkg/lights"
	"github.com/calebmartin/go-whitted-raytracer/pkg/material"
)

// DefaultRecursionLimit bounds the reflection/refraction recursion per ray
const DefaultRecursionLimit = 5

// World owns the scene's objects and lights and composes surface, reflected
// and refracted colour for a ray. A world is assembled with the With*
// builders before rendering and is read-only afterwards, which is what
// makes per-pixel rendering trivially parallel.
type World struct {
	Objects        []geometry.Object
	Lights         []lights.PointLight
	RecursionLimit int
}

// NewWorld creates an empty world with the default recursion limit
func NewWorld() World {
	return World{RecursionLimit: DefaultRecursionLimit}
}

// WithObject returns a copy of the world with the object added
func (w World) WithObject(o geometry.Object) World {
	objects := make([]geometry.Object, 0, len(w.Objects)+1)
	objects = append(objects, w.Objects...)
	w.Objects = append(objects, o)
	return w
}

// WithLight returns a copy of the world with the light added
func (w World) WithLight(l lights.PointLight) World {
	ls := make([]lights.PointLight, 0, len(w.Lights)+1)
	ls = append(ls, w.Lights...)
	w.Lights = append(ls, l)
	return w
}

// WithRecursions returns a copy of the world with the given recursion limit
func (w World) WithRecursions(limit int) World {
	w.RecursionLimit = limit
	return w
}

// Intersect collects the intersections of the ray with every object in the
// world, merged into one set ordered by t. Objects are interrogated
// independently; there is no spatial pruning.
func (w World) Intersect(ray core.Ray) geometry.Intersections {
	all := make([]geometry.Intersection, 0, len(w.Objects)*2)
	for _, o := range w.Objects {
		all = append(all, o.Intersect(ray)...)
	}
	return geometry.NewIntersections(all...)
}

// IsShadowed reports whether the point is occluded from the light. A shadow
// ray is cast from the point toward the light; the point is shadowed when
// the nearest hit is closer than the light and that object casts shadows.
// Only the nearest hit's flag is consulted.
func (w World) IsShadowed(lightPos, point mgl64.Vec4) bool {
	v := lightPos.Sub(point)
	distance := v.Len()

	ray := core.NewRay(point, v.Normalize())
	hit, ok := w.Intersect(ray).Hit()
	return ok && hit.Object.CastsShadow && hit.T < distance
}

// ShadeHit computes the colour at a precomputed hit: the Phong surface term
// summed over all lights, plus reflected and refracted contributions. When
// the material is both reflective and transparent the two are blended by
// the Schlick reflectance instead of simply added.
func (w World) ShadeHit(sd geometry.ShadingData, remaining int) core.Colour {
	surface := core.Black()
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(light.Position, sd.OverPoint)
		surface = surface.Add(sd.Object.Material.Lighting(
			sd.Object.Transform.Inv, light, sd.Point, sd.EyeV, sd.NormalV, shadowed))
	}

	reflected := w.ReflectedColour(sd, remaining)
	refracted := w.RefractedColour(sd, remaining)

	m := sd.Object.Material
	if m.Reflectivity > 0 && m.Transparency > 0 {
		reflectance := sd.Schlick()
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColour resolves the colour arriving along the reflection vector,
// scaled by the material's reflectivity. Black when the recursion budget is
// spent or the surface is not reflective.
func (w World) ReflectedColour(sd geometry.ShadingData, remaining int) core.Colour {
	if remaining <= 0 || sd.Object.Material.Reflectivity == 0 {
		return core.Black()
	}

	reflectRay := core.NewRay(sd.OverPoint, sd.ReflectV)
	colour := w.ColourAt(reflectRay, remaining-1)
	return colour.Multiply(sd.Object.Material.Reflectivity)
}

// RefractedColour resolves the colour arriving through the surface via
// Snell's law, scaled by the material's transparency. Black when the
// recursion budget is spent, the surface is opaque, or the ray reflects
// totally internally.
func (w World) RefractedColour(sd geometry.ShadingData, remaining int) core.Colour {
	if remaining <= 0 || sd.Object.Material.Transparency == 0 {
		return core.Black()
	}

	nRatio := sd.N1 / sd.N2
	cosI := sd.EyeV.Dot(sd.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection
		return core.Black()
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := sd.NormalV.Mul(nRatio*cosI - cosT).Sub(sd.EyeV.Mul(nRatio))

	// The refracted ray starts just inside the surface it passes through
	refractRay := core.NewRay(sd.UnderPoint, direction)
	colour := w.ColourAt(refractRay, remaining-1)
	return colour.Multiply(sd.Object.Material.Transparency)
}

// ColourAt answers "what colour does this ray see". It is the sole entry
// point for the camera and the recursion point for reflection and
// refraction; the decreasing remaining counter is the only thing bounding
// the mutual recursion with ShadeHit.
func (w World) ColourAt(ray core.Ray, remaining int) core.Colour {
	xs := w.Intersect(ray)
	index := xs.HitIndex()
	if index < 0 {
		return core.Black()
	}

	sd := geometry.PrepareComputations(xs, index, ray)
	return w.ShadeHit(sd, remaining)
}

// DefaultWorld returns the canonical two-sphere fixture: an outer matte
// green sphere, a half-size inner sphere and a single light. Only useful as
// a baseline in tests.
func DefaultWorld() World {
	outer := geometry.NewSphere().WithMaterial(
		material.NewMaterial().
			WithColour(core.NewColour(0.8, 1.0, 0.6)).
			WithDiffuse(0.7).
			WithSpecular(0.2))
	inner := geometry.NewSphere().WithTransform(core.UniformScale(0.5))

	return NewWorld().
		WithObject(outer).
		WithObject(inner).
		WithLight(lights.NewPointLight(core.White(), core.NewPoint(-10, 10, -10)))
}
