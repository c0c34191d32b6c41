package geometry

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
	"github.com/calebmartin/go-whitted-raytracer/pkg/material"
)

// Object places a canonical primitive in the world: a shape kind plus a
// material and a transform with its cached inverse. Objects are lightweight
// comparable values; "same object" during refraction bookkeeping means
// structural equality of all fields, not pointer identity.
type Object struct {
	Shape       ShapeKind
	Material    material.Material
	Transform   core.Transform
	CastsShadow bool
}

// NewSphere creates a unit sphere at the origin with the default material
func NewSphere() Object {
	return Object{
		Shape:       SphereShape,
		Material:    material.NewMaterial(),
		Transform:   core.Identity(),
		CastsShadow: true,
	}
}

// NewPlane creates an x-z plane at y=0 with the default material
func NewPlane() Object {
	return Object{
		Shape:       PlaneShape,
		Material:    material.NewMaterial(),
		Transform:   core.Identity(),
		CastsShadow: true,
	}
}

// NewGlassSphere creates a fully transparent unit sphere with the
// refractive index of glass.
func NewGlassSphere() Object {
	return NewSphere().WithMaterial(material.NewGlass())
}

// WithTransform returns a copy of the object with the given transform
func (o Object) WithTransform(t core.Transform) Object {
	o.Transform = t
	return o
}

// WithMaterial returns a copy of the object with the given material
func (o Object) WithMaterial(m material.Material) Object {
	o.Material = m
	return o
}

// WithShadow returns a copy of the object with shadow casting enabled or
// disabled. Objects cast shadows by default.
func (o Object) WithShadow(casts bool) Object {
	o.CastsShadow = casts
	return o
}

// Intersect maps a world-space ray into local space, intersects it with the
// primitive and tags every resulting t with this object so downstream code
// can recover its material and transform.
func (o Object) Intersect(worldRay core.Ray) Intersections {
	localRay := worldRay.Transform(o.Transform.Inv)
	ts := o.Shape.LocalIntersect(localRay)

	xs := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		xs = append(xs, Intersection{T: t, Object: o})
	}
	return NewIntersections(xs...)
}

// NormalAt returns the world-space surface normal at a world-space point.
// The local normal maps back to world space through the transpose of the
// inverse transform; that product is not a rotation under non-uniform
// scaling, so the w component is forced back to 0 and the result
// re-normalized.
func (o Object) NormalAt(worldPoint mgl64.Vec4) mgl64.Vec4 {
	localPoint := o.Transform.Inv.Mul4x1(worldPoint)
	localNormal := o.Shape.LocalNormalAt(localPoint)

	worldNormal := o.Transform.Inv.Transpose().Mul4x1(localNormal)
	worldNormal[3] = 0
	return worldNormal.Normalize()
}
