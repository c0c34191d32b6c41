package scene

import (
	"math"

	"github.com/calebmartin/go-whitted-raytracer/pkg/camera"
	"github.com/calebmartin/go-whitted-raytracer/pkg/canvas"
	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
	"github.com/calebmartin/go-whitted-raytracer/pkg/geometry"
	"github.com/calebmartin/go-whitted-raytracer/pkg/lights"
	"github.com/calebmartin/go-whitted-raytracer/pkg/material"
	"github.com/calebmartin/go-whitted-raytracer/pkg/world"
)

// Scene pairs a world with the camera that views it
type Scene struct {
	World  world.World
	Camera camera.Camera
}

// Render traces the scene onto a new canvas
func (s Scene) Render() *canvas.Canvas {
	return s.Camera.Render(s.World)
}

// NewDefaultScene builds a showcase scene: a checkered reflective floor,
// three patterned spheres and a small glass sphere in front, lit by a
// single light up and to the left.
func NewDefaultScene(width, height int) Scene {
	floor := geometry.NewPlane().WithMaterial(
		material.NewMaterial().
			WithPattern(material.NewCheckerPattern(core.Grey(0.85), core.Grey(0.35))).
			WithSpecular(0.1).
			WithReflectivity(0.15))

	middle := geometry.NewSphere().
		WithTransform(core.Translate(-0.5, 1, 0.5)).
		WithMaterial(material.NewMaterial().
			WithPattern(material.NewStripePattern(
				core.NewColour(0.1, 0.7, 0.4),
				core.NewColour(0.1, 0.4, 0.7)).
				WithTransform(core.Chain(
					core.UniformScale(0.25),
					core.RotateZ(math.Pi/4)))).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	right := geometry.NewSphere().
		WithTransform(core.Chain(core.UniformScale(0.5), core.Translate(1.5, 0.5, -0.5))).
		WithMaterial(material.NewMaterial().
			WithPattern(material.NewGradientPattern(
				core.NewColour(1, 0.3, 0.2),
				core.NewColour(1, 0.8, 0.1)).
				WithTransform(core.Chain(
					core.Translate(1, 0, 0),
					core.UniformScale(2)))).
			WithDiffuse(0.7).
			WithSpecular(0.3).
			WithReflectivity(0.1))

	left := geometry.NewSphere().
		WithTransform(core.Chain(core.UniformScale(0.33), core.Translate(-1.7, 0.33, -0.75))).
		WithMaterial(material.NewMaterial().
			WithPattern(material.NewRingPattern(
				core.NewColour(0.6, 0.3, 0.7),
				core.NewColour(0.9, 0.8, 0.95)).
				WithTransform(core.UniformScale(0.2))).
			WithDiffuse(0.7).
			WithSpecular(0.3))

	glass := geometry.NewGlassSphere().
		WithTransform(core.Chain(core.UniformScale(0.4), core.Translate(0.4, 0.4, -1.2))).
		WithMaterial(material.NewGlass().
			WithReflectivity(0.9).
			WithDiffuse(0.1).
			WithAmbient(0.05).
			WithSpecular(1).
			WithShininess(300))

	w := world.NewWorld().
		WithObject(floor).
		WithObject(middle).
		WithObject(right).
		WithObject(left).
		WithObject(glass).
		WithLight(lights.NewPointLight(core.White(), core.NewPoint(-10, 10, -10)))

	cam := camera.NewCamera(width, height, math.Pi/3).
		WithTransform(core.ViewTransform(
			core.NewPoint(0, 1.5, -5),
			core.NewPoint(0, 1, 0),
			core.NewVector(0, 1, 0)))

	return Scene{World: w, Camera: cam}
}

// NewGlassScene builds a scene centred on refraction: a hollow glass
// sphere hovering over a checkered floor, with a wall behind so the
// refracted image has something to show.
func NewGlassScene(width, height int) Scene {
	floor := geometry.NewPlane().
		WithTransform(core.Translate(0, -5, 0)).
		WithMaterial(material.NewMaterial().
			WithPattern(material.NewCheckerPattern(core.Grey(0.9), core.Grey(0.2))).
			WithSpecular(0))

	wall := geometry.NewPlane().
		WithTransform(core.Chain(core.RotateX(math.Pi/2), core.Translate(0, 0, 12))).
		WithMaterial(material.NewMaterial().
			WithPattern(material.NewRingPattern(
				core.NewColour(0.2, 0.4, 0.8),
				core.NewColour(0.9, 0.9, 0.95)).
				WithTransform(core.UniformScale(1.5))).
			WithSpecular(0))

	outer := geometry.NewGlassSphere().
		WithMaterial(material.NewGlass().
			WithReflectivity(0.9).
			WithDiffuse(0.05).
			WithAmbient(0))

	// An air bubble inside the outer sphere
	inner := geometry.NewGlassSphere().
		WithTransform(core.UniformScale(0.6)).
		WithMaterial(material.NewGlass().
			WithIOR(1.0).
			WithReflectivity(0.9).
			WithDiffuse(0.05).
			WithAmbient(0)).
		WithShadow(false)

	w := world.NewWorld().
		WithObject(floor).
		WithObject(wall).
		WithObject(outer).
		WithObject(inner).
		WithLight(lights.NewPointLight(core.Grey(0.9), core.NewPoint(2, 10, -5)))

	cam := camera.NewCamera(width, height, math.Pi/6).
		WithTransform(core.ViewTransform(
			core.NewPoint(0, 0, -8),
			core.NewPoint(0, 0, 0),
			core.NewVector(0, 1, 0)))

	return Scene{World: w, Camera: cam}
}
