package material

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
	"github.com/calebmartin/go-whitted-raytracer/pkg/lights"
)

// Material holds the Phong parameters and pattern of a surface. Materials
// are immutable values: the With* builders return modified copies.
type Material struct {
	Ambient      float64
	Diffuse      float64
	Specular     float64
	Shininess    float64
	Reflectivity float64 // 0 matte .. 1 mirror
	Transparency float64 // 0 opaque .. 1 fully transparent
	IOR          float64 // index of refraction
	Pattern      Pattern
}

// NewMaterial returns a material with the default parameters: matte white,
// no reflection, no transparency, vacuum refraction index.
func NewMaterial() Material {
	return Material{
		Ambient:      0.1,
		Diffuse:      0.9,
		Specular:     0.9,
		Shininess:    200.0,
		Reflectivity: 0,
		Transparency: 0,
		IOR:          1.0,
		Pattern:      NewSolidPattern(core.White()),
	}
}

// NewGlass returns a material preset for clear glass
func NewGlass() Material {
	return NewMaterial().WithTransparency(1.0).WithIOR(1.5)
}

// WithColour returns a copy with a solid colour pattern
func (m Material) WithColour(colour core.Colour) Material {
	m.Pattern = NewSolidPattern(colour)
	return m
}

// WithAmbient returns a copy with the given ambient value
func (m Material) WithAmbient(ambient float64) Material {
	m.Ambient = ambient
	return m
}

// WithDiffuse returns a copy with the given diffuse value
func (m Material) WithDiffuse(diffuse float64) Material {
	m.Diffuse = diffuse
	return m
}

// WithSpecular returns a copy with the given specular value
func (m Material) WithSpecular(specular float64) Material {
	m.Specular = specular
	return m
}

// WithShininess returns a copy with the given shininess exponent
func (m Material) WithShininess(shininess float64) Material {
	m.Shininess = shininess
	return m
}

// WithReflectivity returns a copy with the given reflectivity in [0, 1]
func (m Material) WithReflectivity(reflectivity float64) Material {
	m.Reflectivity = reflectivity
	return m
}

// WithTransparency returns a copy with the given transparency in [0, 1]
func (m Material) WithTransparency(transparency float64) Material {
	m.Transparency = transparency
	return m
}

// WithIOR returns a copy with the given index of refraction
func (m Material) WithIOR(ior float64) Material {
	m.IOR = ior
	return m
}

// WithPattern returns a copy with the given pattern
func (m Material) WithPattern(pattern Pattern) Material {
	m.Pattern = pattern
	return m
}

// Lighting evaluates the Phong model for a single light at a point on a
// surface. objectInverse is the inverse transform of the object being
// shaded, needed to sample the pattern in object space. The ambient term is
// never shadowed: it models indirect light unaffected by direct occlusion.
func (m Material) Lighting(objectInverse mgl64.Mat4, light lights.PointLight, position, eye, normal mgl64.Vec4, inShadow bool) core.Colour {
	colour := m.Pattern.AtObject(objectInverse, position)
	effective := colour.MultiplyColour(light.Intensity)
	ambient := effective.Multiply(m.Ambient)

	lightv := light.Position.Sub(position).Normalize()
	lightDotNormal := lightv.Dot(normal)

	diffuse := core.Black()
	specular := core.Black()
	if lightDotNormal >= 0 {
		// Light is on the same side as the normal
		diffuse = effective.Multiply(m.Diffuse * lightDotNormal)

		reflectv := core.Reflect(lightv.Mul(-1), normal)
		reflectDotEye := reflectv.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	if inShadow {
		return ambient
	}
	return ambient.Add(diffuse).Add(specular)
}
