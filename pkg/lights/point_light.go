package lights

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// PointLight is a light source with no size, existing at a single point and
// radiating in every direction equally.
type PointLight struct {
	Intensity core.Colour
	Position  mgl64.Vec4
}

// NewPointLight creates a new point light. The position must be a point.
func NewPointLight(intensity core.Colour, position mgl64.Vec4) PointLight {
	if !core.IsPoint(position) {
		panic("light position must be a point (w=1)")
	}
	return PointLight{Intensity: intensity, Position: position}
}
