package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
	"github.com/calebmartin/go-whitted-raytracer/pkg/world"
)

func TestNewCamera(t *testing.T) {
	c := NewCamera(160, 120, math.Pi/2)

	assert.Equal(t, 160, c.HSize)
	assert.Equal(t, 120, c.VSize)
	assert.Equal(t, math.Pi/2, c.FOV)
	assert.Equal(t, core.Identity(), c.Transform)
}

func TestCamera_PixelSize(t *testing.T) {
	t.Run("horizontal canvas", func(t *testing.T) {
		c := NewCamera(200, 125, math.Pi/2)
		assert.InDelta(t, 0.01, c.PixelSize, core.Epsilon)
	})

	t.Run("vertical canvas", func(t *testing.T) {
		c := NewCamera(125, 200, math.Pi/2)
		assert.InDelta(t, 0.01, c.PixelSize, core.Epsilon)
	})
}

func TestCamera_RayForPixel(t *testing.T) {
	half := math.Sqrt2 / 2

	tests := []struct {
		name              string
		transform         core.Transform
		px, py            int
		origin, direction mgl64.Vec4
	}{
		{
			name:      "through the centre of the canvas",
			transform: core.Identity(),
			px:        100, py: 50,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0, 0, -1),
		},
		{
			name:      "through a corner of the canvas",
			transform: core.Identity(),
			px:        0, py: 0,
			origin:    core.NewPoint(0, 0, 0),
			direction: core.NewVector(0.66519, 0.33259, -0.66851),
		},
		{
			name:      "with a transformed camera",
			transform: core.Chain(core.Translate(0, -2, 5), core.RotateY(math.Pi/4)),
			px:        100, py: 50,
			origin:    core.NewPoint(0, 2, -5),
			direction: core.NewVector(half, 0, -half),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCamera(201, 101, math.Pi/2).WithTransform(tt.transform)
			r := c.RayForPixel(tt.px, tt.py)
			assertVec4Equal(t, tt.origin, r.Origin)
			assertVec4Equal(t, tt.direction, r.Direction)
		})
	}
}

func TestCamera_Render(t *testing.T) {
	w := world.DefaultWorld()
	c := NewCamera(11, 11, math.Pi/2).WithTransform(core.ViewTransform(
		core.NewPoint(0, 0, -5),
		core.NewPoint(0, 0, 0),
		core.NewVector(0, 1, 0),
	))

	img := c.Render(w)

	centre := img.PixelAt(5, 5)
	assert.InDelta(t, 0.38066, centre.R, 1e-5)
	assert.InDelta(t, 0.47583, centre.G, 1e-5)
	assert.InDelta(t, 0.2855, centre.B, 1e-5)
}

func assertVec4Equal(t *testing.T, expected, actual mgl64.Vec4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		assert.InDelta(t, expected[i], actual[i], 1e-5, "component %d of %v vs %v", i, expected, actual)
	}
}
