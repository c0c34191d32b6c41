package lights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

func TestNewPointLight(t *testing.T) {
	intensity := core.White()
	position := core.NewPoint(0, 0, 0)
	light := NewPointLight(intensity, position)

	assert.Equal(t, intensity, light.Intensity)
	assert.Equal(t, position, light.Position)
}

func TestNewPointLight_RejectsVectorPosition(t *testing.T) {
	require.Panics(t, func() {
		NewPointLight(core.White(), core.NewVector(0, 0, 0))
	})
}
