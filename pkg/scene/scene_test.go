package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene(40, 30)

	require.NotEmpty(t, s.World.Objects)
	require.NotEmpty(t, s.World.Lights)
	assert.Equal(t, 40, s.Camera.HSize)
	assert.Equal(t, 30, s.Camera.VSize)
}

func TestNewGlassScene(t *testing.T) {
	s := NewGlassScene(40, 30)

	require.NotEmpty(t, s.World.Objects)
	require.NotEmpty(t, s.World.Lights)

	transparent := 0
	for _, o := range s.World.Objects {
		if o.Material.Transparency > 0 {
			transparent++
		}
	}
	assert.GreaterOrEqual(t, transparent, 2)
}

func TestScene_Render(t *testing.T) {
	img := NewDefaultScene(8, 6).Render()

	assert.Equal(t, 8, img.Width)
	assert.Equal(t, 6, img.Height)
}
