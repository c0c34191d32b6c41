package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColour_Arithmetic(t *testing.T) {
	c1 := NewColour(0.9, 0.6, 0.75)
	c2 := NewColour(0.7, 0.1, 0.25)

	assert.True(t, c1.Add(c2).Equals(NewColour(1.6, 0.7, 1.0)))
	assert.True(t, c1.Sub(c2).Equals(NewColour(0.2, 0.5, 0.5)))
	assert.True(t, NewColour(0.2, 0.3, 0.4).Multiply(2).Equals(NewColour(0.4, 0.6, 0.8)))
}

func TestColour_MultiplyColour(t *testing.T) {
	c1 := NewColour(1, 0.2, 0.4)
	c2 := NewColour(0.9, 1, 0.1)

	assert.True(t, c1.MultiplyColour(c2).Equals(NewColour(0.9, 0.2, 0.04)))
}

func TestColour_Constructors(t *testing.T) {
	assert.Equal(t, NewColour(1, 1, 1), White())
	assert.Equal(t, NewColour(0, 0, 0), Black())
	assert.Equal(t, NewColour(0.5, 0.5, 0.5), Grey(0.5))
}

func TestColour_Equals_Tolerance(t *testing.T) {
	c := NewColour(0.1, 0.2, 0.3)

	assert.True(t, c.Equals(NewColour(0.1+Epsilon/2, 0.2, 0.3)))
	assert.False(t, c.Equals(NewColour(0.1+Epsilon*2, 0.2, 0.3)))
}
