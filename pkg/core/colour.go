package core

import "math"

// Colour represents an RGB colour with unclamped floating point components.
// Values outside [0, 1] are legal during shading and are only clamped when a
// canvas is exported to an image.
type Colour struct {
	R, G, B float64
}

// NewColour creates a new Colour
func NewColour(r, g, b float64) Colour {
	return Colour{R: r, G: g, B: b}
}

// White returns the colour (1, 1, 1)
func White() Colour {
	return Colour{R: 1, G: 1, B: 1}
}

// Black returns the colour (0, 0, 0)
func Black() Colour {
	return Colour{}
}

// Grey returns a grey colour with all components set to v
func Grey(v float64) Colour {
	return Colour{R: v, G: v, B: v}
}

// Add returns the component-wise sum of two colours
func (c Colour) Add(other Colour) Colour {
	return Colour{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Sub returns the component-wise difference of two colours
func (c Colour) Sub(other Colour) Colour {
	return Colour{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the colour scaled by a scalar
func (c Colour) Multiply(scalar float64) Colour {
	return Colour{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColour returns the component-wise (Hadamard) product of two colours
func (c Colour) MultiplyColour(other Colour) Colour {
	return Colour{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports whether two colours are equal within Epsilon per component
func (c Colour) Equals(other Colour) bool {
	return math.Abs(c.R-other.R) < Epsilon &&
		math.Abs(c.G-other.G) < Epsilon &&
		math.Abs(c.B-other.B) < Epsilon
}
