package material

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

// PatternKind enumerates the closed set of pattern variants. Patterns are
// pure functions of a local-space point, dispatched by kind rather than
// through an interface so Pattern stays a comparable value.
type PatternKind int

const (
	// SolidKind is a constant colour
	SolidKind PatternKind = iota
	// StripeKind alternates two colours along x
	StripeKind
	// GradientKind linearly interpolates on fractional x
	GradientKind
	// RingKind alternates two colours in concentric rings on the x-z plane
	RingKind
	// CheckerKind alternates two colours in a 3-D checkerboard
	CheckerKind
	// RadialKind partitions the x-z plane into angular sectors
	RadialKind
	// TestKind returns the sample point as a colour, for tests only
	TestKind
)

// Pattern is a spatial colour function with its own transform, independent
// of the transform of the object wearing it.
type Pattern struct {
	Kind      PatternKind
	A, B      core.Colour
	Sectors   int
	Transform core.Transform
}

// NewSolidPattern creates a pattern with a single solid colour
func NewSolidPattern(colour core.Colour) Pattern {
	return Pattern{Kind: SolidKind, A: colour, B: colour, Transform: core.Identity()}
}

// NewStripePattern creates a pattern alternating two colours along x
func NewStripePattern(a, b core.Colour) Pattern {
	return Pattern{Kind: StripeKind, A: a, B: b, Transform: core.Identity()}
}

// NewGradientPattern creates a linear gradient from a to b along x
func NewGradientPattern(a, b core.Colour) Pattern {
	return Pattern{Kind: GradientKind, A: a, B: b, Transform: core.Identity()}
}

// NewRingPattern creates concentric rings of two colours on the x-z plane
func NewRingPattern(a, b core.Colour) Pattern {
	return Pattern{Kind: RingKind, A: a, B: b, Transform: core.Identity()}
}

// NewCheckerPattern creates a 3-D checkerboard of two colours
func NewCheckerPattern(a, b core.Colour) Pattern {
	return Pattern{Kind: CheckerKind, A: a, B: b, Transform: core.Identity()}
}

// NewRadialPattern creates a pattern of sectors alternating angular slices
// of two colours around the y axis.
func NewRadialPattern(a, b core.Colour, sectors int) Pattern {
	return Pattern{Kind: RadialKind, A: a, B: b, Sectors: sectors, Transform: core.Identity()}
}

// NewTestPattern creates a pattern that reports the sample point as a
// colour. Only useful for tests.
func NewTestPattern() Pattern {
	return Pattern{Kind: TestKind, Transform: core.Identity()}
}

// WithTransform returns a copy of the pattern with the given transform
func (p Pattern) WithTransform(t core.Transform) Pattern {
	p.Transform = t
	return p
}

// At evaluates the pattern at a point already in pattern space
func (p Pattern) At(point mgl64.Vec4) core.Colour {
	switch p.Kind {
	case StripeKind:
		if math.Mod(math.Floor(point.X()), 2) == 0 {
			return p.A
		}
		return p.B
	case GradientKind:
		frac := point.X() - math.Floor(point.X())
		return p.A.Add(p.B.Sub(p.A).Multiply(frac))
	case RingKind:
		r := math.Sqrt(point.X()*point.X() + point.Z()*point.Z())
		if math.Mod(math.Floor(r), 2) == 0 {
			return p.A
		}
		return p.B
	case CheckerKind:
		sum := math.Floor(point.X()) + math.Floor(point.Y()) + math.Floor(point.Z())
		if math.Mod(sum, 2) == 0 {
			return p.A
		}
		return p.B
	case RadialKind:
		theta := math.Atan2(point.Z(), point.X())
		sector := int(math.Floor((theta + math.Pi) / (2 * math.Pi) * float64(p.Sectors)))
		if sector%2 == 0 {
			return p.A
		}
		return p.B
	case TestKind:
		return core.NewColour(point.X(), point.Y(), point.Z())
	default:
		return p.A
	}
}

// AtObject evaluates the pattern at a world-space point on an object. The
// point passes through the object's inverse transform and then the
// pattern's own inverse, so a pattern can be moved independently of the
// object wearing it.
func (p Pattern) AtObject(objectInverse mgl64.Mat4, worldPoint mgl64.Vec4) core.Colour {
	objectPoint := objectInverse.Mul4x1(worldPoint)
	patternPoint := p.Transform.Inv.Mul4x1(objectPoint)
	return p.At(patternPoint)
}
