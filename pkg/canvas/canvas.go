package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
)

const ppmMaxLineLength = 70

// Canvas is a fixed-size grid of colours written to by the renderer and
// exported as an image afterwards. Colour components are kept as raw
// floats; clamping to displayable range happens only on export.
type Canvas struct {
	Width  int
	Height int
	pixels []core.Colour
}

// NewCanvas creates a canvas of the given size with every pixel black
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]core.Colour, width*height),
	}
}

// WritePixel sets the colour at (x, y). Writes outside the canvas are ignored.
func (c *Canvas) WritePixel(x, y int, colour core.Colour) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return
	}
	c.pixels[y*c.Width+x] = colour
}

// PixelAt returns the colour at (x, y)
func (c *Canvas) PixelAt(x, y int) core.Colour {
	return c.pixels[y*c.Width+x]
}

// ToImage converts the canvas to an RGBA image, clamping each component
// to [0, 1] before scaling to 8 bits
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			img.Set(x, y, color.RGBA{
				R: clampByte(p.R),
				G: clampByte(p.G),
				B: clampByte(p.B),
				A: 255,
			})
		}
	}
	return img
}

// WritePPM writes the canvas in plain PPM (P3) format. Lines are kept
// under 70 characters for strict readers, and the file ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	var line strings.Builder
	for y := 0; y < c.Height; y++ {
		line.Reset()
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			for _, v := range []float64{p.R, p.G, p.B} {
				value := fmt.Sprintf("%d", clampByte(v))
				if line.Len() > 0 && line.Len()+1+len(value) > ppmMaxLineLength {
					if _, err := fmt.Fprintln(w, line.String()); err != nil {
						return err
					}
					line.Reset()
				}
				if line.Len() > 0 {
					line.WriteByte(' ')
				}
				line.WriteString(value)
			}
		}
		if _, err := fmt.Fprintln(w, line.String()); err != nil {
			return err
		}
	}
	return nil
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}
