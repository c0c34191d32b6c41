package camera

import (
	"math"
	"runtime"
	"sync"

	"github.com/calebmartin/go-whitted-raytracer/pkg/canvas"
	"github.com/calebmartin/go-whitted-raytracer/pkg/core"
	"github.com/calebmartin/go-whitted-raytracer/pkg/world"
)

// Camera maps canvas pixels to rays through a one-unit-deep view plane.
// The field of view fixes the plane's widest extent; PixelSize follows
// from dividing that extent across the horizontal resolution.
type Camera struct {
	HSize     int
	VSize     int
	FOV       float64
	Transform core.Transform
	PixelSize float64

	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera for a canvas of hsize by vsize pixels with
// the given field of view in radians
func NewCamera(hsize, vsize int, fov float64) Camera {
	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return Camera{
		HSize:      hsize,
		VSize:      vsize,
		FOV:        fov,
		Transform:  core.Identity(),
		PixelSize:  halfWidth * 2 / float64(hsize),
		halfWidth:  halfWidth,
		halfHeight: halfHeight,
	}
}

// WithTransform returns a copy of the camera with the given view transform
func (c Camera) WithTransform(t core.Transform) Camera {
	c.Transform = t
	return c
}

// RayForPixel returns the world-space ray through the centre of the pixel
// at (px, py)
func (c Camera) RayForPixel(px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	// Untransformed, the camera looks toward -z with +x to the left
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := c.Transform.Inv.Mul4x1(core.NewPoint(worldX, worldY, -1))
	origin := c.Transform.Inv.Mul4x1(core.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces every pixel of the camera's view of the world onto a new
// canvas. Rows are dealt out to one worker per CPU; each row is written
// by exactly one worker, so the canvas needs no locking.
func (c Camera) Render(w world.World) *canvas.Canvas {
	img := canvas.NewCanvas(c.HSize, c.VSize)

	rows := make(chan int, c.VSize)
	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < c.HSize; x++ {
					ray := c.RayForPixel(x, y)
					img.WritePixel(x, y, w.ColourAt(ray, w.RecursionLimit))
				}
			}
		}()
	}
	wg.Wait()

	return img
}
