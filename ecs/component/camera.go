package component

import "github.com/go-gl/mathgl/mgl64"

// Camera holds the orthographic projection of the single game camera. Width
// and Height are the visible world extents.
type Camera struct {
	MinScale         float64
	BackgroundHeight float64
	Width            float64
	Height           float64
	Projection       mgl64.Mat4
}

var CameraComponent = NewComponent[Camera]()

// Resize fits the projection to a window of the given size. The window is
// divided by MinScale, then shrunk further if it would show more than
// BackgroundHeight world units vertically.
func (c *Camera) Resize(width, height float64) {
	scale := c.MinScale
	if scale <= 0 {
		scale = 1
	}
	width /= scale
	height /= scale

	if c.BackgroundHeight > 0 && height > c.BackgroundHeight {
		factor := c.BackgroundHeight / height
		width *= factor
		height *= factor
	}

	c.Width = width
	c.Height = height
	c.Projection = mgl64.Ortho(-width/2, width/2, -height/2, height/2, 0, 1000)
}

// HalfExtents reads the visible half width and height back out of the
// projection matrix.
func (c *Camera) HalfExtents() (float64, float64) {
	sx, sy := c.Projection.At(0, 0), c.Projection.At(1, 1)
	if sx == 0 || sy == 0 {
		return 0, 0
	}
	return 1 / sx, 1 / sy
}

// WorldToScreen maps a world point seen from (camX, camY) into logical screen
// pixels with the origin at the top left.
func (c *Camera) WorldToScreen(camX, camY, x, y float64) (float64, float64) {
	view := mgl64.Translate3D(-camX, -camY, 0)
	clip := c.Projection.Mul4(view).Mul4x1(mgl64.Vec4{x, y, 0, 1})
	sx := (clip.X() + 1) / 2 * c.Width
	sy := (1 - clip.Y()) / 2 * c.Height
	return sx, sy
}
