package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a software Surface backed by an in-memory RGBA image.
// It is used for headless runs and tests.
type Canvas struct {
	img   *image.RGBA
	color color.Color
}

// NewCanvas creates a canvas of the given size, initially transparent black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		color: color.Black,
	}
}

// SetColor implements Surface.
func (c *Canvas) SetColor(clr color.Color) {
	c.color = clr
}

// Clear implements Surface.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.color), image.Point{}, draw.Src)
}

// DrawPoint implements Surface.
func (c *Canvas) DrawPoint(x, y int) {
	if !image.Pt(x, y).In(c.img.Bounds()) {
		return
	}
	c.img.Set(x, y, c.color)
}

// FillRect implements Surface.
func (c *Canvas) FillRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.img, r, image.NewUniform(c.color), image.Point{}, draw.Src)
}

// At returns the color of the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}
