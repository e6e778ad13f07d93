// Package render provides the drawing surface contract and the primitive
// renderables entities hand to the draw phase.
//
// All coordinates are absolute surface pixels. Primitives draw in call order,
// so a later primitive overwrites the pixels of an earlier one.
package render

import "image/color"

// Surface is the drawing target of a frame.
type Surface interface {
	// SetColor sets the color used by subsequent Clear, DrawPoint and FillRect calls.
	SetColor(c color.Color)
	// Clear overwrites every pixel with the current color.
	Clear()
	// DrawPoint sets a single pixel. Points outside the surface are ignored.
	DrawPoint(x, y int)
	// FillRect fills an axis-aligned rectangle, clipped to the surface.
	FillRect(x, y, w, h int)
}

// Renderable draws a visual primitive onto a surface.
type Renderable interface {
	Render(s Surface)
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func(s Surface)

// Render calls f(s).
func (f RenderFunc) Render(s Surface) {
	f(s)
}

// Nothing is the renderable of entities that have nothing to draw.
var Nothing Renderable = RenderFunc(func(Surface) {})

// Fill sets the entire surface to a solid color.
type Fill struct {
	Color color.Color
}

// Render implements Renderable.
func (f Fill) Render(s Surface) {
	s.SetColor(f.Color)
	s.Clear()
}

// Rect is an axis-aligned filled rectangle.
type Rect struct {
	X, Y  int
	W, H  int
	Color color.Color
}

// Render implements Renderable.
func (r Rect) Render(s Surface) {
	s.SetColor(r.Color)
	s.FillRect(r.X, r.Y, r.W, r.H)
}
