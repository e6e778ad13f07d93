package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen adapts an ebiten image to Surface. Presentation is done by ebiten
// once Draw returns.
type Screen struct {
	img   *ebiten.Image
	color color.Color
}

// NewScreen wraps the frame's screen image.
func NewScreen(img *ebiten.Image) *Screen {
	return &Screen{img: img, color: color.Black}
}

// SetColor implements Surface.
func (s *Screen) SetColor(c color.Color) {
	s.color = c
}

// Clear implements Surface.
func (s *Screen) Clear() {
	s.img.Fill(s.color)
}

// DrawPoint implements Surface.
func (s *Screen) DrawPoint(x, y int) {
	if !image.Pt(x, y).In(s.img.Bounds()) {
		return
	}
	s.img.Set(x, y, s.color)
}

// FillRect implements Surface.
func (s *Screen) FillRect(x, y, w, h int) {
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	s.img.SubImage(r).(*ebiten.Image).Fill(s.color)
}
