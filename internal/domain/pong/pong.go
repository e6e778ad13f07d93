// Package pong is the reference content built on the entity framework:
// a background, two keyboard-driven paddles and a bouncing ball.
package pong

import (
	"image/color"

	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

// Field is the playing area in screen pixels.
type Field struct {
	Width  int
	Height int
}

// Background fills the whole surface with one color.
type Background struct {
	entity.Base
	Color color.Color
}

// NewBackground creates a background.
func NewBackground(c color.Color) *Background {
	return &Background{Color: c}
}

// Display implements entity.Entity.
func (b *Background) Display() render.Renderable {
	return render.Fill{Color: b.Color}
}

// Clone implements entity.Entity.
func (b *Background) Clone() entity.Entity {
	c := *b
	return &c
}
