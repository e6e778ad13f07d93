package pong

import (
	"image/color"

	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

// BallConfig holds the ball geometry and behavior.
type BallConfig struct {
	Radius int
	Speed  int // Pixels per update tick along each axis
	Filled bool
	Field  Field
	Color  color.Color
}

// Ball moves diagonally, bounces off the field walls and reverses its
// horizontal direction on contact with any collider.
type Ball struct {
	entity.Base
	X, Y   int
	DX, DY int // Direction, -1 or 1 per axis
	cfg    BallConfig
}

// NewBall creates a ball centered at (x, y) heading in direction (dx, dy).
func NewBall(x, y, dx, dy int, cfg BallConfig) *Ball {
	return &Ball{X: x, Y: y, DX: dx, DY: dy, cfg: cfg}
}

// Bounds returns the square enclosing the ball.
func (b *Ball) Bounds() entity.BoundingBox {
	r := b.cfg.Radius
	return entity.NewBox(b.X-r, b.Y-r, 2*r, 2*r)
}

// Display implements entity.Entity.
func (b *Ball) Display() render.Renderable {
	return render.Circle{X: b.X, Y: b.Y, Radius: b.cfg.Radius, Filled: b.cfg.Filled, Color: b.cfg.Color}
}

// Update implements entity.Entity.
func (b *Ball) Update() entity.Updater {
	return entity.UpdateFunc(b.step)
}

// Clone implements entity.Entity.
func (b *Ball) Clone() entity.Entity {
	c := *b
	return &c
}

func (b *Ball) step(world entity.World) {
	r := b.cfg.Radius
	w, h := b.cfg.Field.Width, b.cfg.Field.Height

	b.X += b.DX * b.cfg.Speed
	b.Y += b.DY * b.cfg.Speed

	// Walls only bounce a ball that is still heading into them
	if b.X-r < 0 && b.DX < 0 {
		b.X = r
		b.DX = -b.DX
	}
	if b.X+r > w && b.DX > 0 {
		b.X = w - r
		b.DX = -b.DX
	}
	if b.Y-r < 0 && b.DY < 0 {
		b.Y = r
		b.DY = -b.DY
	}
	if b.Y+r > h && b.DY > 0 {
		b.Y = h - r
		b.DY = -b.DY
	}

	// One flip per overlapping collider; overlap is not resolved
	for range entity.Intersecting(world, b.Bounds()) {
		b.DX = -b.DX
	}
}
