package pong

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/input"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

// Side identifies which player owns a paddle.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// Controls binds the keys that move a paddle.
type Controls struct {
	Up   ebiten.Key
	Down ebiten.Key
}

// DefaultControls returns W/S for the left paddle and the arrow keys for the right.
func DefaultControls(side Side) Controls {
	if side == SideLeft {
		return Controls{Up: ebiten.KeyW, Down: ebiten.KeyS}
	}
	return Controls{Up: ebiten.KeyArrowUp, Down: ebiten.KeyArrowDown}
}

// PaddleConfig holds the paddle geometry and behavior.
type PaddleConfig struct {
	Width    int
	Height   int
	Margin   int // Distance from the paddle's side of the field
	Speed    int // Pixels per input tick
	Field    Field
	Controls Controls
	Color    color.Color
}

// Paddle is a vertical bar moved by the keyboard.
type Paddle struct {
	entity.Base
	Side Side
	Y    int
	cfg  PaddleConfig
}

// NewPaddle creates a paddle on the given side with its top edge at y.
func NewPaddle(side Side, y int, cfg PaddleConfig) *Paddle {
	return &Paddle{Side: side, Y: y, cfg: cfg}
}

// X returns the paddle's left edge.
func (p *Paddle) X() int {
	if p.Side == SideLeft {
		return p.cfg.Margin
	}
	return p.cfg.Field.Width - p.cfg.Margin - p.cfg.Width
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() entity.BoundingBox {
	return entity.NewBox(p.X(), p.Y, p.cfg.Width, p.cfg.Height)
}

// Display implements entity.Entity.
func (p *Paddle) Display() render.Renderable {
	b := p.Bounds()
	return render.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H, Color: p.cfg.Color}
}

// Input implements entity.Entity. Up and down are independent, so holding
// both leaves the paddle where it is.
func (p *Paddle) Input() entity.InputHandler {
	return entity.InputFunc(func(m input.Map) {
		if m.Pressed(p.cfg.Controls.Up) {
			p.Y -= p.cfg.Speed
		}
		if m.Pressed(p.cfg.Controls.Down) {
			p.Y += p.cfg.Speed
		}
	})
}

// Collider implements entity.Entity.
func (p *Paddle) Collider() (entity.BoundingBox, bool) {
	return p.Bounds(), true
}

// Clone implements entity.Entity.
func (p *Paddle) Clone() entity.Entity {
	c := *p
	return &c
}
