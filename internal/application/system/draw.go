package system

import (
	"image/color"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

// DrawSystem runs the draw phase.
type DrawSystem struct {
	clear color.Color
}

// NewDrawSystem creates a draw system that clears to the given color.
func NewDrawSystem(clear color.Color) *DrawSystem {
	return &DrawSystem{clear: clear}
}

// Draw clears the surface and renders every entity in scene order, so later
// entities draw over earlier ones.
func (s *DrawSystem) Draw(sc *scene.Scene, surface render.Surface) {
	surface.SetColor(s.clear)
	surface.Clear()
	for e := range sc.All() {
		e.Display().Render(surface)
	}
}
