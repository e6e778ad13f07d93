package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

func TestDrawSystem_ClearsThenDrawsInOrder(t *testing.T) {
	var log []string
	sc, trackers := newTrackerScene(&log, "back", "front")
	trackers[0].value = 1
	trackers[1].value = 1

	canvas := render.NewCanvas(4, 4)
	canvas.SetColor(color.RGBA{255, 0, 0, 255})
	canvas.Clear()

	NewDrawSystem(color.Black).Draw(sc, canvas)

	assert.Equal(t, []string{"draw:back", "draw:front"}, log)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, canvas.At(3, 3), "surface is cleared first")
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, canvas.At(1, 0))
}

func TestDrawSystem_EmptyScene(t *testing.T) {
	canvas := render.NewCanvas(2, 2)

	NewDrawSystem(color.RGBA{0, 0, 255, 255}).Draw(scene.New(), canvas)

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, canvas.At(1, 1))
}
