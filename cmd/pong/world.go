package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/domain/pong"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

// world is a validated config turned into a ready scene plus the runtime
// settings that go with it.
type world struct {
	scene *scene.Scene
	clear color.RGBA
	quit  []ebiten.Key
}

func buildWorld(cfg *config.Config) (*world, error) {
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}
	keys, err := cfg.Controls.Bindings()
	if err != nil {
		return nil, err
	}

	field := pong.Field{Width: cfg.Window.Width, Height: cfg.Window.Height}
	paddle := func(up, down ebiten.Key, c color.Color) pong.PaddleConfig {
		return pong.PaddleConfig{
			Width:    cfg.Paddle.Width,
			Height:   cfg.Paddle.Height,
			Margin:   cfg.Paddle.Margin,
			Speed:    cfg.Paddle.Speed,
			Field:    field,
			Controls: pong.Controls{Up: up, Down: down},
			Color:    c,
		}
	}

	setup := pong.Setup{
		Background: palette.Background,
		Left:       paddle(keys.LeftUp, keys.LeftDown, palette.LeftPaddle),
		Right:      paddle(keys.RightUp, keys.RightDown, palette.RightPaddle),
		PaddleY:    cfg.Paddle.StartY,
		Ball: pong.BallConfig{
			Radius: cfg.Ball.Radius,
			Speed:  cfg.Ball.Speed,
			Filled: cfg.Ball.Filled,
			Field:  field,
			Color:  palette.Ball,
		},
		BallX:  cfg.Ball.StartX,
		BallY:  cfg.Ball.StartY,
		BallDX: cfg.Ball.DirX,
		BallDY: cfg.Ball.DirY,
	}

	sc := scene.New()
	for _, e := range setup.Entities() {
		sc.Add(e)
	}

	return &world{scene: sc, clear: palette.Clear, quit: keys.Quit}, nil
}

// options returns the runtime options for this world followed by extra.
func (w *world) options(extra ...game.Option) []game.Option {
	opts := []game.Option{
		game.WithClearColor(w.clear),
		game.WithQuitKeys(w.quit...),
		game.WithLogger(logger),
	}
	return append(opts, extra...)
}
