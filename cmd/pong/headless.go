package main

import (
	"slices"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/replay"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/infrastructure/config"
	"github.com/younwookim/pong/internal/infrastructure/input"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

// runHeadless builds a fresh world from cfg and steps it against source,
// drawing into memory, until source asks to quit.
func runHeadless(cfg *config.Config, source input.Source) (*game.Runtime, error) {
	w, err := buildWorld(cfg)
	if err != nil {
		return nil, err
	}

	rt := game.New(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, w.options(game.WithSource(source))...)
	if err := rt.BindScene(w.scene); err != nil {
		return nil, err
	}

	canvas := render.NewCanvas(cfg.Window.Width, cfg.Window.Height)
	for {
		quit, err := rt.Step(canvas)
		if err != nil {
			return nil, err
		}
		if quit {
			return rt, nil
		}
	}
}

// verifyReplay replays frames headless from the starting layout and reports
// whether every entity ends where it did in want.
func verifyReplay(cfg *config.Config, frames []replay.FrameInput, want *scene.Scene) (bool, error) {
	player := replay.NewReplayer(frames)
	rt, err := runHeadless(cfg, player)
	if err != nil {
		return false, err
	}
	logger.Debug("replay finished", "played", player.CurrentFrame(), "recorded", player.TotalFrames())
	return slices.Equal(describeAll(rt.Scene()), describeAll(want)), nil
}

func describeAll(sc *scene.Scene) []string {
	out := make([]string, 0, sc.Len())
	for e := range sc.All() {
		out = append(out, describe(e))
	}
	return out
}
