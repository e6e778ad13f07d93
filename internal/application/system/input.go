package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/infrastructure/input"
)

// InputSystem runs the input phase against a device source.
type InputSystem struct {
	source   input.Source
	quitKeys []ebiten.Key
}

// NewInputSystem creates an input system. A quit event or a key-down of
// Escape ends the game; quitKeys are extra keys that do the same.
func NewInputSystem(source input.Source, quitKeys ...ebiten.Key) *InputSystem {
	keys := []ebiten.Key{ebiten.KeyEscape}
	for _, k := range quitKeys {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return &InputSystem{source: source, quitKeys: keys}
}

// PollQuit drains the discrete events and reports whether any of them asks
// the game to quit.
func (s *InputSystem) PollQuit() bool {
	quit := false
	for _, ev := range s.source.Poll() {
		switch ev.Kind {
		case input.EventQuit:
			quit = true
		case input.EventKeyDown:
			if slices.Contains(s.quitKeys, ev.Key) {
				quit = true
			}
		}
	}
	return quit
}

// Apply reads the held keys once and hands that single snapshot to every
// entity's input handler in scene order. It returns the snapshot used.
func (s *InputSystem) Apply(sc *scene.Scene) input.Map {
	m := s.source.Snapshot()
	for e := range sc.All() {
		e.Input().HandleInput(m)
	}
	return m
}
