package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Keyboard reads the ebiten keyboard. It must only be used from inside the
// ebiten game loop.
type Keyboard struct {
	pressed []ebiten.Key
	events  []Event
}

// NewKeyboard creates a keyboard source. Window close requests are reported
// as EventQuit, so the caller should enable ebiten.SetWindowClosingHandled.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		pressed: make([]ebiten.Key, 0, 16),
		events:  make([]Event, 0, 8),
	}
}

// Poll implements Source.
func (k *Keyboard) Poll() []Event {
	k.events = k.events[:0]
	if ebiten.IsWindowBeingClosed() {
		k.events = append(k.events, Quit())
	}
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		k.events = append(k.events, KeyDown(key))
	}
	return k.events
}

// Snapshot implements Source.
func (k *Keyboard) Snapshot() Map {
	k.pressed = inpututil.AppendPressedKeys(k.pressed[:0])
	return NewMap(k.pressed...)
}
