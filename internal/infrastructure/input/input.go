// Package input provides the per-frame device snapshot handed to input
// handlers and the sources that produce it.
package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

// Map is an immutable snapshot of the keys held down at one instant.
// The zero value is an empty snapshot.
type Map struct {
	keys *intmap.Map[ebiten.Key, struct{}]
}

// NewMap builds a snapshot in which exactly the given keys are held.
func NewMap(keys ...ebiten.Key) Map {
	m := intmap.New[ebiten.Key, struct{}](len(keys))
	for _, k := range keys {
		m.Put(k, struct{}{})
	}
	return Map{keys: m}
}

// Pressed reports whether k was held when the snapshot was taken.
func (m Map) Pressed(k ebiten.Key) bool {
	if m.keys == nil {
		return false
	}
	_, ok := m.keys.Get(k)
	return ok
}

// Len returns the number of held keys.
func (m Map) Len() int {
	if m.keys == nil {
		return 0
	}
	return m.keys.Len()
}

// Keys returns the held keys in ascending order.
func (m Map) Keys() []ebiten.Key {
	if m.keys == nil {
		return nil
	}
	keys := make([]ebiten.Key, 0, m.keys.Len())
	m.keys.ForEach(func(k ebiten.Key, _ struct{}) bool {
		keys = append(keys, k)
		return true
	})
	slices.Sort(keys)
	return keys
}

// EventKind identifies a discrete input event.
type EventKind int

const (
	// EventQuit is emitted when the window asks to close.
	EventQuit EventKind = iota
	// EventKeyDown is emitted on the frame a key goes down.
	EventKeyDown
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "Quit"
	case EventKeyDown:
		return "KeyDown"
	default:
		return "Unknown"
	}
}

// Event is a discrete input event. Key is only meaningful for EventKeyDown.
type Event struct {
	Kind EventKind
	Key  ebiten.Key
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Kind: EventQuit}
}

// KeyDown returns a key-down event for k.
func KeyDown(k ebiten.Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// Source is a device backend. The runtime drains Poll once per frame,
// before taking exactly one Snapshot.
type Source interface {
	// Poll drains the discrete events queued since the previous call.
	Poll() []Event
	// Snapshot returns the keys held right now.
	Snapshot() Map
}
