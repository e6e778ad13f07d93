// Package entity defines the polymorphic unit the runtime drives every frame.
//
// An entity optionally provides four capabilities: a Renderable for the draw
// phase, an InputHandler for the input phase, an Updater for the update phase
// and a collider for intersection queries. Embedding Base supplies a no-op
// default for every capability, so concrete entities override only what they
// need and the runtime never branches on entity type.
package entity

import (
	"iter"

	"github.com/younwookim/pong/internal/infrastructure/input"
	"github.com/younwookim/pong/internal/infrastructure/render"
)

// Entity is a unit of world state.
//
// Capability methods are called once per entity per frame in the matching
// phase and must be cheap. Handles returned by Input and Update are only valid
// for that call and must not be retained.
type Entity interface {
	// Display returns what to draw for the current state.
	Display() render.Renderable
	// Input returns the handler for this frame's input phase.
	Input() InputHandler
	// Update returns the handler for this frame's update phase.
	Update() Updater
	// Collider returns the entity's bounding box, or false if it never collides.
	Collider() (BoundingBox, bool)
	// Clone returns a deep copy that shares no mutable state with the receiver.
	Clone() Entity
}

// InputHandler applies a device snapshot to its owning entity.
type InputHandler interface {
	HandleInput(m input.Map)
}

// InputFunc adapts a closure over the owning entity to InputHandler.
type InputFunc func(m input.Map)

// HandleInput calls f(m).
func (f InputFunc) HandleInput(m input.Map) {
	f(m)
}

// Updater advances its owning entity given the world as it stood before the
// update phase began. It must not mutate anything reachable from world.
type Updater interface {
	Update(world World)
}

// UpdateFunc adapts a closure over the owning entity to Updater.
type UpdateFunc func(world World)

// Update calls f(world).
func (f UpdateFunc) Update(world World) {
	f(world)
}

// World is a read-only, ordered view of every entity in a scene.
type World interface {
	// All yields entities in scene order.
	All() iter.Seq[Entity]
	// Len returns the number of entities.
	Len() int
}

var (
	// NoInput ignores input.
	NoInput InputHandler = InputFunc(func(input.Map) {})
	// NoUpdate does nothing.
	NoUpdate Updater = UpdateFunc(func(World) {})
)

// Base provides the default capability set: draw nothing, ignore input,
// never update, never collide. Embed it and override what is needed.
type Base struct{}

// Display implements Entity.
func (Base) Display() render.Renderable { return render.Nothing }

// Input implements Entity.
func (Base) Input() InputHandler { return NoInput }

// Update implements Entity.
func (Base) Update() Updater { return NoUpdate }

// Collider implements Entity.
func (Base) Collider() (BoundingBox, bool) { return BoundingBox{}, false }
