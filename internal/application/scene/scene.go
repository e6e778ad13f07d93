// Package scene holds the ordered entity collection that makes up the world.
//
// Insertion order is both iteration order and draw order: earlier entities
// are drawn first and are visited first by every phase.
package scene

import (
	"iter"
	"slices"

	"github.com/younwookim/pong/internal/domain/entity"
)

// Scene is an ordered, growable collection of entities.
// There is no removal: the entity set is fixed once the runtime starts.
type Scene struct {
	entities []entity.Entity
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends e. No duplicate or identity checks are made.
func (s *Scene) Add(e entity.Entity) {
	s.entities = append(s.entities, e)
}

// All yields the live entities in scene order.
func (s *Scene) All() iter.Seq[entity.Entity] {
	return slices.Values(s.entities)
}

// Len returns the number of entities.
func (s *Scene) Len() int {
	return len(s.entities)
}

// At returns the i-th entity.
func (s *Scene) At(i int) entity.Entity {
	return s.entities[i]
}

// Clone returns an independent scene whose entities are deep copies.
func (s *Scene) Clone() *Scene {
	return &Scene{entities: cloneAll(s.entities)}
}

// Snapshot freezes the current state of every entity.
func (s *Scene) Snapshot() *Snapshot {
	return &Snapshot{entities: cloneAll(s.entities)}
}

// Snapshot is a frozen, read-only copy of a scene taken before the update
// phase. Mutating the live scene afterwards never changes a snapshot.
type Snapshot struct {
	entities []entity.Entity
}

var _ entity.World = (*Snapshot)(nil)

// All implements entity.World.
func (s *Snapshot) All() iter.Seq[entity.Entity] {
	return slices.Values(s.entities)
}

// Len implements entity.World.
func (s *Snapshot) Len() int {
	return len(s.entities)
}

func cloneAll(src []entity.Entity) []entity.Entity {
	dst := make([]entity.Entity, len(src))
	for i, e := range src {
		dst[i] = e.Clone()
	}
	return dst
}
