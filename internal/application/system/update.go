package system

import "github.com/younwookim/pong/internal/application/scene"

// UpdateSystem runs the update phase.
type UpdateSystem struct{}

// NewUpdateSystem creates an update system.
func NewUpdateSystem() *UpdateSystem {
	return &UpdateSystem{}
}

// Update freezes the live scene into a snapshot, then calls every entity's
// updater in scene order against that snapshot. Updaters mutate only their own
// live entity, so no updater observes a sibling's progress from the same frame.
func (s *UpdateSystem) Update(sc *scene.Scene) *scene.Snapshot {
	snap := sc.Snapshot()
	for e := range sc.All() {
		e.Update().Update(snap)
	}
	return snap
}
