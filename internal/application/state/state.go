// Package state defines the lifecycle of the game runtime.
package state

// RuntimeState represents where the runtime is in its lifecycle.
//
//	Uninitialized -> SceneBound -> Running -> Stopped
//
// Running only ends through a quit request or a backend failure.
type RuntimeState int

const (
	StateUninitialized RuntimeState = iota
	StateSceneBound
	StateRunning
	StateStopped
)

// String returns the string representation of the runtime state
func (s RuntimeState) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateSceneBound:
		return "SceneBound"
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// CanBind reports whether a scene may still be bound in this state.
func (s RuntimeState) CanBind() bool {
	return s == StateUninitialized || s == StateSceneBound
}
