package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeState_String(t *testing.T) {
	tests := []struct {
		state    RuntimeState
		expected string
	}{
		{StateUninitialized, "Uninitialized"},
		{StateSceneBound, "SceneBound"},
		{StateRunning, "Running"},
		{StateStopped, "Stopped"},
		{RuntimeState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestRuntimeStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, RuntimeState(0), StateUninitialized)
	assert.Equal(t, RuntimeState(1), StateSceneBound)
	assert.Equal(t, RuntimeState(2), StateRunning)
	assert.Equal(t, RuntimeState(3), StateStopped)
}

func TestRuntimeState_CanBind(t *testing.T) {
	assert.True(t, StateUninitialized.CanBind())
	assert.True(t, StateSceneBound.CanBind())
	assert.False(t, StateRunning.CanBind())
	assert.False(t, StateStopped.CanBind())
}
