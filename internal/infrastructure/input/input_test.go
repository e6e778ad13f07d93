package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_ZeroValueIsEmpty(t *testing.T) {
	var m Map

	assert.False(t, m.Pressed(ebiten.KeyW))
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())
}

func TestMap_Pressed(t *testing.T) {
	m := NewMap(ebiten.KeyW, ebiten.KeyArrowDown)

	assert.True(t, m.Pressed(ebiten.KeyW))
	assert.True(t, m.Pressed(ebiten.KeyArrowDown))
	assert.False(t, m.Pressed(ebiten.KeyS))
	assert.False(t, m.Pressed(ebiten.KeyArrowUp))
	assert.Equal(t, 2, m.Len())
}

func TestMap_DuplicateKeys(t *testing.T) {
	m := NewMap(ebiten.KeyS, ebiten.KeyS, ebiten.KeyS)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []ebiten.Key{ebiten.KeyS}, m.Keys())
}

func TestMap_KeysSorted(t *testing.T) {
	m := NewMap(ebiten.KeyW, ebiten.KeyA, ebiten.KeyS)

	keys := m.Keys()
	require.Len(t, keys, 3)
	assert.IsIncreasing(t, keys)
}

func TestEventKind_String(t *testing.T) {
	tests := []struct {
		kind     EventKind
		expected string
	}{
		{EventQuit, "Quit"},
		{EventKeyDown, "KeyDown"},
		{EventKind(42), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestEventConstructors(t *testing.T) {
	assert.Equal(t, Event{Kind: EventQuit}, Quit())
	assert.Equal(t, Event{Kind: EventKeyDown, Key: ebiten.KeyEscape}, KeyDown(ebiten.KeyEscape))
}

func TestParseKey(t *testing.T) {
	t.Run("round trips ebiten names", func(t *testing.T) {
		for _, k := range []ebiten.Key{ebiten.KeyW, ebiten.KeyS, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyEscape} {
			got, err := ParseKey(k.String())
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}
	})

	t.Run("case insensitive", func(t *testing.T) {
		got, err := ParseKey("  w ")
		require.NoError(t, err)
		assert.Equal(t, ebiten.KeyW, got)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := ParseKey("NotAKey")
		assert.Error(t, err)
	})
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys([]string{ebiten.KeyW.String(), ebiten.KeyArrowDown.String()})
	require.NoError(t, err)
	assert.Equal(t, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowDown}, keys)

	_, err = ParseKeys([]string{"W", "bogus"})
	assert.Error(t, err)
}
