// Package replay records the input a game sees frame by frame and plays it
// back as an input source, so a run can be repeated exactly.
package replay

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// FrameInput records input state for a single frame
type FrameInput struct {
	F       int          // Frame number
	Keys    []ebiten.Key // Held during the frame
	Pressed []ebiten.Key // Went down during the frame
	Quit    bool         // Quit requested by the device
}

// Hold builds a script that holds keys for the given number of frames.
// Keys are held from the first frame, so none of them is reported as newly
// pressed.
func Hold(frames int, keys ...ebiten.Key) []FrameInput {
	script := make([]FrameInput, frames)
	for i := range script {
		script[i] = FrameInput{F: i, Keys: slices.Clone(keys)}
	}
	return script
}
