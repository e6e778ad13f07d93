package replay

import (
	"github.com/younwookim/pong/internal/infrastructure/input"
)

// Replayer is an input source that plays recorded frames back in order.
// Once the frames run out it reports quit on every poll.
type Replayer struct {
	frames  []FrameInput
	frame   int
	current FrameInput
}

// NewReplayer creates a new replayer from recorded frames
func NewReplayer(frames []FrameInput) *Replayer {
	return &Replayer{frames: frames}
}

// Poll implements input.Source. It advances to the next frame.
func (r *Replayer) Poll() []input.Event {
	if r.Done() {
		r.current = FrameInput{}
		return []input.Event{input.Quit()}
	}

	r.current = r.frames[r.frame]
	r.frame++

	events := make([]input.Event, 0, len(r.current.Pressed)+1)
	if r.current.Quit {
		events = append(events, input.Quit())
	}
	for _, k := range r.current.Pressed {
		events = append(events, input.KeyDown(k))
	}
	return events
}

// Snapshot implements input.Source. It returns the keys held in the frame
// most recently polled.
func (r *Replayer) Snapshot() input.Map {
	return input.NewMap(r.current.Keys...)
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.frames)
}
