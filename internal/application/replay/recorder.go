package replay

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/pong/internal/infrastructure/input"
)

// Recorder wraps an input source and records what it reports each frame.
// A frame ends when its snapshot is taken.
type Recorder struct {
	source    input.Source
	frames    []FrameInput
	pending   FrameInput
	recording bool
}

// NewRecorder creates a recorder around source
func NewRecorder(source input.Source) *Recorder {
	return &Recorder{
		source:    source,
		frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
		recording: true,
	}
}

// Poll implements input.Source.
func (r *Recorder) Poll() []input.Event {
	events := r.source.Poll()
	if !r.recording {
		return events
	}
	for _, ev := range events {
		switch ev.Kind {
		case input.EventQuit:
			r.pending.Quit = true
		case input.EventKeyDown:
			r.pending.Pressed = append(r.pending.Pressed, ev.Key)
		}
	}
	return events
}

// Snapshot implements input.Source.
func (r *Recorder) Snapshot() input.Map {
	m := r.source.Snapshot()
	if !r.recording {
		return m
	}
	r.pending.F = len(r.frames)
	r.pending.Keys = m.Keys()
	r.frames = append(r.frames, r.pending)
	r.pending = FrameInput{}
	return m
}

// Frames returns a copy of the recorded frames
func (r *Recorder) Frames() []FrameInput {
	out := make([]FrameInput, len(r.frames))
	for i, f := range r.frames {
		out[i] = FrameInput{
			F:       f.F,
			Keys:    append([]ebiten.Key(nil), f.Keys...),
			Pressed: append([]ebiten.Key(nil), f.Pressed...),
			Quit:    f.Quit,
		}
	}
	return out
}

// Stop stops recording; the wrapped source keeps being forwarded
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.frames)
}
