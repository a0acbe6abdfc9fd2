package spritecut

// Track is a named animation sequence. Frames are kept in playback order: the
// last frame is the one currently shown, and each advance moves the oldest
// frame to the back.
type Track struct {
	Name string
	// UpdateRate is the number of milliseconds between frame advances.
	UpdateRate int

	frames []Frame
}

// TrackMeta holds the per-track playback and display state.
type TrackMeta struct {
	// Color is the hex display color, a palette entry or FallbackTrackColor.
	Color string
	// Timer is the number of milliseconds since the last advance.
	Timer float64

	color Color
}

// DisplayColor returns Color parsed for drawing.
func (m *TrackMeta) DisplayColor() Color {
	return m.color
}

// Frames returns the track's frames in playback order. The returned slice
// MUST NOT be mutated.
func (t *Track) Frames() []Frame {
	return t.frames
}

// Len returns the number of frames.
func (t *Track) Len() int {
	return len(t.frames)
}

// Current returns the frame shown during playback.
func (t *Track) Current() (Frame, bool) {
	if len(t.frames) == 0 {
		return Frame{}, false
	}
	return t.frames[len(t.frames)-1], true
}

func (t *Track) push(f Frame) {
	t.frames = append(t.frames, f)
}

func (t *Track) pop() {
	if len(t.frames) == 0 {
		return
	}
	t.frames[len(t.frames)-1] = Frame{}
	t.frames = t.frames[:len(t.frames)-1]
}

// rotate moves the oldest frame to the back.
func (t *Track) rotate() {
	if len(t.frames) < 2 {
		return
	}
	first := t.frames[0]
	copy(t.frames, t.frames[1:])
	t.frames[len(t.frames)-1] = first
}
