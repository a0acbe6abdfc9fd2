package spritecut

import (
	"strconv"
	"strings"
)

// Notifier receives user-facing messages from the store and the editor.
// LogBoard is the in-editor implementation.
type Notifier interface {
	Notify(message string, isError bool)
}

// TrackStore owns the tracks, their metadata and the selection.
// Tracks keep creation order, which is also the playback layout order.
type TrackStore struct {
	tracks   []*Track
	meta     map[string]*TrackMeta
	selected string
	notify   Notifier
}

// NewTrackStore returns an empty store. n may be nil.
func NewTrackStore(n Notifier) *TrackStore {
	return &TrackStore{
		meta:   make(map[string]*TrackMeta),
		notify: n,
	}
}

// Len returns the number of tracks.
func (s *TrackStore) Len() int {
	return len(s.tracks)
}

// Tracks returns the tracks in creation order. The returned slice MUST NOT be
// mutated.
func (s *TrackStore) Tracks() []*Track {
	return s.tracks
}

// Track looks up a track by name.
func (s *TrackStore) Track(name string) (*Track, error) {
	for _, t := range s.tracks {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, &UnknownTrackError{Name: name}
}

// Meta returns the metadata of the named track, or nil.
func (s *TrackStore) Meta(name string) *TrackMeta {
	return s.meta[name]
}

// CreateTrack adds a track with the next free palette color and selects it.
// When the palette is exhausted the track gets FallbackTrackColor and an
// error message is sent to the notifier.
func (s *TrackStore) CreateTrack(name string, updateRate int) (*Track, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &EmptyNameError{}
	}
	if _, ok := s.meta[name]; ok {
		return nil, &DuplicateNameError{Name: name}
	}
	if updateRate < 0 {
		return nil, &InvalidUpdateRateError{Input: strconv.Itoa(updateRate)}
	}

	used := make(map[string]bool, len(s.meta))
	for _, m := range s.meta {
		used[m.Color] = true
	}
	hex := freeColor(used)
	if hex == "" {
		s.send("All colors are used.", true)
		hex = FallbackTrackColor
	}

	t := &Track{Name: name, UpdateRate: updateRate}
	s.tracks = append(s.tracks, t)
	s.meta[name] = &TrackMeta{Color: hex, color: MustParseHexColor(hex)}
	s.selected = name
	return t, nil
}

// RemoveTrack deletes a track and its metadata. Removing the selected track
// clears the selection.
func (s *TrackStore) RemoveTrack(name string) error {
	for i, t := range s.tracks {
		if t.Name != name {
			continue
		}
		copy(s.tracks[i:], s.tracks[i+1:])
		s.tracks[len(s.tracks)-1] = nil
		s.tracks = s.tracks[:len(s.tracks)-1]
		delete(s.meta, name)
		if s.selected == name {
			s.selected = ""
		}
		return nil
	}
	return &UnknownTrackError{Name: name}
}

// SelectTrack makes name the target of frame edits.
func (s *TrackStore) SelectTrack(name string) error {
	if _, ok := s.meta[name]; !ok {
		return &UnknownTrackError{Name: name}
	}
	s.selected = name
	return nil
}

// SelectedName returns the selected track name, or "".
func (s *TrackStore) SelectedName() string {
	return s.selected
}

// Selected returns the selected track.
func (s *TrackStore) Selected() (*Track, error) {
	if len(s.tracks) == 0 {
		return nil, &NoTracksExistError{}
	}
	if s.selected == "" {
		return nil, &NoTrackSelectedError{}
	}
	return s.Track(s.selected)
}

// SelectNext moves the selection to the following track, wrapping around.
// With no selection the first track is selected.
func (s *TrackStore) SelectNext() error {
	if len(s.tracks) == 0 {
		return &NoTracksExistError{}
	}
	next := 0
	for i, t := range s.tracks {
		if t.Name == s.selected {
			next = (i + 1) % len(s.tracks)
			break
		}
	}
	s.selected = s.tracks[next].Name
	return nil
}

// AppendFrame adds f at the back of the named track.
func (s *TrackStore) AppendFrame(name string, f Frame) error {
	if len(s.tracks) == 0 {
		return &NoTracksExistError{}
	}
	t, err := s.Track(name)
	if err != nil {
		return err
	}
	t.push(f)
	return nil
}

// ResizeLastFrame sets the signed extent of the named track's last frame.
// No-op when the track has no frames.
func (s *TrackStore) ResizeLastFrame(name string, w, h int) error {
	t, err := s.Track(name)
	if err != nil {
		return err
	}
	if len(t.frames) == 0 {
		return nil
	}
	last := &t.frames[len(t.frames)-1]
	last.W = w
	last.H = h
	return nil
}

// UndoLastFrame drops the named track's last frame. No-op when it has none.
func (s *TrackStore) UndoLastFrame(name string) error {
	t, err := s.Track(name)
	if err != nil {
		return err
	}
	t.pop()
	return nil
}

// Advance adds dt milliseconds to the track's timer. Once the timer reaches
// the update rate the oldest frame moves to the back (when there is more
// than one) and the timer restarts from zero; time past the threshold is
// dropped, so a single call never advances more than one frame.
func (s *TrackStore) Advance(name string, dt float64) error {
	t, err := s.Track(name)
	if err != nil {
		return err
	}
	m := s.meta[name]
	m.Timer += dt
	if m.Timer >= float64(t.UpdateRate) {
		t.rotate()
		m.Timer = 0
	}
	return nil
}

// Accumulate adds dt milliseconds to the track's timer without rotating.
// The editor calls it while editing, so a timer that passed the rate fires
// on the first playback tick.
func (s *TrackStore) Accumulate(name string, dt float64) error {
	if _, err := s.Track(name); err != nil {
		return err
	}
	s.meta[name].Timer += dt
	return nil
}

func (s *TrackStore) send(msg string, isError bool) {
	if s.notify != nil {
		s.notify.Notify(msg, isError)
	}
}
