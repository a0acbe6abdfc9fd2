package spritecut

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DefaultUpdateRate pre-fills the create-track form.
const DefaultUpdateRate = 100

// Form fields.
const (
	FieldName = iota
	FieldRate
)

// TrackForm is the modal create-track popup.
type TrackForm struct {
	Open bool
	Name string
	Rate string
	// Field is the field receiving typed characters.
	Field int
}

// Show opens the form pre-filled for the next track. n is the current
// number of tracks.
func (f *TrackForm) Show(n int) {
	f.Open = true
	f.Name = fmt.Sprintf("track%d", n)
	f.Rate = strconv.Itoa(DefaultUpdateRate)
	f.Field = FieldName
}

// Close hides the form.
func (f *TrackForm) Close() {
	f.Open = false
}

// NextField moves input focus to the other field.
func (f *TrackForm) NextField() {
	f.Field = (f.Field + 1) % 2
}

// Type appends printable runes to the focused field.
func (f *TrackForm) Type(runes []rune) {
	if !f.Open {
		return
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			continue
		}
		if f.Field == FieldName {
			f.Name += string(r)
		} else {
			f.Rate += string(r)
		}
	}
}

// Backspace deletes the last rune of the focused field.
func (f *TrackForm) Backspace() {
	p := &f.Name
	if f.Field == FieldRate {
		p = &f.Rate
	}
	r := []rune(*p)
	if len(r) > 0 {
		*p = string(r[:len(r)-1])
	}
}

// Submit creates the track described by the form and closes it. On error
// the form stays open with its contents.
func (f *TrackForm) Submit(s *TrackStore) (*Track, error) {
	rate, err := ParseUpdateRate(f.Rate)
	if err != nil {
		return nil, err
	}
	t, err := s.CreateTrack(strings.TrimSpace(f.Name), rate)
	if err != nil {
		return nil, err
	}
	f.Close()
	return t, nil
}

// ParseUpdateRate parses a frame update rate in milliseconds.
func ParseUpdateRate(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0, &InvalidUpdateRateError{Input: s}
	}
	return n, nil
}
