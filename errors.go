package spritecut

import "fmt"

// UnknownTrackError is returned when an operation names a track that is not
// in the store.
type UnknownTrackError struct {
	Name string
}

func (e *UnknownTrackError) Error() string {
	return fmt.Sprintf("spritecut: unknown track %q", e.Name)
}

// NoTrackSelectedError is returned when an edit needs a selected track and
// none is selected.
type NoTrackSelectedError struct{}

func (e *NoTrackSelectedError) Error() string {
	return "spritecut: no track is selected"
}

// NoTracksExistError is returned when an edit needs a track and the store is
// empty.
type NoTracksExistError struct{}

func (e *NoTracksExistError) Error() string {
	return "spritecut: create at least one track first"
}

// DuplicateNameError is returned by CreateTrack when the name is taken.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("spritecut: track %q already exists", e.Name)
}

// EmptyNameError is returned by CreateTrack for a blank name.
type EmptyNameError struct{}

func (e *EmptyNameError) Error() string {
	return "spritecut: track name is empty"
}

// InvalidUpdateRateError is returned when an update rate is not a
// non-negative integer number of milliseconds.
type InvalidUpdateRateError struct {
	Input string
}

func (e *InvalidUpdateRateError) Error() string {
	return fmt.Sprintf("spritecut: invalid update rate %q (want milliseconds as a non-negative integer)", e.Input)
}
