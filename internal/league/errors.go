package league

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRoster  = errors.New("number of teams must be even and at least 2")
	ErrDuplicateTeam  = errors.New("duplicate team name")
	ErrEmptyName      = errors.New("team names cannot be empty")
	ErrUnknownTeam    = errors.New("unknown team")
	ErrMalformedScore = errors.New("malformed score")
	ErrSameTeam       = errors.New("a team cannot play itself")
)

// RosterError reports a roster whose size cannot be scheduled.
type RosterError struct {
	Size int
}

func (e *RosterError) Error() string {
	return fmt.Sprintf("%v: got %d", ErrInvalidRoster, e.Size)
}

func (e *RosterError) Unwrap() error { return ErrInvalidRoster }

// TeamError ties a roster or result failure to the team name that caused it.
type TeamError struct {
	Name string
	Err  error
}

func (e *TeamError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Name)
}

func (e *TeamError) Unwrap() error { return e.Err }

// ScoreError carries the input that could not be read as a score.
type ScoreError struct {
	Input  string
	Reason string
}

func (e *ScoreError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v: %q", ErrMalformedScore, e.Input)
	}
	return fmt.Sprintf("%v: %q: %s", ErrMalformedScore, e.Input, e.Reason)
}

func (e *ScoreError) Unwrap() error { return ErrMalformedScore }
