package games

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord matches every ParseError via errors.Is.
var ErrInvalidRecord = errors.New("invalid game record")

// ParseError describes malformed raw game data. Record-level errors drop the game;
// field-level errors (scores) only blank the offending field.
type ParseError struct {
	Index  int
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("game %d: %s", e.Index, e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	return msg + ": " + e.Reason
}

// Is lets errors.Is(err, ErrInvalidRecord) match.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// AsParseError unwraps an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var pErr *ParseError
	if errors.As(err, &pErr) {
		return pErr, true
	}
	return nil, false
}
