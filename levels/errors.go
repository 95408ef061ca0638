package levels

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no record exists for a level index.
	ErrNotFound = errors.New("levels: level not found")
	// ErrReadOnly is returned when saving to a store backed by bundled levels.
	ErrReadOnly = errors.New("levels: store is read-only")
)

// FormatError reports a level record that does not decode into a grid.
type FormatError struct {
	Path   string
	Line   int // 1-based; 0 when the problem is the record as a whole
	Column int // 1-based; 0 when the problem is the whole line
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("levels: %s:%d:%d: %s", e.Path, e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("levels: %s:%d: %s", e.Path, e.Line, e.Reason)
	default:
		return fmt.Sprintf("levels: %s: %s", e.Path, e.Reason)
	}
}

func (e *FormatError) Unwrap() error { return e.Err }
