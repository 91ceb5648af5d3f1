package session

import (
	"errors"
	"fmt"
)

// ErrMissingInput is the kind of every validation rejection.
var ErrMissingInput = errors.New("missing input")

// Error is a rejected operation. State is never modified when one is returned.
type Error struct {
	Op    string // operation, e.g. "CreateThread"
	Field string // offending input, e.g. "title"
	Kind  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("session.%s: %s: %v", e.Op, e.Field, e.Kind)
}

func (e *Error) Unwrap() error { return e.Kind }

func missing(op, field string) error {
	return &Error{Op: op, Field: field, Kind: ErrMissingInput}
}
