package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputShape: the chat log passed to a constructor is not a sequence.
	ErrInvalidInputShape = errors.New("invalid input shape")
	// ErrMissingField: a record has no value under the configured id field.
	ErrMissingField = errors.New("missing field")
)

// InvalidInputShapeError reports the Go type that was passed instead of a sequence.
type InvalidInputShapeError struct {
	Type string
}

func (e *InvalidInputShapeError) Error() string {
	return fmt.Sprintf("expected chat log to be a sequence of records, got %s", e.Type)
}

// Is makes errors.Is(err, ErrInvalidInputShape) hold.
func (e *InvalidInputShapeError) Is(target error) bool {
	return target == ErrInvalidInputShape
}

// MissingFieldError identifies the record that lacks the id field.
// Snapshot is the record rendered as JSON so it can be found in the source export.
type MissingFieldError struct {
	Field    string
	Index    int
	Snapshot string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d missing id field %q: %s", e.Index, e.Field, e.Snapshot)
}

// Is makes errors.Is(err, ErrMissingField) hold.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}
