package fix

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by field and group lookups.
var (
	ErrFieldNotFound       = errors.New("field not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrIncorrectDataFormat = errors.New("incorrect data format")
)

// FieldNotFoundError reports a missing tag.
type FieldNotFoundError struct {
	Tag int
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("field %d not found", e.Tag)
}

// Unwrap allows errors.Is(err, ErrFieldNotFound).
func (e *FieldNotFoundError) Unwrap() error {
	return ErrFieldNotFound
}

// GroupNotFoundError reports a missing group occurrence.
type GroupNotFoundError struct {
	Occurrence int
	Tag        int
}

func (e *GroupNotFoundError) Error() string {
	return fmt.Sprintf("group %d occurrence %d not found", e.Tag, e.Occurrence)
}

// Unwrap allows errors.Is(err, ErrGroupNotFound).
func (e *GroupNotFoundError) Unwrap() error {
	return ErrGroupNotFound
}

// ConversionError reports a field whose text cannot be read as the requested type.
type ConversionError struct {
	Tag   int
	Value string
	Type  string
	Err   error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("field %d: cannot convert %q to %s: %v", e.Tag, e.Value, e.Type, e.Err)
	}
	return fmt.Sprintf("field %d: cannot convert %q to %s", e.Tag, e.Value, e.Type)
}

// Unwrap allows errors.Is(err, ErrIncorrectDataFormat).
func (e *ConversionError) Unwrap() error {
	return ErrIncorrectDataFormat
}
