package matching

import (
	"errors"
	"fmt"

	"github.com/qfu/fixmatch/pkg/fix"
)

// Configuration errors. They describe a defect in the criteria, never a
// property of the candidate message.
var (
	ErrTypeAlreadyDefined  = errors.New("message type already defined")
	ErrUnsupportedValue    = errors.New("unsupported value type")
	ErrInvalidGroupAddress = errors.New("invalid group address")
)

// TypeAlreadyDefinedError is recorded when OfType is called more than once.
type TypeAlreadyDefinedError struct {
	Existing  fix.MsgType
	Attempted fix.MsgType
}

func (e *TypeAlreadyDefinedError) Error() string {
	return fmt.Sprintf("message type already defined as %q, cannot set %q", e.Existing, e.Attempted)
}

// Unwrap allows errors.Is(err, ErrTypeAlreadyDefined).
func (e *TypeAlreadyDefinedError) Unwrap() error {
	return ErrTypeAlreadyDefined
}

// UnsupportedValueError is returned when an expected value has no comparison.
type UnsupportedValueError struct {
	Tag   int
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unable to process field %d with value type %T", e.Tag, e.Value)
}

// Unwrap allows errors.Is(err, ErrUnsupportedValue).
func (e *UnsupportedValueError) Unwrap() error {
	return ErrUnsupportedValue
}
