// Package types provides the shared types of the Vorbis comment codec:
// known field categories, notifications and error types.
package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for the two fatal failure kinds. Use errors.Is to test
// for them; the concrete error types below carry the details.
var (
	// ErrInvalidFormat reports a structural mismatch such as a bad signature.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrTruncated reports that the data ended before a value was complete.
	ErrTruncated = errors.New("data truncated")
)

// TruncatedError is returned when a read runs past the end of the segment.
//
// Got is the number of bytes that were available and have been consumed.
type TruncatedError struct {
	Path   string
	What   string
	Offset int64
	Wanted int64
	Got    int64
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("%s: truncated %s at offset %d: wanted %d bytes, got %d",
		e.Path, e.What, e.Offset, e.Wanted, e.Got)
}

// Is reports whether target is ErrTruncated.
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// InvalidFormatError is returned when the block structure is invalid.
type InvalidFormatError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s: invalid format at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Is reports whether target is ErrInvalidFormat.
func (e *InvalidFormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// FieldDecodeError reports a single field that could not be decoded.
// It is never returned from Parse; the field is dropped and a notification
// recorded instead.
type FieldDecodeError struct {
	Reason string
	Index  int
}

func (e *FieldDecodeError) Error() string {
	return fmt.Sprintf("field %d: %s", e.Index, e.Reason)
}

// FieldEncodeError reports a single field that could not be encoded.
type FieldEncodeError struct {
	ID     string
	Reason string
}

func (e *FieldEncodeError) Error() string {
	return fmt.Sprintf("field %q: %s", e.ID, e.Reason)
}

// ValueConversionError reports a value that has no textual form.
type ValueConversionError struct {
	What   string
	Reason string
}

func (e *ValueConversionError) Error() string {
	return fmt.Sprintf("can not convert %s: %s", e.What, e.Reason)
}
