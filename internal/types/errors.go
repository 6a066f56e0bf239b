package types

import (
	"errors"
	"fmt"
)

// Sentinel errors for each failure kind. The typed errors below match
// them through errors.Is.
var (
	ErrUnsupportedContainer = errors.New("unsupported container")
	ErrInvalidMagic         = errors.New("invalid TIFF magic")
	ErrTruncated            = errors.New("truncated data")
	ErrMalformedDirectory   = errors.New("malformed directory")
	ErrUnsupportedFieldType = errors.New("unsupported field type")
)

// UnsupportedContainerError is returned when no JPEG or TIFF signature is found.
type UnsupportedContainerError struct {
	Path   string
	Reason string
}

func (e *UnsupportedContainerError) Error() string {
	return fmt.Sprintf("%s: unsupported container: %s", e.Path, e.Reason)
}

// Is reports whether target is ErrUnsupportedContainer.
func (e *UnsupportedContainerError) Is(target error) bool {
	return target == ErrUnsupportedContainer
}

// InvalidMagicError is returned when the TIFF header magic is not 42.
type InvalidMagicError struct {
	Path  string
	Magic uint16
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf("%s: invalid TIFF magic %d (want 42)", e.Path, e.Magic)
}

// Is reports whether target is ErrInvalidMagic.
func (e *InvalidMagicError) Is(target error) bool {
	return target == ErrInvalidMagic
}

// TruncatedError is returned when a length or offset points beyond the
// available bytes.
type TruncatedError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *TruncatedError) Error() string {
	if e.Offset < 0 || e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// Is reports whether target is ErrTruncated.
func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// MalformedDirectoryError is returned when the IFD structure cannot be
// walked safely: recursion too deep, a revisited offset, or an absurd
// entry count.
type MalformedDirectoryError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *MalformedDirectoryError) Error() string {
	return fmt.Sprintf("%s: malformed directory at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// Is reports whether target is ErrMalformedDirectory.
func (e *MalformedDirectoryError) Is(target error) bool {
	return target == ErrMalformedDirectory
}

// UnsupportedFieldTypeError is attached to a single field whose data type
// or count cannot be decoded.
type UnsupportedFieldTypeError struct {
	Tag   Tag
	Type  DataType
	Count uint32
}

func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("tag 0x%04x: unsupported field type %d (count %d)", uint16(e.Tag), uint16(e.Type), e.Count)
}

// Is reports whether target is ErrUnsupportedFieldType.
func (e *UnsupportedFieldTypeError) Is(target error) bool {
	return target == ErrUnsupportedFieldType
}

// Warning represents a non-fatal issue encountered during decoding.
//
// Warnings are produced for fields that could not be decoded and for
// directory links that were ignored. They never stop the walk.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "field", "directory"

	// Warning message
	Message string

	// Offset within the TIFF block (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
