package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// UnsupportedContainerError is returned when a file is neither a JPEG
// carrying an Exif APP1 segment nor a TIFF.
type UnsupportedContainerError = types.UnsupportedContainerError

// InvalidMagicError is returned when the TIFF header magic is not 42.
type InvalidMagicError = types.InvalidMagicError

// TruncatedError is returned when an offset or length points past the
// end of the data.
type TruncatedError = types.TruncatedError

// MalformedDirectoryError is returned when the directory structure cannot
// be walked safely.
type MalformedDirectoryError = types.MalformedDirectoryError

// UnsupportedFieldTypeError is attached to a field whose data type is
// unknown.
type UnsupportedFieldTypeError = types.UnsupportedFieldTypeError

// Warning describes a non-fatal issue found while decoding.
type Warning = types.Warning

// Sentinel errors matched by the typed errors through errors.Is.
var (
	ErrUnsupportedContainer = types.ErrUnsupportedContainer
	ErrInvalidMagic         = types.ErrInvalidMagic
	ErrTruncated            = types.ErrTruncated
	ErrMalformedDirectory   = types.ErrMalformedDirectory
	ErrUnsupportedFieldType = types.ErrUnsupportedFieldType
)
