package exifmeta

import (
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/container"
	"github.com/simonhull/exifmeta/internal/types"
)

// Format identifies the container the metadata was found in.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatJPEG    = types.FormatJPEG
	FormatTIFF    = types.FormatTIFF
	FormatRawTIFF = types.FormatRawTIFF
)

// ByteOrder is the byte order declared by a TIFF header.
type ByteOrder = binary.Endianness

// Byte orders.
const (
	BigEndian    = binary.BigEndian
	LittleEndian = binary.LittleEndian
)

// DetectFormat reports the container format of r by its signature.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return container.DetectFormat(r, size, path)
}
