// Package tiff decodes the TIFF structure that carries EXIF metadata:
// the 8-byte header, the chain of image file directories (IFDs) and the
// typed values of their entries.
//
// All offsets are relative to the first byte of the TIFF header, which is
// also offset 0 of the SafeReader passed in.
package tiff

import (
	"fmt"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

const (
	headerSize = 8
	tiffMagic  = 42
)

// Header is the decoded TIFF header.
type Header struct {
	Order binary.Endianness
	IFD0  uint32
}

// ParseHeader reads the byte-order marker, the magic number and the
// offset of IFD0.
func ParseHeader(sr *binary.SafeReader) (Header, error) {
	marker, err := sr.Bytes(0, 2, "TIFF byte order marker")
	if err != nil {
		return Header{}, err
	}

	var h Header
	switch string(marker) {
	case "II":
		h.Order = binary.LittleEndian
	case "MM":
		h.Order = binary.BigEndian
	default:
		return Header{}, &types.UnsupportedContainerError{
			Path:   sr.Path(),
			Reason: fmt.Sprintf("unknown TIFF byte order marker %q", marker),
		}
	}

	magic, err := binary.ReadEndian[uint16](sr, 2, "TIFF magic", h.Order)
	if err != nil {
		return Header{}, err
	}
	if magic != tiffMagic {
		return Header{}, &types.InvalidMagicError{Path: sr.Path(), Magic: magic}
	}

	h.IFD0, err = binary.ReadEndian[uint32](sr, 4, "IFD0 offset", h.Order)
	if err != nil {
		return Header{}, err
	}
	return h, nil
}

// locator implements registry.Locator for bare TIFF and TIFF-based raw
// files: the TIFF block is the whole file.
type locator struct{}

func (locator) Locate(sr *binary.SafeReader) (int64, int64, error) {
	if sr.Size() < headerSize {
		return 0, 0, &types.TruncatedError{
			Path:   sr.Path(),
			What:   "TIFF header",
			Length: headerSize,
			Size:   sr.Size(),
		}
	}
	return 0, sr.Size(), nil
}

func init() {
	registry.Register(types.FormatTIFF, locator{})
	registry.Register(types.FormatRawTIFF, locator{})
}
