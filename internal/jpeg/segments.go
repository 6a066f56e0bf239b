// Package jpeg locates the EXIF payload inside a JPEG file.
//
// Only the marker-segment framing is understood. Entropy-coded image data
// is never touched: the scan stops at the first start-of-scan marker.
package jpeg

import (
	"bytes"
	"fmt"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

const (
	markerPrefix = 0xFF
	markerSOI    = 0xD8
	markerEOI    = 0xD9
	markerSOS    = 0xDA
	markerAPP1   = 0xE1
	markerTEM    = 0x01
	markerRST0   = 0xD0
	markerRST7   = 0xD7
)

// exifHeader prefixes the TIFF block inside an APP1 payload.
var exifHeader = []byte("Exif\x00\x00")

// FindExif scans the JPEG marker segments and returns the offset and
// length of the TIFF block carried by the first APP1 segment whose
// payload begins with "Exif\0\0".
//
// Segment layout: 0xFF, marker byte, 2-byte big-endian length (which
// counts itself), payload.
func FindExif(sr *binary.SafeReader) (offset, length int64, err error) {
	soi, err := binary.ReadBE[uint16](sr, 0, "JPEG SOI marker")
	if err != nil || soi != markerPrefix<<8|markerSOI {
		return 0, 0, &types.UnsupportedContainerError{
			Path:   sr.Path(),
			Reason: "missing JPEG start-of-image marker",
		}
	}

	r := binary.NewReader(sr, 2, binary.BigEndian)
	for r.Offset() < sr.Size() {
		start := r.Offset()
		prefix, err := binary.ReadValue[uint8](r, "marker prefix")
		if err != nil {
			return 0, 0, err
		}
		if prefix != markerPrefix {
			return 0, 0, &types.UnsupportedContainerError{
				Path:   sr.Path(),
				Reason: fmt.Sprintf("expected marker at offset %d, found 0x%02X", start, prefix),
			}
		}

		marker, err := binary.ReadValue[uint8](r, "marker")
		if err != nil {
			return 0, 0, err
		}

		switch {
		case marker == markerPrefix:
			// Fill byte; the 0xFF just read starts the real marker.
			r.Skip(-1)
			continue
		case marker == markerSOI || marker == markerTEM || (marker >= markerRST0 && marker <= markerRST7):
			continue
		case marker == markerSOS || marker == markerEOI:
			return 0, 0, noExif(sr.Path())
		}

		segLen, err := binary.ReadValue[uint16](r, "segment length")
		if err != nil {
			return 0, 0, err
		}
		if segLen < 2 {
			return 0, 0, &types.UnsupportedContainerError{
				Path:   sr.Path(),
				Reason: fmt.Sprintf("invalid segment length %d at offset %d", segLen, start+2),
			}
		}

		payload := r.Offset()
		payloadLen := int64(segLen) - 2
		if payload+payloadLen > sr.Size() {
			return 0, 0, &types.TruncatedError{
				Path:   sr.Path(),
				What:   fmt.Sprintf("segment 0xFF%02X", marker),
				Offset: payload,
				Length: int(payloadLen),
				Size:   sr.Size(),
			}
		}

		if marker == markerAPP1 && payloadLen >= int64(len(exifHeader)) {
			hdr, err := r.ReadBytes(len(exifHeader), "APP1 identifier")
			if err != nil {
				return 0, 0, err
			}
			if bytes.Equal(hdr, exifHeader) {
				return r.Offset(), payloadLen - int64(len(exifHeader)), nil
			}
			r.Skip(-int64(len(exifHeader)))
		}

		r.Skip(payloadLen)
	}

	return 0, 0, noExif(sr.Path())
}

func noExif(path string) error {
	return &types.UnsupportedContainerError{
		Path:   path,
		Reason: "no Exif APP1 segment",
	}
}

// locator implements registry.Locator for JPEG files.
type locator struct{}

func (locator) Locate(sr *binary.SafeReader) (int64, int64, error) {
	return FindExif(sr)
}

func init() {
	registry.Register(types.FormatJPEG, locator{})
}
