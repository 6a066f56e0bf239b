// Package container detects the image container around the EXIF data and
// locates the embedded TIFF block.
package container

import (
	"fmt"
	"io"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/registry"
	"github.com/simonhull/exifmeta/internal/types"
)

// Container is a sniffed view over a file: its format and the location of
// the TIFF block that holds the metadata.
type Container struct {
	// TIFF reads the TIFF block; offset 0 is the byte-order marker.
	TIFF   *binary.SafeReader
	Format types.Format
	Offset int64
	Length int64
}

// DetectFormat determines the container format by examining magic bytes.
//
// JPEG files start with FFD8. TIFF files start with "II*\0" or "MM\0*";
// a TIFF is reported as raw when bytes 8-9 hold Canon's "CR" marker or the
// path has a TIFF-based raw extension.
func DetectFormat(r io.ReaderAt, size int64, path string) (types.Format, error) {
	if size < 4 {
		return types.FormatUnknown, &types.UnsupportedContainerError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	magic, err := sr.Bytes(0, 4, "file magic bytes")
	if err != nil {
		return types.FormatUnknown, &types.UnsupportedContainerError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	if magic[0] == 0xFF && magic[1] == 0xD8 {
		return types.FormatJPEG, nil
	}

	if string(magic) == "II*\x00" || string(magic) == "MM\x00*" {
		if size >= 10 {
			if cr, err := sr.Bytes(8, 2, "raw marker"); err == nil && string(cr) == "CR" {
				return types.FormatRawTIFF, nil
			}
		}
		if types.IsRawExtension(path) {
			return types.FormatRawTIFF, nil
		}
		return types.FormatTIFF, nil
	}

	return types.FormatUnknown, &types.UnsupportedContainerError{
		Path:   path,
		Reason: fmt.Sprintf("unrecognized signature % X", magic),
	}
}

// Sniff detects the container format and locates its TIFF block.
func Sniff(r io.ReaderAt, size int64, path string) (*Container, error) {
	format, err := DetectFormat(r, size, path)
	if err != nil {
		return nil, err
	}

	locator := registry.Get(format)
	if locator == nil {
		return nil, &types.UnsupportedContainerError{
			Path:   path,
			Reason: fmt.Sprintf("no locator available for format %s", format),
		}
	}

	sr := binary.NewSafeReader(r, size, path)
	offset, length, err := locator.Locate(sr)
	if err != nil {
		return nil, err
	}

	tiff, err := sr.Section(offset, length, "TIFF block")
	if err != nil {
		return nil, err
	}

	return &Container{
		TIFF:   tiff,
		Format: format,
		Offset: offset,
		Length: length,
	}, nil
}
