package types

import (
	"path/filepath"
	"strings"
)

// Format represents the detected image container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported container.
	FormatUnknown Format = iota // Unknown
	// FormatJPEG represents a JPEG file carrying EXIF in an APP1 segment.
	FormatJPEG // JPEG
	// FormatTIFF represents a bare TIFF file.
	FormatTIFF // TIFF
	// FormatRawTIFF represents a TIFF-based camera raw file (CR2, NEF, ARW, DNG...).
	FormatRawTIFF // RAW-TIFF
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatJPEG:
		return "JPEG"
	case FormatTIFF:
		return "TIFF"
	case FormatRawTIFF:
		return "RAW-TIFF"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatJPEG:
		return []string{".jpg", ".jpeg", ".jpe", ".jfif"}
	case FormatTIFF:
		return []string{".tif", ".tiff"}
	case FormatRawTIFF:
		return rawExtensions
	case FormatUnknown:
		return nil
	default:
		return nil
	}
}

// rawExtensions lists camera raw formats built on the TIFF container.
var rawExtensions = []string{
	".3fr", ".arw", ".cr2", ".dng", ".erf", ".kdc", ".mef", ".mos",
	".nef", ".nrw", ".orf", ".pef", ".raw", ".rw2", ".sr2", ".srf", ".srw",
}

// IsRawExtension reports whether path carries a TIFF-based raw extension.
func IsRawExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FormatRawTIFF.Extensions() {
		if e == ext {
			return true
		}
	}
	return false
}
