package container

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	_ "github.com/simonhull/exifmeta/internal/jpeg" // Register JPEG locator
	"github.com/simonhull/exifmeta/internal/testutil"
	_ "github.com/simonhull/exifmeta/internal/tiff" // Register TIFF locators
	"github.com/simonhull/exifmeta/internal/types"
)

func minimalTIFF(order binary.ByteOrder) []byte {
	return testutil.BuildTIFF(order, &testutil.IFD{Entries: []testutil.Entry{
		testutil.Short(0x0112, 1),
	}})
}

func TestDetectFormat(t *testing.T) {
	cr2 := minimalTIFF(binary.LittleEndian)
	cr2 = append(cr2[:8:8], append([]byte("CR\x02\x00"), cr2[8:]...)...)

	tests := []struct {
		name string
		path string
		data []byte
		want types.Format
	}{
		{"jpeg", "photo.jpg", testutil.WrapJPEG(minimalTIFF(binary.BigEndian)), types.FormatJPEG},
		{"tiff little-endian", "scan.tif", minimalTIFF(binary.LittleEndian), types.FormatTIFF},
		{"tiff big-endian", "scan.tiff", minimalTIFF(binary.BigEndian), types.FormatTIFF},
		{"raw by extension", "DSC_0001.NEF", minimalTIFF(binary.BigEndian), types.FormatRawTIFF},
		{"raw by CR marker", "IMG_0001", cr2, types.FormatRawTIFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), tt.path)
			if err != nil {
				t.Fatalf("DetectFormat() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectFormat_Unsupported(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"too small", []byte{0xFF}},
		{"png", []byte("\x89PNG\r\n\x1a\n")},
		{"text", []byte("not an image at all")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectFormat(bytes.NewReader(tt.data), int64(len(tt.data)), "test.bin")
			if !errors.Is(err, types.ErrUnsupportedContainer) {
				t.Errorf("expected ErrUnsupportedContainer, got %v", err)
			}
		})
	}
}

func TestSniff_JPEG(t *testing.T) {
	tiff := minimalTIFF(binary.LittleEndian)
	data := testutil.WrapJPEG(tiff, testutil.Segment(0xE0, []byte("JFIF\x00\x01\x02")))

	c, err := Sniff(bytes.NewReader(data), int64(len(data)), "test.jpg")
	if err != nil {
		t.Fatalf("Sniff failed: %v", err)
	}

	if c.Format != types.FormatJPEG {
		t.Errorf("expected JPEG, got %v", c.Format)
	}
	if c.Length != int64(len(tiff)) {
		t.Errorf("expected TIFF length %d, got %d", len(tiff), c.Length)
	}

	got, err := c.TIFF.Bytes(0, len(tiff), "TIFF block")
	if err != nil {
		t.Fatalf("reading TIFF block: %v", err)
	}
	if !bytes.Equal(got, tiff) {
		t.Error("TIFF view does not match embedded block")
	}
}

func TestSniff_TIFF(t *testing.T) {
	data := minimalTIFF(binary.BigEndian)

	c, err := Sniff(bytes.NewReader(data), int64(len(data)), "test.tif")
	if err != nil {
		t.Fatalf("Sniff failed: %v", err)
	}
	if c.Offset != 0 || c.Length != int64(len(data)) {
		t.Errorf("expected whole file, got offset %d length %d", c.Offset, c.Length)
	}
}
