package exifmeta

import (
	"errors"
	"strings"
	"testing"
)

func TestTruncatedError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *TruncatedError
		contains []string
	}{
		{
			name: "offset beyond data",
			err: &TruncatedError{
				Path:   "photo.jpg",
				Offset: 1000,
				Length: 2,
				Size:   500,
				What:   "IFD entry count",
			},
			contains: []string{"photo.jpg", "offset 1000 out of bounds", "size: 500", "IFD entry count"},
		},
		{
			name: "read would exceed data",
			err: &TruncatedError{
				Path:   "scan.tif",
				Offset: 100,
				Length: 50,
				Size:   120,
				What:   "value of tag 0x829A",
			},
			contains: []string{"scan.tif", "read of 50 bytes", "offset 100", "exceed size 120", "0x829A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(msg, substr) {
					t.Errorf("error message %q should contain %q", msg, substr)
				}
			}
			if !errors.Is(tt.err, ErrTruncated) {
				t.Error("should match ErrTruncated")
			}
		})
	}
}

func TestUnsupportedContainerError_Error(t *testing.T) {
	err := &UnsupportedContainerError{
		Path:   "image.png",
		Reason: "unrecognized signature 89 50 4E 47",
	}

	msg := err.Error()
	if !strings.Contains(msg, "image.png") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "89 50 4E 47") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
	if !strings.Contains(msg, "unsupported container") {
		t.Errorf("error should contain 'unsupported container', got: %s", msg)
	}
}

func TestMalformedDirectoryError_Error(t *testing.T) {
	err := &MalformedDirectoryError{
		Path:   "broken.tif",
		Offset: 256,
		Reason: "entry count 40000 exceeds limit 10000",
	}

	msg := err.Error()
	if !strings.Contains(msg, "broken.tif") {
		t.Errorf("error should contain path, got: %s", msg)
	}
	if !strings.Contains(msg, "offset 256") {
		t.Errorf("error should contain offset, got: %s", msg)
	}
	if !strings.Contains(msg, "exceeds limit") {
		t.Errorf("error should contain reason, got: %s", msg)
	}
	if !errors.Is(err, ErrMalformedDirectory) {
		t.Error("should match ErrMalformedDirectory")
	}
}

func TestInvalidMagicError_Error(t *testing.T) {
	err := &InvalidMagicError{Path: "odd.tif", Magic: 43}

	msg := err.Error()
	if !strings.Contains(msg, "odd.tif") || !strings.Contains(msg, "43") {
		t.Errorf("unexpected message: %s", msg)
	}
	if !errors.Is(err, ErrInvalidMagic) {
		t.Error("should match ErrInvalidMagic")
	}
	if errors.Is(err, ErrTruncated) {
		t.Error("should not match ErrTruncated")
	}
}
