package types

import "fmt"

// IFD identifies the directory a field was read from.
type IFD int

const (
	// IFDPrimary is IFD0, the main image directory.
	IFDPrimary IFD = iota
	// IFDThumbnail is IFD1, linked from IFD0.
	IFDThumbnail
	// IFDExif is the Exif sub-IFD (pointer tag 0x8769).
	IFDExif
	// IFDGPS is the GPS sub-IFD (pointer tag 0x8825).
	IFDGPS
	// IFDInterop is the Interoperability sub-IFD (pointer tag 0xA005).
	IFDInterop
)

func (d IFD) String() string {
	switch d {
	case IFDPrimary:
		return "IFD0"
	case IFDThumbnail:
		return "IFD1"
	case IFDExif:
		return "Exif"
	case IFDGPS:
		return "GPS"
	case IFDInterop:
		return "Interop"
	default:
		return fmt.Sprintf("IFD(%d)", int(d))
	}
}

// Entry is one raw 12-byte IFD record.
type Entry struct {
	Tag   Tag
	Type  DataType
	Count uint32

	// Raw holds the value_or_offset bytes exactly as stored.
	Raw [4]byte

	// ValueOffset is Raw read as a uint32 in the container's byte order.
	ValueOffset uint32
}

// ByteSize returns count * element size. ok is false for unknown types
// or when the product does not fit in 32 bits.
func (e Entry) ByteSize() (size uint32, ok bool) {
	elem := e.Type.Size()
	if elem == 0 {
		return 0, false
	}
	total := uint64(e.Count) * uint64(elem)
	if total > 0xFFFFFFFF {
		return 0, false
	}
	return uint32(total), true
}

// Inline reports whether the value fits in the entry's 4-byte slot.
func (e Entry) Inline() bool {
	size, ok := e.ByteSize()
	return ok && size <= 4
}

// Field is one decoded metadata field.
type Field struct {
	Value Value
	IFD   IFD
	Count uint32
	Tag   Tag
	Type  DataType
}

// Name returns the field's tag name, resolved against its directory.
func (f Field) Name() string {
	return f.Tag.Name(f.IFD)
}

// Err returns the decode error attached to the field, or nil.
func (f Field) Err() error {
	if v, ok := f.Value.(Invalid); ok {
		if v.Err == nil {
			return ErrUnsupportedFieldType
		}
		return v.Err
	}
	return nil
}

func (f Field) String() string {
	return fmt.Sprintf("%s.%s (%s[%d])", f.IFD, f.Name(), f.Type, f.Count)
}
