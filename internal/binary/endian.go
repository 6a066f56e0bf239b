package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// BigEndian uses big-endian byte order.
	// Used by: JPEG marker segments, TIFF "MM" files (Nikon, older Canon).
	BigEndian Endianness = iota

	// LittleEndian uses little-endian byte order.
	// Used by: TIFF "II" files (most Canon, Sony, phones).
	LittleEndian
)

func (e Endianness) String() string {
	if e == LittleEndian {
		return "little-endian"
	}
	return "big-endian"
}

// ByteOrder returns the encoding/binary equivalent of e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Uint16 decodes the first two bytes of b.
func (e Endianness) Uint16(b []byte) uint16 {
	return e.ByteOrder().Uint16(b)
}

// Uint32 decodes the first four bytes of b.
func (e Endianness) Uint32(b []byte) uint32 {
	return e.ByteOrder().Uint32(b)
}

// Uint64 decodes the first eight bytes of b.
func (e Endianness) Uint64(b []byte) uint64 {
	return e.ByteOrder().Uint64(b)
}

// ReadBE reads a numeric value of type T at the given offset using big-endian byte order.
// JPEG framing is always big-endian.
//
// Example:
//
//	segLen, err := binary.ReadBE[uint16](sr, offset, "APP1 length")
func ReadBE[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	return ReadEndian[T](sr, off, what, BigEndian)
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// TIFF structures use the order declared by their header.
//
// Example:
//
//	next, err := binary.ReadEndian[uint32](sr, offset, "next IFD offset", order)
func ReadEndian[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}
	return decode[T](buf, endian), nil
}

// sizeOf returns the encoded size of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// decode converts buf to T. buf must hold sizeOf[T]() bytes.
func decode[T uint8 | uint16 | uint32 | uint64](buf []byte, endian Endianness) T {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return T(buf[0])
	case uint16:
		return T(endian.Uint16(buf))
	case uint32:
		return T(endian.Uint32(buf))
	default:
		return T(endian.Uint64(buf))
	}
}
