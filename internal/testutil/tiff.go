// Package testutil builds TIFF and JPEG byte fixtures for tests.
package testutil

import (
	"encoding/binary"
	"math"
)

// Entry describes one IFD entry to be written by BuildTIFF.
type Entry struct {
	Tag   uint16
	Type  uint16
	Count uint32

	encode func(order binary.ByteOrder) []byte
	sub    *IFD
	raw    *uint32
}

// IFD is an image file directory fixture.
type IFD struct {
	Entries []Entry
	Next    *IFD
}

// Byte returns a BYTE entry.
func Byte(tag uint16, vals ...uint8) Entry {
	return Entry{Tag: tag, Type: 1, Count: uint32(len(vals)), encode: func(binary.ByteOrder) []byte {
		return append([]byte(nil), vals...)
	}}
}

// ASCII returns an ASCII entry holding s plus a NUL terminator.
func ASCII(tag uint16, s string) Entry {
	return RawBytes(tag, 2, append([]byte(s), 0))
}

// RawBytes returns an entry of a 1-byte type holding b exactly.
func RawBytes(tag, typ uint16, b []byte) Entry {
	return Entry{Tag: tag, Type: typ, Count: uint32(len(b)), encode: func(binary.ByteOrder) []byte {
		return append([]byte(nil), b...)
	}}
}

// Undefined returns an UNDEFINED entry.
func Undefined(tag uint16, b []byte) Entry {
	return RawBytes(tag, 7, b)
}

// Short returns a SHORT entry.
func Short(tag uint16, vals ...uint16) Entry {
	return Entry{Tag: tag, Type: 3, Count: uint32(len(vals)), encode: func(order binary.ByteOrder) []byte {
		buf := make([]byte, 2*len(vals))
		for i, v := range vals {
			order.PutUint16(buf[2*i:], v)
		}
		return buf
	}}
}

// SShort returns an SSHORT entry.
func SShort(tag uint16, vals ...int16) Entry {
	e := Short(tag, convert[int16, uint16](vals)...)
	e.Type = 8
	return e
}

// Long returns a LONG entry.
func Long(tag uint16, vals ...uint32) Entry {
	return Entry{Tag: tag, Type: 4, Count: uint32(len(vals)), encode: func(order binary.ByteOrder) []byte {
		buf := make([]byte, 4*len(vals))
		for i, v := range vals {
			order.PutUint32(buf[4*i:], v)
		}
		return buf
	}}
}

// SLong returns an SLONG entry.
func SLong(tag uint16, vals ...int32) Entry {
	e := Long(tag, convert[int32, uint32](vals)...)
	e.Type = 9
	return e
}

// Rational returns a RATIONAL entry from numerator/denominator pairs.
func Rational(tag uint16, pairs ...uint32) Entry {
	e := Long(tag, pairs...)
	e.Type = 5
	e.Count = uint32(len(pairs) / 2)
	return e
}

// SRational returns an SRATIONAL entry from numerator/denominator pairs.
func SRational(tag uint16, pairs ...int32) Entry {
	e := Rational(tag, convert[int32, uint32](pairs)...)
	e.Type = 10
	return e
}

// Float returns a FLOAT entry.
func Float(tag uint16, vals ...float32) Entry {
	bits := make([]uint32, len(vals))
	for i, v := range vals {
		bits[i] = math.Float32bits(v)
	}
	e := Long(tag, bits...)
	e.Type = 11
	return e
}

// Double returns a DOUBLE entry.
func Double(tag uint16, vals ...float64) Entry {
	return Entry{Tag: tag, Type: 12, Count: uint32(len(vals)), encode: func(order binary.ByteOrder) []byte {
		buf := make([]byte, 8*len(vals))
		for i, v := range vals {
			order.PutUint64(buf[8*i:], math.Float64bits(v))
		}
		return buf
	}}
}

// Pointer returns a LONG entry whose value is the offset of sub.
func Pointer(tag uint16, sub *IFD) Entry {
	return Entry{Tag: tag, Type: 4, Count: 1, sub: sub}
}

// Raw returns an entry whose value_or_offset field is written verbatim.
func Raw(tag, typ uint16, count, valueOrOffset uint32) Entry {
	return Entry{Tag: tag, Type: typ, Count: count, raw: &valueOrOffset}
}

// BuildTIFF lays out ifd0 (and everything reachable from it) after an
// 8-byte TIFF header in the given byte order.
func BuildTIFF(order binary.ByteOrder, ifd0 *IFD) []byte {
	b := &builder{order: order}
	if order == binary.LittleEndian {
		b.buf = append(b.buf, 'I', 'I')
	} else {
		b.buf = append(b.buf, 'M', 'M')
	}
	b.buf = append(b.buf, make([]byte, 6)...)
	order.PutUint16(b.buf[2:], 42)
	if ifd0 != nil {
		off := b.layout(ifd0)
		order.PutUint32(b.buf[4:], off)
	}
	return b.buf
}

type builder struct {
	order binary.ByteOrder
	buf   []byte
}

// layout appends ifd at the end of the buffer, followed by its external
// values, sub-directories and linked directory. Returns its offset.
func (b *builder) layout(ifd *IFD) uint32 {
	if len(b.buf)%2 == 1 {
		b.buf = append(b.buf, 0)
	}
	start := len(b.buf)
	b.buf = append(b.buf, make([]byte, 2+12*len(ifd.Entries)+4)...)
	b.order.PutUint16(b.buf[start:], uint16(len(ifd.Entries)))

	for i, e := range ifd.Entries {
		pos := start + 2 + 12*i
		b.order.PutUint16(b.buf[pos:], e.Tag)
		b.order.PutUint16(b.buf[pos+2:], e.Type)
		b.order.PutUint32(b.buf[pos+4:], e.Count)

		switch {
		case e.raw != nil:
			b.order.PutUint32(b.buf[pos+8:], *e.raw)
		case e.sub != nil:
			off := b.layout(e.sub)
			b.order.PutUint32(b.buf[pos+8:], off)
		default:
			data := e.encode(b.order)
			if len(data) <= 4 {
				copy(b.buf[pos+8:pos+12], data)
				continue
			}
			if len(b.buf)%2 == 1 {
				b.buf = append(b.buf, 0)
			}
			off := len(b.buf)
			b.buf = append(b.buf, data...)
			b.order.PutUint32(b.buf[pos+8:], uint32(off))
		}
	}

	if ifd.Next != nil {
		next := b.layout(ifd.Next)
		b.order.PutUint32(b.buf[start+2+12*len(ifd.Entries):], next)
	}
	return uint32(start)
}

// Segment returns a JPEG marker segment with the given payload.
func Segment(marker byte, payload []byte) []byte {
	seg := []byte{0xFF, marker}
	seg = binary.BigEndian.AppendUint16(seg, uint16(len(payload)+2))
	return append(seg, payload...)
}

// WrapJPEG embeds a TIFF block in a minimal JPEG: SOI, any extra
// segments, the Exif APP1 segment, an empty SOS and EOI.
func WrapJPEG(tiff []byte, before ...[]byte) []byte {
	out := []byte{0xFF, 0xD8}
	for _, seg := range before {
		out = append(out, seg...)
	}
	out = append(out, Segment(0xE1, append([]byte("Exif\x00\x00"), tiff...))...)
	out = append(out, Segment(0xDA, []byte{0x00})...)
	return append(out, 0xFF, 0xD9)
}

func convert[From int16 | int32, To uint16 | uint32](in []From) []To {
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = To(v)
	}
	return out
}
