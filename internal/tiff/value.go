package tiff

import (
	"bytes"
	"fmt"
	"math"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// DecodeValue decodes the value of e. Values of up to 4 bytes come from
// the entry itself; larger ones are read at e.ValueOffset.
//
// Errors are *types.UnsupportedFieldTypeError for unknown types and
// *types.TruncatedError when the value lies outside the TIFF block.
func DecodeValue(sr *binary.SafeReader, order binary.Endianness, e types.Entry) (types.Value, error) {
	size, ok := e.ByteSize()
	if !ok {
		return nil, &types.UnsupportedFieldTypeError{Tag: e.Tag, Type: e.Type, Count: e.Count}
	}

	var raw []byte
	if size <= 4 {
		raw = bytes.Clone(e.Raw[:size])
	} else {
		var err error
		raw, err = sr.Bytes(int64(e.ValueOffset), int(size), fmt.Sprintf("value of tag 0x%04X", uint16(e.Tag)))
		if err != nil {
			return nil, err
		}
	}

	return decodeRaw(e.Type, int(e.Count), raw, order), nil
}

// decodeRaw converts raw, which holds exactly n elements of type t.
func decodeRaw(t types.DataType, n int, raw []byte, order binary.Endianness) types.Value {
	switch t {
	case types.TypeByte:
		return types.Bytes(raw)
	case types.TypeASCII:
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		return types.ASCII(raw)
	case types.TypeUndefined:
		return types.Undefined(raw)
	case types.TypeSByte:
		v := make(types.SBytes, n)
		for i := range v {
			v[i] = int8(raw[i])
		}
		return v
	case types.TypeShort:
		v := make(types.Shorts, n)
		for i := range v {
			v[i] = order.Uint16(raw[2*i:])
		}
		return v
	case types.TypeSShort:
		v := make(types.SShorts, n)
		for i := range v {
			v[i] = int16(order.Uint16(raw[2*i:]))
		}
		return v
	case types.TypeLong:
		v := make(types.Longs, n)
		for i := range v {
			v[i] = order.Uint32(raw[4*i:])
		}
		return v
	case types.TypeSLong:
		v := make(types.SLongs, n)
		for i := range v {
			v[i] = int32(order.Uint32(raw[4*i:]))
		}
		return v
	case types.TypeRational:
		v := make(types.Rationals, n)
		for i := range v {
			v[i] = types.Rational{Num: order.Uint32(raw[8*i:]), Den: order.Uint32(raw[8*i+4:])}
		}
		return v
	case types.TypeSRational:
		v := make(types.SRationals, n)
		for i := range v {
			v[i] = types.SRational{Num: int32(order.Uint32(raw[8*i:])), Den: int32(order.Uint32(raw[8*i+4:]))}
		}
		return v
	case types.TypeFloat:
		v := make(types.Floats, n)
		for i := range v {
			v[i] = math.Float32frombits(order.Uint32(raw[4*i:]))
		}
		return v
	case types.TypeDouble:
		v := make(types.Doubles, n)
		for i := range v {
			v[i] = math.Float64frombits(order.Uint64(raw[8*i:]))
		}
		return v
	}
	return types.Invalid{Declared: t, Err: &types.UnsupportedFieldTypeError{Type: t, Count: uint32(n)}}
}
