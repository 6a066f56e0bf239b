package types

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DataType is the TIFF field type code stored in every IFD entry.
type DataType uint16

// TIFF 6.0 field types.
const (
	TypeByte      DataType = 1
	TypeASCII     DataType = 2
	TypeShort     DataType = 3
	TypeLong      DataType = 4
	TypeRational  DataType = 5
	TypeSByte     DataType = 6
	TypeUndefined DataType = 7
	TypeSShort    DataType = 8
	TypeSLong     DataType = 9
	TypeSRational DataType = 10
	TypeFloat     DataType = 11
	TypeDouble    DataType = 12
)

// Size returns the size in bytes of one element of this type, or 0 if
// the type is not a known TIFF type.
func (t DataType) Size() int {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat:
		return 4
	case TypeRational, TypeSRational, TypeDouble:
		return 8
	default:
		return 0
	}
}

func (t DataType) String() string {
	switch t {
	case TypeByte:
		return "BYTE"
	case TypeASCII:
		return "ASCII"
	case TypeShort:
		return "SHORT"
	case TypeLong:
		return "LONG"
	case TypeRational:
		return "RATIONAL"
	case TypeSByte:
		return "SBYTE"
	case TypeUndefined:
		return "UNDEFINED"
	case TypeSShort:
		return "SSHORT"
	case TypeSLong:
		return "SLONG"
	case TypeSRational:
		return "SRATIONAL"
	case TypeFloat:
		return "FLOAT"
	case TypeDouble:
		return "DOUBLE"
	default:
		return fmt.Sprintf("TYPE(%d)", uint16(t))
	}
}

// Value is a decoded field value. The concrete type is one of Bytes,
// ASCII, Shorts, Longs, Rationals, SBytes, Undefined, SShorts, SLongs,
// SRationals, Floats, Doubles or Invalid.
type Value interface {
	// Type returns the TIFF type the value was decoded from.
	Type() DataType
	// Len returns the number of elements.
	Len() int

	isValue()
}

// Rational is an unsigned fraction kept exactly as stored.
type Rational struct {
	Num uint32
	Den uint32
}

// Float returns Num/Den. A zero denominator yields 0.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// SRational is a signed fraction kept exactly as stored.
type SRational struct {
	Num int32
	Den int32
}

// Float returns Num/Den. A zero denominator yields 0.
func (r SRational) Float() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

func (r SRational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

type (
	// Bytes holds BYTE values.
	Bytes []uint8
	// ASCII holds the raw bytes of an ASCII field up to the first NUL.
	ASCII []byte
	// Shorts holds SHORT values.
	Shorts []uint16
	// Longs holds LONG values.
	Longs []uint32
	// Rationals holds RATIONAL values.
	Rationals []Rational
	// SBytes holds SBYTE values.
	SBytes []int8
	// Undefined holds UNDEFINED bytes.
	Undefined []byte
	// SShorts holds SSHORT values.
	SShorts []int16
	// SLongs holds SLONG values.
	SLongs []int32
	// SRationals holds SRATIONAL values.
	SRationals []SRational
	// Floats holds FLOAT values.
	Floats []float32
	// Doubles holds DOUBLE values.
	Doubles []float64
)

// Invalid marks a field whose value could not be decoded.
type Invalid struct {
	Declared DataType
	Err      error
}

func (v Bytes) Type() DataType      { return TypeByte }
func (v ASCII) Type() DataType      { return TypeASCII }
func (v Shorts) Type() DataType     { return TypeShort }
func (v Longs) Type() DataType      { return TypeLong }
func (v Rationals) Type() DataType  { return TypeRational }
func (v SBytes) Type() DataType     { return TypeSByte }
func (v Undefined) Type() DataType  { return TypeUndefined }
func (v SShorts) Type() DataType    { return TypeSShort }
func (v SLongs) Type() DataType     { return TypeSLong }
func (v SRationals) Type() DataType { return TypeSRational }
func (v Floats) Type() DataType     { return TypeFloat }
func (v Doubles) Type() DataType    { return TypeDouble }
func (v Invalid) Type() DataType    { return v.Declared }

func (v Bytes) Len() int      { return len(v) }
func (v ASCII) Len() int      { return len(v) }
func (v Shorts) Len() int     { return len(v) }
func (v Longs) Len() int      { return len(v) }
func (v Rationals) Len() int  { return len(v) }
func (v SBytes) Len() int     { return len(v) }
func (v Undefined) Len() int  { return len(v) }
func (v SShorts) Len() int    { return len(v) }
func (v SLongs) Len() int     { return len(v) }
func (v SRationals) Len() int { return len(v) }
func (v Floats) Len() int     { return len(v) }
func (v Doubles) Len() int    { return len(v) }
func (v Invalid) Len() int    { return 0 }

func (Bytes) isValue()      {}
func (ASCII) isValue()      {}
func (Shorts) isValue()     {}
func (Longs) isValue()      {}
func (Rationals) isValue()  {}
func (SBytes) isValue()     {}
func (Undefined) isValue()  {}
func (SShorts) isValue()    {}
func (SLongs) isValue()     {}
func (SRationals) isValue() {}
func (Floats) isValue()     {}
func (Doubles) isValue()    {}
func (Invalid) isValue()    {}

// Text renders the ASCII bytes as a UTF-8 string.
//
// Valid UTF-8 is returned unchanged. Anything else is decoded as
// ISO-8859-1, which maps each byte to exactly one rune, so the original
// bytes can always be recovered from the result.
func (v ASCII) Text() string {
	if utf8.Valid(v) {
		return string(v)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(v)
	if err != nil {
		return string(v)
	}
	return string(s)
}

func (v ASCII) String() string {
	return v.Text()
}

func (v Invalid) Error() string {
	if v.Err == nil {
		return "invalid value"
	}
	return v.Err.Error()
}

// Int returns element i of an integer-typed value.
func Int(v Value, i int) (int64, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch v := v.(type) {
	case Bytes:
		return int64(v[i]), true
	case Shorts:
		return int64(v[i]), true
	case Longs:
		return int64(v[i]), true
	case SBytes:
		return int64(v[i]), true
	case SShorts:
		return int64(v[i]), true
	case SLongs:
		return int64(v[i]), true
	case Undefined:
		return int64(v[i]), true
	}
	return 0, false
}

// Float returns element i of a numeric value as float64. Rationals are
// divided here; the stored pair is left untouched.
func Float(v Value, i int) (float64, bool) {
	if i < 0 || i >= v.Len() {
		return 0, false
	}
	switch v := v.(type) {
	case Rationals:
		return v[i].Float(), true
	case SRationals:
		return v[i].Float(), true
	case Floats:
		return float64(v[i]), true
	case Doubles:
		return v[i], true
	}
	n, ok := Int(v, i)
	return float64(n), ok
}
