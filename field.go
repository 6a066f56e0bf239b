package exifmeta

import "github.com/simonhull/exifmeta/internal/types"

// Field is one decoded metadata entry.
type Field = types.Field

// Tag is a 16-bit tag number. Names depend on the directory; see Field.Name.
type Tag = types.Tag

// IFD names the directory a field came from.
type IFD = types.IFD

// Directories.
const (
	IFDPrimary   = types.IFDPrimary
	IFDThumbnail = types.IFDThumbnail
	IFDExif      = types.IFDExif
	IFDGPS       = types.IFDGPS
	IFDInterop   = types.IFDInterop
)

// DataType is the TIFF type code of a field.
type DataType = types.DataType

// Value is a decoded field value. Switch on the concrete type to read it:
//
//	switch v := field.Value.(type) {
//	case exifmeta.ASCII:
//		fmt.Println(v.Text())
//	case exifmeta.Rationals:
//		fmt.Println(v[0].Num, v[0].Den)
//	}
type Value = types.Value

// Value variants.
type (
	Bytes      = types.Bytes
	ASCII      = types.ASCII
	Shorts     = types.Shorts
	Longs      = types.Longs
	Rationals  = types.Rationals
	SBytes     = types.SBytes
	Undefined  = types.Undefined
	SShorts    = types.SShorts
	SLongs     = types.SLongs
	SRationals = types.SRationals
	Floats     = types.Floats
	Doubles    = types.Doubles
	Invalid    = types.Invalid
	Rational   = types.Rational
	SRational  = types.SRational
)
