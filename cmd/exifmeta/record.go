package main

import (
	"fmt"
	"math"

	"github.com/simonhull/exifmeta"
)

// record is the serialized form of one decoded file.
type record struct {
	Path      string        `json:"path" yaml:"path" cbor:"path"`
	Format    string        `json:"format" yaml:"format" cbor:"format"`
	Size      int64         `json:"size" yaml:"size" cbor:"size"`
	ByteOrder string        `json:"byte_order" yaml:"byte_order" cbor:"byte_order"`
	Fields    []fieldRecord `json:"fields" yaml:"fields" cbor:"fields"`
	Warnings  []string      `json:"warnings,omitempty" yaml:"warnings,omitempty" cbor:"warnings,omitempty"`
}

type fieldRecord struct {
	IFD     string `json:"ifd" yaml:"ifd" cbor:"ifd"`
	Tag     string `json:"tag" yaml:"tag" cbor:"tag"`
	Name    string `json:"name" yaml:"name" cbor:"name"`
	Type    string `json:"type" yaml:"type" cbor:"type"`
	Count   uint32 `json:"count" yaml:"count" cbor:"count"`
	Value   any    `json:"value,omitempty" yaml:"value,omitempty" cbor:"value,omitempty"`
	Display string `json:"display" yaml:"display" cbor:"display"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty" cbor:"error,omitempty"`
}

func newRecord(file *exifmeta.File) record {
	rec := record{
		Path:      file.Path,
		Format:    file.Format.String(),
		Size:      file.Size,
		ByteOrder: file.ByteOrder.String(),
		Fields:    make([]fieldRecord, 0, len(file.Fields)),
	}
	for _, f := range file.Fields {
		fr := fieldRecord{
			IFD:     f.IFD.String(),
			Tag:     fmt.Sprintf("0x%04X", uint16(f.Tag)),
			Name:    f.Name(),
			Type:    f.Type.String(),
			Count:   f.Count,
			Value:   rawValue(f.Value),
			Display: file.Display(f),
		}
		if err := f.Err(); err != nil {
			fr.Error = err.Error()
		}
		rec.Fields = append(rec.Fields, fr)
	}
	for _, w := range file.Warnings {
		rec.Warnings = append(rec.Warnings, w.String())
	}
	return rec
}

// rawValue converts a decoded value into plain data every encoder
// handles: rationals become "num/den" strings, byte blobs become hex and
// non-finite floats become text.
func rawValue(v exifmeta.Value) any {
	switch v := v.(type) {
	case exifmeta.ASCII:
		return v.Text()
	case exifmeta.Undefined:
		return fmt.Sprintf("%X", []byte(v))
	case exifmeta.Bytes:
		out := make([]int, len(v))
		for i, b := range v {
			out[i] = int(b)
		}
		return out
	case exifmeta.Rationals:
		out := make([]string, len(v))
		for i, r := range v {
			out[i] = r.String()
		}
		return out
	case exifmeta.SRationals:
		out := make([]string, len(v))
		for i, r := range v {
			out[i] = r.String()
		}
		return out
	case exifmeta.Floats:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = finite(float64(x))
		}
		return out
	case exifmeta.Doubles:
		out := make([]any, len(v))
		for i, x := range v {
			out[i] = finite(x)
		}
		return out
	case exifmeta.Invalid:
		return nil
	}
	return v
}

func finite(x float64) any {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Sprint(x)
	}
	return x
}
