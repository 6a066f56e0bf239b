package tiff

import (
	"fmt"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// DefaultMaxDepth bounds sub-IFD nesting. IFD0 is depth 0, the Exif and
// GPS directories depth 1, Interop depth 2.
const DefaultMaxDepth = 4

// Options controls the structural limits of a decode.
type Options struct {
	MaxDepth   int
	MaxEntries int
}

// Result is the outcome of a successful decode.
type Result struct {
	Fields   []types.Field
	Warnings []types.Warning
	Order    binary.Endianness
}

type decoder struct {
	sr      *binary.SafeReader
	visited map[int64]bool
	result  *Result
	opts    Options
	order   binary.Endianness
}

// Decode walks the TIFF block in sr and returns every field of IFD0,
// IFD1 and the Exif, GPS and Interop sub-directories, in directory order.
// A pointer entry is immediately followed by the fields of the directory
// it points to.
//
// Structural problems abort the decode and no fields are returned. A
// field whose value cannot be decoded is kept as a types.Invalid value and
// reported as a warning.
func Decode(sr *binary.SafeReader, opts Options) (*Result, error) {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxEntries <= 0 {
		opts.MaxEntries = DefaultMaxEntries
	}

	hdr, err := ParseHeader(sr)
	if err != nil {
		return nil, err
	}

	d := &decoder{
		sr:      sr,
		opts:    opts,
		order:   hdr.Order,
		visited: make(map[int64]bool),
		result:  &Result{Order: hdr.Order},
	}

	if hdr.IFD0 == 0 {
		d.warn("directory", "header has no IFD0", 0)
		return d.result, nil
	}

	next, err := d.walk(types.IFDPrimary, int64(hdr.IFD0), 0)
	if err != nil {
		return nil, err
	}
	if next != 0 {
		next, err = d.walk(types.IFDThumbnail, next, 0)
		if err != nil {
			return nil, err
		}
		if next != 0 {
			d.warn("directory", "ignoring directories linked after IFD1", next)
		}
	}

	return d.result, nil
}

// walk decodes the directory at offset and descends into the
// sub-directories it points to. It returns the directory's next-IFD
// offset.
func (d *decoder) walk(ifd types.IFD, offset int64, depth int) (int64, error) {
	if depth > d.opts.MaxDepth {
		return 0, &types.MalformedDirectoryError{
			Path:   d.sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("sub-IFD nesting exceeds depth %d", d.opts.MaxDepth),
		}
	}
	if d.visited[offset] {
		return 0, &types.MalformedDirectoryError{
			Path:   d.sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("%s directory revisits an offset already walked", ifd),
		}
	}
	d.visited[offset] = true

	dir, err := ReadDirectory(d.sr, d.order, offset, d.opts.MaxEntries)
	if err != nil {
		return 0, err
	}

	for _, e := range dir.Entries {
		field := d.field(ifd, e)
		d.result.Fields = append(d.result.Fields, field)

		sub, ok := subDirectory(ifd, e.Tag)
		if !ok {
			continue
		}
		ptr, ok := types.Int(field.Value, 0)
		if !ok || ptr < 0 {
			d.warn("directory", fmt.Sprintf("%s: pointer has unusable %s value", field.Name(), e.Type), 0)
			continue
		}
		if ptr == 0 {
			continue
		}
		if _, err := d.walk(sub, ptr, depth+1); err != nil {
			return 0, err
		}
	}

	return int64(dir.Next), nil
}

// field decodes one entry. Failures are recorded on the field itself.
func (d *decoder) field(ifd types.IFD, e types.Entry) types.Field {
	f := types.Field{
		Tag:   e.Tag,
		IFD:   ifd,
		Type:  e.Type,
		Count: e.Count,
	}

	v, err := DecodeValue(d.sr, d.order, e)
	if err != nil {
		v = types.Invalid{Declared: e.Type, Err: err}
		var off int64
		if !e.Inline() {
			off = int64(e.ValueOffset)
		}
		d.warn("field", fmt.Sprintf("%s.%s: %v", ifd, e.Tag.Name(ifd), err), off)
	}
	f.Value = v
	return f
}

func (d *decoder) warn(stage, msg string, offset int64) {
	d.result.Warnings = append(d.result.Warnings, types.Warning{
		Stage:   stage,
		Message: msg,
		Offset:  offset,
	})
}

// subDirectory reports which directory a pointer tag in ifd leads to.
func subDirectory(ifd types.IFD, tag types.Tag) (types.IFD, bool) {
	switch ifd {
	case types.IFDPrimary, types.IFDThumbnail, types.IFDExif:
		switch tag {
		case types.TagExifPointer:
			return types.IFDExif, true
		case types.TagGPSPointer:
			return types.IFDGPS, true
		case types.TagInteropPointer:
			if ifd == types.IFDExif {
				return types.IFDInterop, true
			}
		}
	}
	return 0, false
}
