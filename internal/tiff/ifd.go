package tiff

import (
	"fmt"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

const (
	entrySize = 12

	// DefaultMaxEntries bounds the entry count of a single directory.
	// Real files stay far below it; larger counts mean garbage offsets.
	DefaultMaxEntries = 10000
)

// Directory is one IFD: its entries in file order and the offset of the
// next linked directory (0 when there is none).
type Directory struct {
	Entries []types.Entry
	Offset  int64
	Next    uint32
}

// ReadDirectory reads the IFD at offset: a 2-byte entry count, count
// 12-byte entries and a 4-byte next-IFD offset.
func ReadDirectory(sr *binary.SafeReader, order binary.Endianness, offset int64, maxEntries int) (*Directory, error) {
	count, err := binary.ReadEndian[uint16](sr, offset, "IFD entry count", order)
	if err != nil {
		return nil, err
	}
	if int(count) > maxEntries {
		return nil, &types.MalformedDirectoryError{
			Path:   sr.Path(),
			Offset: offset,
			Reason: fmt.Sprintf("entry count %d exceeds limit %d", count, maxEntries),
		}
	}

	end := offset + 2 + int64(count)*entrySize + 4
	if end > sr.Size() {
		return nil, &types.TruncatedError{
			Path:   sr.Path(),
			What:   fmt.Sprintf("IFD with %d entries", count),
			Offset: offset,
			Length: int(end - offset),
			Size:   sr.Size(),
		}
	}

	dir := &Directory{
		Offset:  offset,
		Entries: make([]types.Entry, 0, count),
	}

	cr := binary.NewChainReader(binary.NewReader(sr, offset+2, order))
	for i := 0; i < int(count); i++ {
		var e types.Entry
		e.Tag = types.Tag(binary.ReadChained[uint16](cr, "entry tag"))
		e.Type = types.DataType(binary.ReadChained[uint16](cr, "entry type"))
		e.Count = binary.ReadChained[uint32](cr, "entry count")
		raw := cr.Bytes(4, "entry value")
		if err := cr.Error(); err != nil {
			return nil, err
		}
		copy(e.Raw[:], raw)
		e.ValueOffset = order.Uint32(raw)
		dir.Entries = append(dir.Entries, e)
	}

	dir.Next = binary.ReadChained[uint32](cr, "next IFD offset")
	if err := cr.Error(); err != nil {
		return nil, err
	}
	return dir, nil
}
