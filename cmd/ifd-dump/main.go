package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/container"
	"github.com/simonhull/exifmeta/internal/display"
	_ "github.com/simonhull/exifmeta/internal/jpeg" // Register JPEG locator
	"github.com/simonhull/exifmeta/internal/tiff"
	"github.com/simonhull/exifmeta/internal/types"
)

// Prints the raw directory tree of an image: every entry with its type,
// count and value offset, without display formatting. Useful for checking
// what a damaged file actually contains.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ifd-dump <image>")
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Stdout); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return err
	}

	c, err := container.Sniff(f, stat.Size(), path)
	if err != nil {
		return err
	}

	hdr, err := tiff.ParseHeader(c.TIFF)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s, TIFF block at %d (%d bytes), %s, IFD0 at %d\n",
		c.Format, c.Offset, c.Length, hdr.Order, hdr.IFD0)

	d := &dumper{w: w, sr: c.TIFF, order: hdr.Order, visited: make(map[int64]bool)}
	next := d.dump(types.IFDPrimary, int64(hdr.IFD0), 0)
	if next != 0 {
		d.dump(types.IFDThumbnail, next, 0)
	}
	return nil
}

type dumper struct {
	w       io.Writer
	sr      *binary.SafeReader
	order   binary.Endianness
	visited map[int64]bool
}

func (d *dumper) dump(ifd types.IFD, offset int64, depth int) int64 {
	indent := strings.Repeat("  ", depth)

	if d.visited[offset] {
		fmt.Fprintf(d.w, "%s%s @%d: already visited, stopping\n", indent, ifd, offset)
		return 0
	}
	d.visited[offset] = true

	dir, err := tiff.ReadDirectory(d.sr, d.order, offset, tiff.DefaultMaxEntries)
	if err != nil {
		fmt.Fprintf(d.w, "%s%s @%d: %v\n", indent, ifd, offset, err)
		return 0
	}
	fmt.Fprintf(d.w, "%s%s @%d (%d entries, next: %d)\n", indent, ifd, offset, len(dir.Entries), dir.Next)

	for _, e := range dir.Entries {
		location := "inline"
		if !e.Inline() {
			location = fmt.Sprintf("@%d", e.ValueOffset)
		}

		v, err := tiff.DecodeValue(d.sr, d.order, e)
		if err != nil {
			fmt.Fprintf(d.w, "%s  0x%04X %-28s %-9s x%-5d %-8s error: %v\n",
				indent, uint16(e.Tag), e.Tag.Name(ifd), e.Type, e.Count, location, err)
			continue
		}
		fmt.Fprintf(d.w, "%s  0x%04X %-28s %-9s x%-5d %-8s %s\n",
			indent, uint16(e.Tag), e.Tag.Name(ifd), e.Type, e.Count, location, display.Value(v))

		// Pointers may be SHORT or LONG; the decoded value is the offset.
		if sub, ok := pointerTarget(ifd, e.Tag); ok {
			if ptr, ok := types.Int(v, 0); ok && ptr > 0 {
				d.dump(sub, ptr, depth+1)
			}
		}
	}

	return int64(dir.Next)
}

func pointerTarget(ifd types.IFD, tag types.Tag) (types.IFD, bool) {
	switch tag {
	case types.TagExifPointer:
		return types.IFDExif, ifd != types.IFDGPS && ifd != types.IFDInterop
	case types.TagGPSPointer:
		return types.IFDGPS, ifd != types.IFDGPS && ifd != types.IFDInterop
	case types.TagInteropPointer:
		return types.IFDInterop, ifd == types.IFDExif
	}
	return 0, false
}
