package exifmeta

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/simonhull/exifmeta/internal/container"
	"github.com/simonhull/exifmeta/internal/display"
	_ "github.com/simonhull/exifmeta/internal/jpeg" // Register JPEG locator
	"github.com/simonhull/exifmeta/internal/tiff"
)

// File holds the metadata decoded from one image.
//
// Fields are in directory order: IFD0 first, each pointer entry followed
// by the fields of the directory it points to, then IFD1. Values are
// copies; File keeps no reference to the source data.
type File struct {
	// Path of the image (informational when decoded from memory)
	Path string

	// Detected container (JPEG, TIFF, RAW-TIFF)
	Format Format

	// Size of the source in bytes
	Size int64

	// Byte order declared by the TIFF header
	ByteOrder ByteOrder

	// Decoded fields in directory order
	Fields []Field

	// Warnings encountered during decoding (non-fatal issues)
	Warnings []Warning
}

// Open reads the metadata of the image at path.
//
// Supported containers: JPEG with an Exif APP1 segment, TIFF, and
// TIFF-based camera raw files.
//
// Only the metadata is read; image data is never decoded. A damaged field
// does not fail the call: it comes back with an Invalid value and a
// warning. Structural damage (bad magic, directory cycles, truncated
// directories) returns an error and no File.
//
// Example:
//
//	file, err := exifmeta.Open("photo.jpg")
//	if err != nil {
//		return err
//	}
//	for _, f := range file.Fields {
//		fmt.Printf("%s: %s\n", f.Name(), file.Display(f))
//	}
func Open(path string, opts ...Option) (*File, error) {
	return openWith(path, applyOptions(opts))
}

func openWith(path string, options *openOptions) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return decodeReader(f, stat.Size(), path, options)
}

// Decode decodes metadata from an in-memory image. path is only used in
// errors and File.Path.
func Decode(data []byte, path string, opts ...Option) (*File, error) {
	return decodeReader(bytes.NewReader(data), int64(len(data)), path, applyOptions(opts))
}

// DecodeReader decodes metadata from size bytes of r.
func DecodeReader(r io.ReaderAt, size int64, path string, opts ...Option) (*File, error) {
	return decodeReader(r, size, path, applyOptions(opts))
}

func decodeReader(r io.ReaderAt, size int64, path string, options *openOptions) (*File, error) {
	c, err := container.Sniff(r, size, path)
	if err != nil {
		return nil, err
	}

	res, err := tiff.Decode(c.TIFF, tiff.Options{
		MaxDepth:   options.maxDepth,
		MaxEntries: options.maxEntries,
	})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", c.Format, err)
	}

	file := &File{
		Path:      path,
		Format:    c.Format,
		Size:      size,
		ByteOrder: res.Order,
		Fields:    res.Fields,
		Warnings:  res.Warnings,
	}

	if options.strictParsing {
		for _, f := range file.Fields {
			if err := f.Err(); err != nil {
				return nil, fmt.Errorf("%s: strict parsing failed at %s.%s: %w", path, f.IFD, f.Name(), err)
			}
		}
		if len(file.Warnings) > 0 {
			return nil, fmt.Errorf("%s: strict parsing failed: %s", path, file.Warnings[0].Message)
		}
	}

	if options.ignoreWarnings {
		file.Warnings = nil
	}

	return file, nil
}

// Display renders f for humans, with units and enumeration names.
// Sibling fields of the same file are consulted where needed, for example
// the hemisphere of a GPS coordinate.
func (f *File) Display(field Field) string {
	return display.Display(field, f.Fields)
}

// Get returns the first field with tag in directory ifd.
func (f *File) Get(ifd IFD, tag Tag) (Field, bool) {
	for _, field := range f.Fields {
		if field.IFD == ifd && field.Tag == tag {
			return field, true
		}
	}
	return Field{}, false
}

// Lookup returns a field by name. The name is either a tag name such as
// "FNumber", matching the first field of that name, or a name qualified by
// its directory such as "IFD1.Compression" or "GPS.GPSLatitude".
func (f *File) Lookup(name string) (Field, bool) {
	dir, tag, qualified := strings.Cut(name, ".")
	for _, field := range f.Fields {
		if qualified {
			if field.IFD.String() == dir && field.Name() == tag {
				return field, true
			}
		} else if field.Name() == name {
			return field, true
		}
	}
	return Field{}, false
}

// In iterates over the fields of one directory, in order.
//
//	for field := range file.In(exifmeta.IFDGPS) {
//		fmt.Println(field.Name(), file.Display(field))
//	}
func (f *File) In(ifd IFD) iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, field := range f.Fields {
			if field.IFD != ifd {
				continue
			}
			if !yield(field) {
				return
			}
		}
	}
}

// Errors iterates over the fields whose value could not be decoded.
func (f *File) Errors() iter.Seq2[Field, error] {
	return func(yield func(Field, error) bool) {
		for _, field := range f.Fields {
			if err := field.Err(); err != nil {
				if !yield(field, err) {
					return
				}
			}
		}
	}
}

// OpenContext opens a file with context support for cancellation.
//
// The context is checked before the file is read. Decoding itself is
// bounded by the size of the metadata and is not interrupted.
//
//	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
//	defer cancel()
//
//	file, err := exifmeta.OpenContext(ctx, "photo.jpg",
//	    exifmeta.WithStrictParsing(),
//	)
func OpenContext(ctx context.Context, path string, opts ...Option) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Open(path, opts...)
}

// OpenMany opens multiple images concurrently.
//
// Files are decoded in parallel using up to runtime.NumCPU() goroutines
// (see WithConcurrency). Results are returned in the same order as the
// input paths. The options apply to every file.
//
// If any file fails, no files are returned and the first error is
// reported. Use DecodeEach to keep going past failures.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	files, err := exifmeta.OpenMany(ctx, paths, exifmeta.WithStrictParsing())
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, f := range files {
//		fmt.Printf("%s: %d fields\n", f.Path, len(f.Fields))
//	}
func OpenMany(ctx context.Context, paths []string, opts ...Option) ([]*File, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]*File, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			file, err := openWith(path, options)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			results[i] = file
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// DecodeEach decodes every path concurrently and hands each outcome to fn
// in input order. A file that fails to decode is passed to fn with a nil
// File and its error; the remaining paths are still decoded.
//
// DecodeEach stops early when ctx is cancelled or fn returns an error, and
// returns that error.
//
//	err := exifmeta.DecodeEach(ctx, paths, func(path string, file *exifmeta.File, err error) error {
//		if err != nil {
//			log.Printf("%s: %v", path, err)
//			return nil
//		}
//		fmt.Println(path, len(file.Fields))
//		return nil
//	}, exifmeta.WithConcurrency(8))
func DecodeEach(ctx context.Context, paths []string, fn func(path string, file *File, err error) error, opts ...Option) error {
	options := applyOptions(opts)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		file *File
		err  error
	}
	outcomes := make([]chan outcome, len(paths))
	for i := range outcomes {
		outcomes[i] = make(chan outcome, 1)
	}

	var g errgroup.Group
	g.SetLimit(options.concurrency)

	dispatched := make(chan struct{})
	go func() {
		defer close(dispatched)
		for i, path := range paths {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					outcomes[i] <- outcome{err: err}
					return nil
				}
				f, err := openWith(path, options)
				outcomes[i] <- outcome{file: f, err: err}
				return nil
			})
		}
	}()

	var err error
	for i, path := range paths {
		var o outcome
		select {
		case o = <-outcomes[i]:
		case <-ctx.Done():
		}
		if err = ctx.Err(); err != nil {
			break
		}
		if err = fn(path, o.file, o.err); err != nil {
			break
		}
	}

	cancel()
	<-dispatched
	_ = g.Wait()
	return err
}
