// Package binary provides bounds-checked binary reading primitives.
//
// Every read is validated against the known size of the underlying data
// before it is attempted, so a corrupt length or offset produces a
// *types.TruncatedError instead of a panic or a short read.
package binary

import (
	"fmt"
	"io"

	"github.com/simonhull/exifmeta/internal/types"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the number of readable bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads len(b) bytes at the given offset. what names the structure
// being read and ends up in the error.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		if len(b) == 0 && off == sr.size {
			return nil
		}
		return &types.TruncatedError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return &types.TruncatedError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   off + int64(n),
		}
	}

	return nil
}

// Bytes reads n bytes at off into a new slice. Bounds are checked before
// allocating, so a corrupt length cannot trigger a huge allocation.
func (sr *SafeReader) Bytes(off int64, n int, what string) ([]byte, error) {
	if off < 0 || n < 0 || off+int64(n) > sr.size {
		return nil, &types.TruncatedError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: n,
			Size:   sr.size,
		}
	}
	buf := make([]byte, n)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Section returns a SafeReader limited to n bytes starting at off.
// Offsets passed to the returned reader are relative to off.
func (sr *SafeReader) Section(off, n int64, what string) (*SafeReader, error) {
	if off < 0 || n < 0 || off+n > sr.size {
		return nil, &types.TruncatedError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: int(n),
			Size:   sr.size,
		}
	}
	return NewSafeReader(io.NewSectionReader(sr.r, off, n), n, sr.path), nil
}

// Reader provides sequential reading with automatic offset tracking.
type Reader struct {
	*SafeReader
	offset int64
	order  Endianness
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64, order Endianness) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
		order:      order,
	}
}

// ReadValue reads a numeric value in the reader's byte order and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := ReadEndian[T](r.SafeReader, r.offset, what, r.order)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes reads n raw bytes and advances the offset.
func (r *Reader) ReadBytes(n int, what string) ([]byte, error) {
	buf, err := r.SafeReader.Bytes(r.offset, n, what)
	if err != nil {
		return nil, err
	}

	r.offset += int64(n)
	return buf, nil
}

// Skip advances the offset by n bytes.
func (r *Reader) Skip(n int64) {
	r.offset += n
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Bytes reads n raw bytes, accumulating any error.
func (cr *ChainReader) Bytes(n int, what string) []byte {
	if cr.err != nil {
		return nil
	}

	val, err := cr.Reader.ReadBytes(n, what)
	if err != nil {
		cr.err = err
		return nil
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
