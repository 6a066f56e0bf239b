// Package registry maps container formats to the locators that find the
// embedded TIFF block.
package registry

import (
	"github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/types"
)

// Locator is the interface all container packages implement.
type Locator interface {
	// Locate returns the offset and length of the TIFF block (starting at
	// the byte-order marker) within the container.
	Locate(sr *binary.SafeReader) (offset, length int64, err error)
}

// locators maps formats to their locators.
var locators = make(map[types.Format]Locator)

// Register registers a locator for a format.
// This is called by container packages during initialization (init functions).
func Register(format types.Format, locator Locator) {
	locators[format] = locator
}

// Get returns the locator for a given format.
// Returns nil if no locator is registered for the format.
func Get(format types.Format) Locator {
	return locators[format]
}
