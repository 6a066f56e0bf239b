package exifmeta

import "runtime"

// Option configures how files are decoded.
//
// Options use the functional options pattern:
//
//	file, err := exifmeta.Open("photo.jpg",
//	    exifmeta.WithStrictParsing(),
//	    exifmeta.WithMaxDepth(2),
//	)
type Option func(*openOptions)

// openOptions holds configuration for decoding files.
type openOptions struct {
	strictParsing  bool // Fail on the first field that cannot be decoded
	ignoreWarnings bool // Drop all warnings
	maxDepth       int  // Sub-IFD nesting limit (0 = default)
	maxEntries     int  // Entries per directory limit (0 = default)
	concurrency    int  // Parallel decodes in DecodeEach
}

// defaultOptions returns the default configuration.
func defaultOptions() *openOptions {
	return &openOptions{
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *openOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithStrictParsing treats any field that cannot be decoded as fatal.
//
// By default a field with an unsupported type or a value outside the
// TIFF block is kept with an Invalid value and reported in File.Warnings,
// and the remaining fields are still decoded.
//
// With strict parsing enabled, such a field fails the whole decode.
//
// Example:
//
//	file, err := exifmeta.Open("photo.jpg", exifmeta.WithStrictParsing())
//	// err != nil if ANY field is damaged
func WithStrictParsing() Option {
	return func(o *openOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Damaged fields are still returned with Invalid values; only the
// File.Warnings list is left empty.
func WithIgnoreWarnings() Option {
	return func(o *openOptions) {
		o.ignoreWarnings = true
	}
}

// WithMaxDepth limits how deep sub-IFD pointers are followed. IFD0 is
// depth 0, the Exif and GPS directories depth 1 and the Interoperability
// directory depth 2. Files nesting deeper fail with a
// MalformedDirectoryError.
//
// Default is 4.
func WithMaxDepth(depth int) Option {
	return func(o *openOptions) {
		o.maxDepth = depth
	}
}

// WithMaxEntries limits the number of entries a single directory may
// declare. Larger counts fail with a MalformedDirectoryError.
//
// Default is 10000.
func WithMaxEntries(n int) Option {
	return func(o *openOptions) {
		o.maxEntries = n
	}
}

// WithConcurrency sets how many files DecodeEach decodes at once.
//
// Default is runtime.NumCPU(). Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(o *openOptions) {
		o.concurrency = max(n, 1)
	}
}
