// Package exifmeta reads EXIF metadata from images.
//
// exifmeta decodes the TIFF directory structure that carries EXIF data,
// whether it sits in a JPEG APP1 segment, in a bare TIFF file, or in a
// TIFF-based camera raw file. Only metadata is read; image data is never
// decoded.
//
// # Quick Start
//
//	file, err := exifmeta.Open("photo.jpg")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, f := range file.Fields {
//		fmt.Printf("%-28s | %s\n", f.Name(), file.Display(f))
//	}
//
// # Fields and Values
//
// A Field records the tag, the directory it came from, the declared type
// and count, and the decoded Value. Values are typed slices (Shorts,
// Rationals, ASCII...) and keep exactly what the file stores: rationals
// stay numerator/denominator pairs, text keeps its raw bytes. Presentation
// belongs to File.Display:
//
//	if f, ok := file.Get(exifmeta.IFDExif, 0x829D); ok {
//		fmt.Println(file.Display(f)) // f/2.8
//	}
//
// The walk covers IFD0, IFD1 and the Exif, GPS and Interoperability
// sub-directories. GPS tag numbers overlap primary tag numbers, so a
// tag is only meaningful together with Field.IFD.
//
// # Error Handling
//
// exifmeta distinguishes structural errors from damaged fields:
//
//   - Structural errors fail the decode: no signature, bad TIFF magic,
//     directories running past the end of the data, directory cycles or
//     excessive nesting.
//   - A damaged field (unknown type, value outside the data) is kept with
//     an Invalid value and reported in File.Warnings.
//
// Every error matches one of the sentinels through errors.Is:
//
//	file, err := exifmeta.Open(path)
//	switch {
//	case errors.Is(err, exifmeta.ErrUnsupportedContainer):
//		// not a JPEG/TIFF, or a JPEG without EXIF
//	case errors.Is(err, exifmeta.ErrMalformedDirectory):
//		// hostile or corrupt directory structure
//	}
//
// # Concurrency
//
// Decoding is synchronous and keeps no shared state. OpenMany decodes a
// batch in parallel and fails as a whole; DecodeEach reports every file,
// successful or not, in input order.
package exifmeta
