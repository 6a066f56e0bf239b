package tiff

import (
	"bytes"
	"encoding/binary"
	"errors"
	"reflect"
	"strings"
	"testing"

	binutil "github.com/simonhull/exifmeta/internal/binary"
	"github.com/simonhull/exifmeta/internal/testutil"
	"github.com/simonhull/exifmeta/internal/types"
)

func newReader(data []byte) *binutil.SafeReader {
	return binutil.NewSafeReader(bytes.NewReader(data), int64(len(data)), "test.tif")
}

func decode(t *testing.T, data []byte) *Result {
	t.Helper()
	res, err := Decode(newReader(data), Options{})
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	return res
}

func TestDecode_FieldsInDirectoryOrder(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Short(0x0112, 1),
		testutil.ASCII(0x010F, "Canon"),
		testutil.Rational(0x011A, 72, 1),
		testutil.Short(0x0128, 2),
	}}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	if len(res.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(res.Fields))
	}

	wantTags := []types.Tag{0x0112, 0x010F, 0x011A, 0x0128}
	for i, f := range res.Fields {
		if f.Tag != wantTags[i] {
			t.Errorf("field %d: tag = 0x%04X, want 0x%04X", i, uint16(f.Tag), uint16(wantTags[i]))
		}
		if f.IFD != types.IFDPrimary {
			t.Errorf("field %d: IFD = %s, want IFD0", i, f.IFD)
		}
	}

	if res.Order != binutil.LittleEndian {
		t.Errorf("expected little-endian, got %s", res.Order)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", res.Warnings)
	}
}

func TestDecode_ByteOrderEquivalence(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Byte(0x0001, 1, 2, 3, 4, 5),
		testutil.ASCII(0x010F, "Nikon Corporation"),
		testutil.Short(0x0102, 8, 8, 8),
		testutil.Long(0x0100, 4000),
		testutil.Rational(0x829A, 1, 250, 10, 3),
		testutil.RawBytes(0x0002, 6, []byte{0xFF, 0x7F}),
		testutil.Undefined(0x9000, []byte("0230")),
		testutil.SShort(0x0003, -5, 7),
		testutil.SLong(0x0004, -100000),
		testutil.SRational(0x9204, -1, 3),
		testutil.Float(0x0005, 1.5),
		testutil.Double(0x0006, 2.25, -0.5),
	}}

	le := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))
	be := decode(t, testutil.BuildTIFF(binary.BigEndian, ifd0))

	if be.Order != binutil.BigEndian {
		t.Errorf("expected big-endian, got %s", be.Order)
	}
	if len(le.Fields) != len(ifd0.Entries) {
		t.Fatalf("expected %d fields, got %d", len(ifd0.Entries), len(le.Fields))
	}
	if !reflect.DeepEqual(le.Fields, be.Fields) {
		for i := range le.Fields {
			if !reflect.DeepEqual(le.Fields[i], be.Fields[i]) {
				t.Errorf("field %d differs:\n  II: %#v\n  MM: %#v", i, le.Fields[i].Value, be.Fields[i].Value)
			}
		}
	}

	want := []types.Value{
		types.Bytes{1, 2, 3, 4, 5},
		types.ASCII("Nikon Corporation"),
		types.Shorts{8, 8, 8},
		types.Longs{4000},
		types.Rationals{{Num: 1, Den: 250}, {Num: 10, Den: 3}},
		types.SBytes{-1, 127},
		types.Undefined("0230"),
		types.SShorts{-5, 7},
		types.SLongs{-100000},
		types.SRationals{{Num: -1, Den: 3}},
		types.Floats{1.5},
		types.Doubles{2.25, -0.5},
	}
	for i, f := range le.Fields {
		if !reflect.DeepEqual(f.Value, want[i]) {
			t.Errorf("field %d: value = %#v, want %#v", i, f.Value, want[i])
		}
	}
}

func TestDecode_ASCIIInlineAndOffset(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.RawBytes(0x010E, 2, []byte("abc\x00")),     // 4 bytes: inline
		testutil.RawBytes(0x0131, 2, []byte("abc\x00\x00")), // 5 bytes: offset
	}}
	data := testutil.BuildTIFF(binary.BigEndian, ifd0)

	dir, err := ReadDirectory(newReader(data), binutil.BigEndian, 8, DefaultMaxEntries)
	if err != nil {
		t.Fatalf("ReadDirectory failed: %v", err)
	}
	if !dir.Entries[0].Inline() {
		t.Error("4-byte ASCII should be inline")
	}
	if dir.Entries[1].Inline() {
		t.Error("5-byte ASCII should be stored at an offset")
	}

	res := decode(t, data)
	for i, f := range res.Fields {
		ascii, ok := f.Value.(types.ASCII)
		if !ok {
			t.Fatalf("field %d: expected ASCII, got %T", i, f.Value)
		}
		if ascii.Text() != "abc" {
			t.Errorf("field %d: text = %q, want %q", i, ascii.Text(), "abc")
		}
	}
}

func TestDecode_ASCIIWithoutTerminator(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.RawBytes(0x010F, 2, []byte("Leica Camera")),
	}}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	if got := res.Fields[0].Value.(types.ASCII).Text(); got != "Leica Camera" {
		t.Errorf("text = %q, want full byte count", got)
	}
}

func TestDecode_RationalKeptExact(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Rational(0x829A, 1, 3),
	}}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	r, ok := res.Fields[0].Value.(types.Rationals)
	if !ok {
		t.Fatalf("expected Rationals, got %T", res.Fields[0].Value)
	}
	if len(r) != 1 || r[0].Num != 1 || r[0].Den != 3 {
		t.Errorf("rational = %v, want [1/3]", r)
	}
}

func TestDecode_SubDirectories(t *testing.T) {
	exif := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Rational(0x829A, 1, 60),
		testutil.Pointer(0xA005, &testutil.IFD{Entries: []testutil.Entry{
			testutil.ASCII(0x0001, "R98"),
		}}),
	}}
	gps := &testutil.IFD{Entries: []testutil.Entry{
		testutil.ASCII(0x0001, "N"),
	}}
	ifd0 := &testutil.IFD{
		Entries: []testutil.Entry{
			testutil.ASCII(0x010F, "Apple"),
			testutil.Pointer(0x8769, exif),
			testutil.Pointer(0x8825, gps),
		},
		Next: &testutil.IFD{Entries: []testutil.Entry{
			testutil.Short(0x0103, 6),
		}},
	}
	res := decode(t, testutil.BuildTIFF(binary.BigEndian, ifd0))

	want := []struct {
		ifd  types.IFD
		name string
	}{
		{types.IFDPrimary, "Make"},
		{types.IFDPrimary, "ExifIFDPointer"},
		{types.IFDExif, "ExposureTime"},
		{types.IFDExif, "InteropIFDPointer"},
		{types.IFDInterop, "InteroperabilityIndex"},
		{types.IFDPrimary, "GPSInfoIFDPointer"},
		{types.IFDGPS, "GPSLatitudeRef"},
		{types.IFDThumbnail, "Compression"},
	}
	if len(res.Fields) != len(want) {
		t.Fatalf("expected %d fields, got %d: %v", len(want), len(res.Fields), res.Fields)
	}
	for i, w := range want {
		f := res.Fields[i]
		if f.IFD != w.ifd || f.Name() != w.name {
			t.Errorf("field %d = %s.%s, want %s.%s", i, f.IFD, f.Name(), w.ifd, w.name)
		}
	}
}

func TestDecode_ZeroPointerIsAbsent(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Long(0x8769, 0),
		testutil.Short(0x0112, 1),
	}}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	if len(res.Fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(res.Fields))
	}
}

func TestDecode_NoIFD0(t *testing.T) {
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, nil))

	if len(res.Fields) != 0 {
		t.Errorf("expected no fields, got %d", len(res.Fields))
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", res.Warnings)
	}
}

func TestDecode_ChainBeyondThumbnailIgnored(t *testing.T) {
	ifd0 := &testutil.IFD{
		Entries: []testutil.Entry{testutil.Short(0x0112, 1)},
		Next: &testutil.IFD{
			Entries: []testutil.Entry{testutil.Short(0x0103, 6)},
			Next:    &testutil.IFD{Entries: []testutil.Entry{testutil.Short(0x0103, 1)}},
		},
	}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	if len(res.Fields) != 2 {
		t.Errorf("expected 2 fields, got %d", len(res.Fields))
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Stage != "directory" {
		t.Errorf("expected one directory warning, got %v", res.Warnings)
	}
}

func TestDecode_StructuralErrors(t *testing.T) {
	// IFD0 offset points past the end of the buffer.
	pastEnd := testutil.BuildTIFF(binary.LittleEndian, nil)
	binary.LittleEndian.PutUint32(pastEnd[4:], 4096)

	// IFD claims 3 entries but the buffer ends after the first.
	short := testutil.BuildTIFF(binary.LittleEndian, &testutil.IFD{Entries: []testutil.Entry{
		testutil.Short(0x0112, 1),
	}})
	binary.LittleEndian.PutUint16(short[8:], 3)

	// Exif pointer leads straight back to IFD0.
	cycle := testutil.BuildTIFF(binary.LittleEndian, &testutil.IFD{Entries: []testutil.Entry{
		testutil.Short(0x0112, 1),
		testutil.Raw(0x8769, 4, 1, 8),
	}})

	// IFD1 links back to IFD0.
	linkCycle := testutil.BuildTIFF(binary.BigEndian, &testutil.IFD{Entries: []testutil.Entry{
		testutil.Short(0x0112, 1),
	}})
	binary.BigEndian.PutUint32(linkCycle[8+2+12:], 8)

	badMagic := testutil.BuildTIFF(binary.BigEndian, nil)
	binary.BigEndian.PutUint16(badMagic[2:], 43)

	badOrder := []byte("XX\x00\x2A\x00\x00\x00\x08")

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"IFD0 past end", pastEnd, types.ErrTruncated},
		{"entries past end", short, types.ErrTruncated},
		{"Exif pointer cycle", cycle, types.ErrMalformedDirectory},
		{"next pointer cycle", linkCycle, types.ErrMalformedDirectory},
		{"invalid magic", badMagic, types.ErrInvalidMagic},
		{"unknown byte order", badOrder, types.ErrUnsupportedContainer},
		{"header too short", []byte("II*"), types.ErrTruncated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Decode(newReader(tt.data), Options{})
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if res != nil {
				t.Error("expected no result on structural failure")
			}
		})
	}
}

func TestDecode_DepthBound(t *testing.T) {
	// Each Exif directory points at a fresh, deeper one.
	innermost := &testutil.IFD{Entries: []testutil.Entry{testutil.Short(0xA001, 1)}}
	dir := innermost
	for i := 0; i < 5; i++ {
		dir = &testutil.IFD{Entries: []testutil.Entry{testutil.Pointer(0x8769, dir)}}
	}
	data := testutil.BuildTIFF(binary.LittleEndian, dir)

	_, err := Decode(newReader(data), Options{MaxDepth: 2})
	var mde *types.MalformedDirectoryError
	if !errors.As(err, &mde) {
		t.Fatalf("expected MalformedDirectoryError, got %v", err)
	}
	if !strings.Contains(mde.Reason, "depth 2") {
		t.Errorf("reason should mention the depth limit: %q", mde.Reason)
	}

	if _, err := Decode(newReader(data), Options{MaxDepth: 6}); err != nil {
		t.Errorf("depth 6 should be enough, got %v", err)
	}
}

func TestDecode_EntryLimit(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Short(0x0100, 1),
		testutil.Short(0x0101, 1),
		testutil.Short(0x0112, 1),
	}}
	data := testutil.BuildTIFF(binary.LittleEndian, ifd0)

	if _, err := Decode(newReader(data), Options{MaxEntries: 2}); !errors.Is(err, types.ErrMalformedDirectory) {
		t.Errorf("expected ErrMalformedDirectory, got %v", err)
	}
}

func TestDecode_FieldFailuresAreSoft(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Raw(0x0110, 2, 20, 0xFFFF),    // ASCII value past the end
		testutil.Raw(0x4746, 13, 1, 0),         // IFD type is not decodable
		testutil.Raw(0x0111, 4, 0x40000001, 0), // byte size overflows 32 bits
		testutil.Short(0x0112, 6),
	}}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	if len(res.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d", len(res.Fields))
	}

	if !errors.Is(res.Fields[0].Err(), types.ErrTruncated) {
		t.Errorf("field 0: expected ErrTruncated, got %v", res.Fields[0].Err())
	}
	if !errors.Is(res.Fields[1].Err(), types.ErrUnsupportedFieldType) {
		t.Errorf("field 1: expected ErrUnsupportedFieldType, got %v", res.Fields[1].Err())
	}
	if !errors.Is(res.Fields[2].Err(), types.ErrUnsupportedFieldType) {
		t.Errorf("field 2: expected ErrUnsupportedFieldType, got %v", res.Fields[2].Err())
	}
	if res.Fields[1].Value.Type() != 13 {
		t.Errorf("invalid value should keep declared type, got %d", res.Fields[1].Value.Type())
	}

	if !reflect.DeepEqual(res.Fields[3].Value, types.Shorts{6}) {
		t.Errorf("walk should continue after failures, got %#v", res.Fields[3].Value)
	}
	if len(res.Warnings) != 3 {
		t.Errorf("expected 3 warnings, got %d: %v", len(res.Warnings), res.Warnings)
	}
	if res.Warnings[0].Offset != 0xFFFF {
		t.Errorf("warning offset = %d, want %d", res.Warnings[0].Offset, 0xFFFF)
	}
}

func TestDecode_PointerWithWrongType(t *testing.T) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.ASCII(0x8769, "xy"),
	}}
	res := decode(t, testutil.BuildTIFF(binary.LittleEndian, ifd0))

	if len(res.Fields) != 1 {
		t.Errorf("expected 1 field, got %d", len(res.Fields))
	}
	if len(res.Warnings) != 1 {
		t.Errorf("expected 1 warning, got %v", res.Warnings)
	}
}

func BenchmarkDecode(b *testing.B) {
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.ASCII(0x010F, "Canon"),
		testutil.ASCII(0x0110, "Canon EOS R5"),
		testutil.Short(0x0112, 1),
		testutil.Pointer(0x8769, &testutil.IFD{Entries: []testutil.Entry{
			testutil.Rational(0x829A, 1, 250),
			testutil.Rational(0x829D, 28, 10),
			testutil.Short(0x8827, 400),
		}}),
	}}
	data := testutil.BuildTIFF(binary.LittleEndian, ifd0)
	sr := newReader(data)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(sr, Options{}); err != nil {
			b.Fatal(err)
		}
	}
}
