package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/exifmeta/internal/testutil"
)

func photo(maker string, fNumber uint32) []byte {
	exif := &testutil.IFD{Entries: []testutil.Entry{
		testutil.Rational(0x829A, 1, 250),
		testutil.Rational(0x829D, fNumber, 10),
	}}
	ifd0 := &testutil.IFD{Entries: []testutil.Entry{
		testutil.ASCII(0x010F, maker),
		testutil.Short(0x0112, 6),
		testutil.Pointer(0x8769, exif),
	}}
	return testutil.WrapJPEG(testutil.BuildTIFF(binary.LittleEndian, ifd0))
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_Text(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.jpg", photo("Canon", 28))

	out, _, err := runCLI(t, path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	for _, want := range []string{
		"Make       | Canon",
		"Orientation | rotate 90 CW",
		"ExposureTime | 1/250 s",
		"FNumber    | f/2.8",
	} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "==") {
		t.Errorf("single file should have no header:\n%s", out)
	}
}

func TestRun_TextHeaders(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jpg", photo("Canon", 28))
	b := writeFile(t, dir, "b.jpg", photo("Nikon", 40))

	out, _, err := runCLI(t, a, b)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	ia := strings.Index(out, "== "+a+" (JPEG, ")
	ib := strings.Index(out, "== "+b+" (JPEG, ")
	if ia < 0 || ib < 0 {
		t.Fatalf("missing headers:\n%s", out)
	}
	if ia > ib {
		t.Error("files printed out of argument order")
	}
	if !strings.Contains(out, "little-endian) ==") {
		t.Errorf("header missing byte order:\n%s", out)
	}
}

func TestRun_JSON(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.jpg", photo("Canon", 28))
	b := writeFile(t, dir, "b.jpg", photo("Nikon", 40))

	out, _, err := runCLI(t, "-o", "json", a, b)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	dec := json.NewDecoder(strings.NewReader(out))
	var recs []record
	for dec.More() {
		var rec record
		if err := dec.Decode(&rec); err != nil {
			t.Fatalf("decode: %v", err)
		}
		recs = append(recs, rec)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].Path != a || recs[1].Path != b {
		t.Errorf("paths = %s, %s", recs[0].Path, recs[1].Path)
	}
	if recs[0].Format != "JPEG" || recs[0].ByteOrder != "little-endian" {
		t.Errorf("format/order = %s/%s", recs[0].Format, recs[0].ByteOrder)
	}
	f := recs[0].Fields[0]
	if f.Name != "Make" || f.Tag != "0x010F" || f.IFD != "IFD0" || f.Value != "Canon" || f.Display != "Canon" {
		t.Errorf("first field = %+v", f)
	}
}

func TestRun_YAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.jpg", photo("Canon", 28))

	out, _, err := runCLI(t, "--output=yaml", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var rec record
	if err := yaml.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Path != path || len(rec.Fields) != 5 {
		t.Errorf("record = %+v", rec)
	}
}

func TestRun_CBOR(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.jpg", photo("Canon", 28))

	out, _, err := runCLI(t, "-o", "cbor", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var rec record
	if err := cbor.Unmarshal([]byte(out), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.Path != path {
		t.Errorf("path = %q", rec.Path)
	}
	var fn *fieldRecord
	for i := range rec.Fields {
		if rec.Fields[i].Name == "FNumber" {
			fn = &rec.Fields[i]
		}
	}
	if fn == nil {
		t.Fatal("FNumber missing")
	}
	if fn.Display != "f/2.8" || fn.IFD != "Exif" {
		t.Errorf("FNumber = %+v", *fn)
	}
}

func TestRun_Where(t *testing.T) {
	dir := t.TempDir()
	fast := writeFile(t, dir, "fast.jpg", photo("Canon", 18))
	slow := writeFile(t, dir, "slow.jpg", photo("Canon", 80))

	out, _, err := runCLI(t, "--where", "FNumber < 4", fast, slow)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, fast) || strings.Contains(out, slow) {
		t.Errorf("filter output:\n%s", out)
	}
}

func TestRun_InvalidWhere(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.jpg", photo("Canon", 28))
	if _, _, err := runCLI(t, "--where", "FNumber <", path); err == nil {
		t.Error("expected error for malformed filter")
	}
}

func TestRun_Recursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", photo("Canon", 28))
	writeFile(t, dir, "nested/b.jpg", photo("Nikon", 40))
	writeFile(t, dir, "nested/notes.txt", []byte("not an image"))

	out, _, err := runCLI(t, "-r", "-o", "json", dir)
	if err == nil {
		t.Fatal("expected failure for notes.txt")
	}
	if !strings.Contains(err.Error(), "1 of 3 files") {
		t.Errorf("err = %v", err)
	}
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("got %d records, want 2:\n%s", n, out)
	}
}

func TestRun_RecursiveWithExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", photo("Canon", 28))
	writeFile(t, dir, "nested/notes.txt", []byte("not an image"))
	cfgPath := writeFile(t, dir, "cfg/exifmeta.yaml", []byte("recursive: true\noutput: json\nextensions: [jpg]\n"))

	out, _, err := runCLI(t, "-c", cfgPath, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out, "\n"); n != 1 {
		t.Errorf("got %d records, want 1:\n%s", n, out)
	}
}

func TestRun_DirectoryWithoutRecursive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.jpg", photo("Canon", 28))

	out, stderr, err := runCLI(t, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q", out)
	}
	if !strings.Contains(stderr, "skipping directory") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRun_Failures(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "a.jpg", photo("Canon", 28))
	junk := writeFile(t, dir, "junk.bin", []byte("plain text, no image"))

	out, stderr, err := runCLI(t, good, junk, filepath.Join(dir, "missing.jpg"))
	if err == nil || !strings.Contains(err.Error(), "2 of 3 files") {
		t.Fatalf("err = %v", err)
	}
	if !strings.Contains(out, "Make       | Canon") {
		t.Errorf("good file not printed:\n%s", out)
	}
	if !strings.Contains(stderr, "junk.bin") || !strings.Contains(stderr, "missing.jpg") {
		t.Errorf("failures not logged:\n%s", stderr)
	}
}

func TestRun_Version(t *testing.T) {
	out, _, err := runCLI(t, "--version")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out, "exifmeta ") {
		t.Errorf("version output = %q", out)
	}
}

func TestRun_Usage(t *testing.T) {
	if _, _, err := runCLI(t); err == nil {
		t.Error("expected error without paths")
	}
	if _, _, err := runCLI(t, "-o", "xml", "a.jpg"); err == nil {
		t.Error("expected error for unknown output format")
	}
	if _, _, err := runCLI(t, "--bogus"); err == nil {
		t.Error("expected error for unknown flag")
	}
	if _, _, err := runCLI(t, "-h"); err != nil {
		t.Errorf("-h: %v", err)
	}
}
