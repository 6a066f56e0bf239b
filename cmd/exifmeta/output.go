package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/simonhull/exifmeta"
)

// writer renders decoded files to the output stream.
type writer interface {
	Write(file *exifmeta.File) error
	Close() error
}

// newWriter returns the writer for format. headers asks the text writer
// to introduce every file with a header line.
func newWriter(format string, w io.Writer, headers bool) (writer, error) {
	switch format {
	case "text":
		return &textWriter{w: w, headers: headers}, nil
	case "json":
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		return &yamlWriter{enc: enc}, nil
	case "cbor":
		mode, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return nil, fmt.Errorf("cbor encoder: %w", err)
		}
		return &cborWriter{enc: mode.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// textWriter prints one "name | value" line per field.
type textWriter struct {
	w       io.Writer
	headers bool
	written int
}

func (t *textWriter) Write(file *exifmeta.File) error {
	if t.headers {
		if t.written > 0 {
			if _, err := fmt.Fprintln(t.w); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(t.w, "== %s (%s, %s, %s) ==\n",
			file.Path, file.Format, humanize.Bytes(uint64(file.Size)), file.ByteOrder)
		if err != nil {
			return err
		}
	}
	t.written++

	for _, f := range file.Fields {
		if _, err := fmt.Fprintf(t.w, "%-10s | %s\n", f.Name(), file.Display(f)); err != nil {
			return err
		}
	}
	return nil
}

func (t *textWriter) Close() error { return nil }

// jsonWriter emits one JSON object per file (JSON Lines).
type jsonWriter struct {
	enc *json.Encoder
}

func (j *jsonWriter) Write(file *exifmeta.File) error {
	return j.enc.Encode(newRecord(file))
}

func (j *jsonWriter) Close() error { return nil }

// yamlWriter emits one YAML document per file.
type yamlWriter struct {
	enc *yaml.Encoder
}

func (y *yamlWriter) Write(file *exifmeta.File) error {
	return y.enc.Encode(newRecord(file))
}

func (y *yamlWriter) Close() error {
	return y.enc.Close()
}

// cborWriter emits a CBOR sequence, one deterministic item per file.
type cborWriter struct {
	enc *cbor.Encoder
}

func (c *cborWriter) Write(file *exifmeta.File) error {
	return c.enc.Encode(newRecord(file))
}

func (c *cborWriter) Close() error { return nil }
