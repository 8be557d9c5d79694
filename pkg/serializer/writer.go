package serializer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Format is an output serialization format.
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// IsUnknown reports whether the format is not one of the supported values.
func (f Format) IsUnknown() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatTable:
		return false
	}
	return true
}

// Tabler is implemented by values that know how to render themselves as a
// human-readable table.
type Tabler interface {
	Table() string
}

// Writer serializes values to an output stream in a configured format.
type Writer struct {
	format Format
	out    io.Writer
}

// NewWriter creates a Writer for the given format and destination.
func NewWriter(format Format, out io.Writer) *Writer {
	return &Writer{format: format, out: out}
}

// NewStdoutWriter creates a Writer that writes to stdout.
func NewStdoutWriter(format Format) *Writer {
	return NewWriter(format, os.Stdout)
}

// Serialize writes data to the output stream in the configured format.
// Table format requires the value to implement Tabler; values that do not
// fall back to YAML.
func (w *Writer) Serialize(ctx context.Context, data any) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	switch w.format {
	case FormatJSON:
		b, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize to json: %w", err)
		}
		_, err = fmt.Fprintln(w.out, string(b))
		return err
	case FormatTable:
		if t, ok := data.(Tabler); ok {
			_, err := fmt.Fprintln(w.out, t.Table())
			return err
		}
		fallthrough
	default:
		b, err := yaml.Marshal(data)
		if err != nil {
			return fmt.Errorf("failed to serialize to yaml: %w", err)
		}
		_, err = w.out.Write(b)
		return err
	}
}

// WriteFile serializes data to a file, creating or truncating it. A failed
// close reports an error: on a write path a flush failure is a failure.
func WriteFile(ctx context.Context, path string, format Format, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	serr := NewWriter(format, f).Serialize(ctx, data)
	if cerr := f.Close(); cerr != nil && serr == nil {
		return fmt.Errorf("failed to close %s: %w", path, cerr)
	}
	return serr
}
