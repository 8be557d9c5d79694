package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testRecord struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type tablerRecord struct {
	testRecord
}

func (t tablerRecord) Table() string {
	return "NAME VALUE\n" + t.Name
}

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testRecord{
		{Name: "test1", Value: 123},
		{Name: "test2", Value: 456},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testRecord
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}
	if result[0].Name != "test1" || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testRecord{
		{Name: "test1", Value: 123},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 1 || result[0].Name != "test1" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := tablerRecord{testRecord{Name: "test1", Value: 123}}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "NAME VALUE") {
		t.Errorf("Expected table output, got: %s", output)
	}
}

func TestWriter_SerializeTable_FallsBackToYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	// testRecord does not implement Tabler.
	data := testRecord{Name: "test1", Value: 123}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testRecord
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal fallback YAML: %v", err)
	}
	if result.Name != "test1" {
		t.Errorf("Unexpected data: %+v", result)
	}
}

func TestWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewWriter(FormatJSON, &buf).Serialize(ctx, testRecord{})
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
	if buf.Len() != 0 {
		t.Errorf("Expected no output after cancellation, got %q", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")

	data := testRecord{Name: "test1", Value: 123}
	if err := WriteFile(context.Background(), path, FormatYAML, data); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	var result testRecord
	if err := yaml.Unmarshal(content, &result); err != nil {
		t.Fatalf("Failed to unmarshal file content: %v", err)
	}
	if result.Name != "test1" || result.Value != 123 {
		t.Errorf("Unexpected data in file: %+v", result)
	}
}

func TestWriteFile_SerializeErrorPropagates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	// Channels are not JSON-serializable.
	err := WriteFile(context.Background(), path, FormatJSON, make(chan int))
	if err == nil {
		t.Fatal("Expected serialization error")
	}
	if !strings.Contains(err.Error(), "failed to serialize") {
		t.Errorf("Expected serialization error, got: %v", err)
	}
}

func TestWriteFile_InvalidPath(t *testing.T) {
	err := WriteFile(context.Background(), "/nonexistent/path/report.yaml", FormatYAML, testRecord{})
	if err == nil {
		t.Fatal("Expected error for invalid path")
	}
	if !strings.Contains(err.Error(), "failed to create") {
		t.Errorf("Expected helpful error message, got: %v", err)
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format Format
		want   bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format("invalid"), true},
		{Format(""), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.want {
				t.Errorf("Format(%q).IsUnknown() = %v, want %v", tt.format, got, tt.want)
			}
		})
	}
}
